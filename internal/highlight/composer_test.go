// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package highlight

import (
	"testing"

	"github.com/andriy-git/rexi/internal/rex"
)

func match(spans ...rex.Span) rex.Match {
	groups := make([]rex.GroupMatch, 0, len(spans))
	for i, s := range spans {
		groups = append(groups, rex.GroupMatch{Span: s, Index: i})
	}
	return rex.Match{Groups: groups}
}

// keyAt resolves the style key covering one rune offset.
func keyAt(t *testing.T, st StyledText, offset int) StyleKey {
	t.Helper()
	for _, seg := range st.Segments {
		if offset >= seg.Start && offset < seg.End {
			return seg.Key
		}
	}
	t.Fatalf("offset %d not covered by any segment", offset)
	return StyleKey{}
}

func TestComposeFullPartition(t *testing.T) {
	text := "one two three"
	set := rex.MatchSet{match(rex.Span{Start: 4, End: 7})}

	st := Compose(text, set, 0)

	if st.Text != text {
		t.Errorf("text altered: %q", st.Text)
	}
	// Segments must tile the whole text without gaps or overlap.
	expect := 0
	for _, seg := range st.Segments {
		if seg.Start != expect {
			t.Fatalf("segment starts at %d, want %d", seg.Start, expect)
		}
		if seg.End <= seg.Start {
			t.Fatalf("empty or inverted segment %+v", seg)
		}
		expect = seg.End
	}
	if expect != len([]rune(text)) {
		t.Fatalf("segments end at %d, want %d", expect, len([]rune(text)))
	}
}

func TestComposeCurrentAndOtherMatches(t *testing.T) {
	text := "aaa bbb aaa"
	set := rex.MatchSet{
		match(rex.Span{Start: 0, End: 3}),
		match(rex.Span{Start: 8, End: 11}),
	}

	st := Compose(text, set, 1)

	if got := keyAt(t, st, 0).Match; got != MatchOther {
		t.Errorf("first match emphasis = %v, want MatchOther", got)
	}
	if got := keyAt(t, st, 8).Match; got != MatchCurrent {
		t.Errorf("second match emphasis = %v, want MatchCurrent", got)
	}
	if got := keyAt(t, st, 4); !got.IsPlain() {
		t.Errorf("gap key = %+v, want plain", got)
	}
}

func TestComposeNoCurrentIndex(t *testing.T) {
	st := Compose("abc", rex.MatchSet{match(rex.Span{Start: 0, End: 3})}, -1)
	if got := keyAt(t, st, 1).Match; got != MatchOther {
		t.Errorf("emphasis = %v, want MatchOther with index -1", got)
	}
}

func TestComposeGroupLayer(t *testing.T) {
	// Whole match [0,7), group 1 [0,3), group 2 [4,7).
	text := "abc defg"
	set := rex.MatchSet{match(rex.Span{Start: 0, End: 7}, rex.Span{Start: 0, End: 3}, rex.Span{Start: 4, End: 7})}

	st := Compose(text, set, 0)

	k0 := keyAt(t, st, 0)
	if k0.Group != 0 {
		t.Errorf("group 1 palette slot = %d, want 0", k0.Group)
	}
	if !k0.GroupCurrent {
		t.Error("group of the current match must carry GroupCurrent")
	}
	if k0.Match != MatchCurrent {
		t.Errorf("group char match layer = %v, want MatchCurrent", k0.Match)
	}

	k4 := keyAt(t, st, 4)
	if k4.Group != 1 {
		t.Errorf("group 2 palette slot = %d, want 1", k4.Group)
	}

	// The char between the groups carries match emphasis but no group.
	k3 := keyAt(t, st, 3)
	if k3.Group != -1 {
		t.Errorf("ungrouped char slot = %d, want -1", k3.Group)
	}
	if k3.Match != MatchCurrent {
		t.Errorf("ungrouped char match layer = %v, want MatchCurrent", k3.Match)
	}
}

func TestComposePaletteAliasing(t *testing.T) {
	// Group index 7 aliases onto slot (7-1) % 6 = 0.
	text := "abcdefgh"
	m := match(rex.Span{Start: 0, End: 8})
	m.Groups = append(m.Groups, rex.GroupMatch{Span: rex.Span{Start: 2, End: 4}, Index: 7})
	st := Compose(text, rex.MatchSet{m}, -1)

	if got := keyAt(t, st, 2).Group; got != 0 {
		t.Errorf("group 7 slot = %d, want 0", got)
	}
}

func TestComposeOverlappingGroupsLaterWins(t *testing.T) {
	// Groups 1 and 2 overlap on [2,4); the higher-numbered group takes
	// the palette slot there.
	m := match(rex.Span{Start: 0, End: 6}, rex.Span{Start: 0, End: 4}, rex.Span{Start: 2, End: 6})
	st := Compose("abcdef", rex.MatchSet{m}, -1)

	if got := keyAt(t, st, 1).Group; got != 0 {
		t.Errorf("slot at 1 = %d, want 0 (group 1 only)", got)
	}
	if got := keyAt(t, st, 3).Group; got != 1 {
		t.Errorf("slot at 3 = %d, want 1 (group 2 wins overlap)", got)
	}
}

func TestComposeAdjacentMatchesNoReset(t *testing.T) {
	// Two other-matches sharing a boundary merge into one segment; equal
	// keys never split.
	set := rex.MatchSet{
		match(rex.Span{Start: 0, End: 2}),
		match(rex.Span{Start: 2, End: 4}),
	}
	st := Compose("abcd", set, -1)

	if len(st.Segments) != 1 {
		t.Fatalf("%d segments, want 1 merged segment: %+v", len(st.Segments), st.Segments)
	}
	if st.Segments[0].Key.Match != MatchOther {
		t.Errorf("merged key = %+v", st.Segments[0].Key)
	}
}

func TestComposeSpanClamping(t *testing.T) {
	// Out-of-range spans clamp instead of panicking.
	set := rex.MatchSet{match(rex.Span{Start: -5, End: 99})}
	st := Compose("ab", set, 0)
	if got := keyAt(t, st, 0).Match; got != MatchCurrent {
		t.Errorf("clamped span emphasis = %v", got)
	}
}

func TestComposeEmptyText(t *testing.T) {
	st := Compose("", rex.MatchSet{}, -1)
	if len(st.Segments) != 0 {
		t.Errorf("empty text produced %d segments", len(st.Segments))
	}
}

func TestMatchPositions(t *testing.T) {
	set := rex.MatchSet{
		match(rex.Span{Start: 3, End: 5}),
		match(rex.Span{Start: 9, End: 12}),
	}
	got := MatchPositions(set)
	if len(got) != 2 || got[0] != 3 || got[1] != 9 {
		t.Errorf("MatchPositions = %v, want [3 9]", got)
	}
	if got := MatchPositions(nil); len(got) != 0 {
		t.Errorf("MatchPositions(nil) = %v", got)
	}
}
