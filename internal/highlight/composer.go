// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package highlight composes match and capture-group spans into a styled
// text representation. The composer is renderer-agnostic: it emits style
// keys over rune ranges, and the UI theme maps each key to a terminal
// style. That keeps overlap resolution testable without a terminal.
package highlight

import (
	"github.com/andriy-git/rexi/internal/rex"
)

// PaletteSize is the number of distinct capture-group colors. Group indices
// beyond the palette intentionally alias: color = (index-1) mod PaletteSize.
const PaletteSize = 6

// =============================================================================
// STYLE KEYS
// =============================================================================

// MatchEmphasis is the whole-match overlay layer.
type MatchEmphasis int

const (
	// MatchNone means no group-0 span covers the character.
	MatchNone MatchEmphasis = iota

	// MatchOther marks characters of matches other than the current one.
	MatchOther

	// MatchCurrent marks characters of the currently selected match.
	MatchCurrent
)

// StyleKey is the resolved style of one character: the union of the
// whole-match layer and the capture-group layer covering it.
type StyleKey struct {
	Match MatchEmphasis

	// Group is the palette slot of the covering capture group, or -1 when
	// no capture group covers the character.
	Group int

	// GroupCurrent intensifies the palette style for groups that belong to
	// the currently selected match.
	GroupCurrent bool
}

// plain is the zero-value key for unstyled text.
var plain = StyleKey{Group: -1}

// IsPlain reports whether the key carries no styling at all.
func (k StyleKey) IsPlain() bool {
	return k == plain
}

// =============================================================================
// STYLED TEXT
// =============================================================================

// Segment is a maximal run of characters sharing one style key. Start and
// End are half-open rune offsets into the composed text.
type Segment struct {
	Start int
	End   int
	Key   StyleKey
}

// StyledText is the composed output: the original text partitioned into
// ordered, non-overlapping segments that cover it completely.
type StyledText struct {
	Text     string
	Segments []Segment
}

// =============================================================================
// COMPOSER
// =============================================================================

// Compose maps the match set onto per-character style keys and merges them
// into segments. currentIndex selects which match gets the current-match
// treatment; pass -1 (or an out-of-range index) for none.
//
// The two layers are independent: group-0 spans feed the match layer,
// higher groups feed the palette layer. A character's final key is the
// union of whatever spans cover it, regardless of span insertion order, so
// overlapping same-layer spans cannot cause style resets at shared
// boundaries. Where capture spans overlap, the later (higher-numbered)
// group wins the palette slot.
func Compose(text string, set rex.MatchSet, currentIndex int) StyledText {
	runes := []rune(text)
	n := len(runes)

	matchLayer := make([]MatchEmphasis, n)
	groupLayer := make([]int, n)
	groupCur := make([]bool, n)
	for i := range groupLayer {
		groupLayer[i] = -1
	}

	for mi, match := range set {
		isCurrent := mi == currentIndex
		for _, g := range match.Groups {
			start, end := clamp(g.Span.Start, 0, n), clamp(g.Span.End, 0, n)
			if g.Index == 0 {
				level := MatchOther
				if isCurrent {
					level = MatchCurrent
				}
				for i := start; i < end; i++ {
					if level > matchLayer[i] {
						matchLayer[i] = level
					}
				}
				continue
			}
			slot := (g.Index - 1) % PaletteSize
			for i := start; i < end; i++ {
				groupLayer[i] = slot
				if isCurrent {
					groupCur[i] = true
				}
			}
		}
	}

	st := StyledText{Text: text}
	if n == 0 {
		return st
	}

	keyAt := func(i int) StyleKey {
		return StyleKey{
			Match:        matchLayer[i],
			Group:        groupLayer[i],
			GroupCurrent: groupCur[i],
		}
	}

	segStart := 0
	segKey := keyAt(0)
	for i := 1; i < n; i++ {
		key := keyAt(i)
		if key == segKey {
			continue
		}
		st.Segments = append(st.Segments, Segment{Start: segStart, End: i, Key: segKey})
		segStart, segKey = i, key
	}
	st.Segments = append(st.Segments, Segment{Start: segStart, End: n, Key: segKey})
	return st
}

// MatchPositions extracts, in match order, each match's group-0 start
// offset. This sequence is exactly the navigator's input domain.
func MatchPositions(set rex.MatchSet) []int {
	positions := make([]int, 0, len(set))
	for _, match := range set {
		positions = append(positions, match.Whole().Span.Start)
	}
	return positions
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
