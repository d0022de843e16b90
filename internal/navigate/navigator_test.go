// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigate

import (
	"strings"
	"testing"
)

func TestNavigatorEmpty(t *testing.T) {
	n := New()

	if n.Index() != -1 {
		t.Errorf("fresh index = %d, want -1", n.Index())
	}
	if n.Len() != 0 {
		t.Errorf("fresh len = %d, want 0", n.Len())
	}
	if _, ok := n.Position(); ok {
		t.Error("Position on empty navigator reported ok")
	}
	if got := n.Counter(); got != "0/0" {
		t.Errorf("Counter = %q, want 0/0", got)
	}

	// Stepping while empty is a no-op.
	n.Next()
	n.Prev()
	if n.Index() != -1 {
		t.Errorf("index after empty stepping = %d, want -1", n.Index())
	}
}

func TestNavigatorLoadResetsToFirst(t *testing.T) {
	n := New()
	n.Load([]int{4, 9, 15})

	if n.Index() != 0 {
		t.Errorf("index after Load = %d, want 0", n.Index())
	}
	pos, ok := n.Position()
	if !ok || pos != 4 {
		t.Errorf("Position = %d,%v, want 4,true", pos, ok)
	}
	if got := n.Counter(); got != "1/3" {
		t.Errorf("Counter = %q, want 1/3", got)
	}

	n.Next()
	n.Load([]int{7})
	if n.Index() != 0 {
		t.Errorf("Load must reset the cursor, index = %d", n.Index())
	}

	n.Load(nil)
	if n.Index() != -1 {
		t.Errorf("Load(nil) index = %d, want -1", n.Index())
	}
}

func TestNavigatorWraparound(t *testing.T) {
	n := New()
	n.Load([]int{1, 2, 3})

	n.Next()
	n.Next()
	if n.Index() != 2 {
		t.Fatalf("index = %d, want 2", n.Index())
	}
	n.Next() // wraps to first
	if n.Index() != 0 {
		t.Errorf("Next past end index = %d, want 0", n.Index())
	}

	n.Prev() // wraps to last
	if n.Index() != 2 {
		t.Errorf("Prev past start index = %d, want 2", n.Index())
	}
	if got := n.Counter(); got != "3/3" {
		t.Errorf("Counter = %q, want 3/3", got)
	}
}

func TestNavigatorSingleMatch(t *testing.T) {
	n := New()
	n.Load([]int{8})
	n.Next()
	n.Prev()
	if n.Index() != 0 {
		t.Errorf("single-match index = %d, want 0", n.Index())
	}
}

func TestScrollTargetFirstLine(t *testing.T) {
	// A match on the first line never scrolls.
	if got := ScrollTarget("hello\nworld", 2, 80, 20, 0); got != 0 {
		t.Errorf("target = %d, want 0", got)
	}
}

func TestScrollTargetCentersMatch(t *testing.T) {
	// 100 short lines, match on line 50 (offset 50*4=200 with "abc\n").
	text := strings.Repeat("abc\n", 100)
	got := ScrollTarget(text, 200, 80, 20, 0)
	// 50 rows above the match, minus half the viewport.
	if want := 50 - 10; got != want {
		t.Errorf("target = %d, want %d", got, want)
	}
}

func TestScrollTargetCountsWrappedRows(t *testing.T) {
	// One long line that wraps into 3 visual rows at width 10, then the
	// match line.
	long := strings.Repeat("x", 25)
	text := long + "\nmatch"
	offset := len([]rune(long)) + 1 // first rune of "match"

	got := ScrollTarget(text, offset, 10, 2, 0)
	// 3 wrapped rows above, minus height/2 = 1.
	if want := 3 - 1; got != want {
		t.Errorf("target = %d, want %d", got, want)
	}
}

func TestScrollTargetGutterConsumesWidth(t *testing.T) {
	// Width 10 with a 4-column gutter leaves 10 per row but the gutter
	// inflates each line's display width: a 8-char line needs 2 rows.
	text := strings.Repeat("y", 8) + "\nmatch"
	offset := 9

	withGutter := ScrollTarget(text, offset, 10, 0, 4)
	without := ScrollTarget(text, offset, 10, 0, 0)
	if withGutter <= without {
		t.Errorf("gutter did not add rows: with=%d without=%d", withGutter, without)
	}
}

func TestScrollTargetEmptyLinesCount(t *testing.T) {
	// Blank lines still occupy one visual row each.
	text := "\n\n\nmatch"
	got := ScrollTarget(text, 3, 80, 0, 0)
	if got != 3 {
		t.Errorf("target = %d, want 3", got)
	}
}

func TestScrollTargetClampsAtTop(t *testing.T) {
	if got := ScrollTarget("a\nb\nc", 4, 80, 100, 0); got != 0 {
		t.Errorf("target = %d, want 0 (clamped)", got)
	}
}

func TestScrollTargetWideRunes(t *testing.T) {
	// CJK runes are double-width: 6 runes occupy 12 columns and wrap into
	// 2 rows at width 10, where 6 ASCII runes would not.
	wide := strings.Repeat("日", 6)
	text := wide + "\nmatch"
	offset := 7 // first rune of "match"

	got := ScrollTarget(text, offset, 10, 0, 0)
	if got != 2 {
		t.Errorf("target = %d, want 2 (double-width wrap)", got)
	}
}
