// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package navigate provides the match cursor: a stateful index over the
// ordered list of match start offsets with wraparound stepping, plus the
// scroll-target computation that keeps the selected match visible under
// soft line-wrap.
package navigate

import "fmt"

// =============================================================================
// NAVIGATOR
// =============================================================================

// Navigator steps through an ordered list of match positions. It has two
// states: Empty (index -1, no positions) and Positioned (index within
// [0, len-1]). Stepping wraps around both ends and is a no-op when Empty.
type Navigator struct {
	positions []int
	index     int
}

// New returns a navigator in the Empty state.
func New() *Navigator {
	return &Navigator{index: -1}
}

// Load replaces the position list and resets the cursor: index 0 when the
// list is non-empty, -1 otherwise. The navigator must be reloaded whenever
// the match set changes; in between, only Next/Prev mutate it.
func (n *Navigator) Load(positions []int) {
	n.positions = positions
	if len(positions) == 0 {
		n.index = -1
		return
	}
	n.index = 0
}

// Next advances the cursor, wrapping past the last match to the first.
func (n *Navigator) Next() {
	if len(n.positions) == 0 {
		return
	}
	n.index = (n.index + 1) % len(n.positions)
}

// Prev steps the cursor back, wrapping past the first match to the last.
func (n *Navigator) Prev() {
	if len(n.positions) == 0 {
		return
	}
	n.index = (n.index - 1 + len(n.positions)) % len(n.positions)
}

// Index returns the current match index, or -1 when Empty.
func (n *Navigator) Index() int {
	return n.index
}

// Len returns the number of loaded positions.
func (n *Navigator) Len() int {
	return len(n.positions)
}

// Position returns the current match's start offset. The second result is
// false when the navigator is Empty.
func (n *Navigator) Position() (int, bool) {
	if n.index < 0 {
		return 0, false
	}
	return n.positions[n.index], true
}

// Counter renders the "current of total" string shown next to the pattern
// input, e.g. "3/7". An Empty navigator renders as "0/0".
func (n *Navigator) Counter() string {
	return fmt.Sprintf("%d/%d", n.index+1, len(n.positions))
}
