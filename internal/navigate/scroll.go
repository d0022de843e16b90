// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigate

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// SCROLL TARGET
// =============================================================================

// ScrollTarget computes the viewport row that centers the match at the
// given rune offset, simulating the renderer's soft line-wrap.
//
// Every logical line strictly before the match's line contributes
// max(1, ceil((displayWidth(line)+gutterWidth)/innerWidth)) visual rows;
// empty lines still occupy one row. The target is the match line's visual
// row minus half the viewport height, clamped at the top.
func ScrollTarget(text string, offset, viewportWidth, viewportHeight, gutterWidth int) int {
	inner := viewportWidth
	if inner < 1 {
		inner = 1
	}

	row := 0
	consumed := 0
	for _, line := range strings.Split(text, "\n") {
		// Line lengths are rune counts; offsets address runes, and the
		// trailing newline belongs to the line it ends.
		lineRunes := len([]rune(line))
		if offset <= consumed+lineRunes {
			break
		}
		consumed += lineRunes + 1

		rows := (runewidth.StringWidth(line) + gutterWidth + inner - 1) / inner
		if rows < 1 {
			rows = 1
		}
		row += rows
	}

	target := row - viewportHeight/2
	if target < 0 {
		target = 0
	}
	return target
}
