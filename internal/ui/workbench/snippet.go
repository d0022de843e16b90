// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/andriy-git/rexi/internal/util"
)

// snippetRadius is how many pattern characters are shown on each side of
// the error position.
const snippetRadius = 20

// positionMarker matches the "at position <N>" fragment some engine error
// messages embed.
var positionMarker = regexp.MustCompile(`at position (\d+)`)

// errorSnippet renders an engine error that carries a position marker as a
// pattern excerpt with a caret pointing at the offending offset. It
// returns ok=false when the message has no usable marker, in which case
// the caller shows the message alone.
func errorSnippet(pattern, message string) (snippet, caret string, ok bool) {
	sub := positionMarker.FindStringSubmatch(message)
	if sub == nil {
		return "", "", false
	}
	pos, err := strconv.Atoi(sub[1])
	if err != nil {
		return "", "", false
	}

	runes := []rune(pattern)
	if pos < 0 || pos > len(runes) {
		return "", "", false
	}

	start := pos - snippetRadius
	if start < 0 {
		start = 0
	}
	end := pos + snippetRadius
	if end > len(runes) {
		end = len(runes)
	}

	snippet = util.SafeSubstring(pattern, start, end)
	caret = strings.Repeat(" ", pos-start) + "^"
	return snippet, caret, true
}
