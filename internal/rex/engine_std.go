// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rex

import (
	"unicode/utf8"

	"github.com/coregx/coregex"
)

// =============================================================================
// STANDARD ENGINE (coregex, RE2-class)
// =============================================================================

// standardEngine is the linear-time capability. It cannot express
// lookarounds or backreferences, but it is immune to catastrophic
// backtracking, so it needs no execution timeout.
type standardEngine struct{}

func newStandardEngine() Engine {
	return standardEngine{}
}

func (standardEngine) Name() string {
	return "coregex"
}

func (standardEngine) Find(text, pattern string, mode Mode) (MatchSet, error) {
	// Multi-line semantics are always on: ^ and $ bind at line boundaries.
	re, err := coregex.Compile("(?m)" + pattern)
	if err != nil {
		return MatchSet{}, err
	}

	var indexes [][]int
	switch mode {
	case FirstMatch:
		if idx := re.FindStringSubmatchIndex(text); idx != nil {
			indexes = [][]int{idx}
		}
	default:
		indexes = re.FindAllStringSubmatchIndex(text, -1)
	}
	if len(indexes) == 0 {
		return MatchSet{}, nil
	}

	names := re.SubexpNames()
	toRune := runeOffsets(text)

	set := make(MatchSet, 0, len(indexes))
	for _, idx := range indexes {
		groups := make([]GroupMatch, 0, len(idx)/2)
		for gi := 0; 2*gi+1 < len(idx); gi++ {
			start, end := idx[2*gi], idx[2*gi+1]
			if start < 0 {
				// Group did not participate in this match; omit it.
				continue
			}
			name := ""
			if gi > 0 && gi < len(names) {
				name = names[gi]
			}
			groups = append(groups, GroupMatch{
				Span:  Span{Start: toRune[start], End: toRune[end]},
				Value: text[start:end],
				Name:  name,
				Index: gi,
			})
		}
		set = append(set, Match{Groups: groups})
	}
	return set, nil
}

// runeOffsets maps every byte offset at a rune boundary (plus the final
// offset) to its rune offset, so engine results can be converted once per
// evaluation instead of once per group.
func runeOffsets(s string) []int {
	offsets := make([]int, len(s)+1)
	runes := 0
	for b := 0; b < len(s); {
		offsets[b] = runes
		_, size := utf8.DecodeRuneInString(s[b:])
		b += size
		runes++
	}
	offsets[len(s)] = runes
	return offsets
}
