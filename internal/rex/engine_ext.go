// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rex

import (
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// =============================================================================
// EXTENDED ENGINE (regexp2, backtracking)
// =============================================================================

// matchTimeout bounds a single evaluation of the backtracking engine. A
// catastrophic pattern must surface as a recoverable error, never freeze
// the evaluation worker.
const matchTimeout = 2 * time.Second

// extendedEngine is the backtracking capability: lookarounds, atomic
// groups and possessive quantifiers are available here.
type extendedEngine struct{}

func newExtendedEngine() Engine {
	return extendedEngine{}
}

func (extendedEngine) Name() string {
	return "regexp2"
}

func (extendedEngine) Find(text, pattern string, mode Mode) (MatchSet, error) {
	// The standard engine accepts Python-style named groups; translate the
	// spelling so both capabilities agree on the syntax the UI documents.
	pattern = strings.ReplaceAll(pattern, "(?P<", "(?<")

	re, err := regexp2.Compile(pattern, regexp2.Multiline)
	if err != nil {
		return MatchSet{}, err
	}
	re.MatchTimeout = matchTimeout

	set := MatchSet{}
	m, err := re.FindStringMatch(text)
	for err == nil && m != nil {
		set = append(set, extractGroups(m))
		if mode == FirstMatch {
			break
		}
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return MatchSet{}, err
	}
	return set, nil
}

// extractGroups converts a regexp2 match into the workbench representation.
// regexp2 indexes are already rune offsets, so spans carry over directly.
func extractGroups(m *regexp2.Match) Match {
	raw := m.Groups()
	groups := make([]GroupMatch, 0, len(raw))
	for i := range raw {
		g := &raw[i]
		if i > 0 && len(g.Captures) == 0 {
			// Group did not participate in this match; omit it.
			continue
		}
		name := ""
		if i > 0 && g.Name != strconv.Itoa(i) {
			name = g.Name
		}
		groups = append(groups, GroupMatch{
			Span:  Span{Start: g.Index, End: g.Index + g.Length},
			Value: g.String(),
			Name:  name,
			Index: i,
		})
	}
	return Match{Groups: groups}
}
