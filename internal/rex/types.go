// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rex provides pattern validation and match extraction for the
// rexi workbench. Patterns are checked against a feature profile, compiled
// by one of two engine capabilities, and executed over the input text to
// produce an ordered set of matches with per-group spans.
package rex

import "fmt"

// =============================================================================
// MATCH TYPES
// =============================================================================

// Span is a half-open rune-offset range [Start, End) into the input text.
// All spans produced by this package are rune offsets, never byte offsets,
// so they address characters the same way the rendering layer does.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// GroupMatch is a single matched group. Index 0 is the whole match; higher
// indices are capturing groups. Name is empty for unnamed groups.
type GroupMatch struct {
	Span  Span
	Value string
	Name  string
	Index int
}

// Match is one pattern occurrence: group 0 first, then every capturing
// group that participated, ordered by group index. Groups that did not
// participate (untaken alternation branches) are omitted entirely.
type Match struct {
	Groups []GroupMatch
}

// Whole returns the group-0 entry for the match.
func (m Match) Whole() GroupMatch {
	return m.Groups[0]
}

// MatchSet is the ordered sequence of matches for one evaluation, sorted by
// match start offset ascending. It is recomputed wholesale on every
// pattern or profile change, never patched incrementally.
type MatchSet []Match

// Mode selects how much of the text one evaluation covers.
type Mode int

const (
	// AllMatches finds every non-overlapping occurrence.
	AllMatches Mode = iota

	// FirstMatch stops after the first occurrence.
	FirstMatch
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ValidationError reports a pattern that uses a syntax feature the active
// profile has disabled. It is recoverable: the UI shows the message inline
// and resets highlighting.
type ValidationError struct {
	// Feature is the profile tag that is missing (e.g. "lookahead").
	Feature string

	// Message is the user-facing explanation.
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CapabilityError reports that a profile requires the extended engine but
// none is available at runtime.
type CapabilityError struct {
	Profile string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("profile %q requires the extended regex engine, which is not available", e.Profile)
}
