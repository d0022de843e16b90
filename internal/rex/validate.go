// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rex

import (
	"strings"

	"github.com/andriy-git/rexi/internal/profile"
)

// =============================================================================
// LEXICAL FEATURE VALIDATION
// =============================================================================

// featureCheck ties a profile feature tag to the pattern markers that imply
// it. Detection is substring-based, not a structural parse: a marker inside
// a character class still fires. That imprecision is accepted so validation
// stays instant under live typing.
type featureCheck struct {
	feature string
	markers []string
	message string
}

// checks run in a fixed order; the first failing check wins.
var checks = []featureCheck{
	{
		feature: profile.FeatureLookahead,
		markers: []string{"(?="},
		message: "Lookahead '(?=' is not enabled in this profile",
	},
	{
		feature: profile.FeatureLookbehind,
		markers: []string{"(?<="},
		message: "Lookbehind '(?<=' is not enabled in this profile",
	},
	{
		feature: profile.FeatureAtomic,
		markers: []string{"(?>"},
		message: "Atomic groups '(?>' are not enabled in this profile",
	},
	{
		feature: profile.FeaturePossessive,
		markers: []string{"*+", "++", "?+"},
		message: "Possessive quantifiers are not enabled in this profile",
	},
	{
		feature: profile.FeatureRecursion,
		markers: []string{"(?R)", "(?0)"},
		message: "Recursion is not enabled in this profile",
	},
	{
		feature: profile.FeatureNamedGroups,
		markers: []string{"(?P<"},
		message: "Named groups '(?P<...>' are not enabled in this profile",
	},
}

// Validate runs the lexical feature checks against the profile's enabled
// feature set. It returns nil for a valid pattern, or a *ValidationError
// for the first disabled feature the pattern uses. The empty pattern is
// always valid, and a nil profile permits everything.
func Validate(pattern string, prof *profile.Profile) error {
	if pattern == "" || prof == nil {
		return nil
	}

	for _, check := range checks {
		if prof.Features.Has(check.feature) {
			continue
		}
		for _, marker := range check.markers {
			if strings.Contains(pattern, marker) {
				return &ValidationError{
					Feature: check.feature,
					Message: check.message,
				}
			}
		}
	}

	return nil
}
