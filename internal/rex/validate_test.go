// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rex

import (
	"errors"
	"testing"

	"github.com/andriy-git/rexi/internal/profile"
)

func restrictedProfile(features ...string) *profile.Profile {
	return &profile.Profile{
		ID:       "test",
		Name:     "Test",
		Features: profile.NewFeatureSet(features...),
	}
}

func TestValidateDisabledFeatures(t *testing.T) {
	prof := restrictedProfile(profile.FeatureGroups, profile.FeatureQuantifiers)

	tests := []struct {
		name    string
		pattern string
		feature string
	}{
		{"lookahead", `\w+(?=@)`, profile.FeatureLookahead},
		{"lookbehind", `(?<=@)\w+`, profile.FeatureLookbehind},
		{"atomic group", `(?>ab)c`, profile.FeatureAtomic},
		{"possessive star", `a*+b`, profile.FeaturePossessive},
		{"possessive plus", `a++b`, profile.FeaturePossessive},
		{"possessive question", `a?+b`, profile.FeaturePossessive},
		{"recursion R", `a(?R)?b`, profile.FeatureRecursion},
		{"recursion 0", `a(?0)?b`, profile.FeatureRecursion},
		{"named group", `(?P<word>\w+)`, profile.FeatureNamedGroups},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.pattern, prof)
			if err == nil {
				t.Fatalf("Validate(%q) = nil, want ValidationError", tt.pattern)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate(%q) returned %T, want *ValidationError", tt.pattern, err)
			}
			if verr.Feature != tt.feature {
				t.Errorf("feature = %q, want %q", verr.Feature, tt.feature)
			}
			if verr.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}

func TestValidateEnabledFeatures(t *testing.T) {
	prof := restrictedProfile(profile.AllFeatureTags()...)

	patterns := []string{
		`\w+(?=@)`,
		`(?<=@)\w+`,
		`(?>ab)c`,
		`a*+`,
		`(?R)`,
		`(?P<word>\w+)`,
	}
	for _, p := range patterns {
		if err := Validate(p, prof); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", p, err)
		}
	}
}

func TestValidateLookbehindBeforeNamedGroups(t *testing.T) {
	// "(?P<" contains no lookbehind marker, but "(?<=" starts like a named
	// group in some dialects. The checks must not confuse the two.
	prof := restrictedProfile(profile.FeatureNamedGroups)
	err := Validate(`(?<=x)y`, prof)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Feature != profile.FeatureLookbehind {
		t.Fatalf("Validate((?<=x)y) = %v, want lookbehind ValidationError", err)
	}
}

func TestValidateEmptyPattern(t *testing.T) {
	prof := restrictedProfile()
	if err := Validate("", prof); err != nil {
		t.Errorf("empty pattern: %v, want nil", err)
	}
}

func TestValidateNilProfile(t *testing.T) {
	if err := Validate(`(?P<x>a)(?=b)`, nil); err != nil {
		t.Errorf("nil profile: %v, want nil", err)
	}
}

func TestValidateFirstCheckWins(t *testing.T) {
	// Both lookahead and named groups are disabled; the lookahead check
	// runs first and must name that feature.
	prof := restrictedProfile()
	err := Validate(`(?=a)(?P<x>b)`, prof)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if verr.Feature != profile.FeatureLookahead {
		t.Errorf("feature = %q, want %q", verr.Feature, profile.FeatureLookahead)
	}
}
