// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rex

import (
	"github.com/andriy-git/rexi/internal/profile"
)

// =============================================================================
// ENGINE CAPABILITY
// =============================================================================

// Engine is one pattern-matching capability. Implementations compile the
// pattern with multi-line semantics always on (^ and $ bind at line
// boundaries) and execute it over the text. Compile and runtime errors are
// returned verbatim so the UI can render embedded position markers.
type Engine interface {
	// Name identifies the capability (used in error display and logs).
	Name() string

	// Find compiles and executes the pattern over text.
	Find(text, pattern string, mode Mode) (MatchSet, error)
}

// =============================================================================
// PROVIDER
// =============================================================================

// Provider selects between the standard and extended engine capabilities
// based on the profile flag at call time. It holds no pattern or profile
// state of its own; every operation takes the session context explicitly.
type Provider struct {
	standard Engine
	extended Engine
}

// NewProvider returns a provider with both capabilities wired: coregex as
// the standard linear-time engine and regexp2 as the extended backtracking
// engine.
func NewProvider() *Provider {
	return &Provider{
		standard: newStandardEngine(),
		extended: newExtendedEngine(),
	}
}

// NewProviderWith builds a provider from explicit capabilities. A nil
// extended engine models a runtime where the extended capability is absent.
func NewProviderWith(standard, extended Engine) *Provider {
	return &Provider{standard: standard, extended: extended}
}

// FindMatches evaluates pattern over text under the given profile.
//
// The empty pattern is a no-op, not a failure: it yields an empty set and
// no error. Validation runs before any compilation; a validation failure
// returns the message with an empty set. When the profile requires the
// extended engine and none is wired, a *CapabilityError is returned.
func (p *Provider) FindMatches(text, pattern string, prof *profile.Profile, mode Mode) (MatchSet, error) {
	if pattern == "" {
		return MatchSet{}, nil
	}

	if err := Validate(pattern, prof); err != nil {
		return MatchSet{}, err
	}

	engine := p.standard
	if prof != nil && prof.Extended {
		if p.extended == nil {
			return MatchSet{}, &CapabilityError{Profile: prof.Name}
		}
		engine = p.extended
	}

	return engine.Find(text, pattern, mode)
}
