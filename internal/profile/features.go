// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package profile

// Feature tags name the pattern-syntax features a profile can permit.
// The validator keys its lexical checks on these, and the features editor
// groups them by category for display.
const (
	FeatureAnchors            = "anchors"
	FeatureLookahead          = "lookahead"
	FeatureLookbehind         = "lookbehind"
	FeatureVariableLookbehind = "variable_lookbehind"
	FeatureGroups             = "groups"
	FeatureNamedGroups        = "named_groups"
	FeatureNonCapturing       = "non_capturing"
	FeatureBackreferences     = "backreferences"
	FeatureBranchReset        = "branch_reset"
	FeatureQuantifiers        = "quantifiers"
	FeaturePossessive         = "possessive"
	FeatureAtomic             = "atomic"
	FeatureClasses            = "classes"
	FeatureAlternation        = "alternation"
	FeatureEscapes            = "escapes"
	FeatureUnicodeProperties  = "unicode_properties"
	FeatureRecursion          = "recursion"
	FeatureFuzzy              = "fuzzy"
)

// FeatureInfo describes one toggleable feature for the editor overlay.
type FeatureInfo struct {
	Tag   string
	Label string
}

// FeatureCategory groups related features under a display heading.
type FeatureCategory struct {
	Name     string
	Features []FeatureInfo
}

// Catalog is the full feature list in display order.
var Catalog = []FeatureCategory{
	{
		Name: "Anchors & Boundaries",
		Features: []FeatureInfo{
			{FeatureAnchors, "Start/End (^, $)"},
			{FeatureLookahead, "Lookahead (?=...)"},
			{FeatureLookbehind, "Lookbehind (?<=...)"},
			{FeatureVariableLookbehind, "Variable Lookbehind"},
		},
	},
	{
		Name: "Groups & Captures",
		Features: []FeatureInfo{
			{FeatureGroups, "Capturing Groups (...)"},
			{FeatureNamedGroups, "Named Groups (?P<name>...)"},
			{FeatureNonCapturing, "Non-capturing (?:...)"},
			{FeatureBackreferences, "Backreferences \\1"},
			{FeatureBranchReset, "Branch Reset (?|...)"},
		},
	},
	{
		Name: "Quantifiers",
		Features: []FeatureInfo{
			{FeatureQuantifiers, "Basic (*, +, ?)"},
			{FeaturePossessive, "Possessive (*+, ++, ?+)"},
			{FeatureAtomic, "Atomic Groups (?>...)"},
		},
	},
	{
		Name: "Other",
		Features: []FeatureInfo{
			{FeatureClasses, "Character Classes [...]"},
			{FeatureAlternation, "Alternation |"},
			{FeatureEscapes, "Escapes \\d, \\w"},
			{FeatureUnicodeProperties, "Unicode Properties \\p{...}"},
			{FeatureRecursion, "Recursion (?R)"},
			{FeatureFuzzy, "Fuzzy Matching"},
		},
	},
}

// AllFeatureTags returns every tag in the catalog, in display order.
func AllFeatureTags() []string {
	var tags []string
	for _, cat := range Catalog {
		for _, f := range cat.Features {
			tags = append(tags, f.Tag)
		}
	}
	return tags
}
