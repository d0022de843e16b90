// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerLoadsBuiltins(t *testing.T) {
	m := NewManager()

	require.GreaterOrEqual(t, m.Len(), 4, "built-in profiles missing")

	for _, id := range []string{"pcre_full", "python_re", "go_re2", "grep_basic"} {
		p, ok := m.Get(id)
		require.True(t, ok, "profile %s missing", id)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Features)
	}
}

func TestDefaultProfile(t *testing.T) {
	m := NewManager()

	p, ok := m.Default()
	require.True(t, ok)
	assert.Equal(t, DefaultID, p.ID)
	assert.True(t, p.Extended, "the default profile uses the extended engine")
	assert.True(t, p.Features.Has(FeatureLookahead))
	assert.True(t, p.Features.Has(FeatureNamedGroups))
}

func TestBuiltinEngineSelection(t *testing.T) {
	m := NewManager()

	pcre, _ := m.Get("pcre_full")
	assert.True(t, pcre.Extended)

	re2, _ := m.Get("go_re2")
	assert.False(t, re2.Extended)
	assert.False(t, re2.Features.Has(FeatureLookahead))
	assert.False(t, re2.Features.Has(FeatureBackreferences))

	pyre, _ := m.Get("python_re")
	assert.True(t, pyre.Features.Has(FeatureLookbehind))
	assert.False(t, pyre.Features.Has(FeatureRecursion))
	assert.False(t, pyre.Features.Has(FeaturePossessive))
}

func TestDeriveLeavesOriginalUntouched(t *testing.T) {
	m := NewManager()
	base, _ := m.Get("go_re2")

	edited := base.Features.Clone()
	edited[FeatureLookahead] = true
	derived := base.Derive(edited)

	assert.Equal(t, CustomID, derived.ID)
	assert.True(t, derived.Extended, "derived profiles always run extended")
	assert.True(t, derived.Features.Has(FeatureLookahead))

	// The built-in must not have changed.
	assert.False(t, base.Features.Has(FeatureLookahead))

	// Nor may later edits to the editor's working set leak in.
	edited[FeatureRecursion] = true
	assert.False(t, derived.Features.Has(FeatureRecursion))
}

func TestManagerPutReplacesInPlace(t *testing.T) {
	m := NewManager()
	orderBefore := make([]string, 0, m.Len())
	for _, p := range m.List() {
		orderBefore = append(orderBefore, p.ID)
	}

	m.Put(&Profile{ID: "go_re2", Name: "Replaced", Features: NewFeatureSet()})

	p, ok := m.Get("go_re2")
	require.True(t, ok)
	assert.Equal(t, "Replaced", p.Name)

	orderAfter := make([]string, 0, m.Len())
	for _, p := range m.List() {
		orderAfter = append(orderAfter, p.ID)
	}
	assert.Equal(t, orderBefore, orderAfter, "replacement must keep listing order")
}

func TestMergeFileMissingIsNotAnError(t *testing.T) {
	m := NewManager()
	before := m.Len()

	err := m.MergeFile(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, before, m.Len())
}

func TestMergeFileOverridesAndAdds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.toml")
	content := `
[profiles.go_re2]
name = "My RE2"
description = "override"
features = ["anchors"]

[profiles.homebrew]
name = "Homebrew"
description = "user profile"
extended = true
features = ["anchors", "lookahead"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m := NewManager()
	require.NoError(t, m.MergeFile(path))

	over, ok := m.Get("go_re2")
	require.True(t, ok)
	assert.Equal(t, "My RE2", over.Name)
	assert.False(t, over.Features.Has(FeatureGroups), "override replaces the feature set")

	added, ok := m.Get("homebrew")
	require.True(t, ok)
	assert.True(t, added.Extended)
	assert.True(t, added.Features.Has(FeatureLookahead))
}

func TestFeatureSetClone(t *testing.T) {
	s := NewFeatureSet(FeatureAnchors, FeatureGroups)
	c := s.Clone()
	c[FeatureRecursion] = true

	assert.False(t, s.Has(FeatureRecursion))
	assert.ElementsMatch(t, []string{FeatureAnchors, FeatureGroups}, s.Tags())
}

func TestCatalogTagsMatchConstants(t *testing.T) {
	tags := AllFeatureTags()
	assert.Contains(t, tags, FeatureLookahead)
	assert.Contains(t, tags, FeaturePossessive)
	assert.Contains(t, tags, FeatureRecursion)

	seen := make(map[string]bool)
	for _, tag := range tags {
		assert.False(t, seen[tag], "duplicate catalog tag %s", tag)
		seen[tag] = true
	}
}
