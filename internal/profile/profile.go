// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package profile defines named bundles of permitted pattern-syntax
// features plus an engine-capability flag, and the manager that loads them
// from TOML configuration at startup.
package profile

import (
	_ "embed"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

//go:embed defaults.toml
var defaultProfiles []byte

// DefaultID is the profile selected when no configuration says otherwise.
const DefaultID = "pcre_full"

// CustomID is the id of the session-local profile derived by the features
// editor. Derived profiles are never persisted across sessions.
const CustomID = "custom"

// =============================================================================
// FEATURE SET
// =============================================================================

// FeatureSet is the set of feature tags a profile permits.
type FeatureSet map[string]bool

// NewFeatureSet builds a set from the given tags.
func NewFeatureSet(tags ...string) FeatureSet {
	set := make(FeatureSet, len(tags))
	for _, tag := range tags {
		set[tag] = true
	}
	return set
}

// Has reports whether the tag is enabled.
func (s FeatureSet) Has(tag string) bool {
	return s[tag]
}

// Clone returns an independent copy of the set.
func (s FeatureSet) Clone() FeatureSet {
	out := make(FeatureSet, len(s))
	for tag, on := range s {
		if on {
			out[tag] = true
		}
	}
	return out
}

// Tags returns the enabled tags in sorted order.
func (s FeatureSet) Tags() []string {
	tags := make([]string, 0, len(s))
	for tag, on := range s {
		if on {
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// =============================================================================
// PROFILE
// =============================================================================

// Profile is an immutable named feature bundle. Built-in profiles are never
// mutated in place: user edits derive a new custom profile via Derive.
type Profile struct {
	ID          string
	Name        string
	Description string
	Features    FeatureSet
	// Extended selects the backtracking engine capability, which is the
	// only one that can honor lookarounds and possessive quantifiers.
	Extended bool
}

// Derive returns a session-local custom profile carrying the given feature
// set. The receiver is left untouched. Custom profiles always select the
// extended engine so that every toggleable feature can actually run.
func (p *Profile) Derive(features FeatureSet) *Profile {
	return &Profile{
		ID:          CustomID,
		Name:        "Custom",
		Description: "Custom feature set",
		Features:    features.Clone(),
		Extended:    true,
	}
}

// =============================================================================
// MANAGER
// =============================================================================

// Manager holds the profiles loaded at startup plus any derived custom
// profile registered during the session.
type Manager struct {
	profiles map[string]*Profile
	order    []string
}

// profilesFile mirrors the TOML layout of the profile source.
type profilesFile struct {
	Profiles map[string]profileEntry `toml:"profiles"`
}

type profileEntry struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Features    []string `toml:"features"`
	Extended    bool     `toml:"extended"`
}

// NewManager loads the built-in profiles. A parse failure of the embedded
// defaults degrades to an empty profile set; the workbench stays usable
// with validation effectively off.
func NewManager() *Manager {
	m := &Manager{profiles: make(map[string]*Profile)}
	m.merge(defaultProfiles)
	return m
}

// MergeFile merges profiles from a user TOML file over the current set.
// A missing file is not an error; the loaded set simply stays as it is.
func (m *Manager) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return m.merge(data)
}

func (m *Manager) merge(data []byte) error {
	var file profilesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return err
	}

	ids := make([]string, 0, len(file.Profiles))
	for id := range file.Profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entry := file.Profiles[id]
		m.Put(&Profile{
			ID:          id,
			Name:        entry.Name,
			Description: entry.Description,
			Features:    NewFeatureSet(entry.Features...),
			Extended:    entry.Extended,
		})
	}
	return nil
}

// Put registers a profile, replacing any existing profile with the same id
// while keeping its position in the listing order.
func (m *Manager) Put(p *Profile) {
	if _, exists := m.profiles[p.ID]; !exists {
		m.order = append(m.order, p.ID)
	}
	m.profiles[p.ID] = p
}

// Get returns the profile with the given id.
func (m *Manager) Get(id string) (*Profile, bool) {
	p, ok := m.profiles[id]
	return p, ok
}

// List returns all profiles in stable registration order.
func (m *Manager) List() []*Profile {
	out := make([]*Profile, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.profiles[id])
	}
	return out
}

// Len returns the number of registered profiles.
func (m *Manager) Len() int {
	return len(m.profiles)
}

// Default returns the default profile, falling back to the first registered
// one when the canonical default is absent. The second result is false only
// for an empty profile set.
func (m *Manager) Default() (*Profile, bool) {
	if p, ok := m.profiles[DefaultID]; ok {
		return p, true
	}
	if len(m.order) > 0 {
		return m.profiles[m.order[0]], true
	}
	return nil, false
}
