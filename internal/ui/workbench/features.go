// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andriy-git/rexi/internal/profile"
)

// =============================================================================
// FEATURES EDITOR OVERLAY
// =============================================================================

// featuresEditor is the state of the feature-toggle overlay. Toggles are
// applied to a working copy; the active profile is only touched on apply,
// and then via a derived custom profile, never in place.
type featuresEditor struct {
	items   []featureItem
	cursor  int
	enabled profile.FeatureSet
}

type featureItem struct {
	header bool
	tag    string
	label  string
}

func newFeaturesEditor(current profile.FeatureSet) *featuresEditor {
	ed := &featuresEditor{enabled: current.Clone()}
	for _, cat := range profile.Catalog {
		ed.items = append(ed.items, featureItem{header: true, label: cat.Name})
		for _, f := range cat.Features {
			ed.items = append(ed.items, featureItem{tag: f.Tag, label: f.Label})
		}
	}
	ed.cursor = 1 // first toggleable row
	return ed
}

func (ed *featuresEditor) move(delta int) {
	i := ed.cursor
	for {
		i += delta
		if i < 0 || i >= len(ed.items) {
			return
		}
		if !ed.items[i].header {
			ed.cursor = i
			return
		}
	}
}

func (ed *featuresEditor) toggle() {
	item := ed.items[ed.cursor]
	if item.header {
		return
	}
	if ed.enabled.Has(item.tag) {
		delete(ed.enabled, item.tag)
	} else {
		ed.enabled[item.tag] = true
	}
}

// handleFeaturesKey drives the overlay. Apply derives a session-local
// custom profile from the edited feature set and re-evaluates.
func (m Model) handleFeaturesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.features.move(-1)
	case "down", "j":
		m.features.move(1)
	case " ":
		m.features.toggle()
	case "enter":
		derived := m.prof.Derive(m.features.enabled)
		m.profiles.Put(derived)
		m.prof = derived
		m.overlay = overlayNone
		return m, m.startEval()
	case "esc", "ctrl+c", "q":
		m.overlay = overlayNone
	}
	return m, nil
}

// viewFeatures renders the overlay body.
func (m Model) viewFeatures() string {
	ed := m.features
	var b strings.Builder
	b.WriteString(m.theme.OverlayTitle.Render("Regex Features"))
	b.WriteString("\n\n")

	for i, item := range ed.items {
		if item.header {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(m.theme.FeatureCategory.Render(item.label))
			b.WriteByte('\n')
			continue
		}

		mark := "[ ]"
		if ed.enabled.Has(item.tag) {
			mark = "[x]"
		}
		line := mark + " " + item.label
		if i == ed.cursor {
			line = m.theme.FeatureCursor.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.theme.ShortcutDesc.Render("space toggle · enter apply · esc cancel"))
	return m.theme.OverlayBox.Render(b.String())
}
