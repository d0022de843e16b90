// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andriy-git/rexi/internal/highlight"
)

// Update is the Bubble Tea update loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case evalResultMsg:
		return m.handleEvalResult(msg)

	case fieldsResultMsg:
		return m.handleFieldsResult(msg)

	case inputReloadedMsg:
		return m.handleReload(msg)

	case watchClosedMsg:
		m.watcher = nil
		return m, nil

	case spinner.TickMsg:
		if !m.evaluating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays capture all keys while open.
	switch m.overlay {
	case overlayHelp:
		if key.Matches(msg, m.keys.Quit) || key.Matches(msg, m.keys.Help) {
			m.overlay = overlayNone
		}
		return m, nil
	case overlayFeatures:
		return m.handleFeaturesKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.sched.Stop()
		m.fieldsSched.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.renderHelp()
		m.overlay = overlayHelp
		return m, nil

	case key.Matches(msg, m.keys.Features):
		m.features = newFeaturesEditor(m.prof.Features)
		m.overlay = overlayFeatures
		return m, nil

	case key.Matches(msg, m.keys.NextMatch):
		m.nav.Next()
		m.recompose()
		m.scrollToCurrent()
		return m, nil

	case key.Matches(msg, m.keys.PrevMatch):
		m.nav.Prev()
		m.recompose()
		m.scrollToCurrent()
		return m, nil

	case key.Matches(msg, m.keys.CycleProfile):
		m.cycleProfile()
		return m, m.startEval()

	case key.Matches(msg, m.keys.ToggleMode):
		if m.mode == modeRegex {
			m.mode = modeFields
			return m, m.startFields()
		}
		m.mode = modeRegex
		return m, nil

	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// Everything else edits the pattern.
	var cmd tea.Cmd
	m.patternInput, cmd = m.patternInput.Update(msg)
	if value := m.patternInput.Value(); value != m.pattern {
		m.pattern = value
		return m, tea.Batch(cmd, m.startEval())
	}
	return m, cmd
}

// cycleProfile selects the next profile in listing order.
func (m *Model) cycleProfile() {
	list := m.profiles.List()
	if len(list) == 0 {
		return
	}
	next := list[0]
	for i, p := range list {
		if p.ID == m.prof.ID {
			next = list[(i+1)%len(list)]
			break
		}
	}
	m.prof = next
}

// =============================================================================
// EVALUATION
// =============================================================================

// startEval schedules a fresh evaluation of the current pattern, implicitly
// superseding any in-flight one.
func (m *Model) startEval() tea.Cmd {
	if m.pattern == "" {
		// An empty pattern is a no-op: clear everything immediately.
		m.sched.Stop()
		m.matches = nil
		m.evalErr = nil
		m.evaluating = false
		m.nav.Load(nil)
		m.recompose()
		return nil
	}
	m.evaluating = true
	return tea.Batch(
		evalCmd(m.sched, m.provider, m.text, m.pattern, m.prof),
		m.spinner.Tick,
	)
}

// startFields schedules a field-extraction probe.
func (m *Model) startFields() tea.Cmd {
	return fieldsCmd(m.fieldsSched, m.awkRunner, m.text, m.cfg.Fields.Separator)
}

func (m Model) handleEvalResult(msg evalResultMsg) (tea.Model, tea.Cmd) {
	if !m.sched.IsCurrent(msg.Ticket) {
		// Superseded by a newer edit; a stale result must never
		// overwrite the rendering.
		return m, nil
	}

	m.evaluating = false
	m.evalErr = msg.Err
	if msg.Err != nil {
		// Any failure discards the match set and resets highlighting.
		m.matches = nil
	} else {
		m.matches = msg.Matches
	}
	m.nav.Load(highlight.MatchPositions(m.matches))
	m.recompose()
	m.scrollToCurrent()

	if msg.Err == nil && len(m.matches) > 0 && m.hist != nil {
		pattern, profID := m.pattern, m.prof.ID
		hist := m.hist
		return m, func() tea.Msg {
			_ = hist.Add(pattern, profID)
			return nil
		}
	}
	return m, nil
}

func (m Model) handleFieldsResult(msg fieldsResultMsg) (tea.Model, tea.Cmd) {
	if !m.fieldsSched.IsCurrent(msg.Ticket) {
		return m, nil
	}
	m.fieldsErr = msg.Err
	if msg.Err != nil {
		m.records = nil
	} else {
		m.records = msg.Records
	}
	return m, nil
}

func (m Model) handleReload(msg inputReloadedMsg) (tea.Model, tea.Cmd) {
	m.text = msg.Text
	cmds := []tea.Cmd{watchCmd(m.watcher), m.startEval()}
	if m.mode == modeFields {
		cmds = append(cmds, m.startFields())
	}
	return m, tea.Batch(cmds...)
}
