// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// groupsPanelRows is the fixed height of the capture-group panel,
// including its title row.
const groupsPanelRows = 4

// View renders the workbench.
func (m Model) View() string {
	if !m.ready {
		return "initializing..."
	}

	switch m.overlay {
	case overlayHelp:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.theme.OverlayBox.Render(m.helpText))
	case overlayFeatures:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.viewFeatures())
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteByte('\n')
	b.WriteString(m.viewPatternBar())
	b.WriteByte('\n')

	if m.mode == modeFields {
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Height(m.viewport.Height).
			MaxHeight(m.viewport.Height).
			Render(m.viewFields()))
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteByte('\n')

	b.WriteString(m.viewGroupsPanel())
	b.WriteString(m.viewStatusBar())
	return b.String()
}

// =============================================================================
// CHROME
// =============================================================================

func (m Model) viewHeader() string {
	title := m.theme.HeaderTitle.Render("rexi")
	sub := " — interactive pattern workbench"
	return m.theme.Header.Width(m.width).Render(title + sub)
}

func (m Model) viewPatternBar() string {
	prompt := m.theme.PatternPrompt.Render("/ ")

	badge := m.theme.ProfileBadge.Render("[" + m.prof.Name + "]")
	modeBadge := ""
	if m.mode == modeFields {
		modeBadge = m.theme.ProfileBadge.Render(" [fields]")
	}

	counter := m.nav.Counter()
	if m.nav.Len() > 0 {
		counter = m.theme.CounterSome.Render(counter)
	} else {
		counter = m.theme.CounterNone.Render(counter)
	}
	if m.evaluating {
		counter = m.spinner.View() + " " + counter
	}

	right := badge + modeBadge + " " + counter
	rightWidth := lipgloss.Width(right)

	inputWidth := m.width - lipgloss.Width(prompt) - rightWidth - 1
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.patternInput.Width = inputWidth

	left := prompt + m.patternInput.View()
	gap := m.width - lipgloss.Width(left) - rightWidth
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// viewGroupsPanel shows the selected match's capture groups, or the
// active error. Validation and engine errors render here so the result
// view above can fall back to plain text.
func (m Model) viewGroupsPanel() string {
	var lines []string

	switch {
	case m.evalErr != nil:
		lines = append(lines, m.theme.ErrorText.Render(m.evalErr.Error()))
		if snippet, caret, ok := errorSnippet(m.pattern, m.evalErr.Error()); ok {
			lines = append(lines,
				"  "+snippet,
				"  "+m.theme.ErrorCaret.Render(caret))
		}

	case m.currentMatch() != nil:
		match := m.currentMatch()
		lines = append(lines, m.theme.GroupsTitle.Render(
			fmt.Sprintf("Match %s groups", m.nav.Counter())))
		var parts []string
		for _, g := range match.Groups {
			if g.Index == 0 {
				continue
			}
			label := fmt.Sprintf("%d", g.Index)
			if g.Name != "" {
				label = fmt.Sprintf("%d:%s", g.Index, g.Name)
			}
			parts = append(parts,
				m.theme.GroupName.Render(label)+"="+
					m.theme.GroupValue.Render(fmt.Sprintf("%q", g.Value)))
		}
		if len(parts) == 0 {
			lines = append(lines, m.theme.ShortcutDesc.Render("(no capture groups)"))
		} else {
			lines = append(lines, strings.Join(parts, "  "))
		}

	default:
		lines = append(lines, m.theme.GroupsTitle.Render("Groups"))
		lines = append(lines, m.theme.ShortcutDesc.Render("(no matches)"))
	}

	for len(lines) < groupsPanelRows {
		lines = append(lines, "")
	}
	return strings.Join(lines[:groupsPanelRows], "\n") + "\n"
}

func (m Model) viewStatusBar() string {
	bindings := []struct{ key, desc string }{
		{"C-n/C-p", "match"},
		{"C-r", "profile"},
		{"C-t", "fields"},
		{"F1", "help"},
		{"F2", "features"},
		{"Esc", "quit"},
	}
	var parts []string
	for _, b := range bindings {
		parts = append(parts,
			m.theme.ShortcutKey.Render(b.key)+" "+m.theme.ShortcutDesc.Render(b.desc))
	}
	return m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, "  "))
}
