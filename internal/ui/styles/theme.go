// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/andriy-git/rexi/internal/highlight"
)

// Theme holds all the styled components for the application. It detects
// the terminal's color capability and adjusts accordingly.
type Theme struct {
	ColorProfile termenv.Profile
	IsDark       bool

	// ==========================================================================
	// CHROME
	// ==========================================================================

	Header       lipgloss.Style
	HeaderTitle  lipgloss.Style
	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// PATTERN BAR
	// ==========================================================================

	PatternPrompt lipgloss.Style
	ProfileBadge  lipgloss.Style
	CounterSome   lipgloss.Style
	CounterNone   lipgloss.Style

	// ==========================================================================
	// RESULT VIEW
	// ==========================================================================

	LineNumber  lipgloss.Style
	ErrorText   lipgloss.Style
	ErrorCaret  lipgloss.Style
	GroupsTitle lipgloss.Style
	GroupName   lipgloss.Style
	GroupValue  lipgloss.Style

	// ==========================================================================
	// OVERLAYS
	// ==========================================================================

	OverlayBox      lipgloss.Style
	OverlayTitle    lipgloss.Style
	FeatureCategory lipgloss.Style
	FeatureCursor   lipgloss.Style
}

// NewTheme creates the theme for the detected terminal.
func NewTheme() *Theme {
	t := &Theme{
		ColorProfile: termenv.ColorProfile(),
		IsDark:       lipgloss.HasDarkBackground(),
	}

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.ShortcutKey = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.ShortcutDesc = lipgloss.NewStyle().Foreground(TextMuted)

	t.PatternPrompt = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.ProfileBadge = lipgloss.NewStyle().Foreground(Purple)
	t.CounterSome = lipgloss.NewStyle().Foreground(Emerald).Bold(true)
	t.CounterNone = lipgloss.NewStyle().Foreground(TextMuted)

	t.LineNumber = lipgloss.NewStyle().Foreground(TextMuted)
	t.ErrorText = lipgloss.NewStyle().Foreground(Rose)
	t.ErrorCaret = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	t.GroupsTitle = lipgloss.NewStyle().Foreground(TextSecondary).Bold(true)
	t.GroupName = lipgloss.NewStyle().Foreground(Cyan)
	t.GroupValue = lipgloss.NewStyle().Foreground(TextPrimary)

	t.OverlayBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 2)
	t.OverlayTitle = lipgloss.NewStyle().Foreground(Purple).Bold(true)
	t.FeatureCategory = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	t.FeatureCursor = lipgloss.NewStyle().Foreground(Amber).Bold(true)

	return t
}

// StyleFor maps a composed style key to the terminal style that renders
// it: underline for matches (reverse video for the current one), palette
// foreground for capture groups, bold for groups of the current match.
func (t *Theme) StyleFor(key highlight.StyleKey) lipgloss.Style {
	style := lipgloss.NewStyle()

	switch key.Match {
	case highlight.MatchCurrent:
		style = style.Underline(true).Reverse(true)
	case highlight.MatchOther:
		style = style.Underline(true)
	}

	if key.Group >= 0 {
		style = style.Foreground(GroupPalette[key.Group%len(GroupPalette)])
		if key.GroupCurrent {
			style = style.Bold(true)
		}
	}

	return style
}

// RenderStyled flattens styled text into an ANSI string, applying each
// segment's style. Styling is applied per line within a segment so
// viewport slicing by line keeps escape sequences balanced.
func (t *Theme) RenderStyled(st highlight.StyledText) string {
	runes := []rune(st.Text)
	var b strings.Builder
	b.Grow(len(st.Text) + len(st.Segments)*8)

	for _, seg := range st.Segments {
		chunk := string(runes[seg.Start:seg.End])
		if seg.Key.IsPlain() {
			b.WriteString(chunk)
			continue
		}
		style := t.StyleFor(seg.Key)
		lines := strings.Split(chunk, "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}
	return b.String()
}
