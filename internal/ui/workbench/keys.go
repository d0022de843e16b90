// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench provides the interactive pattern-matching view: a
// pattern bar, the highlighted result viewport, a capture-group panel and
// the overlays for help and feature editing.
//
// This file defines keyboard bindings. The pattern input keeps focus the
// whole session, so every global action lives on a control or function
// key that cannot collide with pattern text.
package workbench

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard bindings for the workbench.
type KeyMap struct {
	NextMatch    key.Binding
	PrevMatch    key.Binding
	CycleProfile key.Binding
	ToggleMode   key.Binding
	Help         key.Binding
	Features     key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextMatch: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "prev match"),
		),
		CycleProfile: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "cycle profile"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "regex/fields"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Features: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "features"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("Esc", "quit"),
		),
	}
}
