// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench provides the interactive pattern-matching view.
//
// This file defines the background commands. Matching and external-process
// calls are blocking, so they run as Bubble Tea commands off the update
// loop: a catastrophic pattern or a hanging awk must never freeze input
// handling.
package workbench

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andriy-git/rexi/internal/eval"
	"github.com/andriy-git/rexi/internal/fields"
	"github.com/andriy-git/rexi/internal/input"
	"github.com/andriy-git/rexi/internal/profile"
	"github.com/andriy-git/rexi/internal/rex"
)

// evalCmd runs one pattern evaluation under a fresh ticket. The scheduler
// cancels the previous attempt, rate-limits bursts from fast typing, and
// stamps the result so the update loop can discard it if it has already
// been superseded.
func evalCmd(sched *eval.Scheduler, provider *rex.Provider, text, pattern string, prof *profile.Profile) tea.Cmd {
	ctx, ticket := sched.Begin(context.Background())
	return func() tea.Msg {
		if err := sched.Wait(ctx); err != nil {
			// Superseded while throttled; nothing to report.
			return nil
		}
		matches, err := provider.FindMatches(text, pattern, prof, rex.AllMatches)
		return evalResultMsg{Ticket: ticket, Matches: matches, Err: err}
	}
}

// fieldsCmd runs the field-extraction probe through the external
// processor under a fresh ticket on the fields scheduler.
func fieldsCmd(sched *eval.Scheduler, runner *fields.Runner, text, separator string) tea.Cmd {
	ctx, ticket := sched.Begin(context.Background())
	return func() tea.Msg {
		if err := sched.Wait(ctx); err != nil {
			return nil
		}
		records, err := fields.FieldBreakdown(ctx, runner, text, separator)
		return fieldsResultMsg{Ticket: ticket, Records: records, Err: err}
	}
}

// watchCmd waits for the next reload from the input-file watcher.
func watchCmd(w *input.Watcher) tea.Cmd {
	return func() tea.Msg {
		text, ok := <-w.Events()
		if !ok {
			return watchClosedMsg{}
		}
		return inputReloadedMsg{Text: text}
	}
}
