// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench provides the interactive pattern-matching view.
//
// This file defines the Bubble Tea message types used by the workbench:
// evaluation results, field-extraction results and input reloads. Every
// result message carries its evaluation ticket so stale results that
// resolve after a newer request can be recognized and dropped.
package workbench

import (
	"github.com/andriy-git/rexi/internal/eval"
	"github.com/andriy-git/rexi/internal/fields"
	"github.com/andriy-git/rexi/internal/rex"
)

// evalResultMsg delivers a finished pattern evaluation.
type evalResultMsg struct {
	Ticket  eval.Ticket
	Matches rex.MatchSet
	Err     error
}

// fieldsResultMsg delivers a finished field-extraction probe.
type fieldsResultMsg struct {
	Ticket  eval.Ticket
	Records []fields.Record
	Err     error
}

// inputReloadedMsg delivers new input text after the watched file changed.
type inputReloadedMsg struct {
	Text string
}

// watchClosedMsg signals that the file watcher shut down.
type watchClosedMsg struct{}
