// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package input acquires the text under test: from a file, or piped on
// stdin with the terminal reopened afterwards so the TUI can still read
// key events.
package input

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNoInput is returned when neither a file nor piped stdin provides text.
var ErrNoInput = errors.New("no input provided: pipe text to rexi or use --input file")

// StdinIsTTY reports whether stdin is an interactive terminal (i.e. nothing
// was piped in).
func StdinIsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Read returns the text under test. A non-empty path wins; otherwise piped
// stdin is drained. With no file and an interactive stdin there is nothing
// to test, which is an error the CLI reports before the TUI starts.
func Read(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if StdinIsTTY() {
		return "", ErrNoInput
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// TTY opens the controlling terminal for key input after stdin was
// consumed by a pipe. The caller hands the file to the TUI runtime.
func TTY() (*os.File, error) {
	return os.Open("/dev/tty")
}
