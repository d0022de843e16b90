// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fields

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// DefaultTimeout bounds one external-processor invocation. Field probes
// run on every edit, so a hanging processor must be cut off quickly.
const DefaultTimeout = 5 * time.Second

// =============================================================================
// PROCESS ERRORS
// =============================================================================

// ErrorKind distinguishes the reportable external-process failures. They
// are separate conditions, never crashes: the UI falls back to the
// unmodified input text for all of them.
type ErrorKind int

const (
	// KindExit means the processor ran but exited non-zero.
	KindExit ErrorKind = iota

	// KindTimeout means the processor exceeded the execution timeout.
	KindTimeout

	// KindMissing means the executable was not found on PATH.
	KindMissing
)

// ProcessError reports a failed external-processor invocation.
type ProcessError struct {
	Kind    ErrorKind
	Program string
	Stderr  string
	Timeout time.Duration
	Err     error
}

func (e *ProcessError) Error() string {
	switch e.Kind {
	case KindTimeout:
		return fmt.Sprintf("%s execution timed out after %d seconds", e.Program, int(e.Timeout.Seconds()))
	case KindMissing:
		return fmt.Sprintf("%s not found. Please install it.", e.Program)
	default:
		if e.Stderr != "" {
			return strings.TrimSpace(e.Stderr)
		}
		return fmt.Sprintf("%s execution failed", e.Program)
	}
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// =============================================================================
// RUNNER
// =============================================================================

// Runner invokes one external line processor as `<program> <args...>` with
// the input text piped to stdin.
type Runner struct {
	program string
	timeout time.Duration
}

// NewRunner builds a runner for the given program. The program name is
// NFKC-normalized before lookup so homoglyph spellings in configuration
// resolve to the canonical executable name.
func NewRunner(program string, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{
		program: norm.NFKC.String(program),
		timeout: timeout,
	}
}

// Program returns the normalized program name.
func (r *Runner) Program() string {
	return r.program
}

// Available reports whether the program resolves on PATH.
func (r *Runner) Available() bool {
	_, err := exec.LookPath(r.program)
	return err == nil
}

// Run executes the program with the given arguments, piping input to stdin
// and returning stdout. Failures are classified as *ProcessError: timeout,
// missing executable and non-zero exit are distinct, reportable conditions.
func (r *Runner) Run(ctx context.Context, input string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.program, args...)
	cmd.Stdin = strings.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	procErr := &ProcessError{
		Program: r.program,
		Stderr:  stderr.String(),
		Timeout: r.timeout,
		Err:     err,
	}
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		procErr.Kind = KindTimeout
	case errors.Is(err, exec.ErrNotFound):
		procErr.Kind = KindMissing
	default:
		procErr.Kind = KindExit
	}
	return "", procErr
}
