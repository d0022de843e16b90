// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fields

import (
	"context"
	"os/exec"
)

// awkVariants are probed in preference order when no command is configured.
var awkVariants = []string{"gawk", "mawk", "awk"}

// Variants returns the probe order used for autodetection.
func Variants() []string {
	out := make([]string, len(awkVariants))
	copy(out, awkVariants)
	return out
}

// DetectVariants reports which awk implementations resolve on PATH.
func DetectVariants() map[string]bool {
	found := make(map[string]bool, len(awkVariants))
	for _, variant := range awkVariants {
		_, err := exec.LookPath(variant)
		found[variant] = err == nil
	}
	return found
}

// PreferredVariant returns the first available awk variant, defaulting to
// "awk" when none resolves (the runner will then report it as missing).
func PreferredVariant() string {
	for _, variant := range awkVariants {
		if _, err := exec.LookPath(variant); err == nil {
			return variant
		}
	}
	return "awk"
}

// FieldBreakdown pipes the input through the probe program and decodes the
// per-line field structure. An optional field separator is passed to the
// processor with -F. Process failures and decode failures both surface as
// errors; the caller degrades to showing the unmodified input.
func FieldBreakdown(ctx context.Context, r *Runner, input, separator string) ([]Record, error) {
	args := make([]string, 0, 3)
	if separator != "" {
		args = append(args, "-F", separator)
	}
	args = append(args, ProbeProgram())

	out, err := r.Run(ctx, input, args...)
	if err != nil {
		return nil, err
	}
	return Decode(out)
}
