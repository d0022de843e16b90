// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fields

import (
	"context"
	"strings"
)

// RunFilter pipes JSON input through a jq filter and returns the raw
// output. An empty filter defaults to identity so a blank program shows
// the pretty-printed input instead of a usage error.
func RunFilter(ctx context.Context, r *Runner, filter, input string) (string, error) {
	if strings.TrimSpace(filter) == "" {
		filter = "."
	}
	return r.Run(ctx, input, filter)
}
