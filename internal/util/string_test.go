// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"héllo wörld", 8, "héllo..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"abcd", 0, ""},
		{"abcd", -1, ""},
	}
	for _, tt := range tests {
		if got := TruncateRunes(tt.in, tt.max); got != tt.want {
			t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestSafeSubstring(t *testing.T) {
	tests := []struct {
		in         string
		start, end int
		want       string
	}{
		{"hello", 1, 3, "el"},
		{"héllo", 1, 3, "él"},
		{"hello", -2, 3, "hel"},
		{"hello", 2, 99, "llo"},
		{"hello", 3, 2, ""},
		{"hello", 99, 100, ""},
		{"", 0, 5, ""},
	}
	for _, tt := range tests {
		if got := SafeSubstring(tt.in, tt.start, tt.end); got != tt.want {
			t.Errorf("SafeSubstring(%q, %d, %d) = %q, want %q", tt.in, tt.start, tt.end, got, tt.want)
		}
	}
}
