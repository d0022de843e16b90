// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.DefaultProfile != "pcre_full" {
		t.Errorf("default profile = %q", cfg.DefaultProfile)
	}
	if cfg.Fields.TimeoutSecs != 5 {
		t.Errorf("timeout = %d, want 5", cfg.Fields.TimeoutSecs)
	}
	if cfg.Fields.JqCommand != "jq" {
		t.Errorf("jq command = %q", cfg.Fields.JqCommand)
	}
	if !cfg.UI.LineNumbers {
		t.Error("line numbers off by default")
	}
	if got := cfg.FieldsTimeout(); got != 5*time.Second {
		t.Errorf("FieldsTimeout = %v", got)
	}
}

func TestLoadFileMissingYieldsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.DefaultProfile != "pcre_full" {
		t.Errorf("profile = %q, want defaults", cfg.DefaultProfile)
	}
}

func TestLoadFileParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
default_profile = "go_re2"

[fields]
awk_command = "mawk"
separator = ","
timeout_secs = 10

[ui]
line_numbers = false
history_limit = 50
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.DefaultProfile != "go_re2" {
		t.Errorf("profile = %q", cfg.DefaultProfile)
	}
	if cfg.Fields.AwkCommand != "mawk" || cfg.Fields.Separator != "," {
		t.Errorf("fields = %+v", cfg.Fields)
	}
	if cfg.Fields.TimeoutSecs != 10 {
		t.Errorf("timeout = %d", cfg.Fields.TimeoutSecs)
	}
	if cfg.UI.LineNumbers || cfg.UI.HistoryLimit != 50 {
		t.Errorf("ui = %+v", cfg.UI)
	}
}

func TestLoadFileInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("invalid TOML did not error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("REXI_PROFILE", "python_re")
	t.Setenv("REXI_AWK", "gawk")
	t.Setenv("REXI_JQ", "gojq")
	t.Setenv("REXI_TIMEOUT_SECS", "7")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.DefaultProfile != "python_re" {
		t.Errorf("profile = %q", cfg.DefaultProfile)
	}
	if cfg.Fields.AwkCommand != "gawk" {
		t.Errorf("awk = %q", cfg.Fields.AwkCommand)
	}
	if cfg.Fields.JqCommand != "gojq" {
		t.Errorf("jq = %q", cfg.Fields.JqCommand)
	}
	if cfg.Fields.TimeoutSecs != 7 {
		t.Errorf("timeout = %d", cfg.Fields.TimeoutSecs)
	}
}

func TestValidateClampsTimeout(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-3, 1},
		{61, 60},
		{30, 30},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Fields.TimeoutSecs = tt.in
		cfg.validate()
		if cfg.Fields.TimeoutSecs != tt.want {
			t.Errorf("validate(%d) = %d, want %d", tt.in, cfg.Fields.TimeoutSecs, tt.want)
		}
	}
}

func TestValidateRestoresEmptyProfile(t *testing.T) {
	cfg := Default()
	cfg.DefaultProfile = ""
	cfg.validate()
	if cfg.DefaultProfile != "pcre_full" {
		t.Errorf("profile = %q", cfg.DefaultProfile)
	}
}

func TestGlobalSetAndGet(t *testing.T) {
	cfg := Default()
	cfg.DefaultProfile = "grep_basic"
	SetGlobal(cfg)

	if got := Global().DefaultProfile; got != "grep_basic" {
		t.Errorf("Global profile = %q", got)
	}
}
