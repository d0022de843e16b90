// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for rexi.
//
// Configuration lives at ~/.rexi/config.toml with sensible defaults and
// environment variable overrides. A missing file is never an error.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete rexi configuration.
type Config struct {
	// DefaultProfile is the profile id selected at startup.
	DefaultProfile string `toml:"default_profile"`

	// Fields configures the external field-processor integration.
	Fields FieldsConfig `toml:"fields"`

	// UI configures rendering options.
	UI UIConfig `toml:"ui"`
}

// FieldsConfig configures the external field processor.
type FieldsConfig struct {
	// AwkCommand is the awk variant to invoke (empty = autodetect).
	AwkCommand string `toml:"awk_command"`

	// JqCommand is the jq executable used for JSON input.
	JqCommand string `toml:"jq_command"`

	// Separator is an optional field separator passed with -F.
	Separator string `toml:"separator"`

	// TimeoutSecs bounds one processor invocation. Clamped to [1, 60].
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig contains UI rendering configuration.
type UIConfig struct {
	// LineNumbers shows a line-number gutter in the result view.
	LineNumbers bool `toml:"line_numbers"`

	// HistoryLimit caps how many recent patterns the REPL preloads.
	HistoryLimit int `toml:"history_limit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultProfile: "pcre_full",
		Fields: FieldsConfig{
			JqCommand:   "jq",
			TimeoutSecs: 5,
		},
		UI: UIConfig{
			LineNumbers:  true,
			HistoryLimit: 200,
		},
	}
}

// FieldsTimeout returns the external-processor timeout as a duration.
func (c *Config) FieldsTimeout() time.Duration {
	return time.Duration(c.Fields.TimeoutSecs) * time.Second
}

// =============================================================================
// LOADING
// =============================================================================

// Dir returns the rexi configuration directory (~/.rexi).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rexi"
	}
	return filepath.Join(home, ".rexi")
}

// Load reads the configuration file, applies environment overrides and
// validates the result. A missing file yields the defaults.
func Load() (*Config, error) {
	return LoadFile(filepath.Join(Dir(), "config.toml"))
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)
	cfg.validate()
	return cfg, nil
}

// applyEnv overrides file values from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("REXI_PROFILE"); v != "" {
		cfg.DefaultProfile = v
	}
	if v := os.Getenv("REXI_AWK"); v != "" {
		cfg.Fields.AwkCommand = v
	}
	if v := os.Getenv("REXI_JQ"); v != "" {
		cfg.Fields.JqCommand = v
	}
	if v := os.Getenv("REXI_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fields.TimeoutSecs = n
		}
	}
}

// validate clamps out-of-range values instead of failing startup.
func (c *Config) validate() {
	if c.Fields.TimeoutSecs < 1 {
		c.Fields.TimeoutSecs = 1
	}
	if c.Fields.TimeoutSecs > 60 {
		c.Fields.TimeoutSecs = 60
	}
	if c.UI.HistoryLimit < 0 {
		c.UI.HistoryLimit = 0
	}
	if c.DefaultProfile == "" {
		c.DefaultProfile = "pcre_full"
	}
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// Global returns the process-wide configuration, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalCfg != nil {
		defer globalMu.RUnlock()
		return globalCfg
	}
	globalMu.RUnlock()

	cfg, err := Load()
	if err != nil {
		cfg = Default()
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCfg == nil {
		globalCfg = cfg
	}
	return globalCfg
}

// SetGlobal replaces the process-wide configuration.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}
