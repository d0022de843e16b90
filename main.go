// rexi - An interactive regex workbench for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andriy-git/rexi/internal/cli"
	"github.com/andriy-git/rexi/internal/config"
	"github.com/andriy-git/rexi/internal/fields"
	"github.com/andriy-git/rexi/internal/history"
	"github.com/andriy-git/rexi/internal/input"
	"github.com/andriy-git/rexi/internal/profile"
	"github.com/andriy-git/rexi/internal/rex"
	"github.com/andriy-git/rexi/internal/ui/workbench"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		if err := runTUI(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdREPL:
		if err := runREPL(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdProfiles:
		if err := runProfiles(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		if err := runTUI(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// =============================================================================
// SESSION SETUP
// =============================================================================

// session is everything a frontend (TUI or REPL) needs to evaluate
// patterns: the loaded text, the profile set, an engine provider, config
// and the optional history store.
type session struct {
	text     string
	cfg      *config.Config
	profiles *profile.Manager
	prof     *profile.Profile
	provider *rex.Provider
	hist     *history.Store // nil when disabled or unavailable
}

// buildSession loads config, profiles, the input text and the history
// store shared by the TUI and the REPL.
func buildSession(args cli.Args) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.SetGlobal(cfg)

	profiles := profile.NewManager()
	// User additions and overrides live next to the config file.
	if err := profiles.MergeFile(filepath.Join(config.Dir(), "profiles.toml")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load user profiles: %v\n", err)
	}

	profID := cfg.DefaultProfile
	if args.Profile != "" {
		profID = args.Profile
	}
	prof, ok := profiles.Get(profID)
	if !ok {
		if args.Profile != "" {
			return nil, fmt.Errorf("unknown profile: %s", args.Profile)
		}
		prof, _ = profiles.Default()
	}

	text, err := input.Read(args.InputFile)
	if err != nil {
		return nil, err
	}

	s := &session{
		text:     text,
		cfg:      cfg,
		profiles: profiles,
		prof:     prof,
		provider: rex.NewProvider(),
	}

	if !args.NoHistory {
		hist, err := history.Open(filepath.Join(config.Dir(), "history.db"))
		if err != nil {
			// History is a convenience; the workbench runs fine without it.
			fmt.Fprintf(os.Stderr, "Warning: pattern history unavailable: %v\n", err)
		} else {
			s.hist = hist
		}
	}

	return s, nil
}

func (s *session) close() {
	if s.hist != nil {
		s.hist.Close()
	}
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// runTUI starts the full-screen workbench.
func runTUI(args cli.Args) error {
	// Stderr belongs to the TUI, so debug output goes to a file.
	if os.Getenv("REXI_DEBUG") != "" {
		f, err := tea.LogToFile(filepath.Join(config.Dir(), "rexi.log"), "rexi")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
		} else {
			defer f.Close()
		}
	}

	s, err := buildSession(args)
	if err != nil {
		return err
	}
	defer s.close()

	// Live reload only makes sense for file input.
	var watcher *input.Watcher
	if args.InputFile != "" && !args.NoWatch {
		watcher, err = input.NewWatcher(args.InputFile, 200*time.Millisecond)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: live reload unavailable: %v\n", err)
		} else {
			defer watcher.Close()
		}
	}

	m := workbench.New(workbench.Options{
		Text:           s.text,
		InitialPattern: args.Pattern,
		Profiles:       s.profiles,
		Provider:       s.provider,
		Config:         s.cfg,
		History:        s.hist,
		Watcher:        watcher,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}

	// When the text arrived on stdin the terminal must be reopened for
	// keyboard input.
	if !input.StdinIsTTY() {
		tty, err := input.TTY()
		if err != nil {
			return fmt.Errorf("stdin is piped and the terminal could not be reopened: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running rexi: %w", err)
	}
	return nil
}

// runREPL starts the line-oriented REPL.
func runREPL(args cli.Args) error {
	s, err := buildSession(args)
	if err != nil {
		return err
	}
	defer s.close()

	return cli.RunREPL(cli.REPLOptions{
		Text:     s.text,
		Profiles: s.profiles,
		Provider: s.provider,
		Profile:  s.prof,
		Config:   s.cfg,
		History:  s.hist,
		Quiet:    args.Quiet,
	})
}

// runProfiles lists the available profiles and their feature sets.
func runProfiles(args cli.Args) error {
	profiles := profile.NewManager()
	if err := profiles.MergeFile(filepath.Join(config.Dir(), "profiles.toml")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load user profiles: %v\n", err)
	}

	verbose := args.Flags.BoolFlag("verbose") || args.Flags.BoolFlag("v")

	for _, p := range profiles.List() {
		engine := "standard"
		if p.Extended {
			engine = "extended"
		}
		fmt.Printf("%-12s %-10s %s\n", p.ID, engine, p.Description)
		if verbose {
			for _, tag := range p.Features.Tags() {
				fmt.Printf("    %s\n", tag)
			}
		}
	}

	if verbose {
		detected := fields.DetectVariants()
		fmt.Println()
		fmt.Println("field processors:")
		for _, variant := range fields.Variants() {
			state := "missing"
			if detected[variant] {
				state = "installed"
			}
			fmt.Printf("    %-8s %s\n", variant, state)
		}
	}
	return nil
}
