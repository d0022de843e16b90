// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for rexi.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdREPL
	CmdProfiles
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Pattern   string // -p/--pattern: initial pattern
	InputFile string // -i/--input: read text from a file instead of stdin
	Profile   string // --profile: starting profile id
	NoHistory bool   // --no-history: skip the pattern history database
	NoWatch   bool   // --no-watch: disable live reload of the input file
	Quiet     bool   // -q/--quiet

	// Flags holds the command-specific arguments left after command
	// extraction; handlers query it for their own flags and positionals.
	Flags *ArgParser
}

const usageText = `rexi - interactive regex workbench for the terminal

Rexi evaluates a regular expression against a piece of text as you
type, highlighting every match and its capture groups.

Usage:
  rexi                          Start the TUI, reading text from stdin
  rexi -i FILE                  Start the TUI on a file (live-reloaded)
  rexi -p PATTERN -i FILE       Start with an initial pattern
  rexi repl [-i FILE]           Line-oriented REPL (no full-screen UI)
  rexi profiles                 List available regex profiles
  rexi version                  Print version information
  rexi help                     Show this help

Flags:
  -p, --pattern PATTERN   Initial pattern to evaluate
  -i, --input FILE        Read the text under test from FILE
      --profile ID        Start with the given profile (default: pcre_full)
      --no-history        Do not record patterns in the history database
      --no-watch          Do not reload the input file on change
  -q, --quiet             Minimal output

Keys (TUI):
  Ctrl+N / Ctrl+P         Next / previous match
  Ctrl+R                  Cycle regex profile
  Ctrl+T                  Toggle awk field-extraction view
  F1                      Regex reference
  F2                      Edit the profile's feature set
  Esc / Ctrl+C            Quit

Environment:
  REXI_PROFILE            Default profile id
  REXI_AWK                Field-extraction command (default: gawk/mawk/awk)
  REXI_JQ                 jq command for JSON field filters
  REXI_TIMEOUT_SECS       External process timeout in seconds
  REXI_DEBUG              Write a debug log to ~/.rexi/rexi.log

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("rexi version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parse(os.Args[1:])
}

func parse(raw []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(raw)

	if len(remaining) == 0 {
		parsed.Flags = NewArgParser(nil)
		return CmdTUI, parsed
	}

	first := remaining[0]
	cmd := strings.ToLower(first)
	parsed.Flags = NewArgParser(remaining[1:])

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "repl":
		return CmdREPL, parsed

	case "profiles", "profile":
		return CmdProfiles, parsed

	case "version", "-v", "--version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed

	default:
		// An unrecognized first token is treated as the pattern so that
		// "rexi '\d+' < file" works without a flag.
		if parsed.Pattern == "" {
			parsed.Pattern = first
		}
		return CmdTUI, parsed
	}
}

// parseGlobalFlags extracts global flags from the argument list, returning
// the remaining (non-global) arguments.
func parseGlobalFlags(raw []string) ([]string, Args) {
	var args Args
	remaining := make([]string, 0, len(raw))

	i := 0
	for i < len(raw) {
		arg := raw[i]

		takeValue := func() string {
			if eq := strings.IndexByte(arg, '='); eq >= 0 {
				return arg[eq+1:]
			}
			if i+1 < len(raw) {
				i++
				return raw[i]
			}
			return ""
		}

		name := arg
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name = name[:eq]
		}

		switch name {
		case "-p", "--pattern":
			args.Pattern = takeValue()
		case "-i", "--input":
			args.InputFile = takeValue()
		case "--profile":
			args.Profile = takeValue()
		case "--no-history":
			args.NoHistory = true
		case "--no-watch":
			args.NoWatch = true
		case "-q", "--quiet":
			args.Quiet = true
		default:
			remaining = append(remaining, arg)
		}
		i++
	}

	return remaining, args
}
