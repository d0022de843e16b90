// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Line-oriented REPL for pattern testing without the full TUI.
//
// Handles the "rexi repl" command. Each line entered is treated as a
// pattern and evaluated against the loaded text; matches are printed
// with the same highlighting the TUI uses.
//
// Interactive commands (during the REPL):
//   :profile            Show the active profile
//   :profile <id>       Switch profile
//   :profiles           List available profiles
//   :text               Print the text under test
//   :fields             Show the awk field breakdown of the text
//   :jq <filter>        Pipe the text through a jq filter
//   :recent             Show recently used patterns
//   :help               Show available commands
//   :quit, :q           Exit
//   Ctrl+D              Exit
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/andriy-git/rexi/internal/config"
	"github.com/andriy-git/rexi/internal/fields"
	"github.com/andriy-git/rexi/internal/highlight"
	"github.com/andriy-git/rexi/internal/history"
	"github.com/andriy-git/rexi/internal/profile"
	"github.com/andriy-git/rexi/internal/rex"
	"github.com/andriy-git/rexi/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	countStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// replInput provides input history and line editing for the REPL.
type replInput struct {
	line        *liner.State
	historyFile string
}

func newREPLInput() *replInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	in := &replInput{
		line:        line,
		historyFile: filepath.Join(config.Dir(), "repl_history"),
	}
	in.loadHistory()
	return in
}

func (in *replInput) loadHistory() {
	if f, err := os.Open(in.historyFile); err == nil {
		in.line.ReadHistory(f)
		f.Close()
	}
}

func (in *replInput) read(prompt string) (string, error) {
	input, err := in.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		in.line.AppendHistory(input)
	}
	return input, nil
}

func (in *replInput) saveHistory() {
	if err := os.MkdirAll(filepath.Dir(in.historyFile), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(in.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	in.line.WriteHistory(f)
}

func (in *replInput) close() {
	in.saveHistory()
	in.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// replSession holds the state for an interactive REPL session.
type replSession struct {
	text     string
	profiles *profile.Manager
	prof     *profile.Profile
	provider *rex.Provider
	theme    *styles.Theme
	cfg      *config.Config
	hist     *history.Store // may be nil
	quiet    bool
	input    *replInput
}

// REPLOptions carries everything the REPL needs at startup.
type REPLOptions struct {
	Text     string
	Profiles *profile.Manager
	Provider *rex.Provider
	Profile  *profile.Profile
	Config   *config.Config
	History  *history.Store // may be nil
	Quiet    bool
}

// RunREPL runs the line-oriented pattern REPL until EOF or :quit.
func RunREPL(opts REPLOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Global()
	}
	session := &replSession{
		text:     opts.Text,
		profiles: opts.Profiles,
		prof:     opts.Profile,
		provider: opts.Provider,
		theme:    styles.NewTheme(),
		cfg:      cfg,
		hist:     opts.History,
		quiet:    opts.Quiet,
		input:    newREPLInput(),
	}
	defer session.input.close()

	// Patterns from earlier sessions become arrow-key history.
	session.preloadHistory()

	if !session.quiet {
		session.printWelcome()
	}

	for {
		raw, err := session.input.read(promptStyle.Render("rexi> "))
		if err == liner.ErrPromptAborted {
			continue // Ctrl+C clears the line
		}
		if err != nil {
			fmt.Println()
			return nil // EOF
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if quit := session.handleCommand(line); quit {
				return nil
			}
			continue
		}

		session.evaluate(line)
	}
}

// preloadHistory seeds the line editor with patterns from earlier
// sessions so arrow-key recall works across restarts.
func (s *replSession) preloadHistory() {
	if s.hist == nil || s.cfg.UI.HistoryLimit <= 0 {
		return
	}
	entries, err := s.hist.Recent(s.cfg.UI.HistoryLimit)
	if err != nil {
		return
	}
	// Recent returns newest first; liner wants oldest first.
	for i := len(entries) - 1; i >= 0; i-- {
		s.input.line.AppendHistory(entries[i].Pattern)
	}
}

func (s *replSession) printWelcome() {
	fmt.Println(welcomeStyle.Render("rexi repl") + infoStyle.Render("  ·  type a pattern, :help for commands"))
	fmt.Println(infoStyle.Render(fmt.Sprintf("profile: %s  ·  text: %d bytes", s.prof.Name, len(s.text))))
	fmt.Println()
}

// =============================================================================
// COMMANDS
// =============================================================================

// handleCommand dispatches a ":"-prefixed command. Returns true on quit.
func (s *replSession) handleCommand(line string) bool {
	parts := strings.Fields(line)
	cmd := parts[0]

	switch cmd {
	case ":quit", ":q", ":exit":
		return true

	case ":help", ":h":
		fmt.Println(infoStyle.Render(`:profile         show the active profile
:profile <id>    switch profile
:profiles        list available profiles
:text            print the text under test
:fields          show the awk field breakdown of the text
:jq <filter>     pipe the text through a jq filter
:recent          show recently used patterns
:quit, :q        exit`))

	case ":profile":
		if len(parts) < 2 {
			fmt.Printf("%s (%s)\n", s.prof.Name, s.prof.ID)
			break
		}
		p, ok := s.profiles.Get(parts[1])
		if !ok {
			fmt.Println(errorStyle.Render("unknown profile: " + parts[1]))
			break
		}
		s.prof = p
		fmt.Println(infoStyle.Render("switched to " + p.Name))

	case ":profiles":
		for _, p := range s.profiles.List() {
			marker := "  "
			if p.ID == s.prof.ID {
				marker = "* "
			}
			fmt.Printf("%s%-12s %s\n", marker, p.ID, p.Description)
		}

	case ":text":
		fmt.Println(s.text)

	case ":fields":
		s.printFields()

	case ":jq":
		s.runJq(strings.TrimSpace(strings.TrimPrefix(line, ":jq")))

	case ":recent":
		s.printRecent()

	default:
		fmt.Println(errorStyle.Render("unknown command: " + cmd))
	}
	return false
}

// printFields runs the configured awk variant over the text and prints
// one block per record with its numbered fields.
func (s *replSession) printFields() {
	awkCmd := s.cfg.Fields.AwkCommand
	if awkCmd == "" {
		awkCmd = fields.PreferredVariant()
	}
	runner := fields.NewRunner(awkCmd, s.cfg.FieldsTimeout())

	records, err := fields.FieldBreakdown(context.Background(), runner, s.text, s.cfg.Fields.Separator)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return
	}

	for _, rec := range records {
		fmt.Printf("%s %s\n", countStyle.Render(fmt.Sprintf("record %d", rec.Number)), infoStyle.Render(fmt.Sprintf("(NF=%d)", rec.NF)))
		for _, f := range rec.Fields {
			fmt.Printf("  $%-3d %s\n", f.Index, f.Value)
		}
	}
}

// runJq pipes the loaded text through the configured jq executable.
// An empty filter prints the identity transform.
func (s *replSession) runJq(filter string) {
	runner := fields.NewRunner(s.cfg.Fields.JqCommand, s.cfg.FieldsTimeout())
	out, err := fields.RunFilter(context.Background(), runner, filter, s.text)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return
	}
	fmt.Println(out)
}

func (s *replSession) printRecent() {
	if s.hist == nil {
		fmt.Println(infoStyle.Render("history is disabled"))
		return
	}
	entries, err := s.hist.Recent(10)
	if err != nil {
		fmt.Println(errorStyle.Render("history: " + err.Error()))
		return
	}
	if len(entries) == 0 {
		fmt.Println(infoStyle.Render("no patterns recorded yet"))
		return
	}
	for _, e := range entries {
		fmt.Printf("  %-40s [%s]\n", e.Pattern, e.ProfileID)
	}
}

// =============================================================================
// EVALUATION
// =============================================================================

// evaluate runs a pattern against the loaded text and prints the result:
// the highlighted text first, then each match with its capture groups.
func (s *replSession) evaluate(pattern string) {
	set, err := s.provider.FindMatches(s.text, pattern, s.prof, rex.AllMatches)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		return
	}

	if len(set) == 0 {
		fmt.Println(infoStyle.Render("no matches"))
		return
	}

	styled := highlight.Compose(s.text, set, 0)
	fmt.Println(s.theme.RenderStyled(styled))
	fmt.Println(countStyle.Render(fmt.Sprintf("%d match(es)", len(set))))

	for i, m := range set {
		whole := m.Whole()
		fmt.Printf("  %d. [%d:%d] %q\n", i+1, whole.Span.Start, whole.Span.End, whole.Value)
		for _, g := range m.Groups {
			if g.Index == 0 {
				continue
			}
			label := fmt.Sprintf("%d", g.Index)
			if g.Name != "" {
				label += ":" + g.Name
			}
			fmt.Printf("     %s = %q\n", label, g.Value)
		}
	}

	if s.hist != nil {
		_ = s.hist.Add(pattern, s.prof.ID)
	}
}
