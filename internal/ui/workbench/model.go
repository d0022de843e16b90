// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench provides the interactive pattern-matching view.
package workbench

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wrap"

	"github.com/andriy-git/rexi/internal/config"
	"github.com/andriy-git/rexi/internal/eval"
	"github.com/andriy-git/rexi/internal/fields"
	"github.com/andriy-git/rexi/internal/highlight"
	"github.com/andriy-git/rexi/internal/history"
	"github.com/andriy-git/rexi/internal/input"
	"github.com/andriy-git/rexi/internal/navigate"
	"github.com/andriy-git/rexi/internal/profile"
	"github.com/andriy-git/rexi/internal/rex"
	"github.com/andriy-git/rexi/internal/ui/styles"
)

// =============================================================================
// MODEL STATE
// =============================================================================

// viewMode selects the main panel content.
type viewMode int

const (
	modeRegex  viewMode = iota // highlighted match view
	modeFields                 // awk field-extraction view
)

// overlayKind selects the active full-screen overlay, if any.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayHelp
	overlayFeatures
)

// evalsPerSecond throttles evaluation bursts from fast typing. Superseded
// attempts are canceled while they wait, so only the newest one runs.
const evalsPerSecond = 10

// Options carries everything the workbench needs at startup.
type Options struct {
	Text           string
	InitialPattern string
	Profiles       *profile.Manager
	Provider       *rex.Provider
	Config         *config.Config
	History        *history.Store // may be nil
	Watcher        *input.Watcher // may be nil
}

// Model is the Bubble Tea model for the workbench view.
type Model struct {
	theme *styles.Theme
	keys  KeyMap

	width  int
	height int
	ready  bool

	// Session context: the text under test, the active pattern and profile.
	text     string
	pattern  string
	profiles *profile.Manager
	prof     *profile.Profile
	provider *rex.Provider
	cfg      *config.Config

	// Evaluation state. matches and nav are the only state shared across
	// evaluation attempts; they are written exclusively by results that
	// still carry the current generation.
	sched      *eval.Scheduler
	matches    rex.MatchSet
	nav        *navigate.Navigator
	evalErr    error
	evaluating bool

	// Field-extraction state.
	mode        viewMode
	fieldsSched *eval.Scheduler
	awkRunner   *fields.Runner
	records     []fields.Record
	fieldsErr   error

	// Collaborators.
	hist    *history.Store
	watcher *input.Watcher

	// UI components.
	patternInput textinput.Model
	viewport     viewport.Model
	spinner      spinner.Model

	overlay  overlayKind
	features *featuresEditor
	helpText string // rendered lazily on first open
}

// New builds the workbench model.
func New(opts Options) Model {
	theme := styles.NewTheme()

	ti := textinput.New()
	ti.Placeholder = "Enter regex pattern"
	ti.Prompt = ""
	ti.SetValue(opts.InitialPattern)
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))

	prof, _ := opts.Profiles.Default()
	if p, ok := opts.Profiles.Get(opts.Config.DefaultProfile); ok {
		prof = p
	}

	awkCmd := opts.Config.Fields.AwkCommand
	if awkCmd == "" {
		awkCmd = fields.PreferredVariant()
	}

	return Model{
		theme:        theme,
		keys:         DefaultKeyMap(),
		text:         opts.Text,
		pattern:      opts.InitialPattern,
		profiles:     opts.Profiles,
		prof:         prof,
		provider:     opts.Provider,
		cfg:          opts.Config,
		sched:        eval.NewScheduler(evalsPerSecond),
		fieldsSched:  eval.NewScheduler(1),
		awkRunner:    fields.NewRunner(awkCmd, opts.Config.FieldsTimeout()),
		nav:          navigate.New(),
		hist:         opts.History,
		watcher:      opts.Watcher,
		patternInput: ti,
		viewport:     viewport.New(80, 20),
		spinner:      sp,
	}
}

// Init starts cursor blinking, the file watcher loop and, when an initial
// pattern was passed on the command line, the first evaluation.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.watcher != nil {
		cmds = append(cmds, watchCmd(m.watcher))
	}
	if m.pattern != "" {
		cmds = append(cmds, evalCmd(m.sched, m.provider, m.text, m.pattern, m.prof), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// LAYOUT AND RENDER STATE
// =============================================================================

// chrome rows: header, pattern bar, groups panel (4), status bar.
const chromeRows = 1 + 1 + groupsPanelRows + 1

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	vpHeight := height - chromeRows
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.ready = true
	m.recompose()
}

// gutterWidth is the width of the line-number gutter, including its
// trailing space, or 0 when line numbers are off.
func (m *Model) gutterWidth() int {
	if !m.cfg.UI.LineNumbers {
		return 0
	}
	lines := strings.Count(m.text, "\n") + 1
	return len(strconv.Itoa(lines)) + 1
}

// recompose rebuilds the highlighted viewport content for the current
// match set and navigator index. It runs on every index change and every
// fresh result.
func (m *Model) recompose() {
	if !m.ready {
		return
	}

	styled := highlight.Compose(m.text, m.matches, m.nav.Index())
	rendered := m.theme.RenderStyled(styled)

	gutter := m.gutterWidth()
	inner := m.viewport.Width - gutter
	if inner < 1 {
		inner = 1
	}

	var b strings.Builder
	pad := strings.Repeat(" ", gutter)
	for i, line := range strings.Split(rendered, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		wrapped := wrap.String(line, inner)
		for j, row := range strings.Split(wrapped, "\n") {
			if j > 0 {
				b.WriteByte('\n')
			}
			if gutter > 0 {
				if j == 0 {
					num := strconv.Itoa(i + 1)
					b.WriteString(m.theme.LineNumber.Render(
						strings.Repeat(" ", gutter-1-len(num)) + num))
					b.WriteByte(' ')
				} else {
					b.WriteString(pad)
				}
			}
			b.WriteString(row)
		}
	}
	m.viewport.SetContent(b.String())
}

// scrollToCurrent recomputes the scroll target for the selected match and
// moves the viewport there.
func (m *Model) scrollToCurrent() {
	pos, ok := m.nav.Position()
	if !ok {
		return
	}
	target := navigate.ScrollTarget(m.text, pos, m.viewport.Width, m.viewport.Height, m.gutterWidth())
	m.viewport.SetYOffset(target)
}

// currentMatch returns the selected match, or nil when there is none.
func (m *Model) currentMatch() *rex.Match {
	idx := m.nav.Index()
	if idx < 0 || idx >= len(m.matches) {
		return nil
	}
	return &m.matches[idx]
}
