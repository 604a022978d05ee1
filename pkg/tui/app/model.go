// Package app hosts the Bubble Tea program for the quickadb console. The
// root model owns no session state: every key goes to the console engine and
// every frame is painted from an engine snapshot.
package app

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/quickadb/pkg/console"
	"tableflip.dev/quickadb/pkg/tui/components/completions"
	"tableflip.dev/quickadb/pkg/tui/components/header"
	"tableflip.dev/quickadb/pkg/tui/components/logpane"
	"tableflip.dev/quickadb/pkg/tui/components/prompt"
	"tableflip.dev/quickadb/pkg/tui/events"
	"tableflip.dev/quickadb/pkg/tui/logging"
	"tableflip.dev/quickadb/pkg/tui/theme"
	"tableflip.dev/quickadb/pkg/tui/ui"
	"tableflip.dev/quickadb/pkg/tui/ui/overlay"
)

// Options configures the root model.
type Options struct {
	ID          events.ComponentID
	Title       string
	Version     string
	Placeholder string
	Theme       *theme.Theme
	Logger      *slog.Logger
}

// Model composes the header, log, prompt and completion panes around a
// console engine.
type Model struct {
	id     events.ComponentID
	engine *console.Engine
	logger *slog.Logger

	width  int
	height int

	header *header.Model
	log    *logpane.Model
	prompt *prompt.Model
	popup  *completions.Model

	focus      console.Pane
	completion console.CompletionView
}

// New constructs the root model.
func New(engine *console.Engine, opts Options) *Model {
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	id := opts.ID
	if id == "" {
		id = events.ComponentID("console")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(logging.NewHandler(engine, slog.LevelInfo))
	}

	m := &Model{
		id:     id,
		engine: engine,
		logger: logger,
		header: header.New(opts.Title, opts.Version, th.Header),
		log:    logpane.New(th.Log),
		prompt: prompt.New(prompt.Options{Placeholder: opts.Placeholder}, th.Prompt),
		popup:  completions.New(engine.Registry().Commands(), th.Completion),
		focus:  engine.Focus(),
	}
	m.completion = engine.Snapshot().Completion
	return m
}

// Run launches the Bubble Tea program. When handler is non-nil it is
// attached to the program so background log records trigger a repaint.
func Run(engine *console.Engine, opts Options, handler *logging.Handler) error {
	p := tea.NewProgram(New(engine, opts), tea.WithAltScreen())
	if handler != nil {
		handler.SetProgram(p)
		defer handler.SetProgram(nil)
	}
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.syncFocus()
	if m.focus == console.PaneInput {
		return m.prompt.Focus()
	}
	return nil
}

// Update routes key presses to the engine and turns resulting state changes
// into component events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.layout()
	case tea.KeyPressMsg:
		if v.String() == "ctrl+c" {
			return m, tea.Quit
		}
		for _, k := range translateKey(v) {
			cmds = append(cmds, m.handleKey(k)...)
		}
	case events.FocusChangeMsg:
		m.logger.Debug("focus changed", "from", v.Previous.String(), "to", v.Current.String())
	case events.LogAppendedMsg:
		// Repaint picks up the new lines.
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(k console.Key) []tea.Cmd {
	var cmds []tea.Cmd
	line := m.engine.Input()
	wasActive := m.engine.Completion().Active()

	res := m.engine.HandleKey(k)
	if res.Scroll != console.ScrollNone {
		m.log.Scroll(res.Scroll)
	}

	if k.Type == console.KeyEnter && res.Pane == console.PaneInput && res.Outcome == console.Consumed && !wasActive {
		cmds = append(cmds, events.CommandSubmitCmd(m.id, line))
	}

	if cur := m.engine.Focus(); cur != m.focus {
		prev := m.focus
		m.focus = cur
		if cmd := m.syncFocus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, events.FocusChangeCmd(m.id, prev, cur))
	}

	view := m.engine.Snapshot().Completion
	if view.Active != m.completion.Active || view.Selected != m.completion.Selected {
		m.completion = view
		selected := ""
		if view.Active && view.Selected < len(view.Candidates) {
			selected = view.Candidates[view.Selected]
		}
		cmds = append(cmds, events.CompletionChangeCmd(m.id, view.Active, selected))
	}
	return cmds
}

func (m *Model) syncFocus() tea.Cmd {
	m.log.SetFocused(m.focus == console.PaneLogAndHeader)
	m.popup.SetFocused(m.focus == console.PaneCompletions)
	if m.focus == console.PaneInput {
		return m.prompt.Focus()
	}
	m.prompt.Blur()
	return nil
}

func (m *Model) logHeight() int {
	return max(3, m.height-header.Height-prompt.Height)
}

func (m *Model) layout() {
	width := max(m.width, 1)
	slots := []struct {
		pane   ui.Component
		height int
	}{
		{m.header, header.Height},
		{m.log, m.logHeight()},
		{m.prompt, prompt.Height},
		{m.popup, m.logHeight()},
	}
	for _, s := range slots {
		s.pane.SetSize(width, s.height)
	}
}

// View paints the panes from a fresh engine snapshot.
func (m *Model) View() (string, *tea.Cursor) {
	if m.width <= 0 || m.height <= 0 {
		return "initializing…", nil
	}
	snap := m.engine.Snapshot()

	m.log.SetLines(snap.Log)
	m.prompt.SetValue(snap.Input)

	logView := m.log.View()
	if snap.Completion.Active {
		m.popup.SetSelected(snap.Completion.Selected)
		logView = overlay.Compose(logView, m.width, m.logHeight(), m.popup.View(), overlay.Placement{
			Horizontal: overlay.AlignStart,
			Vertical:   overlay.AlignEnd,
			MarginX:    1,
		})
	}

	body := lipgloss.JoinVertical(lipgloss.Left, m.header.View(), logView, m.prompt.View())
	body = strings.Join(overlay.Normalize(body, m.width, m.height), "\n")

	cursor := m.prompt.Cursor()
	if cursor != nil {
		cursor.Y += header.Height + m.logHeight()
	}
	return body, cursor
}
