package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/quickadb/pkg/logbuf"
	"tableflip.dev/quickadb/pkg/tui/components/logpane"
	"tableflip.dev/quickadb/pkg/tui/events"
	"tableflip.dev/quickadb/pkg/tui/theme"
)

// testbedModel hosts the console inside a bordered frame and traces every
// message it forwards in a strip below.
type testbedModel struct {
	fullscreen bool
	maxWidth   int
	maxHeight  int

	termWidth  int
	termHeight int

	console tea.CursorModel
	trace   *logbuf.Buffer
	events  *logpane.Model

	frameWidth  int
	frameHeight int
	innerWidth  int
	innerHeight int
	eventHeight int
	layoutDirty bool
}

func newTestbedModel(opts options, console tea.CursorModel) *testbedModel {
	return &testbedModel{
		fullscreen:  opts.full,
		maxWidth:    opts.width,
		maxHeight:   opts.height,
		console:     console,
		trace:       logbuf.New(400),
		events:      logpane.New(theme.Default().Log),
		layoutDirty: true,
	}
}

func (m *testbedModel) Init() tea.Cmd { return m.console.Init() }

func (m *testbedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.recordEvent(msg)

	if v, ok := msg.(tea.WindowSizeMsg); ok {
		m.termWidth = v.Width
		m.termHeight = v.Height
		m.layoutDirty = true
		m.ensureLayout()
		msg = tea.WindowSizeMsg{Width: m.innerWidth, Height: m.innerHeight}
	}

	next, cmd := m.console.Update(msg)
	if c, ok := next.(tea.CursorModel); ok {
		m.console = c
	}
	return m, cmd
}

func (m *testbedModel) View() (string, *tea.Cursor) {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Resizing…", nil
	}
	m.ensureLayout()

	content, cursor := m.console.View()
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(m.frameWidth).
		Height(m.frameHeight).
		Render(content)
	cursor = offsetCursor(cursor, 1, 1)

	offsetX := 0
	if w := lipgloss.Width(frame); w < m.termWidth {
		offsetX = (m.termWidth - w) / 2
	}
	placed := lipgloss.Place(m.termWidth, max(1, m.termHeight-m.eventHeight-frameGap),
		lipgloss.Center, lipgloss.Top, frame)
	cursor = offsetCursor(cursor, offsetX, 0)

	if m.eventHeight == 0 {
		return placed, cursor
	}
	m.events.SetLines(m.trace.Snapshot())
	gap := strings.Repeat("\n", frameGap)
	return placed + "\n" + gap + m.events.View(), cursor
}

func (m *testbedModel) ensureLayout() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	if !m.layoutDirty && m.frameWidth != 0 && m.frameHeight != 0 {
		return
	}

	eventHeight := m.computeEventHeight()
	frameSpace := max(minFrameHeight, m.termHeight-eventHeight-frameGap)

	width := clamp(m.maxWidth, 20, m.termWidth-4)
	height := clamp(m.maxHeight, minFrameHeight, frameSpace)
	if m.fullscreen {
		width = clamp(m.termWidth, 20, m.termWidth)
		height = clamp(frameSpace, minFrameHeight, frameSpace)
	}

	m.frameWidth = width
	m.frameHeight = height
	m.innerWidth = max(1, width-2)
	m.innerHeight = max(1, height-2)
	m.eventHeight = eventHeight
	m.layoutDirty = false

	if eventHeight > 0 {
		m.events.SetSize(m.termWidth, eventHeight)
	}
}

func (m *testbedModel) computeEventHeight() int {
	maxAvailable := m.termHeight - minFrameHeight - frameGap
	if maxAvailable < minEventHeight {
		return 0
	}
	return min(clamp(m.termHeight/4, minEventHeight, maxEventHeight), maxAvailable)
}

func (m *testbedModel) recordEvent(msg tea.Msg) {
	detail := describeMsg(msg)
	if detail == "" {
		return
	}
	m.trace.Append(fmt.Sprintf("%s %T %s", time.Now().Format("15:04:05.000"), msg, detail))
}

func describeMsg(msg tea.Msg) string {
	if d, ok := msg.(events.Describer); ok {
		return d.Describe()
	}
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	default:
		return ""
	}
}

func clamp(value, lo, hi int) int {
	if hi <= 0 {
		return lo
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func offsetCursor(cursor *tea.Cursor, dx, dy int) *tea.Cursor {
	if cursor == nil {
		return nil
	}
	clone := *cursor
	clone.Position.X += dx
	clone.Position.Y += dy
	return &clone
}

const (
	minFrameHeight = 12
	minEventHeight = 5
	maxEventHeight = 12
	frameGap       = 1
)
