// Package logpane renders the console scrollback in a bordered viewport.
package logpane

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/quickadb/pkg/console"
	"tableflip.dev/quickadb/pkg/tui/theme"
)

// Title is shown above the scrollback.
const Title = " Command Log "

// Model renders log lines oldest first and follows the newest line until the
// user scrolls away from the bottom.
type Model struct {
	viewport viewport.Model
	lines    []string

	follow  bool
	focused bool

	width      int
	height     int
	innerWidth int

	styles theme.LogTheme
}

// New constructs an empty log pane.
func New(styles theme.LogTheme) *Model {
	vp := viewport.New(
		viewport.WithWidth(1),
		viewport.WithHeight(1),
	)
	return &Model{
		viewport: vp,
		follow:   true,
		styles:   styles,
	}
}

// SetSize resizes the viewport while keeping the title and border intact.
func (m *Model) SetSize(width, height int) {
	width = max(width, 4)
	height = max(height, 3)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	frameX := m.styles.Frame.GetHorizontalFrameSize()
	frameY := m.styles.Frame.GetVerticalFrameSize()
	m.innerWidth = max(1, width-frameX)
	m.viewport.SetWidth(m.innerWidth)
	m.viewport.SetHeight(max(1, height-frameY-1))
	m.refresh()
}

// SetFocused toggles the focused border.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetLines replaces the rendered log. Lines are only re-rendered when they
// changed since the last call.
func (m *Model) SetLines(lines []string) {
	if slices.Equal(m.lines, lines) {
		return
	}
	m.lines = lines
	m.refresh()
}

// Scroll applies a scroll request from the engine.
func (m *Model) Scroll(s console.Scroll) {
	switch s {
	case console.ScrollUp:
		m.viewport.LineUp(1)
	case console.ScrollDown:
		m.viewport.LineDown(1)
	case console.ScrollPageUp:
		m.viewport.ViewUp()
	case console.ScrollPageDown:
		m.viewport.ViewDown()
	case console.ScrollTop:
		m.viewport.GotoTop()
	case console.ScrollBottom:
		m.viewport.GotoBottom()
	default:
		return
	}
	m.follow = m.viewport.AtBottom()
}

// Following reports whether the pane sticks to the newest line.
func (m *Model) Following() bool { return m.follow }

// View renders the bordered viewport.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	frame := m.styles.Frame
	if m.focused {
		frame = m.styles.FocusedFrame
	}
	title := m.styles.Title.Render(Title)
	body := lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View())
	return frame.Width(m.width).Height(m.height).Render(body)
}

func (m *Model) refresh() {
	wrap := max(1, m.innerWidth)
	rendered := make([]string, 0, len(m.lines))
	for _, line := range m.lines {
		style := m.styles.Line
		if strings.HasPrefix(line, console.EchoPrefix) {
			style = m.styles.Echo
		}
		rendered = append(rendered, style.Render(wordwrap.String(line, wrap)))
	}
	content := strings.Join(rendered, "\n")
	if content == "" {
		content = m.styles.Empty.Render("No output yet")
	}
	m.viewport.SetContent(content)
	if m.follow {
		m.viewport.GotoBottom()
	}
}
