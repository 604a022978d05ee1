// Package completions renders the command completion popup.
package completions

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/quickadb/pkg/registry"
	"tableflip.dev/quickadb/pkg/tui/theme"
)

// Model draws a bordered list of every registered command with the selected
// entry inverted. It keeps a scroll window so the selection stays visible when
// the popup is shorter than the registry.
type Model struct {
	commands []registry.Command

	selected    int
	windowStart int
	limit       int
	focused     bool

	width  int
	height int

	styles theme.CompletionTheme
}

// New constructs a popup over commands.
func New(commands []registry.Command, styles theme.CompletionTheme) *Model {
	return &Model{
		commands: commands,
		limit:    len(commands),
		styles:   styles,
	}
}

// SetSize bounds the popup. The popup never grows past the available rows.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.limit = min(len(m.commands), max(0, height-m.styles.Frame.GetVerticalFrameSize()))
	m.updateWindow()
}

// SetSelected moves the highlighted entry.
func (m *Model) SetSelected(i int) {
	m.selected = i
	m.updateWindow()
}

// SetFocused toggles the focused border.
func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Height returns the rendered height of the popup.
func (m *Model) Height() int {
	if m.limit == 0 {
		return 0
	}
	return m.limit + m.styles.Frame.GetVerticalFrameSize()
}

func (m *Model) updateWindow() {
	total := len(m.commands)
	if m.limit <= 0 || total == 0 {
		m.windowStart = 0
		return
	}
	if m.selected < m.windowStart {
		m.windowStart = m.selected
	} else if m.selected >= m.windowStart+m.limit {
		m.windowStart = m.selected - m.limit + 1
	}
	m.windowStart = max(0, min(m.windowStart, total-m.limit))
}

// View implements ui.Component.
func (m *Model) View() string {
	if m.limit == 0 {
		return ""
	}
	nameWidth := 0
	for _, c := range m.commands {
		nameWidth = max(nameWidth, lipgloss.Width(c.Name))
	}

	rows := make([]string, 0, m.limit)
	for i := m.windowStart; i < m.windowStart+m.limit; i++ {
		c := m.commands[i]
		name, desc := m.styles.Name, m.styles.Description
		if i == m.selected {
			name, desc = m.styles.SelectedName, m.styles.SelectedDesc
		}
		line := name.Render(c.Name + strings.Repeat(" ", nameWidth-lipgloss.Width(c.Name)))
		if c.Description != "" {
			line += desc.Render("  " + c.Description)
		}
		rows = append(rows, line)
	}

	frame := m.styles.Frame
	if m.focused {
		frame = m.styles.FocusedFrame
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	maxWidth := m.width - frame.GetHorizontalFrameSize()
	if maxWidth > 0 && lipgloss.Width(body) > maxWidth {
		body = lipgloss.NewStyle().MaxWidth(maxWidth).Render(body)
	}
	return frame.Render(body)
}
