// Package header renders the console title banner.
package header

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/quickadb/pkg/tui/theme"
)

// Height is the rendered height including the border.
const Height = 3

// Model renders a bordered title line with a dimmed version banner.
type Model struct {
	title   string
	version string
	width   int
	styles  theme.HeaderTheme
}

// New constructs a header.
func New(title, version string, styles theme.HeaderTheme) *Model {
	return &Model{title: title, version: version, styles: styles}
}

// SetSize implements ui.Component. The height is fixed.
func (m *Model) SetSize(width, _ int) {
	m.width = width
}

// View implements ui.Component.
func (m *Model) View() string {
	if m.width <= 0 {
		return ""
	}
	inner := max(1, m.width-m.styles.Frame.GetHorizontalFrameSize())
	version := m.styles.Version.Render(m.version)
	titleWidth := max(0, inner-lipgloss.Width(version))
	title := m.styles.Title.Width(titleWidth).Align(lipgloss.Center).Render(m.title)
	line := lipgloss.JoinHorizontal(lipgloss.Top, title, version)
	return m.styles.Frame.Width(m.width).Render(line)
}
