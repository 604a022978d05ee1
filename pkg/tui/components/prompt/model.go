// Package prompt renders the console input line.
package prompt

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/quickadb/pkg/tui/theme"
)

// Height is the rendered height including the border.
const Height = 3

// Options configures the prompt.
type Options struct {
	Placeholder string
	Prefix      string
}

// Model mirrors the engine's input line into a bordered text input. The
// engine owns the text; the text input is only used to draw it.
type Model struct {
	input   textinput.Model
	focused bool
	width   int
	styles  theme.PromptTheme
}

// New constructs a prompt.
func New(opts Options, styles theme.PromptTheme) *Model {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = opts.Prefix
	ti.Blur()
	return &Model{input: ti, styles: styles}
}

// SetSize implements ui.Component. The height is fixed.
func (m *Model) SetSize(width, _ int) {
	m.width = max(width, 4)
	inner := m.width - m.styles.Frame.GetHorizontalFrameSize() - len(m.input.Prompt)
	m.input.SetWidth(max(1, inner))
}

// SetValue mirrors the engine's input text.
func (m *Model) SetValue(value string) {
	if m.input.Value() == value {
		return
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
}

// Value returns the mirrored text.
func (m *Model) Value() string { return m.input.Value() }

// Focus shows the cursor.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur hides the cursor.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// Focused reports whether the prompt owns keyboard focus.
func (m *Model) Focused() bool { return m.focused }

// View implements ui.Component.
func (m *Model) View() string {
	frame := m.styles.Frame
	if m.focused {
		frame = m.styles.FocusedFrame
	}
	return frame.Width(m.width).Render(m.input.View())
}

// Cursor returns the cursor position relative to the prompt's top-left
// corner, or nil when unfocused.
func (m *Model) Cursor() *tea.Cursor {
	if !m.focused {
		return nil
	}
	c := m.input.Cursor()
	if c == nil {
		return nil
	}
	cur := *c
	cur.X += m.styles.Frame.GetBorderLeftSize() + m.styles.Frame.GetPaddingLeft()
	cur.Y += m.styles.Frame.GetBorderTopSize()
	return &cur
}
