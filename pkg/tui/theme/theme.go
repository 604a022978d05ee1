package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the console panes.
type Theme struct {
	Header     HeaderTheme
	Log        LogTheme
	Prompt     PromptTheme
	Completion CompletionTheme
}

// HeaderTheme styles the title banner.
type HeaderTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Version lipgloss.Style
}

// LogTheme styles the scrollback pane.
type LogTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Line         lipgloss.Style
	Echo         lipgloss.Style
	Empty        lipgloss.Style
}

// PromptTheme styles the input line.
type PromptTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
}

// CompletionTheme styles the completion popup.
type CompletionTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Name         lipgloss.Style
	Description  lipgloss.Style
	SelectedName lipgloss.Style
	SelectedDesc lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	dim := lipgloss.Color("240")
	accent := lipgloss.Color("212")

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim)
	focused := border.BorderForeground(accent)

	name := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	return Theme{
		Header: HeaderTheme{
			Frame:   border,
			Title:   lipgloss.NewStyle().Bold(true),
			Version: lipgloss.NewStyle().Faint(true),
		},
		Log: LogTheme{
			Frame:        border,
			FocusedFrame: focused,
			Title:        lipgloss.NewStyle().Bold(true),
			Line:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Echo:         lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			Empty:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
		Prompt: PromptTheme{
			Frame:        border,
			FocusedFrame: focused,
		},
		Completion: CompletionTheme{
			Frame:        border,
			FocusedFrame: focused,
			Name:         name,
			Description:  desc,
			SelectedName: name.Reverse(true),
			SelectedDesc: desc.Reverse(true),
		},
	}
}
