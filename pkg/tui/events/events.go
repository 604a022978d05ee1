// Package events defines the messages exchanged between the console's Bubble
// Tea components and the goroutines feeding them.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/quickadb/pkg/console"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// LogAppendedMsg tells the root model the shared log buffer changed outside
// the event loop and the log pane should refresh.
type LogAppendedMsg struct {
	Source string
}

// Describe renders the event for diagnostics.
func (m LogAppendedMsg) Describe() string {
	return fmt.Sprintf(`source:%q`, m.Source)
}

// LogAppendedCmd wraps LogAppendedMsg into a tea.Cmd.
func LogAppendedCmd(source string) tea.Cmd {
	return func() tea.Msg {
		return LogAppendedMsg{Source: source}
	}
}

// CommandSubmitMsg is emitted when the input line is submitted.
type CommandSubmitMsg struct {
	Component ComponentID
	Value     string
}

// Describe renders the submission for diagnostics.
func (m CommandSubmitMsg) Describe() string {
	return fmt.Sprintf(`component:%q value:%q`, m.Component, m.Value)
}

// CommandSubmitCmd wraps CommandSubmitMsg into a tea.Cmd.
func CommandSubmitCmd(component ComponentID, value string) tea.Cmd {
	return func() tea.Msg {
		return CommandSubmitMsg{Component: component, Value: value}
	}
}

// FocusChangeMsg is emitted when keyboard focus moves between panes.
type FocusChangeMsg struct {
	Component ComponentID
	Previous  console.Pane
	Current   console.Pane
}

// Describe renders the focus change for diagnostics.
func (m FocusChangeMsg) Describe() string {
	return fmt.Sprintf(`from:%q to:%q`, m.Previous, m.Current)
}

// FocusChangeCmd wraps FocusChangeMsg into a tea.Cmd.
func FocusChangeCmd(component ComponentID, prev, cur console.Pane) tea.Cmd {
	return func() tea.Msg {
		return FocusChangeMsg{Component: component, Previous: prev, Current: cur}
	}
}

// CompletionChangeMsg is emitted when the completion popup opens, closes or
// moves its selection.
type CompletionChangeMsg struct {
	Component ComponentID
	Active    bool
	Selected  string
}

// Describe renders the completion change for diagnostics.
func (m CompletionChangeMsg) Describe() string {
	return fmt.Sprintf(`active:%t selected:%q`, m.Active, m.Selected)
}

// CompletionChangeCmd wraps CompletionChangeMsg into a tea.Cmd.
func CompletionChangeCmd(component ComponentID, active bool, selected string) tea.Cmd {
	return func() tea.Msg {
		return CompletionChangeMsg{Component: component, Active: active, Selected: selected}
	}
}

// Describer is implemented by events that can summarize themselves.
type Describer interface {
	Describe() string
}
