package ui

// Component is a pane the root model sizes and paints. Panes hold no
// session state of their own; they render whatever they were last fed.
type Component interface {
	SetSize(width, height int)
	View() string
}
