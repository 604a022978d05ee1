package console

// Pane identifies a focusable region of the console.
type Pane int

const (
	// PaneLogAndHeader is the header plus scrollback log.
	PaneLogAndHeader Pane = iota
	// PaneInput is the command entry line.
	PaneInput
	// PaneCompletions is the completion popup.
	PaneCompletions
)

// Panes lists the focusable panes in traversal order.
var Panes = [...]Pane{PaneLogAndHeader, PaneInput, PaneCompletions}

func (p Pane) String() string {
	switch p {
	case PaneLogAndHeader:
		return "log"
	case PaneInput:
		return "input"
	case PaneCompletions:
		return "completions"
	default:
		return "unknown"
	}
}

// Focus selects exactly one pane out of Panes.
type Focus struct {
	selector int
}

// NewFocus returns a focus with the input pane selected.
func NewFocus() Focus {
	return Focus{selector: int(PaneInput)}
}

// Current returns the focused pane.
func (f *Focus) Current() Pane { return Panes[f.selector] }

// Set focuses p. Unknown panes are ignored.
func (f *Focus) Set(p Pane) {
	for i, candidate := range Panes {
		if candidate == p {
			f.selector = i
			return
		}
	}
}

// Next moves focus forward, wrapping at the end.
func (f *Focus) Next() {
	f.selector = (f.selector + 1) % len(Panes)
}

// Prev moves focus backward, wrapping at the start.
func (f *Focus) Prev() {
	f.selector = (f.selector - 1 + len(Panes)) % len(Panes)
}
