package console

import (
	"tableflip.dev/quickadb/pkg/logbuf"
	"tableflip.dev/quickadb/pkg/registry"
)

const (
	// EchoPrefix marks submitted lines in the log.
	EchoPrefix = "> "
	// DefaultHelpLine is appended to the log when the help key is pressed.
	DefaultHelpLine = "Help: Type commands. '/' triggers completions. Enter to run."
)

// Submitter receives each submitted input line after it has been echoed to
// the log.
type Submitter func(line string)

// Scroll is a log pane scroll request.
type Scroll int

const (
	ScrollNone Scroll = iota
	ScrollUp
	ScrollDown
	ScrollPageUp
	ScrollPageDown
	ScrollTop
	ScrollBottom
)

// Result is the outcome of routing one key through the engine.
type Result struct {
	Outcome Outcome
	// Pane is the pane the key was routed to, or the focused pane for keys
	// intercepted globally.
	Pane Pane
	// Scroll is set when the log pane consumed a scroll key.
	Scroll Scroll
}

// Engine is the console session: log, input line, completion and focus.
type Engine struct {
	log        *logbuf.Buffer
	registry   *registry.Registry
	input      InputLine
	completion Completion
	focus      Focus

	helpLine  string
	submitter Submitter
}

// Option configures an Engine.
type Option func(*Engine)

// WithLog shares an existing buffer with the engine.
func WithLog(buf *logbuf.Buffer) Option {
	return func(e *Engine) {
		if buf != nil {
			e.log = buf
		}
	}
}

// WithSubmitter installs the hook called for every submitted line.
func WithSubmitter(fn Submitter) Option {
	return func(e *Engine) { e.submitter = fn }
}

// WithHelpLine overrides the line appended by the help key.
func WithHelpLine(line string) Option {
	return func(e *Engine) {
		if line != "" {
			e.helpLine = line
		}
	}
}

// New constructs an engine over reg. A nil registry is treated as empty.
func New(reg *registry.Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = registry.New()
	}
	e := &Engine{
		log:      logbuf.New(logbuf.Capacity),
		registry: reg,
		focus:    NewFocus(),
		helpLine: DefaultHelpLine,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HandleKey routes k: global keys first, then the focused pane's handlers.
func (e *Engine) HandleKey(k Key) Result {
	switch {
	case k.Is(HelpRune):
		e.log.Append(e.helpLine)
		return Result{Outcome: Consumed, Pane: e.focus.Current()}
	case k.Type == KeyTab:
		e.focus.Next()
		return Result{Outcome: Consumed, Pane: e.focus.Current()}
	case k.Type == KeyShiftTab:
		e.focus.Prev()
		return Result{Outcome: Consumed, Pane: e.focus.Current()}
	}

	pane := e.focus.Current()
	switch pane {
	case PaneInput:
		if e.Dispatch(k) == Consumed {
			return Result{Outcome: Consumed, Pane: pane}
		}
		return Result{Outcome: e.input.Edit(k), Pane: pane}
	case PaneLogAndHeader:
		if s := scrollFor(k); s != ScrollNone {
			return Result{Outcome: Consumed, Pane: pane, Scroll: s}
		}
	}
	return Result{Outcome: NotConsumed, Pane: pane}
}

func scrollFor(k Key) Scroll {
	switch k.Type {
	case KeyUp:
		return ScrollUp
	case KeyDown:
		return ScrollDown
	case KeyPageUp:
		return ScrollPageUp
	case KeyPageDown:
		return ScrollPageDown
	case KeyHome:
		return ScrollTop
	case KeyEnd:
		return ScrollBottom
	}
	return ScrollNone
}

// Append adds a line to the log. Safe for concurrent use.
func (e *Engine) Append(line string) {
	e.log.Append(line)
}

// Log exposes the shared buffer for background producers.
func (e *Engine) Log() *logbuf.Buffer { return e.log }

// Registry returns the command catalog.
func (e *Engine) Registry() *registry.Registry { return e.registry }

// Input returns the current input text.
func (e *Engine) Input() string { return e.input.Value() }

// Completion returns a copy of the completion state.
func (e *Engine) Completion() Completion { return e.completion }

// Focus returns the focused pane.
func (e *Engine) Focus() Pane { return e.focus.Current() }

// SetFocus focuses p.
func (e *Engine) SetFocus(p Pane) { e.focus.Set(p) }

// CompletionView is the render-facing copy of the completion state.
type CompletionView struct {
	Active     bool
	Candidates []string
	// Selected is -1 while inactive.
	Selected int
}

// Snapshot is a read-only copy of everything the renderer paints.
type Snapshot struct {
	Log        []string
	Input      string
	Completion CompletionView
	Focus      Pane
}

// Snapshot copies the session for rendering. The log copy is taken under the
// buffer lock; the rest is owned by the event loop calling this.
func (e *Engine) Snapshot() Snapshot {
	view := CompletionView{Candidates: e.registry.Names(), Selected: -1}
	if i, ok := e.completion.Selected(); ok {
		view.Active = true
		view.Selected = i
	}
	return Snapshot{
		Log:        e.log.Snapshot(),
		Input:      e.input.Value(),
		Completion: view,
		Focus:      e.focus.Current(),
	}
}
