package console

import "fmt"

// KeyType classifies a key event delivered by the rendering collaborator.
type KeyType int

const (
	// KeyRune is a printable character; Key.Rune carries it.
	KeyRune KeyType = iota
	// KeyEnter submits the line or commits a completion.
	KeyEnter
	// KeyEscape cancels input and completion.
	KeyEscape
	// KeyUp moves the completion selection or scrolls the log.
	KeyUp
	// KeyDown moves the completion selection or scrolls the log.
	KeyDown
	// KeyTab moves focus to the next pane.
	KeyTab
	// KeyShiftTab moves focus to the previous pane.
	KeyShiftTab
	// KeyBackspace deletes the last rune of the input line.
	KeyBackspace
	// KeyClearLine empties the input line (ctrl+u).
	KeyClearLine
	// KeyPageUp scrolls the log by a page.
	KeyPageUp
	// KeyPageDown scrolls the log by a page.
	KeyPageDown
	// KeyHome jumps to the oldest log line.
	KeyHome
	// KeyEnd jumps to the newest log line.
	KeyEnd
	// KeyOther is any key the engine has no meaning for.
	KeyOther
)

const (
	// TriggerRune opens the completion popup.
	TriggerRune = '/'
	// HelpRune is the global help key.
	HelpRune = '?'
)

// Key is a single keyboard event.
type Key struct {
	Type KeyType
	Rune rune
}

// Rune returns a printable character key.
func Rune(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// Is reports whether k is the printable character r.
func (k Key) Is(r rune) bool {
	return k.Type == KeyRune && k.Rune == r
}

func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyTab:
		return "tab"
	case KeyShiftTab:
		return "shift+tab"
	case KeyBackspace:
		return "backspace"
	case KeyClearLine:
		return "ctrl+u"
	case KeyPageUp:
		return "pgup"
	case KeyPageDown:
		return "pgdown"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return fmt.Sprintf("key(%d)", int(k.Type))
	}
}

// Outcome reports whether a handler fully handled a key.
type Outcome int

const (
	// NotConsumed lets the key fall through to the next handler.
	NotConsumed Outcome = iota
	// Consumed stops further handling of the key.
	Consumed
)

func (o Outcome) String() string {
	if o == Consumed {
		return "consumed"
	}
	return "not-consumed"
}
