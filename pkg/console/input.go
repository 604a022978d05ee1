package console

import "unicode/utf8"

// InputLine is the not yet submitted command text. Edits only happen at the
// end of the buffer.
type InputLine struct {
	text string
}

// Value returns the current text.
func (l *InputLine) Value() string { return l.text }

// Set replaces the whole buffer.
func (l *InputLine) Set(text string) { l.text = text }

// Clear empties the buffer.
func (l *InputLine) Clear() { l.text = "" }

// Insert appends r.
func (l *InputLine) Insert(r rune) { l.text += string(r) }

// Backspace removes the last rune, if any.
func (l *InputLine) Backspace() {
	if l.text == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(l.text)
	l.text = l.text[:len(l.text)-size]
}

// Edit applies the default line-editing behavior for keys the dispatcher
// left alone.
func (l *InputLine) Edit(k Key) Outcome {
	switch k.Type {
	case KeyRune:
		if k.Rune < ' ' || k.Rune == utf8.RuneError {
			return NotConsumed
		}
		l.Insert(k.Rune)
		return Consumed
	case KeyBackspace:
		l.Backspace()
		return Consumed
	case KeyClearLine:
		l.Clear()
		return Consumed
	default:
		return NotConsumed
	}
}
