package app

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/quickadb/pkg/console"
)

var namedKeys = map[string]console.KeyType{
	"enter":     console.KeyEnter,
	"esc":       console.KeyEscape,
	"up":        console.KeyUp,
	"down":      console.KeyDown,
	"tab":       console.KeyTab,
	"shift+tab": console.KeyShiftTab,
	"backspace": console.KeyBackspace,
	"ctrl+u":    console.KeyClearLine,
	"pgup":      console.KeyPageUp,
	"pgdown":    console.KeyPageDown,
	"home":      console.KeyHome,
	"end":       console.KeyEnd,
}

// translateKey converts a Bubble Tea key press into engine keys. Printable
// text may carry several runes; each becomes its own key.
func translateKey(msg tea.KeyPressMsg) []console.Key {
	if t, ok := namedKeys[msg.String()]; ok {
		return []console.Key{{Type: t}}
	}
	if msg.Mod&(tea.ModCtrl|tea.ModAlt) == 0 {
		if msg.Text != "" {
			keys := make([]console.Key, 0, len(msg.Text))
			for _, r := range msg.Text {
				keys = append(keys, console.Rune(r))
			}
			return keys
		}
		if unicode.IsPrint(msg.Code) {
			return []console.Key{console.Rune(msg.Code)}
		}
	}
	return []console.Key{{Type: console.KeyOther}}
}
