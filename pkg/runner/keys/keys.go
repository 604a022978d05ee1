// Package keys prints the console key reference.
package keys

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

//go:embed keys.md
var keysMarkdown string

// Keys renders the key reference as styled terminal markdown.
type Keys struct {
	// Width is the word-wrap width; zero means 80.
	Width int
	// Plain skips styling. Output that cannot show color is always plain.
	Plain bool
	Out   io.Writer
}

// Do renders the reference to Out.
func (k *Keys) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	width := k.Width
	if width <= 0 {
		width = 80
	}

	style := glamour.WithAutoStyle()
	if k.Plain || color.NoColor || termenv.NewOutput(out).EnvColorProfile() == termenv.Ascii {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(strings.TrimSpace(keysMarkdown))
	if err != nil {
		return fmt.Errorf("render key reference: %w", err)
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
