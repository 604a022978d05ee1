// Package line runs the console without the full-screen UI: each prompt
// reads a whole line and feeds it to the engine key by key.
package line

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/quickadb/pkg/console"
	"tableflip.dev/quickadb/pkg/registry"
)

// Prompter reads user input for the line-mode console.
type Prompter interface {
	// ReadLine reads one line, pre-filled with def.
	ReadLine(def string) (string, error)
	// Choose picks one of the completion candidates.
	Choose(candidates []registry.Command) (int, error)
}

// Line is the line-mode console runner.
type Line struct {
	Engine   *console.Engine
	Prompter Prompter
	Out      io.Writer

	printed uint64
}

// Do runs until the input is closed or interrupted.
func (l *Line) Do(ctx context.Context) error {
	if l.Engine == nil {
		return errors.New("line: engine is required")
	}
	if l.Prompter == nil {
		l.Prompter = &PromptUI{}
	}
	if l.Out == nil {
		l.Out = os.Stdout
	}

	l.flush()
	def := ""
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		text, err := l.Prompter.ReadLine(def)
		if err != nil {
			if isDone(err) {
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}
		def, err = l.feed(def, text)
		if err != nil {
			return err
		}
		l.flush()
	}
}

// feed types text into the engine. The engine already holds def, so only the
// part typed after it is fed; an edited pre-fill is retyped from scratch. A
// trigger character opens the chooser and its pick becomes the next prompt's
// pre-filled text. Otherwise the line is submitted.
func (l *Line) feed(def, text string) (string, error) {
	rest := text
	if def != "" {
		if strings.HasPrefix(text, def) {
			rest = text[len(def):]
		} else {
			l.Engine.HandleKey(console.Key{Type: console.KeyEscape})
		}
	}
	for _, r := range rest {
		l.Engine.HandleKey(console.Rune(r))
		if r != console.TriggerRune || !l.Engine.Completion().Active() || l.Engine.Registry().Len() == 0 {
			continue
		}
		idx, err := l.Prompter.Choose(l.Engine.Registry().Commands())
		if err != nil {
			if isDone(err) {
				l.Engine.HandleKey(console.Key{Type: console.KeyEscape})
				return "", nil
			}
			return "", fmt.Errorf("choose command: %w", err)
		}
		for i := 0; i < idx; i++ {
			l.Engine.HandleKey(console.Key{Type: console.KeyDown})
		}
		l.Engine.HandleKey(console.Key{Type: console.KeyEnter})
		return l.Engine.Input(), nil
	}
	if l.Engine.Completion().Active() {
		// Nothing to commit from an empty list; the first Enter only closes it.
		l.Engine.HandleKey(console.Key{Type: console.KeyEnter})
	}
	l.Engine.HandleKey(console.Key{Type: console.KeyEnter})
	return "", nil
}

// flush prints log lines appended since the last flush.
func (l *Line) flush() {
	lines, total := l.Engine.Log().Since(l.printed)
	for _, s := range lines {
		_, _ = fmt.Fprintln(l.Out, s)
	}
	l.printed = total
}

func isDone(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF)
}

// PromptUI reads lines and choices with promptui.
type PromptUI struct {
	Label string
}

// ReadLine implements Prompter.
func (p *PromptUI) ReadLine(def string) (string, error) {
	label := p.Label
	if label == "" {
		label = ">"
	}
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
	}
	return prompt.Run()
}

// Choose implements Prompter.
func (p *PromptUI) Choose(candidates []registry.Command) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "\u279C  /{{ .Name | bold }} {{ .Description | green }}",
		Inactive: "   /{{ .Name }} {{ .Description | cyan }}",
		Selected: "/{{ .Name | bold }}",
	}
	searcher := func(input string, index int) bool {
		name := strings.ToLower(candidates[index].Name)
		return strings.Contains(name, strings.ToLower(strings.TrimPrefix(input, "/")))
	}
	sel := promptui.Select{
		HideHelp:  true,
		Label:     "Command",
		Items:     candidates,
		Templates: templates,
		Size:      len(candidates),
		Searcher:  searcher,
	}
	idx, _, err := sel.Run()
	return idx, err
}
