// Package registry holds the immutable catalog of console commands offered
// by the completion popup.
package registry

import "strings"

// Command describes one known console command.
type Command struct {
	Name        string
	Description string
}

// Registry is an ordered, read-only list of commands fixed at construction.
type Registry struct {
	commands []Command
}

var defaults = []Command{
	{Name: "connect", Description: "Connect to a device"},
	{Name: "disconnect", Description: "Disconnect from the current device"},
	{Name: "devices", Description: "List attached devices"},
	{Name: "logcat", Description: "Stream device logs"},
	{Name: "screenrecord", Description: "Record the device screen"},
	{Name: "screenshot", Description: "Capture a screenshot"},
	{Name: "help", Description: "Show command tips"},
	{Name: "version", Description: "Show the console version"},
}

// Default returns the built-in command catalog.
func Default() *Registry {
	return New(defaults...)
}

// New builds a registry preserving the given order. Blank names are skipped
// and surrounding whitespace is trimmed.
func New(commands ...Command) *Registry {
	out := make([]Command, 0, len(commands))
	for _, c := range commands {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			continue
		}
		c.Description = strings.TrimSpace(c.Description)
		out = append(out, c)
	}
	return &Registry{commands: out}
}

// FromNames builds a registry from bare command names. Names matching a
// built-in command pick up its description.
func FromNames(names ...string) *Registry {
	known := make(map[string]string, len(defaults))
	for _, c := range defaults {
		known[c.Name] = c.Description
	}
	commands := make([]Command, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		commands = append(commands, Command{Name: n, Description: known[n]})
	}
	return New(commands...)
}

// Len reports the number of commands.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.commands)
}

// Name returns the command name at index i.
func (r *Registry) Name(i int) string {
	return r.commands[i].Name
}

// Names returns a copy of the ordered command names.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.commands))
	for i, c := range r.commands {
		out[i] = c.Name
	}
	return out
}

// Commands returns a copy of the ordered commands.
func (r *Registry) Commands() []Command {
	if r == nil {
		return nil
	}
	return append([]Command(nil), r.commands...)
}
