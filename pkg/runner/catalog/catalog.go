// Package catalog prints the console command registry.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/quickadb/pkg/registry"
)

// Catalog lists the commands offered by the completion popup.
type Catalog struct {
	Registry *registry.Registry
	JSON     bool
	Out      io.Writer
}

type jsonCommand struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Do prints the registry in completion order.
func (c *Catalog) Do(_ context.Context) error {
	if c.Registry == nil {
		return errors.New("catalog: registry is required")
	}
	out := c.Out
	if out == nil {
		out = color.Output
	}

	if c.JSON {
		cmds := c.Registry.Commands()
		items := make([]jsonCommand, len(cmds))
		for i, cmd := range cmds {
			items[i] = jsonCommand{Index: i, Name: cmd.Name, Description: cmd.Description}
		}
		b, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Command"), bold.Sprint("Description"))
	for _, cmd := range c.Registry.Commands() {
		desc := cmd.Description
		if desc == "" {
			desc = faint.Sprint("-")
		}
		tbl.AddRow("/"+cmd.Name, desc)
	}
	_, err := fmt.Fprintln(out, tbl)
	return err
}
