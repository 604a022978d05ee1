package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/quickadb/pkg/commands/options"
	"tableflip.dev/quickadb/pkg/runner/catalog"
)

func addCatalog(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "commands",
		Aliases: []string{"cmds"},
		Short:   "List the commands offered by '/' completion",
		Example: `
quickadb commands
quickadb commands --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := co.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			c := catalog.Catalog{
				Registry: cfg.Registry(),
				JSON:     oo.JSON,
				Out:      oo.Writer(),
			}
			return oo.HandleError(c.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
