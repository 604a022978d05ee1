package commands

import (
	"context"
	"github.com/spf13/cobra"

	"tableflip.dev/quickadb/pkg/runner/keys"
)

func addKeys(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "keys",
		Aliases: []string{"key"},
		Short:   "Print the console key bindings",
		Example: `
quickadb keys
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := keys.Keys{Out: oo.Writer()}
			return oo.HandleError(k.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
