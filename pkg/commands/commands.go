package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/quickadb/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
	co = &options.ConfigOptions{}
	lo = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "quickadb",
		Short: base.Wrap80("A keyboard-driven console with slash command completion."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context())
		},
		SilenceUsage: true,
	}
	options.AddConfigArgs(cmd, co)
	options.AddLogArgs(cmd, lo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLine(topLevel)
	addCatalog(topLevel)
	addKeys(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
