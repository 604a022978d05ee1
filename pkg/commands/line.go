package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/quickadb/pkg/runner/line"
)

func addLine(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "line",
		Short: "run the console one prompt at a time",
		Long: `Runs the console without the full-screen UI. Typing '/' in a line
opens a picker over the command list; the pick becomes the next prompt.
Ctrl+C or Ctrl+D exits.`,
		Example: `
quickadb line
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			l := line.Line{Engine: s.Engine, Out: cmd.OutOrStdout()}
			return l.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
