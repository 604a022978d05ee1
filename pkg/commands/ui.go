package commands

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/quickadb/pkg/config"
	"tableflip.dev/quickadb/pkg/runner/session"
	"tableflip.dev/quickadb/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the full-screen console",
		Example: `
quickadb ui
quickadb ui --log-level debug --config ~/bench.yaml
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(_ context.Context) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("the console needs a terminal; try 'quickadb line'")
	}
	cfg, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	return app.Run(s.Engine, app.Options{
		ID:          "quickadb",
		Title:       cfg.Title,
		Version:     cfg.VersionBanner,
		Placeholder: cfg.Placeholder,
		Logger:      s.Logger,
	}, s.Handler)
}

func openSession() (*config.Config, *session.Session, error) {
	cfg, err := co.Load()
	if err != nil {
		return nil, nil, err
	}
	level, err := lo.Level(cfg)
	if err != nil {
		return nil, nil, err
	}
	s, err := session.New(cfg, level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}
