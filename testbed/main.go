package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/quickadb/pkg/config"
	"tableflip.dev/quickadb/pkg/runner/session"
	"tableflip.dev/quickadb/pkg/tui/app"
)

type options struct {
	full      bool
	width     int
	height    int
	producers int
	interval  time.Duration
	commands  []string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run the console inside a fixed frame with a message trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.full, "full", false, "use the full terminal window")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 80, "window width when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 20, "window height when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.producers, "producers", 0, "number of background goroutines writing to the log")
	rootCmd.PersistentFlags().DurationVar(&opts.interval, "interval", 500*time.Millisecond, "delay between lines from each producer")
	rootCmd.PersistentFlags().StringSliceVar(&opts.commands, "commands", nil, "override the completion list")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if len(opts.commands) > 0 {
		cfg.Commands = opts.commands
	}
	s, err := session.New(cfg, slog.LevelDebug)
	if err != nil {
		return err
	}
	defer s.Close()

	root := app.New(s.Engine, app.Options{
		ID:          "testbed",
		Title:       cfg.Title,
		Version:     cfg.VersionBanner,
		Placeholder: cfg.Placeholder,
		Logger:      s.Logger,
	})
	base := newTestbedModel(opts, root)
	p := tea.NewProgram(base, tea.WithAltScreen())
	s.Handler.SetProgram(p)
	defer s.Handler.SetProgram(nil)

	ctx, cancel := context.WithCancel(context.Background())
	wait := startProducers(ctx, s.Logger, opts.producers, opts.interval)
	defer func() {
		cancel()
		wait()
	}()

	return runProgram(p)
}

// runProgram is swapped out in tests, which have no terminal.
var runProgram = func(p *tea.Program) error {
	_, err := p.Run()
	return err
}
