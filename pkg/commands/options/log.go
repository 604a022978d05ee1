package options

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/quickadb/pkg/config"
)

// levelValue adapts slog.Level to pflag.Value.
type levelValue struct {
	level slog.Level
	set   bool
}

var _ pflag.Value = (*levelValue)(nil)

func (l *levelValue) String() string {
	if !l.set {
		return ""
	}
	return l.level.String()
}

func (l *levelValue) Set(s string) error {
	lvl, err := config.ParseLevel(s)
	if err != nil {
		return err
	}
	l.level = lvl
	l.set = true
	return nil
}

func (l *levelValue) Type() string {
	return "level"
}

// LogOptions carries the --log-level override for the diagnostics logger.
type LogOptions struct {
	level levelValue
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().Var(&o.level, "log-level",
		"Diagnostics level: debug, info, warn or error. Overrides log_level from the config file.")
	_ = cmd.RegisterFlagCompletionFunc("log-level", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Level returns the flag value when given, otherwise the configured level.
func (o *LogOptions) Level(cfg *config.Config) (slog.Level, error) {
	if o.level.set {
		return o.level.level, nil
	}
	return cfg.Level()
}
