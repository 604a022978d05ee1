package options

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/quickadb/pkg/config"
)

func TestLogLevelFlag(t *testing.T) {
	o := &LogOptions{}
	cmd := &cobra.Command{Use: "x"}
	AddLogArgs(cmd, o)

	cfg := &config.Config{LogLevel: "warn"}
	lvl, err := o.Level(cfg)
	if err != nil || lvl != slog.LevelWarn {
		t.Fatalf("expected config level warn, got %v (%v)", lvl, err)
	}

	if err := cmd.PersistentFlags().Set("log-level", "debug"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	lvl, err = o.Level(cfg)
	if err != nil || lvl != slog.LevelDebug {
		t.Fatalf("expected flag level debug, got %v (%v)", lvl, err)
	}
	if got := cmd.PersistentFlags().Lookup("log-level").Value.String(); got != "DEBUG" {
		t.Fatalf("unexpected flag string %q", got)
	}

	if err := cmd.PersistentFlags().Set("log-level", "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestConfigOptionsLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quickadb.yaml")
	if err := os.WriteFile(path, []byte("title: BENCH\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	o := &ConfigOptions{Path: path}
	cfg, err := o.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Title != "BENCH" {
		t.Fatalf("expected title from file, got %q", cfg.Title)
	}
}

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	saved := color.Output
	color.Output = &buf
	defer func() { color.Output = saved }()

	o := &OutputOptions{JSON: true}
	if err := o.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("expected error to be rendered, got %v", err)
	}
	if got := buf.String(); got != "{\"error\":\"boom\"}\n" {
		t.Fatalf("unexpected output %q", got)
	}

	o.JSON = false
	if err := o.HandleError(errors.New("boom")); err == nil {
		t.Fatalf("expected error to pass through")
	}
}
