// Package session wires a console engine, its log buffer and the slog
// logger that feeds it from a loaded config.
package session

import (
	"fmt"
	"log/slog"
	"os"

	"tableflip.dev/quickadb/pkg/config"
	"tableflip.dev/quickadb/pkg/console"
	"tableflip.dev/quickadb/pkg/logbuf"
	"tableflip.dev/quickadb/pkg/tui/logging"
)

// Session is one console run.
type Session struct {
	Engine  *console.Engine
	Handler *logging.Handler
	Logger  *slog.Logger

	logFile *os.File
}

// New builds a session. When cfg.LogFile is set, records are also written
// there as text so they survive the alt screen.
func New(cfg *config.Config, level slog.Level) (*Session, error) {
	buf := logbuf.New(logbuf.Capacity)
	h := logging.NewHandler(buf, level)

	s := &Session{Handler: h}
	var handler slog.Handler = h
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		s.logFile = f
		handler = logging.Tee{h, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})}
	}
	s.Logger = slog.New(handler)

	logger := s.Logger
	s.Engine = console.New(cfg.Registry(),
		console.WithLog(buf),
		console.WithHelpLine(cfg.HelpLine),
		console.WithSubmitter(func(line string) {
			logger.Debug("command submitted", "line", line)
		}),
	)
	for _, line := range []string{cfg.VersionBanner, cfg.Welcome} {
		if line != "" {
			s.Engine.Append(line)
		}
	}
	if cfg.File != "" {
		s.Logger.Debug("config loaded", "file", cfg.File)
	}
	return s, nil
}

// Close releases the log file, if any.
func (s *Session) Close() error {
	if s.logFile == nil {
		return nil
	}
	return s.logFile.Close()
}
