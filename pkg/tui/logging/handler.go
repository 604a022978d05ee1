// Package logging routes log/slog records into the console log buffer so
// background work shows up in the scrollback next to echoed commands.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/quickadb/pkg/tui/events"
)

// Appender is the write side of the console log buffer.
type Appender interface {
	Append(line string)
}

// Sender delivers messages to a running Bubble Tea program.
type Sender interface {
	Send(msg tea.Msg)
}

// Handler is a slog.Handler that appends one line per record to the log
// buffer and then nudges the program to repaint. Records arriving before
// SetProgram are still appended; the next repaint shows them.
//
// The nudge is sent from its own goroutine because Program.Send blocks until
// the event loop receives it, and records may be logged from inside Update.
// Bursts collapse into a single pending nudge.
//
// Handlers derived via WithAttrs/WithGroup share the program pointer, so one
// SetProgram call reaches all of them.
type Handler struct {
	level   slog.Leveler
	out     Appender
	program *atomic.Pointer[Sender]
	pending *atomic.Bool
	attrs   []slog.Attr
	groups  []string
}

// NewHandler creates a handler writing records at or above level to out.
func NewHandler(out Appender, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		level:   level,
		out:     out,
		program: &atomic.Pointer[Sender]{},
		pending: &atomic.Bool{},
	}
}

// SetProgram enables repaint notifications. Safe to call from any goroutine.
func (h *Handler) SetProgram(program Sender) {
	if program == nil {
		h.program.Store(nil)
		return
	}
	h.program.Store(&program)
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	h.out.Append(h.format(record))
	p := h.program.Load()
	if p == nil || !h.pending.CompareAndSwap(false, true) {
		return nil
	}
	go func(program Sender) {
		h.pending.Store(false)
		program.Send(events.LogAppendedMsg{Source: "slog"})
	}(*p)
	return nil
}

// format renders "LEVEL message (key=value, ...)". INFO records omit the
// level so they read like plain console output.
func (h *Handler) format(record slog.Record) string {
	var b strings.Builder
	if record.Level != slog.LevelInfo {
		b.WriteString(record.Level.String())
		b.WriteByte(' ')
	}
	b.WriteString(record.Message)

	prefix := strings.Join(h.groups, ".")
	var parts []string
	for _, attr := range h.attrs {
		parts = append(parts, formatAttr("", attr))
	}
	record.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, formatAttr(prefix, attr))
		return true
	})
	if len(parts) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}
	return b.String()
}

func formatAttr(prefix string, attr slog.Attr) string {
	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	return fmt.Sprintf("%s=%s", key, attr.Value.Resolve())
}

// WithAttrs implements slog.Handler. Keys are qualified with the groups
// open at this point.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := strings.Join(h.groups, ".")
	qualified := clone(h.attrs)
	for _, attr := range attrs {
		if prefix != "" {
			attr.Key = prefix + "." + attr.Key
		}
		qualified = append(qualified, attr)
	}
	return &Handler{
		level:   h.level,
		out:     h.out,
		program: h.program,
		pending: h.pending,
		attrs:   qualified,
		groups:  clone(h.groups),
	}
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{
		level:   h.level,
		out:     h.out,
		program: h.program,
		pending: h.pending,
		attrs:   clone(h.attrs),
		groups:  append(clone(h.groups), name),
	}
}

func clone[T any](source []T) []T {
	if source == nil {
		return nil
	}
	out := make([]T, len(source))
	copy(out, source)
	return out
}
