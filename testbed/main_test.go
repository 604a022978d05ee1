package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

func TestRunStopsProducersWhenProgramExits(t *testing.T) {
	t.Setenv("QUICKADB_CONFIG_PATH", t.TempDir())
	t.Chdir(t.TempDir())

	saved := runProgram
	defer func() { runProgram = saved }()
	runProgram = func(*tea.Program) error {
		time.Sleep(30 * time.Millisecond)
		return errors.New("no terminal")
	}

	done := make(chan error, 1)
	go func() {
		done <- run(options{width: 80, height: 20, producers: 2, interval: 5 * time.Millisecond})
	}()
	select {
	case err := <-done:
		if err == nil || err.Error() != "no terminal" {
			t.Fatalf("expected program error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("run did not return after the program exited")
	}
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestProducersWriteUntilCancelled(t *testing.T) {
	var out lockedBuffer
	logger := slog.New(slog.NewTextHandler(&out, nil))

	ctx, cancel := context.WithCancel(context.Background())
	wait := startProducers(ctx, logger, 2, time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), "producer=1") {
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("expected lines from both producers, got %q", out.String())
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	stopped := make(chan struct{})
	go func() {
		wait()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatalf("producers did not stop after cancel")
	}
	if !strings.Contains(out.String(), "device=emulator-5556") {
		t.Fatalf("expected second producer device serial, got %q", out.String())
	}
}
