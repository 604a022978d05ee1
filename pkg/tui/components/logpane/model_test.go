package logpane

import (
	"fmt"
	"strings"
	"testing"

	"tableflip.dev/quickadb/pkg/console"
	"tableflip.dev/quickadb/pkg/tui/theme"
)

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i)
	}
	return lines
}

func TestLogPaneFollowsNewest(t *testing.T) {
	m := New(theme.Default().Log)
	m.SetSize(40, 8)
	m.SetLines(numbered(30))

	view := m.View()
	if !strings.Contains(view, Title) {
		t.Fatalf("expected title in view:\n%s", view)
	}
	if !strings.Contains(view, "line 29") || strings.Contains(view, "line 00") {
		t.Fatalf("expected newest lines visible:\n%s", view)
	}
}

func TestLogPaneScrollStopsFollowing(t *testing.T) {
	m := New(theme.Default().Log)
	m.SetSize(40, 8)
	m.SetLines(numbered(30))

	m.Scroll(console.ScrollTop)
	if m.Following() {
		t.Fatalf("expected follow off after scrolling to top")
	}
	m.SetLines(numbered(31))
	if view := m.View(); !strings.Contains(view, "line 00") {
		t.Fatalf("expected view to stay at top:\n%s", view)
	}

	m.Scroll(console.ScrollBottom)
	if !m.Following() {
		t.Fatalf("expected follow back on at bottom")
	}
}

func TestLogPaneEmpty(t *testing.T) {
	m := New(theme.Default().Log)
	m.SetSize(40, 6)
	m.SetLines(nil)
	if view := m.View(); !strings.Contains(view, "No output yet") {
		t.Fatalf("expected empty placeholder:\n%s", view)
	}
}
