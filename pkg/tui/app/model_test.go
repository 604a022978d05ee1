package app

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/quickadb/pkg/console"
	"tableflip.dev/quickadb/pkg/registry"
	"tableflip.dev/quickadb/pkg/tui/events"
)

func newTestModel(t *testing.T) (*Model, *console.Engine) {
	t.Helper()
	engine := console.New(registry.Default())
	engine.Append("quick-adb v0.0.1")
	m := New(engine, Options{Title: "QUICK ADB", Version: "quick-adb v0.0.1", Placeholder: "Type a command."})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, engine
}

func press(m *Model, msgs ...tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		_, cmd := m.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeString(m *Model, s string) {
	for _, r := range s {
		press(m, char(r))
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestViewShowsHeaderLogAndPrompt(t *testing.T) {
	m, _ := newTestModel(t)
	view, cursor := m.View()

	for _, want := range []string{"QUICK ADB", "Command Log", "quick-adb v0.0.1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Fatalf("expected view to fill 24 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if w := ansi.PrintableRuneWidth(line); w != 80 {
			t.Fatalf("line %d has width %d, want 80: %q", i, w, line)
		}
	}
	if cursor == nil {
		t.Fatalf("expected a cursor while the prompt is focused")
	}
}

func TestSlashOpensPopupAndEnterCommits(t *testing.T) {
	m, engine := newTestModel(t)

	typeString(m, "foo/")
	view, _ := m.View()
	if !strings.Contains(view, "screenrecord") {
		t.Fatalf("expected completion popup in view:\n%s", view)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyDown}, tea.KeyPressMsg{Code: tea.KeyDown})
	cmds := press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if engine.Input() != "/devices " {
		t.Fatalf("expected committed completion, got %q", engine.Input())
	}
	for _, cmd := range cmds {
		for _, msg := range collect(cmd) {
			if _, ok := msg.(events.CommandSubmitMsg); ok {
				t.Fatalf("completion commit must not submit")
			}
		}
	}

	view, _ = m.View()
	if strings.Contains(view, "screenrecord") {
		t.Fatalf("expected popup hidden after commit:\n%s", view)
	}
	if !strings.Contains(view, "/devices") {
		t.Fatalf("expected prompt to show committed text:\n%s", view)
	}
}

func TestEnterSubmitsAndEmitsEvent(t *testing.T) {
	m, engine := newTestModel(t)
	typeString(m, "connect")

	cmds := press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	var submitted *events.CommandSubmitMsg
	for _, cmd := range cmds {
		for _, msg := range collect(cmd) {
			if s, ok := msg.(events.CommandSubmitMsg); ok {
				submitted = &s
			}
		}
	}
	if submitted == nil || submitted.Value != "connect" {
		t.Fatalf("expected submit event for connect, got %+v", submitted)
	}

	lines := engine.Log().Snapshot()
	if lines[len(lines)-1] != "> connect" {
		t.Fatalf("expected echo in log, got %q", lines)
	}
	view, _ := m.View()
	if !strings.Contains(view, "> connect") {
		t.Fatalf("expected echo in view:\n%s", view)
	}
}

func TestHelpKeyAndFocusTraversal(t *testing.T) {
	m, engine := newTestModel(t)

	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	if engine.Focus() != console.PaneLogAndHeader {
		t.Fatalf("expected log focus, got %v", engine.Focus())
	}
	if _, cursor := m.View(); cursor != nil {
		t.Fatalf("cursor should be hidden when the prompt is not focused")
	}

	press(m, char('?'))
	lines := engine.Log().Snapshot()
	if lines[len(lines)-1] != console.DefaultHelpLine {
		t.Fatalf("expected help line, got %q", lines)
	}

	typeString(m, "abc")
	if engine.Input() != "" {
		t.Fatalf("typing on the log pane must not edit input, got %q", engine.Input())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

func TestTranslateKey(t *testing.T) {
	for _, tc := range []struct {
		name string
		msg  tea.KeyPressMsg
		want []console.Key
	}{
		{name: "enter", msg: tea.KeyPressMsg{Code: tea.KeyEnter}, want: []console.Key{{Type: console.KeyEnter}}},
		{name: "escape", msg: tea.KeyPressMsg{Code: tea.KeyEscape}, want: []console.Key{{Type: console.KeyEscape}}},
		{name: "slash", msg: char('/'), want: []console.Key{console.Rune('/')}},
		{name: "ctrl+u", msg: tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}, want: []console.Key{{Type: console.KeyClearLine}}},
		{name: "ctrl+x", msg: tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}, want: []console.Key{{Type: console.KeyOther}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := translateKey(tc.msg)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("key %d: expected %v, got %v", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestLogPaneScrollKeysMoveViewport(t *testing.T) {
	m, engine := newTestModel(t)
	for i := 0; i < 100; i++ {
		engine.Append(fmt.Sprintf("logcat line %d", i))
	}
	m.View()
	if !m.log.Following() {
		t.Fatalf("expected log to follow the newest line")
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyTab}, tea.KeyPressMsg{Code: tea.KeyTab})
	press(m, tea.KeyPressMsg{Code: tea.KeyPgUp})
	if m.log.Following() {
		t.Fatalf("expected pgup to scroll away from the bottom")
	}
	if view, _ := m.View(); strings.Contains(view, "logcat line 99") {
		t.Fatalf("newest line should be scrolled out of view:\n%s", view)
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEnd})
	if !m.log.Following() {
		t.Fatalf("expected end to resume following")
	}
}
