package keys

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestKeysRendersReference(t *testing.T) {
	var out bytes.Buffer
	k := Keys{Plain: true, Out: &out, Width: 100}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	for _, want := range []string{"quickadb keys", "Completion popup", "Shift+Tab"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("plain output must not contain escape sequences")
	}
}

func TestKeysPlainWhenOutputIsNotATerminal(t *testing.T) {
	var out bytes.Buffer
	k := Keys{Out: &out}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("buffer output must not be styled")
	}
}
