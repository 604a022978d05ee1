package registry

import (
	"strings"
	"testing"
)

func TestDefaultOrder(t *testing.T) {
	r := Default()
	want := "connect,disconnect,devices,logcat,screenrecord,screenshot,help,version"
	if got := strings.Join(r.Names(), ","); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if r.Len() != 8 {
		t.Fatalf("expected 8 commands, got %d", r.Len())
	}
	if r.Name(2) != "devices" {
		t.Fatalf("expected devices at index 2, got %q", r.Name(2))
	}
}

func TestFromNamesTrimsAndDescribes(t *testing.T) {
	r := FromNames(" devices ", "", "reboot")
	cmds := r.Commands()
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %+v", cmds)
	}
	if cmds[0].Name != "devices" || cmds[0].Description == "" {
		t.Fatalf("expected described devices command, got %+v", cmds[0])
	}
	if cmds[1].Name != "reboot" || cmds[1].Description != "" {
		t.Fatalf("expected bare reboot command, got %+v", cmds[1])
	}
}

func TestCopiesAreDetached(t *testing.T) {
	r := Default()
	names := r.Names()
	names[0] = "mutated"
	cmds := r.Commands()
	cmds[1].Name = "mutated"
	if r.Name(0) != "connect" || r.Name(1) != "disconnect" {
		t.Fatalf("registry mutated through copies: %v", r.Names())
	}
}

func TestNilRegistryIsEmpty(t *testing.T) {
	var r *Registry
	if r.Len() != 0 || r.Names() != nil || r.Commands() != nil {
		t.Fatalf("expected nil registry to behave as empty")
	}
}
