package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/quickadb/pkg/registry"
)

func TestCatalogTable(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	c := Catalog{Registry: registry.FromNames("devices", "reboot"), Out: &out}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %q", out.String())
	}
	if !strings.HasPrefix(lines[1], "/devices") || !strings.Contains(lines[1], "List attached devices") {
		t.Fatalf("unexpected devices row %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "/reboot") {
		t.Fatalf("unexpected reboot row %q", lines[2])
	}
}

func TestCatalogJSON(t *testing.T) {
	var out bytes.Buffer
	c := Catalog{Registry: registry.Default(), JSON: true, Out: &out}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var items []jsonCommand
	if err := json.Unmarshal(out.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 8 || items[7].Name != "version" || items[7].Index != 7 {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestCatalogRequiresRegistry(t *testing.T) {
	c := Catalog{Out: &bytes.Buffer{}}
	if err := c.Do(context.Background()); err == nil {
		t.Fatalf("expected error without registry")
	}
}
