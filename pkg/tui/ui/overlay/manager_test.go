package overlay

import (
	"strings"
	"testing"
)

func TestComposeBottomStart(t *testing.T) {
	bg := "aaaaaa\nbbbbbb\ncccccc"
	got := Compose(bg, 6, 3, "XX\nYY", Placement{Horizontal: AlignStart, Vertical: AlignEnd, MarginX: 1})
	want := "aaaaaa\nbXXbbb\ncYYccc"
	if got != want {
		t.Fatalf("unexpected compose:\n%s\nwant:\n%s", got, want)
	}
}

func TestComposeClampsOversizedForeground(t *testing.T) {
	got := Compose("", 3, 2, "12345\n6\n7\n8", Placement{Horizontal: AlignCenter, Vertical: AlignCenter})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "123" {
		t.Fatalf("expected clipped first row, got %q", lines[0])
	}
}

func TestNormalizeKeepsBottom(t *testing.T) {
	lines := Normalize("1\n2\n3", 2, 2)
	if strings.Join(lines, "|") != "2 |3 " {
		t.Fatalf("unexpected normalize result %q", lines)
	}
	if Normalize("x", 2, 0) != nil {
		t.Fatalf("expected nil for zero height")
	}
}

func TestComposeOverHyperlinkKeepsVisibleText(t *testing.T) {
	bg := "\x1b]8;;http://x.io\x1b\\docs\x1b]8;;\x1b\\ tail-text"
	got := Compose(bg, 30, 1, "[P]", Placement{Horizontal: AlignStart, Vertical: AlignStart})
	want := "[P]s tail-text" + strings.Repeat(" ", 16)
	if got != want {
		t.Fatalf("unexpected row:\n%q\nwant:\n%q", got, want)
	}
}

func TestComposeSplitsWideRunesIntoSpaces(t *testing.T) {
	for _, tc := range []struct {
		name    string
		marginX int
		want    string
	}{
		{name: "cut by right edge of left slice", marginX: 3, want: "ab Xcd"},
		{name: "cut by left edge of right slice", marginX: 2, want: "abX cd"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := Compose("ab界cd", 6, 1, "X", Placement{Horizontal: AlignStart, Vertical: AlignStart, MarginX: tc.marginX})
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
