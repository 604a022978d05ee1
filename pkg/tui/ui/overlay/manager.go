// Package overlay draws a floating view on top of an already rendered pane
// without disturbing the text outside the floating view's bounds.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Align positions the overlay along one axis.
type Align int

const (
	// AlignStart pins the overlay to the left or top edge.
	AlignStart Align = iota
	// AlignCenter centers the overlay.
	AlignCenter
	// AlignEnd pins the overlay to the right or bottom edge.
	AlignEnd
)

// Placement controls overlay alignment and margins.
type Placement struct {
	Horizontal Align
	Vertical   Align
	MarginX    int
	MarginY    int
}

// Compose draws foreground over background, a width x height canvas. Lines
// of the background outside the foreground's box are preserved.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	canvas := Normalize(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(canvas, "\n")
	}

	fgLines := strings.Split(foreground, "\n")
	boxWidth := 0
	for _, line := range fgLines {
		boxWidth = max(boxWidth, lipgloss.Width(line))
	}
	boxWidth = min(boxWidth, width)
	boxHeight := min(len(fgLines), height)
	if boxWidth == 0 {
		return strings.Join(canvas, "\n")
	}

	x := offset(placement.Horizontal, width, boxWidth, placement.MarginX)
	y := offset(placement.Vertical, height, boxHeight, placement.MarginY)

	for row := 0; row < boxHeight; row++ {
		base := canvas[y+row]
		canvas[y+row] = sliceWidth(base, 0, x) +
			padToWidth(fgLines[row], boxWidth) +
			sliceWidth(base, x+boxWidth, width)
	}
	return strings.Join(canvas, "\n")
}

// Normalize pads or trims view to exactly height lines of width cells,
// keeping the bottom-most lines when trimming.
func Normalize(view string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func offset(align Align, total, size, margin int) int {
	var pos int
	switch align {
	case AlignEnd:
		pos = total - size - margin
	case AlignCenter:
		pos = (total - size) / 2
	default:
		pos = margin
	}
	return max(0, min(pos, total-size))
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s + strings.Repeat(" ", width-w)
}

// sliceWidth returns the runes of s occupying cells [start, end). Styled
// background text loses its escape sequences inside the slice. A wide rune
// cut by either edge becomes spaces so the slice keeps its width.
func sliceWidth(s string, start, end int) string {
	start = max(start, 0)
	if end <= start {
		return ""
	}
	var b strings.Builder
	seen := 0
	for _, r := range ansi.Strip(s) {
		if seen >= end {
			break
		}
		next := seen + ansi.StringWidth(string(r))
		switch {
		case next <= start:
		case seen < start:
			b.WriteString(strings.Repeat(" ", min(next, end)-start))
		case next > end:
			b.WriteString(strings.Repeat(" ", end-seen))
		default:
			b.WriteRune(r)
		}
		seen = next
	}
	return b.String()
}
