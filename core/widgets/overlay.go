package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var popupCard = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

// RenderPopup draws popup inside a bordered card centered over base.
func RenderPopup(base, popup string, width, height int) string {
	return Overlay(base, popupCard.Render(popup), width, height)
}

// Overlay centers block over base without touching base cells outside the
// block's bounding box.
func Overlay(base, block string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := Fit(base, width, height)
	lines := splitToLines(block, 0)
	w, h := maxLineWidth(lines), len(lines)
	if w == 0 || h == 0 {
		return canvas
	}
	return overlayAt(canvas, lines, max(0, (width-w)/2), max(0, (height-h)/2), width, height)
}

func overlayAt(base string, block []string, x, y, width, height int) string {
	rows := splitToLines(base, height)
	blockWidth := maxLineWidth(block)
	for i, line := range block {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		target := padRightANSI(rows[row], width)
		left := padRightANSI(ansi.Truncate(target, x, ""), x)
		mid := padRightANSI(line, blockWidth)
		right := dropColumns(target, x+ansi.StringWidth(mid))
		rows[row] = padRightANSI(left+mid+right, width)
	}
	return strings.Join(rows, "\n")
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}
