package ui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// renderStatusBar draws a single-line status bar at the given width
// with left/right-aligned content.
func renderStatusBar(width int, left, right string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	lw := xansi.StringWidth(left)
	rw := xansi.StringWidth(right)
	if lw+rw > w {
		maxL := w - rw - 1
		if maxL < 0 {
			maxL = 0
		}
		left = xansi.Truncate(left, maxL, "…")
		lw = xansi.StringWidth(left)
	}
	pad := w - lw - rw
	if pad < 0 {
		pad = 0
	}
	return StatusBarBase().Render(left + strings.Repeat(" ", pad) + right)
}

// clipLine truncates a rendered line to the given display width,
// ignoring ANSI escape codes.
func clipLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	return xansi.Truncate(s, width, "…")
}
