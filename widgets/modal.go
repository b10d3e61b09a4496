package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup composites a popup card over the base canvas, centered. This is
// the layering half of the dropdown/modal contract: content widgets render
// unconditionally and this compositor decides where (and whether) they
// appear.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(popup)
	under := newCanvas(base, width, height)
	over := newCanvas(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card), width, height)
	return under.composite(over).String()
}

// canvas is a fixed-size block of padded lines, the unit the compositor
// works in.
type canvas struct {
	lines []string
	width int
}

func newCanvas(s string, width, height int) canvas {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return canvas{lines: lines, width: width}
}

func (c canvas) String() string {
	return strings.Join(c.lines, "\n")
}

func (c canvas) composite(over canvas) canvas {
	out := make([]string, len(c.lines))
	for i := range c.lines {
		out[i] = spliceLine(c.lines[i], over.lines[i], c.width)
	}
	return canvas{lines: out, width: c.width}
}

// spliceLine lays the non-blank run of over onto base, keeping the base
// visible on both sides of the card.
func spliceLine(base, over string, width int) string {
	start, end, ok := contentBounds(over, width)
	if !ok {
		return base
	}
	left := ansi.Truncate(base, start, "")
	segment := ansi.Truncate(dropColumns(over, start), end-start, "")
	right := dropColumns(base, end)
	return padRightANSI(left+segment+right, width)
}

// contentBounds finds the column range of a line's non-blank content, blind
// to styling.
func contentBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	start = 0
	for start < len(plain) && plain[start] == ' ' {
		start++
	}
	end = len(trimmed)
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
