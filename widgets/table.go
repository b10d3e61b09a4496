package widgets

import "strings"

// Table renders a plain header + rows grid, clipped to height.
type Table struct {
	Headers []string
	Rows    [][]string
	Class   string
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	style := classStyle(MergeClasses("fg-text", t.Class))
	lines := []string{classStyle("fg-accent bold").Render(strings.Join(t.Headers, " | "))}
	for _, row := range t.Rows {
		lines = append(lines, style.Render(strings.Join(row, " | ")))
		if len(lines) >= height {
			break
		}
	}
	return strings.Join(lines, "\n")
}
