package widgets

import "strings"

// List renders a titled bullet list, clipped to height.
type List struct {
	Title string
	Items []string
	Class string
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := classStyle(MergeClasses("fg-text", l.Class))
	rows := make([]string, 0, len(l.Items)+1)
	rows = append(rows, classStyle("fg-text bold").Render(l.Title))
	for _, item := range l.Items {
		rows = append(rows, style.Render("- "+item))
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}
