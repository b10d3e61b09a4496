package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// The select family renders dropdown chrome only. Open/closed state, the
// current value, and cursor movement belong to a controller above this
// package; every type here draws exactly what it is handed.

// ControlState is the visual state of an interactive surface.
type ControlState int

const (
	ControlIdle ControlState = iota
	ControlActive
	ControlDisabled
)

// ItemState is the visual state of a single selectable entry.
type ItemState int

const (
	ItemIdle ItemState = iota
	ItemHighlighted
	ItemSelected
	ItemDisabled
)

// SelectOption declares one choosable value.
type SelectOption struct {
	Value    string
	Label    string
	Disabled bool
}

// Select renders a closed single-choice control: trigger chrome around the
// label of the current value. An empty Value falls back to the first declared
// option, mirroring an uncontrolled native control. Only declared option
// values resolve; anything else renders the placeholder.
type Select struct {
	Options     []SelectOption
	Value       string
	Placeholder string
	State       ControlState
	Class       string
}

func (s Select) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	value := SelectValue{Child: s.currentLabel(), Placeholder: s.Placeholder}
	return SelectTrigger{Child: value, State: s.State, Class: s.Class}.Render(width, height)
}

func (s Select) currentLabel() string {
	if s.Value == "" {
		if len(s.Options) > 0 {
			return s.Options[0].Label
		}
		return ""
	}
	for _, opt := range s.Options {
		if opt.Value == s.Value {
			return opt.Label
		}
	}
	return ""
}

// SelectTrigger is the clickable surface of a dropdown: a single-line
// bracketed box with a chevron. It never tracks open state; the parent
// decides when the popup shows.
type SelectTrigger struct {
	Child Widget
	State ControlState
	Class string
}

func (t SelectTrigger) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	inner := max(1, width-4)
	label := ""
	if t.Child != nil {
		label = firstLine(t.Child.Render(inner, 1))
	}
	label = padRight(label, inner)

	classes := MergeClasses("fg-text", t.Class)
	chevron := "▾"
	switch t.State {
	case ControlActive:
		classes = MergeClasses(classes, "fg-accent", "bold")
		chevron = "▴"
	case ControlDisabled:
		classes = MergeClasses(classes, "fg-faint")
	}
	return classStyle(classes).Render("[ " + label + " " + chevron + "]")
}

// SelectValue shows the supplied child text, or the placeholder when the
// child is empty. It has no selection awareness of its own.
type SelectValue struct {
	Child       string
	Placeholder string
	Class       string
}

func (v SelectValue) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if strings.TrimSpace(v.Child) != "" {
		return classStyle(MergeClasses("fg-text", v.Class)).Render(ansi.Truncate(firstLine(v.Child), width, ""))
	}
	return classStyle(MergeClasses("fg-faint italic", v.Class)).Render(ansi.Truncate(v.Placeholder, width, ""))
}

// SelectContent is the popup panel of a dropdown: a bordered, layered
// container that clips overflowing children. It renders unconditionally;
// visibility and placement are the caller's problem (see RenderPopup).
type SelectContent struct {
	Children []Widget
	Class    string
}

func (c SelectContent) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	inner := max(1, width-4)
	rows := make([]string, 0, len(c.Children))
	for _, child := range c.Children {
		if child == nil {
			continue
		}
		rows = append(rows, strings.Split(child.Render(inner, 1), "\n")...)
	}
	if len(rows) == 0 {
		rows = []string{classStyle("fg-faint italic").Render("No options")}
	}
	innerHeight := max(1, height-2)
	if len(rows) > innerHeight {
		rows = rows[:innerHeight]
	}
	border := classStyle(MergeClasses("fg-border", c.Class))
	top := border.Render("╭" + strings.Repeat("─", inner+2) + "╮")
	bottom := border.Render("╰" + strings.Repeat("─", inner+2) + "╯")
	v := border.Render("│")
	out := make([]string, 0, len(rows)+2)
	out = append(out, top)
	for _, row := range rows {
		out = append(out, v+" "+padRight(row, inner)+" "+v)
	}
	out = append(out, bottom)
	return strings.Join(out, "\n")
}

// SelectItem is one entry inside SelectContent. The state marks how the entry
// should look; it does not enforce disabled behavior, which is the
// controller's job.
type SelectItem struct {
	Value string
	Label string
	State ItemState
	Class string
}

func (i SelectItem) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	prefix := "  "
	classes := MergeClasses("fg-text", i.Class)
	switch i.State {
	case ItemHighlighted:
		prefix = "▸ "
		classes = MergeClasses(classes, "fg-accent", "bold")
	case ItemSelected:
		prefix = "✓ "
		classes = MergeClasses(classes, "fg-focus")
	case ItemDisabled:
		classes = MergeClasses(classes, "fg-faint")
	}
	return classStyle(classes).Render(ansi.Truncate(prefix+i.Label, width, ""))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
