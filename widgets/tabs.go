package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// The tabs family renders a tab strip and content panels. Which tab is
// active, and which panel shows, is decided by a controller above this
// package (see core.TabSelection); nothing here switches anything.

// TabState marks a trigger as active or not.
type TabState int

const (
	TabInactive TabState = iota
	TabActive
)

// TabsTrigger is one label in the tab strip, bound to a tab value.
type TabsTrigger struct {
	Value string
	Label string
	State TabState
	Class string
}

func (t TabsTrigger) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	classes := MergeClasses("fg-faint bg-mantle", t.Class)
	if t.State == TabActive {
		classes = MergeClasses(classes, "fg-accent bg-surface bold")
	}
	return classStyle(classes).Render(ansi.Truncate(" "+t.Label+" ", width, ""))
}

// TabsList is the styled row holding the triggers.
type TabsList struct {
	Triggers []TabsTrigger
	Class    string
}

func (l TabsList) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	sep := classStyle("fg-border bg-mantle").Render("│")
	parts := make([]string, 0, len(l.Triggers))
	for _, t := range l.Triggers {
		parts = append(parts, t.Render(width, 1))
	}
	line := ansi.Truncate(strings.Join(parts, sep), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += classStyle(MergeClasses("bg-mantle", l.Class)).Render(strings.Repeat(" ", width-lineW))
	}
	return line
}

// TabsContent wraps one panel and tags it with the tab value it belongs to.
// It renders its child unconditionally; show/hide is the controller's call.
type TabsContent struct {
	Value string
	Child Widget
	Class string
}

func (c TabsContent) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if c.Child == nil {
		return ""
	}
	body := c.Child.Render(width, height)
	if c.Class == "" {
		return body
	}
	style := classStyle(c.Class)
	lines := strings.Split(body, "\n")
	for i := range lines {
		lines[i] = style.Render(lines[i])
	}
	return strings.Join(lines, "\n")
}

// Tabs is the root grouping wrapper: strip on top, one body below. It holds
// no selection state; the caller picks the body (usually via TabsContent
// matched against the controller's active value).
type Tabs struct {
	List  TabsList
	Body  Widget
	Class string
}

func (t Tabs) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	strip := t.List.Render(width, 1)
	if height == 1 || t.Body == nil {
		return strip
	}
	return strip + "\n" + t.Body.Render(width, height-1)
}
