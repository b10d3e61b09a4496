package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderFooter draws the key help line for the active scope. Bindings that
// share an action and description collapse into one entry with their keys
// joined, so the four pane-nav arrows read as two entries instead of four.
func RenderFooter(m Model) string {
	entries := footerEntries(m.keys.BindingsForScope(m.ActiveScope()))

	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		kb := key.NewBinding(key.WithKeys(e.keys...), key.WithHelp(strings.Join(e.keys, "/"), e.desc))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, bg)
}

type footerEntry struct {
	keys []string
	desc string
}

func footerEntries(bindings []KeyBinding) []footerEntry {
	type groupKey struct {
		action Action
		desc   string
	}
	entries := make([]footerEntry, 0, len(bindings))
	at := make(map[groupKey]int, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		g := groupKey{action: b.Action, desc: b.Description}
		if i, seen := at[g]; seen {
			entries[i].keys = append(entries[i].keys, b.Keys...)
			continue
		}
		at[g] = len(entries)
		entries = append(entries, footerEntry{keys: append([]string(nil), b.Keys...), desc: b.Description})
	}
	return entries
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func TrimToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}
