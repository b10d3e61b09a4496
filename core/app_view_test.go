package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestViewSmoke(t *testing.T) {
	m, _, _ := newRouteModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	out := ansi.Strip(m.View())
	for _, want := range []string{"Agent Mesh", "1:alpha", "2:beta", "Ready"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
	if got := len(strings.Split(out, "\n")); got != 30 {
		t.Fatalf("view height = %d lines, want 30", got)
	}
}

func TestViewMarksActiveTab(t *testing.T) {
	m, _, _ := newRouteModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	next, _ = m.Update(TabSwitchMsg{Index: 1})
	m = next.(Model)

	header := ansi.Strip(renderHeader(m))
	if !strings.Contains(header, "2:beta") {
		t.Fatalf("header missing active tab: %q", header)
	}
}

func TestViewOverlaysScreen(t *testing.T) {
	m, _, _ := newRouteModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	m.PushScreen(&stubScreen{scope: "screen:test"})

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "stub") {
		t.Fatal("pushed screen should render over the body")
	}
}

func TestStatusBarError(t *testing.T) {
	m, _, _ := newRouteModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	next, _ = m.Update(StatusMsg{Text: "catalog unavailable", IsErr: true})
	m = next.(Model)

	bar := ansi.Strip(RenderStatusBar(m))
	if !strings.Contains(bar, "catalog unavailable") {
		t.Fatalf("status bar = %q", bar)
	}
}

func TestFooterGroupsKeysByAction(t *testing.T) {
	entries := footerEntries(DefaultKeyBindings())
	seen := 0
	for _, e := range entries {
		if e.desc != "pane prev" {
			continue
		}
		seen++
		if len(e.keys) != 2 || e.keys[0] != "left" || e.keys[1] != "up" {
			t.Fatalf("pane prev keys = %v", e.keys)
		}
	}
	if seen != 1 {
		t.Fatalf("pane prev should appear once, got %d entries", seen)
	}

	m, _, _ := newRouteModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 30})
	m = next.(Model)
	footer := ansi.Strip(RenderFooter(m))
	if !strings.Contains(footer, "left/up") {
		t.Fatalf("footer should join grouped keys: %q", footer)
	}
}

func TestClipAndTrimHelpers(t *testing.T) {
	if got := ClipHeight("a\nb\nc", 2); got != "a\nb" {
		t.Fatalf("ClipHeight = %q", got)
	}
	if got := ClipHeight("a", 0); got != "" {
		t.Fatalf("ClipHeight zero = %q", got)
	}
	if got := TrimToWidth("abcdef", 3); got != "abc" {
		t.Fatalf("TrimToWidth = %q", got)
	}
	if got := TrimToWidth("abc", 0); got != "" {
		t.Fatalf("TrimToWidth zero = %q", got)
	}
}
