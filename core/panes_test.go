package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"agentmesh/catalog"
	"agentmesh/widgets"
)

func keyLeft() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyLeft} }
func keyRight() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyRight} }
func keyEnter() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEscape() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEsc} }

func widgetText(s string) widgets.Widget {
	return widgets.WidgetFunc(func(width, height int) string {
		if width <= 0 || height <= 0 {
			return ""
		}
		return s
	})
}

func hostFixture() PaneHost {
	return NewPaneHost(
		NewStaticPane("one", "One", "pane:t:one", '1', true, "first", 8),
		NewStaticPane("two", "Two", "pane:t:two", '2', true, "second", 8),
		NewStaticPane("deco", "Deco", "pane:t:deco", 'd', false, "chrome only", 8),
	)
}

func hostModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(nil, NewKeyRegistry(nil), NewCommandRegistry(nil), catalog.NewSample(), "")
	return &m
}

func TestPaneHostMoveWraps(t *testing.T) {
	h := hostFixture()
	m := hostModel(t)

	if got := h.Scope(); got != "pane:t:one" {
		t.Fatalf("initial scope = %q", got)
	}
	h.HandlePaneKey(m, keyLeft())
	if got := h.Scope(); got != "pane:t:deco" {
		t.Fatalf("selection should wrap backwards, got %q", got)
	}
	h.HandlePaneKey(m, keyRight())
	if got := h.Scope(); got != "pane:t:one" {
		t.Fatalf("selection should wrap forwards, got %q", got)
	}
}

func TestPaneHostFocusLifecycle(t *testing.T) {
	h := hostFixture()
	m := hostModel(t)

	handled, _ := h.HandlePaneKey(m, keyEnter())
	if !handled {
		t.Fatal("enter should focus")
	}
	if got := h.ActivePaneTitle(); got != "One" {
		t.Fatalf("focused = %q", got)
	}
	// Arrows pass through to the focused pane.
	handled, _ = h.HandlePaneKey(m, keyRight())
	if handled {
		t.Fatal("focused pane owns navigation keys")
	}
	handled, _ = h.HandlePaneKey(m, keyEscape())
	if !handled {
		t.Fatal("esc should release focus")
	}
	handled, _ = h.HandlePaneKey(m, keyRight())
	if !handled || h.Scope() != "pane:t:two" {
		t.Fatalf("navigation should resume after unfocus, scope %q", h.Scope())
	}
}

func TestPaneHostJumpTargetsSkipNonFocusable(t *testing.T) {
	h := hostFixture()
	targets := h.JumpTargets()
	if len(targets) != 2 {
		t.Fatalf("targets = %v", targets)
	}
	for _, target := range targets {
		if target.Key == "d" {
			t.Fatal("non-focusable pane must not be a jump target")
		}
	}
}

func TestPaneHostJumpFocuses(t *testing.T) {
	h := hostFixture()
	m := hostModel(t)

	jumped, _ := h.JumpToTarget(m, "2")
	if !jumped {
		t.Fatal("declared jump key should work")
	}
	if got := h.ActivePaneTitle(); got != "Two" {
		t.Fatalf("pane after jump = %q", got)
	}
	if jumped, _ := h.JumpToTarget(m, "d"); jumped {
		t.Fatal("non-focusable pane must reject jumps")
	}
}

func TestPaneHostDuplicateJumpKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate jump keys should panic at construction")
		}
	}()
	NewPaneHost(
		NewStaticPane("a", "A", "pane:t:a", 'x', true, "", 8),
		NewStaticPane("b", "B", "pane:t:b", 'X', true, "", 8),
	)
}

func TestBuildPaneMarksSelection(t *testing.T) {
	h := hostFixture()
	m := hostModel(t)

	out := ansi.Strip(h.BuildPane("one", m).Render(40, 8))
	if !strings.Contains(out, "▶ One") {
		t.Fatalf("selected pane should carry the selection marker:\n%s", out)
	}
	out = ansi.Strip(h.BuildPane("two", m).Render(40, 8))
	if strings.Contains(out, "▶ Two") {
		t.Fatal("unselected pane must not carry the marker")
	}

	out = ansi.Strip(h.BuildPane("ghost", m).Render(40, 8))
	if !strings.Contains(out, "Missing Pane") {
		t.Fatal("unknown pane id should render the fallback")
	}
}

func TestWrapPaneKeepsChrome(t *testing.T) {
	h := hostFixture()
	content := widgetText("inner body")

	out := ansi.Strip(h.WrapPane("one", content).Render(40, 8))
	if !strings.Contains(out, "One") || !strings.Contains(out, "inner body") {
		t.Fatalf("wrapped pane output:\n%s", out)
	}
}
