package tabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"agentmesh/catalog"
	"agentmesh/core"
)

func newTestModel(t *testing.T, tab core.Tab) *core.Model {
	t.Helper()
	m := core.NewModel(
		[]core.Tab{tab},
		core.NewKeyRegistry(core.DefaultKeyBindings()),
		core.NewCommandRegistry(nil),
		catalog.NewSample(),
		tab.ID(),
	)
	return &m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestDashboardPaneNavigation(t *testing.T) {
	data := catalog.NewSample()
	tab := NewDashboardTab(data)
	m := newTestModel(t, tab)

	if got := tab.Scope(); got != "pane:dashboard:stats" {
		t.Fatalf("initial scope = %q", got)
	}

	handled, _ := tab.HandlePaneKey(m, keyMsg("right"))
	if !handled {
		t.Fatal("right arrow should move pane selection")
	}
	if got := tab.Scope(); got != "pane:dashboard:agents" {
		t.Fatalf("scope after move = %q", got)
	}

	handled, _ = tab.HandlePaneKey(m, keyMsg("enter"))
	if !handled {
		t.Fatal("enter should focus the selected pane")
	}
	if got := tab.ActivePaneTitle(); got != "Agents" {
		t.Fatalf("focused pane = %q", got)
	}

	// Focused panes receive navigation directly; the host only intercepts esc.
	handled, _ = tab.HandlePaneKey(m, keyMsg("right"))
	if handled {
		t.Fatal("arrow keys should pass through while a pane is focused")
	}
	handled, _ = tab.HandlePaneKey(m, keyMsg("esc"))
	if !handled {
		t.Fatal("esc should release focus")
	}
}

func TestDashboardJumpTargets(t *testing.T) {
	data := catalog.NewSample()
	tab := NewDashboardTab(data)
	m := newTestModel(t, tab)

	targets := tab.JumpTargets()
	keys := make(map[string]string, len(targets))
	for _, target := range targets {
		keys[target.Key] = target.Label
	}
	for _, want := range []string{"s", "a", "v"} {
		if _, ok := keys[want]; !ok {
			t.Fatalf("missing jump key %q in %v", want, keys)
		}
	}

	jumped, _ := tab.JumpToTarget(m, "V")
	if !jumped {
		t.Fatal("jump keys should match case-insensitively")
	}
	if got := tab.ActivePaneTitle(); got != "Activity" {
		t.Fatalf("pane after jump = %q", got)
	}

	jumped, _ = tab.JumpToTarget(m, "z")
	if jumped {
		t.Fatal("unmapped jump key should be rejected")
	}
}

func TestDashboardBuildRendersCatalog(t *testing.T) {
	data := catalog.NewSample()
	tab := NewDashboardTab(data)
	m := newTestModel(t, tab)

	out := ansi.Strip(tab.Build(m).Render(110, 34))
	for _, want := range []string{"Stats", "Agents", "Activity", "Active agents", "Ticket Triage"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dashboard output missing %q", want)
		}
	}
}

func TestDashboardBuildDegenerateGeometry(t *testing.T) {
	data := catalog.NewSample()
	tab := NewDashboardTab(data)
	m := newTestModel(t, tab)

	if out := tab.Build(m).Render(0, 0); out != "" {
		t.Fatalf("zero geometry should render empty, got %q", out)
	}
}
