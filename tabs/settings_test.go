package tabs

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"agentmesh/catalog"
)

func TestSettingsShowsSelectedModel(t *testing.T) {
	data := catalog.NewSample()
	tab := NewSettingsTab(data)
	m := newTestModel(t, tab)
	m.SelectedModel = "sonnet-4"

	out := ansi.Strip(tab.Build(m).Render(120, 36))
	if !strings.Contains(out, "Sonnet 4") {
		t.Fatalf("routing pane should show the selected model label, got:\n%s", out)
	}
	if !strings.Contains(out, "▾") {
		t.Fatal("routing pane should render closed select chrome")
	}
}

func TestSettingsFallsBackToFirstModel(t *testing.T) {
	data := catalog.NewSample()
	tab := NewSettingsTab(data)
	m := newTestModel(t, tab)
	m.SelectedModel = ""

	// An empty value resolves to the first declared option.
	out := ansi.Strip(tab.Build(m).Render(120, 36))
	if !strings.Contains(out, data.Models[0].Name) {
		t.Fatalf("empty selection should fall back to %q", data.Models[0].Name)
	}
}

func TestMarketplaceListsWorkflowsAndTools(t *testing.T) {
	data := catalog.NewSample()
	tab := NewMarketplaceTab(data)
	m := newTestModel(t, tab)

	out := ansi.Strip(tab.Build(m).Render(120, 30))
	for _, want := range []string{"Support Escalation", "http-fetch", "Registry"} {
		if !strings.Contains(out, want) {
			t.Fatalf("marketplace output missing %q", want)
		}
	}
}

func TestTemplatesListsAgentsAndPrompts(t *testing.T) {
	data := catalog.NewSample()
	tab := NewTemplatesTab(data)
	m := newTestModel(t, tab)

	out := ansi.Strip(tab.Build(m).Render(120, 30))
	for _, want := range []string{"Ticket Triage", "triage-system"} {
		if !strings.Contains(out, want) {
			t.Fatalf("templates output missing %q", want)
		}
	}
}
