package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testRegistry() *CommandRegistry {
	return NewCommandRegistry([]Command{
		{ID: "agent.pause", Name: "Pause agent", Description: "Stop scheduling runs", Scopes: []string{"pane:dashboard:agents"}},
		{ID: "app.quit", Name: "Quit", Description: "Exit"},
		{
			ID: "wf.publish", Name: "Publish workflow", Description: "Push to the marketplace",
			Disabled: func(m *Model) (bool, string) { return true, "no draft selected" },
		},
	})
}

func TestSearchFiltersByScope(t *testing.T) {
	reg := testRegistry()
	results := reg.Search("", "pane:settings:routing", nil)
	for _, r := range results {
		if r.CommandID == "agent.pause" {
			t.Fatal("scoped command leaked into a foreign scope")
		}
	}
	results = reg.Search("", "pane:dashboard:agents", nil)
	found := false
	for _, r := range results {
		if r.CommandID == "agent.pause" {
			found = true
		}
	}
	if !found {
		t.Fatal("scoped command missing from its own scope")
	}
}

func TestSearchQueryAndDisabledOrdering(t *testing.T) {
	reg := testRegistry()
	results := reg.Search("publish", "app", nil)
	if len(results) != 1 || results[0].CommandID != "wf.publish" {
		t.Fatalf("query results = %v", results)
	}
	if !results[0].Disabled || results[0].Reason != "no draft selected" {
		t.Fatalf("disabled state not reported: %+v", results[0])
	}

	all := reg.Search("", "app", nil)
	if len(all) == 0 || all[len(all)-1].CommandID != "wf.publish" {
		t.Fatalf("disabled commands should sort last: %v", all)
	}
}

func TestExecuteUnknownAndDisabled(t *testing.T) {
	reg := testRegistry()

	cmd := reg.Execute("nope", nil)
	if cmd == nil {
		t.Fatal("unknown command should produce a status")
	}
	if msg, ok := cmd().(StatusMsg); !ok || msg.Text != "Unknown command: nope" {
		t.Fatalf("unexpected msg %v", cmd())
	}

	cmd = reg.Execute("wf.publish", nil)
	if msg, ok := cmd().(StatusMsg); !ok || msg.Text != "no draft selected" {
		t.Fatalf("disabled command should surface its reason, got %v", cmd())
	}
}

func TestRegisterReplacesByID(t *testing.T) {
	reg := testRegistry()
	reg.Register(Command{ID: "app.quit", Name: "Quit now", Description: "Exit immediately"})

	results := reg.Search("quit", "app", nil)
	if len(results) != 1 {
		t.Fatalf("re-registering an ID must not duplicate it: %v", results)
	}
	if results[0].Name != "Quit now" {
		t.Fatalf("replacement not picked up: %+v", results[0])
	}
}

func TestExecuteRunsCommand(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{{
		ID: "x", Name: "X",
		Execute: func(m *Model) tea.Cmd {
			ran = true
			return nil
		},
	}})
	_ = reg.Execute("x", nil)
	if !ran {
		t.Fatal("Execute should invoke the command body")
	}
}
