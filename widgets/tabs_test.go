package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTabsListRendersAllTriggers(t *testing.T) {
	list := TabsList{Triggers: []TabsTrigger{
		{Value: "dashboard", Label: "Dashboard", State: TabActive},
		{Value: "templates", Label: "Templates"},
	}}
	out := ansi.Strip(list.Render(40, 1))
	if !strings.Contains(out, "Dashboard") || !strings.Contains(out, "Templates") {
		t.Fatalf("tab strip missing triggers: %q", out)
	}
}

func TestTabsContentRendersChildUnconditionally(t *testing.T) {
	c := TabsContent{Value: "hidden", Child: List{Title: "Feed", Items: []string{"one"}}}
	out := ansi.Strip(c.Render(20, 3))
	if !strings.Contains(out, "Feed") {
		t.Fatalf("content must render whatever it is handed: %q", out)
	}
}

func TestTabsRootStacksStripAboveBody(t *testing.T) {
	root := Tabs{
		List: TabsList{Triggers: []TabsTrigger{{Value: "a", Label: "A", State: TabActive}}},
		Body: TabsContent{Value: "a", Child: List{Title: "Body", Items: nil}},
	}
	out := ansi.Strip(root.Render(20, 5))
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected strip plus body, got %q", out)
	}
	if !strings.Contains(lines[0], "A") {
		t.Fatalf("strip should be the first line: %q", lines[0])
	}
	if !strings.Contains(out, "Body") {
		t.Fatalf("body missing: %q", out)
	}
}

func TestTabsFamilyDegenerateGeometry(t *testing.T) {
	if (Tabs{}).Render(0, 5) != "" || (TabsList{}).Render(5, 0) != "" {
		t.Fatalf("non-positive geometry should render empty")
	}
}
