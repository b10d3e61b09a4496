package tabs

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"agentmesh/catalog"
	"agentmesh/core"
	"agentmesh/widgets"
)

// MarketplaceTab lists what can be installed into a mesh: published
// workflows and the tool registry.
type MarketplaceTab struct {
	host      core.PaneHost
	workflows []catalog.Workflow
	tools     []catalog.Tool
}

func NewMarketplaceTab(data catalog.Sample) *MarketplaceTab {
	t := &MarketplaceTab{workflows: data.Workflows, tools: data.Tools}
	t.host = core.NewPaneHost(
		core.NewStaticPane("workflows", "Workflows", core.PaneScope("marketplace", "workflows"), 'w', true, "", 12),
		core.NewStaticPane("tools", "Tools", core.PaneScope("marketplace", "tools"), 't', true, "", 12),
	)
	return t
}

func (t *MarketplaceTab) ID() string              { return "marketplace" }
func (t *MarketplaceTab) Title() string           { return "Marketplace" }
func (t *MarketplaceTab) Scope() string           { return t.host.Scope() }
func (t *MarketplaceTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *MarketplaceTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *MarketplaceTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *MarketplaceTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *MarketplaceTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *MarketplaceTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}

func (t *MarketplaceTab) Build(m *core.Model) widgets.Widget {
	return widgets.HStack{
		Widgets: []widgets.Widget{
			t.host.WrapPane("workflows", t.workflowsWidget()),
			t.host.WrapPane("tools", t.toolsWidget()),
		},
		Ratios: []float64{0.55, 0.45},
		Gap:    1,
	}
}

func (t *MarketplaceTab) workflowsWidget() widgets.Widget {
	rows := make([][]string, 0, len(t.workflows))
	for _, w := range t.workflows {
		rows = append(rows, []string{
			w.Name,
			string(w.Status),
			fmt.Sprintf("%d", w.Installs),
			fmt.Sprintf("%.1f", w.Rating),
			fmt.Sprintf("%d steps", len(w.Steps)),
		})
	}
	return widgets.Table{
		Headers: []string{"Workflow", "Status", "Installs", "Rating", "Shape"},
		Rows:    rows,
	}
}

func (t *MarketplaceTab) toolsWidget() widgets.Widget {
	items := make([]string, 0, len(t.tools))
	for _, tool := range t.tools {
		badge := " "
		if tool.Verified {
			badge = "✓"
		}
		items = append(items, fmt.Sprintf("%s %s %s (%s, %d installs)", badge, tool.Name, tool.Version, tool.Category, tool.Installs))
	}
	return widgets.List{Title: "Registry", Items: items}
}
