package tabs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"agentmesh/catalog"
	"agentmesh/core"
	"agentmesh/widgets"
)

// TemplatesTab browses the reusable building blocks: agent templates and
// prompt templates.
type TemplatesTab struct {
	host core.PaneHost
}

func NewTemplatesTab(data catalog.Sample) *TemplatesTab {
	return &TemplatesTab{host: core.NewPaneHost(
		newAgentTemplatesPane(data.Agents),
		newPromptsPane(data.Prompts),
	)}
}

func (t *TemplatesTab) ID() string              { return "templates" }
func (t *TemplatesTab) Title() string           { return "Templates" }
func (t *TemplatesTab) Scope() string           { return t.host.Scope() }
func (t *TemplatesTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *TemplatesTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *TemplatesTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *TemplatesTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *TemplatesTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *TemplatesTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
func (t *TemplatesTab) Build(m *core.Model) widgets.Widget {
	return widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("agent-templates", m), t.host.BuildPane("prompts", m)},
		Ratios:  []float64{0.6, 0.4},
		Gap:     1,
	}
}

func newAgentTemplatesPane(agents []catalog.Agent) *core.StaticPane {
	blocks := make([]string, 0, len(agents))
	for _, a := range agents {
		skills := make([]string, 0, len(a.Skills))
		for _, s := range a.Skills {
			skills = append(skills, fmt.Sprintf("%s(L%d)", s.Name, s.Level))
		}
		blocks = append(blocks, strings.Join([]string{
			a.Name,
			"  " + a.Description,
			fmt.Sprintf("  model=%s temp=%.1f steps=%d", a.Config.Model, a.Config.Temperature, a.Config.MaxSteps),
			"  skills: " + strings.Join(skills, ", "),
		}, "\n"))
	}
	if len(blocks) == 0 {
		blocks = []string{"No agent templates"}
	}
	return core.NewStaticPane("agent-templates", "Agent Templates", core.PaneScope("templates", "agents"), 'a', true, strings.Join(blocks, "\n\n"), 14)
}

func newPromptsPane(prompts []catalog.Prompt) *core.StaticPane {
	blocks := make([]string, 0, len(prompts))
	for _, p := range prompts {
		blocks = append(blocks, strings.Join([]string{
			p.Name,
			"  " + p.Body,
			"  vars: " + strings.Join(p.Variables, ", "),
		}, "\n"))
	}
	if len(blocks) == 0 {
		blocks = []string{"No prompt templates"}
	}
	return core.NewStaticPane("prompts", "Prompts", core.PaneScope("templates", "prompts"), 'p', true, strings.Join(blocks, "\n\n"), 14)
}
