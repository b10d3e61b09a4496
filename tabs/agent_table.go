package tabs

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"agentmesh/catalog"
	"agentmesh/core"
	"agentmesh/widgets"
)

// AgentTablePane is the scrollable agent roster. It is the only dashboard
// pane with its own input handling, which it receives once focused.
type AgentTablePane struct {
	id    string
	title string
	scope string
	jump  byte
	table table.Model
}

func NewAgentTablePane(id, title, scope string, jumpKey byte, data catalog.Sample) *AgentTablePane {
	cols := []table.Column{
		{Title: "Agent", Width: 16},
		{Title: "Status", Width: 8},
		{Title: "Model", Width: 10},
		{Title: "Temp", Width: 5},
		{Title: "Tools", Width: 5},
	}
	rows := make([]table.Row, 0, len(data.Agents))
	for _, a := range data.Agents {
		rows = append(rows, table.Row{
			a.Name,
			string(a.Status),
			a.Config.Model,
			fmt.Sprintf("%.1f", a.Config.Temperature),
			fmt.Sprintf("%d", len(a.Tools)),
		})
	}
	t := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithFocused(true), table.WithHeight(6))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)
	return &AgentTablePane{id: id, title: title, scope: scope, jump: jumpKey, table: t}
}

func (p *AgentTablePane) ID() string      { return p.id }
func (p *AgentTablePane) Title() string   { return p.title }
func (p *AgentTablePane) Scope() string   { return p.scope }
func (p *AgentTablePane) JumpKey() byte   { return p.jump }
func (p *AgentTablePane) Focusable() bool { return true }
func (p *AgentTablePane) Init() tea.Cmd   { return nil }

func (p *AgentTablePane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func (p *AgentTablePane) View(width, height int, selected, focused bool) string {
	innerW := max(12, width-4)
	innerH := max(3, height-4)
	p.table.SetWidth(innerW)
	p.table.SetHeight(innerH)
	content := p.table.View()
	if focused {
		content += "\n\nj/k or arrows scroll, esc releases"
	} else {
		content += "\n\nEnter focuses the roster"
	}
	return widgets.Pane{Title: p.title, Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func (p *AgentTablePane) OnSelect() tea.Cmd   { return nil }
func (p *AgentTablePane) OnDeselect() tea.Cmd { return nil }
func (p *AgentTablePane) OnFocus() tea.Cmd {
	return core.StatusCmd("Focused pane: " + p.title)
}
func (p *AgentTablePane) OnBlur() tea.Cmd { return nil }
