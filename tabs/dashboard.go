package tabs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"agentmesh/catalog"
	"agentmesh/core"
	"agentmesh/widgets"
)

// DashboardTab is the landing view: headline stats, the agent roster, and
// the recent activity feed.
type DashboardTab struct {
	host core.PaneHost
}

func NewDashboardTab(data catalog.Sample) *DashboardTab {
	return &DashboardTab{host: core.NewPaneHost(
		newStatsPane(data.Stats),
		NewAgentTablePane("agents", "Agents", core.PaneScope("dashboard", "agents"), 'a', data),
		newActivityPane(data.Activity),
	)}
}

func (t *DashboardTab) ID() string              { return "dashboard" }
func (t *DashboardTab) Title() string           { return "Dashboard" }
func (t *DashboardTab) Scope() string           { return t.host.Scope() }
func (t *DashboardTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *DashboardTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *DashboardTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *DashboardTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *DashboardTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *DashboardTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
func (t *DashboardTab) Build(m *core.Model) widgets.Widget {
	bottom := widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("agents", m), t.host.BuildPane("activity", m)},
		Ratios:  []float64{0.55, 0.45},
		Gap:     1,
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{t.host.BuildPane("stats", m), bottom},
		Ratios:  []float64{0.4, 0.6},
	}
}

// statsPane shows each headline number with its week-over-week delta, plus a
// bar chart of the run counts so magnitudes are scannable.
type statsPane struct {
	stats []catalog.Stat
}

func newStatsPane(stats []catalog.Stat) *statsPane {
	return &statsPane{stats: stats}
}

func (p *statsPane) ID() string                 { return "stats" }
func (p *statsPane) Title() string              { return "Stats" }
func (p *statsPane) Scope() string              { return core.PaneScope("dashboard", "stats") }
func (p *statsPane) JumpKey() byte              { return 's' }
func (p *statsPane) Focusable() bool            { return true }
func (p *statsPane) Init() tea.Cmd              { return nil }
func (p *statsPane) Update(msg tea.Msg) tea.Cmd { return nil }
func (p *statsPane) OnSelect() tea.Cmd          { return nil }
func (p *statsPane) OnDeselect() tea.Cmd        { return nil }
func (p *statsPane) OnFocus() tea.Cmd           { return nil }
func (p *statsPane) OnBlur() tea.Cmd            { return nil }

func (p *statsPane) View(width, height int, selected, focused bool) string {
	lines := make([]string, 0, len(p.stats)+1)
	points := make([]widgets.ChartPoint, 0, len(p.stats))
	for _, s := range p.stats {
		lines = append(lines, fmt.Sprintf("%-14s %8s  %s", s.Label, formatStatValue(s), formatDelta(s.Delta)))
		points = append(points, widgets.ChartPoint{Label: shortLabel(s.Label), Value: s.Value})
	}
	content := strings.Join(lines, "\n")
	chartHeight := height - len(lines) - 5
	if chartHeight > 1 {
		chart := widgets.Chart{Title: "Relative volume", Data: points}
		content += "\n\n" + chart.Render(max(12, width-4), chartHeight)
	}
	return widgets.Pane{Title: "Stats", Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func shortLabel(label string) string {
	if i := strings.IndexByte(label, ' '); i > 0 {
		return label[:i]
	}
	return label
}

func newActivityPane(feed []catalog.Activity) *core.StaticPane {
	lines := make([]string, 0, len(feed))
	for _, a := range feed {
		lines = append(lines, fmt.Sprintf("%s %s", activityGlyph(a.Kind), a.Summary))
	}
	if len(lines) == 0 {
		lines = []string{"No recent activity"}
	}
	return core.NewStaticPane("activity", "Activity", core.PaneScope("dashboard", "activity"), 'v', true, strings.Join(lines, "\n"), 10)
}

func formatStatValue(s catalog.Stat) string {
	switch s.Unit {
	case "%":
		return fmt.Sprintf("%.1f%%", s.Value)
	case "$":
		return fmt.Sprintf("$%.2f", s.Value)
	case "M":
		return fmt.Sprintf("%.1fM", s.Value)
	default:
		return strings.TrimSuffix(fmt.Sprintf("%.1f", s.Value), ".0")
	}
}

func formatDelta(delta float64) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("▲ %.1f", delta)
	case delta < 0:
		return fmt.Sprintf("▼ %.1f", -delta)
	default:
		return "·"
	}
}

func activityGlyph(kind catalog.ActivityKind) string {
	switch kind {
	case catalog.ActivityKindRun:
		return "▸"
	case catalog.ActivityKindInstall:
		return "+"
	case catalog.ActivityKindPublish:
		return "↑"
	case catalog.ActivityKindAlert:
		return "!"
	default:
		return "·"
	}
}
