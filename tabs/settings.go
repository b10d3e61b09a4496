package tabs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"agentmesh/catalog"
	"agentmesh/core"
	"agentmesh/widgets"
)

// SettingsTab covers workspace configuration: the default model, secrets,
// members, and the billing ledger.
type SettingsTab struct {
	host       core.PaneHost
	data       catalog.Sample
	dateFormat string
}

func NewSettingsTab(data catalog.Sample) *SettingsTab {
	return NewSettingsTabWithFormat(data, "2006-01-02")
}

func NewSettingsTabWithFormat(data catalog.Sample, dateFormat string) *SettingsTab {
	if dateFormat == "" {
		dateFormat = "2006-01-02"
	}
	t := &SettingsTab{data: data, dateFormat: dateFormat}
	t.host = core.NewPaneHost(
		core.NewStaticPane("routing", "Routing", core.PaneScope("settings", "routing"), 'r', true, "", 8),
		newSecretsPane(data.Secrets),
		newMembersPane(data.Users),
		core.NewStaticPane("billing", "Billing", core.PaneScope("settings", "billing"), 'b', true, "", 10),
	)
	return t
}

func (t *SettingsTab) ID() string              { return "settings" }
func (t *SettingsTab) Title() string           { return "Settings" }
func (t *SettingsTab) Scope() string           { return t.host.Scope() }
func (t *SettingsTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *SettingsTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *SettingsTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *SettingsTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *SettingsTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *SettingsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}

func (t *SettingsTab) Build(m *core.Model) widgets.Widget {
	left := widgets.VStack{
		Widgets: []widgets.Widget{
			t.host.WrapPane("routing", t.routingWidget(m)),
			t.host.BuildPane("secrets", m),
		},
		Ratios: []float64{0.4, 0.6},
	}
	right := widgets.VStack{
		Widgets: []widgets.Widget{
			t.host.BuildPane("members", m),
			t.host.WrapPane("billing", t.billingWidget()),
		},
		Ratios: []float64{0.4, 0.6},
	}
	return widgets.HStack{Widgets: []widgets.Widget{left, right}, Ratios: []float64{0.5, 0.5}, Gap: 1}
}

// routingWidget shows the default model as a closed select control. The
// picker modal (key m) is the open state of the same control.
func (t *SettingsTab) routingWidget(m *core.Model) widgets.Widget {
	options := make([]widgets.SelectOption, 0, len(t.data.Models))
	for _, model := range t.data.Models {
		options = append(options, widgets.SelectOption{Value: model.ID, Label: model.Name})
	}
	sel := widgets.Select{
		Options:     options,
		Value:       m.SelectedModel,
		Placeholder: "No default model",
	}
	hint := widgets.WidgetFunc(func(width, height int) string {
		if width <= 0 || height <= 0 {
			return ""
		}
		return "Default model for new agents. Press m to change."
	})
	return widgets.VStack{Widgets: []widgets.Widget{sel, hint}, Ratios: []float64{0.5, 0.5}}
}

func (t *SettingsTab) billingWidget() widgets.Widget {
	rows := make([][]string, 0, len(t.data.Transactions))
	for _, tx := range t.data.Transactions {
		detail := tx.Note
		if tx.Tokens > 0 {
			detail = fmt.Sprintf("%.1fM tokens", float64(tx.Tokens)/1_000_000)
		}
		rows = append(rows, []string{
			tx.CreatedAt.Format(t.dateFormat),
			string(tx.Kind),
			fmt.Sprintf("%+.2f", tx.AmountUSD),
			detail,
		})
	}
	return widgets.Table{Headers: []string{"Date", "Kind", "USD", "Detail"}, Rows: rows}
}

func newSecretsPane(secrets []catalog.Secret) *core.StaticPane {
	lines := make([]string, 0, len(secrets))
	for _, s := range secrets {
		lines = append(lines, fmt.Sprintf("%-20s scope=%s last used %s", s.Name, s.Scope, s.LastUsed.Format("2006-01-02")))
	}
	if len(lines) == 0 {
		lines = []string{"No secrets stored"}
	}
	return core.NewStaticPane("secrets", "Secrets", core.PaneScope("settings", "secrets"), 's', true, strings.Join(lines, "\n"), 8)
}

func newMembersPane(users []catalog.User) *core.StaticPane {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, fmt.Sprintf("%-12s %-22s %s", u.Name, u.Email, u.Role))
	}
	return core.NewStaticPane("members", "Members", core.PaneScope("settings", "members"), 'm', true, strings.Join(lines, "\n"), 8)
}
