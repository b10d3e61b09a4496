package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"agentmesh/catalog"
	"agentmesh/core"
	"agentmesh/internal/config"
	"agentmesh/screens"
	"agentmesh/tabs"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "agentmesh",
		Short: "Terminal dashboard for an agent mesh workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage: true,
	}
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("agentmesh " + version)
		},
	})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	data := catalog.NewSample()

	allTabs := []core.Tab{
		tabs.NewDashboardTab(data),
		tabs.NewTemplatesTab(data),
		tabs.NewMarketplaceTab(data),
		tabs.NewSettingsTabWithFormat(data, cfg.UI.DateFormat),
	}

	bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys)
	keys := core.NewKeyRegistry(bindings)
	commands := core.NewCommandRegistry(appCommands(allTabs))

	m := core.NewModel(allTabs, keys, commands, data, cfg.UI.DefaultTab)
	if _, ok := data.ModelByID(cfg.UI.DefaultModel); ok {
		m.SelectedModel = cfg.UI.DefaultModel
	}
	m.OpenCommandModal = func(mm *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(mm, scope)
	}
	m.OpenModelPicker = func(mm *core.Model) core.Screen {
		return screens.NewModelPickerScreen(mm)
	}
	m.OpenJumpPickerModal = func(mm *core.Model, targets []core.JumpTarget) core.Screen {
		return core.NewJumpPickerScreen(targets)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func appCommands(allTabs []core.Tab) []core.Command {
	cmds := []core.Command{
		{
			ID: "model.select", Name: "Select default model",
			Description: "Choose the model applied to new agents",
			Execute: func(m *core.Model) tea.Cmd {
				if m.OpenModelPicker == nil {
					return core.StatusCmd("Model picker unavailable")
				}
				screen := m.OpenModelPicker(m)
				return func() tea.Msg { return core.PushScreenMsg{Screen: screen} }
			},
		},
		{
			ID: "app.quit", Name: "Quit",
			Description: "Exit the dashboard",
			Execute: func(m *core.Model) tea.Cmd {
				return tea.Quit
			},
		},
	}
	for i, t := range allTabs {
		idx := i
		cmds = append(cmds, core.Command{
			ID:          core.CommandID("goto." + t.ID()),
			Name:        "Go to " + t.Title(),
			Description: "Switch to the " + t.Title() + " tab",
			Execute: func(m *core.Model) tea.Cmd {
				return func() tea.Msg { return core.TabSwitchMsg{Index: idx} }
			},
		})
	}
	return cmds
}
