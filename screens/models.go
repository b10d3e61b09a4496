package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"agentmesh/core"
)

// NewModelPickerScreen lists the available inference models and reports the
// chosen one as a ModelSelectedMsg. Deprecated models are shown but not
// selectable.
func NewModelPickerScreen(m *core.Model) core.Screen {
	options := make([]PickerOption, 0, len(m.Data.Models))
	for _, model := range m.Data.Models {
		desc := fmt.Sprintf("%s · %s ctx · $%.2f/$%.2f per MTok", model.Provider, formatContextWindow(model.ContextWindow), model.InputPerMTok, model.OutputPerMTok)
		if model.Deprecated {
			desc += " · deprecated"
		}
		options = append(options, PickerOption{
			ID:       model.ID,
			Label:    model.Name,
			Desc:     desc,
			Disabled: model.Deprecated,
		})
	}
	return NewPickerModal("Default Model", core.ScopePicker, options, m.SelectedModel, func(opt PickerOption) tea.Msg {
		return core.ModelSelectedMsg{ModelID: opt.ID}
	})
}

func formatContextWindow(tokens int) string {
	switch {
	case tokens >= 1_000_000 && tokens%1_000_000 == 0:
		return fmt.Sprintf("%dM", tokens/1_000_000)
	case tokens >= 1_000:
		return fmt.Sprintf("%dk", tokens/1_000)
	default:
		return fmt.Sprintf("%d", tokens)
	}
}
