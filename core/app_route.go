package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case ModelSelectedMsg:
		if model, ok := m.Data.ModelByID(msg.ModelID); ok {
			m.SelectedModel = model.ID
			m.SetStatus("Default model: " + model.Name)
		}
		return m, nil
	case JumpTargetSelectedMsg:
		active := m.ActiveTab()
		if active == nil {
			return m, nil
		}
		provider, ok := active.(JumpTargetProvider)
		if !ok {
			return m, nil
		}
		handled, cmd := provider.JumpToTarget(&m, msg.Key)
		if handled {
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.screens.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				m.screens.Pop()
				return m, cmd
			}
			m.screens.ReplaceTop(next)
			return m, cmd
		}

		if m.jumpHandleKey(msg) {
			return m, nil
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, ActionQuit, scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, ActionJumpMode, scope) {
			return m, m.activateJumpPicker()
		}
		if active := m.ActiveTab(); active != nil {
			if handler, ok := active.(PaneKeyHandler); ok {
				handled, cmd := handler.HandlePaneKey(&m, msg)
				if handled {
					return m, cmd
				}
			}
		}
		if m.keys.IsAction(msg, ActionOpenCommandPalette, scope) && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		if m.keys.IsAction(msg, ActionOpenModelPicker, scope) && m.OpenModelPicker != nil {
			m.screens.Push(m.OpenModelPicker(&m))
			return m, nil
		}
		for i := range m.tabs {
			if m.keys.IsAction(msg, SwitchTabAction(i+1), scope) {
				m.SwitchTab(i)
				return m, nil
			}
		}
		if active := m.ActiveTab(); active != nil {
			return m, active.Update(&m, msg)
		}
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		m.screens.ReplaceTop(next)
		return m, cmd
	}
	if active := m.ActiveTab(); active != nil {
		return m, active.Update(&m, msg)
	}
	return m, nil
}
