package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"agentmesh/core"
)

type commandRow struct {
	core.CommandResult
}

func (r commandRow) Title() string {
	if r.Disabled && r.Reason != "" {
		return fmt.Sprintf("%s (%s)", r.Name, r.Reason)
	}
	return r.Name
}
func (r commandRow) Description() string { return r.Desc }
func (r commandRow) FilterValue() string { return r.Name + " " + r.Desc + " " + string(r.CommandID) }

// CommandScreen is the palette: a text input driving a live registry search
// over the commands visible in the invoking scope.
type CommandScreen struct {
	invokedScope string
	search       func(query string) []core.CommandResult
	input        textinput.Model
	list         list.Model
}

func NewCommandScreen(m *core.Model, invokedScope string) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowTitle(false)
	s := &CommandScreen{
		invokedScope: invokedScope,
		search: func(query string) []core.CommandResult {
			return m.CommandRegistry().Search(query, invokedScope, m)
		},
		input: inp,
		list:  lst,
	}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Command Palette" }
func (s *CommandScreen) Scope() string { return core.ScopeCommand }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return s, nil, true
		case "enter":
			row, ok := s.list.SelectedItem().(commandRow)
			if !ok {
				return s, nil, true
			}
			if row.Disabled {
				reason := row.Reason
				if reason == "" {
					reason = "command is disabled"
				}
				return s, core.StatusCmd(reason), true
			}
			id := row.CommandID
			return s, func() tea.Msg { return core.CommandExecuteMsg{CommandID: id} }, true
		}
	}
	var inputCmd tea.Cmd
	s.input, inputCmd = s.input.Update(msg)
	s.refresh()
	var listCmd tea.Cmd
	s.list, listCmd = s.list.Update(msg)
	return s, tea.Batch(inputCmd, listCmd), false
}

func (s *CommandScreen) refresh() {
	results := s.search(strings.TrimSpace(s.input.Value()))
	rows := make([]list.Item, 0, len(results))
	for _, r := range results {
		rows = append(rows, commandRow{r})
	}
	_ = s.list.SetItems(rows)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(max(24, width))
	s.list.SetHeight(max(6, height-3))
	header := "Command Palette"
	if s.invokedScope != "" {
		header += "  [" + s.invokedScope + "]"
	}
	return header + "\n" + s.input.View() + "\n" + s.list.View()
}
