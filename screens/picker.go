package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"agentmesh/core"
	"agentmesh/widgets"
)

// PickerOption is one selectable row of a picker modal.
type PickerOption struct {
	ID       string
	Label    string
	Desc     string
	Disabled bool
}

// PickerModal is a dropdown rendered as a modal: a trigger line, a filter
// query, and a bordered option panel. Selection state lives in core.Picker;
// this screen only translates it into the widget layer.
type PickerModal struct {
	title      string
	scope      string
	picker     *core.Picker
	options    map[string]PickerOption
	selectedID string
	onSelected func(PickerOption) tea.Msg
}

func NewPickerModal(title, scope string, options []PickerOption, selectedID string, onSelected func(PickerOption) tea.Msg) *PickerModal {
	rows := make([]core.PickerItem, 0, len(options))
	byID := make(map[string]PickerOption, len(options))
	for _, opt := range options {
		byID[opt.ID] = opt
		rows = append(rows, core.PickerItem{
			ID:       opt.ID,
			Label:    opt.Label,
			Meta:     opt.Desc,
			Search:   opt.Label + " " + opt.Desc,
			Disabled: opt.Disabled,
		})
	}
	return &PickerModal{
		title:      title,
		scope:      scope,
		picker:     core.NewPicker(title, rows),
		options:    byID,
		selectedID: selectedID,
		onSelected: onSelected,
	}
}

func (s *PickerModal) Title() string { return s.title }
func (s *PickerModal) Scope() string { return s.scope }

func (s *PickerModal) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	result := s.picker.HandleKey(keyMsg.String())
	switch result.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSelected:
		opt, exists := s.options[result.Item.ID]
		if !exists || opt.Disabled {
			return s, nil, true
		}
		if s.onSelected != nil {
			return s, func() tea.Msg { return s.onSelected(opt) }, true
		}
		return s, nil, true
	default:
		return s, nil, false
	}
}

func (s *PickerModal) View(width, height int) string {
	width = max(24, width)

	selectedLabel := ""
	if opt, ok := s.options[s.selectedID]; ok {
		selectedLabel = opt.Label
	}
	trigger := widgets.SelectTrigger{
		Child: widgets.SelectValue{
			Child:       selectedLabel,
			Placeholder: s.title,
		},
		State: widgets.ControlActive,
	}

	query := s.picker.Query()
	if query == "" {
		query = "(type to filter)"
	}

	items := s.picker.Items()
	children := make([]widgets.Widget, 0, len(items))
	for idx, item := range items {
		state := widgets.ItemIdle
		switch {
		case item.Disabled:
			state = widgets.ItemDisabled
		case idx == s.picker.Cursor():
			state = widgets.ItemHighlighted
		case item.ID == s.selectedID:
			state = widgets.ItemSelected
		}
		children = append(children, widgets.SelectItem{Value: item.ID, Label: itemLabel(item), State: state})
	}
	content := widgets.SelectContent{Children: children}

	lines := []string{
		trigger.Render(width, 1),
		"Filter: " + query,
		content.Render(width, max(4, height-4)),
		"Enter selects. Esc cancels.",
	}
	view := strings.Join(lines, "\n")
	return core.ClipHeight(view, max(6, height))
}

func itemLabel(item core.PickerItem) string {
	if item.Meta == "" {
		return item.Label
	}
	return item.Label + "  " + item.Meta
}
