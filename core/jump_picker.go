package core

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// jumpPickerScreen lists the focusable panes of the active tab. Pressing a
// pane's key jumps immediately; otherwise the picker filters and enter
// selects the highlighted row.
type jumpPickerScreen struct {
	byKey  map[string]JumpTarget
	picker *Picker
}

func NewJumpPickerScreen(targets []JumpTarget) Screen {
	items := make([]PickerItem, 0, len(targets))
	byKey := make(map[string]JumpTarget, len(targets))
	for _, target := range targets {
		key := normalizeJumpKey(target.Key)
		if key == "" {
			continue
		}
		target.Key = key
		byKey[key] = target
		items = append(items, PickerItem{
			ID:     key,
			Label:  fmt.Sprintf("[%s] %s", key, target.Label),
			Meta:   "jump target",
			Search: key + " " + target.Label,
		})
	}
	return &jumpPickerScreen{
		byKey:  byKey,
		picker: NewPicker("Jump Picker", items),
	}
}

func (s *jumpPickerScreen) Title() string { return "Jump Picker" }
func (s *jumpPickerScreen) Scope() string { return ScopeJumpPicker }

func (s *jumpPickerScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	keyName := strings.ToLower(strings.TrimSpace(keyMsg.String()))
	if keyName == "esc" {
		return s, nil, true
	}
	if target, direct := s.byKey[keyName]; direct && isJumpGlyph(keyName) {
		return s, jumpCmd(target.Key), true
	}
	result := s.picker.HandleKey(keyName)
	switch result.Action {
	case PickerActionCancelled:
		return s, nil, true
	case PickerActionSelected:
		if result.Item.ID == "" {
			return s, nil, true
		}
		return s, jumpCmd(result.Item.ID), true
	default:
		return s, nil, false
	}
}

func jumpCmd(key string) tea.Cmd {
	return func() tea.Msg { return JumpTargetSelectedMsg{Key: key} }
}

func (s *jumpPickerScreen) View(width, height int) string {
	lines := make([]string, 0, len(s.picker.Items())+3)
	q := strings.TrimSpace(s.picker.Query())
	if q == "" {
		q = "(type to filter)"
	}
	lines = append(lines, "Filter: "+q, "")
	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, "  No jump targets")
	} else {
		cursor := s.picker.Cursor()
		for i, item := range items {
			prefix := "  "
			if i == cursor {
				prefix = "> "
			}
			lines = append(lines, prefix+item.Label)
		}
	}
	lines = append(lines, "", "Type pane key to jump. Enter selects row. Esc cancels.")
	view := strings.Join(lines, "\n")
	return ClipHeight(TrimToWidth(view, max(20, width)), max(6, height))
}

func normalizeJumpKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	if !isJumpGlyph(k) {
		return ""
	}
	return k
}

func isJumpGlyph(k string) bool {
	r := []rune(k)
	if len(r) != 1 {
		return false
	}
	return unicode.IsLetter(r[0]) || unicode.IsDigit(r[0])
}
