package core

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

type JumpTarget struct {
	Key   string
	Label string
}

type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}

// JumpMode is the inline fallback when no jump picker modal is wired: the
// next pressed glyph is interpreted as a target key.
type JumpMode struct {
	Active bool
}

func (m *Model) activateJumpPicker() tea.Cmd {
	active := m.ActiveTab()
	if active == nil {
		return nil
	}
	provider, ok := active.(JumpTargetProvider)
	if !ok {
		m.SetStatus("No jump targets here")
		return nil
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		m.SetStatus("No jump targets here")
		return nil
	}
	if m.OpenJumpPickerModal != nil {
		m.screens.Push(m.OpenJumpPickerModal(m, targets))
		return nil
	}
	m.jump.Active = true
	m.SetStatus("Jump mode: press pane letter")
	return nil
}

func (m *Model) jumpHandleKey(msg tea.KeyMsg) (handled bool) {
	if !m.jump.Active {
		return false
	}
	m.jump.Active = false
	key := strings.ToLower(msg.String())
	r := []rune(key)
	if len(r) != 1 || (!unicode.IsLetter(r[0]) && !unicode.IsDigit(r[0])) {
		m.SetStatus("Jump mode cancelled")
		return true
	}
	active := m.ActiveTab()
	if active == nil {
		return true
	}
	provider, ok := active.(JumpTargetProvider)
	if !ok {
		return true
	}
	if jumped, _ := provider.JumpToTarget(m, key); !jumped {
		m.SetStatus("No pane mapped to that key")
	}
	return true
}
