package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"agentmesh/catalog"
	"agentmesh/widgets"
)

type stubTab struct {
	id      string
	updates int
}

func (t *stubTab) ID() string    { return t.id }
func (t *stubTab) Title() string { return t.id }
func (t *stubTab) Scope() string { return "tab:" + t.id }
func (t *stubTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	t.updates++
	return nil
}
func (t *stubTab) Build(m *Model) widgets.Widget {
	return widgets.WidgetFunc(func(int, int) string { return t.id })
}

type stubScreen struct {
	scope   string
	updates int
	popOn   string
}

func (s *stubScreen) Title() string { return "stub" }
func (s *stubScreen) Scope() string { return s.scope }
func (s *stubScreen) View(width, height int) string {
	return "stub"
}
func (s *stubScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	s.updates++
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == s.popOn {
		return s, nil, true
	}
	return s, nil, false
}

func newRouteModel(t *testing.T) (Model, *stubTab, *stubTab) {
	t.Helper()
	a := &stubTab{id: "alpha"}
	b := &stubTab{id: "beta"}
	m := NewModel(
		[]Tab{a, b},
		NewKeyRegistry(DefaultKeyBindings()),
		NewCommandRegistry(nil),
		catalog.NewSample(),
		"alpha",
	)
	return m, a, b
}

func TestScreenReceivesKeysBeforeTab(t *testing.T) {
	m, a, _ := newRouteModel(t)
	screen := &stubScreen{scope: "screen:test", popOn: "esc"}
	m.PushScreen(screen)

	next, _ := m.Update(runeKey('x'))
	m = next.(Model)
	if screen.updates != 1 {
		t.Fatalf("screen updates = %d", screen.updates)
	}
	if a.updates != 0 {
		t.Fatal("tab must not see keys while a screen is on top")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.screens.Len() != 0 {
		t.Fatal("screen should pop when it reports done")
	}
}

func TestScreenStackReplaceTop(t *testing.T) {
	var stack ScreenStack
	first := &stubScreen{scope: "screen:first"}
	stack.Push(first)
	stack.ReplaceTop(&stubScreen{scope: "screen:second"})
	if got := stack.Top().Scope(); got != "screen:second" {
		t.Fatalf("top scope = %q", got)
	}
	if stack.Len() != 1 {
		t.Fatalf("replace must not grow the stack: %d", stack.Len())
	}
	stack.ReplaceTop(nil)
	if got := stack.Top().Scope(); got != "screen:second" {
		t.Fatal("nil replacement must keep the current top")
	}
}

func TestActiveScopePrefersScreen(t *testing.T) {
	m, _, _ := newRouteModel(t)
	if got := m.ActiveScope(); got != "tab:alpha" {
		t.Fatalf("scope = %q", got)
	}
	m.PushScreen(&stubScreen{scope: "screen:test"})
	if got := m.ActiveScope(); got != "screen:test" {
		t.Fatalf("scope with screen = %q", got)
	}
}

func TestSwitchTabKeys(t *testing.T) {
	m, _, _ := newRouteModel(t)
	next, _ := m.Update(runeKey('2'))
	m = next.(Model)
	if got := m.ActiveTab().ID(); got != "beta" {
		t.Fatalf("active tab = %q", got)
	}
	// Out-of-range tab numbers fall through to the active tab.
	next, _ = m.Update(runeKey('9'))
	m = next.(Model)
	if got := m.ActiveTab().ID(); got != "beta" {
		t.Fatalf("active tab after bad number = %q", got)
	}
}

func TestTabSwitchMsg(t *testing.T) {
	m, _, _ := newRouteModel(t)
	next, _ := m.Update(TabSwitchMsg{Index: 1})
	m = next.(Model)
	if got := m.ActiveTab().ID(); got != "beta" {
		t.Fatalf("active tab = %q", got)
	}
}

func TestModelSelectedMsg(t *testing.T) {
	m, _, _ := newRouteModel(t)
	next, _ := m.Update(ModelSelectedMsg{ModelID: "haiku-4"})
	m = next.(Model)
	if m.SelectedModel != "haiku-4" {
		t.Fatalf("selected model = %q", m.SelectedModel)
	}

	next, _ = m.Update(ModelSelectedMsg{ModelID: "ghost"})
	m = next.(Model)
	if m.SelectedModel != "haiku-4" {
		t.Fatal("unknown model must not overwrite the selection")
	}
}

func TestStatusMsgRouting(t *testing.T) {
	m, _, _ := newRouteModel(t)
	next, _ := m.Update(StatusMsg{Text: "boom", IsErr: true})
	m = next.(Model)
	if m.status != "boom" || !m.statusErr {
		t.Fatalf("status = %q err=%v", m.status, m.statusErr)
	}
}

func TestQuitKey(t *testing.T) {
	m, _, _ := newRouteModel(t)
	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if !m.quitting {
		t.Fatal("q should quit from tab scope")
	}
	if cmd == nil {
		t.Fatal("quit should produce tea.Quit")
	}
}
