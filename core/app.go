package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"agentmesh/catalog"
	"agentmesh/widgets"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// ScreenStack holds the modal overlays. Only the top screen receives input;
// its scope overrides the active tab's while it is up.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// ReplaceTop swaps the top screen for the value its Update returned.
func (s *ScreenStack) ReplaceTop(screen Screen) {
	if screen == nil || len(s.items) == 0 {
		return
	}
	s.items[len(s.items)-1] = screen
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	ActivePaneTitle() string
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

type Model struct {
	width     int
	height    int
	tabs      []Tab
	selection *TabSelection
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
	jump      JumpMode

	// Data is the catalog snapshot every tab renders from. A future backend
	// client would replace it; nothing below this field fetches anything.
	Data catalog.Sample

	// SelectedModel is the routing default applied to new agents.
	SelectedModel string

	OpenCommandModal    func(m *Model, scope string) Screen
	OpenModelPicker     func(m *Model) Screen
	OpenJumpPickerModal func(m *Model, targets []JumpTarget) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, data catalog.Sample, defaultTab string) Model {
	values := make([]string, 0, len(tabs))
	for _, t := range tabs {
		values = append(values, t.ID())
	}
	m := Model{
		tabs:      tabs,
		selection: NewTabSelection(values, defaultTab, nil),
		keys:      keys,
		commands:  commands,
		Data:      data,
		status:    "Ready",
		width:     100,
		height:    32,
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) activeTabIndex() int {
	idx := m.selection.Index()
	if idx < 0 && len(m.tabs) > 0 {
		return 0
	}
	return idx
}

func (m Model) ActiveTab() Tab {
	idx := m.activeTabIndex()
	if idx < 0 || idx >= len(m.tabs) {
		return nil
	}
	return m.tabs[idx]
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if t := m.ActiveTab(); t != nil {
		return t.Scope()
	}
	return "app"
}

func (m *Model) SwitchTab(index int) {
	m.selection.ActivateIndex(index)
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) Selection() *TabSelection {
	return m.selection
}
