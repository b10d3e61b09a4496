package core

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Action names something the shell can do. Routing decisions compare
// actions, never raw keys, so config can rebind keys without touching the
// router.
type Action string

const (
	ActionQuit               Action = "quit"
	ActionJumpMode           Action = "jump"
	ActionPaneNav            Action = "pane-nav"
	ActionPaneFocus          Action = "pane-focus"
	ActionOpenCommandPalette Action = "open-command-palette"
	ActionOpenModelPicker    Action = "open-model-picker"
	ActionClose              Action = "close"
	ActionSelect             Action = "select"
)

// SwitchTabAction addresses the nth tab, 1-based to match the number row.
func SwitchTabAction(n int) Action {
	return Action(fmt.Sprintf("switch-tab-%d", n))
}

// Scopes name where a binding (or command) applies. Pane scopes are derived
// from tab and pane IDs via PaneScope; screens declare theirs directly.
const (
	ScopeAny        = "*"
	ScopeApp        = "app"
	ScopePicker     = "screen:picker"
	ScopeCommand    = "screen:command"
	ScopeJumpPicker = "screen:jump-picker"
)

// PaneScope names the scope of one pane inside a tab.
func PaneScope(tabID, paneID string) string {
	return "pane:" + tabID + ":" + paneID
}

// KeyBinding maps one or more keys to an action within a scope set. An empty
// scope set means the binding applies everywhere.
type KeyBinding struct {
	Keys        []string
	Action      Action
	Description string
	Scopes      []string
}

func (b KeyBinding) inScope(scope string) bool {
	return scopeMatch(scope, b.Scopes)
}

func (b KeyBinding) matchesKey(pressed string) bool {
	for _, k := range b.Keys {
		if normalizeKey(k) == pressed {
			return true
		}
	}
	return false
}

// KeyRegistry answers "does this keypress mean this action here". Bindings
// are checked in declaration order.
type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

// BindingsForScope returns the bindings visible in the given scope, in
// declaration order. The footer renders from this.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if b.inScope(scope) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action Action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action == action && b.inScope(scope) && b.matchesKey(pressed) {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == ScopeAny || s == scope {
			return true
		}
	}
	return false
}
