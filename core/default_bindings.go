package core

import "strings"

// DefaultKeyBindings is the stock keymap. Config can rebind any action via
// ApplyActionKeybindings; actions and scopes stay fixed.
func DefaultKeyBindings() []KeyBinding {
	screenScopes := []string{ScopePicker, ScopeCommand, ScopeJumpPicker}
	return []KeyBinding{
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: []string{ScopeAny}},
		{Keys: []string{"v"}, Action: ActionJumpMode, Description: "jump mode", Scopes: []string{ScopeAny}},
		{Keys: []string{"left"}, Action: ActionPaneNav, Description: "pane prev", Scopes: []string{ScopeAny}},
		{Keys: []string{"right"}, Action: ActionPaneNav, Description: "pane next", Scopes: []string{ScopeAny}},
		{Keys: []string{"up"}, Action: ActionPaneNav, Description: "pane prev", Scopes: []string{ScopeAny}},
		{Keys: []string{"down"}, Action: ActionPaneNav, Description: "pane next", Scopes: []string{ScopeAny}},
		{Keys: []string{"enter"}, Action: ActionPaneFocus, Description: "focus pane", Scopes: []string{ScopeAny}},
		{Keys: []string{"ctrl+k"}, Action: ActionOpenCommandPalette, Description: "commands", Scopes: []string{ScopeAny}},
		{Keys: []string{"m"}, Action: ActionOpenModelPicker, Description: "models", Scopes: []string{ScopeAny}},
		{Keys: []string{"1"}, Action: SwitchTabAction(1), Description: "dashboard", Scopes: []string{ScopeAny}},
		{Keys: []string{"2"}, Action: SwitchTabAction(2), Description: "templates", Scopes: []string{ScopeAny}},
		{Keys: []string{"3"}, Action: SwitchTabAction(3), Description: "marketplace", Scopes: []string{ScopeAny}},
		{Keys: []string{"4"}, Action: SwitchTabAction(4), Description: "settings", Scopes: []string{ScopeAny}},
		{Keys: []string{"esc"}, Action: ActionClose, Description: "close", Scopes: screenScopes},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "select", Scopes: screenScopes},
	}
}

// DefaultKeybindingsByAction maps each action to its default keys; the first
// declaration of an action wins. Keyed by plain strings so the result lines
// up with the config file's [keys] table.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		action := string(b.Action)
		if strings.TrimSpace(action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[action]; exists {
			continue
		}
		out[action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings overlays user-configured keys onto the defaults,
// matched by action.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[string(b.Action)]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
