package core

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// CommandID identifies a palette command, dot-namespaced by area:
// "app.quit", "model.select", "goto.<tab>".
type CommandID string

// Command is one palette entry. Scopes limit where it appears (empty means
// everywhere); Disabled, when set, can gray it out with a reason against the
// current model state.
type Command struct {
	ID          CommandID
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

// CommandResult is a search hit with the disabled state already evaluated,
// ready for the palette to render.
type CommandResult struct {
	CommandID CommandID
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type registeredCommand struct {
	Command
	haystack string
}

// CommandRegistry holds the palette commands in registration order and
// serves scoped substring search over them.
type CommandRegistry struct {
	ordered []registeredCommand
	index   map[CommandID]int
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{index: map[CommandID]int{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

// Register adds or replaces a command. Replacing keeps the original position.
func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	rc := registeredCommand{
		Command:  c,
		haystack: strings.ToLower(c.Name + " " + c.Description + " " + string(c.ID)),
	}
	if at, exists := r.index[c.ID]; exists {
		r.ordered[at] = rc
		return
	}
	r.index[c.ID] = len(r.ordered)
	r.ordered = append(r.ordered, rc)
}

// Search returns the commands visible in scope whose name, description, or
// ID contains the query, enabled entries first, each group sorted by name.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.ordered))
	for _, c := range r.ordered {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		if q != "" && !strings.Contains(c.haystack, q) {
			continue
		}
		disabled, reason := c.availability(m)
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
		})
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}

// Execute runs the command by ID. Unknown or disabled commands surface a
// status message instead of running.
func (r *CommandRegistry) Execute(id CommandID, m *Model) tea.Cmd {
	at, ok := r.index[id]
	if !ok {
		return StatusCmd("Unknown command: " + string(id))
	}
	c := r.ordered[at]
	if disabled, reason := c.availability(m); disabled {
		return StatusCmd(reason)
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}

func (c Command) availability(m *Model) (disabled bool, reason string) {
	if c.Disabled == nil {
		return false, ""
	}
	disabled, reason = c.Disabled(m)
	if disabled && reason == "" {
		reason = "command is disabled"
	}
	return disabled, reason
}
