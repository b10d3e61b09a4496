package core

import "slices"

// TabMode says who owns the active tab value. A selection is exactly one or
// the other; the dual value/defaultValue contract is resolved by picking a
// mode at construction.
type TabMode int

const (
	// TabSelfManaged means the selection owns its state, seeded from a
	// default value.
	TabSelfManaged TabMode = iota
	// TabControlled means a parent owns the state; Activate only reports the
	// requested value and never mutates.
	TabControlled
)

// TabSelection is the tab state machine: states are the declared values,
// transitions happen on trigger activation, the initial state is the default
// (or first declared) value. There is no terminal state.
type TabSelection struct {
	values   []string
	mode     TabMode
	value    string
	current  func() string
	onChange func(value string)
}

// NewTabSelection builds a self-managed selection. An unknown or empty
// defaultValue falls back to the first declared value.
func NewTabSelection(values []string, defaultValue string, onChange func(string)) *TabSelection {
	s := &TabSelection{values: slices.Clone(values), mode: TabSelfManaged, onChange: onChange}
	if slices.Contains(s.values, defaultValue) {
		s.value = defaultValue
	} else if len(s.values) > 0 {
		s.value = s.values[0]
	}
	return s
}

// NewControlledTabSelection builds a controlled selection: current reads the
// parent-owned value and onChange reports activation requests.
func NewControlledTabSelection(values []string, current func() string, onChange func(string)) *TabSelection {
	return &TabSelection{values: slices.Clone(values), mode: TabControlled, current: current, onChange: onChange}
}

func (s *TabSelection) Mode() TabMode { return s.mode }

func (s *TabSelection) Values() []string { return slices.Clone(s.values) }

// Value returns the active tab value.
func (s *TabSelection) Value() string {
	if s.mode == TabControlled {
		if s.current == nil {
			return ""
		}
		return s.current()
	}
	return s.value
}

// Index returns the position of the active value among the declared values,
// or -1 when the controlled parent reports an undeclared value.
func (s *TabSelection) Index() int {
	return slices.Index(s.values, s.Value())
}

// Activate requests a transition to value. Undeclared values are rejected
// without a transition. Activating the already-active value is a no-op that
// still reports true.
func (s *TabSelection) Activate(value string) bool {
	if !slices.Contains(s.values, value) {
		return false
	}
	if value == s.Value() {
		return true
	}
	if s.mode == TabSelfManaged {
		s.value = value
	}
	if s.onChange != nil {
		s.onChange(value)
	}
	return true
}

// ActivateIndex is Activate by declared position.
func (s *TabSelection) ActivateIndex(i int) bool {
	if i < 0 || i >= len(s.values) {
		return false
	}
	return s.Activate(s.values[i])
}
