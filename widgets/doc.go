// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (select and tab chrome, pane
//   borders, stacks, popup overlay compositor, class-name merging)
//
// Not allowed here:
// - key handling, app state transitions, scope logic, or selection policy
package widgets
