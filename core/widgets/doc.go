// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (panels, stacks, popup overlay compositor)
//
// Not allowed here:
// - key handling, app state transitions, scope logic, or tab policy
package widgets
