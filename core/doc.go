// Package core contains the shell: app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - the tab list, the active tab index and tab mount/unmount policy
// - shared cross-tab state (the editing node cell)
//
// Not allowed here:
// - concrete tab/screen rendering implementations
// - low-level widget rendering primitives
package core
