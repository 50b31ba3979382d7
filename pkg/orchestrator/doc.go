// Package orchestrator wires the registry lookup → transform → decorate →
// render sequence into a single entry point for servers and CLIs.
package orchestrator
