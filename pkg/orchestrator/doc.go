// Package orchestrator wires the catalog → screen → renderer pipeline behind
// a single Generate call, providing dependency injection friendly helpers for
// consumers that prefer one entry point.
package orchestrator
