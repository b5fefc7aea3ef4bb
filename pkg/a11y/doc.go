// Package a11y models the binary-state controls, disclosure panels and groups
// that every catalog screen is assembled from. Each component owns its state
// and keeps two projections of it: the visual Indicator (or glyph) a renderer
// paints, and the Projection assistive technology reads (label, value, role
// and flags). Both are recomputed in the same call that changes the state and
// before any observer runs, so a caller can never observe one without the
// other.
//
// Components compose into a semantics tree of *Node values. Traverse walks
// that tree in the order a screen reader moves through it: hidden subtrees are
// skipped entirely and only focusable nodes are emitted, which is how a closed
// Panel keeps its detail text out of reach.
package a11y
