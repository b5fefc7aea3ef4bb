// Package template defines the engine seam HTML renderers render through.
// The pongo2-backed implementation lives in the gotemplate subpackage.
package template
