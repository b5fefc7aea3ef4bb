// Package elementsearch indexes the labelled nodes of built screens and serves
// a small JSON lookup over them, so a catalog page can jump straight to a
// control, group or panel by name.
//
// The handler answers GET and HEAD with {"data": [...]} and accepts a query,
// a limit and an optional screen filter. When no label contains the query the
// search falls back to edit distance, so "chekbox" still finds "checkbox".
package elementsearch
