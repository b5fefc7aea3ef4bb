// Package audit inspects semantics trees and rendered HTML for the failures
// the catalog's bad examples demonstrate: unnamed controls, state that never
// reaches assistive technology, missing group containers, content that is
// only visually hidden and ambiguous names.
package audit
