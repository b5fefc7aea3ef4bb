// Package model defines the typed catalog consumed by the screen builder and
// the renderers. A Catalog holds ordered Screens; each screen has an intro
// paragraph and "good" and "bad" Sections whose Examples list display Items
// followed by an optional Details panel. Items are a closed set: text,
// heading, control, group or anti-pattern. Struct tags cover both JSON and
// YAML so catalog files can be authored in either and renderers can
// serialise the model directly.
package model
