package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

// RenderOptions describe per-request data that renderers use to customise
// their output without touching the screen.
type RenderOptions struct {
	// Theme carries the resolved theme selection. Nil renders unthemed.
	Theme *theme.RendererConfig
	// Locale and Translator localise page chrome such as "Good Examples".
	// Catalog content is rendered as authored.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
	// Subset limits output to some sections or examples.
	Subset Subset
	// Findings overlays audit results next to the offending elements.
	Findings []screen.Finding
	// TapAction, when set, makes HTML renderers wrap each interactive element
	// in a form posting to the returned URL so the page works without script.
	TapAction func(screenID, elementID string) string
	// Hidden inputs added to every tap form, such as a session id.
	Hidden map[string]string
	// CatalogTitle names the catalog in page titles and navigation.
	CatalogTitle string
	// Nav lists sibling screens for page navigation.
	Nav []NavItem
	// Format selects a sub-format for renderers that support several, such
	// as "json" or "yaml" for the semantic renderer.
	Format string
}

// NavItem is one entry of the screen index.
type NavItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Href    string `json:"href"`
	Current bool   `json:"current"`
}
