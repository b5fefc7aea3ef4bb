package a11ycatalog

import (
	"io/fs"

	"github.com/goliatone/go-a11ycatalog/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the page and panel templates bundled with the
// HTML renderer, for themes that copy and adjust them.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// TemplatePartials maps the theme partial keys ("catalog.page",
// "catalog.panel") to the bundled templates they replace.
func TemplatePartials() map[string]string {
	return vanilla.DefaultPartials()
}
