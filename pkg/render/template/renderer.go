package template

import (
	"fmt"
	"io"
	"strings"
)

// FilterFunc transforms a value inside a template expression.
type FilterFunc func(input any, param any) (any, error)

// TemplateRenderer is the engine seam HTML renderers draw pages and partials
// through. Its surface matches github.com/goliatone/go-template so that
// engine, the pongo2 adapter or a test stub can back it.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(source string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn FilterFunc) error
	GlobalContext(data any) error
}

// ResolvePartial returns the template a theme maps key to, or fallback when
// the theme leaves it unset.
func ResolvePartial(partials map[string]string, key, fallback string) string {
	if candidate := strings.TrimSpace(partials[key]); candidate != "" {
		return candidate
	}
	return fallback
}

// RenderPartial renders the template resolved for key with data.
func RenderPartial(r TemplateRenderer, partials map[string]string, key, fallback string, data any) (string, error) {
	if r == nil {
		return "", fmt.Errorf("template: no renderer for partial %q", key)
	}
	name := ResolvePartial(partials, key, fallback)
	out, err := r.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("template: render %q: %w", name, err)
	}
	return out, nil
}
