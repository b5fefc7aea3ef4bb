package render

import (
	"context"

	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

// Renderer converts a live screen into a byte representation (HTML, a JSON
// semantics tree, a terminal transcript).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, s *screen.Screen, options RenderOptions) ([]byte, error)
}

// FormatNegotiator is implemented by renderers that emit more than one
// serialisation. ContentTypeFor reports the media type for a
// RenderOptions.Format value.
type FormatNegotiator interface {
	ContentTypeFor(format string) string
}

// ContentTypeFor returns the media type r produces for format.
func ContentTypeFor(r Renderer, format string) string {
	if negotiator, ok := r.(FormatNegotiator); ok && format != "" {
		if contentType := negotiator.ContentTypeFor(format); contentType != "" {
			return contentType
		}
	}
	return r.ContentType()
}
