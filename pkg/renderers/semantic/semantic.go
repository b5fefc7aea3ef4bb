// Package semantic serialises the accessibility tree of a screen, its
// traversal order and the announcements a screen reader would make, as JSON
// or YAML.
package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	contentTypeJSON = "application/json"
	contentTypeYAML = "application/yaml"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	format string
	indent string
}

// WithFormat selects the default output format ("json" or "yaml").
func WithFormat(format string) Option {
	return func(cfg *config) {
		if normalized := normalizeFormat(format); normalized != "" {
			cfg.format = normalized
		}
	}
}

// WithIndent sets the JSON indentation. An empty string produces compact
// output.
func WithIndent(indent string) Option {
	return func(cfg *config) {
		cfg.indent = indent
	}
}

// Renderer emits a Document for a screen.
type Renderer struct {
	format string
	indent string
}

var (
	_ render.Renderer         = (*Renderer)(nil)
	_ render.FormatNegotiator = (*Renderer)(nil)
)

// New constructs the semantic renderer.
func New(options ...Option) *Renderer {
	cfg := config{format: FormatJSON, indent: "  "}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Renderer{format: cfg.format, indent: cfg.indent}
}

func (r *Renderer) Name() string {
	return "semantic"
}

func (r *Renderer) ContentType() string {
	return r.ContentTypeFor(r.format)
}

// ContentTypeFor maps a format to its media type.
func (r *Renderer) ContentTypeFor(format string) string {
	switch normalizeFormat(format) {
	case FormatYAML:
		return contentTypeYAML
	case FormatJSON:
		return contentTypeJSON
	default:
		return ""
	}
}

// Render serialises the screen. options.Format overrides the configured
// format; options.Subset prunes sections and examples from the tree.
func (r *Renderer) Render(ctx context.Context, s *screen.Screen, options render.RenderOptions) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("semantic renderer: screen is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := r.format
	if options.Format != "" {
		format = normalizeFormat(options.Format)
		if format == "" {
			return nil, fmt.Errorf("semantic renderer: unsupported format %q", options.Format)
		}
	}

	doc := Build(s, options)
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("semantic renderer: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("semantic renderer: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		var (
			payload []byte
			err     error
		)
		if r.indent == "" {
			payload, err = json.Marshal(doc)
		} else {
			payload, err = json.MarshalIndent(doc, "", r.indent)
		}
		if err != nil {
			return nil, fmt.Errorf("semantic renderer: encode json: %w", err)
		}
		return payload, nil
	}
}

// Build snapshots s into a Document.
func Build(s *screen.Screen, options render.RenderOptions) Document {
	tree := render.SubsetTree(s, options.Subset)
	state := s.State()
	if !options.Subset.Empty() {
		state = render.FilterState(state, tree)
	}
	stops := a11y.TraverseStops(tree)

	doc := Document{
		Screen:        s.ID(),
		Title:         s.Title(),
		Locale:        strings.TrimSpace(options.Locale),
		Tree:          convertNode(tree),
		Traversal:     convertStops(stops),
		Announcements: screen.Announce(stops),
		State:         state,
		Findings:      convertFindings(options.Findings),
	}
	if options.Theme != nil {
		doc.Theme = &ThemeRef{Name: options.Theme.Theme, Variant: options.Theme.Variant}
	}
	return doc
}

func normalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return ""
	}
}
