package theming

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

var (
	// ErrUnknownTheme is returned when no manifest has the requested name.
	ErrUnknownTheme = errors.New("theming: unknown theme")
	// ErrUnknownVariant is returned when the theme has no such variant.
	ErrUnknownVariant = errors.New("theming: unknown variant")
)

// DefaultTheme is the name of the bundled theme.
const DefaultTheme = "catalog"

// Option configures a Selector.
type Option func(*Selector)

// WithDefaults sets the theme and variant used when a request leaves them
// blank.
func WithDefaults(name, variant string) Option {
	return func(s *Selector) {
		s.defaultTheme = strings.TrimSpace(name)
		s.defaultVariant = strings.TrimSpace(variant)
	}
}

// Selector implements theme.ThemeSelector over registered manifests. Every
// manifest is also registered with a go-theme registry, which validates it
// and is exposed through Provider.
type Selector struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	provider       theme.ThemeProvider
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Selector)(nil)

// New registers manifests and returns a selector.
func New(manifests []*theme.Manifest, options ...Option) (*Selector, error) {
	registry := theme.NewRegistry()
	s := &Selector{
		manifests:    make(map[string]*theme.Manifest, len(manifests)),
		defaultTheme: DefaultTheme,
	}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("theming: register %q: %w", manifest.Name, err)
		}
		s.manifests[manifest.Name] = manifest
	}
	s.provider = registry
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if _, ok := s.manifests[s.defaultTheme]; !ok && len(s.manifests) > 0 {
		s.defaultTheme = s.Names()[0]
	}
	return s, nil
}

// Default returns a selector over the embedded manifests.
func Default(options ...Option) (*Selector, error) {
	manifests, err := LoadFS(EmbeddedFS())
	if err != nil {
		return nil, err
	}
	return New(manifests, options...)
}

// Provider exposes the underlying go-theme registry.
func (s *Selector) Provider() theme.ThemeProvider {
	return s.provider
}

// Select resolves name and variant, substituting the defaults for blanks.
// An empty variant selects the base palette.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.defaultVariant
	}

	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q has no variant %q (available: %s)",
				ErrUnknownVariant, name, variant, strings.Join(variantNames(manifest), ", "))
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// Names lists registered theme names.
func (s *Selector) Names() []string {
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variants lists the variants of a theme.
func (s *Selector) Variants(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	manifest, ok := s.manifests[name]
	if !ok {
		return nil
	}
	return variantNames(manifest)
}

func variantNames(manifest *theme.Manifest) []string {
	names := make([]string, 0, len(manifest.Variants))
	for name := range manifest.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
