package theming

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-a11ycatalog/pkg/contrast"
)

// Contrast checks the resolved palette of cfg. With no rules the default
// text and off-state rules apply.
func Contrast(cfg *theme.RendererConfig, rules ...contrast.Rule) ([]contrast.Result, error) {
	if cfg == nil {
		return nil, nil
	}
	if len(rules) == 0 {
		rules = contrast.DefaultRules()
	}
	return contrast.Check(cfg.Tokens, rules)
}

// ContrastAll resolves every theme and variant, including each base palette,
// and returns the results keyed by "theme" or "theme/variant".
func (s *Selector) ContrastAll(rules ...contrast.Rule) (map[string][]contrast.Result, error) {
	out := make(map[string][]contrast.Result)
	for _, name := range s.Names() {
		variants := append([]string{""}, s.Variants(name)...)
		for _, variant := range variants {
			selection, err := s.selectExact(name, variant)
			if err != nil {
				return nil, err
			}
			results, err := Contrast(RendererConfig(selection, nil), rules...)
			if err != nil {
				return nil, err
			}
			key := name
			if variant != "" {
				key += "/" + variant
			}
			out[key] = results
		}
	}
	return out, nil
}

// selectExact resolves a variant without applying the default variant, so
// "" always means the base palette.
func (s *Selector) selectExact(name, variant string) (*theme.Selection, error) {
	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownTheme
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}
