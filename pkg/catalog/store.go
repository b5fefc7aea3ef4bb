package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/goliatone/go-a11ycatalog/pkg/model"
)

// Store holds a loaded catalog in display order.
type Store struct {
	catalog model.Catalog
	index   map[string]int
	sources map[string]string
}

func newStore(catalog model.Catalog, sources map[string]string) *Store {
	index := make(map[string]int, len(catalog.Screens))
	for idx, screen := range catalog.Screens {
		index[screen.ID] = idx
	}
	return &Store{catalog: catalog, index: index, sources: sources}
}

// Catalog returns the loaded catalog.
func (s *Store) Catalog() model.Catalog {
	if s == nil {
		return model.Catalog{}
	}
	return s.catalog
}

// Empty reports whether the store holds any screens.
func (s *Store) Empty() bool {
	return s == nil || len(s.catalog.Screens) == 0
}

// Screen returns the screen with the given id.
func (s *Store) Screen(id string) (model.Screen, bool) {
	if s == nil {
		return model.Screen{}, false
	}
	idx, ok := s.index[strings.TrimSpace(id)]
	if !ok {
		return model.Screen{}, false
	}
	return s.catalog.Screens[idx], true
}

// Source returns the file a screen was loaded from.
func (s *Store) Source(id string) string {
	if s == nil {
		return ""
	}
	return s.sources[id]
}

// IDs lists screen ids in display order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.catalog.Screens))
	for idx, screen := range s.catalog.Screens {
		out[idx] = screen.ID
	}
	return out
}

// Summaries lists every screen in display order.
func (s *Store) Summaries() []model.Summary {
	if s == nil {
		return nil
	}
	out := make([]model.Summary, len(s.catalog.Screens))
	for idx, screen := range s.catalog.Screens {
		out[idx] = screen.Summarize()
	}
	return out
}

// maxSuggestDistance bounds how far a typo may be from a real id.
const maxSuggestDistance = 3

// Suggest returns the screen id closest to a mistyped one, or "" when
// nothing is near enough.
func (s *Store) Suggest(id string) string {
	if s == nil {
		return ""
	}
	needle := strings.ToLower(strings.TrimSpace(id))
	if needle == "" {
		return ""
	}
	best, bestDistance := "", maxSuggestDistance+1
	for _, candidate := range s.IDs() {
		if strings.HasPrefix(candidate, needle) {
			return candidate
		}
		distance := levenshtein.ComputeDistance(needle, candidate)
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}
