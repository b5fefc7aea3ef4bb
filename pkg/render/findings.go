package render

import (
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

// FindingIndex splits audit findings into element-level messages keyed by
// element id and screen-level messages for ids the screen does not know.
type FindingIndex struct {
	Elements map[string][]string
	Screen   []string
}

// IndexFindings maps findings onto the elements of s. Messages are trimmed
// and deduplicated per key while preserving order.
func IndexFindings(s *screen.Screen, findings []screen.Finding) FindingIndex {
	index := FindingIndex{Elements: make(map[string][]string)}
	if len(findings) == 0 {
		index.Elements = nil
		return index
	}

	for _, finding := range findings {
		message := finding.String()
		id := strings.TrimSpace(finding.ElementID)
		if id == "" || s == nil || !knownElement(s, id) {
			index.Screen = append(index.Screen, message)
			continue
		}
		index.Elements[id] = append(index.Elements[id], message)
	}

	for id, messages := range index.Elements {
		index.Elements[id] = normalizeMessages(messages)
	}
	if len(index.Elements) == 0 {
		index.Elements = nil
	}
	index.Screen = normalizeMessages(index.Screen)
	return index
}

// For returns the messages attached to id.
func (f FindingIndex) For(id string) []string {
	return f.Elements[id]
}

// Len counts every message in the index.
func (f FindingIndex) Len() int {
	total := len(f.Screen)
	for _, messages := range f.Elements {
		total += len(messages)
	}
	return total
}

func knownElement(s *screen.Screen, id string) bool {
	_, ok := s.Element(id)
	return ok
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
