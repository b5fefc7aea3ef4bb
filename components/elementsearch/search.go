package elementsearch

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Result is the JSON shape of one match.
type Result struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Screen string `json:"screen"`
	Role   string `json:"role"`
	Href   string `json:"href,omitempty"`
}

// Search ranks entries whose label or id contains query, prefix matches
// first. With no substring match it returns the entries within
// opts.MaxDistance edits of query, closest first.
func Search(entries []Entry, query string, limit int, opts Options) []Entry {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(entries) <= limit {
				return append([]Entry{}, entries...)
			}
			return append([]Entry{}, entries[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedEntry, 0, 16)
	for idx, entry := range entries {
		label := strings.ToLower(entry.Label)
		id := strings.ToLower(entry.ID)
		if !strings.Contains(label, q) && !strings.Contains(id, q) {
			continue
		}
		matches = append(matches, matchedEntry{
			entry:    entry,
			order:    idx,
			isPrefix: strings.HasPrefix(label, q) || strings.HasPrefix(id, q),
		})
	}
	if len(matches) == 0 && opts.MaxDistance > 0 {
		matches = fuzzy(entries, q, opts.MaxDistance)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].order < matches[j].order
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Entry, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.entry)
	}
	return out
}

// SearchResults runs Search and shapes the hits for the handler.
func SearchResults(entries []Entry, query string, limit int, opts Options) []Result {
	hits := Search(entries, query, limit, opts)
	if len(hits) == 0 {
		return nil
	}

	out := make([]Result, 0, len(hits))
	for _, entry := range hits {
		result := Result{
			Value:  entry.ID,
			Label:  entry.Label,
			Screen: entry.Screen,
			Role:   entry.Role,
		}
		if opts.Href != nil {
			result.Href = opts.Href(entry)
		}
		out = append(out, result)
	}
	return out
}

// fuzzy compares q against the id and each word of the label.
func fuzzy(entries []Entry, q string, maxDistance int) []matchedEntry {
	var out []matchedEntry
	for idx, entry := range entries {
		best := levenshtein.ComputeDistance(q, strings.ToLower(entry.ID))
		for _, word := range strings.Fields(strings.ToLower(entry.Label)) {
			if d := levenshtein.ComputeDistance(q, word); d < best {
				best = d
			}
		}
		if best <= maxDistance {
			out = append(out, matchedEntry{entry: entry, order: idx, distance: best})
		}
	}
	return out
}

type matchedEntry struct {
	entry    Entry
	order    int
	distance int
	isPrefix bool
}
