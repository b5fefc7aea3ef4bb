package elementsearch

import (
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

// Entry is one searchable node of a screen's semantics tree.
type Entry struct {
	Screen      string `json:"screen"`
	ScreenTitle string `json:"screen_title"`
	ID          string `json:"id"`
	Label       string `json:"label"`
	Role        string `json:"role"`
	Focusable   bool   `json:"focusable"`
}

// Index collects every labelled node with a role from the given screens, in
// screen order and then tree order. Plain text nodes are skipped.
func Index(screens ...*screen.Screen) []Entry {
	var out []Entry
	for _, s := range screens {
		if s == nil {
			continue
		}
		s.Tree().Walk(func(node *a11y.Node, _ int) bool {
			if node.ID == "" || strings.TrimSpace(node.Label) == "" {
				return true
			}
			if node.Role == a11y.RoleNone || node.Role == a11y.RoleText {
				return true
			}
			out = append(out, Entry{
				Screen:      s.ID(),
				ScreenTitle: s.Title(),
				ID:          node.ID,
				Label:       node.Label,
				Role:        string(node.Role),
				Focusable:   node.Focusable(),
			})
			return true
		})
	}
	return out
}

// ForScreen keeps the entries belonging to screenID. An empty id keeps all.
func ForScreen(entries []Entry, screenID string) []Entry {
	screenID = strings.TrimSpace(screenID)
	if screenID == "" {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Screen == screenID {
			out = append(out, entry)
		}
	}
	return out
}
