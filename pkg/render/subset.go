package render

import (
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/model"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

// Subset limits rendering to some sections or examples. Empty lists match
// everything, so the zero value renders the full screen.
type Subset struct {
	// Sections lists section kinds ("good", "bad").
	Sections []string
	// Examples lists example ids.
	Examples []string
}

// ParseSubset reads comma or space separated tokens such as "good" or
// "bad,accept-terms-bad". Section kinds go to Sections and everything else
// to Examples.
func ParseSubset(raw string) Subset {
	var subset Subset
	for _, token := range parseTokenList(raw) {
		switch model.SectionKind(token) {
		case model.SectionGood, model.SectionBad:
			subset.Sections = append(subset.Sections, token)
		default:
			subset.Examples = append(subset.Examples, token)
		}
	}
	return subset
}

// Empty reports whether the subset matches everything.
func (s Subset) Empty() bool {
	return len(s.Sections) == 0 && len(s.Examples) == 0
}

// IncludesSection reports whether any example in section can render.
func (s Subset) IncludesSection(section *screen.Section) bool {
	if section == nil {
		return false
	}
	if len(s.Sections) > 0 && !containsToken(s.Sections, string(section.Kind)) {
		return false
	}
	if len(s.Examples) == 0 {
		return true
	}
	for _, example := range section.Examples {
		if containsToken(s.Examples, example.ID) {
			return true
		}
	}
	return false
}

// IncludesExample reports whether example within section renders.
func (s Subset) IncludesExample(section *screen.Section, example *screen.Example) bool {
	if !s.IncludesSection(section) || example == nil {
		return false
	}
	return len(s.Examples) == 0 || containsToken(s.Examples, example.ID)
}

// ApplySubset returns the sections and examples of s selected by subset,
// in screen order. Sections left without examples are dropped.
func ApplySubset(s *screen.Screen, subset Subset) []*screen.Section {
	if s == nil {
		return nil
	}
	sections := s.Sections()
	if subset.Empty() {
		return sections
	}

	out := make([]*screen.Section, 0, len(sections))
	for _, section := range sections {
		if !subset.IncludesSection(section) {
			continue
		}
		filtered := *section
		filtered.Examples = nil
		for _, example := range section.Examples {
			if subset.IncludesExample(section, example) {
				filtered.Examples = append(filtered.Examples, example)
			}
		}
		if len(filtered.Examples) > 0 {
			out = append(out, &filtered)
		}
	}
	return out
}

// PruneTree keeps the screen-level leaves of root (heading and intro) plus
// the given sections, each holding its heading and only the listed examples.
// root must come from Screen.Tree.
func PruneTree(root *a11y.Node, sections []*screen.Section) *a11y.Node {
	if root == nil {
		return nil
	}
	keep := make(map[string]map[string]bool, len(sections))
	for _, section := range sections {
		examples := make(map[string]bool, len(section.Examples))
		for _, example := range section.Examples {
			examples[example.ID] = true
		}
		keep[section.ID] = examples
	}

	out := a11y.NewNode(root.Projection)
	for _, child := range root.Children {
		examples, isSection := keep[child.ID]
		if !isSection {
			if len(child.Children) == 0 {
				out.Children = append(out.Children, child)
			}
			continue
		}
		section := a11y.NewNode(child.Projection)
		for _, grandchild := range child.Children {
			if len(grandchild.Children) == 0 || examples[grandchild.ID] {
				section.Children = append(section.Children, grandchild)
			}
		}
		out.Children = append(out.Children, section)
	}
	return out
}

// SubsetTree returns the semantics tree of s restricted to subset.
func SubsetTree(s *screen.Screen, subset Subset) *a11y.Node {
	tree := s.Tree()
	if subset.Empty() {
		return tree
	}
	return PruneTree(tree, ApplySubset(s, subset))
}

// FilterState drops entries of state whose id does not occur in tree.
func FilterState(state map[string]bool, tree *a11y.Node) map[string]bool {
	present := make(map[string]bool)
	tree.Walk(func(node *a11y.Node, _ int) bool {
		present[node.ID] = true
		return true
	})
	out := make(map[string]bool, len(state))
	for id, on := range state {
		if present[id] {
			out[id] = on
		}
	}
	return out
}

func containsToken(values []string, token string) bool {
	token = normaliseToken(token)
	for _, value := range values {
		if normaliseToken(value) == token {
			return true
		}
	}
	return false
}

func normaliseToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func parseTokenList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		token := normaliseToken(field)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}
