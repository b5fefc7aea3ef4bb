package screen

import (
	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/audit"
	"github.com/goliatone/go-a11ycatalog/pkg/model"
)

// Finding is an audit finding located within a screen.
type Finding struct {
	audit.Finding
	Screen  string            `json:"screen"`
	Section model.SectionKind `json:"section"`
	Example string            `json:"example"`
}

// Audit runs the tree rules over each example separately, so names repeated
// across examples are not ambiguous, and checks the off-state contrast of
// every control that declares custom colours.
func (s *Screen) Audit(rules ...audit.TreeRule) ([]Finding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Finding
	for _, section := range s.sections {
		for _, example := range section.Examples {
			locate := func(f audit.Finding) Finding {
				return Finding{Finding: f, Screen: s.id, Section: section.Kind, Example: example.ID}
			}
			for _, f := range audit.Tree(example.Semantics(), rules...) {
				out = append(out, locate(f))
			}
			for _, id := range exampleControlIDs(example) {
				colors, ok := s.colors[id]
				if !ok {
					continue
				}
				findings, err := audit.OffState(id, colors.Off, colors.Background)
				if err != nil {
					return nil, err
				}
				for _, f := range findings {
					out = append(out, locate(f))
				}
			}
		}
	}
	return out, nil
}

func exampleControlIDs(example *Example) []string {
	var ids []string
	example.Semantics().Walk(func(node *a11y.Node, _ int) bool {
		if node.ID != "" {
			ids = append(ids, node.ID)
		}
		return true
	})
	return ids
}
