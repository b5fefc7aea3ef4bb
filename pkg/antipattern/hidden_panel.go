package antipattern

import (
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
)

// HiddenPanel looks like a disclosure panel but only hides its detail
// visually. While closed the detail is not drawn, yet sequential navigation
// still lands on it.
type HiddenPanel struct {
	id        string
	title     string
	detail    string
	hint      string
	open      bool
	observers observers
}

var (
	_ a11y.Element   = (*HiddenPanel)(nil)
	_ a11y.Activator = (*HiddenPanel)(nil)
)

// NewHiddenPanel builds a closed panel.
func NewHiddenPanel(title, detail, hint string, options ...Option) *HiddenPanel {
	s := apply(options)
	p := &HiddenPanel{
		id:        s.id,
		title:     strings.TrimSpace(title),
		detail:    strings.TrimSpace(detail),
		hint:      strings.TrimSpace(hint),
		observers: s.observers,
	}
	if p.id == "" {
		p.id = a11y.Slug(strings.TrimSpace(p.hint+" "+p.title)) + "-hidden"
	}
	return p
}

// Activate shows or hides the detail and notifies observers.
func (p *HiddenPanel) Activate() {
	p.open = !p.open
	p.observers.notify(p.open)
}

// OnToggle registers an open-state callback.
func (p *HiddenPanel) OnToggle(fn func(bool)) {
	if fn != nil {
		p.observers = append(p.observers, fn)
	}
}

func (p *HiddenPanel) ID() string     { return p.id }
func (p *HiddenPanel) Title() string  { return p.title }
func (p *HiddenPanel) Detail() string { return p.detail }
func (p *HiddenPanel) Hint() string   { return p.hint }
func (p *HiddenPanel) IsOpen() bool   { return p.open }

// DetailID is the id of the detail node.
func (p *HiddenPanel) DetailID() string {
	return p.id + "-detail"
}

// Glyph returns the drawn chevron.
func (p *HiddenPanel) Glyph() string {
	if p.open {
		return a11y.GlyphExpanded
	}
	return a11y.GlyphCollapsed
}

// Header returns the header button projection.
func (p *HiddenPanel) Header() a11y.Projection {
	return a11y.Projection{
		ID:    p.id,
		Label: p.title,
		Hint:  p.hint,
		Role:  a11y.RoleButton,
		Flags: (a11y.FlagFocusable | a11y.FlagEnabled | a11y.FlagToggles | a11y.FlagHasExpandedState).
			With(a11y.FlagExpanded, p.open),
	}
}

// Region returns the detail projection. Closing only marks it invisible.
func (p *HiddenPanel) Region() a11y.Projection {
	return a11y.Projection{
		ID:    p.DetailID(),
		Label: p.detail,
		Role:  a11y.RoleText,
		Flags: a11y.FlagFocusable.With(a11y.FlagInvisible, !p.open),
	}
}

func (p *HiddenPanel) Semantics() *a11y.Node {
	return a11y.NewNode(a11y.Projection{ID: p.id + "-panel"}, a11y.NewNode(p.Header()), a11y.NewNode(p.Region()))
}
