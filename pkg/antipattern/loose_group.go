package antipattern

import (
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
)

// LooseGroup draws a caption above a set of checkboxes but never wraps them
// in a group container, so the caption is not spoken when focus enters.
type LooseGroup struct {
	id      string
	caption string
	members []*a11y.Control
}

var _ a11y.Element = (*LooseGroup)(nil)

// NewLooseGroup lays the members out under caption without any grouping.
func NewLooseGroup(caption string, members []*a11y.Control, options ...Option) *LooseGroup {
	s := apply(options)
	g := &LooseGroup{id: s.id, caption: strings.TrimSpace(caption)}
	for _, member := range members {
		if member != nil {
			g.members = append(g.members, member)
		}
	}
	if g.id == "" {
		g.id = a11y.Slug(g.caption) + "-loose"
	}
	return g
}

func (g *LooseGroup) ID() string      { return g.id }
func (g *LooseGroup) Caption() string { return g.caption }
func (g *LooseGroup) Len() int        { return len(g.members) }

// CaptionID is the id of the caption text node.
func (g *LooseGroup) CaptionID() string {
	return g.id + "-caption"
}

// Members returns the member controls in layout order.
func (g *LooseGroup) Members() []*a11y.Control {
	return append([]*a11y.Control(nil), g.members...)
}

// Member looks a member up by id.
func (g *LooseGroup) Member(id string) (*a11y.Control, bool) {
	for _, member := range g.members {
		if member.ID() == id {
			return member, true
		}
	}
	return nil, false
}

// Semantics returns an unnamed, role-less container: the caption is just
// another text stop before the members.
func (g *LooseGroup) Semantics() *a11y.Node {
	children := make([]*a11y.Node, 0, len(g.members)+1)
	children = append(children, a11y.NewNode(a11y.Projection{
		ID:    g.CaptionID(),
		Label: g.caption,
		Role:  a11y.RoleText,
		Flags: a11y.FlagFocusable,
	}))
	for _, member := range g.members {
		children = append(children, member.Semantics())
	}
	return a11y.NewNode(a11y.Projection{ID: g.id}, children...)
}
