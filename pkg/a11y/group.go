package a11y

import "strings"

// GroupOption customises a Group at construction.
type GroupOption func(*Group)

// WithGroupID overrides the id derived from the label.
func WithGroupID(id string) GroupOption {
	return func(g *Group) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			g.id = trimmed
		}
	}
}

// WithExclusive makes the group coordinate its members so at most one is on.
func WithExclusive() GroupOption {
	return func(g *Group) {
		g.exclusive = true
	}
}

// Group exposes related controls to assistive technology as one named
// container. The container itself is never focusable; its children are the
// members in declaration order.
type Group struct {
	id        string
	label     string
	exclusive bool
	members   []*Control
}

var _ Element = (*Group)(nil)

// NewGroup builds a group captioned label. In exclusive mode the first member
// that is already on wins and the rest are switched off.
func NewGroup(label string, members []*Control, options ...GroupOption) *Group {
	g := &Group{label: strings.TrimSpace(label)}
	for _, member := range members {
		if member != nil {
			g.members = append(g.members, member)
		}
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.id == "" {
		g.id = Slug(g.label)
	}
	if g.id == "" {
		g.id = "group"
	}
	if g.exclusive {
		g.coordinate()
	}
	return g
}

func (g *Group) coordinate() {
	winner := -1
	for idx, member := range g.members {
		if member.Checked() {
			if winner < 0 {
				winner = idx
				continue
			}
			member.SetChecked(false)
		}
	}
	for idx, member := range g.members {
		member.OnChange(func(on bool) {
			if on {
				g.clearExcept(idx)
			}
		})
	}
}

func (g *Group) clearExcept(keep int) {
	for idx, member := range g.members {
		if idx != keep {
			member.SetChecked(false)
		}
	}
}

func (g *Group) ID() string      { return g.id }
func (g *Group) Label() string   { return g.label }
func (g *Group) Exclusive() bool { return g.exclusive }
func (g *Group) Len() int        { return len(g.members) }

// Members returns the member controls in declaration order.
func (g *Group) Members() []*Control {
	return append([]*Control(nil), g.members...)
}

// Member looks a member up by id.
func (g *Group) Member(id string) (*Control, bool) {
	for _, member := range g.members {
		if member.ID() == id {
			return member, true
		}
	}
	return nil, false
}

// Select turns the member at index on. In exclusive mode the others follow
// through the coordinator.
func (g *Group) Select(index int) bool {
	if index < 0 || index >= len(g.members) {
		return false
	}
	g.members[index].SetChecked(true)
	return true
}

// Selected lists the indices of members that are on.
func (g *Group) Selected() []int {
	var out []int
	for idx, member := range g.members {
		if member.Checked() {
			out = append(out, idx)
		}
	}
	return out
}

// Projection describes the container: labelled, role group, not focusable.
func (g *Group) Projection() Projection {
	return Projection{
		ID:    g.id,
		Label: g.label,
		Role:  RoleGroup,
	}
}

// Children returns the exposed member projections in declaration order.
func (g *Group) Children() []Projection {
	out := make([]Projection, len(g.members))
	for idx, member := range g.members {
		out[idx] = member.Projection()
	}
	return out
}

// Semantics returns the container node with one child per member.
func (g *Group) Semantics() *Node {
	children := make([]*Node, 0, len(g.members))
	for _, member := range g.members {
		children = append(children, member.Semantics())
	}
	return NewNode(g.Projection(), children...)
}
