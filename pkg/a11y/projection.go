package a11y

import "strings"

// Projection is the machine-readable face of a component: what assistive
// technology reads for it at a given moment.
type Projection struct {
	ID    string
	Label string
	Value string
	Hint  string
	Role  Role
	Flags Flags
}

// Focusable reports whether sequential navigation stops on this node.
func (p Projection) Focusable() bool {
	return p.Flags.Has(FlagFocusable) && !p.Flags.Has(FlagHidden)
}

// Hidden reports whether the node and its subtree are excluded from the
// accessibility tree.
func (p Projection) Hidden() bool {
	return p.Flags.Has(FlagHidden)
}

// Traits lists the spoken traits derived from the role and flags, e.g.
// ["button", "selected"].
func (p Projection) Traits() []string {
	var out []string
	if p.Role.Announced() {
		out = append(out, string(p.Role))
	}
	if p.Flags.Has(FlagSelected) {
		out = append(out, "selected")
	}
	if p.Flags.Has(FlagHasExpandedState) {
		if p.Flags.Has(FlagExpanded) {
			out = append(out, "expanded")
		} else {
			out = append(out, "collapsed")
		}
	}
	if p.Role.Interactive() && !p.Flags.Has(FlagEnabled) {
		out = append(out, "dimmed")
	}
	return out
}

// Announcement renders the projection the way a screen reader speaks it:
// label, value, traits and hint joined by commas.
func (p Projection) Announcement() string {
	parts := make([]string, 0, 4)
	if label := strings.TrimSpace(p.Label); label != "" {
		parts = append(parts, label)
	}
	if value := strings.TrimSpace(p.Value); value != "" {
		parts = append(parts, value)
	}
	parts = append(parts, p.Traits()...)
	if hint := strings.TrimSpace(p.Hint); hint != "" {
		parts = append(parts, hint)
	}
	return strings.Join(parts, ", ")
}
