package a11y

// Stop is one position in the sequential assistive-technology order. Group
// carries the label of the nearest enclosing group container, which screen
// readers speak when focus first enters it.
type Stop struct {
	Projection
	Group string
}

// Traverse returns the focusable projections reachable from roots in
// sequential navigation order. Hidden nodes are skipped along with their
// whole subtree.
func Traverse(roots ...*Node) []Projection {
	stops := TraverseStops(roots...)
	out := make([]Projection, len(stops))
	for i, stop := range stops {
		out[i] = stop.Projection
	}
	return out
}

// TraverseStops is Traverse with group context attached to each stop.
func TraverseStops(roots ...*Node) []Stop {
	var out []Stop
	for _, root := range roots {
		out = collectStops(out, root, "")
	}
	return out
}

func collectStops(out []Stop, n *Node, group string) []Stop {
	if n == nil || n.Hidden() {
		return out
	}
	if n.Focusable() {
		out = append(out, Stop{Projection: n.Projection, Group: group})
	}
	if n.Role == RoleGroup && n.Label != "" {
		group = n.Label
	}
	for _, child := range n.Children {
		out = collectStops(out, child, group)
	}
	return out
}

// Reachable reports whether sequential navigation can land on the node with
// the given id.
func Reachable(id string, roots ...*Node) bool {
	for _, p := range Traverse(roots...) {
		if p.ID == id {
			return true
		}
	}
	return false
}
