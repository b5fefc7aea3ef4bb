package a11y

// Node is one entry in the semantics tree.
type Node struct {
	Projection
	Children []*Node
}

// NewNode builds a node, dropping nil children.
func NewNode(p Projection, children ...*Node) *Node {
	n := &Node{Projection: p}
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Element is anything that contributes a subtree to a screen.
type Element interface {
	ID() string
	Semantics() *Node
}

// Activator is implemented by elements that respond to a tap or click.
type Activator interface {
	Activate()
}

// Walk visits the subtree depth first. Returning false from fn skips the
// node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Find returns the first node with the given id, or nil.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if found != nil {
			return false
		}
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}
