package semantic

import (
	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

// Document is the serialised accessibility view of one screen.
type Document struct {
	Screen        string          `json:"screen" yaml:"screen"`
	Title         string          `json:"title" yaml:"title"`
	Locale        string          `json:"locale,omitempty" yaml:"locale,omitempty"`
	Theme         *ThemeRef       `json:"theme,omitempty" yaml:"theme,omitempty"`
	Tree          *Node           `json:"tree" yaml:"tree"`
	Traversal     []Stop          `json:"traversal" yaml:"traversal"`
	Announcements []string        `json:"announcements" yaml:"announcements"`
	State         map[string]bool `json:"state" yaml:"state"`
	Findings      []Finding       `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// ThemeRef names the theme the screen was rendered for.
type ThemeRef struct {
	Name    string `json:"name" yaml:"name"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`
}

// Node mirrors a11y.Node with flags and traits spelled out.
type Node struct {
	ID           string   `json:"id,omitempty" yaml:"id,omitempty"`
	Role         string   `json:"role,omitempty" yaml:"role,omitempty"`
	Label        string   `json:"label,omitempty" yaml:"label,omitempty"`
	Value        string   `json:"value,omitempty" yaml:"value,omitempty"`
	Hint         string   `json:"hint,omitempty" yaml:"hint,omitempty"`
	Flags        []string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Traits       []string `json:"traits,omitempty" yaml:"traits,omitempty"`
	Announcement string   `json:"announcement,omitempty" yaml:"announcement,omitempty"`
	Children     []*Node  `json:"children,omitempty" yaml:"children,omitempty"`
}

// Stop is one entry of the sequential navigation order.
type Stop struct {
	ID           string `json:"id" yaml:"id"`
	Role         string `json:"role,omitempty" yaml:"role,omitempty"`
	Group        string `json:"group,omitempty" yaml:"group,omitempty"`
	Announcement string `json:"announcement" yaml:"announcement"`
}

// Finding is a located audit finding.
type Finding struct {
	Rule      string `json:"rule" yaml:"rule"`
	Severity  string `json:"severity" yaml:"severity"`
	ElementID string `json:"elementId,omitempty" yaml:"elementId,omitempty"`
	Section   string `json:"section,omitempty" yaml:"section,omitempty"`
	Example   string `json:"example,omitempty" yaml:"example,omitempty"`
	Message   string `json:"message" yaml:"message"`
}

func convertNode(n *a11y.Node) *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		ID:     n.ID,
		Role:   string(n.Role),
		Label:  n.Label,
		Value:  n.Value,
		Hint:   n.Hint,
		Flags:  n.Flags.Names(),
		Traits: n.Traits(),
	}
	if n.Focusable() {
		out.Announcement = n.Announcement()
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, convertNode(child))
	}
	return out
}

func convertStops(stops []a11y.Stop) []Stop {
	out := make([]Stop, len(stops))
	for i, stop := range stops {
		out[i] = Stop{
			ID:           stop.ID,
			Role:         string(stop.Role),
			Group:        stop.Group,
			Announcement: stop.Announcement(),
		}
	}
	return out
}

func convertFindings(findings []screen.Finding) []Finding {
	if len(findings) == 0 {
		return nil
	}
	out := make([]Finding, len(findings))
	for i, f := range findings {
		out[i] = Finding{
			Rule:      f.Rule,
			Severity:  string(f.Severity),
			ElementID: f.ElementID,
			Section:   string(f.Section),
			Example:   f.Example,
			Message:   f.Message,
		}
	}
	return out
}
