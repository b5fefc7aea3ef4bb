package audit

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/contrast"
)

// TreeRule checks one property of a semantics tree.
type TreeRule struct {
	Name     string
	Severity Severity
	Check    func(root *a11y.Node) []string
}

// TreeRules returns the built-in tree rules.
func TreeRules() []TreeRule {
	return []TreeRule{
		{Name: RuleLabelMissing, Severity: SeverityError, Check: checkLabelMissing},
		{Name: RuleStateMissing, Severity: SeverityError, Check: checkStateMissing},
		{Name: RuleGroupMissing, Severity: SeverityWarning, Check: checkGroupMissing},
		{Name: RuleGroupUnlabeled, Severity: SeverityError, Check: checkGroupUnlabeled},
		{Name: RuleHiddenReachable, Severity: SeverityError, Check: checkHiddenReachable},
		{Name: RuleAmbiguousName, Severity: SeverityWarning, Check: checkAmbiguousName},
	}
}

var treeMessages = map[string]string{
	RuleLabelMissing:    "interactive element has no accessible name",
	RuleStateMissing:    "element changes state visually but exposes no value or state",
	RuleGroupMissing:    "related checkable controls are not wrapped in a named group",
	RuleGroupUnlabeled:  "group container has no label",
	RuleHiddenReachable: "content is not drawn but is still reachable by assistive technology",
	RuleAmbiguousName:   "another element is announced with the same name and hint",
}

// Tree runs rules over root. With no rules the built-in set is used. Each
// check returns the ids of offending nodes.
func Tree(root *a11y.Node, rules ...TreeRule) []Finding {
	if root == nil {
		return nil
	}
	if len(rules) == 0 {
		rules = TreeRules()
	}
	var findings []Finding
	for _, rule := range rules {
		if rule.Check == nil {
			continue
		}
		message := treeMessages[rule.Name]
		for _, id := range rule.Check(root) {
			findings = append(findings, Finding{
				Rule:      rule.Name,
				Severity:  rule.Severity,
				ElementID: id,
				Message:   message,
			})
		}
	}
	return findings
}

// visible walks nodes that are part of the accessibility tree.
func visible(root *a11y.Node, fn func(*a11y.Node)) {
	root.Walk(func(node *a11y.Node, _ int) bool {
		if node.Hidden() {
			return false
		}
		fn(node)
		return true
	})
}

func checkLabelMissing(root *a11y.Node) []string {
	var ids []string
	visible(root, func(n *a11y.Node) {
		if n.Focusable() && n.Role.Interactive() && strings.TrimSpace(n.Label) == "" {
			ids = append(ids, n.ID)
		}
	})
	return ids
}

func checkStateMissing(root *a11y.Node) []string {
	var ids []string
	visible(root, func(n *a11y.Node) {
		if !n.Flags.Has(a11y.FlagToggles) {
			return
		}
		if strings.TrimSpace(n.Value) != "" ||
			n.Flags.Has(a11y.FlagHasCheckedState) ||
			n.Flags.Has(a11y.FlagHasExpandedState) {
			return
		}
		ids = append(ids, n.ID)
	})
	return ids
}

func checkGroupMissing(root *a11y.Node) []string {
	var ids []string
	visible(root, func(n *a11y.Node) {
		if n.Role == a11y.RoleGroup {
			return
		}
		checkable := 0
		for _, child := range n.Children {
			if !child.Hidden() && child.Flags.Has(a11y.FlagHasCheckedState) {
				checkable++
			}
		}
		if checkable >= 2 {
			ids = append(ids, n.ID)
		}
	})
	return ids
}

func checkGroupUnlabeled(root *a11y.Node) []string {
	var ids []string
	visible(root, func(n *a11y.Node) {
		if n.Role == a11y.RoleGroup && strings.TrimSpace(n.Label) == "" {
			ids = append(ids, n.ID)
		}
	})
	return ids
}

func checkHiddenReachable(root *a11y.Node) []string {
	var ids []string
	for _, p := range a11y.Traverse(root) {
		if p.Flags.Has(a11y.FlagInvisible) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func checkAmbiguousName(root *a11y.Node) []string {
	type key struct {
		role  a11y.Role
		label string
		hint  string
	}
	seen := make(map[key]bool)
	var ids []string
	for _, p := range a11y.Traverse(root) {
		if !p.Role.Interactive() || strings.TrimSpace(p.Label) == "" {
			continue
		}
		k := key{role: p.Role, label: strings.ToLower(p.Label), hint: strings.ToLower(p.Hint)}
		if seen[k] {
			ids = append(ids, p.ID)
			continue
		}
		seen[k] = true
	}
	return ids
}

// OffState checks that the off colour of a custom switch reaches the 3:1
// non-text minimum against its background.
func OffState(id, off, background string) ([]Finding, error) {
	if off == "" || background == "" {
		return nil, nil
	}
	ratio, err := contrast.Ratio(off, background)
	if err != nil {
		return nil, fmt.Errorf("audit: %s: %w", id, err)
	}
	if ratio >= contrast.MinNonText {
		return nil, nil
	}
	return []Finding{{
		Rule:      RuleOffStateContrast,
		Severity:  SeverityError,
		ElementID: id,
		Message: fmt.Sprintf("off state %s on %s is %s, below %s",
			off, background, contrast.Format(ratio), contrast.Format(contrast.MinNonText)),
	}}, nil
}
