package audit

import (
	"fmt"
	"sort"
)

// Severity ranks a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

const (
	RuleLabelMissing       = "label-missing"
	RuleStateMissing       = "state-missing"
	RuleGroupMissing       = "group-missing"
	RuleGroupUnlabeled     = "group-unlabeled"
	RuleHiddenReachable    = "hidden-content-reachable"
	RuleAmbiguousName      = "ambiguous-name"
	RuleOffStateContrast   = "off-state-contrast"
	RuleHTMLCheckedMissing = "html-checked-missing"
	RuleHTMLNameMissing    = "html-name-missing"
	RuleHTMLExpanded       = "html-expanded-mismatch"
	RuleHTMLGroupUnlabeled = "html-group-unlabeled"
	RuleHTMLStateMissing   = "html-state-missing"
)

// Finding is one reported problem.
type Finding struct {
	Rule      string   `json:"rule" yaml:"rule"`
	Severity  Severity `json:"severity" yaml:"severity"`
	ElementID string   `json:"elementId,omitempty" yaml:"elementId,omitempty"`
	Message   string   `json:"message" yaml:"message"`
}

func (f Finding) String() string {
	if f.ElementID == "" {
		return fmt.Sprintf("%s [%s] %s", f.Severity, f.Rule, f.Message)
	}
	return fmt.Sprintf("%s [%s] %s: %s", f.Severity, f.Rule, f.ElementID, f.Message)
}

// Rules returns the distinct rule names present in findings, sorted.
func Rules(findings []Finding) []string {
	seen := make(map[string]struct{}, len(findings))
	var out []string
	for _, f := range findings {
		if _, ok := seen[f.Rule]; ok {
			continue
		}
		seen[f.Rule] = struct{}{}
		out = append(out, f.Rule)
	}
	sort.Strings(out)
	return out
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
