package audit

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTML parses a rendered document and checks its ARIA wiring.
func HTML(r io.Reader) ([]Finding, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("audit: parse html: %w", err)
	}
	return Document(doc), nil
}

// Document runs the HTML rules over an already parsed document.
func Document(doc *goquery.Document) []Finding {
	var findings []Finding
	add := func(rule string, severity Severity, sel *goquery.Selection, message string) {
		id, _ := sel.Attr("id")
		findings = append(findings, Finding{Rule: rule, Severity: severity, ElementID: id, Message: message})
	}

	doc.Find(`[role="checkbox"], [role="switch"]`).Each(func(_ int, sel *goquery.Selection) {
		if value, ok := sel.Attr("aria-checked"); !ok || (value != "true" && value != "false" && value != "mixed") {
			add(RuleHTMLCheckedMissing, SeverityError, sel, "checkable role without a valid aria-checked")
		}
	})

	doc.Find(`button, [role="checkbox"], [role="switch"], [role="button"]`).Each(func(_ int, sel *goquery.Selection) {
		if accessibleName(doc, sel) == "" {
			add(RuleHTMLNameMissing, SeverityError, sel, "control has no accessible name")
		}
	})

	doc.Find(`[data-state]`).Each(func(_ int, sel *goquery.Selection) {
		for _, attr := range []string{"aria-checked", "aria-pressed", "aria-expanded"} {
			if _, ok := sel.Attr(attr); ok {
				return
			}
		}
		if role, _ := sel.Attr("role"); role == "tab" {
			if _, ok := sel.Attr("aria-selected"); ok {
				return
			}
		}
		add(RuleHTMLStateMissing, SeverityError, sel, "visual state is not exposed through aria attributes")
	})

	doc.Find(`[aria-expanded][aria-controls]`).Each(func(_ int, sel *goquery.Selection) {
		expanded, _ := sel.Attr("aria-expanded")
		target, _ := sel.Attr("aria-controls")
		region := doc.Find("#" + cssEscape(target))
		if region.Length() == 0 {
			add(RuleHTMLExpanded, SeverityError, sel, fmt.Sprintf("aria-controls points at missing element %q", target))
			return
		}
		hidden := isHidden(region)
		switch {
		case expanded == "false" && !hidden:
			add(RuleHTMLExpanded, SeverityError, sel, "collapsed region is still exposed to assistive technology")
		case expanded == "true" && hidden:
			add(RuleHTMLExpanded, SeverityError, sel, "expanded region is hidden")
		}
	})

	doc.Find(`[role="group"], [role="radiogroup"], [role="tablist"], fieldset`).Each(func(_ int, sel *goquery.Selection) {
		if _, ok := sel.Attr("aria-label"); ok {
			return
		}
		if ref, ok := sel.Attr("aria-labelledby"); ok && labelledBy(doc, ref) != "" {
			return
		}
		if goquery.NodeName(sel) == "fieldset" && strings.TrimSpace(sel.ChildrenFiltered("legend").Text()) != "" {
			return
		}
		add(RuleHTMLGroupUnlabeled, SeverityError, sel, "group has no label")
	})

	return findings
}

func accessibleName(doc *goquery.Document, sel *goquery.Selection) string {
	if ref, ok := sel.Attr("aria-labelledby"); ok {
		if name := labelledBy(doc, ref); name != "" {
			return name
		}
	}
	if label, ok := sel.Attr("aria-label"); ok && strings.TrimSpace(label) != "" {
		return strings.TrimSpace(label)
	}
	visible := sel.Clone()
	visible.Find(`[aria-hidden="true"]`).Remove()
	if text := strings.TrimSpace(visible.Text()); text != "" {
		return text
	}
	if title, ok := sel.Attr("title"); ok {
		return strings.TrimSpace(title)
	}
	return ""
}

func labelledBy(doc *goquery.Document, ref string) string {
	var parts []string
	for _, id := range strings.Fields(ref) {
		if text := strings.TrimSpace(doc.Find("#" + cssEscape(id)).First().Text()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func isHidden(sel *goquery.Selection) bool {
	if _, ok := sel.Attr("hidden"); ok {
		return true
	}
	value, _ := sel.Attr("aria-hidden")
	return value == "true"
}

// cssEscape escapes the characters our generated ids may contain that are not
// valid in a CSS identifier.
func cssEscape(id string) string {
	var b strings.Builder
	for i, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				fmt.Fprintf(&b, "\\%x ", r)
				continue
			}
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
