// Package contrast computes WCAG 2 contrast ratios between colours and checks
// theme token pairs against minimum ratios.
package contrast

import (
	"fmt"
	"math"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// MinText is the minimum ratio for body text.
	MinText = 4.5
	// MinNonText is the minimum ratio for control boundaries and state
	// indicators such as the off track of a switch.
	MinNonText = 3.0
)

// Luminance returns the relative luminance of a hex colour in [0, 1].
func Luminance(hex string) (float64, error) {
	c, err := colorful.Hex(normalize(hex))
	if err != nil {
		return 0, fmt.Errorf("contrast: parse %q: %w", hex, err)
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// Ratio returns the contrast ratio between two colours, from 1 to 21. The
// order of the arguments does not matter.
func Ratio(a, b string) (float64, error) {
	la, err := Luminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := Luminance(b)
	if err != nil {
		return 0, err
	}
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05), nil
}

func normalize(hex string) string {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return strings.ToLower(hex)
}

// Rule requires the colours behind two theme tokens to reach Min.
type Rule struct {
	Name       string
	Foreground string
	Background string
	Min        float64
}

// Result is the outcome of one rule.
type Result struct {
	Rule
	ForegroundColor string
	BackgroundColor string
	Ratio           float64
	Pass            bool
}

// DefaultRules cover the catalog chrome: body text, section headings and the
// off state of custom switches.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "text", Foreground: "text", Background: "background", Min: MinText},
		{Name: "good-heading", Foreground: "section-good", Background: "background", Min: MinText},
		{Name: "bad-heading", Foreground: "section-bad", Background: "background", Min: MinText},
		{Name: "link", Foreground: "accent", Background: "background", Min: MinText},
		{Name: "toggle-off", Foreground: "toggle-off", Background: "background", Min: MinNonText},
	}
}

// Check evaluates rules against a token map. Rules naming a token that is not
// present are skipped; malformed colours are errors.
func Check(tokens map[string]string, rules []Rule) ([]Result, error) {
	results := make([]Result, 0, len(rules))
	for _, rule := range rules {
		fg, okFG := tokens[rule.Foreground]
		bg, okBG := tokens[rule.Background]
		if !okFG || !okBG {
			continue
		}
		ratio, err := Ratio(fg, bg)
		if err != nil {
			return nil, fmt.Errorf("contrast: rule %s: %w", rule.Name, err)
		}
		results = append(results, Result{
			Rule:            rule,
			ForegroundColor: fg,
			BackgroundColor: bg,
			Ratio:           ratio,
			Pass:            ratio >= rule.Min,
		})
	}
	return results, nil
}

// Failures filters results down to the failing ones, sorted by rule name.
func Failures(results []Result) []Result {
	var out []Result
	for _, result := range results {
		if !result.Pass {
			out = append(out, result)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Format renders a ratio the way WCAG tools print it, e.g. "4.50:1".
func Format(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
