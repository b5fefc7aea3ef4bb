package model

import "strings"

// SectionKind separates compliant examples from deliberately broken ones.
type SectionKind string

const (
	SectionGood SectionKind = "good"
	SectionBad  SectionKind = "bad"
)

// Valid reports whether k is good or bad.
func (k SectionKind) Valid() bool {
	return k == SectionGood || k == SectionBad
}

// ItemKind is the discriminator derived from which Item field is set.
type ItemKind string

const (
	ItemText        ItemKind = "text"
	ItemHeading     ItemKind = "heading"
	ItemControl     ItemKind = "control"
	ItemGroup       ItemKind = "group"
	ItemAntiPattern ItemKind = "antipattern"
)

// AntiPatternKind selects one of the deliberately inaccessible renditions.
type AntiPatternKind string

const (
	AntiPatternImageCheckbox   AntiPatternKind = "image-checkbox"
	AntiPatternLooseGroup      AntiPatternKind = "loose-group"
	AntiPatternUnlabeledSwitch AntiPatternKind = "unlabeled-switch"
	AntiPatternHiddenPanel     AntiPatternKind = "hidden-panel"
)

// Valid reports whether k names a known anti-pattern.
func (k AntiPatternKind) Valid() bool {
	switch k {
	case AntiPatternImageCheckbox, AntiPatternLooseGroup, AntiPatternUnlabeledSwitch, AntiPatternHiddenPanel:
		return true
	default:
		return false
	}
}

// Catalog is the full set of screens.
type Catalog struct {
	Title   string            `json:"title,omitempty" yaml:"title,omitempty"`
	Screens []Screen          `json:"screens" yaml:"screens"`
	Meta    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Screen is one topic page such as "Checkboxes".
type Screen struct {
	ID       string            `json:"id" yaml:"id"`
	Title    string            `json:"title" yaml:"title"`
	Order    int               `json:"order,omitempty" yaml:"order,omitempty"`
	Intro    string            `json:"intro,omitempty" yaml:"intro,omitempty"`
	Sections []Section         `json:"sections" yaml:"sections"`
	Meta     map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Section groups the good or the bad examples of a screen.
type Section struct {
	Kind     SectionKind `json:"kind" yaml:"kind"`
	Title    string      `json:"title,omitempty" yaml:"title,omitempty"`
	Examples []Example   `json:"examples" yaml:"examples"`
}

// DisplayTitle falls back to "Good Examples" or "Bad Examples".
func (s Section) DisplayTitle() string {
	if strings.TrimSpace(s.Title) != "" {
		return s.Title
	}
	if s.Kind == SectionBad {
		return "Bad Examples"
	}
	return "Good Examples"
}

// Example is one titled demonstration followed by its explanation.
type Example struct {
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title   string   `json:"title" yaml:"title"`
	Items   []Item   `json:"items,omitempty" yaml:"items,omitempty"`
	Details *Details `json:"details,omitempty" yaml:"details,omitempty"`
}

// Item is a tagged union: exactly one field is expected to be set.
type Item struct {
	Text        string       `json:"text,omitempty" yaml:"text,omitempty"`
	Heading     string       `json:"heading,omitempty" yaml:"heading,omitempty"`
	Control     *Control     `json:"control,omitempty" yaml:"control,omitempty"`
	Group       *Group       `json:"group,omitempty" yaml:"group,omitempty"`
	AntiPattern *AntiPattern `json:"antipattern,omitempty" yaml:"antipattern,omitempty"`
}

// Kinds lists every kind whose field is set, in declaration order. A valid
// item has exactly one.
func (i Item) Kinds() []ItemKind {
	var out []ItemKind
	if strings.TrimSpace(i.Text) != "" {
		out = append(out, ItemText)
	}
	if strings.TrimSpace(i.Heading) != "" {
		out = append(out, ItemHeading)
	}
	if i.Control != nil {
		out = append(out, ItemControl)
	}
	if i.Group != nil {
		out = append(out, ItemGroup)
	}
	if i.AntiPattern != nil {
		out = append(out, ItemAntiPattern)
	}
	return out
}

// Kind returns the single kind of a valid item, or "" when none or several
// fields are set.
func (i Item) Kind() ItemKind {
	kinds := i.Kinds()
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// ValueStrings overrides the spoken value per state.
type ValueStrings struct {
	On  string `json:"on" yaml:"on"`
	Off string `json:"off" yaml:"off"`
}

// Glyphs overrides the drawn indicator per state.
type Glyphs struct {
	On  string `json:"on" yaml:"on"`
	Off string `json:"off" yaml:"off"`
}

// Colors describes a custom-styled switch so its off state can be checked
// against the 3:1 non-text contrast minimum.
type Colors struct {
	On         string `json:"on,omitempty" yaml:"on,omitempty"`
	Off        string `json:"off,omitempty" yaml:"off,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
}

// Control declares a binary-state control.
type Control struct {
	ID              string        `json:"id,omitempty" yaml:"id,omitempty"`
	Kind            string        `json:"kind,omitempty" yaml:"kind,omitempty"`
	Label           string        `json:"label,omitempty" yaml:"label,omitempty"`
	AccessibleLabel string        `json:"accessibleLabel,omitempty" yaml:"accessibleLabel,omitempty"`
	Hint            string        `json:"hint,omitempty" yaml:"hint,omitempty"`
	Checked         bool          `json:"checked,omitempty" yaml:"checked,omitempty"`
	Disabled        bool          `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Values          *ValueStrings `json:"values,omitempty" yaml:"values,omitempty"`
	Glyphs          *Glyphs       `json:"glyphs,omitempty" yaml:"glyphs,omitempty"`
	Colors          *Colors       `json:"colors,omitempty" yaml:"colors,omitempty"`
}

// Group declares a captioned set of controls.
type Group struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	Label     string    `json:"label" yaml:"label"`
	Exclusive bool      `json:"exclusive,omitempty" yaml:"exclusive,omitempty"`
	Members   []Control `json:"members" yaml:"members"`
}

// AntiPattern declares a deliberately inaccessible element. Label is the
// button text, switch caption or group caption depending on Kind; Title,
// Detail and Hint apply to hidden panels.
type AntiPattern struct {
	Kind          AntiPatternKind `json:"kind" yaml:"kind"`
	ID            string          `json:"id,omitempty" yaml:"id,omitempty"`
	Label         string          `json:"label,omitempty" yaml:"label,omitempty"`
	Checked       bool            `json:"checked,omitempty" yaml:"checked,omitempty"`
	VisibleValues *ValueStrings   `json:"visibleValues,omitempty" yaml:"visibleValues,omitempty"`
	Members       []Control       `json:"members,omitempty" yaml:"members,omitempty"`
	Title         string          `json:"title,omitempty" yaml:"title,omitempty"`
	Detail        string          `json:"detail,omitempty" yaml:"detail,omitempty"`
	Hint          string          `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// Details instantiates a disclosure panel after an example.
type Details struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Text  string `json:"text" yaml:"text"`
	Hint  string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// DisplayTitle defaults to "Details".
func (d Details) DisplayTitle() string {
	if strings.TrimSpace(d.Title) != "" {
		return d.Title
	}
	return "Details"
}

// Summary is the lightweight listing entry for a screen.
type Summary struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Order    int    `json:"order" yaml:"order"`
	Examples int    `json:"examples" yaml:"examples"`
}

// Summarize counts the examples across sections.
func (s Screen) Summarize() Summary {
	total := 0
	for _, section := range s.Sections {
		total += len(section.Examples)
	}
	return Summary{ID: s.ID, Title: s.Title, Order: s.Order, Examples: total}
}
