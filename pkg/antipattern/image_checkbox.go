package antipattern

import (
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
)

// ImageCheckbox is a plain button that swaps a square glyph to look like a
// checkbox. The glyph flips but the projection never carries a value or a
// checked state.
type ImageCheckbox struct {
	id        string
	label     string
	checked   bool
	glyphs    a11y.GlyphPair
	observers observers
}

var (
	_ a11y.Element   = (*ImageCheckbox)(nil)
	_ a11y.Activator = (*ImageCheckbox)(nil)
)

// NewImageCheckbox builds the button with its glyph matching checked.
func NewImageCheckbox(label string, checked bool, options ...Option) *ImageCheckbox {
	s := apply(options)
	c := &ImageCheckbox{
		id:        s.id,
		label:     strings.TrimSpace(label),
		checked:   checked,
		glyphs:    a11y.GlyphPair{On: "checkmark.square", Off: "square"},
		observers: s.observers,
	}
	if c.id == "" {
		c.id = a11y.Slug(c.label) + "-image"
	}
	return c
}

// Activate swaps the image and notifies observers.
func (c *ImageCheckbox) Activate() {
	c.checked = !c.checked
	c.observers.notify(c.checked)
}

// OnChange registers a state callback.
func (c *ImageCheckbox) OnChange(fn func(bool)) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

func (c *ImageCheckbox) ID() string    { return c.id }
func (c *ImageCheckbox) Label() string { return c.label }
func (c *ImageCheckbox) Checked() bool { return c.checked }

// Indicator returns the drawn glyph.
func (c *ImageCheckbox) Indicator() a11y.Indicator {
	return a11y.Indicator{Glyph: c.glyphs.For(c.checked), On: c.checked}
}

// Projection is identical in both states.
func (c *ImageCheckbox) Projection() a11y.Projection {
	return a11y.Projection{
		ID:    c.id,
		Label: c.label,
		Role:  a11y.RoleButton,
		Flags: a11y.FlagFocusable | a11y.FlagEnabled | a11y.FlagToggles,
	}
}

func (c *ImageCheckbox) Semantics() *a11y.Node {
	return a11y.NewNode(c.Projection())
}
