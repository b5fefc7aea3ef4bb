package a11y

import "strings"

// Text is static copy: an introduction paragraph, a caption or a heading.
type Text struct {
	id      string
	text    string
	heading bool
}

var _ Element = (*Text)(nil)

// NewText builds a plain text element.
func NewText(id, text string) *Text {
	return newText(id, text, false)
}

// NewHeading builds a text element exposed with the header trait.
func NewHeading(id, text string) *Text {
	return newText(id, text, true)
}

func newText(id, text string, heading bool) *Text {
	t := &Text{id: strings.TrimSpace(id), text: strings.TrimSpace(text), heading: heading}
	if t.id == "" {
		t.id = Slug(t.text)
	}
	return t
}

func (t *Text) ID() string    { return t.id }
func (t *Text) Text() string  { return t.text }
func (t *Text) Heading() bool { return t.heading }

// Semantics returns a focusable leaf; headings carry RoleHeading and the
// header flag.
func (t *Text) Semantics() *Node {
	p := Projection{ID: t.id, Label: t.text, Role: RoleText, Flags: FlagFocusable}
	if t.heading {
		p.Role = RoleHeading
		p.Flags = p.Flags.Set(FlagHeader)
	}
	return NewNode(p)
}
