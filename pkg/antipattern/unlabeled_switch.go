package antipattern

import (
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
)

// UnlabeledSwitch is a switch with its label hidden and a separate caption
// drawn beside it. The caption is a sibling text node, so the switch itself
// has no accessible name. Visible value text, when configured, is drawn but
// the switch still speaks On and Off.
type UnlabeledSwitch struct {
	id        string
	caption   string
	checked   bool
	visible   valuePair
	observers observers
}

var (
	_ a11y.Element   = (*UnlabeledSwitch)(nil)
	_ a11y.Activator = (*UnlabeledSwitch)(nil)
)

// NewUnlabeledSwitch builds the switch and its detached caption.
func NewUnlabeledSwitch(caption string, checked bool, options ...Option) *UnlabeledSwitch {
	s := apply(options)
	sw := &UnlabeledSwitch{
		id:        s.id,
		caption:   strings.TrimSpace(caption),
		checked:   checked,
		visible:   s.values,
		observers: s.observers,
	}
	if sw.id == "" {
		sw.id = a11y.Slug(sw.caption) + "-unlabeled"
	}
	return sw
}

// Activate flips the switch and notifies observers.
func (s *UnlabeledSwitch) Activate() {
	s.checked = !s.checked
	s.observers.notify(s.checked)
}

// OnChange registers a state callback.
func (s *UnlabeledSwitch) OnChange(fn func(bool)) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

func (s *UnlabeledSwitch) ID() string      { return s.id }
func (s *UnlabeledSwitch) Caption() string { return s.caption }
func (s *UnlabeledSwitch) Checked() bool   { return s.checked }

// CaptionID is the id of the detached caption node.
func (s *UnlabeledSwitch) CaptionID() string {
	return s.id + "-caption"
}

// VisibleValue is the value text drawn on screen, empty when none was set.
func (s *UnlabeledSwitch) VisibleValue() string {
	if s.checked {
		return s.visible.on
	}
	return s.visible.off
}

// Indicator returns the drawn switch glyph.
func (s *UnlabeledSwitch) Indicator() a11y.Indicator {
	glyph := "switch.off"
	if s.checked {
		glyph = "switch.on"
	}
	return a11y.Indicator{Glyph: glyph, On: s.checked}
}

// Projection describes the switch without a label. The spoken value ignores
// any visible value text.
func (s *UnlabeledSwitch) Projection() a11y.Projection {
	return a11y.Projection{
		ID:    s.id,
		Value: a11y.SwitchValues.For(s.checked),
		Role:  a11y.RoleSwitch,
		Flags: (a11y.FlagFocusable | a11y.FlagEnabled | a11y.FlagToggles | a11y.FlagHasCheckedState).
			With(a11y.FlagChecked, s.checked),
	}
}

// Semantics returns an unnamed row holding the caption and the switch as
// unrelated siblings.
func (s *UnlabeledSwitch) Semantics() *a11y.Node {
	caption := a11y.NewNode(a11y.Projection{
		ID:    s.CaptionID(),
		Label: s.caption,
		Role:  a11y.RoleText,
		Flags: a11y.FlagFocusable,
	})
	return a11y.NewNode(a11y.Projection{ID: s.id + "-row"}, caption, a11y.NewNode(s.Projection()))
}
