package a11y

import "strings"

// Kind selects how a binary-state control presents itself.
type Kind string

const (
	KindCheckbox     Kind = "checkbox"
	KindSwitch       Kind = "switch"
	KindToggleButton Kind = "toggle-button"
)

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindCheckbox, KindSwitch, KindToggleButton:
		return true
	default:
		return false
	}
}

// ValueStrings holds the accessible value spoken for each state.
type ValueStrings struct {
	On  string
	Off string
}

var (
	CheckedValues = ValueStrings{On: "Checked", Off: "Unchecked"}
	SwitchValues  = ValueStrings{On: "On", Off: "Off"}
)

// For returns the string for the given state.
func (v ValueStrings) For(checked bool) string {
	if checked {
		return v.On
	}
	return v.Off
}

func (v ValueStrings) empty() bool {
	return strings.TrimSpace(v.On) == "" && strings.TrimSpace(v.Off) == ""
}

// GlyphPair names the visual indicator drawn for each state.
type GlyphPair struct {
	On  string
	Off string
}

// For returns the glyph for the given state.
func (g GlyphPair) For(checked bool) string {
	if checked {
		return g.On
	}
	return g.Off
}

// Indicator is the visual rendering of a control's state.
type Indicator struct {
	Glyph string
	On    bool
}

func defaultValues(kind Kind) ValueStrings {
	if kind == KindCheckbox {
		return CheckedValues
	}
	return SwitchValues
}

func defaultGlyphs(kind Kind) GlyphPair {
	switch kind {
	case KindSwitch:
		return GlyphPair{On: "switch.on", Off: "switch.off"}
	case KindToggleButton:
		return GlyphPair{On: "bookmark.fill", Off: "bookmark"}
	default:
		return GlyphPair{On: "checkmark.square", Off: "square"}
	}
}

// ControlOption customises a Control at construction.
type ControlOption func(*Control)

// WithID overrides the id derived from the label.
func WithID(id string) ControlOption {
	return func(c *Control) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			c.id = trimmed
		}
	}
}

// WithKind selects checkbox, switch or toggle-button presentation.
func WithKind(kind Kind) ControlOption {
	return func(c *Control) {
		if kind.Valid() {
			c.kind = kind
		}
	}
}

// WithAccessibleLabel sets an accessible name distinct from the visible label.
func WithAccessibleLabel(label string) ControlOption {
	return func(c *Control) {
		c.accessibleLabel = strings.TrimSpace(label)
	}
}

// WithHint attaches a spoken hint.
func WithHint(hint string) ControlOption {
	return func(c *Control) {
		c.hint = strings.TrimSpace(hint)
	}
}

// WithValueStrings replaces the per-state accessible values.
func WithValueStrings(values ValueStrings) ControlOption {
	return func(c *Control) {
		if !values.empty() {
			c.values = values
		}
	}
}

// WithGlyphs replaces the per-state indicator glyphs.
func WithGlyphs(glyphs GlyphPair) ControlOption {
	return func(c *Control) {
		if glyphs.On != "" || glyphs.Off != "" {
			c.glyphs = glyphs
		}
	}
}

// WithDisabled makes Activate a no-op and marks the projection not enabled.
func WithDisabled() ControlOption {
	return func(c *Control) {
		c.disabled = true
	}
}

// WithObserver registers a change callback at construction.
func WithObserver(fn func(bool)) ControlOption {
	return func(c *Control) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// Control is a binary-state control: checkbox, switch or toggle button.
type Control struct {
	id              string
	kind            Kind
	label           string
	accessibleLabel string
	hint            string
	values          ValueStrings
	glyphs          GlyphPair
	disabled        bool

	checked    bool
	indicator  Indicator
	projection Projection
	observers  []func(bool)
}

var (
	_ Element   = (*Control)(nil)
	_ Activator = (*Control)(nil)
)

// NewControl builds a control whose rendering and projection already reflect
// initialChecked. Observers are not called for the initial state.
func NewControl(label string, initialChecked bool, options ...ControlOption) *Control {
	c := &Control{
		kind:  KindCheckbox,
		label: strings.TrimSpace(label),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.values.empty() {
		c.values = defaultValues(c.kind)
	}
	if c.glyphs.On == "" && c.glyphs.Off == "" {
		c.glyphs = defaultGlyphs(c.kind)
	}
	if c.id == "" {
		c.id = Slug(c.AccessibleLabel())
	}
	if c.id == "" {
		c.id = string(c.kind)
	}
	c.sync(initialChecked)
	return c
}

// Toggle flips the state, re-renders and notifies observers.
func (c *Control) Toggle() {
	c.sync(!c.checked)
	c.notify()
}

// SetChecked forces the state. Observers run only when the state changes.
func (c *Control) SetChecked(checked bool) {
	if c.checked == checked {
		return
	}
	c.sync(checked)
	c.notify()
}

// Activate handles a tap or click.
func (c *Control) Activate() {
	if c.disabled {
		return
	}
	c.Toggle()
}

// OnChange registers a callback invoked with the new state after each change.
func (c *Control) OnChange(fn func(bool)) {
	if fn == nil {
		return
	}
	c.observers = append(c.observers, fn)
}

// sync is the single place state is written. The indicator and the
// projection are both derived here, before any observer can run.
func (c *Control) sync(checked bool) {
	c.checked = checked
	c.indicator = Indicator{Glyph: c.glyphs.For(checked), On: checked}
	c.projection = c.project()
}

func (c *Control) project() Projection {
	flags := (FlagFocusable | FlagToggles).With(FlagEnabled, !c.disabled)
	role := RoleCheckbox
	switch c.kind {
	case KindSwitch:
		role = RoleSwitch
		flags = flags.Set(FlagHasCheckedState).With(FlagChecked, c.checked)
	case KindToggleButton:
		role = RoleButton
		flags = flags.With(FlagSelected, c.checked)
	default:
		flags = flags.Set(FlagHasCheckedState).With(FlagChecked, c.checked)
	}
	return Projection{
		ID:    c.id,
		Label: c.AccessibleLabel(),
		Value: c.values.For(c.checked),
		Hint:  c.hint,
		Role:  role,
		Flags: flags,
	}
}

func (c *Control) notify() {
	observers := append([]func(bool){}, c.observers...)
	state := c.checked
	for _, fn := range observers {
		fn(state)
	}
}

func (c *Control) ID() string     { return c.id }
func (c *Control) Kind() Kind     { return c.kind }
func (c *Control) Label() string  { return c.label }
func (c *Control) Hint() string   { return c.hint }
func (c *Control) Checked() bool  { return c.checked }
func (c *Control) Disabled() bool { return c.disabled }

// Values returns the configured accessible value strings.
func (c *Control) Values() ValueStrings { return c.values }

// Glyphs returns the configured indicator glyphs.
func (c *Control) Glyphs() GlyphPair { return c.glyphs }

// AccessibleLabel returns the explicit accessible name, falling back to the
// visible label.
func (c *Control) AccessibleLabel() string {
	if c.accessibleLabel != "" {
		return c.accessibleLabel
	}
	return c.label
}

// AccessibleValue returns the value string for the current state.
func (c *Control) AccessibleValue() string {
	return c.projection.Value
}

// Indicator returns the current visual rendering.
func (c *Control) Indicator() Indicator {
	return c.indicator
}

// Projection returns the current accessibility projection.
func (c *Control) Projection() Projection {
	return c.projection
}

// Semantics returns the control as a leaf node.
func (c *Control) Semantics() *Node {
	return NewNode(c.projection)
}
