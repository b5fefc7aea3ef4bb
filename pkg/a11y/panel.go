package a11y

import "strings"

const (
	GlyphCollapsed = "chevron.right"
	GlyphExpanded  = "chevron.down"
)

// PanelState is the glyph state shown on a panel header.
type PanelState string

const (
	PanelCollapsed PanelState = "collapsed"
	PanelExpanded  PanelState = "expanded"
)

// PanelOption customises a Panel at construction.
type PanelOption func(*Panel)

// WithPanelID overrides the id derived from the hint or title.
func WithPanelID(id string) PanelOption {
	return func(p *Panel) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			p.id = trimmed
		}
	}
}

// WithToggleObserver registers a toggle callback at construction.
func WithToggleObserver(fn func(bool)) PanelOption {
	return func(p *Panel) {
		if fn != nil {
			p.observers = append(p.observers, fn)
		}
	}
}

// Panel is a disclosure header that shows and hides a detail region. It
// always starts closed.
type Panel struct {
	id     string
	title  string
	detail string
	hint   string

	open      bool
	state     PanelState
	glyph     string
	header    Projection
	region    Projection
	observers []func(bool)
}

var (
	_ Element   = (*Panel)(nil)
	_ Activator = (*Panel)(nil)
)

// NewPanel builds a closed panel. The hint tells apart panels that share a
// title such as "Details".
func NewPanel(title, detail, hint string, options ...PanelOption) *Panel {
	p := &Panel{
		title:  strings.TrimSpace(title),
		detail: strings.TrimSpace(detail),
		hint:   strings.TrimSpace(hint),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.id == "" {
		p.id = Slug(strings.TrimSpace(p.hint + " " + p.title))
	}
	if p.id == "" {
		p.id = "panel"
	}
	p.sync(false)
	return p
}

// Toggle opens a closed panel or closes an open one, then notifies observers.
func (p *Panel) Toggle() {
	p.sync(!p.open)
	observers := append([]func(bool){}, p.observers...)
	open := p.open
	for _, fn := range observers {
		fn(open)
	}
}

// Activate handles a tap on the header.
func (p *Panel) Activate() {
	p.Toggle()
}

// OnToggle registers a callback invoked with the new open state.
func (p *Panel) OnToggle(fn func(bool)) {
	if fn == nil {
		return
	}
	p.observers = append(p.observers, fn)
}

func (p *Panel) sync(open bool) {
	p.open = open
	if open {
		p.state, p.glyph = PanelExpanded, GlyphExpanded
	} else {
		p.state, p.glyph = PanelCollapsed, GlyphCollapsed
	}
	p.header = Projection{
		ID:    p.id,
		Label: p.title,
		Hint:  p.hint,
		Role:  RoleButton,
		Flags: (FlagFocusable | FlagEnabled | FlagToggles | FlagHasExpandedState).With(FlagExpanded, open),
	}
	p.region = Projection{
		ID:    p.DetailID(),
		Label: p.detail,
		Role:  RoleText,
		Flags: FlagFocusable.With(FlagHidden|FlagInvisible, !open),
	}
}

func (p *Panel) ID() string          { return p.id }
func (p *Panel) Title() string       { return p.title }
func (p *Panel) Detail() string      { return p.detail }
func (p *Panel) Hint() string        { return p.hint }
func (p *Panel) IsOpen() bool        { return p.open }
func (p *Panel) Glyph() string       { return p.glyph }
func (p *Panel) State() PanelState   { return p.state }
func (p *Panel) DetailVisible() bool { return !p.region.Hidden() }

// DetailID is the id of the detail region node.
func (p *Panel) DetailID() string {
	return p.id + "-detail"
}

// Header returns the projection of the header button.
func (p *Panel) Header() Projection {
	return p.header
}

// Region returns the projection of the detail region.
func (p *Panel) Region() Projection {
	return p.region
}

// Semantics returns a non-focusable container holding the header and the
// detail region.
func (p *Panel) Semantics() *Node {
	return NewNode(Projection{ID: p.id + "-panel"}, NewNode(p.header), NewNode(p.region))
}
