package screen

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/antipattern"
	"github.com/goliatone/go-a11ycatalog/pkg/model"
)

// Build instantiates every component declared by def. Element ids come from
// the definition when set and are otherwise derived from labels; collisions
// get a numeric suffix.
func Build(def model.Screen, options ...Option) (*Screen, error) {
	s := &Screen{
		id:       strings.TrimSpace(def.ID),
		title:    strings.TrimSpace(def.Title),
		intro:    strings.TrimSpace(def.Intro),
		def:      def,
		logger:   slog.Default(),
		state:    newState(),
		targets:  make(map[string]target),
		claimed:  make(map[string]int),
		colors:   make(map[string]model.Colors),
		sections: make([]*Section, 0, len(def.Sections)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.id == "" {
		s.id = a11y.Slug(s.title)
	}
	if s.id == "" {
		return nil, fmt.Errorf("screen: definition has neither id nor title: %w", ErrInvalidItem)
	}
	s.claim(s.id)
	s.headingID = s.claim(s.id + "-heading")
	s.claim(s.IntroID())

	for sIdx, sectionDef := range def.Sections {
		section := &Section{
			ID:    s.claim(s.id + "-" + string(sectionDef.Kind)),
			Kind:  sectionDef.Kind,
			Title: sectionDef.DisplayTitle(),
		}
		section.HeadingID = s.claim(section.ID + "-heading")
		for eIdx, exampleDef := range sectionDef.Examples {
			example, err := s.buildExample(exampleDef)
			if err != nil {
				return nil, fmt.Errorf("screen: %s section %d example %d: %w", s.id, sIdx, eIdx, err)
			}
			section.Examples = append(section.Examples, example)
		}
		s.sections = append(s.sections, section)
	}

	// Exclusive groups may have switched members off during construction;
	// those changes are already in State and are not events.
	s.pending = nil
	s.logger.Debug("screen built", "screen", s.id, "sections", len(s.sections), "elements", len(s.order))
	return s, nil
}

// claim reserves id, suffixing it when already taken.
func (s *Screen) claim(id string) string {
	base := strings.TrimSpace(id)
	if base == "" {
		base = "element"
	}
	n := s.claimed[base]
	s.claimed[base] = n + 1
	if n == 0 {
		return base
	}
	for {
		n++
		candidate := base + "-" + strconv.Itoa(n)
		if _, taken := s.claimed[candidate]; !taken {
			s.claimed[candidate] = 1
			return candidate
		}
	}
}

func (s *Screen) register(id string, t target) {
	s.targets[id] = t
	s.order = append(s.order, id)
}

func (s *Screen) buildExample(def model.Example) (*Example, error) {
	title := strings.TrimSpace(def.Title)
	base := def.ID
	if strings.TrimSpace(base) == "" {
		base = a11y.Slug(title)
	}
	example := &Example{ID: s.claim(base), Title: title}
	example.Heading = a11y.NewHeading(s.claim(example.ID+"-title"), title)
	s.register(example.Heading.ID(), target{element: example.Heading})

	for idx, item := range def.Items {
		element, err := s.buildItem(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", idx, err)
		}
		example.Elements = append(example.Elements, element)
	}

	if def.Details != nil {
		details := def.Details
		panelID := details.ID
		if strings.TrimSpace(panelID) == "" {
			panelID = a11y.Slug(strings.TrimSpace(details.Hint + " " + details.DisplayTitle()))
		}
		panel := a11y.NewPanel(details.DisplayTitle(), details.Text, details.Hint, a11y.WithPanelID(s.claim(panelID)))
		s.watchPanel(panel.ID(), panel.OnToggle, func() string { return panel.Header().Announcement() })
		s.state.set(panel.ID(), panel.IsOpen())
		s.register(panel.ID(), target{element: panel, activate: panel.Activate, stateful: true})
		s.register(panel.DetailID(), target{element: panel})
		example.Details = panel
	}
	return example, nil
}

func (s *Screen) buildItem(item model.Item) (a11y.Element, error) {
	switch item.Kind() {
	case model.ItemText:
		text := a11y.NewText(s.claim(a11y.Slug(item.Text)+"-text"), item.Text)
		s.register(text.ID(), target{element: text})
		return text, nil
	case model.ItemHeading:
		heading := a11y.NewHeading(s.claim(a11y.Slug(item.Heading)+"-heading"), item.Heading)
		s.register(heading.ID(), target{element: heading})
		return heading, nil
	case model.ItemControl:
		return s.buildControl(*item.Control)
	case model.ItemGroup:
		return s.buildGroup(*item.Group)
	case model.ItemAntiPattern:
		return s.buildAntiPattern(*item.AntiPattern)
	default:
		return nil, fmt.Errorf("%w: expected exactly one of text, heading, control, group or antipattern, got %v", ErrInvalidItem, item.Kinds())
	}
}

func (s *Screen) newControl(def model.Control) (*a11y.Control, error) {
	kind := a11y.KindCheckbox
	if def.Kind != "" {
		kind = a11y.Kind(def.Kind)
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: control %q has unknown kind %q", ErrInvalidItem, def.Label, def.Kind)
		}
	}
	base := def.ID
	if strings.TrimSpace(base) == "" {
		label := def.AccessibleLabel
		if strings.TrimSpace(label) == "" {
			label = def.Label
		}
		base = a11y.Slug(label)
	}
	if strings.TrimSpace(base) == "" {
		base = string(kind)
	}

	opts := []a11y.ControlOption{
		a11y.WithID(s.claim(base)),
		a11y.WithKind(kind),
		a11y.WithAccessibleLabel(def.AccessibleLabel),
		a11y.WithHint(def.Hint),
	}
	if def.Values != nil {
		opts = append(opts, a11y.WithValueStrings(a11y.ValueStrings{On: def.Values.On, Off: def.Values.Off}))
	}
	if def.Glyphs != nil {
		opts = append(opts, a11y.WithGlyphs(a11y.GlyphPair{On: def.Glyphs.On, Off: def.Glyphs.Off}))
	}
	if def.Disabled {
		opts = append(opts, a11y.WithDisabled())
	}
	control := a11y.NewControl(def.Label, def.Checked, opts...)
	if def.Colors != nil {
		s.colors[control.ID()] = *def.Colors
	}
	s.state.set(control.ID(), control.Checked())
	s.watchChange(control.ID(), control.OnChange, func() string { return control.Projection().Announcement() })
	return control, nil
}

func (s *Screen) buildControl(def model.Control) (a11y.Element, error) {
	control, err := s.newControl(def)
	if err != nil {
		return nil, err
	}
	s.register(control.ID(), target{element: control, activate: control.Activate, set: control.SetChecked, stateful: true})
	return control, nil
}

func (s *Screen) buildGroup(def model.Group) (a11y.Element, error) {
	members := make([]*a11y.Control, 0, len(def.Members))
	for _, memberDef := range def.Members {
		member, err := s.newControl(memberDef)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	base := def.ID
	if strings.TrimSpace(base) == "" {
		base = a11y.Slug(def.Label)
	}
	opts := []a11y.GroupOption{a11y.WithGroupID(s.claim(base))}
	if def.Exclusive {
		opts = append(opts, a11y.WithExclusive())
	}
	group := a11y.NewGroup(def.Label, members, opts...)
	s.register(group.ID(), target{element: group})

	for idx, member := range group.Members() {
		t := target{element: member, activate: member.Activate, set: member.SetChecked, stateful: true}
		if group.Exclusive() {
			// Exactly one member stays on: tapping or setting a member selects
			// it, and switching the selection off is ignored.
			t.activate = func() { group.Select(idx) }
			t.set = func(on bool) {
				if on {
					group.Select(idx)
				}
			}
		}
		// Construction may have switched members off without callbacks.
		s.state.set(member.ID(), member.Checked())
		s.register(member.ID(), t)
	}
	return group, nil
}

func (s *Screen) buildAntiPattern(def model.AntiPattern) (a11y.Element, error) {
	base := def.ID
	if strings.TrimSpace(base) == "" {
		base = defaultAntiPatternID(def)
	}
	opts := []antipattern.Option{antipattern.WithID(s.claim(base))}

	switch def.Kind {
	case model.AntiPatternImageCheckbox:
		box := antipattern.NewImageCheckbox(def.Label, def.Checked, opts...)
		s.state.set(box.ID(), box.Checked())
		s.watchChange(box.ID(), box.OnChange, func() string { return box.Projection().Announcement() })
		s.register(box.ID(), target{element: box, activate: box.Activate, set: flipTo(box.Checked, box.Activate), stateful: true})
		return box, nil
	case model.AntiPatternUnlabeledSwitch:
		if def.VisibleValues != nil {
			opts = append(opts, antipattern.WithVisibleValues(def.VisibleValues.On, def.VisibleValues.Off))
		}
		sw := antipattern.NewUnlabeledSwitch(def.Label, def.Checked, opts...)
		s.state.set(sw.ID(), sw.Checked())
		s.watchChange(sw.ID(), sw.OnChange, func() string { return sw.Projection().Announcement() })
		s.register(sw.ID(), target{element: sw, activate: sw.Activate, set: flipTo(sw.Checked, sw.Activate), stateful: true})
		s.register(sw.CaptionID(), target{element: sw})
		return sw, nil
	case model.AntiPatternLooseGroup:
		members := make([]*a11y.Control, 0, len(def.Members))
		for _, memberDef := range def.Members {
			member, err := s.newControl(memberDef)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		}
		group := antipattern.NewLooseGroup(def.Label, members, opts...)
		s.register(group.ID(), target{element: group})
		s.register(group.CaptionID(), target{element: group})
		for _, member := range members {
			s.register(member.ID(), target{element: member, activate: member.Activate, set: member.SetChecked, stateful: true})
		}
		return group, nil
	case model.AntiPatternHiddenPanel:
		panel := antipattern.NewHiddenPanel(def.Title, def.Detail, def.Hint, opts...)
		s.state.set(panel.ID(), panel.IsOpen())
		s.watchPanel(panel.ID(), panel.OnToggle, func() string { return panel.Header().Announcement() })
		s.register(panel.ID(), target{element: panel, activate: panel.Activate, set: flipTo(panel.IsOpen, panel.Activate), stateful: true})
		s.register(panel.DetailID(), target{element: panel})
		return panel, nil
	default:
		return nil, fmt.Errorf("%w: unknown anti-pattern %q", ErrInvalidItem, def.Kind)
	}
}

func defaultAntiPatternID(def model.AntiPattern) string {
	switch def.Kind {
	case model.AntiPatternHiddenPanel:
		return a11y.Slug(strings.TrimSpace(def.Hint+" "+def.Title)) + "-hidden"
	case model.AntiPatternLooseGroup:
		return a11y.Slug(def.Label) + "-loose"
	case model.AntiPatternUnlabeledSwitch:
		return a11y.Slug(def.Label) + "-unlabeled"
	default:
		return a11y.Slug(def.Label) + "-image"
	}
}

// flipTo adapts a toggle-only element to an explicit setter.
func flipTo(current func() bool, toggle func()) func(bool) {
	return func(on bool) {
		if current() != on {
			toggle()
		}
	}
}

func (s *Screen) watchChange(id string, subscribe func(func(bool)), announce func() string) {
	subscribe(func(on bool) {
		s.record(Event{Screen: s.id, Element: id, Kind: EventChange, On: on, Announcement: announce()})
	})
}

func (s *Screen) watchPanel(id string, subscribe func(func(bool)), announce func() string) {
	subscribe(func(open bool) {
		s.record(Event{Screen: s.id, Element: id, Kind: EventToggle, On: open, Announcement: announce()})
	})
}
