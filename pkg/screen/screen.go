package screen

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/model"
)

// Section is the good or bad half of a screen.
type Section struct {
	ID        string
	HeadingID string
	Kind      model.SectionKind
	Title     string
	Examples  []*Example
}

// Example is one titled demonstration: its elements in display order and the
// Details panel explaining it.
type Example struct {
	ID       string
	Title    string
	Heading  *a11y.Text
	Elements []a11y.Element
	Details  *a11y.Panel
}

// Semantics nests the example heading, elements and details under one
// unnamed container.
func (e *Example) Semantics() *a11y.Node {
	children := make([]*a11y.Node, 0, len(e.Elements)+2)
	children = append(children, e.Heading.Semantics())
	for _, element := range e.Elements {
		children = append(children, element.Semantics())
	}
	if e.Details != nil {
		children = append(children, e.Details.Semantics())
	}
	return a11y.NewNode(a11y.Projection{ID: e.ID}, children...)
}

type target struct {
	element  a11y.Element
	activate func()
	set      func(bool)
	stateful bool
}

// Screen is a live topic page.
type Screen struct {
	mu sync.Mutex

	id        string
	headingID string
	title     string
	intro     string
	def       model.Screen
	sections  []*Section

	targets map[string]target
	order   []string
	claimed map[string]int
	colors  map[string]model.Colors

	state     *State
	pending   []Event
	listeners []func(Event)
	logger    *slog.Logger
}

func (s *Screen) ID() string        { return s.id }
func (s *Screen) Title() string     { return s.title }
func (s *Screen) Intro() string     { return s.intro }
func (s *Screen) HeadingID() string { return s.headingID }

// Definition returns the model the screen was built from.
func (s *Screen) Definition() model.Screen {
	return s.def
}

// Sections returns the sections in display order.
func (s *Screen) Sections() []*Section {
	return append([]*Section(nil), s.sections...)
}

// IntroID is the id of the intro paragraph node.
func (s *Screen) IntroID() string {
	return s.id + "-intro"
}

// Colors returns the declared custom colours of a control.
func (s *Screen) Colors(id string) (model.Colors, bool) {
	colors, ok := s.colors[id]
	return colors, ok
}

// Element returns the element that owns id. Sub-node ids such as a panel's
// detail region resolve to the owning element.
func (s *Screen) Element(id string) (a11y.Element, bool) {
	t, ok := s.targets[id]
	if !ok {
		return nil, false
	}
	return t.element, true
}

// ElementIDs lists every addressable id in build order.
func (s *Screen) ElementIDs() []string {
	return append([]string(nil), s.order...)
}

// Interactive reports whether id can be tapped.
func (s *Screen) Interactive(id string) bool {
	t, ok := s.targets[id]
	return ok && t.activate != nil
}

// Subscribe registers fn for every future Event.
func (s *Screen) Subscribe(fn func(Event)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Tap activates the element with the given id, the way a click or a double
// tap with a screen reader would.
func (s *Screen) Tap(id string) ([]Event, error) {
	return s.apply(id, "tap", func(t target) { t.activate() })
}

// Set forces a stateful element on or off. Setting the current state is a
// no-op that produces no events, as is switching off the selected member of
// an exclusive group.
func (s *Screen) Set(id string, on bool) ([]Event, error) {
	return s.apply(id, "set", func(t target) {
		if t.set != nil {
			t.set(on)
			return
		}
		if current, _ := s.state.Get(id); current != on {
			t.activate()
		}
	})
}

func (s *Screen) apply(id, action string, fn func(target)) ([]Event, error) {
	s.mu.Lock()
	t, ok := s.targets[id]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("screen: %s %q on %s: %w", action, id, s.id, ErrUnknownElement)
	}
	if t.activate == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("screen: %s %q on %s: %w", action, id, s.id, ErrNotInteractive)
	}
	fn(t)
	events := s.pending
	s.pending = nil
	listeners := append([]func(Event){}, s.listeners...)
	s.mu.Unlock()

	s.logger.Debug("screen "+action, "screen", s.id, "element", id, "events", len(events))
	for _, event := range events {
		for _, listener := range listeners {
			listener(event)
		}
	}
	return events, nil
}

// record runs inside component callbacks, which fire either during Build or
// while apply holds the lock.
func (s *Screen) record(event Event) {
	s.state.set(event.Element, event.On)
	s.pending = append(s.pending, event)
}

// State returns a snapshot of every stateful element.
func (s *Screen) State() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Values()
}

// Checked returns the recorded state of a stateful element.
func (s *Screen) Checked(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.targets[id]
	if !ok {
		return false, fmt.Errorf("screen: state %q on %s: %w", id, s.id, ErrUnknownElement)
	}
	if !t.stateful {
		return false, fmt.Errorf("screen: state %q on %s: %w", id, s.id, ErrNotInteractive)
	}
	on, _ := s.state.Get(id)
	return on, nil
}

// Tree returns the semantics tree: the screen title and intro, then one
// container per section holding its heading and one container per example.
func (s *Screen) Tree() *a11y.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree()
}

func (s *Screen) tree() *a11y.Node {
	children := []*a11y.Node{a11y.NewHeading(s.headingID, s.title).Semantics()}
	if s.intro != "" {
		children = append(children, a11y.NewText(s.IntroID(), s.intro).Semantics())
	}
	for _, section := range s.sections {
		children = append(children, section.semantics())
	}
	return a11y.NewNode(a11y.Projection{ID: s.id, Label: s.title}, children...)
}

func (sec *Section) semantics() *a11y.Node {
	children := []*a11y.Node{a11y.NewHeading(sec.HeadingID, sec.Title).Semantics()}
	for _, example := range sec.Examples {
		children = append(children, example.Semantics())
	}
	return a11y.NewNode(a11y.Projection{ID: sec.ID}, children...)
}

// Traversal returns the sequential screen reader order with group context.
func (s *Screen) Traversal() []a11y.Stop {
	return a11y.TraverseStops(s.Tree())
}

// Announcements renders each traversal stop as a screen reader would speak
// it.
func (s *Screen) Announcements() []string {
	return Announce(s.Traversal())
}

// Announce speaks stops in order. The group label is prefixed when focus
// first enters a group.
func Announce(stops []a11y.Stop) []string {
	out := make([]string, 0, len(stops))
	previous := ""
	for _, stop := range stops {
		text := stop.Announcement()
		if stop.Group != "" && stop.Group != previous {
			text = stop.Group + ", group, " + text
		}
		previous = stop.Group
		out = append(out, text)
	}
	return out
}

// Read runs fn while taps are blocked, so renderers walking the components
// observe one consistent state. fn must not call other Screen methods that
// lock, such as Tap, Tree or Audit.
func (s *Screen) Read(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}
