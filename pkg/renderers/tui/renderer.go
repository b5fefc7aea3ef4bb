package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

const (
	menuRead = "Read the whole screen"
	menuSet  = "Set several states…"
	menuJump = "Go to element by id…"
	menuDone = "Done"
)

// Renderer implements render.Renderer as an interactive screen reader
// simulation: the user moves through the traversal order, taps elements and
// hears the resulting announcements. The returned bytes are the transcript.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	transformer  TranscriptTransformer
	theme        Theme
	maxSteps     int
}

var (
	_ render.Renderer         = (*Renderer)(nil)
	_ render.FormatNegotiator = (*Renderer)(nil)
)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       NewSurveyDriver(nil),
		outputFormat: OutputFormatJSON,
		theme:        DefaultTheme(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return r.ContentTypeFor(string(r.outputFormat))
}

// ContentTypeFor maps an output format to its media type.
func (r *Renderer) ContentTypeFor(format string) string {
	switch OutputFormat(format) {
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	case OutputFormatJSON:
		return "application/json"
	default:
		return ""
	}
}

// Render runs the exploration loop until the user picks Done.
func (r *Renderer) Render(ctx context.Context, s *screen.Screen, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.New("tui: screen is nil")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	format := r.outputFormat
	if opts.Format != "" {
		format = OutputFormat(opts.Format)
		if r.ContentTypeFor(opts.Format) == "" {
			return nil, fmt.Errorf("tui: unsupported output format %q", opts.Format)
		}
	}

	transcript := NewTranscript(s)
	if err := r.intro(ctx, s, opts); err != nil {
		return nil, err
	}

	for prompts := 0; ; prompts++ {
		if r.maxSteps > 0 && prompts >= r.maxSteps {
			return nil, ErrStepLimit
		}
		done, err := r.step(ctx, s, opts, transcript)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	tree := render.SubsetTree(s, opts.Subset)
	transcript.State = render.FilterState(s.State(), tree)
	transcript.Announcements = screen.Announce(a11y.TraverseStops(tree))

	if r.transformer != nil {
		if err := r.transformer(transcript); err != nil {
			return nil, fmt.Errorf("tui: transcript transformer: %w", err)
		}
	}
	return r.serialize(transcript, format)
}

func (r *Renderer) intro(ctx context.Context, s *screen.Screen, opts render.RenderOptions) error {
	if err := r.driver.Info(ctx, r.theme.Title.Render(s.Title())); err != nil {
		return err
	}
	if intro := strings.TrimSpace(s.Intro()); intro != "" {
		if err := r.driver.Info(ctx, r.theme.Muted.Render(intro)); err != nil {
			return err
		}
	}
	if n := len(opts.Findings); n > 0 {
		return r.info(ctx, r.theme.ErrorPrefix, render.Translate(opts, render.KeyFindings, n))
	}
	return nil
}

// step shows the menu once and performs the chosen action.
func (r *Renderer) step(ctx context.Context, s *screen.Screen, opts render.RenderOptions, transcript *Transcript) (bool, error) {
	tree := render.SubsetTree(s, opts.Subset)
	stops := a11y.TraverseStops(tree)
	spoken := screen.Announce(stops)

	menu := make([]string, 0, len(stops)+4)
	for i, text := range spoken {
		menu = append(menu, fmt.Sprintf("%d. %s", i+1, text))
	}
	menu = append(menu, menuRead, menuSet, menuJump, menuDone)

	choice, err := r.driver.Select(ctx, SelectConfig{
		Message:  r.theme.PromptPrefix + s.Title(),
		Options:  menu,
		Help:     "Pick an element to focus or activate it.",
		PageSize: 12,
	})
	if err != nil {
		return false, err
	}

	switch {
	case choice >= 0 && choice < len(stops):
		return false, r.activate(ctx, s, stops[choice].Projection, spoken[choice], transcript)
	case choice == len(stops):
		for _, text := range spoken {
			if err := r.info(ctx, r.theme.InfoPrefix, text); err != nil {
				return false, err
			}
		}
		transcript.add(Step{Action: ActionRead})
		return false, nil
	case choice == len(stops)+1:
		return false, r.setStates(ctx, s, tree, transcript)
	case choice == len(stops)+2:
		return false, r.jump(ctx, s, tree, transcript)
	case choice == len(stops)+3:
		return true, nil
	default:
		return false, fmt.Errorf("tui: invalid menu selection %d", choice)
	}
}

// activate taps interactive elements and otherwise just announces them.
func (r *Renderer) activate(ctx context.Context, s *screen.Screen, p a11y.Projection, spoken string, transcript *Transcript) error {
	if !s.Interactive(p.ID) {
		transcript.add(Step{Action: ActionFocus, Element: p.ID, Announcement: spoken})
		return r.info(ctx, r.theme.InfoPrefix, spoken)
	}
	if !p.Flags.Has(a11y.FlagEnabled) {
		transcript.add(Step{Action: ActionFocus, Element: p.ID, Announcement: spoken})
		return r.info(ctx, r.theme.ErrorPrefix, spoken)
	}

	events, err := s.Tap(p.ID)
	if err != nil {
		return err
	}
	step := Step{Action: ActionTap, Element: p.ID, Events: events}
	if len(events) == 0 {
		step.Announcement = spoken
	} else {
		step.Announcement = events[0].Announcement
	}
	transcript.add(step)
	return r.announceEvents(ctx, events, step.Announcement)
}

// setStates lets the user pick every stateful element that should be on.
func (r *Renderer) setStates(ctx context.Context, s *screen.Screen, tree *a11y.Node, transcript *Transcript) error {
	state := render.FilterState(s.State(), tree)
	ids := make([]string, 0, len(state))
	for id := range state {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) == 0 {
		return r.info(ctx, r.theme.InfoPrefix, "Nothing on this screen has a state.")
	}

	labels := make([]string, len(ids))
	var defaults []int
	for i, id := range ids {
		labels[i] = id
		if node := tree.Find(id); node != nil && node.Label != "" {
			labels[i] = fmt.Sprintf("%s (%s)", node.Label, id)
		}
		if state[id] {
			defaults = append(defaults, i)
		}
	}

	picked, err := r.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Which elements should be on?",
		Options:  labels,
		Defaults: defaults,
		PageSize: 12,
	})
	if err != nil {
		return err
	}
	want := make(map[string]bool, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(ids) {
			want[ids[idx]] = true
		}
	}

	for _, id := range ids {
		if !s.Interactive(id) {
			continue
		}
		events, err := s.Set(id, want[id])
		if err != nil {
			return err
		}
		if len(events) == 0 {
			continue
		}
		transcript.add(Step{Action: ActionSet, Element: id, Announcement: events[0].Announcement, Events: events})
		if err := r.announceEvents(ctx, events, ""); err != nil {
			return err
		}
	}
	return nil
}

// jump focuses an element by id, offering to activate it when possible.
func (r *Renderer) jump(ctx context.Context, s *screen.Screen, tree *a11y.Node, transcript *Transcript) error {
	id, err := r.driver.Input(ctx, InputConfig{
		Message: "Element id",
		Help:    "Any id shown in the semantics tree, e.g. accept-terms.",
		Validator: func(value string) error {
			if tree.Find(strings.TrimSpace(value)) == nil {
				return fmt.Errorf("no element %q on this screen", value)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	node := tree.Find(id)
	if node == nil {
		return r.info(ctx, r.theme.ErrorPrefix, fmt.Sprintf("No element %q on this screen.", id))
	}

	spoken := node.Announcement()
	transcript.add(Step{Action: ActionJump, Element: id, Announcement: spoken})
	if err := r.info(ctx, r.theme.InfoPrefix, spoken); err != nil {
		return err
	}
	if !s.Interactive(id) || !node.Flags.Has(a11y.FlagEnabled) {
		return nil
	}

	tap, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Activate " + nonEmpty(node.Label, id) + "?"})
	if err != nil || !tap {
		return err
	}
	return r.activate(ctx, s, node.Projection, spoken, transcript)
}

func (r *Renderer) announceEvents(ctx context.Context, events []screen.Event, fallback string) error {
	if len(events) == 0 {
		return r.info(ctx, r.theme.InfoPrefix, fallback)
	}
	for _, event := range events {
		if event.Announcement == "" {
			continue
		}
		if err := r.info(ctx, r.theme.InfoPrefix, event.Announcement); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) info(ctx context.Context, prefix, msg string) error {
	if strings.TrimSpace(msg) == "" {
		return nil
	}
	return r.driver.Info(ctx, prefix+msg)
}

func (r *Renderer) serialize(t *Transcript, format OutputFormat) ([]byte, error) {
	switch format {
	case OutputFormatPrettyText:
		return []byte(r.prettyPrint(t)), nil
	default:
		return jsonBytes(t)
	}
}

func (r *Renderer) prettyPrint(t *Transcript) string {
	var b strings.Builder
	b.WriteString(r.theme.Title.Render(t.Title))
	b.WriteByte('\n')

	if len(t.Steps) > 0 {
		b.WriteString(r.theme.Heading.Render("Steps"))
		b.WriteByte('\n')
		for i, step := range t.Steps {
			fmt.Fprintf(&b, "%d. %s", i+1, step.Action)
			if step.Element != "" {
				fmt.Fprintf(&b, " %s", step.Element)
			}
			if step.Announcement != "" {
				fmt.Fprintf(&b, ": %s", r.theme.Muted.Render(step.Announcement))
			}
			b.WriteByte('\n')
		}
	}

	if len(t.State) > 0 {
		b.WriteString(r.theme.Heading.Render("State"))
		b.WriteByte('\n')
		ids := make([]string, 0, len(t.State))
		for id := range t.State {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			value := r.theme.Off.Render("off")
			if t.State[id] {
				value = r.theme.On.Render("on")
			}
			fmt.Fprintf(&b, "%s = %s\n", id, value)
		}
	}
	return b.String()
}

func jsonBytes(t *Transcript) ([]byte, error) {
	payload, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui: marshal transcript: %w", err)
	}
	return payload, nil
}

func nonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
