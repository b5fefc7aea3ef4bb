package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-a11ycatalog/pkg/catalog"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
	"github.com/goliatone/go-a11ycatalog/pkg/renderers/semantic"
	"github.com/goliatone/go-a11ycatalog/pkg/renderers/vanilla"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
	"github.com/goliatone/go-a11ycatalog/pkg/theming"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithCatalog injects the screen catalog. Defaults to the embedded one.
func WithCatalog(store *catalog.Store) Option {
	return func(o *Orchestrator) {
		o.catalog = store
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector resolves theme/variant choices ahead of rendering. Pass
// nil to disable the embedded themes.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
		o.themeSpecified = true
	}
}

// WithThemeFallbacks sets partials used when the selected theme does not
// provide them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// WithTransformer registers a Transformer that can rewrite screen
// definitions before their components are built.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithScreenOptions forwards options to every screen.Build call.
func WithScreenOptions(options ...screen.Option) Option {
	return func(o *Orchestrator) {
		o.screenOptions = append(o.screenOptions, options...)
	}
}

// WithNavigation fills RenderOptions.Nav and CatalogTitle from the catalog.
// href maps a screen id to its link; nil uses "/screens/{id}".
func WithNavigation(href func(id string) string) Option {
	return func(o *Orchestrator) {
		o.navigation = true
		o.navHref = href
	}
}

// WithAutoAudit attaches screen audit findings to every render that does
// not already carry findings.
func WithAutoAudit() Option {
	return func(o *Orchestrator) {
		o.autoAudit = true
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the full pipeline from catalog entry to rendered
// output. It applies sensible defaults (embedded catalog and themes, vanilla
// and semantic renderers) while remaining open to dependency injection.
type Orchestrator struct {
	catalog         *catalog.Store
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	themeSpecified  bool
	themeFallbacks  map[string]string
	transformer     Transformer
	screenOptions   []screen.Option
	navigation      bool
	navHref         func(string) string
	autoAudit       bool
	logger          *slog.Logger
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes what to render.
type Request struct {
	// ScreenID selects the catalog screen. Ignored when Screen is set.
	ScreenID string

	// Screen renders an existing live screen, such as a server session,
	// instead of building a fresh one.
	Screen *screen.Screen

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant pick the theme; blanks use the selector
	// defaults. Ignored when RenderOptions.Theme is already set.
	ThemeName    string
	ThemeVariant string

	// Taps are replayed, in order, before rendering.
	Taps []string

	// Audit attaches the screen audit findings to the render.
	Audit bool

	// RenderOptions carries per-request instructions such as locale, subset
	// or tap form wiring.
	RenderOptions render.RenderOptions
}

// Result is a rendered screen with the metadata callers need to serve it.
type Result struct {
	Screen      *screen.Screen
	Renderer    string
	ContentType string
	Output      []byte
	Findings    []screen.Finding
}

// Generate renders the requested screen and returns the bytes (HTML for the
// default vanilla renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Render executes the screen → taps → theme → renderer sequence.
func (o *Orchestrator) Render(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.ready(); err != nil {
		return Result{}, err
	}

	s := req.Screen
	if s == nil {
		if strings.TrimSpace(req.ScreenID) == "" {
			return Result{}, errors.New("orchestrator: screen id is required")
		}
		var err error
		s, err = o.Screen(ctx, req.ScreenID)
		if err != nil {
			return Result{}, err
		}
	}

	for _, id := range req.Taps {
		if _, err := s.Tap(id); err != nil {
			return Result{}, fmt.Errorf("orchestrator: replay taps: %w", err)
		}
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil {
		cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return Result{}, err
		}
		opts.Theme = cfg
	}
	if opts.Findings == nil && (req.Audit || o.autoAudit) {
		findings, err := s.Audit()
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: audit screen: %w", err)
		}
		opts.Findings = findings
	}
	if o.navigation {
		if opts.Nav == nil {
			opts.Nav = o.Nav(s.ID())
		}
		if opts.CatalogTitle == "" {
			opts.CatalogTitle = o.catalog.Catalog().Title
		}
	}

	output, err := renderer.Render(ctx, s, opts)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	o.logger.Debug("screen rendered", "screen", s.ID(), "renderer", renderer.Name(), "bytes", len(output), "taps", len(req.Taps))

	return Result{
		Screen:      s,
		Renderer:    renderer.Name(),
		ContentType: render.ContentTypeFor(renderer, opts.Format),
		Output:      output,
		Findings:    opts.Findings,
	}, nil
}

// Screen builds a fresh live screen from the catalog.
func (o *Orchestrator) Screen(ctx context.Context, id string) (*screen.Screen, error) {
	if err := o.ready(); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	def, ok := o.catalog.Screen(id)
	if !ok {
		return nil, &NotFoundError{ID: id, Suggestion: o.catalog.Suggest(id)}
	}
	if o.transformer != nil {
		cloned, err := cloneScreen(def)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: copy screen %q: %w", id, err)
		}
		if err := o.transformer.Transform(ctx, &cloned); err != nil {
			return nil, fmt.Errorf("orchestrator: transform screen %q: %w", id, err)
		}
		def = cloned
	}

	options := append([]screen.Option{screen.WithLogger(o.logger)}, o.screenOptions...)
	s, err := screen.Build(def, options...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build screen %q: %w", id, err)
	}
	return s, nil
}

// Nav lists every catalog screen, marking current.
func (o *Orchestrator) Nav(current string) []render.NavItem {
	href := o.navHref
	if href == nil {
		href = func(id string) string { return "/screens/" + id }
	}
	summaries := o.catalog.Summaries()
	out := make([]render.NavItem, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, render.NavItem{
			ID:      summary.ID,
			Title:   summary.Title,
			Href:    href(summary.ID),
			Current: summary.ID == current,
		})
	}
	return out
}

// Catalog exposes the configured catalog, loading the embedded one when
// none was given. It is nil only if that load failed.
func (o *Orchestrator) Catalog() *catalog.Store {
	_ = o.ready()
	return o.catalog
}

// Registry exposes the configured renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) ready() error {
	if err := o.initialiseErr; err != nil {
		return err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		return o.initialiseErr
	}
	return nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return theming.RendererConfig(selection, o.themeFallbacks), nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}
	o.defaultsApplied = true

	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.catalog == nil {
		store, err := catalog.Default()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load catalog: %w", err)
			return
		}
		o.catalog = store
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
		o.registry.MustRegister(semantic.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.themeFallbacks == nil {
		o.themeFallbacks = vanilla.DefaultPartials()
	}
	if !o.themeSpecified {
		selector, err := theming.Default()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load themes: %w", err)
			return
		}
		o.themeSelector = selector
	}
}
