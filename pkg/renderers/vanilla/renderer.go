package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
	"github.com/goliatone/go-a11ycatalog/pkg/render/markup"
	rendertemplate "github.com/goliatone/go-a11ycatalog/pkg/render/template"
	gotemplate "github.com/goliatone/go-a11ycatalog/pkg/render/template/gotemplate"
	"github.com/goliatone/go-a11ycatalog/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

const (
	// PagePartial is the theme partial key that overrides the page shell.
	PagePartial  = "catalog.page"
	PanelPartial = components.PanelPartial
	pageTemplate = "templates/page.tmpl"
)

// DefaultPartials maps every theme partial key to the bundled template it
// falls back to.
func DefaultPartials() map[string]string {
	return map[string]string{
		PagePartial:  pageTemplate,
		PanelPartial: components.PanelTemplate,
	}
}

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	components       *components.Registry
	markup           *markup.Renderer
	assetBase        string
	translator       render.Translator
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry replaces the built-in component registry.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.components = registry
		}
	}
}

// WithMarkup replaces the Markdown renderer used for intro and detail text.
func WithMarkup(renderer *markup.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.markup = renderer
		}
	}
}

// WithTranslator sets the translator used when RenderOptions carries none.
// It also backs the translate helper in theme partials rendered outside the
// page, such as the panel template.
func WithTranslator(t render.Translator) Option {
	return func(cfg *config) {
		cfg.translator = t
	}
}

// WithAssetBase sets the URL prefix the embedded assets are served under.
// Defaults to "/runtime/".
func WithAssetBase(prefix string) Option {
	return func(cfg *config) {
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			return
		}
		if !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		cfg.assetBase = prefix
	}
}

// Renderer produces a standalone HTML page whose ARIA attributes mirror the
// live component state.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	components *components.Registry
	markup     *markup.Renderer
	assetBase  string
	translator render.Translator
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		assetBase:  "/runtime/",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.components == nil {
		cfg.components = components.NewDefaultRegistry()
	}
	if cfg.markup == nil {
		cfg.markup = markup.New()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithSetName("vanilla"),
			gotemplate.WithTemplateFunc(render.TemplateI18nFuncs(cfg.translator, render.TemplateI18nConfig{})),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:  renderer,
		components: cfg.components,
		markup:     cfg.markup,
		assetBase:  cfg.assetBase,
		translator: cfg.translator,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render snapshots s under its lock and renders the page shell.
func (r *Renderer) Render(ctx context.Context, s *screen.Screen, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if s == nil {
		return nil, fmt.Errorf("vanilla renderer: screen is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Translator == nil {
		opts.Translator = r.translator
	}

	var (
		page pageView
		err  error
	)
	s.Read(func() {
		page, err = r.buildPage(s, opts)
	})
	if err != nil {
		return nil, err
	}

	var partials map[string]string
	if opts.Theme != nil {
		partials = opts.Theme.Partials
	}
	// The page helpers follow this render's translator, shadowing the
	// engine-wide ones.
	data := map[string]any{"page": page}
	for name, fn := range render.TemplateI18nFuncs(opts.Translator, render.TemplateI18nConfig{OnMissing: opts.OnMissing}) {
		data[name] = fn
	}
	result, err := rendertemplate.RenderPartial(r.templates, partials, PagePartial, pageTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) buildPage(s *screen.Screen, opts render.RenderOptions) (pageView, error) {
	index := render.IndexFindings(s, opts.Findings)
	data := components.ComponentData{
		Template: r.templates,
		Markup:   r.markup,
		Options:  opts,
		ScreenID: s.ID(),
		Findings: index,
		Colors:   s.Colors,
	}
	if opts.Theme != nil {
		data.ThemePartials = opts.Theme.Partials
	}

	lang := strings.TrimSpace(opts.Locale)
	if lang == "" {
		lang = "en"
	}
	page := pageView{
		Lang:          lang,
		Title:         s.Title(),
		CatalogTitle:  opts.CatalogTitle,
		ScreenID:      s.ID(),
		HeadingID:     s.HeadingID(),
		IntroID:       s.IntroID(),
		IntroHTML:     r.markup.String(s.Intro()),
		Findings:      index.Screen,
		FindingsCount: index.Len(),
		Nav:           opts.Nav,
		Theme:         render.BuildThemeContext(opts.Theme),
	}
	used := make([]string, 0, 16)
	for _, section := range render.ApplySubset(s, opts.Subset) {
		view := sectionView{
			ID:        section.ID,
			Kind:      string(section.Kind),
			HeadingID: section.HeadingID,
			Title:     render.SectionTitle(opts, string(section.Kind), section.Title),
		}
		for _, example := range section.Examples {
			body, names, err := r.renderExample(example, data)
			if err != nil {
				return pageView{}, fmt.Errorf("vanilla renderer: example %q: %w", example.ID, err)
			}
			used = append(used, names...)
			view.Examples = append(view.Examples, exampleView{
				ID:        example.ID,
				HeadingID: example.Heading.ID(),
				Title:     example.Title,
				Body:      body,
			})
		}
		page.Sections = append(page.Sections, view)
	}

	stylesheets, scripts := r.components.Assets(used)
	page.Stylesheets = append([]string{render.ThemeAsset(opts.Theme, "stylesheet", r.assetBase+StylesheetName)}, r.resolveAll(stylesheets)...)
	for _, script := range scripts {
		src := script.Src
		if src == components.RuntimeScript {
			src = render.ThemeAsset(opts.Theme, "script", r.assetBase+src)
		} else if src != "" {
			src = r.resolve(src)
		}
		page.Scripts = append(page.Scripts, scriptView{Src: src, Defer: script.Defer, Module: script.Module})
	}
	return page, nil
}

func (r *Renderer) renderExample(example *screen.Example, data components.ComponentData) (string, []string, error) {
	var (
		buf   bytes.Buffer
		names []string
	)
	elements := append([]a11y.Element(nil), example.Elements...)
	if example.Details != nil {
		elements = append(elements, example.Details)
	}
	for _, element := range elements {
		name, err := r.components.Render(&buf, element, data)
		if err != nil {
			return "", nil, err
		}
		buf.WriteByte('\n')
		names = append(names, name)
	}
	return buf.String(), names, nil
}

func (r *Renderer) resolveAll(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		out = append(out, r.resolve(path))
	}
	return out
}

func (r *Renderer) resolve(path string) string {
	if strings.HasPrefix(path, "/") || strings.Contains(path, "://") {
		return path
	}
	return r.assetBase + path
}

type pageView struct {
	Lang          string              `json:"lang"`
	Title         string              `json:"title"`
	CatalogTitle  string              `json:"catalog_title,omitempty"`
	ScreenID      string              `json:"screen_id"`
	HeadingID     string              `json:"heading_id"`
	IntroID       string              `json:"intro_id"`
	IntroHTML     string              `json:"intro_html,omitempty"`
	Findings      []string            `json:"findings,omitempty"`
	FindingsCount int                 `json:"findings_count"`
	Nav           []render.NavItem    `json:"nav,omitempty"`
	Sections      []sectionView       `json:"sections"`
	Stylesheets   []string            `json:"stylesheets"`
	Scripts       []scriptView        `json:"scripts,omitempty"`
	Theme         render.ThemeContext `json:"theme"`
}

type sectionView struct {
	ID        string        `json:"id"`
	Kind      string        `json:"kind"`
	HeadingID string        `json:"heading_id"`
	Title     string        `json:"title"`
	Examples  []exampleView `json:"examples"`
}

type exampleView struct {
	ID        string `json:"id"`
	HeadingID string `json:"heading_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

type scriptView struct {
	Src    string `json:"src"`
	Defer  bool   `json:"defer"`
	Module bool   `json:"module"`
}
