package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-a11ycatalog/pkg/render"
	"github.com/goliatone/go-a11ycatalog/pkg/renderers/vanilla"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
	"github.com/goliatone/go-a11ycatalog/pkg/testsupport"
)

type captureRenderer struct {
	options render.RenderOptions
	screen  *screen.Screen
}

func (r *captureRenderer) Name() string {
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, s *screen.Screen, opts render.RenderOptions) ([]byte, error) {
	r.options = opts
	r.screen = s
	return []byte(s.ID()), nil
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func newCaptureOrchestrator(options ...Option) (*Orchestrator, *captureRenderer) {
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)
	base := []Option{
		WithCatalog(nil),
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
	}
	return New(append(base, options...)...), renderer
}

func TestOrchestrator_GenerateDefaults(t *testing.T) {
	orch := New()
	out, err := orch.Generate(testsupport.Context(), Request{ScreenID: "checkboxes"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	doc := testsupport.MustParseHTML(t, out)
	if got := testsupport.MustAttr(t, doc, "body", "data-theme"); got != "catalog" {
		t.Fatalf("embedded theme not applied, got %q", got)
	}
	if got := testsupport.MustAttr(t, doc, "#accept-terms", "aria-checked"); got != "false" {
		t.Fatalf("unexpected initial state %q", got)
	}
	if diff := cmp.Diff([]string{"semantic", "vanilla"}, orch.Registry().List()); diff != "" {
		t.Fatalf("default renderers mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_ReplaysTapsAndReportsContentType(t *testing.T) {
	orch := New()
	result, err := orch.Render(testsupport.Context(), Request{
		ScreenID:      "checkboxes",
		Renderer:      "semantic",
		Taps:          []string{"accept-terms", "email"},
		RenderOptions: render.RenderOptions{Format: "yaml"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result.ContentType != "application/yaml" {
		t.Fatalf("unexpected content type %q", result.ContentType)
	}
	if !strings.Contains(string(result.Output), "Accept Terms, Checked, checkbox") {
		t.Fatalf("taps not replayed:\n%s", result.Output)
	}
	if on, _ := result.Screen.Checked("email"); !on {
		t.Fatalf("expected email on")
	}

	if _, err := orch.Render(testsupport.Context(), Request{ScreenID: "checkboxes", Taps: []string{"nope"}}); !errors.Is(err, screen.ErrUnknownElement) {
		t.Fatalf("expected ErrUnknownElement, got %v", err)
	}
}

func TestOrchestrator_ScreenNotFoundSuggests(t *testing.T) {
	orch, _ := newCaptureOrchestrator()
	_, err := orch.Generate(testsupport.Context(), Request{ScreenID: "chekboxes"})
	if !errors.Is(err, ErrScreenNotFound) {
		t.Fatalf("expected ErrScreenNotFound, got %v", err)
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.Suggestion != "checkboxes" {
		t.Fatalf("expected suggestion checkboxes, got %v", err)
	}

	if _, err := orch.Generate(testsupport.Context(), Request{}); err == nil {
		t.Fatalf("expected error for missing screen id")
	}
}

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456"},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files:  map[string]string{"stylesheet": "theme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"brand": "#654321"}},
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest}}
	orch, renderer := newCaptureOrchestrator(WithThemeSelector(selector))

	_, err := orch.Generate(context.Background(), Request{
		ScreenID:     "toggles",
		ThemeName:    "acme",
		ThemeVariant: "dark",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(selector.calls) != 1 || selector.calls[0] != (selectorCall{name: "acme", variant: "dark"}) {
		t.Fatalf("unexpected selector calls: %+v", selector.calls)
	}
	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Tokens["brand"] != "#654321" || cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("variant tokens not applied: %+v", cfg.Tokens)
	}
	if got := cfg.Partials["catalog.panel"]; got != vanilla.DefaultPartials()["catalog.panel"] {
		t.Fatalf("partials not merged with fallbacks, got %q", got)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}

	selector.err = errors.New("no such theme")
	if _, err := orch.Generate(context.Background(), Request{ScreenID: "toggles"}); err == nil {
		t.Fatalf("expected selector error to surface")
	}
}

func TestOrchestrator_WithoutThemes(t *testing.T) {
	orch, renderer := newCaptureOrchestrator(WithThemeSelector(nil))
	if _, err := orch.Generate(context.Background(), Request{ScreenID: "tabs"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.options.Theme != nil {
		t.Fatalf("expected no theme config, got %+v", renderer.options.Theme)
	}
}

func TestOrchestrator_NavigationAndAudit(t *testing.T) {
	orch, renderer := newCaptureOrchestrator(
		WithNavigation(func(id string) string { return "/catalog/" + id }),
		WithAutoAudit(),
	)
	if _, err := orch.Generate(context.Background(), Request{ScreenID: "toggles"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	opts := renderer.options
	if opts.CatalogTitle != "Accessibility Techniques" {
		t.Fatalf("unexpected catalog title %q", opts.CatalogTitle)
	}
	if len(opts.Nav) != len(orch.Catalog().IDs()) {
		t.Fatalf("expected one nav item per screen, got %d", len(opts.Nav))
	}
	current := 0
	for _, item := range opts.Nav {
		if item.Current {
			current++
			if item.ID != "toggles" || item.Href != "/catalog/toggles" {
				t.Fatalf("unexpected current item %+v", item)
			}
		}
	}
	if current != 1 {
		t.Fatalf("expected exactly one current item, got %d", current)
	}
	if len(opts.Findings) == 0 {
		t.Fatalf("expected audit findings for the bad toggles")
	}
}

func TestOrchestrator_RendersExistingScreen(t *testing.T) {
	orch, renderer := newCaptureOrchestrator()
	s := testsupport.MustScreen(t, "checkboxes")
	testsupport.MustTap(t, s, "accept-terms")

	if _, err := orch.Generate(context.Background(), Request{Screen: s}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.screen != s {
		t.Fatalf("expected the supplied screen to be rendered")
	}
}

func TestOrchestrator_UnknownRenderer(t *testing.T) {
	orch, _ := newCaptureOrchestrator()
	_, err := orch.Generate(context.Background(), Request{ScreenID: "tabs", Renderer: "pdf"})
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}
