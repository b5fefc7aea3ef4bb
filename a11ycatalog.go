// Package a11ycatalog renders a catalog of good and bad accessibility
// examples for binary-state controls, disclosure panels and groups.
//
// Most callers start here:
//
//	html, err := a11ycatalog.Generate(ctx, "checkboxes", "vanilla")
//
// and reach into pkg/orchestrator, pkg/screen or pkg/a11y when they need
// sessions, custom renderers or the components themselves.
package a11ycatalog

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-a11ycatalog/pkg/orchestrator"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
	"github.com/goliatone/go-a11ycatalog/pkg/screen"
)

// RenderOptions describes per-request overrides such as locale, subset,
// findings or tap form wiring.
type RenderOptions = render.RenderOptions

// Subset aliases render.Subset for callers rendering part of a screen.
type Subset = render.Subset

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// Finding is one audit violation reported against a screen element.
type Finding = screen.Finding

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate renders one catalog screen with the named renderer. Blank
// rendererName uses the vanilla HTML renderer.
func Generate(ctx context.Context, screenID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		ScreenID: screenID,
		Renderer: rendererName,
	})
}

// GenerateAfterTaps replays taps on a fresh screen before rendering it, the
// quickest way to snapshot a particular state.
func GenerateAfterTaps(ctx context.Context, screenID, rendererName string, taps []string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		ScreenID: screenID,
		Renderer: rendererName,
		Taps:     taps,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
