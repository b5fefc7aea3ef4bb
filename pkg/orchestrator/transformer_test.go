package orchestrator_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-a11ycatalog/pkg/model"
	"github.com/goliatone/go-a11ycatalog/pkg/orchestrator"
	"github.com/goliatone/go-a11ycatalog/pkg/renderers/semantic"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
	"github.com/goliatone/go-a11ycatalog/pkg/testsupport"
)

func semanticOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	registry := render.NewRegistry()
	registry.MustRegister(semantic.New())
	base := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("semantic"),
		orchestrator.WithThemeSelector(nil),
	}
	return orchestrator.New(append(base, options...)...)
}

func TestOrchestrator_AppliesTransformer(t *testing.T) {
	called := false
	transformer := orchestrator.TransformerFunc(func(ctx context.Context, def *model.Screen) error {
		called = true
		def.Title = "Patched"
		return nil
	})

	orch := semanticOrchestrator(orchestrator.WithTransformer(transformer))
	s, err := orch.Screen(context.Background(), "checkboxes")
	if err != nil {
		t.Fatalf("screen: %v", err)
	}
	if !called {
		t.Fatalf("expected transformer to be invoked")
	}
	if s.Title() != "Patched" {
		t.Fatalf("transformer mutation missing: %q", s.Title())
	}
	if def, _ := orch.Catalog().Screen("checkboxes"); def.Title != "Checkboxes" {
		t.Fatalf("transformer leaked into the catalog: %q", def.Title)
	}
}

func TestOrchestrator_TransformerError(t *testing.T) {
	boom := errors.New("boom")
	orch := semanticOrchestrator(orchestrator.WithTransformer(orchestrator.TransformerFunc(func(context.Context, *model.Screen) error {
		return boom
	})))
	if _, err := orch.Generate(context.Background(), orchestrator.Request{ScreenID: "checkboxes"}); !errors.Is(err, boom) {
		t.Fatalf("expected transformer error, got %v", err)
	}
}

func TestJSONPresetTransformer(t *testing.T) {
	files := fstest.MapFS{
		"presets/es.json": {Data: []byte(`{
  "screens": {
    "checkboxes": {
      "title": "Casillas",
      "sections": {"good": "Buenos ejemplos"},
      "metadata": {"locale": "es"},
      "examples": {
        "good-single-checkbox": {"title": "Casilla individual", "details": {"hint": "Buen ejemplo"}}
      }
    }
  }
}`)},
	}
	preset, err := orchestrator.NewJSONPresetTransformerFromFS(files, "presets/es.json")
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}

	def := testsupport.MustScreenDefinition(t, "checkboxes")
	orch := semanticOrchestrator(orchestrator.WithTransformer(orchestrator.Chain(preset)))
	s, err := orch.Screen(context.Background(), def.ID)
	if err != nil {
		t.Fatalf("screen: %v", err)
	}
	if s.Title() != "Casillas" {
		t.Fatalf("title not patched: %q", s.Title())
	}
	sections := s.Sections()
	if sections[0].Title != "Buenos ejemplos" {
		t.Fatalf("section title not patched: %q", sections[0].Title)
	}
	example := sections[0].Examples[0]
	if example.Title != "Casilla individual" || example.Details.Hint() != "Buen ejemplo" {
		t.Fatalf("example not patched: %q / %q", example.Title, example.Details.Hint())
	}
	if s.Definition().Meta["locale"] != "es" {
		t.Fatalf("metadata not merged: %v", s.Definition().Meta)
	}

	other, err := orch.Screen(context.Background(), "toggles")
	if err != nil || other.Title() != "Toggles" {
		t.Fatalf("unpatched screen changed: %v %q", err, other.Title())
	}
}

func TestJSONPresetTransformer_Errors(t *testing.T) {
	if _, err := orchestrator.NewJSONPresetTransformer([]byte("  ")); err == nil {
		t.Fatalf("expected empty document error")
	}
	if _, err := orchestrator.NewJSONPresetTransformer([]byte("{")); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := orchestrator.NewJSONPresetTransformerFromFS(nil, "x.json"); err == nil {
		t.Fatalf("expected nil filesystem error")
	}

	preset, err := orchestrator.NewJSONPresetTransformer([]byte(`{"screens":{"checkboxes":{"examples":{"missing":{"title":"x"}}}}}`))
	if err != nil {
		t.Fatalf("parse preset: %v", err)
	}
	def := testsupport.MustScreenDefinition(t, "checkboxes")
	if err := preset.Transform(context.Background(), &def); err == nil {
		t.Fatalf("expected unknown example error")
	}
}
