package theming

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-a11ycatalog/pkg/contrast"
)

func defaultSelector(t *testing.T, options ...Option) *Selector {
	t.Helper()
	s, err := Default(options...)
	if err != nil {
		t.Fatalf("default selector: %v", err)
	}
	return s
}

func TestDefault_ListsEmbeddedTheme(t *testing.T) {
	s := defaultSelector(t)

	if diff := cmp.Diff([]string{"catalog"}, s.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"dark"}, s.Variants("catalog")); diff != "" {
		t.Fatalf("variants mismatch (-want +got):\n%s", diff)
	}
	if s.Provider() == nil {
		t.Fatalf("expected go-theme provider")
	}
}

func TestSelect_DefaultsAndErrors(t *testing.T) {
	s := defaultSelector(t, WithDefaults("catalog", "dark"))

	selection, err := s.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != "catalog" || selection.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", selection.Theme, selection.Variant)
	}

	if _, err := s.Select("acme", ""); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := s.Select("catalog", "sepia"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestRendererConfig_LayersVariantOverBase(t *testing.T) {
	s := defaultSelector(t)
	selection, err := s.Select("catalog", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	cfg := RendererConfig(selection, map[string]string{"catalog.page": "fallback", "extra": "extra.tmpl"})
	if cfg.Theme != "catalog" || cfg.Variant != "dark" {
		t.Fatalf("unexpected config identity %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Tokens["background"] != "#000000" {
		t.Fatalf("variant token not applied: %s", cfg.Tokens["background"])
	}
	if cfg.Tokens["toggle-off"] != "#8E8E93" {
		t.Fatalf("base token lost: %s", cfg.Tokens["toggle-off"])
	}
	if cfg.CSSVars["--section-good"] != "#4CD964" {
		t.Fatalf("css var not derived: %s", cfg.CSSVars["--section-good"])
	}
	if cfg.Partials["catalog.page"] != "templates/page.tmpl" || cfg.Partials["extra"] != "extra.tmpl" {
		t.Fatalf("partials not layered: %+v", cfg.Partials)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/runtime/a11ycatalog.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("unknown assets resolve empty, got %q", got)
	}
}

func TestRendererConfig_Nil(t *testing.T) {
	if RendererConfig(nil, nil) != nil {
		t.Fatalf("expected nil config")
	}
}

func TestContrastAll_EmbeddedPalettesAreClean(t *testing.T) {
	s := defaultSelector(t)

	all, err := s.ContrastAll()
	if err != nil {
		t.Fatalf("contrast: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected base and dark palettes, got %d", len(all))
	}
	for _, key := range []string{"catalog", "catalog/dark"} {
		results, ok := all[key]
		if !ok || len(results) != len(contrast.DefaultRules()) {
			t.Fatalf("%s: expected %d results, got %d", key, len(contrast.DefaultRules()), len(results))
		}
		if failures := contrast.Failures(results); len(failures) != 0 {
			t.Fatalf("%s: unexpected failures %+v", key, failures)
		}
	}
}

func TestContrastAll_FlagsLowContrastVariant(t *testing.T) {
	manifests, err := LoadFS(EmbeddedFS())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	manifests[0].Variants["washed"] = theme.Variant{Tokens: map[string]string{
		"section-bad": "#FF8080",
		"toggle-off":  "#F0F0F0",
	}}
	s, err := New(manifests)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	all, err := s.ContrastAll()
	if err != nil {
		t.Fatalf("contrast: %v", err)
	}
	if failures := contrast.Failures(all["catalog"]); len(failures) != 0 {
		t.Fatalf("base palette should stay clean, got %+v", failures)
	}

	var failed []string
	for _, result := range contrast.Failures(all["catalog/washed"]) {
		failed = append(failed, result.Name)
	}
	if diff := cmp.Diff([]string{"bad-heading", "toggle-off"}, failed); diff != "" {
		t.Fatalf("washed failures mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_RejectsDuplicatesAndBlankNames(t *testing.T) {
	dup := fstest.MapFS{
		"a.yaml": {Data: []byte("name: one\n")},
		"b.yml":  {Data: []byte("name: one\n")},
	}
	if _, err := LoadFS(dup); err == nil {
		t.Fatalf("expected duplicate theme error")
	}

	blank := fstest.MapFS{"a.yaml": {Data: []byte("version: 1\n")}}
	if _, err := LoadFS(blank); err == nil {
		t.Fatalf("expected missing name error")
	}

	manifests, err := LoadFS(fstest.MapFS{
		"z.yaml":    {Data: []byte("name: zeta\n")},
		"a.yaml":    {Data: []byte("name: alpha\nvariants:\n  dark:\n    tokens:\n      text: \"#FFFFFF\"\n")},
		"notes.txt": {Data: []byte("ignored")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(manifests) != 2 || manifests[0].Name != "alpha" {
		t.Fatalf("unexpected manifests %+v", manifests)
	}
	if manifests[0].Variants["dark"].Tokens["text"] != "#FFFFFF" {
		t.Fatalf("variant tokens not parsed")
	}
}

func TestNew_FallsBackToFirstTheme(t *testing.T) {
	s, err := New([]*theme.Manifest{{Name: "solo", Version: "1.0.0"}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	selection, err := s.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != "solo" {
		t.Fatalf("expected fallback to solo, got %s", selection.Theme)
	}
}
