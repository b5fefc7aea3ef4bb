package gotemplate_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-a11ycatalog/pkg/render/template/gotemplate"
	"github.com/goliatone/go-a11ycatalog/pkg/testsupport"
)

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	files := fstest.MapFS{
		"hello.tpl":  {Data: []byte("Hello {{ name }}!")},
		"toggle.tpl": {Data: []byte(`<button role="switch" aria-checked="{{ control.checked|ariabool }}">{{ control.label|trim }}</button>`)},
		"global.tpl": {Data: []byte("env={{ settings.env }}")},
		"refs.tpl":   {Data: []byte(`aria-labelledby="{{ ids|idrefs }}"`)},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplateWritesToOutputs(t *testing.T) {
	engine := newEngine(t)

	got, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})
	if got != "Hello Ada!" {
		t.Fatalf("unexpected result %q", got)
	}
	if written != got {
		t.Fatalf("writer mismatch: %q", written)
	}
}

func TestEngine_StructDataUsesJSONTags(t *testing.T) {
	engine := newEngine(t)

	type control struct {
		Label   string `json:"label"`
		Checked bool   `json:"checked"`
	}
	got, err := engine.RenderTemplate("toggle", map[string]any{
		"control": control{Label: "  Face ID ", Checked: true},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<button role="switch" aria-checked="true">Face ID</button>`
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}

	got, err = engine.RenderTemplate("toggle", map[string]any{"control": control{Label: "Face ID"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `aria-checked="false"`) {
		t.Fatalf("expected aria-checked false, got %q", got)
	}
}

func TestEngine_IDRefsFilter(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderTemplate("refs", map[string]any{"ids": []string{"caption", "", "hint"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != `aria-labelledby="caption hint"` {
		t.Fatalf("unexpected %q", got)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))
	got, err := engine.RenderTemplate("global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestEngine_RenderStringInlineSource(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderString("{{ greeting }}, world", map[string]any{"greeting": "Hi"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hi, world" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("a11y_test_shout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s), nil
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := engine.RenderString("{{ word|a11y_test_shout }}", map[string]any{"word": "details"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "DETAILS" {
		t.Fatalf("unexpected %q", got)
	}

	if err := engine.RegisterFilter("a11y_test_shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
}

func TestEngine_FilterErrorsPropagate(t *testing.T) {
	engine := newEngine(t)
	boom := errors.New("boom")
	if err := engine.RegisterFilter("a11y_test_fail", func(any, any) (any, error) { return nil, boom }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := engine.RenderString("{{ x|a11y_test_fail }}", map[string]any{"x": 1}); err == nil {
		t.Fatalf("expected render error")
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without fs or base dir")
	}
}

func TestEngine_TemplateFuncsAreCallableAndFilters(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(map[string]any{
		"greet": func(name string) string { return "Hello " + name },
		"a11y_test_role": func(input any, _ any) (any, error) {
			return fmt.Sprintf("role=%v", input), nil
		},
	}))

	got, err := engine.RenderString(`{{ greet(name) }} {{ kind|a11y_test_role }}`, map[string]any{
		"name": "Ada",
		"kind": "switch",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada role=switch" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestEngine_DataFuncsShadowGlobals(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(map[string]any{
		"label": func() string { return "global" },
	}))

	got, err := engine.RenderString("{{ label() }}", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "global" {
		t.Fatalf("unexpected %q", got)
	}

	got, err = engine.RenderString("{{ label() }}", map[string]any{
		"label": func() string { return "local" },
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "local" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestEngine_NonObjectDataIsRejected(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderString("{{ x }}", []string{"a"}); err == nil {
		t.Fatalf("expected error for slice data")
	}
}
