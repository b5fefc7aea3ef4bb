package components

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/antipattern"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
	rendertemplate "github.com/goliatone/go-a11ycatalog/pkg/render/template"
)

func noopRenderer(*bytes.Buffer, a11y.Element, ComponentData) error { return nil }

func TestRegistryDescriptorClone(t *testing.T) {
	reg := New()
	if err := reg.Register("Test", Descriptor{Renderer: noopRenderer, Stylesheets: []string{"/a.css"}}); err != nil {
		t.Fatalf("register: %v", err)
	}

	desc, ok := reg.Descriptor("test")
	if !ok {
		t.Fatalf("descriptor not found")
	}
	desc.Stylesheets = append(desc.Stylesheets, "/mutated.css")

	original, _ := reg.Descriptor("test")
	if len(original.Stylesheets) != 1 || original.Stylesheets[0] != "/a.css" {
		t.Fatalf("registry descriptor mutated: %#v", original.Stylesheets)
	}

	clone := reg.Clone()
	clone.MustRegister("extra", Descriptor{Renderer: noopRenderer})
	if _, ok := reg.Descriptor("extra"); ok {
		t.Fatalf("clone registration leaked into the original")
	}
}

func TestRegistryRejectsInvalidDescriptors(t *testing.T) {
	reg := New()
	if err := reg.Register(" ", Descriptor{Renderer: noopRenderer}); err == nil {
		t.Fatalf("expected name error")
	}
	if err := reg.Register("x", Descriptor{}); err == nil {
		t.Fatalf("expected nil renderer error")
	}
}

func TestRegistryAssetsDeduplicates(t *testing.T) {
	reg := New()
	reg.MustRegister("a", Descriptor{
		Renderer:    noopRenderer,
		Stylesheets: []string{"/shared.css", "/a.css"},
		Scripts:     []Script{{Src: "/shared.js"}},
	})
	reg.MustRegister("b", Descriptor{
		Renderer:    noopRenderer,
		Stylesheets: []string{"/shared.css"},
		Scripts:     []Script{{Src: "/shared.js"}, {Inline: "init()"}},
	})

	styles, scripts := reg.Assets([]string{"a", "b", "missing"})
	if diff := cmp.Diff([]string{"/shared.css", "/a.css"}, styles); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Script{{Src: "/shared.js"}, {Inline: "init()"}}, scripts); diff != "" {
		t.Fatalf("scripts mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistryCoversEveryElement(t *testing.T) {
	reg := NewDefaultRegistry()
	elements := []a11y.Element{
		a11y.NewText("t", "Intro"),
		a11y.NewHeading("h", "Heading"),
		a11y.NewControl("Accept Terms", false),
		a11y.NewControl("Face ID", false, a11y.WithKind(a11y.KindSwitch)),
		a11y.NewControl("Bookmark", false, a11y.WithKind(a11y.KindToggleButton)),
		a11y.NewGroup("Group", nil),
		a11y.NewPanel("Details", "detail", "hint"),
		antipattern.NewImageCheckbox("Accept Terms", false),
		antipattern.NewUnlabeledSwitch("Face ID", false),
		antipattern.NewLooseGroup("Caption", nil),
		antipattern.NewHiddenPanel("Details", "detail", "hint"),
	}
	for _, element := range elements {
		name := NameFor(element)
		if _, ok := reg.Descriptor(name); !ok {
			t.Fatalf("no descriptor for %T (%q)", element, name)
		}
	}
	if NameFor(nil) != "" {
		t.Fatalf("nil elements have no component")
	}
}

func renderElement(t *testing.T, element a11y.Element, data ComponentData) string {
	t.Helper()
	var buf bytes.Buffer
	if _, err := NewDefaultRegistry().Render(&buf, element, data); err != nil {
		t.Fatalf("render %T: %v", element, err)
	}
	return buf.String()
}

func TestControlMarkup(t *testing.T) {
	checkbox := a11y.NewControl("Accept Terms", true, a11y.WithHint("Required"))
	got := renderElement(t, checkbox, ComponentData{})
	for _, want := range []string{
		`<button type="button" id="accept-terms"`,
		`role="checkbox"`,
		`aria-checked="true"`,
		`aria-describedby="accept-terms-hint"`,
		`data-state="on"`,
		`data-glyph="checkmark.square"`,
		`<span id="accept-terms-hint" class="a11y-hint" hidden>Required</span>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("checkbox markup missing %q:\n%s", want, got)
		}
	}

	toggle := a11y.NewControl("Bookmark", false, a11y.WithKind(a11y.KindToggleButton), a11y.WithAccessibleLabel("Bookmark Cupertino"))
	got = renderElement(t, toggle, ComponentData{})
	if !strings.Contains(got, `aria-pressed="false"`) || strings.Contains(got, "role=") {
		t.Fatalf("toggle button should use aria-pressed without a role:\n%s", got)
	}
	if !strings.Contains(got, `aria-label="Bookmark Cupertino"`) {
		t.Fatalf("explicit accessible label missing:\n%s", got)
	}

	sw := a11y.NewControl("Display Mode", false, a11y.WithKind(a11y.KindSwitch), a11y.WithValueStrings(a11y.ValueStrings{On: "Dark", Off: "Light"}))
	got = renderElement(t, sw, ComponentData{})
	if !strings.Contains(got, `role="switch"`) || !strings.Contains(got, `data-off="Light">Light</span>`) {
		t.Fatalf("switch with custom values rendered unexpectedly:\n%s", got)
	}
}

func TestGroupMarkup(t *testing.T) {
	members := []*a11y.Control{
		a11y.NewControl("Home", true, a11y.WithKind(a11y.KindToggleButton)),
		a11y.NewControl("Messages", false, a11y.WithKind(a11y.KindToggleButton)),
	}
	tabs := a11y.NewGroup("Inbox", members, a11y.WithExclusive())
	got := renderElement(t, tabs, ComponentData{})
	for _, want := range []string{
		`role="tablist" aria-labelledby="inbox-label"`,
		`<span id="inbox-label" class="a11y-group-label">Inbox</span>`,
		`role="tab" aria-selected="true" tabindex="0"`,
		`role="tab" aria-selected="false" tabindex="-1"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("tablist markup missing %q:\n%s", want, got)
		}
	}

	multi := a11y.NewGroup("Contact", []*a11y.Control{a11y.NewControl("Email", false)})
	if got := renderElement(t, multi, ComponentData{}); !strings.Contains(got, `role="group"`) {
		t.Fatalf("multi group should be role=group:\n%s", got)
	}
}

func TestTapFormsAndFindings(t *testing.T) {
	checkbox := a11y.NewControl("Accept Terms", false)
	data := ComponentData{
		ScreenID: "checkboxes",
		Options: render.RenderOptions{
			TapAction: func(screenID, elementID string) string {
				return "/screens/" + screenID + "/tap/" + elementID
			},
			Hidden: map[string]string{"session": "abc"},
		},
		Findings: render.FindingIndex{Elements: map[string][]string{"accept-terms": {"error [x] accept-terms: broken"}}},
	}
	got := renderElement(t, checkbox, data)
	for _, want := range []string{
		`<form method="post" class="a11y-tap" action="/screens/checkboxes/tap/accept-terms">`,
		`<input type="hidden" name="session" value="abc">`,
		`<button type="submit" id="accept-terms"`,
		`<ul class="a11y-findings" data-findings-for="accept-terms"><li>error [x] accept-terms: broken</li></ul>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("markup missing %q:\n%s", want, got)
		}
	}
}

func TestAntiPatternMarkup(t *testing.T) {
	box := antipattern.NewImageCheckbox("Accept Terms", false)
	got := renderElement(t, box, ComponentData{})
	if strings.Contains(got, "aria-checked") || strings.Contains(got, "role=") {
		t.Fatalf("image checkbox must not expose state:\n%s", got)
	}

	sw := antipattern.NewUnlabeledSwitch("Face ID", false)
	got = renderElement(t, sw, ComponentData{})
	if strings.Contains(got, "aria-label") || strings.Contains(got, "aria-labelledby") {
		t.Fatalf("unlabeled switch must not be associated with its caption:\n%s", got)
	}
}

type stubTemplate struct {
	name string
	data any
	err  error
}

func (s *stubTemplate) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	s.name, s.data = name, data
	return "<panel>", s.err
}

func (s *stubTemplate) RenderString(string, any, ...io.Writer) (string, error) { return "", nil }

func (s *stubTemplate) RegisterFilter(string, rendertemplate.FilterFunc) error { return nil }

func (s *stubTemplate) GlobalContext(any) error { return nil }

func TestPanelUsesThemePartialAndView(t *testing.T) {
	stub := &stubTemplate{}
	panel := a11y.NewPanel("Details", "Use `aria-checked`.", "Good Example")
	data := ComponentData{Template: stub, ThemePartials: map[string]string{PanelPartial: "themes/custom/panel.tmpl"}}

	if got := renderElement(t, panel, data); got != "<panel>" {
		t.Fatalf("unexpected output %q", got)
	}
	if stub.name != "themes/custom/panel.tmpl" {
		t.Fatalf("theme partial not used, got %q", stub.name)
	}
	view := stub.data.(map[string]any)["panel"].(PanelView)
	want := PanelView{
		ID:          panel.ID(),
		Kind:        NamePanel,
		Title:       "Details",
		Hint:        "Good Example",
		HintID:      panel.ID() + "-hint",
		DetailID:    panel.DetailID(),
		DetailHTML:  "Use `aria-checked`.",
		Glyph:       "chevron.right",
		RegionClass: "a11y-panel-detail",
		HideRegion:  true,
	}
	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("panel view mismatch (-want +got):\n%s", diff)
	}

	hidden := antipattern.NewHiddenPanel("Details", "text", "Bad Example")
	renderElement(t, hidden, data)
	leaky := stub.data.(map[string]any)["panel"].(PanelView)
	if leaky.HideRegion || !strings.Contains(leaky.RegionClass, "a11y-visually-hidden") {
		t.Fatalf("hidden panel must only hide visually: %+v", leaky)
	}

	stub.err = errors.New("boom")
	var buf bytes.Buffer
	if _, err := NewDefaultRegistry().Render(&buf, panel, data); err == nil {
		t.Fatalf("expected template error")
	}
}
