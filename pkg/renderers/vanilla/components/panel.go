package components

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/antipattern"
	"github.com/goliatone/go-a11ycatalog/pkg/render"
	rendertemplate "github.com/goliatone/go-a11ycatalog/pkg/render/template"
)

const (
	templatePrefix = "templates/components/"

	// PanelPartial is the theme partial key that overrides the panel
	// template.
	PanelPartial = "catalog.panel"

	// PanelTemplate is the bundled panel template.
	PanelTemplate = templatePrefix + "panel.tmpl"
)

// PanelView is the template payload for disclosure panels.
type PanelView struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	Title       string   `json:"title"`
	Hint        string   `json:"hint,omitempty"`
	HintID      string   `json:"hint_id,omitempty"`
	DetailID    string   `json:"detail_id"`
	DetailHTML  string   `json:"detail_html"`
	Open        bool     `json:"open"`
	Glyph       string   `json:"glyph"`
	RegionClass string   `json:"region_class"`
	HideRegion  bool     `json:"hide_region"`
	Findings    []string `json:"findings,omitempty"`
	Tap         *TapForm `json:"tap,omitempty"`
}

func panelView(element a11y.Element, data ComponentData) (PanelView, error) {
	var view PanelView
	switch panel := element.(type) {
	case *a11y.Panel:
		view = PanelView{
			ID:          panel.ID(),
			Kind:        NamePanel,
			Title:       render.PanelTitle(data.Options, panel.Title()),
			Hint:        panel.Hint(),
			DetailID:    panel.DetailID(),
			DetailHTML:  detailHTML(panel.Detail(), data),
			Open:        panel.IsOpen(),
			Glyph:       panel.Glyph(),
			RegionClass: "a11y-panel-detail",
			HideRegion:  !panel.DetailVisible(),
		}
	case *antipattern.HiddenPanel:
		// The detail is only moved off screen, never hidden from the tree.
		view = PanelView{
			ID:          panel.ID(),
			Kind:        NameHiddenPanel,
			Title:       panel.Title(),
			Hint:        panel.Hint(),
			DetailID:    panel.DetailID(),
			DetailHTML:  detailHTML(panel.Detail(), data),
			Open:        panel.IsOpen(),
			Glyph:       panel.Glyph(),
			RegionClass: "a11y-panel-detail",
		}
		if !panel.IsOpen() {
			view.RegionClass += " a11y-visually-hidden"
		}
	default:
		return view, fmt.Errorf("expected a disclosure panel, got %T", element)
	}
	if strings.TrimSpace(view.Hint) != "" {
		view.HintID = hintID(view.ID)
	}
	view.Findings = data.Findings.For(view.ID)
	view.Tap = data.tapForm(view.ID)
	return view, nil
}

func detailHTML(detail string, data ComponentData) string {
	if data.Markup == nil {
		return escape(detail)
	}
	return data.Markup.String(detail)
}

// templatePanelRenderer renders panels through partialKey, falling back to
// templateName when the theme does not override it.
func templatePanelRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, element a11y.Element, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("template renderer not configured for %q", templateName)
		}
		view, err := panelView(element, data)
		if err != nil {
			return err
		}
		rendered, err := rendertemplate.RenderPartial(data.Template, data.ThemePartials, partialKey, templateName, map[string]any{"panel": view})
		if err != nil {
			return err
		}
		buf.WriteString(rendered)
		return nil
	}
}
