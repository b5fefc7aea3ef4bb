package components

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
)

// controlMode selects how a control is exposed inside its container.
type controlMode int

const (
	modeStandalone controlMode = iota
	modeTab
	modeRadio
)

func controlRenderer(buf *bytes.Buffer, element a11y.Element, data ComponentData) error {
	control, ok := element.(*a11y.Control)
	if !ok {
		return fmt.Errorf("expected *a11y.Control, got %T", element)
	}
	writeControl(buf, control, data, modeStandalone)
	return nil
}

func writeControl(buf *bytes.Buffer, c *a11y.Control, data ComponentData, mode controlMode) {
	id := c.ID()
	checked := c.Checked()

	attrs := []attr{
		attrOf("id", id),
		attrOf("class", "a11y-control a11y-"+string(c.Kind())),
	}
	kind := string(c.Kind())
	switch mode {
	case modeTab:
		kind = "tab"
		tabIndex := "-1"
		if checked {
			tabIndex = "0"
		}
		attrs = append(attrs,
			attrOf("role", "tab"),
			attrOf("aria-selected", ariaBool(checked)),
			attrOf("tabindex", tabIndex),
		)
	case modeRadio:
		kind = "radio"
		attrs = append(attrs, attrOf("role", "radio"), attrOf("aria-checked", ariaBool(checked)))
	default:
		switch c.Kind() {
		case a11y.KindToggleButton:
			attrs = append(attrs, attrOf("aria-pressed", ariaBool(checked)))
		case a11y.KindSwitch:
			attrs = append(attrs, attrOf("role", "switch"), attrOf("aria-checked", ariaBool(checked)))
		default:
			attrs = append(attrs, attrOf("role", "checkbox"), attrOf("aria-checked", ariaBool(checked)))
		}
	}
	if accessible := c.AccessibleLabel(); accessible != c.Label() {
		attrs = append(attrs, attrOf("aria-label", accessible))
	}
	attrs = append(attrs,
		describedBy(id, c.Hint()),
		boolAttr("disabled", c.Disabled()),
		attrOf("data-element", id),
		attrOf("data-kind", kind),
		attrOf("data-state", onOff(checked)),
		attrOf("data-glyph-on", c.Glyphs().On),
		attrOf("data-glyph-off", c.Glyphs().Off),
	)
	if data.Colors != nil {
		if colors, ok := data.Colors(id); ok {
			attrs = append(attrs, attrOf("style", colorStyle(colors.On, colors.Off, colors.Background)))
		}
	}

	data.tappable(buf, id, func(buttonType string) {
		openTag(buf, "button", append([]attr{attrOf("type", buttonType)}, attrs...)...)
		indicator(buf, c.Indicator().Glyph)
		textElement(buf, "span", c.Label(), attrOf("class", "a11y-label"))
		if values := c.Values(); c.Kind() == a11y.KindSwitch && customValues(values) {
			textElement(buf, "span", values.For(checked),
				attrOf("class", "a11y-value"),
				attrOf("aria-hidden", "true"),
				attrOf("data-on", values.On),
				attrOf("data-off", values.Off),
			)
		}
		closeTag(buf, "button")
	})
	hint(buf, id, c.Hint())
	data.findings(buf, id)
}

func customValues(values a11y.ValueStrings) bool {
	return values != a11y.SwitchValues && values != a11y.CheckedValues
}

func colorStyle(on, off, background string) string {
	var parts []string
	if on = strings.TrimSpace(on); on != "" {
		parts = append(parts, "--toggle-on: "+on)
	}
	if off = strings.TrimSpace(off); off != "" {
		parts = append(parts, "--toggle-off: "+off)
	}
	if background = strings.TrimSpace(background); background != "" {
		parts = append(parts, "--control-background: "+background)
	}
	return strings.Join(parts, "; ")
}
