package components

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/antipattern"
)

// imageCheckboxRenderer draws a plain button whose picture changes. Nothing
// but the glyph reflects the state.
func imageCheckboxRenderer(buf *bytes.Buffer, element a11y.Element, data ComponentData) error {
	box, ok := element.(*antipattern.ImageCheckbox)
	if !ok {
		return fmt.Errorf("expected *antipattern.ImageCheckbox, got %T", element)
	}
	id := box.ID()
	data.tappable(buf, id, func(buttonType string) {
		openTag(buf, "button",
			attrOf("type", buttonType),
			attrOf("id", id),
			attrOf("class", "a11y-control a11y-image-checkbox"),
			attrOf("data-element", id),
			attrOf("data-kind", NameImageCheckbox),
			attrOf("data-state", onOff(box.Checked())),
			attrOf("data-glyph-on", "checkmark.square"),
			attrOf("data-glyph-off", "square"),
		)
		indicator(buf, box.Indicator().Glyph)
		textElement(buf, "span", box.Label(), attrOf("class", "a11y-label"))
		closeTag(buf, "button")
	})
	data.findings(buf, id)
	return nil
}

// unlabeledSwitchRenderer places the caption beside the switch without
// associating it, so the switch has no accessible name.
func unlabeledSwitchRenderer(buf *bytes.Buffer, element a11y.Element, data ComponentData) error {
	sw, ok := element.(*antipattern.UnlabeledSwitch)
	if !ok {
		return fmt.Errorf("expected *antipattern.UnlabeledSwitch, got %T", element)
	}
	id := sw.ID()
	openTag(buf, "div", attrOf("id", id+"-row"), attrOf("class", "a11y-row"))
	textElement(buf, "span", sw.Caption(), attrOf("id", sw.CaptionID()), attrOf("class", "a11y-caption"))
	data.tappable(buf, id, func(buttonType string) {
		openTag(buf, "button",
			attrOf("type", buttonType),
			attrOf("id", id),
			attrOf("class", "a11y-control a11y-switch"),
			attrOf("role", "switch"),
			attrOf("aria-checked", ariaBool(sw.Checked())),
			attrOf("data-element", id),
			attrOf("data-kind", NameUnlabeledSwitch),
			attrOf("data-state", onOff(sw.Checked())),
			attrOf("data-glyph-on", "switch.on"),
			attrOf("data-glyph-off", "switch.off"),
		)
		indicator(buf, sw.Indicator().Glyph)
		closeTag(buf, "button")
	})
	if value := sw.VisibleValue(); value != "" {
		textElement(buf, "span", value, attrOf("class", "a11y-value"))
	}
	closeTag(buf, "div")
	data.findings(buf, id)
	return nil
}

// looseGroupRenderer lays members out under a caption with no container
// semantics.
func looseGroupRenderer(buf *bytes.Buffer, element a11y.Element, data ComponentData) error {
	group, ok := element.(*antipattern.LooseGroup)
	if !ok {
		return fmt.Errorf("expected *antipattern.LooseGroup, got %T", element)
	}
	openTag(buf, "div", attrOf("id", group.ID()), attrOf("class", "a11y-loose-group"))
	textElement(buf, "span", group.Caption(), attrOf("id", group.CaptionID()), attrOf("class", "a11y-group-label"))
	for _, member := range group.Members() {
		writeControl(buf, member, data, modeStandalone)
	}
	closeTag(buf, "div")
	data.findings(buf, group.ID())
	return nil
}
