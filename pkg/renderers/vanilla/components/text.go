package components

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
)

func textRenderer(buf *bytes.Buffer, element a11y.Element, data ComponentData) error {
	text, ok := element.(*a11y.Text)
	if !ok {
		return fmt.Errorf("expected *a11y.Text, got %T", element)
	}
	if text.Heading() {
		textElement(buf, "h4", text.Text(), attrOf("id", text.ID()), attrOf("class", "a11y-heading"))
		data.findings(buf, text.ID())
		return nil
	}
	openTag(buf, "p", attrOf("id", text.ID()), attrOf("class", "a11y-text"))
	if data.Markup != nil {
		buf.WriteString(data.Markup.String(text.Text()))
	} else {
		buf.WriteString(escape(text.Text()))
	}
	closeTag(buf, "p")
	data.findings(buf, text.ID())
	return nil
}
