package components

import (
	"bytes"
	"html"
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/render"
)

type attr struct {
	key     string
	value   string
	boolean bool
	always  bool
}

// attrOf skips the attribute when value is blank.
func attrOf(key, value string) attr { return attr{key: key, value: value} }

// attrAlways writes the attribute even when value is empty.
func attrAlways(key, value string) attr { return attr{key: key, value: value, always: true} }

// boolAttr writes a bare boolean attribute such as hidden when on.
func boolAttr(key string, on bool) attr { return attr{key: key, boolean: on} }

func ariaBool(on bool) string {
	if on {
		return "true"
	}
	return "false"
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func openTag(buf *bytes.Buffer, name string, attrs ...attr) {
	buf.WriteByte('<')
	buf.WriteString(name)
	for _, a := range attrs {
		switch {
		case a.boolean:
			buf.WriteByte(' ')
			buf.WriteString(a.key)
		case a.always || strings.TrimSpace(a.value) != "":
			buf.WriteByte(' ')
			buf.WriteString(a.key)
			buf.WriteString(`="`)
			buf.WriteString(html.EscapeString(a.value))
			buf.WriteByte('"')
		}
	}
	buf.WriteByte('>')
}

func closeTag(buf *bytes.Buffer, name string) {
	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteByte('>')
}

func textElement(buf *bytes.Buffer, name, text string, attrs ...attr) {
	openTag(buf, name, attrs...)
	buf.WriteString(html.EscapeString(text))
	closeTag(buf, name)
}

func indicator(buf *bytes.Buffer, glyph string) {
	openTag(buf, "span", attrOf("class", "a11y-indicator"), attrOf("aria-hidden", "true"), attrOf("data-glyph", glyph))
	closeTag(buf, "span")
}

func hintID(id string) string { return id + "-hint" }

// hint writes a hidden description referenced through aria-describedby.
func hint(buf *bytes.Buffer, id, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	textElement(buf, "span", text, attrOf("id", hintID(id)), attrOf("class", "a11y-hint"), boolAttr("hidden", true))
}

func describedBy(id, text string) attr {
	if strings.TrimSpace(text) == "" {
		return attr{}
	}
	return attrOf("aria-describedby", hintID(id))
}

// tappable wraps the button written by write in a no-script tap form when
// the request configures a tap action. write receives the button type.
func (d ComponentData) tappable(buf *bytes.Buffer, id string, write func(buttonType string)) {
	if d.Options.TapAction == nil {
		write("button")
		return
	}
	openTag(buf, "form", attrOf("method", "post"), attrOf("class", "a11y-tap"), attrOf("action", d.Options.TapAction(d.ScreenID, id)))
	for _, field := range render.SortedHiddenFields(d.Options.Hidden) {
		openTag(buf, "input", attrOf("type", "hidden"), attrOf("name", field.Name), attrAlways("value", field.Value))
	}
	write("submit")
	closeTag(buf, "form")
}

// findings lists audit messages attached to id.
func (d ComponentData) findings(buf *bytes.Buffer, id string) {
	messages := d.Findings.For(id)
	if len(messages) == 0 {
		return
	}
	openTag(buf, "ul", attrOf("class", "a11y-findings"), attrOf("data-findings-for", id))
	for _, message := range messages {
		textElement(buf, "li", message)
	}
	closeTag(buf, "ul")
}

// TapForm is the template view of a tap form.
type TapForm struct {
	Action string               `json:"action"`
	Hidden []render.HiddenField `json:"hidden,omitempty"`
}

func (d ComponentData) tapForm(id string) *TapForm {
	if d.Options.TapAction == nil {
		return nil
	}
	return &TapForm{
		Action: d.Options.TapAction(d.ScreenID, id),
		Hidden: render.SortedHiddenFields(d.Options.Hidden),
	}
}
