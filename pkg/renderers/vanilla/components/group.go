package components

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
)

// groupRenderer exposes the caption through aria-labelledby. Exclusive
// groups of toggle buttons become a tablist, other exclusive groups a
// radiogroup.
func groupRenderer(buf *bytes.Buffer, element a11y.Element, data ComponentData) error {
	group, ok := element.(*a11y.Group)
	if !ok {
		return fmt.Errorf("expected *a11y.Group, got %T", element)
	}

	role, mode := "group", modeStandalone
	if group.Exclusive() {
		role, mode = "radiogroup", modeRadio
		if allToggleButtons(group.Members()) {
			role, mode = "tablist", modeTab
		}
	}
	labelID := group.ID() + "-label"

	openTag(buf, "div", attrOf("class", "a11y-group-wrap"))
	textElement(buf, "span", group.Label(), attrOf("id", labelID), attrOf("class", "a11y-group-label"))
	openTag(buf, "div",
		attrOf("id", group.ID()),
		attrOf("class", "a11y-group a11y-"+role),
		attrOf("role", role),
		attrOf("aria-labelledby", labelID),
		attrOf("data-element", group.ID()),
	)
	for _, member := range group.Members() {
		writeControl(buf, member, data, mode)
	}
	closeTag(buf, "div")
	data.findings(buf, group.ID())
	closeTag(buf, "div")
	return nil
}

func allToggleButtons(members []*a11y.Control) bool {
	if len(members) == 0 {
		return false
	}
	for _, member := range members {
		if member.Kind() != a11y.KindToggleButton {
			return false
		}
	}
	return true
}
