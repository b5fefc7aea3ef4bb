package components

import (
	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/antipattern"
)

// Built-in component names.
const (
	NameText            = "text"
	NameHeading         = "heading"
	NameCheckbox        = "checkbox"
	NameSwitch          = "switch"
	NameToggleButton    = "toggle-button"
	NameGroup           = "group"
	NamePanel           = "panel"
	NameImageCheckbox   = "image-checkbox"
	NameUnlabeledSwitch = "unlabeled-switch"
	NameLooseGroup      = "loose-group"
	NameHiddenPanel     = "hidden-panel"
)

// NameFor returns the component name used to render element. Unknown
// element types yield "".
func NameFor(element a11y.Element) string {
	switch el := element.(type) {
	case *a11y.Text:
		if el.Heading() {
			return NameHeading
		}
		return NameText
	case *a11y.Control:
		switch el.Kind() {
		case a11y.KindSwitch:
			return NameSwitch
		case a11y.KindToggleButton:
			return NameToggleButton
		default:
			return NameCheckbox
		}
	case *a11y.Group:
		return NameGroup
	case *a11y.Panel:
		return NamePanel
	case *antipattern.ImageCheckbox:
		return NameImageCheckbox
	case *antipattern.UnlabeledSwitch:
		return NameUnlabeledSwitch
	case *antipattern.LooseGroup:
		return NameLooseGroup
	case *antipattern.HiddenPanel:
		return NameHiddenPanel
	default:
		return ""
	}
}
