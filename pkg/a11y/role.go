package a11y

// Role names the category assistive technology announces for a node.
type Role string

const (
	RoleNone     Role = ""
	RoleButton   Role = "button"
	RoleCheckbox Role = "checkbox"
	RoleSwitch   Role = "switch"
	RoleGroup    Role = "group"
	RoleHeading  Role = "heading"
	RoleText     Role = "text"
)

// Announced reports whether screen readers speak the role after the label.
// Plain text carries no spoken role.
func (r Role) Announced() bool {
	switch r {
	case RoleNone, RoleText:
		return false
	default:
		return true
	}
}

// Interactive reports whether the role accepts activation.
func (r Role) Interactive() bool {
	switch r {
	case RoleButton, RoleCheckbox, RoleSwitch:
		return true
	default:
		return false
	}
}
