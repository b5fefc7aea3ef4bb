package a11y

// Flags is a bitset of boolean accessibility states attached to a Projection.
type Flags uint32

const (
	FlagHasCheckedState Flags = 1 << iota
	FlagChecked
	FlagSelected
	FlagHasExpandedState
	FlagExpanded
	FlagHidden
	FlagFocusable
	FlagHeader
	FlagEnabled
	// FlagInvisible records that the node is not drawn. It says nothing about
	// the accessibility tree; only FlagHidden removes a node from it.
	FlagInvisible
	// FlagToggles marks a node whose visual rendering flips between two
	// states when activated.
	FlagToggles
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagHasCheckedState, "has-checked-state"},
	{FlagChecked, "checked"},
	{FlagSelected, "selected"},
	{FlagHasExpandedState, "has-expanded-state"},
	{FlagExpanded, "expanded"},
	{FlagHidden, "hidden"},
	{FlagFocusable, "focusable"},
	{FlagHeader, "header"},
	{FlagEnabled, "enabled"},
	{FlagInvisible, "invisible"},
	{FlagToggles, "toggles"},
}

// Has reports whether every bit in flag is set.
func (f Flags) Has(flag Flags) bool {
	return flag != 0 && f&flag == flag
}

// Set returns a copy with flag turned on.
func (f Flags) Set(flag Flags) Flags {
	return f | flag
}

// Clear returns a copy with flag turned off.
func (f Flags) Clear(flag Flags) Flags {
	return f &^ flag
}

// With sets or clears flag depending on on.
func (f Flags) With(flag Flags, on bool) Flags {
	if on {
		return f.Set(flag)
	}
	return f.Clear(flag)
}

// Names lists the set flags in declaration order.
func (f Flags) Names() []string {
	var out []string
	for _, entry := range flagNames {
		if f.Has(entry.flag) {
			out = append(out, entry.name)
		}
	}
	return out
}
