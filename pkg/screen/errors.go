package screen

import "errors"

var (
	// ErrUnknownElement is returned when no element has the requested id.
	ErrUnknownElement = errors.New("screen: unknown element")
	// ErrNotInteractive is returned when the element exists but cannot be
	// activated, such as text or a group container.
	ErrNotInteractive = errors.New("screen: element is not interactive")
	// ErrInvalidItem is returned by Build for items the model cannot express.
	ErrInvalidItem = errors.New("screen: invalid item")
)
