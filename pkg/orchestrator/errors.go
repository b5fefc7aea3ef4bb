package orchestrator

import (
	"errors"
	"fmt"
)

// ErrScreenNotFound is matched by errors.Is for unknown screen ids.
var ErrScreenNotFound = errors.New("orchestrator: screen not found")

// NotFoundError reports an unknown screen id together with the closest
// known id, when one is near enough.
type NotFoundError struct {
	ID         string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("orchestrator: screen %q not found (did you mean %q?)", e.ID, e.Suggestion)
	}
	return fmt.Sprintf("orchestrator: screen %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrScreenNotFound
}
