package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrStepLimit is returned when an exploration exceeds the configured
	// number of prompts.
	ErrStepLimit = errors.New("tui: step limit reached")
)
