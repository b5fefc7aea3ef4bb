package antipattern

import "strings"

// Option customises any anti-pattern element at construction.
type Option func(*settings)

type settings struct {
	id        string
	observers []func(bool)
	values    valuePair
}

type valuePair struct {
	on, off string
}

// WithID overrides the derived element id.
func WithID(id string) Option {
	return func(s *settings) {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			s.id = trimmed
		}
	}
}

// WithObserver registers a callback invoked with the new state after each
// activation.
func WithObserver(fn func(bool)) Option {
	return func(s *settings) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// WithVisibleValues sets the value text drawn next to a control. It is shown
// on screen only and never reaches the projection.
func WithVisibleValues(on, off string) Option {
	return func(s *settings) {
		s.values = valuePair{on: strings.TrimSpace(on), off: strings.TrimSpace(off)}
	}
}

func apply(options []Option) settings {
	var s settings
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

type observers []func(bool)

func (o observers) notify(state bool) {
	for _, fn := range append([]func(bool){}, o...) {
		fn(state)
	}
}
