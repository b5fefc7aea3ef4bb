package screen

import "log/slog"

// Option customises a Screen at build time.
type Option func(*Screen)

// WithLogger sets the structured logger used for taps and changes.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Screen) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithListener subscribes fn to every Event.
func WithListener(fn func(Event)) Option {
	return func(s *Screen) {
		if fn != nil {
			s.listeners = append(s.listeners, fn)
		}
	}
}
