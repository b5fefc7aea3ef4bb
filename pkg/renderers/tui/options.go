package tui

import "github.com/charmbracelet/lipgloss"

// OutputFormat controls how the transcript is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures the message prefixes and lipgloss styles used when
// printing announcements and summaries.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string

	Title   lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
	On      lipgloss.Style
	Off     lipgloss.Style
}

// DefaultTheme returns the built-in styles.
func DefaultTheme() Theme {
	return Theme{
		InfoPrefix:  "» ",
		ErrorPrefix: "! ",
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#0A5FD0", Dark: "#64A8FF"}),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Underline(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6E6E73", Dark: "#8E8E93"}),
		On: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#006600", Dark: "#4CD964"}),
		Off: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#DC143C", Dark: "#FF6961"}),
	}
}

// TranscriptTransformer mutates the transcript before serialization.
type TranscriptTransformer func(*Transcript) error

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithTranscriptTransformer allows callers to mutate the transcript prior
// to serialization.
func WithTranscriptTransformer(fn TranscriptTransformer) Option {
	return func(r *Renderer) {
		r.transformer = fn
	}
}

// WithTheme replaces the prefixes and styles.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithMaxSteps bounds the number of menu prompts. Zero means unlimited.
func WithMaxSteps(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.maxSteps = n
		}
	}
}
