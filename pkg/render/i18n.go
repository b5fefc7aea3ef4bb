package render

import (
	"errors"
	"fmt"
	"strings"
)

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides what to show when a key cannot be
// translated.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// ErrMissingTranslator is passed to the missing handler when no translator
// is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// ErrMissingKey is returned by Messages for unknown keys.
var ErrMissingKey = errors.New("render: missing translation key")

// Chrome message keys shared by renderers.
const (
	KeyGoodExamples = "section.good"
	KeyBadExamples  = "section.bad"
	KeyDetails      = "panel.details"
	KeySkipLink     = "page.skip"
	KeyFindings     = "audit.findings"
	KeyTap          = "control.tap"
)

var defaultMessages = map[string]string{
	KeyGoodExamples: "Good Examples",
	KeyBadExamples:  "Bad Examples",
	KeyDetails:      "Details",
	KeySkipLink:     "Skip to content",
	KeyFindings:     "%d accessibility findings",
	KeyTap:          "Activate",
}

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	if fallback, ok := defaultMessages[key]; ok {
		if len(args) > 0 && strings.Contains(fallback, "%") {
			return fmt.Sprintf(fallback, args...)
		}
		return fallback
	}
	return key
}

// Translate resolves key through opts, falling back to the built-in English
// chrome strings.
func Translate(opts RenderOptions, key string, args ...any) string {
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	if opts.Translator == nil {
		return onMissing(opts.Locale, key, args, ErrMissingTranslator)
	}
	msg, err := opts.Translator.Translate(opts.Locale, key, args...)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(opts.Locale, key, args, err)
	}
	return msg
}

// Messages is a map-backed Translator keyed by locale then message key. A
// locale such as "es-MX" falls back to "es".
type Messages map[string]map[string]string

// Translate implements Translator.
func (m Messages) Translate(locale, key string, args ...any) (string, error) {
	for _, candidate := range localeChain(locale) {
		if msg, ok := m[candidate][key]; ok {
			if len(args) > 0 && strings.Contains(msg, "%") {
				return fmt.Sprintf(msg, args...), nil
			}
			return msg, nil
		}
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrMissingKey, key, locale)
}

func localeChain(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil
	}
	chain := []string{locale}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		chain = append(chain, locale[:idx])
	}
	return chain
}

// SectionTitle localises the default "Good Examples"/"Bad Examples" headings
// and leaves authored titles untouched.
func SectionTitle(opts RenderOptions, kind, title string) string {
	switch {
	case kind == "good" && title == defaultMessages[KeyGoodExamples]:
		return Translate(opts, KeyGoodExamples)
	case kind == "bad" && title == defaultMessages[KeyBadExamples]:
		return Translate(opts, KeyBadExamples)
	case strings.TrimSpace(title) == "":
		return Translate(opts, "section."+kind)
	}
	return title
}

// PanelTitle localises the default "Details" disclosure title.
func PanelTitle(opts RenderOptions, title string) string {
	if title == "" || title == defaultMessages[KeyDetails] {
		return Translate(opts, KeyDetails)
	}
	return title
}
