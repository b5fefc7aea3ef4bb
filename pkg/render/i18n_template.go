package render

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// TemplateI18nConfig configures the template translation helpers.
type TemplateI18nConfig struct {
	// LocaleKey names the field read when templates pass a map or struct
	// instead of a locale string. Defaults to "locale".
	LocaleKey string
	// FuncName overrides the helper name. Defaults to "translate".
	FuncName  string
	OnMissing MissingTranslationHandler
}

// TemplateI18nFuncs returns helpers for template engines:
//
//	translate(localeSrc, key, ...args) string
//	current_locale(localeSrc) string
//
// localeSrc is a locale string or a value holding one under LocaleKey.
func TemplateI18nFuncs(t Translator, cfg TemplateI18nConfig) map[string]any {
	localeKey := strings.TrimSpace(cfg.LocaleKey)
	if localeKey == "" {
		localeKey = "locale"
	}
	translateName := strings.TrimSpace(cfg.FuncName)
	if translateName == "" {
		translateName = "translate"
	}

	return map[string]any{
		translateName: func(localeSrc any, key string, params ...any) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			return Translate(RenderOptions{
				Locale:     resolveLocale(localeSrc, localeKey),
				Translator: t,
				OnMissing:  cfg.OnMissing,
			}, key, wholeNumbers(params)...)
		},
		"current_locale": func(localeSrc any) string {
			return resolveLocale(localeSrc, localeKey)
		},
	}
}

// wholeNumbers turns integral floats back into ints. Template data is JSON
// decoded, so a count reaches the helper as float64 and would break %d.
func wholeNumbers(params []any) []any {
	out := make([]any, len(params))
	for idx, param := range params {
		if f, ok := param.(float64); ok && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			out[idx] = int(f)
			continue
		}
		out[idx] = param
	}
	return out
}

func resolveLocale(src any, key string) string {
	switch data := src.(type) {
	case nil:
		return ""
	case string:
		return data
	case map[string]string:
		return data[key]
	case map[string]any:
		if v, ok := data[key]; ok && v != nil {
			return strings.TrimSpace(fmt.Sprint(v))
		}
		return ""
	}

	value := reflect.ValueOf(src)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ""
	}
	field := value.FieldByNameFunc(func(name string) bool {
		return strings.EqualFold(name, key)
	})
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
