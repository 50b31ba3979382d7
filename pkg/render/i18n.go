package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-payforms/pkg/i18n"
)

// Translator resolves translation keys for a locale.
type Translator = i18n.Translator

// MissingTranslationHandler returns the text to show when key cannot be
// resolved. Args carries the message arguments plus a trailing
// map[string]any{"default": fallback}.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// ErrMissingTranslator is passed to the missing handler when no translator
// was configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	for i := len(args) - 1; i >= 0; i-- {
		hints, ok := args[i].(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := hints["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}

// Text resolves key with the translator configured on opts. Args are applied
// to the message (the mandate texts take the merchant name).
func Text(opts RenderOptions, key string, args ...any) string {
	return translate(opts.Locale, key, "", opts.Translator, opts.OnMissing, args...)
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	params := append(append([]any(nil), args...), map[string]any{"default": fallback})

	if t == nil {
		return onMissing(locale, key, params, ErrMissingTranslator)
	}
	result, err := t.Translate(locale, key, args...)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, params, err)
}
