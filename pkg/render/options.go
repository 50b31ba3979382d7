package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers use to customise
// their output without touching the element tree.
type RenderOptions struct {
	// Locale selects the catalog used for labels, mandate text and error
	// messages.
	Locale     string
	Translator Translator
	// OnMissing decides what to show when a key cannot be translated. The
	// default returns the fallback text, then the key.
	OnMissing MissingTranslationHandler
	// Errors surfaces server-side validation feedback keyed by identifier.
	// Keys that do not match an element become form-level errors.
	Errors map[string][]string
	// ShowValidation adds each controller's own error (required, incomplete,
	// invalid) to the element messages. Leave it off for the first render.
	ShowValidation bool
	// FormID overrides the generated form instance id.
	FormID string
	// Action is the submission target for HTML output.
	Action string
	// Hidden fields are emitted alongside the visible inputs.
	Hidden map[string]string
	// Theme carries the selected go-theme manifest; its tokens become CSS
	// custom properties in HTML output.
	Theme *theme.Selection
}
