// Package controller holds the per-element input state that form elements
// expose to renderers: the current value, the value the element was seeded
// with, and the validation state derived from a TextFieldConfig.
//
// Controllers are created fresh by the transformer for every render and are
// safe for concurrent use. Error messages are reported as translation keys so
// the i18n layer decides how they read.
package controller
