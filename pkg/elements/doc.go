// Package elements defines the declarative field specs that describe a
// payment-method form, and the renderable form elements the transformer
// produces from them.
//
// Both FieldSpec and FormElement are closed sum types: only this package can
// add variants, so a type switch over them is exhaustive. Specs are immutable
// values built once at package init; elements are created per render and own
// their controllers.
package elements
