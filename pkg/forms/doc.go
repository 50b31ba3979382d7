// Package forms is the static registry of payment-method form layouts. The
// registry is built once at package init and never mutated afterwards.
package forms
