// Package render defines the renderer contract shared by the HTML, JSON and
// terminal front ends, plus the helpers they use to localize labels and map
// validation errors onto form elements.
package render

import (
	"context"

	"github.com/goliatone/go-payforms/pkg/elements"
)

// Renderer converts a Form into a byte representation (HTML, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form Form, options RenderOptions) ([]byte, error)
}

// Form is the unit handed to renderers: the elements produced by the
// transformer for one payment method.
type Form struct {
	// Method is the payment method key, e.g. "au_becs_debit".
	Method   string
	Elements []elements.FormElement
}
