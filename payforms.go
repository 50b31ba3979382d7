// Package payforms renders payment-method input forms. The root package is a
// thin facade over pkg/orchestrator for callers that want a single import.
package payforms

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-payforms/pkg/forms"
	"github.com/goliatone/go-payforms/pkg/orchestrator"
	"github.com/goliatone/go-payforms/pkg/render"
	"github.com/goliatone/go-payforms/pkg/renderers/vanilla"
	"github.com/goliatone/go-payforms/pkg/transform"
)

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// RenderOptions describes per-request overrides that renderers use to
// localise output or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// InitialValues seeds form controllers, keyed by identifier.
type InitialValues = transform.InitialValues

// Method keys a payment method.
type Method = forms.Method

// Methods lists the registered payment methods.
func Methods() []Method {
	return forms.Methods()
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the form for method with the default vanilla
// renderer. It is the simplest entry point for callers that just want HTML.
func GenerateHTML(ctx context.Context, method string, values InitialValues, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Method:   method,
		Values:   values,
		Renderer: "vanilla",
	})
}

// GenerateJSON renders the localized element tree for method as JSON.
func GenerateJSON(ctx context.Context, method string, values InitialValues, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Method:   method,
		Values:   values,
		Renderer: "json",
	})
}

// WithThemeSelector passes a theme selector through to the orchestrator so
// theme and variant choices are resolved ahead of rendering.
func WithThemeSelector(selector orchestrator.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeManifests registers go-theme manifests and selects defaultTheme.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemeManifests(defaultTheme, defaultVariant, manifests...)
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so
// callers can reuse or extend them without importing the renderer package.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the default stylesheet.
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
