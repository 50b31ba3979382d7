package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-payforms/pkg/collect"
	"github.com/goliatone/go-payforms/pkg/forms"
	"github.com/goliatone/go-payforms/pkg/i18n"
	"github.com/goliatone/go-payforms/pkg/render"
	"github.com/goliatone/go-payforms/pkg/renderers/jsonview"
	"github.com/goliatone/go-payforms/pkg/renderers/vanilla"
	"github.com/goliatone/go-payforms/pkg/transform"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTranslator sets the translator handed to renderers when the request
// does not carry one.
func WithTranslator(t render.Translator) Option {
	return func(o *Orchestrator) {
		o.translator = t
	}
}

// WithMerchantName sets the merchant used in mandate text when the request
// does not name one.
func WithMerchantName(name string) Option {
	return func(o *Orchestrator) {
		o.merchantName = name
	}
}

// WithDefaultCountry preselects a billing country for address blocks.
func WithDefaultCountry(code string) Option {
	return func(o *Orchestrator) {
		o.defaultCountry = code
	}
}

// WithTransformers registers transformers that run against the element tree
// after it is built and before rendering.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		o.transformers = append(o.transformers, transformers...)
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the pipeline from a payment-method key to rendered
// output. It applies defaults (vanilla and json renderers, embedded catalog)
// while remaining open to injection for advanced callers.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	translator      render.Translator
	merchantName    string
	defaultCountry  string
	transformers    []Transformer
	themes          ThemeSelector
	themeName       string
	themeVariant    string
	logger          *log.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one form render.
type Request struct {
	// Method is the payment-method key, e.g. "sepa_debit".
	Method string

	// Values seeds the element controllers.
	Values transform.InitialValues

	// Submitted values are applied as keyboard input after the tree is
	// built. They are filtered and validated like typed input.
	Submitted map[string]string

	// MerchantName overrides the orchestrator default for this request.
	MerchantName string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant are resolved through the configured theme
	// selector. Empty values use the orchestrator defaults.
	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// Build resolves the layout for req.Method and returns the element tree
// after transformers have run. It fails only for unknown methods or
// transformer errors.
func (o *Orchestrator) Build(ctx context.Context, req Request) (render.Form, error) {
	if ctx == nil {
		return render.Form{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return render.Form{}, err
	}

	method, err := forms.ParseMethod(req.Method)
	if err != nil {
		return render.Form{}, fmt.Errorf("orchestrator: %w", err)
	}

	merchant := strings.TrimSpace(req.MerchantName)
	if merchant == "" {
		merchant = o.merchantName
	}

	form := render.Form{
		Method: string(method),
		Elements: transform.Transform(forms.MustLookup(method), req.Values,
			transform.WithMerchantName(merchant),
			transform.WithDefaultCountry(o.defaultCountry),
		),
	}
	if len(req.Submitted) > 0 {
		collect.Apply(form.Elements, req.Submitted)
	}

	for _, t := range o.transformers {
		if t == nil {
			continue
		}
		if err := t.Transform(ctx, &form); err != nil {
			return render.Form{}, fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}
	o.logger.Debug("form built", "method", method, "elements", len(form.Elements))
	return form, nil
}

// Generate builds the form for req and renders it with the selected renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	form, err := o.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts, err := o.renderOptions(req)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	o.logger.Debug("form rendered", "method", form.Method, "renderer", renderer.Name(), "bytes", len(output))
	return output, nil
}

// Renderer returns the renderer Generate would use for name.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	return o.rendererFor(name)
}

// Negotiate returns the name of the renderer matching an Accept header, or
// the default renderer when nothing matches.
func (o *Orchestrator) Negotiate(accept string) string {
	if o.registry != nil {
		if name, ok := o.registry.Negotiate(accept); ok {
			return name
		}
	}
	return o.defaultRenderer
}

// Translator returns the translator handed to renderers by default.
func (o *Orchestrator) Translator() render.Translator {
	return o.translator
}

func (o *Orchestrator) renderOptions(req Request) (render.RenderOptions, error) {
	opts := req.RenderOptions
	if opts.Translator == nil {
		opts.Translator = o.translator
	}
	if opts.Theme == nil {
		selection, err := o.selectTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return render.RenderOptions{}, err
		}
		opts.Theme = selection
	}
	return opts, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.translator == nil {
		o.translator = i18n.Default()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
		o.registry.MustRegister(jsonview.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
