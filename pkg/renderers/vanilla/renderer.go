// Package vanilla renders payment forms as plain HTML with no client-side
// runtime. Templates are pongo2 files; the built-in bundle lives in
// templates/.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-payforms/pkg/controller"
	"github.com/goliatone/go-payforms/pkg/render"
	rendertemplate "github.com/goliatone/go-payforms/pkg/render/template"
	"github.com/goliatone/go-payforms/pkg/render/template/gotemplate"
)

const formTemplate = "form"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	newID            func() string
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
		cfg.templatesDir = ""
	}
}

// WithTemplatesDir loads templates from a directory on disk instead of the
// built-in bundle. The directory must hold form.tmpl and every template it
// includes.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path = strings.TrimSpace(path); path != "" {
			cfg.templatesDir = path
		}
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithIDGenerator replaces the uuid-based form id generator.
func WithIDGenerator(fn func() string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.newID = fn
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	newID     func() string
}

// New constructs the vanilla renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		newID:      func() string { return "pf-" + uuid.NewString() },
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		source := gotemplate.WithFS(cfg.templateFS)
		if cfg.templatesDir != "" {
			source = gotemplate.WithBaseDir(cfg.templatesDir)
		}
		engine, err := gotemplate.New(source, gotemplate.WithExtension(".tmpl"))
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Renderer{templates: renderer, newID: cfg.newID}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view := render.BuildView(form, opts)
	if view.ID == "" {
		view.ID = r.newID()
	}

	data := render.TemplateI18nFuncs(opts.Translator, render.TemplateI18nConfig{OnMissing: opts.OnMissing})
	data["form"] = view
	data["locale"] = opts.Locale
	data["rows"] = flatten(view.ID, view.Nodes, nil)
	data["classes"] = chromeClasses()
	data["theme_style"] = themeStyle(view.Theme)

	result, err := r.templates.RenderTemplate(formTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// row is one line of template output. Composite nodes open and close a
// fieldset around their children, so templates never recurse.
type row struct {
	Open           bool        `json:"open,omitempty"`
	Close          bool        `json:"close,omitempty"`
	DomID          string      `json:"dom_id,omitempty"`
	Node           render.Node `json:"node"`
	HTML           string      `json:"html,omitempty"`
	InputType      string      `json:"input_type,omitempty"`
	InputMode      string      `json:"input_mode,omitempty"`
	Autocapitalize string      `json:"autocapitalize,omitempty"`
}

func flatten(formID string, nodes []render.Node, out []row) []row {
	for _, node := range nodes {
		domID := domID(formID, node.ID)
		if node.Kind == "section" || node.Kind == "address" {
			children := node.Children
			node.Children = nil
			out = append(out, row{Open: true, DomID: domID, Node: node})
			out = flatten(formID, children, out)
			out = append(out, row{Close: true, Node: node})
			continue
		}

		r := row{DomID: domID, Node: node}
		switch node.Kind {
		case "mandate_text", "static_text":
			r.HTML = sanitizeText(node.Text)
		default:
			r.InputType, r.InputMode = inputAttributes(controller.KeyboardType(node.Keyboard))
			r.Autocapitalize = autocapitalize(controller.Capitalization(node.Capitalization))
		}
		out = append(out, r)
	}
	return out
}

// domID derives an element id from the form id and a field identifier:
// billing_details[address][city] becomes <form>-billing_details-address-city.
func domID(formID, identifier string) string {
	cleaned := strings.Trim(strings.NewReplacer("[", "-", "]", "").Replace(identifier), "-")
	return formID + "-" + cleaned
}

func inputAttributes(keyboard controller.KeyboardType) (string, string) {
	switch keyboard {
	case controller.KeyboardEmail:
		return "email", "email"
	case controller.KeyboardNumber:
		return "text", "numeric"
	case controller.KeyboardPhone:
		return "tel", "tel"
	case controller.KeyboardURI:
		return "url", "url"
	case controller.KeyboardPassword:
		return "password", ""
	case controller.KeyboardNumberPassword:
		return "password", "numeric"
	default:
		return "text", ""
	}
}

func autocapitalize(rule controller.Capitalization) string {
	switch rule {
	case controller.CapitalizationCharacters, controller.CapitalizationWords, controller.CapitalizationSentences:
		return string(rule)
	default:
		return "off"
	}
}

// themeStyle renders theme tokens as CSS custom properties. Values that
// could break out of the declaration are dropped.
func themeStyle(theme *render.ThemeView) string {
	if theme == nil {
		return ""
	}
	parts := make([]string, 0, len(theme.CSSVars))
	for _, v := range theme.CSSVars {
		if strings.ContainsAny(v.Value, ";{}<>\"") {
			continue
		}
		parts = append(parts, v.Name+": "+strings.TrimSpace(v.Value))
	}
	return strings.Join(parts, "; ")
}
