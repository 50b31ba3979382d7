// Package tui fills payment forms interactively in a terminal. Each input
// element is prompted until its controller reports it complete; the
// collected values are returned as the rendered payload.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-payforms/pkg/collect"
	"github.com/goliatone/go-payforms/pkg/controller"
	"github.com/goliatone/go-payforms/pkg/elements"
	"github.com/goliatone/go-payforms/pkg/render"
)

// Renderer implements render.Renderer for terminal sessions.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
	maxAttempts       int
}

// New constructs a TUI renderer with defaults (survey driver, JSON output,
// prefixes for sections and errors).
func New(options ...Option) *Renderer {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		theme:        Theme{SectionPrefix: "== ", ErrorPrefix: "! "},
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render prompts for every input element of form and serializes the
// collected values. Controllers are updated in place, so callers can read
// them back with the collect package afterwards.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	mapping := render.MapErrorPayload(form, opts.Errors)
	for _, message := range mapping.Form {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return nil, err
		}
	}

	session := &session{r: r, opts: opts, fieldErrors: mapping.Fields}
	if err := session.prompt(ctx, form.Elements); err != nil {
		return nil, err
	}

	values := collect.Strings(collect.Values(form.Elements))
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(values)
}

type session struct {
	r           *Renderer
	opts        render.RenderOptions
	fieldErrors map[string][]string
}

func (s *session) prompt(ctx context.Context, items []elements.FormElement) error {
	for _, item := range items {
		if err := s.promptElement(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) promptElement(ctx context.Context, item elements.FormElement) error {
	driver := s.r.driver
	switch e := item.(type) {
	case *elements.TextFieldElement:
		return s.promptText(ctx, e)
	case *elements.DropdownElement:
		return s.promptDropdown(ctx, e)
	case *elements.StaticTextElement:
		return driver.Info(ctx, render.Text(s.opts, string(e.Text)))
	case *elements.MandateTextElement:
		if err := driver.Info(ctx, render.Text(s.opts, string(e.Text), e.MerchantName)); err != nil {
			return err
		}
		accepted, err := driver.Confirm(ctx, ConfirmConfig{
			Message: render.Text(s.opts, "mandate_accept"),
			Default: true,
		})
		if err != nil {
			return err
		}
		if !accepted {
			return ErrMandateDeclined
		}
		return nil
	case *elements.SectionElement:
		if err := driver.Info(ctx, s.r.theme.SectionPrefix+render.Text(s.opts, string(e.Title))); err != nil {
			return err
		}
		return s.prompt(ctx, e.Fields)
	case *elements.AddressElement:
		return s.prompt(ctx, e.Fields)
	default:
		return nil
	}
}

func (s *session) promptText(ctx context.Context, e *elements.TextFieldElement) error {
	ctrl := e.Controller
	if ctrl == nil {
		return nil
	}
	if err := s.showFieldErrors(ctx, e.ID); err != nil {
		return err
	}

	label := render.Text(s.opts, string(e.Label))
	secret := ctrl.KeyboardType() == controller.KeyboardPassword || ctrl.KeyboardType() == controller.KeyboardNumberPassword
	for attempt := 1; ; attempt++ {
		cfg := InputConfig{Message: label, Default: ctrl.DisplayValue()}
		if ctrl.Optional() {
			cfg.Help = "optional"
		}

		var (
			response string
			err      error
		)
		if secret {
			response, err = s.r.driver.Password(ctx, cfg)
		} else {
			response, err = s.r.driver.Input(ctx, cfg)
		}
		if err != nil {
			return err
		}

		ctrl.SetRawValue(response)
		if ctrl.IsComplete() {
			return nil
		}
		if err := s.retry(ctx, e.ID, ctrl.Error(), attempt); err != nil {
			return err
		}
	}
}

func (s *session) promptDropdown(ctx context.Context, e *elements.DropdownElement) error {
	ctrl := e.Controller
	if ctrl == nil {
		return nil
	}
	if err := s.showFieldErrors(ctx, e.ID); err != nil {
		return err
	}

	options := ctrl.Options()
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}
	for attempt := 1; ; attempt++ {
		idx, err := s.r.driver.Select(ctx, SelectConfig{
			Message:      render.Text(s.opts, string(e.Label)),
			Options:      labels,
			DefaultIndex: ctrl.SelectedIndex(),
			PageSize:     10,
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(options) {
			ctrl.SetRawValue(options[idx].Value)
		}
		if ctrl.IsComplete() {
			return nil
		}
		if err := s.retry(ctx, e.ID, ctrl.Error(), attempt); err != nil {
			return err
		}
	}
}

func (s *session) retry(ctx context.Context, id elements.IdentifierSpec, errKey string, attempt int) error {
	if limit := s.r.maxAttempts; limit > 0 && attempt >= limit {
		return fmt.Errorf("%w: %s", ErrTooManyAttempts, id)
	}
	return s.r.driver.Info(ctx, s.r.theme.ErrorPrefix+render.Text(s.opts, errKey))
}

func (s *session) showFieldErrors(ctx context.Context, id elements.IdentifierSpec) error {
	for _, message := range s.fieldErrors[id.String()] {
		if err := s.r.driver.Info(ctx, s.r.theme.ErrorPrefix+message); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) serialize(values map[string]string) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		form := url.Values{}
		for key, value := range values {
			form.Set(key, value)
		}
		return []byte(form.Encode()), nil
	case OutputFormatPrettyText:
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var b strings.Builder
		for _, key := range keys {
			fmt.Fprintf(&b, "%s: %s\n", key, values[key])
		}
		return []byte(b.String()), nil
	default:
		out, err := json.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("tui: encode values: %w", err)
		}
		return out, nil
	}
}

var _ render.Renderer = (*Renderer)(nil)
