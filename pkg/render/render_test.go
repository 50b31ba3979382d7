package render_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-payforms/pkg/elements"
	"github.com/goliatone/go-payforms/pkg/forms"
	"github.com/goliatone/go-payforms/pkg/i18n"
	"github.com/goliatone/go-payforms/pkg/render"
	"github.com/goliatone/go-payforms/pkg/transform"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

type namedRenderer string

func (r namedRenderer) Name() string        { return string(r) }
func (r namedRenderer) ContentType() string { return "text/plain" }
func (r namedRenderer) Render(context.Context, render.Form, render.RenderOptions) ([]byte, error) {
	return []byte(r), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("vanilla"))
	registry.MustRegister(namedRenderer("json"))

	if err := registry.Register(namedRenderer("json")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected empty name error")
	}
	if diff := cmp.Diff([]string{"json", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if _, err := registry.Get("tui"); !errors.Is(err, render.ErrRendererNotFound) || !registry.Has("vanilla") {
		t.Fatalf("unexpected lookup results: %v", err)
	}
}

type typedRenderer struct {
	name        string
	contentType string
}

func (r typedRenderer) Name() string        { return r.name }
func (r typedRenderer) ContentType() string { return r.contentType }
func (r typedRenderer) Render(context.Context, render.Form, render.RenderOptions) ([]byte, error) {
	return nil, nil
}

func TestRegistry_Negotiate(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(typedRenderer{name: "vanilla", contentType: "text/html; charset=utf-8"})
	registry.MustRegister(typedRenderer{name: "json", contentType: "application/json"})
	registry.MustRegister(typedRenderer{name: "json-pretty", contentType: "application/json"})

	cases := []struct {
		accept string
		want   string
		ok     bool
	}{
		{accept: "application/json", want: "json", ok: true},
		{accept: "text/html,application/xhtml+xml;q=0.9", want: "vanilla", ok: true},
		{accept: "application/xml, application/json;q=0.8", want: "json", ok: true},
		{accept: "*/*"},
		{accept: ""},
	}
	for _, tc := range cases {
		got, ok := registry.Negotiate(tc.accept)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Negotiate(%q) = %q, %v; want %q, %v", tc.accept, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMapErrorPayload_Identifiers(t *testing.T) {
	form := render.Form{
		Method:   string(forms.MethodAfterpayClearpay),
		Elements: transform.Transform(forms.AfterpayClearpayForm, nil),
	}

	payload := map[string][]string{
		"billing_details[name]":                     {"Name is required", " Name is required "},
		"/body/billing_details/email":               {"Email invalid"},
		"billing_details.address.postal_code":       {"Postal code invalid"},
		"payload.billing_details.address.country.0": {"Unsupported"},
		"non_field_errors":                          {"Form level error"},
		"request/body/unknown-field":                {"Falls back to form errors"},
	}
	mapped := render.MapErrorPayload(form, payload)

	wantFields := map[string][]string{
		string(elements.IdentifierName):       {"Name is required"},
		string(elements.IdentifierEmail):      {"Email invalid"},
		string(elements.IdentifierPostalCode): {"Postal code invalid"},
		string(elements.IdentifierCountry):    {"Unsupported"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	wantForm := []string{"Falls back to form errors", "Form level error"}
	if diff := cmp.Diff(wantForm, mapped.Form, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	if diff := cmp.Diff([]string{"First", "Second", "third"}, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestText_Fallbacks(t *testing.T) {
	opts := render.RenderOptions{Locale: "es", Translator: stubTranslator{"email": "Correo"}}
	if got := render.Text(opts, "email"); got != "Correo" {
		t.Fatalf("expected translation, got %q", got)
	}
	if got := render.Text(opts, "iban"); got != "iban" {
		t.Fatalf("expected key fallback, got %q", got)
	}

	var gotErr error
	opts = render.RenderOptions{OnMissing: func(_, key string, _ []any, err error) string {
		gotErr = err
		return "[" + key + "]"
	}}
	if got := render.Text(opts, "email"); got != "[email]" {
		t.Fatalf("expected OnMissing output, got %q", got)
	}
	if !errors.Is(gotErr, render.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", gotErr)
	}
}

func TestTemplateI18nFuncs(t *testing.T) {
	funcs := render.TemplateI18nFuncs(i18n.Default(), render.TemplateI18nConfig{})
	translate := funcs["translate"].(func(any, string, ...any) string)
	current := funcs["current_locale"].(func(any) string)

	if got := translate(map[string]any{"locale": "de"}, "billing_details"); got != "Rechnungsdetails" {
		t.Fatalf("unexpected translation %q", got)
	}
	if got := current(map[string]string{"locale": "de-AT"}); got != "de-AT" {
		t.Fatalf("unexpected locale %q", got)
	}
	if got := translate("en", "missing_key"); got != "missing_key" {
		t.Fatalf("expected key fallback, got %q", got)
	}
}

func TestBuildView_AuBecsDebit(t *testing.T) {
	out := transform.Transform(forms.AuBecsDebitForm, transform.InitialValues{
		elements.IdentifierEmail: "jane@",
	}, transform.WithMerchantName("Example Ltd"))

	view := render.BuildView(render.Form{Method: "au_becs_debit", Elements: out}, render.RenderOptions{
		Locale:         "en",
		Translator:     i18n.Default(),
		ShowValidation: true,
		Errors:         map[string][]string{"au_becs_debit[bsb_number]": {"Rejected by bank"}},
		Hidden:         map[string]string{"type": "au_becs_debit", " ": "dropped"},
	})

	if view.Complete {
		t.Fatalf("form with blank required fields must not be complete")
	}
	if len(view.Nodes) != 5 {
		t.Fatalf("expected 5 nodes, got %d", len(view.Nodes))
	}

	email := view.Nodes[0]
	if email.Label != "Email" || email.Keyboard != "email" || email.Status != "incomplete" {
		t.Fatalf("unexpected email node: %+v", email)
	}
	if diff := cmp.Diff([]string{"Your email address is incomplete."}, email.Errors); diff != "" {
		t.Fatalf("email errors mismatch (-want +got):\n%s", diff)
	}

	bsb := view.Nodes[1]
	wantBsb := []string{"Rejected by bank", "This field is required"}
	if diff := cmp.Diff(wantBsb, bsb.Errors); diff != "" {
		t.Fatalf("bsb errors mismatch (-want +got):\n%s", diff)
	}

	mandate := view.Nodes[4]
	if mandate.Input || !strings.Contains(mandate.Text, "on behalf of Example Ltd") {
		t.Fatalf("unexpected mandate node: %+v", mandate)
	}
	if diff := cmp.Diff([]render.HiddenField{{Name: "type", Value: "au_becs_debit"}}, view.Hidden); diff != "" {
		t.Fatalf("hidden mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildView_CountryOptionsAndTheme(t *testing.T) {
	out := transform.Transform(forms.SepaDebitForm, nil, transform.WithDefaultCountry("NL"))
	selection := &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens:  map[string]string{"brand.primary": "#123456", "radius": "4px"},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{"brand.primary": "#654321"}},
			},
		},
	}
	view := render.BuildView(render.Form{Method: "sepa_debit", Elements: out}, render.RenderOptions{Theme: selection})

	section := view.Nodes[3]
	if section.Kind != string(elements.KindSection) || len(section.Children) != 1 {
		t.Fatalf("unexpected section node: %+v", section)
	}
	country := section.Children[0].Children[0]
	if country.Value != "NL" || country.Display != "Netherlands" {
		t.Fatalf("unexpected country node: %+v", country)
	}
	selected := 0
	for _, opt := range country.Options {
		if opt.Selected {
			selected++
		}
	}
	if selected != 1 {
		t.Fatalf("expected exactly one selected option, got %d", selected)
	}

	wantVars := []render.CSSVar{{Name: "--brand-primary", Value: "#654321"}, {Name: "--radius", Value: "4px"}}
	if diff := cmp.Diff(wantVars, view.Theme.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
}
