package vanilla_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-payforms/pkg/elements"
	"github.com/goliatone/go-payforms/pkg/forms"
	"github.com/goliatone/go-payforms/pkg/i18n"
	"github.com/goliatone/go-payforms/pkg/render"
	"github.com/goliatone/go-payforms/pkg/renderers/vanilla"
	"github.com/goliatone/go-payforms/pkg/transform"
)

func newRenderer(t *testing.T, opts ...vanilla.Option) *vanilla.Renderer {
	t.Helper()
	opts = append([]vanilla.Option{vanilla.WithIDGenerator(func() string { return "pf-test" })}, opts...)
	renderer, err := vanilla.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestRenderer_AuBecsDebit(t *testing.T) {
	out := transform.Transform(forms.AuBecsDebitForm, transform.InitialValues{
		elements.IdentifierName: "Jane Doe",
	}, transform.WithMerchantName("Example <script>Ltd</script>"))

	html, err := newRenderer(t).Render(context.Background(), render.Form{Method: "au_becs_debit", Elements: out}, render.RenderOptions{
		Locale:     "en",
		Translator: i18n.Default(),
		Action:     "/forms/au_becs_debit",
		Hidden:     map[string]string{"type": "au_becs_debit"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	output := string(html)

	for _, want := range []string{
		`<form id="pf-test" class="payforms-form" method="post" action="/forms/au_becs_debit" data-method="au_becs_debit" lang="en"`,
		`<input type="hidden" name="type" value="au_becs_debit">`,
		`id="pf-test-au_becs_debit-bsb_number" name="au_becs_debit[bsb_number]" type="text" inputmode="numeric"`,
		`name="billing_details[email]" type="email" inputmode="email" autocapitalize="off"`,
		`name="billing_details[name]" type="text" autocapitalize="words" value="Jane Doe" required`,
		`<label for="pf-test-billing_details-name">Name on account</label>`,
		`<button type="submit" data-incomplete>Continue</button>`,
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q\n%s", want, output)
		}
	}
	if strings.Contains(output, "<script>") {
		t.Fatalf("mandate text must be sanitized:\n%s", output)
	}
	if !strings.Contains(output, `class="payforms-mandate"`) || !strings.Contains(output, "Ltd") {
		t.Fatalf("expected mandate paragraph:\n%s", output)
	}
}

func TestRenderer_AddressFieldsetsAndErrors(t *testing.T) {
	out := transform.Transform(forms.SepaDebitForm, transform.InitialValues{
		elements.IdentifierCountry: "DE",
		"sepa_debit[iban]":         "DE89370400440532013000",
	})

	html, err := newRenderer(t).Render(context.Background(), render.Form{Method: "sepa_debit", Elements: out}, render.RenderOptions{
		Locale:     "de",
		Translator: i18n.Default(),
		FormID:     "checkout",
		Errors: map[string][]string{
			"billing_details[address][postal_code]": {"Unbekannte Postleitzahl"},
			"non_field_errors":                      {"Bitte prüfen Sie Ihre Angaben"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	output := string(html)

	for _, want := range []string{
		`<form id="checkout"`,
		`<legend>Rechnungsdetails</legend>`,
		`<fieldset id="checkout-address" class="payforms-section" data-kind="address">`,
		`<option value="DE" selected>Germany</option>`,
		`value="DE89 3704 0044 0532 0130 00"`,
		`autocapitalize="characters"`,
		`aria-describedby="checkout-billing_details-address-postal_code-errors"`,
		`<li>Unbekannte Postleitzahl</li>`,
		`<li>Bitte prüfen Sie Ihre Angaben</li>`,
		`<button type="submit" data-incomplete>Weiter</button>`,
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q\n%s", want, output)
		}
	}
	if got := strings.Count(output, "<fieldset"); got != strings.Count(output, "</fieldset>") || got != 2 {
		t.Fatalf("expected 2 balanced fieldsets, got %d", got)
	}
}

func TestRenderer_ThemeTokens(t *testing.T) {
	out := transform.Transform(forms.BancontactForm, nil)
	html, err := newRenderer(t).Render(context.Background(), render.Form{Method: "bancontact", Elements: out}, render.RenderOptions{
		Theme: &theme.Selection{
			Theme: "acme",
			Manifest: &theme.Manifest{
				Name:   "acme",
				Tokens: map[string]string{"brand.primary": "#123456", "evil": "red; } body {"},
			},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	output := string(html)
	if !strings.Contains(output, `style="--brand-primary: #123456" data-theme="acme"`) {
		t.Fatalf("expected theme css vars:\n%s", output)
	}
	if strings.Contains(output, "body {") {
		t.Fatalf("unsafe token value leaked:\n%s", output)
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"form.tmpl": {Data: []byte(`{{ form.method }}:{% for row in rows %}{{ row.node.id }};{% endfor %}`)},
	}
	out := transform.Transform(forms.BancontactForm, nil)
	html, err := newRenderer(t, vanilla.WithTemplatesFS(files)).Render(context.Background(), render.Form{Method: "bancontact", Elements: out}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(html); got != "bancontact:billing_details[name];billing_details[email];" {
		t.Fatalf("unexpected custom output %q", got)
	}
}

func TestRenderer_TemplatesDir(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"form.tmpl":  `{{ form.method }}{% for row in rows %}{% include "field.tmpl" %}{% endfor %}`,
		"field.tmpl": `|{{ row.node.id }}`,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	out := transform.Transform(forms.BancontactForm, nil)
	form := render.Form{Method: "bancontact", Elements: out}

	html, err := newRenderer(t, vanilla.WithTemplatesDir(dir)).Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(html); got != "bancontact|billing_details[name]|billing_details[email]" {
		t.Fatalf("unexpected directory template output %q", got)
	}

	files := fstest.MapFS{"form.tmpl": {Data: []byte(`fs:{{ form.method }}`)}}
	html, err = newRenderer(t, vanilla.WithTemplatesDir(dir), vanilla.WithTemplatesFS(files)).Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render fs: %v", err)
	}
	if got := string(html); got != "fs:bancontact" {
		t.Fatalf("later WithTemplatesFS should win, got %q", got)
	}
}

type stubTemplateRenderer struct {
	names []string
}

func (s *stubTemplateRenderer) Render(name string, _ any, _ ...io.Writer) (string, error) {
	return name, nil
}

func (s *stubTemplateRenderer) RenderTemplate(name string, _ any, _ ...io.Writer) (string, error) {
	s.names = append(s.names, name)
	return "custom-output", nil
}

func (s *stubTemplateRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RegisterFilter(string, func(any, any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(any) error { return nil }

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{}
	renderer := newRenderer(t, vanilla.WithTemplateRenderer(stub))

	html, err := renderer.Render(context.Background(), render.Form{Method: "bancontact"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(html) != "custom-output" || len(stub.names) != 1 || stub.names[0] != "form" {
		t.Fatalf("unexpected stub usage: %q %v", html, stub.names)
	}
	if renderer.ContentType() != "text/html; charset=utf-8" || renderer.Name() != "vanilla" {
		t.Fatalf("unexpected renderer metadata")
	}
}

func TestAssetsFS_Stylesheet(t *testing.T) {
	data, err := fsReadFile(vanilla.StylesheetName)
	if err != nil || !strings.Contains(string(data), ".payforms-form") {
		t.Fatalf("expected embedded stylesheet, err=%v", err)
	}
}
