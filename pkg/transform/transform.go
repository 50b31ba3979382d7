package transform

import (
	"fmt"

	"github.com/goliatone/go-payforms/pkg/controller"
	"github.com/goliatone/go-payforms/pkg/elements"
)

// Transform converts layout into form elements seeded from initial. The
// output mirrors the layout: same length, same order, same identifiers, with
// composite specs nesting their children in declaration order.
func Transform(layout elements.LayoutSpec, initial InitialValues, opts ...Option) []elements.FormElement {
	cfg := config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	t := &transformer{cfg: cfg, initial: initial}
	return t.transformAll(layout.Items())
}

type transformer struct {
	cfg     config
	initial InitialValues
	// country is the most recent country controller, read by postal codes
	// declared after it in the same address.
	country *controller.DropdownController
}

func (t *transformer) transformAll(specs []elements.FieldSpec) []elements.FormElement {
	out := make([]elements.FormElement, 0, len(specs))
	for _, spec := range specs {
		out = append(out, t.transform(spec))
	}
	return out
}

func (t *transformer) transform(spec elements.FieldSpec) elements.FormElement {
	switch s := spec.(type) {
	case elements.NameSpec:
		return t.textField(s.ID, elements.KindName, s.Label, controller.NameConfig(), false)
	case elements.EmailSpec:
		return t.textField(s.ID, elements.KindEmail, s.Label, controller.EmailConfig{}, false)
	case elements.SimpleTextSpec:
		cfg := controller.SimpleTextConfig{Caps: s.Capitalization, Keyboard: s.KeyboardType}
		return t.textField(s.ID, elements.KindSimpleText, s.Label, cfg, s.Optional)
	case elements.BsbSpec:
		return t.textField(s.ID, elements.KindBsb, s.Label, controller.BsbConfig{}, false)
	case elements.AuBankAccountNumberSpec:
		return t.textField(s.ID, elements.KindAuAccountNumber, s.Label, controller.AuAccountNumberConfig{}, false)
	case elements.IbanSpec:
		return t.textField(s.ID, elements.KindIban, s.Label, controller.IbanConfig{}, false)
	case elements.PostalCodeSpec:
		return t.textField(s.ID, elements.KindPostalCode, s.Label, controller.PostalCodeConfig{Country: t.countrySource()}, false)
	case elements.CountrySpec:
		ctrl := controller.NewDropdownController(
			controller.CountryOptions(s.AllowedCountries),
			t.initial.lookup(s.ID),
			t.cfg.defaultCountry,
		)
		t.country = ctrl
		return &elements.DropdownElement{ID: s.ID, Label: s.Label, Controller: ctrl}
	case elements.StaticTextSpec:
		return &elements.StaticTextElement{ID: s.ID, Text: s.Text}
	case elements.MandateTextSpec:
		return &elements.MandateTextElement{ID: s.ID, Text: s.Text, MerchantName: t.cfg.merchantName}
	case elements.SectionSpec:
		return &elements.SectionElement{ID: s.ID, Title: s.Title, Fields: t.transformAll(s.Children())}
	case elements.AddressSpec:
		previous := t.country
		fields := t.transformAll(s.Children())
		t.country = previous
		return &elements.AddressElement{ID: s.ID, Fields: fields}
	default:
		panic(fmt.Sprintf("transform: unhandled field spec %T", spec))
	}
}

func (t *transformer) textField(id elements.IdentifierSpec, kind elements.Kind, label elements.TranslationID, cfg controller.TextFieldConfig, optional bool) *elements.TextFieldElement {
	return &elements.TextFieldElement{
		ID:         id,
		SpecKind:   kind,
		Label:      label,
		Controller: controller.NewTextFieldController(cfg, t.initial.lookup(id), optional),
	}
}

func (t *transformer) countrySource() func() string {
	country := t.country
	fallback := t.cfg.defaultCountry
	return func() string {
		if country != nil {
			if value := country.Value(); value != "" {
				return value
			}
		}
		return fallback
	}
}
