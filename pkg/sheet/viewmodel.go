package sheet

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-payforms/pkg/collect"
	"github.com/goliatone/go-payforms/pkg/elements"
	"github.com/goliatone/go-payforms/pkg/forms"
	"github.com/goliatone/go-payforms/pkg/render"
	"github.com/goliatone/go-payforms/pkg/schema"
	"github.com/goliatone/go-payforms/pkg/transform"
)

// FormValuesKey is the SavedState key holding the last saved field values.
const FormValuesKey = "payforms.form_values"

// ViewModel exposes the payment-method form of one sheet session.
type ViewModel struct {
	method       forms.Method
	merchantName string
	locale       string
	state        SavedState
	translator   render.Translator
	logger       *log.Logger
}

// Method returns the payment method shown by the sheet.
func (vm *ViewModel) Method() forms.Method {
	return vm.method
}

// Locale returns the locale used for labels and messages.
func (vm *ViewModel) Locale() string {
	return vm.locale
}

// Form builds fresh elements for the session's payment method, seeded with
// any values found in saved state. Saved values of the wrong shape are
// ignored.
func (vm *ViewModel) Form() []elements.FormElement {
	var initial transform.InitialValues
	if raw, ok := vm.state.Get(FormValuesKey); ok {
		switch saved := raw.(type) {
		case map[string]any:
			initial = transform.ValuesFromMap(saved)
		case map[string]string:
			initial = transform.ValuesFromStrings(saved)
		default:
			vm.logger.Warn("ignoring saved form values", "type", fmt.Sprintf("%T", saved))
		}
	}
	return transform.Transform(forms.MustLookup(vm.method), initial,
		transform.WithMerchantName(vm.merchantName),
	)
}

// RenderForm wraps items for a renderer.
func (vm *ViewModel) RenderForm(items []elements.FormElement) render.Form {
	return render.Form{Method: string(vm.method), Elements: items}
}

// RenderOptions returns the options a renderer needs to show the sheet in
// its locale.
func (vm *ViewModel) RenderOptions() render.RenderOptions {
	return render.RenderOptions{
		Locale:     vm.locale,
		Translator: vm.translator,
		Hidden:     render.MergeHiddenFields(nil, render.PaymentMethodType(string(vm.method))),
	}
}

// Save collects the current values of items and stores them in saved state
// so a recreated view-model restores them.
func (vm *ViewModel) Save(items []elements.FormElement) {
	values := collect.Strings(collect.Values(items))
	saved := make(map[string]any, len(values))
	for id, value := range values {
		saved[id] = value
	}
	vm.state.Set(FormValuesKey, saved)
	vm.logger.Debug("form values saved", "fields", len(saved))
}

// Submission validates the values of items against their controllers and
// the submission schema and returns them ready to post. Validation failures
// are returned as a *schema.ValidationError.
func (vm *ViewModel) Submission(items []elements.FormElement) (map[string]string, error) {
	values, err := schema.ValidateForm(forms.MustLookup(vm.method), items)
	if err != nil {
		vm.logger.Info("submission rejected", "method", vm.method, "err", err)
		return nil, err
	}
	values["type"] = string(vm.method)
	return values, nil
}
