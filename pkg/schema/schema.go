// Package schema derives an OpenAPI object schema from a form layout and
// validates submitted values against it before they leave the process.
package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-payforms/pkg/collect"
	"github.com/goliatone/go-payforms/pkg/controller"
	"github.com/goliatone/go-payforms/pkg/elements"
)

const (
	bsbPattern       = `^[0-9]{6}$`
	auAccountPattern = `^[0-9]{5,9}$`
	ibanPattern      = `^[A-Z]{2}[0-9]{2}[A-Z0-9]{4,30}$`
	emailPattern     = `^[^@\s]+@[^@\s]+\.[^@\s]+$`
)

// ForLayout builds the submission schema for layout. Every input leaf becomes
// a string property named after its identifier; display-only specs are left
// out.
func ForLayout(layout elements.LayoutSpec) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	var required []string
	for _, leaf := range layout.Leaves() {
		prop, isRequired, ok := propertyFor(leaf)
		if !ok {
			continue
		}
		name := leaf.Identifier().String()
		root.WithProperty(name, prop)
		if isRequired {
			required = append(required, name)
		}
	}
	sort.Strings(required)
	root.Required = required
	return root
}

func propertyFor(spec elements.FieldSpec) (*openapi3.Schema, bool, bool) {
	switch s := spec.(type) {
	case elements.NameSpec:
		return nonBlank(openapi3.NewStringSchema()), true, true
	case elements.EmailSpec:
		return nonBlank(openapi3.NewStringSchema().WithFormat("email").WithPattern(emailPattern)), true, true
	case elements.SimpleTextSpec:
		prop := openapi3.NewStringSchema()
		if s.Optional {
			return prop, false, true
		}
		return nonBlank(prop), true, true
	case elements.BsbSpec:
		return openapi3.NewStringSchema().WithPattern(bsbPattern), true, true
	case elements.AuBankAccountNumberSpec:
		return openapi3.NewStringSchema().WithPattern(auAccountPattern), true, true
	case elements.IbanSpec:
		return openapi3.NewStringSchema().WithPattern(ibanPattern).WithMaxLength(34), true, true
	case elements.CountrySpec:
		prop := nonBlank(openapi3.NewStringSchema())
		if options := controller.CountryOptions(s.AllowedCountries); len(s.AllowedCountries) > 0 {
			values := make([]any, 0, len(options))
			for _, opt := range options {
				values = append(values, opt.Value)
			}
			prop.WithEnum(values...)
		}
		return prop, true, true
	case elements.PostalCodeSpec:
		return nonBlank(openapi3.NewStringSchema()), true, true
	default:
		return nil, false, false
	}
}

func nonBlank(s *openapi3.Schema) *openapi3.Schema {
	return s.WithMinLength(1)
}

// ValidationError lists the fields that failed validation, keyed by
// identifier. Messages are in a stable order.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "schema: validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(e.Fields[key], "; ")))
	}
	return "schema: validation failed: " + strings.Join(parts, ", ")
}

// Validate checks values against the schema of layout. It returns a
// *ValidationError when one or more fields are rejected.
func Validate(layout elements.LayoutSpec, values map[string]string) error {
	payload := make(map[string]any, len(values))
	for key, value := range values {
		payload[key] = value
	}

	err := ForLayout(layout).VisitJSON(payload, openapi3.MultiErrors())
	if err == nil {
		return nil
	}

	verr := &ValidationError{Fields: make(map[string][]string)}
	collectErrors(err, verr)
	if len(verr.Fields) == 0 {
		return fmt.Errorf("schema: validate: %w", err)
	}
	for key, messages := range verr.Fields {
		sort.Strings(messages)
		verr.Fields[key] = messages
	}
	return verr
}

// ValidateForm collects the values of items and checks them against both the
// field controllers and the schema of layout. Controller failures are
// reported under their translation keys (for example "iban_invalid") next to
// any schema messages for the same field. The collected values are returned
// either way.
func ValidateForm(layout elements.LayoutSpec, items []elements.FormElement) (map[string]string, error) {
	entries := collect.Values(items)
	values := collect.Strings(entries)

	err := Validate(layout, values)
	var verr *ValidationError
	switch {
	case err == nil:
		verr = &ValidationError{Fields: make(map[string][]string)}
	case !errors.As(err, &verr):
		return values, err
	}

	for field, key := range collect.Errors(entries) {
		verr.Fields[field] = mergeMessage(verr.Fields[field], key)
	}
	if len(verr.Fields) == 0 {
		return values, nil
	}
	return values, verr
}

func mergeMessage(messages []string, message string) []string {
	for _, existing := range messages {
		if existing == message {
			return messages
		}
	}
	out := append(append([]string(nil), messages...), message)
	sort.Strings(out)
	return out
}

func collectErrors(err error, into *ValidationError) {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		for _, inner := range multi {
			collectErrors(inner, into)
		}
		return
	}
	var schemaErr *openapi3.SchemaError
	if !errors.As(err, &schemaErr) {
		into.Fields[""] = append(into.Fields[""], err.Error())
		return
	}
	field := ""
	if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
		field = pointer[0]
	}
	into.Fields[field] = append(into.Fields[field], schemaErr.Reason)
}
