package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-payforms/pkg/collect"
	"github.com/goliatone/go-payforms/pkg/elements"
	"github.com/goliatone/go-payforms/pkg/render"
)

// Transformer mutates a built form before it is rendered. Implementations can
// prefill values, drop elements or reorder them.
type Transformer interface {
	Transform(ctx context.Context, form *render.Form) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *render.Form) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *render.Form) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// JSONPresetTransformer types preset values into a form, as if the user had
// entered them. The document is keyed by payment method so one file can
// serve every form:
//
//	{
//	  "*": {"billing_details[email]": "jane@example.com"},
//	  "sepa_debit": {"sepa_debit[iban]": "DE89370400440532013000"}
//	}
//
// Values under "*" apply to every method; method entries win on conflict.
type JSONPresetTransformer struct {
	document map[string]map[string]string
}

const presetWildcard = "*"

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document map[string]map[string]string
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON preset document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the preset values for form.Method. Method-specific
// identifiers that do not exist in the form are reported as errors; wildcard
// identifiers are skipped when absent.
func (t *JSONPresetTransformer) Transform(ctx context.Context, form *render.Form) error {
	if form == nil {
		return errors.New("json preset transformer: form is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	values := make(map[string]string)
	for id, value := range t.document[presetWildcard] {
		if _, ok := elements.Find(form.Elements, elements.Generic(id)); ok {
			values[id] = value
		}
	}

	specific := t.document[form.Method]
	ids := make([]string, 0, len(specific))
	for id := range specific {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := elements.Find(form.Elements, elements.Generic(id)); !ok {
			return fmt.Errorf("json preset transformer: field %q not found in %s", id, form.Method)
		}
		values[id] = specific[id]
	}

	collect.Apply(form.Elements, values)
	return nil
}
