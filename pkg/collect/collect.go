// Package collect reads the current values back out of an element tree so
// they can be saved or submitted, keyed by identifier.
package collect

import (
	"sort"

	"github.com/goliatone/go-payforms/pkg/elements"
)

// Entry is the collected value of one field.
type Entry struct {
	Value    string `json:"value"`
	Complete bool   `json:"complete"`
	Error    string `json:"error,omitempty"`
}

// Values walks items and returns an entry for every element that owns a
// controller. Display-only elements are skipped.
func Values(items []elements.FormElement) map[elements.IdentifierSpec]Entry {
	ctrls := elements.Controllers(items)
	out := make(map[elements.IdentifierSpec]Entry, len(ctrls))
	for id, ctrl := range ctrls {
		out[id] = Entry{
			Value:    ctrl.Value(),
			Complete: ctrl.IsComplete(),
			Error:    ctrl.Error(),
		}
	}
	return out
}

// Strings flattens entries into an identifier -> value map for submission.
func Strings(entries map[elements.IdentifierSpec]Entry) map[string]string {
	out := make(map[string]string, len(entries))
	for id, entry := range entries {
		out[string(id)] = entry.Value
	}
	return out
}

// Complete reports whether every entry can be submitted.
func Complete(entries map[elements.IdentifierSpec]Entry) bool {
	for _, entry := range entries {
		if !entry.Complete {
			return false
		}
	}
	return true
}

// Errors returns the translation keys of incomplete entries, keyed by
// identifier.
func Errors(entries map[elements.IdentifierSpec]Entry) map[string]string {
	out := make(map[string]string)
	for id, entry := range entries {
		if entry.Complete || entry.Error == "" {
			continue
		}
		out[string(id)] = entry.Error
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Apply writes submitted values into the matching controllers as if they had
// been typed. Keys without a matching element are ignored.
func Apply(items []elements.FormElement, values map[string]string) {
	if len(values) == 0 {
		return
	}
	elements.Walk(items, func(e elements.FormElement) {
		value, ok := values[string(e.Identifier())]
		if !ok {
			return
		}
		if ctrl, ok := elements.ControllerOf(e); ok {
			ctrl.SetRawValue(value)
		}
	})
}

// Identifiers returns the sorted identifiers of entries.
func Identifiers(entries map[elements.IdentifierSpec]Entry) []elements.IdentifierSpec {
	out := make([]elements.IdentifierSpec, 0, len(entries))
	for id := range entries {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
