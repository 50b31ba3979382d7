package transform

import "github.com/goliatone/go-payforms/pkg/elements"

// InitialValues maps identifiers to previously entered values. Missing keys
// resolve to the field default; keys that are not part of the layout are
// ignored.
type InitialValues map[elements.IdentifierSpec]string

// ValuesFromMap decodes loosely typed values, such as saved UI state or a
// decoded JSON body. Entries that are not strings (or non-nil string
// pointers) are treated as absent rather than rejected.
func ValuesFromMap(raw map[string]any) InitialValues {
	out := make(InitialValues, len(raw))
	for key, value := range raw {
		switch typed := value.(type) {
		case string:
			out[elements.IdentifierSpec(key)] = typed
		case *string:
			if typed != nil {
				out[elements.IdentifierSpec(key)] = *typed
			}
		}
	}
	return out
}

// ValuesFromStrings converts a plain string map.
func ValuesFromStrings(raw map[string]string) InitialValues {
	out := make(InitialValues, len(raw))
	for key, value := range raw {
		out[elements.IdentifierSpec(key)] = value
	}
	return out
}

// Strings returns v keyed by plain strings, the shape submitted form values
// travel in.
func (v InitialValues) Strings() map[string]string {
	out := make(map[string]string, len(v))
	for id, value := range v {
		out[string(id)] = value
	}
	return out
}

func (v InitialValues) lookup(id elements.IdentifierSpec) string {
	if v == nil {
		return ""
	}
	return v[id]
}
