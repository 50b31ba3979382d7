package elements

import "fmt"

// LayoutSpec is the ordered, immutable list of specs describing one payment
// method's form.
type LayoutSpec struct {
	items []FieldSpec
}

// NewLayout builds a layout from items. It panics when two specs anywhere in
// the tree share an identifier; layouts are package-level values, so the
// panic surfaces at init.
func NewLayout(items ...FieldSpec) LayoutSpec {
	seen := make(map[IdentifierSpec]struct{})
	if err := checkUnique(items, seen); err != nil {
		panic(err)
	}
	return LayoutSpec{items: cloneSpecs(items)}
}

func checkUnique(items []FieldSpec, seen map[IdentifierSpec]struct{}) error {
	for _, item := range items {
		if item == nil {
			return fmt.Errorf("elements: layout contains a nil spec")
		}
		id := item.Identifier()
		if _, dup := seen[id]; dup {
			return fmt.Errorf("elements: duplicate identifier %q", id)
		}
		seen[id] = struct{}{}
		if composite, ok := item.(CompositeSpec); ok {
			if err := checkUnique(composite.Children(), seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// Items returns a deep copy of the top-level specs. Writes through the result,
// including into section fields and country lists, never reach the layout.
func (l LayoutSpec) Items() []FieldSpec {
	return cloneSpecs(l.items)
}

func cloneSpecs(items []FieldSpec) []FieldSpec {
	if items == nil {
		return nil
	}
	out := make([]FieldSpec, len(items))
	for i, item := range items {
		out[i] = cloneSpec(item)
	}
	return out
}

func cloneSpec(spec FieldSpec) FieldSpec {
	switch s := spec.(type) {
	case SectionSpec:
		s.Fields = cloneSpecs(s.Fields)
		return s
	case AddressSpec:
		s.AllowedCountries = cloneStrings(s.AllowedCountries)
		return s
	case CountrySpec:
		s.AllowedCountries = cloneStrings(s.AllowedCountries)
		return s
	default:
		return spec
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

// Len reports the number of top-level specs.
func (l LayoutSpec) Len() int {
	return len(l.items)
}

// Leaves returns every non-composite spec in display order.
func (l LayoutSpec) Leaves() []FieldSpec {
	var out []FieldSpec
	var walk func([]FieldSpec)
	walk = func(items []FieldSpec) {
		for _, item := range items {
			if composite, ok := item.(CompositeSpec); ok {
				walk(composite.Children())
				continue
			}
			out = append(out, item)
		}
	}
	walk(l.items)
	return out
}
