package elements

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewLayout_PanicsOnDuplicateIdentifiers(t *testing.T) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatalf("expected panic for duplicate identifier")
		}
		err, ok := recovered.(error)
		if !ok || !strings.Contains(err.Error(), string(IdentifierCountry)) {
			t.Fatalf("unexpected panic value: %v", recovered)
		}
	}()

	NewLayout(
		CountrySpec{ID: IdentifierCountry, Label: LabelCountry},
		NewSectionSpec(Generic("billing"), TitleBillingDetails, AddressSpec{ID: Generic("address")}),
	)
}

func TestLayout_ItemsAreCopied(t *testing.T) {
	layout := NewLayout(NewNameSpec(), NewEmailSpec())
	items := layout.Items()
	items[0] = NewBsbSpec()

	if layout.Items()[0].Kind() != KindName {
		t.Fatalf("mutating Items() must not affect the layout")
	}
	if layout.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", layout.Len())
	}
}

func TestNameSpec_UsesBillingNameKey(t *testing.T) {
	spec := NewNameSpec()
	if spec.Identifier() != IdentifierName || spec.Kind() != KindName {
		t.Fatalf("unexpected name spec %+v", spec)
	}
	if got := IdentifierName.String(); got != "billing_details[name]" {
		t.Fatalf("unexpected name key %q", got)
	}
}

func TestLayout_Leaves(t *testing.T) {
	layout := NewLayout(
		NewNameSpec(),
		NewSectionSpec(Generic("address_section"), TitleBillingDetails, AddressSpec{ID: Generic("address")}),
		NewSepaMandateSpec(),
	)

	var got []IdentifierSpec
	for _, leaf := range layout.Leaves() {
		got = append(got, leaf.Identifier())
	}
	want := []IdentifierSpec{
		IdentifierName,
		IdentifierCountry,
		IdentifierLine1,
		IdentifierLine2,
		IdentifierCity,
		IdentifierPostalCode,
		IdentifierState,
		Generic("sepa_mandate"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("leaves mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkAndFind(t *testing.T) {
	name := &TextFieldElement{ID: IdentifierName, SpecKind: KindName}
	city := &TextFieldElement{ID: IdentifierCity, SpecKind: KindSimpleText}
	tree := []FormElement{
		name,
		&SectionElement{ID: Generic("s"), Fields: []FormElement{
			&AddressElement{ID: Generic("a"), Fields: []FormElement{city}},
		}},
	}

	var visited []IdentifierSpec
	Walk(tree, func(e FormElement) { visited = append(visited, e.Identifier()) })
	want := []IdentifierSpec{IdentifierName, Generic("s"), Generic("a"), IdentifierCity}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("walk order mismatch (-want +got):\n%s", diff)
	}

	found, ok := Find(tree, IdentifierCity)
	if !ok || found != city {
		t.Fatalf("expected to find city element")
	}
	if _, ok := ControllerOf(city); ok {
		t.Fatalf("nil controller must not be reported")
	}
}
