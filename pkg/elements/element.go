package elements

import "github.com/goliatone/go-payforms/pkg/controller"

// FormElement is the renderable counterpart of a FieldSpec. Elements are
// created per render and carry the controllers holding user input.
type FormElement interface {
	Identifier() IdentifierSpec
	Kind() Kind
	isFormElement()
}

// CompositeElement is implemented by elements that nest other elements.
type CompositeElement interface {
	FormElement
	Children() []FormElement
}

// TextFieldElement is a text input backed by a TextFieldController. SpecKind
// records which spec produced it (name, email, bsb, ...).
type TextFieldElement struct {
	ID         IdentifierSpec
	SpecKind   Kind
	Label      TranslationID
	Controller *controller.TextFieldController
}

func (e *TextFieldElement) Identifier() IdentifierSpec { return e.ID }
func (e *TextFieldElement) Kind() Kind                 { return e.SpecKind }
func (*TextFieldElement) isFormElement()               {}

// DropdownElement is a selector backed by a DropdownController.
type DropdownElement struct {
	ID         IdentifierSpec
	Label      TranslationID
	Controller *controller.DropdownController
}

func (e *DropdownElement) Identifier() IdentifierSpec { return e.ID }
func (*DropdownElement) Kind() Kind                   { return KindCountry }
func (*DropdownElement) isFormElement()               {}

// StaticTextElement renders display-only text.
type StaticTextElement struct {
	ID   IdentifierSpec
	Text TranslationID
}

func (e *StaticTextElement) Identifier() IdentifierSpec { return e.ID }
func (*StaticTextElement) Kind() Kind                   { return KindStaticText }
func (*StaticTextElement) isFormElement()               {}

// MandateTextElement renders a mandate disclaimer for MerchantName.
type MandateTextElement struct {
	ID           IdentifierSpec
	Text         TranslationID
	MerchantName string
}

func (e *MandateTextElement) Identifier() IdentifierSpec { return e.ID }
func (*MandateTextElement) Kind() Kind                   { return KindMandateText }
func (*MandateTextElement) isFormElement()               {}

// SectionElement groups child elements under a title.
type SectionElement struct {
	ID     IdentifierSpec
	Title  TranslationID
	Fields []FormElement
}

func (e *SectionElement) Identifier() IdentifierSpec { return e.ID }
func (*SectionElement) Kind() Kind                   { return KindSection }
func (*SectionElement) isFormElement()               {}
func (e *SectionElement) Children() []FormElement    { return e.Fields }

// AddressElement holds the expanded address fields.
type AddressElement struct {
	ID     IdentifierSpec
	Fields []FormElement
}

func (e *AddressElement) Identifier() IdentifierSpec { return e.ID }
func (*AddressElement) Kind() Kind                   { return KindAddress }
func (*AddressElement) isFormElement()               {}
func (e *AddressElement) Children() []FormElement    { return e.Fields }

// ControllerOf returns the input controller of element, if it has one.
func ControllerOf(element FormElement) (controller.Controller, bool) {
	switch e := element.(type) {
	case *TextFieldElement:
		if e.Controller == nil {
			return nil, false
		}
		return e.Controller, true
	case *DropdownElement:
		if e.Controller == nil {
			return nil, false
		}
		return e.Controller, true
	default:
		return nil, false
	}
}

// Walk visits every element depth-first in display order. Composite elements
// are visited before their children.
func Walk(items []FormElement, fn func(FormElement)) {
	for _, item := range items {
		if item == nil {
			continue
		}
		fn(item)
		if composite, ok := item.(CompositeElement); ok {
			Walk(composite.Children(), fn)
		}
	}
}

// Find returns the first element with id.
func Find(items []FormElement, id IdentifierSpec) (FormElement, bool) {
	var found FormElement
	Walk(items, func(e FormElement) {
		if found == nil && e.Identifier() == id {
			found = e
		}
	})
	return found, found != nil
}

// Controllers returns the controllers of items keyed by identifier.
// Display-only elements are skipped.
func Controllers(items []FormElement) map[IdentifierSpec]controller.Controller {
	out := make(map[IdentifierSpec]controller.Controller)
	Walk(items, func(e FormElement) {
		if ctrl, ok := ControllerOf(e); ok {
			out[e.Identifier()] = ctrl
		}
	})
	return out
}
