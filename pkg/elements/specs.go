package elements

// FieldSpec is the declarative description of one form input. The set of
// implementations is closed; see the Kind constants.
type FieldSpec interface {
	Identifier() IdentifierSpec
	Kind() Kind
	isFieldSpec()
}

// CompositeSpec is implemented by specs that nest other specs.
type CompositeSpec interface {
	FieldSpec
	Children() []FieldSpec
}

// NameSpec is the shared full-name field.
type NameSpec struct {
	ID    IdentifierSpec
	Label TranslationID
}

// NewNameSpec returns the default name field on IdentifierName.
func NewNameSpec() NameSpec {
	return NameSpec{ID: IdentifierName, Label: LabelName}
}

func (s NameSpec) Identifier() IdentifierSpec { return s.ID }
func (NameSpec) Kind() Kind                   { return KindName }
func (NameSpec) isFieldSpec()                 {}

// EmailSpec is the shared email field.
type EmailSpec struct {
	ID    IdentifierSpec
	Label TranslationID
}

// NewEmailSpec returns the default email field on IdentifierEmail.
func NewEmailSpec() EmailSpec {
	return EmailSpec{ID: IdentifierEmail, Label: LabelEmail}
}

func (s EmailSpec) Identifier() IdentifierSpec { return s.ID }
func (EmailSpec) Kind() Kind                   { return KindEmail }
func (EmailSpec) isFieldSpec()                 {}

// SimpleTextSpec is a free text input with explicit keyboard and
// capitalization hints.
type SimpleTextSpec struct {
	ID             IdentifierSpec
	Label          TranslationID
	Capitalization Capitalization
	KeyboardType   KeyboardType
	Optional       bool
}

func (s SimpleTextSpec) Identifier() IdentifierSpec { return s.ID }
func (SimpleTextSpec) Kind() Kind                   { return KindSimpleText }
func (SimpleTextSpec) isFieldSpec()                 {}

// MandateTextSpec is a legal disclaimer that embeds the merchant name. It has
// no input of its own.
type MandateTextSpec struct {
	ID   IdentifierSpec
	Text TranslationID
}

// NewAuBecsDebitMandateSpec returns the BECS direct debit service agreement
// disclaimer.
func NewAuBecsDebitMandateSpec() MandateTextSpec {
	return MandateTextSpec{ID: Generic("au_becs_mandate"), Text: TextAuBecsDebitMandate}
}

// NewSepaMandateSpec returns the SEPA direct debit mandate disclaimer.
func NewSepaMandateSpec() MandateTextSpec {
	return MandateTextSpec{ID: Generic("sepa_mandate"), Text: TextSepaMandate}
}

func (s MandateTextSpec) Identifier() IdentifierSpec { return s.ID }
func (MandateTextSpec) Kind() Kind                   { return KindMandateText }
func (MandateTextSpec) isFieldSpec()                 {}

// StaticTextSpec is display-only text such as a payment-method header.
type StaticTextSpec struct {
	ID   IdentifierSpec
	Text TranslationID
}

func (s StaticTextSpec) Identifier() IdentifierSpec { return s.ID }
func (StaticTextSpec) Kind() Kind                   { return KindStaticText }
func (StaticTextSpec) isFieldSpec()                 {}

// BsbSpec is the Australian bank-state-branch number field.
type BsbSpec struct {
	ID    IdentifierSpec
	Label TranslationID
}

// NewBsbSpec returns the BSB field on au_becs_debit[bsb_number].
func NewBsbSpec() BsbSpec {
	return BsbSpec{ID: Generic("au_becs_debit[bsb_number]"), Label: LabelBsb}
}

func (s BsbSpec) Identifier() IdentifierSpec { return s.ID }
func (BsbSpec) Kind() Kind                   { return KindBsb }
func (BsbSpec) isFieldSpec()                 {}

// AuBankAccountNumberSpec is the Australian bank account number field.
type AuBankAccountNumberSpec struct {
	ID    IdentifierSpec
	Label TranslationID
}

// NewAuBankAccountNumberSpec returns the account number field on
// au_becs_debit[account_number].
func NewAuBankAccountNumberSpec() AuBankAccountNumberSpec {
	return AuBankAccountNumberSpec{ID: Generic("au_becs_debit[account_number]"), Label: LabelAuAccountNumber}
}

func (s AuBankAccountNumberSpec) Identifier() IdentifierSpec { return s.ID }
func (AuBankAccountNumberSpec) Kind() Kind                   { return KindAuAccountNumber }
func (AuBankAccountNumberSpec) isFieldSpec()                 {}

// IbanSpec is the international bank account number field.
type IbanSpec struct {
	ID    IdentifierSpec
	Label TranslationID
}

// NewIbanSpec returns the IBAN field on sepa_debit[iban].
func NewIbanSpec() IbanSpec {
	return IbanSpec{ID: Generic("sepa_debit[iban]"), Label: LabelIban}
}

func (s IbanSpec) Identifier() IdentifierSpec { return s.ID }
func (IbanSpec) Kind() Kind                   { return KindIban }
func (IbanSpec) isFieldSpec()                 {}

// CountrySpec is a country selector limited to AllowedCountries. An empty
// list allows every known country.
type CountrySpec struct {
	ID               IdentifierSpec
	Label            TranslationID
	AllowedCountries []string
}

func (s CountrySpec) Identifier() IdentifierSpec { return s.ID }
func (CountrySpec) Kind() Kind                   { return KindCountry }
func (CountrySpec) isFieldSpec()                 {}

// PostalCodeSpec is a postal code validated against the country selected in
// the enclosing address.
type PostalCodeSpec struct {
	ID    IdentifierSpec
	Label TranslationID
}

func (s PostalCodeSpec) Identifier() IdentifierSpec { return s.ID }
func (PostalCodeSpec) Kind() Kind                   { return KindPostalCode }
func (PostalCodeSpec) isFieldSpec()                 {}

// AddressSpec expands into the billing address fields.
type AddressSpec struct {
	ID               IdentifierSpec
	AllowedCountries []string
}

func (s AddressSpec) Identifier() IdentifierSpec { return s.ID }
func (AddressSpec) Kind() Kind                   { return KindAddress }
func (AddressSpec) isFieldSpec()                 {}

// Children returns the address fields in display order: country, line1,
// line2, city, postal code, state.
func (s AddressSpec) Children() []FieldSpec {
	return []FieldSpec{
		CountrySpec{ID: IdentifierCountry, Label: LabelCountry, AllowedCountries: cloneStrings(s.AllowedCountries)},
		SimpleTextSpec{ID: IdentifierLine1, Label: LabelLine1, Capitalization: CapitalizationWords, KeyboardType: KeyboardText},
		SimpleTextSpec{ID: IdentifierLine2, Label: LabelLine2, Capitalization: CapitalizationWords, KeyboardType: KeyboardText, Optional: true},
		SimpleTextSpec{ID: IdentifierCity, Label: LabelCity, Capitalization: CapitalizationWords, KeyboardType: KeyboardText},
		PostalCodeSpec{ID: IdentifierPostalCode, Label: LabelPostalCode},
		SimpleTextSpec{ID: IdentifierState, Label: LabelState, Capitalization: CapitalizationWords, KeyboardType: KeyboardText, Optional: true},
	}
}

// SectionSpec groups child specs under a title.
type SectionSpec struct {
	ID     IdentifierSpec
	Title  TranslationID
	Fields []FieldSpec
}

// NewSectionSpec builds a section around fields.
func NewSectionSpec(id IdentifierSpec, title TranslationID, fields ...FieldSpec) SectionSpec {
	return SectionSpec{ID: id, Title: title, Fields: cloneSpecs(fields)}
}

func (s SectionSpec) Identifier() IdentifierSpec { return s.ID }
func (SectionSpec) Kind() Kind                   { return KindSection }
func (SectionSpec) isFieldSpec()                 {}

// Children returns a deep copy of the section fields.
func (s SectionSpec) Children() []FieldSpec {
	return cloneSpecs(s.Fields)
}
