package elements

// IdentifierSpec keys a field within a form. It is the API path used when the
// collected values are submitted, and the key of the initial-values map.
type IdentifierSpec string

// Well-known identifiers shared across payment methods.
const (
	// IdentifierName is the account holder's name. Forms and initial values
	// refer to it as the `name` field.
	IdentifierName       IdentifierSpec = "billing_details[name]"
	IdentifierEmail      IdentifierSpec = "billing_details[email]"
	IdentifierCountry    IdentifierSpec = "billing_details[address][country]"
	IdentifierLine1      IdentifierSpec = "billing_details[address][line1]"
	IdentifierLine2      IdentifierSpec = "billing_details[address][line2]"
	IdentifierCity       IdentifierSpec = "billing_details[address][city]"
	IdentifierPostalCode IdentifierSpec = "billing_details[address][postal_code]"
	IdentifierState      IdentifierSpec = "billing_details[address][state]"
)

// Generic builds an identifier for a field that has no well-known key.
func Generic(v string) IdentifierSpec {
	return IdentifierSpec(v)
}

// String returns the raw API path.
func (id IdentifierSpec) String() string {
	return string(id)
}
