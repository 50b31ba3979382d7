package forms

import "github.com/goliatone/go-payforms/pkg/elements"

var billingCountries = []string{
	"AT", "AU", "BE", "BG", "CA", "CH", "CY", "CZ", "DE", "DK", "EE", "ES",
	"FI", "FR", "GB", "GR", "HR", "HU", "IE", "IS", "IT", "LI", "LT", "LU",
	"LV", "MT", "NL", "NO", "NZ", "PL", "PT", "RO", "SE", "SI", "SK", "US",
}

// SupportedBillingCountries returns a copy of the countries offered by
// billing address sections.
func SupportedBillingCountries() []string {
	return append([]string(nil), billingCountries...)
}

// BillingAddressSection wraps an address block in the "Billing details"
// section. countries is copied.
func BillingAddressSection(countries []string) elements.SectionSpec {
	return elements.NewSectionSpec(
		elements.Generic("address_section"),
		elements.TitleBillingDetails,
		elements.AddressSpec{
			ID:               elements.Generic("address"),
			AllowedCountries: append([]string(nil), countries...),
		},
	)
}
