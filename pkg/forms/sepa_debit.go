package forms

import "github.com/goliatone/go-payforms/pkg/elements"

var sepaCountries = []string{
	"AT", "BE", "BG", "CH", "CY", "CZ", "DE", "DK", "EE", "ES", "FI", "FR",
	"GB", "GR", "HR", "HU", "IE", "IS", "IT", "LI", "LT", "LU", "LV", "MC",
	"MT", "NL", "NO", "PL", "PT", "RO", "SE", "SI", "SK", "SM",
}

// SepaDebitForm collects the account holder, IBAN and billing address, and
// shows the SEPA mandate.
var SepaDebitForm = elements.NewLayout(
	elements.NewNameSpec(),
	elements.NewEmailSpec(),
	elements.NewIbanSpec(),
	BillingAddressSection(sepaCountries),
	elements.NewSepaMandateSpec(),
)

// BancontactForm collects the payer's name and email.
var BancontactForm = elements.NewLayout(
	elements.NewNameSpec(),
	elements.NewEmailSpec(),
)
