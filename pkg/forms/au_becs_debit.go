package forms

import "github.com/goliatone/go-payforms/pkg/elements"

// AuBecsDebitForm collects the BECS direct debit account details. The
// account-name field reuses the billing name identifier.
var AuBecsDebitForm = elements.NewLayout(
	elements.NewEmailSpec(),
	elements.NewBsbSpec(),
	elements.NewAuBankAccountNumberSpec(),
	elements.SimpleTextSpec{
		ID:             elements.IdentifierName,
		Label:          elements.LabelAuAccountName,
		Capitalization: elements.CapitalizationWords,
		KeyboardType:   elements.KeyboardText,
	},
	elements.NewAuBecsDebitMandateSpec(),
)
