package forms

import "github.com/goliatone/go-payforms/pkg/elements"

var afterpayClearpayHeader = elements.StaticTextSpec{
	ID:   elements.Generic("afterpay_clearpay_header"),
	Text: elements.TextAfterpayClearpay,
}

// AfterpayClearpayForm collects the buyer's name, email, and billing address.
var AfterpayClearpayForm = elements.NewLayout(
	afterpayClearpayHeader,
	elements.NewNameSpec(),
	elements.NewEmailSpec(),
	BillingAddressSection(billingCountries),
)
