package elements

import "github.com/goliatone/go-payforms/pkg/controller"

// Capitalization re-exports the controller capitalization rule.
type Capitalization = controller.Capitalization

const (
	CapitalizationNone       = controller.CapitalizationNone
	CapitalizationCharacters = controller.CapitalizationCharacters
	CapitalizationWords      = controller.CapitalizationWords
	CapitalizationSentences  = controller.CapitalizationSentences
)

// KeyboardType re-exports the controller keyboard hint.
type KeyboardType = controller.KeyboardType

const (
	KeyboardText           = controller.KeyboardText
	KeyboardASCII          = controller.KeyboardASCII
	KeyboardNumber         = controller.KeyboardNumber
	KeyboardPhone          = controller.KeyboardPhone
	KeyboardURI            = controller.KeyboardURI
	KeyboardEmail          = controller.KeyboardEmail
	KeyboardPassword       = controller.KeyboardPassword
	KeyboardNumberPassword = controller.KeyboardNumberPassword
)

// TranslationID references a localized string. The i18n catalog resolves it;
// unknown ids render as the id itself.
type TranslationID string

// Labels and texts used by the built-in specs.
const (
	LabelName              TranslationID = "address_label_name"
	LabelEmail             TranslationID = "email"
	LabelCountry           TranslationID = "address_label_country"
	LabelLine1             TranslationID = "address_label_address_line1"
	LabelLine2             TranslationID = "address_label_address_line2"
	LabelCity              TranslationID = "address_label_city"
	LabelPostalCode        TranslationID = "address_label_postal_code"
	LabelState             TranslationID = "address_label_state"
	LabelBsb               TranslationID = "becs_widget_bsb"
	LabelAuAccountNumber   TranslationID = "becs_widget_account_number"
	LabelAuAccountName     TranslationID = "au_becs_account_name"
	LabelIban              TranslationID = "iban"
	TitleBillingDetails    TranslationID = "billing_details"
	TextAfterpayClearpay   TranslationID = "afterpay_clearpay_message"
	TextAuBecsDebitMandate TranslationID = "au_becs_mandate"
	TextSepaMandate        TranslationID = "sepa_mandate"
)

// Kind names a FieldSpec or FormElement variant.
type Kind string

const (
	KindName            Kind = "name"
	KindEmail           Kind = "email"
	KindSimpleText      Kind = "simple_text"
	KindMandateText     Kind = "mandate_text"
	KindStaticText      Kind = "static_text"
	KindBsb             Kind = "bsb"
	KindAuAccountNumber Kind = "au_account_number"
	KindIban            Kind = "iban"
	KindCountry         Kind = "country"
	KindPostalCode      Kind = "postal_code"
	KindAddress         Kind = "address"
	KindSection         Kind = "section"
)
