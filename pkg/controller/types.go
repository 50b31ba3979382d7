package controller

// Capitalization describes how keyboard input is capitalised before it is
// stored in a controller.
type Capitalization string

const (
	CapitalizationNone       Capitalization = "none"
	CapitalizationCharacters Capitalization = "characters"
	CapitalizationWords      Capitalization = "words"
	CapitalizationSentences  Capitalization = "sentences"
)

// KeyboardType hints which soft keyboard a renderer should present. It also
// drives the default input filter.
type KeyboardType string

const (
	KeyboardText           KeyboardType = "text"
	KeyboardASCII          KeyboardType = "ascii"
	KeyboardNumber         KeyboardType = "number"
	KeyboardPhone          KeyboardType = "phone"
	KeyboardURI            KeyboardType = "uri"
	KeyboardEmail          KeyboardType = "email"
	KeyboardPassword       KeyboardType = "password"
	KeyboardNumberPassword KeyboardType = "number_password"
)

// Status is the coarse validation status of a field.
type Status string

const (
	StatusBlank      Status = "blank"
	StatusIncomplete Status = "incomplete"
	StatusInvalid    Status = "invalid"
	StatusValid      Status = "valid"
)

// Error keys reported by the built-in configs.
const (
	ErrKeyRequired          = "field_required"
	ErrKeyEmailInvalid      = "email_is_invalid"
	ErrKeyEmailIncomplete   = "email_is_incomplete"
	ErrKeyBsbIncomplete     = "becs_widget_bsb_incomplete"
	ErrKeyBsbInvalid        = "becs_widget_bsb_invalid"
	ErrKeyAccountIncomplete = "becs_widget_account_number_incomplete"
	ErrKeyIbanIncomplete    = "iban_incomplete"
	ErrKeyIbanInvalidStart  = "iban_invalid_start"
	ErrKeyIbanInvalid       = "iban_invalid"
	ErrKeyPostalInvalid     = "address_zip_invalid"
	ErrKeyPostalIncomplete  = "address_zip_incomplete"
	ErrKeyCountryInvalid    = "address_country_invalid"
)

// FieldState is the validation state derived from a value. ErrorKey is set for
// incomplete and invalid states; Full reports that no more input is accepted.
type FieldState struct {
	Status   Status `json:"status"`
	Full     bool   `json:"full,omitempty"`
	ErrorKey string `json:"error,omitempty"`
}

// IsValid reports whether the value passed validation.
func (s FieldState) IsValid() bool {
	return s.Status == StatusValid
}

// IsBlank reports whether the field holds no value.
func (s FieldState) IsBlank() bool {
	return s.Status == StatusBlank
}

func blank() FieldState {
	return FieldState{Status: StatusBlank}
}

func valid(full bool) FieldState {
	return FieldState{Status: StatusValid, Full: full}
}

func incomplete(key string) FieldState {
	return FieldState{Status: StatusIncomplete, ErrorKey: key}
}

func invalid(key string) FieldState {
	return FieldState{Status: StatusInvalid, ErrorKey: key}
}

// Controller is the read/write surface shared by every input controller.
type Controller interface {
	Value() string
	InitialValue() string
	SetRawValue(raw string)
	IsComplete() bool
	Error() string
}
