package controller

import (
	"math/big"
	"regexp"
	"strings"
	"unicode"
)

// TextFieldConfig describes how a text field filters, displays, and validates
// its value.
type TextFieldConfig interface {
	Capitalization() Capitalization
	KeyboardType() KeyboardType
	// Filter strips characters the field never accepts. It runs on every
	// value written to the controller, including the seed value.
	Filter(raw string) string
	// Display formats a stored value for presentation.
	Display(value string) string
	Determine(value string) FieldState
}

// SimpleTextConfig accepts any non-blank value.
type SimpleTextConfig struct {
	Caps     Capitalization
	Keyboard KeyboardType
}

func (c SimpleTextConfig) Capitalization() Capitalization { return c.Caps }
func (c SimpleTextConfig) KeyboardType() KeyboardType     { return c.Keyboard }
func (c SimpleTextConfig) Filter(raw string) string       { return filterForKeyboard(c.Keyboard, raw) }
func (c SimpleTextConfig) Display(value string) string    { return value }

func (c SimpleTextConfig) Determine(value string) FieldState {
	if strings.TrimSpace(value) == "" {
		return blank()
	}
	return valid(false)
}

// NameConfig is the shared full-name configuration.
func NameConfig() SimpleTextConfig {
	return SimpleTextConfig{Caps: CapitalizationWords, Keyboard: KeyboardText}
}

var (
	emailPattern           = regexp.MustCompile(`^[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+$`)
	emailNameAndDomain     = regexp.MustCompile(`^.*@.*\..+$`)
	nonDigitPattern        = regexp.MustCompile(`\D`)
	nonAlphanumericPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// EmailConfig validates email addresses. A value that does not yet look like
// name@domain.tld is incomplete rather than invalid.
type EmailConfig struct{}

func (EmailConfig) Capitalization() Capitalization { return CapitalizationNone }
func (EmailConfig) KeyboardType() KeyboardType     { return KeyboardEmail }
func (EmailConfig) Filter(raw string) string       { return filterForKeyboard(KeyboardEmail, raw) }
func (EmailConfig) Display(value string) string    { return value }

func (EmailConfig) Determine(value string) FieldState {
	switch {
	case value == "":
		return blank()
	case emailPattern.MatchString(value):
		return valid(false)
	case emailNameAndDomain.MatchString(value) || strings.Count(value, "@") > 1:
		return invalid(ErrKeyEmailInvalid)
	default:
		return incomplete(ErrKeyEmailIncomplete)
	}
}

const bsbLength = 6

// BsbConfig validates Australian bank-state-branch numbers: six digits shown
// as 000-000.
type BsbConfig struct{}

func (BsbConfig) Capitalization() Capitalization { return CapitalizationNone }
func (BsbConfig) KeyboardType() KeyboardType     { return KeyboardNumber }

func (BsbConfig) Filter(raw string) string {
	return truncate(nonDigitPattern.ReplaceAllString(raw, ""), bsbLength)
}

func (BsbConfig) Display(value string) string {
	if len(value) <= 3 {
		return value
	}
	return value[:3] + "-" + value[3:]
}

func (BsbConfig) Determine(value string) FieldState {
	switch {
	case value == "":
		return blank()
	case len(value) < bsbLength:
		return incomplete(ErrKeyBsbIncomplete)
	case strings.HasPrefix(value, "00"):
		return invalid(ErrKeyBsbInvalid)
	default:
		return valid(true)
	}
}

const (
	auAccountMinLength = 5
	auAccountMaxLength = 9
)

// AuAccountNumberConfig validates Australian bank account numbers (5-9 digits).
type AuAccountNumberConfig struct{}

func (AuAccountNumberConfig) Capitalization() Capitalization { return CapitalizationNone }
func (AuAccountNumberConfig) KeyboardType() KeyboardType     { return KeyboardNumber }
func (AuAccountNumberConfig) Display(value string) string    { return value }

func (AuAccountNumberConfig) Filter(raw string) string {
	return truncate(nonDigitPattern.ReplaceAllString(raw, ""), auAccountMaxLength)
}

func (AuAccountNumberConfig) Determine(value string) FieldState {
	switch {
	case value == "":
		return blank()
	case len(value) < auAccountMinLength:
		return incomplete(ErrKeyAccountIncomplete)
	default:
		return valid(len(value) == auAccountMaxLength)
	}
}

const (
	ibanMinLength = 8
	ibanMaxLength = 34
)

// IbanConfig validates international bank account numbers using the ISO 13616
// mod-97 checksum.
type IbanConfig struct{}

func (IbanConfig) Capitalization() Capitalization { return CapitalizationCharacters }
func (IbanConfig) KeyboardType() KeyboardType     { return KeyboardASCII }

func (IbanConfig) Filter(raw string) string {
	return truncate(strings.ToUpper(nonAlphanumericPattern.ReplaceAllString(raw, "")), ibanMaxLength)
}

// Display groups the IBAN in blocks of four.
func (IbanConfig) Display(value string) string {
	var b strings.Builder
	for i, r := range value {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (IbanConfig) Determine(value string) FieldState {
	if value == "" {
		return blank()
	}
	prefix := truncate(value, 2)
	for _, r := range prefix {
		if r < 'A' || r > 'Z' {
			return invalid(ErrKeyIbanInvalidStart)
		}
	}
	if len(prefix) == 2 && !IsCountryCode(prefix) {
		return invalid(ErrKeyIbanInvalidStart)
	}
	if len(value) < ibanMinLength {
		return incomplete(ErrKeyIbanIncomplete)
	}
	if ibanChecksum(value) != 1 {
		return invalid(ErrKeyIbanInvalid)
	}
	return valid(len(value) == ibanMaxLength)
}

// ibanChecksum moves the first four characters to the end, maps letters to
// 10..35 and returns the value mod 97.
func ibanChecksum(iban string) int64 {
	rearranged := iban[4:] + iban[:4]
	var digits strings.Builder
	for _, r := range rearranged {
		switch {
		case unicode.IsDigit(r):
			digits.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			digits.WriteString(big.NewInt(int64(r-'A') + 10).String())
		default:
			return -1
		}
	}
	n, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		return -1
	}
	return new(big.Int).Mod(n, big.NewInt(97)).Int64()
}

type postalRule struct {
	pattern   *regexp.Regexp
	minLength int
}

var postalRules = map[string]postalRule{
	"US": {regexp.MustCompile(`^\d{5}(-\d{4})?$`), 5},
	"CA": {regexp.MustCompile(`^[A-Z]\d[A-Z][ -]?\d[A-Z]\d$`), 6},
	"GB": {regexp.MustCompile(`^[A-Z]{1,2}\d[A-Z\d]? ?\d[A-Z]{2}$`), 5},
	"AU": {regexp.MustCompile(`^\d{4}$`), 4},
	"NZ": {regexp.MustCompile(`^\d{4}$`), 4},
	"DE": {regexp.MustCompile(`^\d{5}$`), 5},
	"FR": {regexp.MustCompile(`^\d{5}$`), 5},
	"ES": {regexp.MustCompile(`^\d{5}$`), 5},
	"IT": {regexp.MustCompile(`^\d{5}$`), 5},
	"NL": {regexp.MustCompile(`^\d{4} ?[A-Z]{2}$`), 6},
	"BE": {regexp.MustCompile(`^\d{4}$`), 4},
	"AT": {regexp.MustCompile(`^\d{4}$`), 4},
}

// PostalCodeConfig validates postal codes for the country reported by
// Country. Countries without a known format accept any non-blank value.
type PostalCodeConfig struct {
	Country func() string
}

func (PostalCodeConfig) Capitalization() Capitalization { return CapitalizationCharacters }
func (PostalCodeConfig) KeyboardType() KeyboardType     { return KeyboardText }
func (PostalCodeConfig) Display(value string) string    { return value }

func (PostalCodeConfig) Filter(raw string) string {
	return strings.ToUpper(strings.TrimLeft(raw, " "))
}

func (c PostalCodeConfig) Determine(value string) FieldState {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return blank()
	}
	country := ""
	if c.Country != nil {
		country = strings.ToUpper(c.Country())
	}
	rule, ok := postalRules[country]
	if !ok {
		return valid(false)
	}
	if rule.pattern.MatchString(trimmed) {
		return valid(false)
	}
	if len(trimmed) < rule.minLength {
		return incomplete(ErrKeyPostalIncomplete)
	}
	return invalid(ErrKeyPostalInvalid)
}

func filterForKeyboard(keyboard KeyboardType, raw string) string {
	switch keyboard {
	case KeyboardNumber, KeyboardNumberPassword:
		return nonDigitPattern.ReplaceAllString(raw, "")
	case KeyboardPhone:
		return strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) || strings.ContainsRune("+-() ", r) {
				return r
			}
			return -1
		}, raw)
	case KeyboardEmail, KeyboardURI:
		return strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, raw)
	case KeyboardASCII:
		return strings.Map(func(r rune) rune {
			if r > unicode.MaxASCII {
				return -1
			}
			return r
		}, raw)
	default:
		return raw
	}
}

// Capitalize applies a capitalization rule to keyboard input.
func Capitalize(rule Capitalization, input string) string {
	switch rule {
	case CapitalizationCharacters:
		return strings.ToUpper(input)
	case CapitalizationWords:
		return capitalizeAfter(input, unicode.IsSpace)
	case CapitalizationSentences:
		return capitalizeAfter(input, func(r rune) bool { return r == '.' || r == '!' || r == '?' })
	default:
		return input
	}
}

// capitalizeAfter upper-cases the first letter of the input and the first
// letter following any rune matched by boundary.
func capitalizeAfter(input string, boundary func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(input))
	pending := true
	for _, r := range input {
		switch {
		case boundary(r):
			pending = true
		case pending && unicode.IsLetter(r):
			r = unicode.ToUpper(r)
			pending = false
		case !unicode.IsSpace(r):
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max]
}
