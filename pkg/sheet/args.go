package sheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-payforms/pkg/forms"
)

// ErrInvalidArgs is wrapped by every Args validation failure.
var ErrInvalidArgs = errors.New("sheet: invalid arguments")

// Args are the launch arguments of one sheet session.
type Args struct {
	ClientSecret   string `json:"client_secret"`
	PublishableKey string `json:"publishable_key"`
	PaymentMethod  string `json:"payment_method"`
	MerchantName   string `json:"merchant_name,omitempty"`
	Locale         string `json:"locale,omitempty"`
}

// Validate checks that the secrets are present and well formed and that the
// payment method is registered.
func (a Args) Validate() error {
	if strings.TrimSpace(a.ClientSecret) == "" {
		return fmt.Errorf("%w: client secret is required", ErrInvalidArgs)
	}
	if !strings.Contains(a.ClientSecret, "_secret_") {
		return fmt.Errorf("%w: client secret is malformed", ErrInvalidArgs)
	}
	key := strings.TrimSpace(a.PublishableKey)
	if key == "" {
		return fmt.Errorf("%w: publishable key is required", ErrInvalidArgs)
	}
	if !strings.HasPrefix(key, "pk_") {
		return fmt.Errorf("%w: publishable key must start with pk_", ErrInvalidArgs)
	}
	if _, err := forms.ParseMethod(a.PaymentMethod); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return nil
}

// Method returns the parsed payment method. Call Validate first.
func (a Args) Method() forms.Method {
	method, _ := forms.ParseMethod(a.PaymentMethod)
	return method
}

// Application describes the hosting application.
type Application struct {
	Name          string
	DefaultLocale string
}
