package forms

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-payforms/pkg/elements"
)

// Method keys a payment method in the registry.
type Method string

const (
	MethodAfterpayClearpay Method = "afterpay_clearpay"
	MethodAuBecsDebit      Method = "au_becs_debit"
	MethodSepaDebit        Method = "sepa_debit"
	MethodBancontact       Method = "bancontact"
)

// ErrUnknownMethod is returned by ParseMethod for keys outside the registry.
var ErrUnknownMethod = errors.New("forms: unknown payment method")

var registry = map[Method]elements.LayoutSpec{
	MethodAfterpayClearpay: AfterpayClearpayForm,
	MethodAuBecsDebit:      AuBecsDebitForm,
	MethodSepaDebit:        SepaDebitForm,
	MethodBancontact:       BancontactForm,
}

// Lookup returns the layout registered for method.
func Lookup(method Method) (elements.LayoutSpec, bool) {
	layout, ok := registry[method]
	return layout, ok
}

// MustLookup returns the layout for method and panics when the key is not
// registered. The key set is closed, so a miss is a programming error.
func MustLookup(method Method) elements.LayoutSpec {
	layout, ok := registry[method]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownMethod, method))
	}
	return layout
}

// ParseMethod validates a method key received from configuration or a
// request.
func ParseMethod(raw string) (Method, error) {
	method := Method(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := registry[method]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, raw)
	}
	return method, nil
}

// Methods returns the registered keys sorted alphabetically.
func Methods() []Method {
	out := make([]Method, 0, len(registry))
	for method := range registry {
		out = append(out, method)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
