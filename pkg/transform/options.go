package transform

import "strings"

// Option customises a Transform call.
type Option func(*config)

type config struct {
	merchantName   string
	defaultCountry string
}

// WithMerchantName sets the merchant shown in mandate texts.
func WithMerchantName(name string) Option {
	return func(cfg *config) {
		cfg.merchantName = strings.TrimSpace(name)
	}
}

// WithDefaultCountry preselects country in address blocks when no initial
// value is supplied.
func WithDefaultCountry(code string) Option {
	return func(cfg *config) {
		cfg.defaultCountry = strings.ToUpper(strings.TrimSpace(code))
	}
}
