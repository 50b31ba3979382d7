// Package config loads payforms CLI and server settings from a YAML file,
// PAYFORMS_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	theme "github.com/goliatone/go-theme"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-payforms/pkg/controller"
	"github.com/goliatone/go-payforms/pkg/forms"
)

// EnvPrefix prefixes every environment override, e.g. PAYFORMS_ADDR.
const EnvPrefix = "PAYFORMS"

// Config is the resolved configuration.
type Config struct {
	Addr           string      `mapstructure:"addr"`
	Locale         string      `mapstructure:"locale"`
	MerchantName   string      `mapstructure:"merchant_name"`
	DefaultCountry string      `mapstructure:"default_country"`
	Renderer       string      `mapstructure:"renderer"`
	LogLevel       string      `mapstructure:"log_level"`
	Methods        []string    `mapstructure:"methods"`
	Theme          ThemeConfig `mapstructure:"theme"`
}

// ThemeConfig declares a single go-theme manifest inline.
type ThemeConfig struct {
	Name     string                       `mapstructure:"name"`
	Variant  string                       `mapstructure:"variant"`
	Tokens   map[string]string            `mapstructure:"tokens"`
	Variants map[string]map[string]string `mapstructure:"variants"`
}

// flagKeys maps configuration keys to the flag names that override them.
var flagKeys = map[string]string{
	"addr":            "addr",
	"locale":          "locale",
	"merchant_name":   "merchant",
	"default_country": "country",
	"renderer":        "renderer",
	"log_level":       "log-level",
	"theme.name":      "theme",
	"theme.variant":   "theme-variant",
}

func defaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("locale", "en")
	v.SetDefault("merchant_name", "")
	v.SetDefault("default_country", "")
	v.SetDefault("renderer", "vanilla")
	v.SetDefault("log_level", "info")
	v.SetDefault("methods", []string{})
	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
}

// Load reads path (or ./payforms.yaml when path is empty and the file
// exists), applies environment overrides and then any flags in flags that
// were set explicitly. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("payforms")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", describe(path), err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func describe(path string) string {
	if path == "" {
		return "payforms.yaml"
	}
	return path
}

// Validate rejects unknown methods, countries and log levels.
func (c Config) Validate() error {
	for _, raw := range c.Methods {
		if _, err := forms.ParseMethod(raw); err != nil {
			return fmt.Errorf("config: methods: %w", err)
		}
	}
	if c.DefaultCountry != "" && !controller.IsCountryCode(strings.ToUpper(c.DefaultCountry)) {
		return fmt.Errorf("config: default_country: unknown country %q", c.DefaultCountry)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	if c.Theme.Variant != "" {
		if _, ok := c.Theme.Variants[c.Theme.Variant]; !ok {
			return fmt.Errorf("config: theme variant %q is not declared", c.Theme.Variant)
		}
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// EnabledMethods returns the configured methods, or every registered
// method when none are listed.
func (c Config) EnabledMethods() []forms.Method {
	if len(c.Methods) == 0 {
		return forms.Methods()
	}
	out := make([]forms.Method, 0, len(c.Methods))
	seen := make(map[forms.Method]struct{}, len(c.Methods))
	for _, raw := range c.Methods {
		method, err := forms.ParseMethod(raw)
		if err != nil {
			continue
		}
		if _, dup := seen[method]; dup {
			continue
		}
		seen[method] = struct{}{}
		out = append(out, method)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ThemeManifest builds the go-theme manifest declared under theme, or nil
// when no theme is configured.
func (c Config) ThemeManifest() *theme.Manifest {
	name := strings.TrimSpace(c.Theme.Name)
	if name == "" {
		return nil
	}
	manifest := &theme.Manifest{
		Name:    name,
		Version: "config",
		Tokens:  copyTokens(c.Theme.Tokens),
	}
	if len(c.Theme.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(c.Theme.Variants))
		for variant, tokens := range c.Theme.Variants {
			manifest.Variants[variant] = theme.Variant{Tokens: copyTokens(tokens)}
		}
	}
	return manifest
}

func copyTokens(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
