// Package i18n resolves translation ids to localized strings. The built-in
// catalog ships English and German messages; unknown locales fall back to the
// default locale.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is used when a requested locale has no messages.
const DefaultLocale = "en"

// ErrMissingTranslation is returned when no locale in the fallback chain
// defines a key.
var ErrMissingTranslation = errors.New("i18n: missing translation")

// Translator resolves a key for locale. Args are applied to the message as
// fmt verbs.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

//go:embed locales/*.yaml
var embedded embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog is an immutable set of messages keyed by locale.
type Catalog struct {
	defaultLocale string
	messages      map[string]map[string]string
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLocale overrides DefaultLocale.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) {
		if normalized := normalizeLocale(locale); normalized != "" {
			c.defaultLocale = normalized
		}
	}
}

// Load reads every *.yaml file at the root of fsys. A file without a locale
// field is keyed by its base name.
func Load(fsys fs.FS, opts ...Option) (*Catalog, error) {
	if fsys == nil {
		return nil, errors.New("i18n: filesystem is required")
	}
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("i18n: list locales: %w", err)
	}

	catalog := &Catalog{
		defaultLocale: DefaultLocale,
		messages:      make(map[string]map[string]string, len(files)),
	}
	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", name, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
		}
		locale := normalizeLocale(file.Locale)
		if locale == "" {
			locale = normalizeLocale(strings.TrimSuffix(path.Base(name), path.Ext(name)))
		}
		bucket := catalog.messages[locale]
		if bucket == nil {
			bucket = make(map[string]string, len(file.Messages))
			catalog.messages[locale] = bucket
		}
		for key, msg := range file.Messages {
			bucket[strings.TrimSpace(key)] = strings.TrimSpace(msg)
		}
	}

	for _, opt := range opts {
		if opt != nil {
			opt(catalog)
		}
	}
	return catalog, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded locale files.
func Default() *Catalog {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "locales")
		if err != nil {
			panic(fmt.Errorf("i18n: embedded locales: %w", err))
		}
		catalog, err := Load(sub)
		if err != nil {
			panic(err)
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

// Translate resolves key by trying locale ("de-AT"), its base language
// ("de"), then the default locale.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	key = strings.TrimSpace(key)
	if c == nil || key == "" {
		return "", ErrMissingTranslation
	}
	for _, candidate := range c.chain(locale) {
		msg, ok := c.messages[candidate][key]
		if !ok || msg == "" {
			continue
		}
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...), nil
		}
		return msg, nil
	}
	return "", fmt.Errorf("%w: %q (%s)", ErrMissingTranslation, key, locale)
}

// Has reports whether locale resolves key without falling back to the
// default locale.
func (c *Catalog) Has(locale, key string) bool {
	if c == nil {
		return false
	}
	normalized := normalizeLocale(locale)
	if _, ok := c.messages[normalized][key]; ok {
		return true
	}
	_, ok := c.messages[baseLanguage(normalized)][key]
	return ok
}

// Locales returns the loaded locales, sorted.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// DefaultLocale returns the last locale of every fallback chain.
func (c *Catalog) DefaultLocale() string {
	if c == nil {
		return DefaultLocale
	}
	return c.defaultLocale
}

func (c *Catalog) chain(locale string) []string {
	normalized := normalizeLocale(locale)
	chain := make([]string, 0, 3)
	seen := map[string]struct{}{}
	for _, candidate := range []string{normalized, baseLanguage(normalized), c.defaultLocale} {
		if candidate == "" {
			continue
		}
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		chain = append(chain, candidate)
	}
	return chain
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

func baseLanguage(locale string) string {
	if idx := strings.IndexByte(locale, '-'); idx > 0 {
		return locale[:idx]
	}
	return locale
}

var _ Translator = (*Catalog)(nil)
