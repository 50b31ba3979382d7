package orchestrator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// ThemeSelector resolves a theme and variant into a go-theme selection.
type ThemeSelector interface {
	Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)
}

// ErrThemeNotFound is returned by ManifestSelector for unknown themes or
// variants.
var ErrThemeNotFound = errors.New("orchestrator: theme not found")

// WithThemeSelector registers the selector used to resolve request themes.
func WithThemeSelector(selector ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themes = selector
	}
}

// WithDefaultTheme sets the theme and variant used when a request names none.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithThemeManifests registers manifests behind a ManifestSelector and makes
// defaultTheme the default selection.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		selector := NewManifestSelector()
		for _, manifest := range manifests {
			if err := selector.Register(manifest); err != nil && o.initialiseErr == nil {
				o.initialiseErr = err
			}
		}
		o.themes = selector
		o.themeName = defaultTheme
		o.themeVariant = defaultVariant
	}
}

func (o *Orchestrator) selectTheme(name, variant string) (*theme.Selection, error) {
	if o.themes == nil {
		return nil, nil
	}
	if strings.TrimSpace(name) == "" {
		name = o.themeName
	}
	if strings.TrimSpace(variant) == "" {
		variant = o.themeVariant
	}
	if name == "" {
		return nil, nil
	}
	selection, err := o.themes.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	return selection, nil
}

// ManifestSelector is an in-memory ThemeSelector over registered manifests.
type ManifestSelector struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
}

// NewManifestSelector returns an empty selector.
func NewManifestSelector() *ManifestSelector {
	return &ManifestSelector{manifests: make(map[string]*theme.Manifest)}
}

// Register adds manifest under its Name.
func (s *ManifestSelector) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return errors.New("orchestrator: theme manifest is nil")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return errors.New("orchestrator: theme manifest name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.manifests[name]; exists {
		return fmt.Errorf("orchestrator: theme %q already registered", name)
	}
	s.manifests[name] = manifest
	return nil
}

// Select returns the manifest registered as name. An empty variant selects
// the base tokens; a non-empty variant must be declared by the manifest.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q variant %q", ErrThemeNotFound, name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// Themes lists the registered theme names.
func (s *ManifestSelector) Themes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
