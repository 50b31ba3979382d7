package render

import (
	"errors"
	"fmt"
	"mime"
	"sort"
	"strings"
	"sync"
)

// ErrRendererNotFound is returned by Registry.Get for unknown names.
var ErrRendererNotFound = errors.New("render: renderer not found")

// Registry holds renderers by name and by the media type they produce. The
// HTTP server and CLI share one instance across goroutines.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
	byType map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Renderer),
		byType: make(map[string]string),
	}
}

// Register adds renderer under its Name. The first renderer registered for a
// media type wins content negotiation for that type.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is nil")
	}
	name := strings.TrimSpace(renderer.Name())
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.byName[name] = renderer
	if mediaType := mediaTypeOf(renderer.ContentType()); mediaType != "" {
		if _, taken := r.byType[mediaType]; !taken {
			r.byType[mediaType] = name
		}
	}
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer registered as name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[name]
	return ok
}

// Negotiate picks the renderer for an Accept header value. Media ranges are
// tried in the order given; q-values and wildcards are ignored.
func (r *Registry) Negotiate(accept string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, part := range strings.Split(accept, ",") {
		if name, ok := r.byType[mediaTypeOf(part)]; ok {
			return name, true
		}
	}
	return "", false
}

func mediaTypeOf(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return ""
	}
	return mediaType
}
