// Package registry provides an init-time registry of named factories.
// Packages register their implementations in init() functions, allowing
// frontends to discover and instantiate them without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered entry.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance.
type Factory[T any] func() T

// Registry maps stable IDs to factories.
type Registry[T any] struct {
	kind      string // used in error messages, e.g. "mode"
	mu        sync.RWMutex
	factories map[string]Factory[T]
	titles    map[string]string
}

// New creates an empty registry. kind names the registered things in
// error and panic messages.
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:      kind,
		factories: make(map[string]Factory[T]),
		titles:    make(map[string]string),
	}
}

// Register adds a factory to the registry.
// Typically called from an init() function.
// Panics if an entry with the same ID is already registered.
func (r *Registry[T]) Register(id, title string, f Factory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: %s %q already registered", r.kind, id))
	}

	r.factories[id] = f
	r.titles[id] = title
}

// List returns information about all registered entries, sorted by ID.
func (r *Registry[T]) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.factories))
	for id := range r.factories {
		result = append(result, Info{
			ID:    id,
			Title: r.titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new entry by its ID.
// Returns an error if the ID is not registered.
func (r *Registry[T]) Create(id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("registry: unknown %s %q", r.kind, id)
	}

	return f(), nil
}

// Exists checks if an entry with the given ID is registered.
func (r *Registry[T]) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

// Title returns the display title for an ID, or the ID itself.
func (r *Registry[T]) Title(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.titles[id]; ok {
		return t
	}
	return id
}
