// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a new Surface with the given options.
// Implementations should validate options and return descriptive
// errors.
type Factory func(opts Options) (Surface, error)

// Entry represents a registered surface backend.
type Entry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: windowed backends
	//   - 10: offscreen software backends
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend is available on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered surface backends.
//
// The registry lets alternative drawing targets plug in without
// changes to the core library.
//
// Example registration:
//
//	func init() {
//	    surface.Register("fb", 50, fbFactory, fbAvailable)
//	}
//
// Example usage:
//
//	s, err := surface.NewByName("fb", 800, 600)
//	// or auto-select best available:
//	s, err := surface.New(800, 600)
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates a new empty registry. Most code should use the
// global registry via Register and New.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority
// (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by
// priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*Entry, bool) {
	return globalRegistry.Get(name)
}

// New creates a surface using the best available backend. The error
// matches ErrUnavailable when no backend can provide one.
func New(width, height int) (Surface, error) {
	return globalRegistry.New(Options{Width: width, Height: height})
}

// NewWithOptions creates a surface using the best available backend.
func NewWithOptions(opts Options) (Surface, error) {
	return globalRegistry.New(opts)
}

// NewByName creates a surface using a specific named backend.
func NewByName(name string, width, height int) (Surface, error) {
	return globalRegistry.NewByName(name, Options{Width: width, Height: height})
}

// NewByNameWithOptions creates a surface using a specific backend.
func NewByNameWithOptions(name string, opts Options) (Surface, error) {
	return globalRegistry.NewByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*Entry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &Entry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by
// priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// New creates a surface using the best available backend.
func (r *Registry) New(opts Options) (Surface, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrUnavailable
	}

	// Try each available backend in priority order
	var lastErr error
	for _, name := range available {
		s, err := r.NewByName(name, opts)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrUnavailable
}

// NewByName creates a surface using a specific backend.
func (r *Registry) NewByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	return entry.Factory(opts)
}

// sortedNames returns backend names sorted by priority (highest
// first). If onlyAvailable is true, filters to available backends
// only. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrUnavailable is the umbrella condition for "no usable drawing
	// target": no backend is registered, the named backend is missing
	// or cannot run here, or window creation failed. Every error the
	// registry and the windowed backends return matches it with
	// errors.Is.
	ErrUnavailable = errors.New("surface: unavailable")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

func (e *BackendNotFoundError) Is(target error) bool {
	return target == ErrUnavailable
}

// BackendUnavailableError indicates a backend exists but is not
// available on this system.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

func (e *BackendUnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}
