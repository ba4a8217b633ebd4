// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"errors"
	"sort"
	"sync"

	"github.com/gogpu/lantern"
)

// Factory creates a presenter instance.
type Factory func() (lantern.Presenter, error)

// RegistryEntry represents a registered presenter backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: GPU backends
	//   - 10: pure software backends
	Priority int

	// Factory creates presenter instances.
	Factory Factory

	// Available reports if the backend is available on this system.
	Available func() bool
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*RegistryEntry{}
)

// Register adds a presenter backend to the registry.
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if available == nil {
		available = func() bool { return true }
	}
	registry[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a presenter backend from the registry.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, name)
}

// List returns all registered backend names sorted by priority
// (highest first).
func List() []string {
	return sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return sortedNames(true)
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no presenter backends are
	// registered or available on the current system.
	ErrNoBackendAvailable = errors.New("display: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "display: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "display: backend unavailable: " + e.Name
}

// New creates a presenter using a specific named backend.
func New(name string) (lantern.Presenter, error) {
	registryMu.RLock()
	entry, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return entry.Factory()
}

// NewBest creates a presenter using the best available backend.
func NewBest() (lantern.Presenter, error) {
	names := sortedNames(true)
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range names {
		p, err := New(name)
		if err == nil {
			return p, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Use creates a presenter by name and makes it the active presenter for
// subsequent runners.
func Use(name string) error {
	p, err := New(name)
	if err != nil {
		return err
	}
	lantern.RegisterPresenter(p)
	return nil
}

// sortedNames returns backend names sorted by priority (highest first).
// If onlyAvailable is true, filters to available backends only.
func sortedNames(onlyAvailable bool) []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(registry))
	for name, e := range registry {
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
