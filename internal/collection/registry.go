// SPDX-License-Identifier: MIT

package collection

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrEmptyName is returned when a collection name trims to nothing.
	ErrEmptyName = errors.New("collection name is empty")

	// ErrDuplicateName is returned when a collection with the same name exists.
	ErrDuplicateName = errors.New("collection already exists")
)

// Registry owns all named collections of one process. Collections are
// created empty, grown by insertion, and live until the process exits;
// there is no deletion and no persistence.
type Registry struct {
	mu          sync.RWMutex
	collections map[string]*Collection
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{collections: make(map[string]*Collection)}
}

// Create registers a new empty collection under the trimmed name.
// It returns ErrEmptyName for blank names and ErrDuplicateName when the
// name is already taken.
func (r *Registry) Create(name string) (*Collection, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.collections[trimmed]; exists {
		return nil, ErrDuplicateName
	}
	c := New(trimmed)
	r.collections[trimmed] = c
	return c, nil
}

// Get returns the collection registered under name, if any.
func (r *Registry) Get(name string) (*Collection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.collections[strings.TrimSpace(name)]
	return c, ok
}

// Names returns the registered collection names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.collections))
	for name := range r.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered collections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.collections)
}

// TotalItems returns the sum of item counts across all collections.
func (r *Registry) TotalItems() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, c := range r.collections {
		total += c.Count()
	}
	return total
}
