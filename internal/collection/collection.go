// SPDX-License-Identifier: MIT

// Package collection implements named, ordered collections of non-empty
// trimmed strings with linear case-insensitive search.
package collection

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Collection holds an ordered sequence of non-empty trimmed strings.
// It never stores an empty or whitespace-only string. A Collection is safe
// for concurrent use.
type Collection struct {
	mu    sync.RWMutex
	name  string
	items []string
}

// New creates an empty collection with the given name. The name is stored
// as provided; name validation is the registry's concern.
func New(name string) *Collection {
	return &Collection{name: name}
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// Add trims surrounding whitespace from item and appends the result.
// It returns false without mutating the collection when the trimmed item is
// empty. A false return is a normal outcome for invalid input, not a fault.
func (c *Collection) Add(item string) bool {
	trimmed := strings.TrimSpace(item)
	if trimmed == "" {
		return false
	}

	c.mu.Lock()
	c.items = append(c.items, trimmed)
	c.mu.Unlock()
	return true
}

// Count returns the current number of stored items.
func (c *Collection) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find performs a case-insensitive substring search over the stored items in
// insertion order and returns the first match. The second return value is
// false when no item matches. Matching uses Unicode case folding, so e.g.
// "WORLD" matches "hello world" and "straße" matches "STRASSE".
func (c *Collection) Find(term string) (string, bool) {
	folded := fold(term)

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if strings.Contains(fold(item), folded) {
			return item, true
		}
	}
	return "", false
}

// Items returns a snapshot copy of the stored items in insertion order.
func (c *Collection) Items() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

// fold normalizes s for case-insensitive comparison. A fresh caser per call:
// cases.Caser carries transform state and must not be shared across goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}
