package reader

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory creates an unconfigured reader instance.
type Factory func() Reader

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register adds a reader factory under its command-line name. Readers
// register themselves from their package init.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = factory
}

// New creates a reader by name.
func New(name string) (Reader, error) {
	mu.RLock()
	factory, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown reader: %s (available: %s)", name, strings.Join(Available(), ", "))
	}
	return factory(), nil
}

// Available returns the registered reader names, sorted.
func Available() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
