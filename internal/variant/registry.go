package variant

import (
	"fmt"
	"sort"
	"sync"

	"nathanbeddoewebdev/padron/internal/util"
)

var (
	mu       sync.RWMutex
	registry = map[string]Variant{}
)

// Register adds v to the registry. It panics on an empty name, a nil
// matcher or a duplicate name.
func Register(v Variant) {
	name := util.NormalizeKey(v.Name)
	if name == "" {
		panic("variant: empty variant name")
	}
	if v.Matcher == nil {
		panic(fmt.Sprintf("variant: %q has no matcher", v.Name))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("variant: %q already registered", v.Name))
	}

	v.Name = name
	registry[name] = v
}

// Get returns the variant registered under name (case-insensitive).
func Get(name string) (Variant, error) {
	normalized := util.NormalizeKey(name)
	mu.RLock()
	v, ok := registry[normalized]
	mu.RUnlock()

	if !ok {
		return Variant{}, fmt.Errorf("variant: unknown variant %q", name)
	}
	return v, nil
}

// Reset clears the registry. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]Variant{}
}

// Names returns the registered variant names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered variants sorted by name.
func All() []Variant {
	names := Names()

	mu.RLock()
	defer mu.RUnlock()
	out := make([]Variant, 0, len(names))
	for _, name := range names {
		if v, ok := registry[name]; ok {
			out = append(out, v)
		}
	}
	return out
}
