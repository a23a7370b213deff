package native

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]reflect.Type)
)

// Register records the native type of the schema record `name`, given as a
// zero value or a typed nil pointer. Generated files call it from init for
// every record they declare. Registering a name twice panics.
func Register(name string, zero any) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if zero == nil {
		panic("native: Register of nil type for " + name)
	}

	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("native: Register called twice for record %s", name))
	}

	registry[name] = reflect.TypeOf(zero)
}

// Lookup returns the native type registered for the schema record `name`.
func Lookup(name string) (reflect.Type, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	t, ok := registry[name]
	return t, ok
}

// New returns a pointer to a new zero value of the native type registered
// for `name`. For records registered as pointers the pointed-to type is
// allocated.
func New(name string) (any, error) {
	t, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf(`native: unknown record "%s"`, name)
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return reflect.New(t).Interface(), nil
}

// Registered returns the registered record names, sorted.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}
