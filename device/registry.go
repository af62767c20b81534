package device

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new, uninitialized backend instance.
type Factory func() Device

// registry holds registered backends. It is only written from init functions
// and tests, but reads may come from any goroutine.
var (
	registryMu sync.RWMutex
	factories  = map[Type]Factory{
		TypeNull: func() Device { return NewNull() },
	}
)

// Register registers a backend factory for t, replacing any previous one.
// Registering TypeDirect3D or an unknown type is a programming error.
func Register(t Type, factory Factory) {
	if !t.implemented() {
		panic(fmt.Sprintf("device: cannot register backend %s", t))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[t] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(t Type) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, t)
}

// IsRegistered checks if a backend factory is registered for t.
func IsRegistered(t Type) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[t]
	return ok
}

// Available returns the registered backend types in ascending order.
func Available() []Type {
	registryMu.RLock()
	defer registryMu.RUnlock()

	types := make([]Type, 0, len(factories))
	for t := range factories {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// New returns a fresh backend of type t. It never performs native work:
// the returned device still has to be initialized.
func New(t Type) (Device, error) {
	if !t.implemented() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, t)
	}

	registryMu.RLock()
	factory, ok := factories[t]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBackendNotAvailable, t)
	}
	return factory(), nil
}

func (t Type) implemented() bool {
	return t == TypeNull || t == TypeOpenGL
}
