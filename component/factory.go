package component

import (
	"fmt"
	"sync"
)

// RegisterStatus reports the outcome of a Registry Register/Unregister
// call (spec.md §4.8's three-way ClassFactory status), mirroring
// node.RegisterStatus.
type RegisterStatus int

const (
	RegisteredOK RegisterStatus = iota
	AlreadyRegistered
	NotRegistered
)

func (s RegisterStatus) String() string {
	switch s {
	case RegisteredOK:
		return "RegisteredOK"
	case AlreadyRegistered:
		return "AlreadyRegistered"
	default:
		return "NotRegistered"
	}
}

// Constructor builds a fresh, unconfigured Component instance.
type Constructor func() Component

// Registry is the component class factory: a string-keyed registry of
// constructors, protected the same way node.Registry and the teacher's
// RuleComponentRegistry are — registration is a start-up-time,
// single-threaded affair; lookups afterward are read-mostly.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry returns an empty component-type registry.
func NewRegistry() *Registry {
	return &Registry{ctors: map[string]Constructor{}}
}

// Register adds ctor under key. Re-registering the same key is rejected
// (AlreadyRegistered) and leaves the factory unchanged.
func (r *Registry) Register(key string, ctor Constructor) RegisterStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ctors[key]; ok {
		return AlreadyRegistered
	}
	r.ctors[key] = ctor
	return RegisteredOK
}

// Unregister removes a previously-registered key.
func (r *Registry) Unregister(key string) RegisterStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ctors[key]; !ok {
		return NotRegistered
	}
	delete(r.ctors, key)
	return RegisteredOK
}

// NewComponent constructs a fresh Component of the type registered under
// key, ready for System.AddComponent to name and file it.
func (r *Registry) NewComponent(key string) (Component, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("component: unknown component type %q", key)
	}
	return ctor(), nil
}

// Keys returns every currently-registered component type key.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.ctors))
	for k := range r.ctors {
		keys = append(keys, k)
	}
	return keys
}
