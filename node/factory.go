package node

import (
	"fmt"
	"sync"
)

// RegisterStatus reports the outcome of a Registry Register/Unregister
// call, matching the three-way status the original ClassFactory reports
// (spec.md §4.8) instead of a bare bool.
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

// Registry is the node-type class factory: a string-keyed registry of
// TypeDescriptors. Registration is expected to happen once at start-up
// (single-threaded in practice); lookups afterward are read-mostly, so a
// RWMutex protects it the same way the component registry is protected.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*TypeDescriptor
}

// NewRegistry returns an empty node-type registry.
func NewRegistry() *Registry {
	return &Registry{types: map[string]*TypeDescriptor{}}
}

// Register adds typ under its own Name(). Re-registering the same name
// is rejected (AlreadyRegistered) and leaves the factory unchanged.
func (r *Registry) Register(typ *TypeDescriptor) RegisterStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[typ.Name()]; ok {
		return AlreadyRegistered
	}
	r.types[typ.Name()] = typ
	return RegisteredOK
}

// Unregister removes a previously-registered type by name.
func (r *Registry) Unregister(name string) RegisterStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[name]; !ok {
		return NotRegistered
	}
	delete(r.types, name)
	return RegisteredOK
}

// Lookup returns the TypeDescriptor registered under name.
func (r *Registry) Lookup(name string) (*TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// New constructs a fresh, zero-valued Node of the type registered under
// name.
func (r *Registry) New(name string) (*Node, error) {
	typ, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("node: unknown node type %q", name)
	}
	return New(typ), nil
}

// Names returns every currently-registered node type name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	return names
}
