package parameter

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/fatih/structs"
)

// Registry is one component's (or system's) parameter set: a
// name-to-Parameter map with register/set/check operations.
type Registry struct {
	mu     sync.RWMutex
	params map[string]*Parameter
	order  []string
}

// NewRegistry returns an empty parameter registry.
func NewRegistry() *Registry {
	return &Registry{params: map[string]*Parameter{}}
}

// Register adds p under p.Name. Registering a name twice overwrites the
// previous entry but keeps its original position in Names().
func (r *Registry) Register(p *Parameter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.params[p.Name]; !exists {
		r.order = append(r.order, p.Name)
	}
	r.params[p.Name] = p
}

// Set parses text into the named parameter's declared type (or creates a
// system-parameter binding), returning false if the name is unknown or
// the value is refused.
func (r *Registry) Set(name, text string) bool {
	r.mu.RLock()
	p, ok := r.params[name]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	return p.SetText(text)
}

// Get returns the parameter's current textual value.
func (r *Registry) Get(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.params[name]
	if !ok {
		return "", false
	}
	return p.TextValue, true
}

// Parameter returns the named Parameter itself, for callers (script
// components, introspection) that need more than the text value.
func (r *Registry) Parameter(name string) (*Parameter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.params[name]
	return p, ok
}

// Names returns every registered parameter name in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Check resolves every bound parameter against store and reports the
// first one that fails, matching spec.md §4.4's
// checkParameters(out failingName) -> bool, called by initialize.
func (r *Registry) Check(store *SystemStore) (failingName string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range r.order {
		if err := r.params[name].Resolve(store); err != nil {
			return name, false
		}
	}
	return "", true
}

// hopsanTag is the struct-tag key RegisterFromStruct reads: a
// comma-separated `name,unit,description`.
const hopsanTag = "hopsan"

// RegisterFromStruct registers one Parameter per exported field of the
// struct pointed to by target that carries a `hopsan:"name,unit,desc"`
// tag. Field enumeration and tag lookup go through
// github.com/fatih/structs; the settable field address itself is
// resolved with reflect since structs.Field does not expose one.
// Supported field types are float64, int64, bool and string. It lets a
// component register its whole parameter set in one call instead of one
// Register per field.
func RegisterFromStruct(r *Registry, target any) error {
	s := structs.New(target)
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("parameter: RegisterFromStruct requires a pointer to struct, got %T", target)
	}
	rv = rv.Elem()

	for _, f := range s.Fields() {
		tag := f.Tag(hopsanTag)
		if tag == "" {
			continue
		}
		name, unit, desc := parseHopsanTag(tag, f.Name())
		addr, dt, err := fieldAddress(rv.FieldByName(f.Name()))
		if err != nil {
			return fmt.Errorf("parameter: field %s: %w", f.Name(), err)
		}
		r.Register(New(name, addr, dt, desc, unit))
	}
	return nil
}

func parseHopsanTag(tag, fallbackName string) (name, unit, desc string) {
	name = fallbackName
	parts := splitTag(tag)
	if len(parts) > 0 && parts[0] != "" {
		name = parts[0]
	}
	if len(parts) > 1 {
		unit = parts[1]
	}
	if len(parts) > 2 {
		desc = parts[2]
	}
	return
}

func splitTag(tag string) []string {
	var out []string
	start := 0
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			out = append(out, tag[start:i])
			start = i + 1
		}
	}
	out = append(out, tag[start:])
	return out
}

func fieldAddress(fv reflect.Value) (any, DataType, error) {
	if !fv.IsValid() || !fv.CanAddr() {
		return nil, 0, fmt.Errorf("field is not addressable")
	}
	addr := fv.Addr().Interface()
	switch addr.(type) {
	case *float64:
		return addr, Real, nil
	case *int64:
		return addr, Integer, nil
	case *bool:
		return addr, Bool, nil
	case *string:
		return addr, Text, nil
	default:
		return nil, 0, fmt.Errorf("unsupported parameter type %T", addr)
	}
}
