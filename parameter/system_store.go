package parameter

import "sync"

// SystemParameter is one named, typed value held by a system and
// referenceable by component parameters (spec.md §3/§4.4).
type SystemParameter struct {
	Name        string
	TextValue   string
	DataType    DataType
	Description string
	Unit        string
}

// SystemStore is a system's named parameter store. It is consulted by
// name, never by pointer, every time a bound Parameter is resolved —
// the "weak reference" spec.md §4.4 calls for.
type SystemStore struct {
	mu    sync.RWMutex
	byName map[string]SystemParameter
	order  []string
}

// NewSystemStore returns an empty system-parameter store.
func NewSystemStore() *SystemStore {
	return &SystemStore{byName: map[string]SystemParameter{}}
}

// Set creates or overwrites the named system parameter.
func (s *SystemStore) Set(name, textValue string, dataType DataType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byName[name]; !exists {
		s.order = append(s.order, name)
	}
	s.byName[name] = SystemParameter{Name: name, TextValue: textValue, DataType: dataType}
}

// Get returns the named system parameter.
func (s *SystemStore) Get(name string) (SystemParameter, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.byName[name]
	return sp, ok
}

// Remove deletes the named system parameter. Any Parameter still bound
// to it will fail to Resolve afterward and report a dangling binding at
// the next System.Initialize.
func (s *SystemStore) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byName, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Names returns every system parameter name in registration order.
func (s *SystemStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
