package system

// VariableAlias resolves a human-friendly name to a specific
// (component, port, channel) triple.
type VariableAlias struct {
	Component string
	Port      string
	Slot      int
}

// ParameterAlias resolves a human-friendly name to a specific
// (component, parameter) pair.
type ParameterAlias struct {
	Component string
	Parameter string
}

// AddVariableAlias registers alias in the shared name namespace
// (component names and aliases draw from one pool of reserved names;
// port names and system-parameter names are not entered in that pool
// and are not checked against it). Returns false without mutating
// state if alias is already taken.
func (s *System) AddVariableAlias(alias, componentName, portName string, slot int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.takenNames[alias]; exists {
		return false
	}
	s.takenNames[alias] = struct{}{}
	s.aliases[alias] = VariableAlias{Component: componentName, Port: portName, Slot: slot}
	return true
}

// AddParameterAlias registers a parameter alias the same way
// AddVariableAlias registers a variable one.
func (s *System) AddParameterAlias(alias, componentName, parameterName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.takenNames[alias]; exists {
		return false
	}
	s.takenNames[alias] = struct{}{}
	s.aliases[alias] = ParameterAlias{Component: componentName, Parameter: parameterName}
	return true
}

// RemoveAlias frees alias from both the alias map and the shared name
// namespace.
func (s *System) RemoveAlias(alias string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.aliases, alias)
	delete(s.takenNames, alias)
}

// Alias looks up what alias currently resolves to: either a
// VariableAlias or a ParameterAlias.
func (s *System) Alias(alias string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.aliases[alias]
	return v, ok
}

// RenameComponent renames oldName to newName throughout the component
// map and rewrites every alias that referenced it, per spec.md §4.5
// ("renaming a component or port rewrites aliases that reference it").
func (s *System) RenameComponent(oldName, newName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byName[oldName]
	if !ok {
		return false
	}
	if _, taken := s.takenNames[newName]; taken {
		return false
	}
	delete(s.byName, oldName)
	delete(s.takenNames, oldName)
	s.byName[newName] = c
	s.takenNames[newName] = struct{}{}
	c.SetName(newName)

	for name, ref := range s.aliases {
		switch v := ref.(type) {
		case VariableAlias:
			if v.Component == oldName {
				v.Component = newName
				s.aliases[name] = v
			}
		case ParameterAlias:
			if v.Component == oldName {
				v.Component = newName
				s.aliases[name] = v
			}
		}
	}
	return true
}

// RemovePortAliases drops every alias that referenced componentName's
// portName, per spec.md §4.5 ("removing a component or port removes its
// aliases").
func (s *System) RemovePortAliases(componentName, portName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for alias, ref := range s.aliases {
		if refersTo(ref, componentName, portName) {
			delete(s.aliases, alias)
			delete(s.takenNames, alias)
		}
	}
}

// refersTo reports whether ref names componentName (and, if portName is
// non-empty, that specific port too — a ParameterAlias never matches a
// non-empty portName). Used both when a whole component is removed
// (portName == "") and when a single port is removed.
func refersTo(ref any, componentName, portName string) bool {
	switch v := ref.(type) {
	case VariableAlias:
		return v.Component == componentName && (portName == "" || v.Port == portName)
	case ParameterAlias:
		return v.Component == componentName && portName == ""
	default:
		return false
	}
}
