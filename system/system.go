// Package system implements the hierarchical container of spec.md
// §3/§4.5: a System is itself a component.Component (so systems nest),
// additionally owning child components, interior nodes, system
// parameters, aliases, and the fixed-step scheduler (scheduler.go).
package system

import (
	"sync"
	"sync/atomic"

	"github.com/hopsan/hopsancore/component"
	"github.com/hopsan/hopsancore/messagebus"
	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/parameter"
	"github.com/hopsan/hopsancore/types"
)

// System is a container component: it owns child components partitioned
// by CQS type, the interior nodes connecting them, a system-parameter
// store, and the alias namespace, and drives their simulation.
type System struct {
	*component.Base

	mu sync.RWMutex

	cList, qList, sList, undefinedList []component.Component
	byName                             map[string]component.Component

	interiorNodes []*node.Node

	takenNames map[string]struct{}

	systemParams *parameter.SystemStore
	aliases      map[string]any

	bus *messagebus.Bus
	cfg types.Config

	startT, stopT, logDt float64

	stopping atomic.Bool

	lastRunID string

	// explicitCQS marks that the modeler pinned this system's CQS type
	// directly (SetCQSType), so deriveCQSType must leave it alone.
	explicitCQS bool
}

// New constructs an empty, unnamed System. cfg supplies the logger,
// properties and UDFs; bus is the message sink this system (and
// every component it owns) reports onto.
func New(cfg types.Config, bus *messagebus.Bus) *System {
	s := &System{
		Base:         component.NewBase("System", types.UndefinedCQS),
		byName:       map[string]component.Component{},
		takenNames:   map[string]struct{}{},
		systemParams: parameter.NewSystemStore(),
		aliases:      map[string]any{},
		bus:          bus,
		cfg:          cfg,
	}
	return s
}

// Configure only stores cfg on the System: a system's "configuration" is
// entirely the shape built up through AddComponent/Connect calls, not a
// struct decoded up front.
func (s *System) Configure(cfg types.Config) error { s.cfg = cfg; return nil }

// SystemParameters returns the system-parameter store components'
// bound parameters resolve against.
func (s *System) SystemParameters() *parameter.SystemStore { return s.systemParams }

// Bus returns the message bus this system and its components report onto.
func (s *System) Bus() *messagebus.Bus { return s.bus }

// InteriorNodes returns every node currently owned by this system (the
// ones its Connect calls created), used by the scheduler for logging
// and by tests for introspection.
func (s *System) InteriorNodes() []*node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*node.Node, len(s.interiorNodes))
	copy(out, s.interiorNodes)
	return out
}

// Component looks up a direct child by name.
func (s *System) Component(name string) (component.Component, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byName[name]
	return c, ok
}

// AddComponent assigns c a unique name (seeded from want), files it into
// the C/Q/S/undefined bucket matching its CQSType, sets its parent to s,
// and reserves the name. It returns the name actually assigned.
func (s *System) AddComponent(want string, c component.Component) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := reserveUniqueName(s.takenNames, want)
	c.SetName(name)
	c.SetParent(s)

	switch c.CQSType() {
	case types.CComponent:
		s.cList = append(s.cList, c)
	case types.QComponent:
		s.qList = append(s.qList, c)
	case types.SComponent:
		s.sList = append(s.sList, c)
	default:
		s.undefinedList = append(s.undefinedList, c)
	}
	s.byName[name] = c
	s.deriveCQSType()
	return name
}

// RemoveComponent releases ownership of the named component: it is
// unfiled from its CQS bucket and its name/aliases are freed, but its
// ports and nodes are left untouched (deletion is the caller's choice,
// per spec.md §4.5).
func (s *System) RemoveComponent(name string) (component.Component, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	delete(s.byName, name)
	delete(s.takenNames, name)

	remove := func(list []component.Component) []component.Component {
		out := list[:0]
		for _, existing := range list {
			if existing != c {
				out = append(out, existing)
			}
		}
		return out
	}
	s.cList = remove(s.cList)
	s.qList = remove(s.qList)
	s.sList = remove(s.sList)
	s.undefinedList = remove(s.undefinedList)

	for alias, ref := range s.aliases {
		if refersTo(ref, name, "") {
			delete(s.aliases, alias)
			delete(s.takenNames, alias)
		}
	}
	s.deriveCQSType()
	return c, true
}

// deriveCQSType implements spec.md §4.2's system-CQS-type derivation
// rule from boundary power ports, when the modeler has not pinned one
// explicitly. Because this module does not track "boundary" ports
// separately from the system's own System-role ports, the derivation
// here looks at the CQS buckets instead: if only C components, the
// system is C; if only Q, Q; if only S, S, with children in the
// undefined bucket counted as S; any mix, or no children at all, leaves
// it Undefined for the modeler to set explicitly via SetCQSType.
func (s *System) deriveCQSType() {
	if s.explicitCQS {
		return
	}
	hasC := len(s.cList) > 0
	hasQ := len(s.qList) > 0
	hasS := len(s.sList) > 0 || len(s.undefinedList) > 0
	switch {
	case hasC && !hasQ && !hasS:
		s.Base.SetCQSType(types.CComponent)
	case hasQ && !hasC && !hasS:
		s.Base.SetCQSType(types.QComponent)
	case hasS && !hasC && !hasQ:
		s.Base.SetCQSType(types.SComponent)
	default:
		s.Base.SetCQSType(types.UndefinedCQS)
	}
}

// SetCQSType pins the system's externally-visible CQS type explicitly,
// overriding automatic derivation from its children's buckets (spec.md
// §4.2: "the modeler must set it" when boundary ports are mixed).
func (s *System) SetCQSType(cqs types.CQSType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.explicitCQS = true
	s.Base.SetCQSType(cqs)
}
