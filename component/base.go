package component

import (
	"time"

	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/parameter"
	"github.com/hopsan/hopsancore/port"
	"github.com/hopsan/hopsancore/types"
)

// Base is an embeddable struct giving a component model port/parameter
// bookkeeping, timestep state, and default (no-op) lifecycle hooks for
// free — "compose, don't inherit", the same shape the teacher's
// RuleNodeCtx uses to wrap a types.Node. A concrete component embeds
// *Base and overrides whichever of Configure/Initialize/
// SimulateOneTimestep/Finalize it needs; Base's own Initialize/Finalize
// are valid defaults for a component with nothing to do at those points.
type Base struct {
	name     string
	typeName string
	cqs      types.CQSType
	parent   Parent

	ports      map[string]*port.Port
	multiPorts map[string]*port.MultiPort
	params     *parameter.Registry

	desiredTs float64
	ts        float64
	t         float64
	inheritTs bool

	measured time.Duration

	Cfg types.Config
}

// NewBase constructs a Base for a component of the given type name and
// CQS role.
func NewBase(typeName string, cqs types.CQSType) *Base {
	return &Base{
		typeName:   typeName,
		cqs:        cqs,
		ports:      map[string]*port.Port{},
		multiPorts: map[string]*port.MultiPort{},
		params:     parameter.NewRegistry(),
		inheritTs:  true,
	}
}

func (b *Base) Name() string        { return b.name }
func (b *Base) SetName(name string) { b.name = name }
func (b *Base) TypeName() string    { return b.typeName }
func (b *Base) CQSType() types.CQSType { return b.cqs }

// SetCQSType overrides the CQS type assigned at construction. Ordinary
// component models never call this; it exists for System, whose CQS
// type can be derived from its children or pinned explicitly by the
// modeler after construction (spec.md §4.2).
func (b *Base) SetCQSType(cqs types.CQSType) { b.cqs = cqs }

func (b *Base) Parent() Parent     { return b.parent }
func (b *Base) SetParent(p Parent) { b.parent = p }

func (b *Base) Ports() map[string]*port.Port           { return b.ports }
func (b *Base) MultiPorts() map[string]*port.MultiPort { return b.multiPorts }
func (b *Base) Parameters() *parameter.Registry         { return b.params }

func (b *Base) DesiredTimestep() float64    { return b.desiredTs }
func (b *Base) SetDesiredTimestep(ts float64) { b.desiredTs = ts }
func (b *Base) Timestep() float64           { return b.ts }
func (b *Base) SetTimestep(ts float64)      { b.ts = ts }
func (b *Base) Time() float64               { return b.t }
func (b *Base) SetTime(t float64)           { b.t = t }
func (b *Base) InheritTimestep() bool       { return b.inheritTs }
func (b *Base) MeasuredTime() time.Duration { return b.measured }

// SetMeasuredTime records the wall time of this component's most recent
// step, as measured by the multi-threaded scheduler.
func (b *Base) SetMeasuredTime(d time.Duration) { b.measured = d }

// AddPort registers an ordinary Power/Read/Write/System port under name.
func (b *Base) AddPort(name string, role port.Role, typeDesc *node.TypeDescriptor, required bool) *port.Port {
	p := port.NewPort(b, name, role, typeDesc, required)
	b.ports[name] = p
	return p
}

// AddMultiPort registers a PowerMulti/ReadMulti multi-port under name.
func (b *Base) AddMultiPort(name string, role port.Role, typeDesc *node.TypeDescriptor, required bool) *port.MultiPort {
	mp := port.NewMultiPort(b, name, role, typeDesc, required)
	b.ports[name] = mp.Port
	b.multiPorts[name] = mp
	return mp
}

// Port looks up a registered ordinary port by name.
func (b *Base) Port(name string) (*port.Port, bool) {
	p, ok := b.ports[name]
	return p, ok
}

// MultiPort looks up a registered multi-port by name.
func (b *Base) MultiPort(name string) (*port.MultiPort, bool) {
	mp, ok := b.multiPorts[name]
	return mp, ok
}

// AddParameter registers p in this component's parameter registry.
func (b *Base) AddParameter(p *parameter.Parameter) { b.params.Register(p) }

// RequiredPortsConnected reports whether every port marked required is
// currently connected, the invariant Initialize checks before running
// (spec.md §3 Component invariant).
func (b *Base) RequiredPortsConnected() (failingPort string, ok bool) {
	for name, p := range b.ports {
		if p.Required() && !p.IsConnected() {
			return name, false
		}
	}
	return "", true
}

// Initialize is Base's default: no-op success. Components with state to
// reset between runs override it.
func (b *Base) Initialize() error { return nil }

// Finalize is Base's default: no-op success.
func (b *Base) Finalize() error { return nil }
