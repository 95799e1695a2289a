// Package component implements the core's base entity: a named, typed
// (C/Q/S/undefined) set of ports and parameters with a four-hook
// lifecycle (spec.md §3/§4.2). There is no class hierarchy — component
// models compose component.Base and override the hooks they need, the
// trait shape spec.md §9 calls for.
package component

import (
	"time"

	"github.com/hopsan/hopsancore/parameter"
	"github.com/hopsan/hopsancore/port"
	"github.com/hopsan/hopsancore/types"
)

// Parent is the minimal back-reference a Component needs to its owning
// container. component never imports system — system imports component —
// so the dependency only runs one way.
type Parent interface {
	Name() string
}

// Component is the contract every component model (and System, which is
// itself a component) implements.
type Component interface {
	Name() string
	SetName(name string)
	TypeName() string
	CQSType() types.CQSType

	Parent() Parent
	SetParent(p Parent)

	Ports() map[string]*port.Port
	MultiPorts() map[string]*port.MultiPort
	Parameters() *parameter.Registry

	DesiredTimestep() float64
	SetDesiredTimestep(ts float64)
	Timestep() float64
	SetTimestep(ts float64)
	Time() float64
	SetTime(t float64)
	InheritTimestep() bool

	MeasuredTime() time.Duration

	// Configure is called once at construction time; it registers ports
	// and parameters.
	Configure(cfg types.Config) error
	// Initialize is called before each simulation run.
	Initialize() error
	// SimulateOneTimestep is called once per step, advancing from t to
	// t+ts.
	SimulateOneTimestep(t, ts float64) error
	// Finalize is called after the run.
	Finalize() error
}
