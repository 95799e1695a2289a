// Package hopsancore is the composition root spec.md §6 calls "the
// core's programmatic boundary" and SPEC_FULL.md §3 names as the
// HopsanEssentials analogue: a single type that owns the node factory,
// the component factory, and a private message bus, and exposes exactly
// the External Interfaces operations as methods. Grounded on
// HopsanEssentials.h/.cc (original_source/HOPSAN++/HopsanCore): that
// class owns the factories and the message handler and nothing else —
// connect, parameters, and lifecycle are methods of ComponentSystem and
// Component themselves, which this module implements as system.System
// and component.Component. Essentials' topology/parameter/lifecycle
// methods below are thin forwarders onto a caller-supplied System, kept
// here so one type is the whole public entry point a test or example
// program needs to import.
package hopsancore

import (
	"context"
	"fmt"

	"github.com/hopsan/hopsancore/component"
	"github.com/hopsan/hopsancore/component/common"
	"github.com/hopsan/hopsancore/messagebus"
	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/parameter"
	"github.com/hopsan/hopsancore/pluginloader"
	"github.com/hopsan/hopsancore/system"
	"github.com/hopsan/hopsancore/types"
)

// busCapacity bounds the private message bus every Essentials owns; it
// is not user-configurable, matching HopsanCoreMessageHandler's fixed
// default queue depth in the original.
const busCapacity = 1024

// Essentials is the composition root: one instance owns the node and
// component factories and the message bus every System/Component built
// through it reports onto.
type Essentials struct {
	nodeRegistry      *node.Registry
	componentRegistry *component.Registry
	bus               *messagebus.Bus
	cfg               types.Config
}

// New constructs an Essentials with the builtin node types (Signal,
// Hydraulic, Mechanic) and builtin signal components (SignalConstant,
// SignalGain, SignalSink) pre-registered, applying opts to the shared
// Config every System/Component built through it inherits.
func New(opts ...types.Option) *Essentials {
	cfg := types.NewConfig(opts...)

	nodeReg := node.NewRegistry()
	node.RegisterBuiltins(nodeReg)

	compReg := component.NewRegistry()
	common.RegisterBuiltins(compReg)

	return &Essentials{
		nodeRegistry:      nodeReg,
		componentRegistry: compReg,
		bus:               messagebus.New(busCapacity, "hopsancore"),
		cfg:               cfg,
	}
}

// RegisterNode adds a node type to the factory, spec.md §6's
// registerNode(key, ctor) — here a node type is a value descriptor
// rather than a constructor, so the "key" is simply typ.Name().
func (e *Essentials) RegisterNode(typ *node.TypeDescriptor) node.RegisterStatus {
	return e.nodeRegistry.Register(typ)
}

// RegisterComponent adds a component constructor to the factory under
// key, spec.md §6's registerComponent(key, ctor).
func (e *Essentials) RegisterComponent(key string, ctor component.Constructor) component.RegisterStatus {
	return e.componentRegistry.Register(key, ctor)
}

// CreateComponentSystem builds an empty System sharing this Essentials'
// message bus, spec.md §6's createComponentSystem() -> System*.
func (e *Essentials) CreateComponentSystem() *system.System {
	return system.New(e.cfg, e.bus)
}

// CreateComponent constructs and configures a fresh component of the
// named registered type, spec.md §6's createComponent(typeKey) ->
// Component*. The returned component is not yet owned by any System;
// the caller must pass it to a System's AddComponent.
func (e *Essentials) CreateComponent(typeKey string) (component.Component, error) {
	c, err := e.componentRegistry.NewComponent(typeKey)
	if err != nil {
		return nil, err
	}
	if err := c.Configure(e.cfg); err != nil {
		return nil, fmt.Errorf("hopsancore: configuring %q: %w", typeKey, err)
	}
	return c, nil
}

// Connect wires compA.portA to compB.portB inside sys, spec.md §6's
// connect(compA, portA, compB, portB) -> bool.
func (e *Essentials) Connect(sys *system.System, compA, portA, compB, portB string) (bool, error) {
	return sys.Connect(compA, portA, compB, portB)
}

// Disconnect detaches compName.portName inside sys, spec.md §6's
// disconnect(...).
func (e *Essentials) Disconnect(sys *system.System, compName, portName string) error {
	return sys.Disconnect(compName, portName)
}

// AddSystemPort exposes a boundary port on sys, spec.md §6's
// addSystemPort(name).
func (e *Essentials) AddSystemPort(sys *system.System, name string) {
	sys.AddSystemPort(name)
}

// SetParameterValue sets componentName's named parameter from its
// textual representation, spec.md §6's setParameterValue(name,
// textValue) -> bool.
func (e *Essentials) SetParameterValue(sys *system.System, componentName, parameterName, textValue string) bool {
	c, ok := sys.Component(componentName)
	if !ok {
		return false
	}
	return c.Parameters().Set(parameterName, textValue)
}

// GetParameterValue returns componentName's named parameter's current
// textual value, spec.md §6's getParameterValue(name).
func (e *Essentials) GetParameterValue(sys *system.System, componentName, parameterName string) (string, bool) {
	c, ok := sys.Component(componentName)
	if !ok {
		return "", false
	}
	return c.Parameters().Get(parameterName)
}

// SetSystemParameter creates or overwrites a named system parameter on
// sys, spec.md §6's setSystemParameter(name, value, type).
func (e *Essentials) SetSystemParameter(sys *system.System, name, textValue string, dataType parameter.DataType) {
	sys.SystemParameters().Set(name, textValue, dataType)
}

// RemoveSystemParameter deletes a named system parameter from sys,
// spec.md §6's removeSystemParameter(name).
func (e *Essentials) RemoveSystemParameter(sys *system.System, name string) {
	sys.SystemParameters().Remove(name)
}

// Initialize prepares sys for a run from startT to stopT, pre-allocating
// nLogSamples worth of log storage, spec.md §6's initialize(startT,
// stopT, nLogSamples) -> bool. A false return (with the failing error)
// leaves sys in "not initialized" state; the caller must not call
// Simulate.
func (e *Essentials) Initialize(sys *system.System, startT, stopT float64, nLogSamples int) (bool, error) {
	sys.PrepareRun(startT, stopT, nLogSamples)
	if err := sys.Initialize(); err != nil {
		return false, err
	}
	return true, nil
}

// Simulate drives sys single-threaded up to stopT, spec.md §6's
// simulate(stopT).
func (e *Essentials) Simulate(sys *system.System, stopT float64) error {
	return sys.Simulate(stopT)
}

// SimulateMultiThreaded drives sys using nThreads goroutines per S/C/Q
// phase, spec.md §6's simulateMultiThreaded(stopT, nThreads).
func (e *Essentials) SimulateMultiThreaded(sys *system.System, stopT float64, nThreads int) error {
	return sys.SimulateMultiThreaded(stopT, nThreads)
}

// Finalize runs sys's Finalize hooks, spec.md §6's finalize().
func (e *Essentials) Finalize(sys *system.System) error {
	return sys.Finalize()
}

// StopSimulation requests cooperative cancellation of sys's in-flight
// run, spec.md §6's stopSimulation().
func (e *Essentials) StopSimulation(sys *system.System) {
	sys.StopSimulation()
}

// PopMessage blocks until a diagnostic message is available or ctx is
// done, spec.md §6's blocking popMessage() -> (severity, text, tag).
func (e *Essentials) PopMessage(ctx context.Context) (messagebus.Message, bool) {
	return e.bus.Pop(ctx)
}

// NumMessages reports how many diagnostic messages are currently queued,
// spec.md §6's numMessages().
func (e *Essentials) NumMessages() int {
	return e.bus.Len()
}

// LoadExternalComponentLib opens the shared object at path and lets it
// self-register node and component types into this Essentials' factories,
// spec.md §6's loadExternalComponentLib(path) -> bool.
func (e *Essentials) LoadExternalComponentLib(path string) error {
	return pluginloader.Load(path, e.nodeRegistry, e.componentRegistry)
}
