// Package common ships a handful of minimal signal-type components used
// by this module's own tests and examples to exercise System and the
// scheduler end to end — not a component physics library (spec.md §1
// leaves that to callers), just enough signal plumbing to drive a
// timestep loop. Grounded on the teacher's components/common package,
// which ships StartNode/EndNode the same way: small, registry-registered
// building blocks rather than the engine's own machinery.
package common

import (
	"github.com/hopsan/hopsancore/component"
	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/parameter"
	"github.com/hopsan/hopsancore/port"
	"github.com/hopsan/hopsancore/types"
)

// ConstantTypeName is the registry key for Constant.
const ConstantTypeName = "SignalConstant"

// Constant is an S-type component with a single write port that outputs
// a fixed parameter value every timestep.
type Constant struct {
	*component.Base

	Value float64

	out       *port.Port
	finalized bool
}

// NewConstant constructs an unconfigured Constant, ready for a
// component.Registry constructor slot.
func NewConstant() component.Component {
	c := &Constant{Base: component.NewBase(ConstantTypeName, types.SComponent)}
	return c
}

// Configure registers the out port and the Value parameter.
func (c *Constant) Configure(cfg types.Config) error {
	c.out = c.AddPort("out", port.Write, node.Signal, true)
	c.Value = 0
	c.AddParameter(parameter.New("value", &c.Value, parameter.Real, "constant output value", "-"))
	return nil
}

// SimulateOneTimestep writes Value to the output port every step.
func (c *Constant) SimulateOneTimestep(t, ts float64) error {
	c.out.SetValue(node.SignalValue, c.Value)
	return nil
}

// Finalize overrides Base's no-op default only to record that it ran, so
// tests can assert a canceled run still finalizes every component.
func (c *Constant) Finalize() error {
	c.finalized = true
	return nil
}

// Finalized reports whether Finalize has run.
func (c *Constant) Finalized() bool { return c.finalized }
