package common

import (
	"github.com/hopsan/hopsancore/component"
	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/parameter"
	"github.com/hopsan/hopsancore/port"
	"github.com/hopsan/hopsancore/types"
)

// GainTypeName is the registry key for Gain.
const GainTypeName = "SignalGain"

// Gain is an S-type component: out = K * in, evaluated once per timestep.
type Gain struct {
	*component.Base

	K float64

	in  *port.Port
	out *port.Port
}

// NewGain constructs an unconfigured Gain.
func NewGain() component.Component {
	return &Gain{Base: component.NewBase(GainTypeName, types.SComponent)}
}

// Configure registers the in/out ports and the K parameter.
func (g *Gain) Configure(cfg types.Config) error {
	g.in = g.AddPort("in", port.Read, node.Signal, true)
	g.out = g.AddPort("out", port.Write, node.Signal, true)
	g.K = 1
	g.AddParameter(parameter.New("K", &g.K, parameter.Real, "gain", "-"))
	return nil
}

// SimulateOneTimestep reads in, multiplies by K, and writes out.
func (g *Gain) SimulateOneTimestep(t, ts float64) error {
	g.out.SetValue(node.SignalValue, g.K*g.in.Value(node.SignalValue))
	return nil
}
