package common

import (
	"github.com/hopsan/hopsancore/component"
	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/port"
	"github.com/hopsan/hopsancore/types"
)

// SinkTypeName is the registry key for Sink.
const SinkTypeName = "SignalSink"

// Sink is an S-type component with a single required read port and no
// outputs; it exists so a model can terminate a signal chain (the role
// the teacher's EndNode plays for a rule chain) and so tests can read
// back the last value a run produced without reaching into the node
// directly.
type Sink struct {
	*component.Base

	in        *port.Port
	finalized bool
}

// NewSink constructs an unconfigured Sink.
func NewSink() component.Component {
	return &Sink{Base: component.NewBase(SinkTypeName, types.SComponent)}
}

// Configure registers the in port.
func (s *Sink) Configure(cfg types.Config) error {
	s.in = s.AddPort("in", port.Read, node.Signal, true)
	return nil
}

// SimulateOneTimestep does nothing: the value is always readable from
// the node's log or via LastValue.
func (s *Sink) SimulateOneTimestep(t, ts float64) error {
	return nil
}

// LastValue returns the port's current reading.
func (s *Sink) LastValue() float64 {
	return s.in.Value(node.SignalValue)
}

// Finalize overrides Base's no-op default only to record that it ran, so
// tests can assert a canceled run still finalizes every component.
func (s *Sink) Finalize() error {
	s.finalized = true
	return nil
}

// Finalized reports whether Finalize has run.
func (s *Sink) Finalized() bool { return s.finalized }
