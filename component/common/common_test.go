package common

import (
	"testing"

	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/types"
)

func TestGainMultipliesInput(t *testing.T) {
	gain := NewGain().(*Gain)
	if err := gain.Configure(types.NewConfig()); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	gain.K = 2.5

	in, _ := gain.Port("in")
	src := node.New(node.Signal)
	in.SetNode(src)
	src.SetValue(node.SignalValue, 4)

	out, _ := gain.Port("out")
	out.SetNode(node.New(node.Signal))

	if err := gain.SimulateOneTimestep(0, 0.01); err != nil {
		t.Fatalf("SimulateOneTimestep() error = %v", err)
	}

	if got := out.Value(node.SignalValue); got != 10 {
		t.Fatalf("out value = %v, want 10", got)
	}
}

func TestConstantWritesValue(t *testing.T) {
	c := NewConstant().(*Constant)
	if err := c.Configure(types.NewConfig()); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	c.Value = 42

	out, _ := c.Port("out")
	n := node.New(node.Signal)
	out.SetNode(n)

	if err := c.SimulateOneTimestep(0, 0.01); err != nil {
		t.Fatalf("SimulateOneTimestep() error = %v", err)
	}
	if got := n.Value(node.SignalValue); got != 42 {
		t.Fatalf("node value = %v, want 42", got)
	}
}

func TestSinkReadsLastValue(t *testing.T) {
	s := NewSink().(*Sink)
	if err := s.Configure(types.NewConfig()); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	in, _ := s.Port("in")
	n := node.New(node.Signal)
	in.SetNode(n)
	n.SetValue(node.SignalValue, 7)

	if got := s.LastValue(); got != 7 {
		t.Fatalf("LastValue() = %v, want 7", got)
	}
}
