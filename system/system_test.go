package system

import (
	"errors"
	"testing"

	"github.com/hopsan/hopsancore/component/common"
	"github.com/hopsan/hopsancore/messagebus"
	"github.com/hopsan/hopsancore/types"
)

func newTestSystem(t *testing.T) *System {
	t.Helper()
	bus := messagebus.New(64, "test")
	s := New(types.NewConfig(), bus)
	s.SetTimestep(0.01)
	return s
}

func addConstant(t *testing.T, s *System, want string, value float64) *common.Constant {
	t.Helper()
	c := common.NewConstant().(*common.Constant)
	if err := c.Configure(types.NewConfig()); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	c.Value = value
	s.AddComponent(want, c)
	return c
}

func addSink(t *testing.T, s *System, want string) *common.Sink {
	t.Helper()
	c := common.NewSink().(*common.Sink)
	if err := c.Configure(types.NewConfig()); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	s.AddComponent(want, c)
	return c
}

func TestAddComponentAssignsUniqueNames(t *testing.T) {
	s := newTestSystem(t)
	c1 := addConstant(t, s, "Gain", 1)
	c2 := addConstant(t, s, "Gain", 2)
	if c1.Name() != "Gain" {
		t.Fatalf("first component name = %q, want %q", c1.Name(), "Gain")
	}
	if c2.Name() != "Gain_1" {
		t.Fatalf("second component name = %q, want %q", c2.Name(), "Gain_1")
	}
}

func TestSystemDerivesSCQSTypeFromChildren(t *testing.T) {
	s := newTestSystem(t)
	addConstant(t, s, "C1", 1)
	if got := s.CQSType(); got != types.SComponent {
		t.Fatalf("CQSType() = %v, want S", got)
	}
}

func TestSimulatePropagatesConstantToSink(t *testing.T) {
	s := newTestSystem(t)
	src := addConstant(t, s, "Source", 5)
	sink := addSink(t, s, "Sink")

	s.PrepareRun(0, 0.03, 3)

	if _, err := s.Connect("Source", "out", "Sink", "in"); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := s.Simulate(0.03); err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if got := sink.LastValue(); got != 5 {
		t.Fatalf("sink LastValue() = %v, want 5", got)
	}
	_ = src
}

func TestInitializeFailsOnDanglingSystemParameterBinding(t *testing.T) {
	s := newTestSystem(t)
	gain := common.NewGain().(*common.Gain)
	if err := gain.Configure(types.NewConfig()); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if !gain.Parameters().Set("K", "missingSystemParam") {
		t.Fatalf("Set() rejected a binding-style value")
	}
	s.AddComponent("Gain", gain)
	addConstant(t, s, "Source", 1)
	addSink(t, s, "Sink")
	if _, err := s.Connect("Source", "out", "Gain", "in"); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if _, err := s.Connect("Gain", "out", "Sink", "in"); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	s.PrepareRun(0, 0.02, 2)
	err := s.Initialize()
	if err == nil {
		t.Fatalf("Initialize() with a dangling system-parameter binding succeeded, want error")
	}
	var perr *types.ParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("Initialize() error = %v, want a *types.ParameterError", err)
	}
}

func TestStopSimulationFinalizesAndReportsCanceled(t *testing.T) {
	s := newTestSystem(t)
	src := addConstant(t, s, "Source", 1)
	sink := addSink(t, s, "Sink")

	s.PrepareRun(0, 1, 100)
	if _, err := s.Connect("Source", "out", "Sink", "in"); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	s.StopSimulation()
	if err := s.Simulate(1); err != types.ErrCanceled {
		t.Fatalf("Simulate() after StopSimulation() error = %v, want types.ErrCanceled", err)
	}

	if !src.Finalized() || !sink.Finalized() {
		t.Fatalf("Finalize() was not called on every component after cancellation")
	}

	sawCanceled := false
	for {
		msg, ok := s.Bus().TryPop()
		if !ok {
			break
		}
		if msg.Severity == messagebus.Info && msg.Tag == "simulate" {
			sawCanceled = true
		}
	}
	if !sawCanceled {
		t.Fatalf("expected an Info \"simulate\" message reporting cancellation")
	}
}
