package hopsancore

import (
	"testing"

	"github.com/hopsan/hopsancore/component/common"
)

func TestEssentialsRegistersBuiltinComponentsAndNodes(t *testing.T) {
	e := New()
	if _, err := e.CreateComponent(common.GainTypeName); err != nil {
		t.Fatalf("CreateComponent(Gain) error = %v", err)
	}
	if _, err := e.CreateComponent("NoSuchType"); err == nil {
		t.Fatalf("CreateComponent(unknown) expected error")
	}
}

func TestEssentialsSimulateEndToEnd(t *testing.T) {
	e := New()
	s := e.CreateComponentSystem()
	s.SetTimestep(0.01)

	src, _ := e.CreateComponent(common.ConstantTypeName)
	src.(*common.Constant).Value = 3
	s.AddComponent("Source", src)

	sink, _ := e.CreateComponent(common.SinkTypeName)
	s.AddComponent("Sink", sink)

	if ok, err := e.Connect(s, "Source", "out", "Sink", "in"); err != nil || !ok {
		t.Fatalf("Connect() = %v, %v", ok, err)
	}

	ok, err := e.Initialize(s, 0, 0.02, 2)
	if err != nil || !ok {
		t.Fatalf("Initialize() = %v, %v", ok, err)
	}
	if err := e.Simulate(s, 0.02); err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	got := sink.(*common.Sink).LastValue()
	if got != 3 {
		t.Fatalf("LastValue() = %v, want 3", got)
	}

	if n := e.NumMessages(); n != 0 {
		t.Fatalf("NumMessages() = %d, want 0 on a clean run", n)
	}
}

func TestEssentialsConnectRejectsUnknownComponent(t *testing.T) {
	e := New()
	s := e.CreateComponentSystem()
	if ok, err := e.Connect(s, "Ghost", "out", "Ghost2", "in"); err == nil || ok {
		t.Fatalf("Connect() with unknown components should fail, got ok=%v err=%v", ok, err)
	}
}

func TestEssentialsIntrospectionReadsLoggedValues(t *testing.T) {
	e := New()
	s := e.CreateComponentSystem()
	s.SetTimestep(0.01)

	src, _ := e.CreateComponent(common.ConstantTypeName)
	src.(*common.Constant).Value = 9
	s.AddComponent("Source", src)

	sink, _ := e.CreateComponent(common.SinkTypeName)
	s.AddComponent("Sink", sink)

	if _, err := e.Connect(s, "Source", "out", "Sink", "in"); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if ok, err := e.Initialize(s, 0, 0.02, 2); err != nil || !ok {
		t.Fatalf("Initialize() = %v, %v", ok, err)
	}
	if err := e.Simulate(s, 0.02); err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	v, err := e.GetLastValue(s, "Sink.in", 0)
	if err != nil {
		t.Fatalf("GetLastValue() error = %v", err)
	}
	if v != 9 {
		t.Fatalf("GetLastValue() = %v, want 9", v)
	}

	times, err := e.GetTimeVector(s, "Sink.in")
	if err != nil {
		t.Fatalf("GetTimeVector() error = %v", err)
	}
	if len(times) == 0 {
		t.Fatalf("GetTimeVector() returned no samples")
	}

	data, err := e.GetLogData(s, "Sink.in", 0)
	if err != nil {
		t.Fatalf("GetLogData() error = %v", err)
	}
	if len(data) != len(times) {
		t.Fatalf("GetLogData() length = %d, want %d", len(data), len(times))
	}
}
