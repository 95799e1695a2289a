package node

import "testing"

func TestLogSchedule(t *testing.T) {
	n := New(Hydraulic)
	n.AllocateLog(0, 0.05, 0.01)
	if got, want := len(n.TimeSamples()), 5; got != want {
		t.Fatalf("len(TimeSamples()) = %d, want %d", got, want)
	}

	times := []float64{0, 0.01, 0.02, 0.03, 0.04, 0.05}
	for _, tm := range times {
		n.Log(tm)
	}
	if got, want := n.LogCtr(), 5; got != want {
		t.Fatalf("LogCtr() = %d, want %d (last sample beyond pre-allocated slots is dropped)", got, want)
	}
	for i, want := range []float64{0, 0.01, 0.02, 0.03, 0.04} {
		if got := n.TimeSamples()[i]; got != want {
			t.Fatalf("TimeSamples()[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestApplyStartValueProjections(t *testing.T) {
	n := New(Hydraulic)
	n.SetValue(HydraulicPressure, 1e5)
	Hydraulic.ApplyStartValueProjections(n)
	if got := n.Value(HydraulicWaveVariable); got != 1e5 {
		t.Fatalf("WaveVariable = %v, want %v (seeded from Pressure)", got, 1e5)
	}
}

func TestDummyNodeRejectsWrites(t *testing.T) {
	n := NewDummy(Signal)
	n.SetValue(SignalValue, 42)
	if got := n.Value(SignalValue); got != 0 {
		t.Fatalf("dummy node Value() = %v, want 0 (writes must be discarded)", got)
	}
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	r := NewRegistry()
	if status := r.Register(Signal); status != RegisteredOK {
		t.Fatalf("first Register() = %v, want RegisteredOK", status)
	}
	if status := r.Register(Signal); status != AlreadyRegistered {
		t.Fatalf("second Register() = %v, want AlreadyRegistered", status)
	}
	if _, ok := r.Lookup("Signal"); !ok {
		t.Fatalf("Lookup(%q) not found after registration", "Signal")
	}
}

func TestConnectedPortsBookkeeping(t *testing.T) {
	n := New(Signal)
	p := &fakePort{id: "p1"}
	n.AddPort(p)
	if !n.HasPort(p) {
		t.Fatalf("HasPort() = false after AddPort()")
	}
	if got, want := n.PortCount(), 1; got != want {
		t.Fatalf("PortCount() = %d, want %d", got, want)
	}
	n.RemovePort(p)
	if n.HasPort(p) {
		t.Fatalf("HasPort() = true after RemovePort()")
	}
}

type fakePort struct{ id string }

func (f *fakePort) PortID() string { return f.id }
