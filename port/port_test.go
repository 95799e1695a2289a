package port

import (
	"testing"

	"github.com/hopsan/hopsancore/node"
)

type fakeComponent struct{ name string }

func (f *fakeComponent) Name() string { return f.name }

func TestPortStartsDisconnectedWithDummyNode(t *testing.T) {
	owner := &fakeComponent{name: "Src"}
	p := NewPort(owner, "out", Power, node.Hydraulic, true)
	if p.IsConnected() {
		t.Fatalf("IsConnected() = true for a freshly-constructed port")
	}
	p.SetValue(node.HydraulicPressure, 99)
	if got := p.Value(node.HydraulicPressure); got != 0 {
		t.Fatalf("Value() = %v after write to an unconnected port, want 0 (dummy discards writes)", got)
	}
}

func TestSetNodeAdoptsTypeForSystemPort(t *testing.T) {
	owner := &fakeComponent{name: "Sys"}
	sp := NewPort(owner, "P1", System, nil, false)
	if sp.NodeTypeName() != "" {
		t.Fatalf("NodeTypeName() = %q before connection, want empty", sp.NodeTypeName())
	}
	n := node.New(node.Hydraulic)
	sp.SetNode(n)
	if got, want := sp.NodeTypeName(), "Hydraulic"; got != want {
		t.Fatalf("NodeTypeName() = %q after adopting, want %q", got, want)
	}
	sp.ClearAdoptedType()
	if sp.NodeTypeName() != "" {
		t.Fatalf("NodeTypeName() = %q after ClearAdoptedType(), want empty", sp.NodeTypeName())
	}
}

func TestMultiPortAllocatesAndDeallocatesSubPorts(t *testing.T) {
	owner := &fakeComponent{name: "Manifold"}
	mp := NewMultiPort(owner, "P1", PowerMulti, node.Hydraulic, false)
	sp1 := mp.AllocateSubPort()
	sp2 := mp.AllocateSubPort()
	if got, want := len(mp.SubPorts()), 2; got != want {
		t.Fatalf("len(SubPorts()) = %d, want %d", got, want)
	}
	if sp1.Role() != Power {
		t.Fatalf("sub-port role = %v, want Power", sp1.Role())
	}
	mp.DeallocateSubPort(sp1)
	if got, want := len(mp.SubPorts()), 1; got != want {
		t.Fatalf("len(SubPorts()) after dealloc = %d, want %d", got, want)
	}
	if mp.SubPorts()[0] != sp2 {
		t.Fatalf("remaining sub-port is not sp2")
	}
}
