package connection

import (
	"testing"

	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/port"
	"github.com/hopsan/hopsancore/types"
)

type fakeComponent struct {
	name string
	cqs  types.CQSType
}

func (c *fakeComponent) Name() string            { return c.name }
func (c *fakeComponent) CQSType() types.CQSType { return c.cqs }

func TestConnectCreatesNodeOnFirstUse(t *testing.T) {
	a := port.NewPort(&fakeComponent{name: "A"}, "p1", port.Write, node.Signal, true)
	b := port.NewPort(&fakeComponent{name: "B"}, "p2", port.Read, node.Signal, true)

	ok, res, reason, err := Connect(a, b)
	if err != nil || !ok {
		t.Fatalf("Connect() = (%v, %q, %v), want success", ok, reason, err)
	}
	if res.CreatedNode == nil {
		t.Fatalf("Result.CreatedNode is nil on a fresh connect")
	}
	if !a.IsConnected() || !b.IsConnected() || a.Node() != b.Node() {
		t.Fatalf("both ports should share one node after Connect")
	}
}

func TestConnectIsIdempotent(t *testing.T) {
	a := port.NewPort(&fakeComponent{name: "A"}, "p1", port.Write, node.Signal, true)
	b := port.NewPort(&fakeComponent{name: "B"}, "p2", port.Read, node.Signal, true)
	Connect(a, b)

	ok, res, _, err := Connect(a, b)
	if err != nil || !ok {
		t.Fatalf("redundant Connect() = (%v, %v), want (true, nil)", ok, err)
	}
	if res.CreatedNode != nil || res.DestroyedNode != nil {
		t.Fatalf("redundant Connect() mutated state: %+v", res)
	}
}

func TestConnectRejectsTypeMismatch(t *testing.T) {
	a := port.NewPort(&fakeComponent{name: "A"}, "p1", port.Write, node.Signal, true)
	b := port.NewPort(&fakeComponent{name: "B"}, "p2", port.Read, node.Hydraulic, true)

	ok, _, reason, err := Connect(a, b)
	if err != nil || ok || reason == "" {
		t.Fatalf("Connect() across mismatched node types = (%v, %q, %v), want (false, non-empty, nil)", ok, reason, err)
	}
}

func TestConnectRejectsTwoCPowerPorts(t *testing.T) {
	a := port.NewPort(&fakeComponent{name: "A", cqs: types.CComponent}, "p1", port.Power, node.Hydraulic, true)
	b := port.NewPort(&fakeComponent{name: "B", cqs: types.CComponent}, "p2", port.Power, node.Hydraulic, true)

	ok, _, reason, err := Connect(a, b)
	if err != nil || ok || reason == "" {
		t.Fatalf("Connect() between two C-type power ports = (%v, %q, %v), want rejection", ok, reason, err)
	}
	if a.IsConnected() || b.IsConnected() {
		t.Fatalf("rejected connect must leave both ports untouched")
	}
}

func TestConnectRejectsReadOnlyNode(t *testing.T) {
	a := port.NewPort(&fakeComponent{name: "A"}, "p1", port.Read, node.Signal, true)
	b := port.NewPort(&fakeComponent{name: "B"}, "p2", port.Read, node.Signal, true)

	ok, _, reason, err := Connect(a, b)
	if err != nil || ok || reason == "" {
		t.Fatalf("Connect() of two read ports = (%v, %q, %v), want rejection", ok, reason, err)
	}
}

func TestDisconnectDestroysNodeAndFallsBackToDummy(t *testing.T) {
	a := port.NewPort(&fakeComponent{name: "A"}, "p1", port.Write, node.Signal, true)
	b := port.NewPort(&fakeComponent{name: "B"}, "p2", port.Read, node.Signal, true)
	Connect(a, b)

	res, err := Disconnect(a)
	if err != nil {
		t.Fatalf("Disconnect() error = %v", err)
	}
	if res.DestroyedNode == nil {
		t.Fatalf("Disconnect() of the only write port should destroy the node")
	}
	if a.IsConnected() || b.IsConnected() {
		t.Fatalf("both ports should be back on dummy nodes after the shared node is destroyed")
	}
	b.SetValue(node.SignalValue, 99)
	if got := b.Value(node.SignalValue); got != 0 {
		t.Fatalf("dummy-backed port accepted a write: Value() = %v, want 0", got)
	}
}

func TestDisconnectClearsAdoptedTypeOnSystemPort(t *testing.T) {
	sys := port.NewPort(&fakeComponent{name: "Sys"}, "p1", port.System, nil, true)
	w := port.NewPort(&fakeComponent{name: "W"}, "p2", port.Write, node.Signal, true)
	Connect(sys, w)

	if sys.NodeTypeName() != node.Signal.Name() {
		t.Fatalf("system port NodeTypeName() = %q, want %q", sys.NodeTypeName(), node.Signal.Name())
	}

	if _, err := Disconnect(sys); err != nil {
		t.Fatalf("Disconnect() error = %v", err)
	}
	if sys.NodeTypeName() != "" {
		t.Fatalf("system port NodeTypeName() = %q after disconnect, want \"\" (adopted type cleared)", sys.NodeTypeName())
	}

	h := port.NewPort(&fakeComponent{name: "H"}, "p3", port.Write, node.Hydraulic, true)
	ok, _, reason, err := Connect(sys, h)
	if err != nil || !ok {
		t.Fatalf("Connect() of a cleared system port to a different node type = (%v, %q, %v), want success", ok, reason, err)
	}
	if sys.NodeTypeName() != node.Hydraulic.Name() {
		t.Fatalf("system port adopted type = %q, want %q", sys.NodeTypeName(), node.Hydraulic.Name())
	}
}

func TestConnectMultiPortAllocatesSubPort(t *testing.T) {
	owner := &fakeComponent{name: "M"}
	mp := port.NewMultiPort(owner, "ins", port.ReadMulti, node.Signal, false)
	src := port.NewPort(&fakeComponent{name: "S"}, "out", port.Write, node.Signal, true)

	ok, _, reason, err := Connect(mp, src)
	if err != nil || !ok {
		t.Fatalf("Connect() with a multi-port endpoint = (%v, %q, %v), want success", ok, reason, err)
	}
	if len(mp.SubPorts()) != 1 {
		t.Fatalf("SubPorts() len = %d, want 1", len(mp.SubPorts()))
	}
	if !mp.SubPorts()[0].IsConnected() {
		t.Fatalf("allocated sub-port is not connected after Connect")
	}
}
