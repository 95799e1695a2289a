package component

import (
	"testing"

	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/port"
	"github.com/hopsan/hopsancore/types"
)

func TestRequiredPortsConnected(t *testing.T) {
	b := NewBase("Test", types.SComponent)
	b.AddPort("in", port.Read, node.Signal, true)

	if _, ok := b.RequiredPortsConnected(); ok {
		t.Fatalf("RequiredPortsConnected() = true with an unconnected required port")
	}

	p, _ := b.Port("in")
	p.SetNode(node.New(node.Signal))

	if _, ok := b.RequiredPortsConnected(); !ok {
		t.Fatalf("RequiredPortsConnected() = false once the required port is connected")
	}
}

func TestAddMultiPortRegistersBothMaps(t *testing.T) {
	b := NewBase("Test", types.SComponent)
	mp := b.AddMultiPort("ins", port.ReadMulti, node.Signal, false)

	if _, ok := b.Port("ins"); !ok {
		t.Fatalf("Port(%q) not found after AddMultiPort", "ins")
	}
	if got, ok := b.MultiPort("ins"); !ok || got != mp {
		t.Fatalf("MultiPort(%q) = (%v, %v), want (%v, true)", "ins", got, ok, mp)
	}
}
