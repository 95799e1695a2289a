package port

import "github.com/hopsan/hopsancore/node"

// ComponentRef is the minimal back-reference a Port needs to its owning
// component. port never imports component — component imports port — so
// the dependency only runs one way, the same shape node.PortRef uses.
type ComponentRef interface {
	Name() string
}

// Port is a component's typed view onto a node: attributes only, no
// inheritance hierarchy, matching spec.md §9's trait-shape guidance.
type Port struct {
	owner ComponentRef
	name  string
	role  Role

	// typeDesc is nil only for a System port whose type has not yet been
	// adopted from whichever side connects first.
	typeDesc *node.TypeDescriptor

	// n is never nil once typeDesc is known: an unconnected port is
	// backed by a dummy node of its own type so Value/SetValue never
	// need a nil check.
	n *node.Node

	startValueNode *node.Node
	required       bool
}

// NewPort constructs a Port owned by owner. typeDesc may be nil only for
// a not-yet-typed System port.
func NewPort(owner ComponentRef, name string, role Role, typeDesc *node.TypeDescriptor, required bool) *Port {
	p := &Port{owner: owner, name: name, role: role, typeDesc: typeDesc, required: required}
	if typeDesc != nil {
		p.n = node.NewDummy(typeDesc)
	}
	return p
}

// PortID identifies this port for node.PortRef bookkeeping. It is a
// debugging aid only; Node tracks membership by interface (pointer)
// identity, not by this string.
func (p *Port) PortID() string {
	owner := "?"
	if p.owner != nil {
		owner = p.owner.Name()
	}
	return owner + "." + p.name
}

func (p *Port) Name() string      { return p.name }
func (p *Port) Role() Role        { return p.role }
func (p *Port) Required() bool    { return p.required }
func (p *Port) Owner() ComponentRef { return p.owner }

// NodeTypeName returns the port's node type name, or "" if a System
// port's type has not been adopted yet.
func (p *Port) NodeTypeName() string {
	if p.typeDesc == nil {
		return ""
	}
	return p.typeDesc.Name()
}

// TypeDescriptor returns the port's node type descriptor, or nil for an
// untyped System port.
func (p *Port) TypeDescriptor() *node.TypeDescriptor { return p.typeDesc }

// Node returns the port's current backing node (never nil once typed).
func (p *Port) Node() *node.Node { return p.n }

// IsConnected reports whether the port is attached to a real (non-dummy)
// node.
func (p *Port) IsConnected() bool {
	return p.n != nil && !p.n.IsDummy
}

// Value reads slot from the backing node, or 0 if the port is untyped.
func (p *Port) Value(slot int) float64 {
	if p.n == nil {
		return 0
	}
	return p.n.Value(slot)
}

// SetValue writes slot on the backing node. A no-op on an untyped port
// or a disconnected (dummy-backed) Read/System port's attempted write is
// simply discarded by the dummy node itself.
func (p *Port) SetValue(slot int, v float64) {
	if p.n == nil {
		return
	}
	p.n.SetValue(slot, v)
}

// SetStartValueNode attaches a detached node used solely to seed the
// backing node's initial channel values at loadStartValues.
func (p *Port) SetStartValueNode(n *node.Node) { p.startValueNode = n }

// StartValueNode returns the port's start-value node, or nil.
func (p *Port) StartValueNode() *node.Node { return p.startValueNode }

// SetNode rebinds the port to n, adopting n's type if the port was
// previously untyped (the System-port "adopt the peer's type"
// deterministic rule, spec.md §9). Only the connection package calls this.
func (p *Port) SetNode(n *node.Node) {
	if p.typeDesc == nil && n != nil {
		p.typeDesc = n.Type()
	}
	p.n = n
}

// ResetToDummy rebinds the port to a fresh dummy node of its own type
// after its node was destroyed by disconnect: reads return defaults,
// writes are discarded.
func (p *Port) ResetToDummy() {
	if p.typeDesc != nil {
		p.n = node.NewDummy(p.typeDesc)
	} else {
		p.n = nil
	}
}

// ClearAdoptedType clears a System port's adopted node type once the
// connection that gave it that type is gone, per spec.md §4.5 ("on
// disconnect that leaves them empty, the adopted type is cleared").
func (p *Port) ClearAdoptedType() {
	p.typeDesc = nil
	p.n = nil
}
