package node

// PortRef is the minimal back-reference a Node needs to keep its
// connectedPorts invariant (spec.md §3): something identifiable that the
// port package's *port.Port implements. node never imports port — port
// imports node — so the dependency only runs one way.
type PortRef interface {
	PortID() string
}

// Node is the shared storage cell backing a connected set of ports: a
// fixed-length vector of real channels plus an optional time-series log.
// Exactly one Node instance backs each electrically-connected set of
// ports; the connection package is the only code that mutates
// connectedPorts or creates/destroys Nodes.
type Node struct {
	typ            *TypeDescriptor
	values         []float64
	connectedPorts []PortRef

	// IsDummy marks the per-port "not-connected" fallback node: reads
	// return the type's zero vector, writes are silently discarded.
	IsDummy bool

	loggingEnabled bool
	logDt          float64
	lastLogTime    float64
	timeSamples    []float64
	valueSamples   [][]float64
	logCtr         int
}

// New allocates a Node of the given type, values zero-initialized.
func New(typ *TypeDescriptor) *Node {
	return &Node{typ: typ, values: make([]float64, typ.ChannelCount())}
}

// NewDummy allocates the not-connected fallback node for a port of typ:
// reads return zero, writes are discarded.
func NewDummy(typ *TypeDescriptor) *Node {
	n := New(typ)
	n.IsDummy = true
	return n
}

func (n *Node) Type() *TypeDescriptor { return n.typ }

// Value returns the current value of slot. No bounds checking: slot
// indices are meant to be compile-time constants from the node type's
// channel table.
func (n *Node) Value(slot int) float64 { return n.values[slot] }

// SetValue sets slot to v. A no-op on a dummy node.
func (n *Node) SetValue(slot int, v float64) {
	if n.IsDummy {
		return
	}
	n.values[slot] = v
}

// ConnectedPorts returns the ports currently backed by this node. Owned
// by the connection package; components must not mutate the returned
// slice.
func (n *Node) ConnectedPorts() []PortRef { return n.connectedPorts }

// AddPort appends p to connectedPorts. Only the connection package calls
// this.
func (n *Node) AddPort(p PortRef) {
	n.connectedPorts = append(n.connectedPorts, p)
}

// RemovePort removes p from connectedPorts if present.
func (n *Node) RemovePort(p PortRef) {
	for i, existing := range n.connectedPorts {
		if existing == p {
			n.connectedPorts = append(n.connectedPorts[:i], n.connectedPorts[i+1:]...)
			return
		}
	}
}

// HasPort reports whether p is currently counted among connectedPorts.
func (n *Node) HasPort(p PortRef) bool {
	for _, existing := range n.connectedPorts {
		if existing == p {
			return true
		}
	}
	return false
}

// PortCount returns len(ConnectedPorts()).
func (n *Node) PortCount() int { return len(n.connectedPorts) }
