// Package port implements a component's typed view onto a node: the
// role-tagged handle spec.md §3/§4.3 calls Port, plus MultiPort, the
// dynamic fan-in/fan-out container port.
package port

// Role tags what a Port is allowed to do with its backing node and how
// the connection legality check (§4.3) counts it.
type Role int

const (
	// Power ports carry both Flow/Intensity and TLM channels; at most two
	// may share a node, and never two belonging to the same CQS side.
	Power Role = iota
	// Read ports only ever read their node; a node with only Read ports
	// has no source of truth and is illegal.
	Read
	// Write ports write their node; at most one may be attached to a
	// given node, and never alongside a Power port.
	Write
	// System ports live on a container component and forward to an
	// interior node; they adopt whichever node type connects first.
	System
	// PowerMulti is a multi-port variant of Power.
	PowerMulti
	// ReadMulti is a multi-port variant of Read.
	ReadMulti
)

func (r Role) String() string {
	switch r {
	case Power:
		return "Power"
	case Read:
		return "Read"
	case Write:
		return "Write"
	case System:
		return "System"
	case PowerMulti:
		return "PowerMulti"
	case ReadMulti:
		return "ReadMulti"
	default:
		return "Unknown"
	}
}

// IsMulti reports whether the role is one of the multi-port variants.
func (r Role) IsMulti() bool {
	return r == PowerMulti || r == ReadMulti
}
