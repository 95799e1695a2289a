package port

import (
	"fmt"

	"github.com/hopsan/hopsancore/node"
)

// MultiPort is a container port that dynamically owns one sub-port per
// external connection (spec.md §4.3, §9 "fan-in/fan-out"). The MultiPort
// itself is never bound to a node; each Connect on it allocates a fresh
// ordinary Power or Read sub-port, which is what actually ends up
// attached to a backing node.
type MultiPort struct {
	*Port
	subPorts []*Port
}

// NewMultiPort constructs a MultiPort of the given role, which must be
// PowerMulti or ReadMulti.
func NewMultiPort(owner ComponentRef, name string, role Role, typeDesc *node.TypeDescriptor, required bool) *MultiPort {
	return &MultiPort{Port: NewPort(owner, name, role, typeDesc, required)}
}

// subPortRole returns the ordinary role a newly-allocated sub-port
// should carry: Power for a PowerMulti parent, Read for a ReadMulti one.
func (mp *MultiPort) subPortRole() Role {
	if mp.role == PowerMulti {
		return Power
	}
	return Read
}

// AllocateSubPort creates and registers a new sub-port of the correct
// node type and role, routing a forthcoming connection through it
// (spec.md §4.3 step 2). Call DeallocateSubPort if a later connect step
// fails.
func (mp *MultiPort) AllocateSubPort() *Port {
	name := fmt.Sprintf("%s_%d", mp.name, len(mp.subPorts))
	sp := NewPort(mp.owner, name, mp.subPortRole(), mp.typeDesc, false)
	mp.subPorts = append(mp.subPorts, sp)
	return sp
}

// DeallocateSubPort removes sp from the sub-port list; it exists only
// while a particular external port is connected to the multi-port.
func (mp *MultiPort) DeallocateSubPort(sp *Port) {
	for i, existing := range mp.subPorts {
		if existing == sp {
			mp.subPorts = append(mp.subPorts[:i], mp.subPorts[i+1:]...)
			return
		}
	}
}

// SubPorts returns the currently-allocated sub-ports.
func (mp *MultiPort) SubPorts() []*Port { return mp.subPorts }
