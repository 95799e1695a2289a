// Package connection implements the connect/disconnect protocol of
// spec.md §4.3: node-type/role legality checking, multi-port sub-port
// allocation, and node creation/merge/destruction. It sits between port
// and system in the dependency graph — it needs to know a port's owning
// component's CQS type to enforce the C/Q legality rules, but it must
// never import system, so that knowledge comes through the minimal
// CQSRef interface below, the same one-way-dependency shape node.PortRef
// and port.ComponentRef use.
package connection

import (
	"fmt"

	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/port"
	"github.com/hopsan/hopsancore/types"
)

// CQSRef is the minimal view connection needs of a port's owning
// component: its CQS type, to enforce "no two C-type power ports on one
// node" / "no two Q-type power ports on one node".
type CQSRef interface {
	CQSType() types.CQSType
}

// Result reports what Connect actually did, so System can keep its own
// interior-node bookkeeping (node creation/destruction) in sync without
// connection needing to know about systems at all.
type Result struct {
	// CreatedNode is the freshly-created node, non-nil only when Connect
	// attached two previously-unconnected ports.
	CreatedNode *node.Node
	// DestroyedNode is a node emptied by a merge, non-nil only when
	// Connect merged two already-connected ports' nodes into one.
	DestroyedNode *node.Node
}

// resolveEndpoint returns the concrete *port.Port to attach for ep,
// allocating a sub-port first if ep is a multi-port, plus a rollback
// closure to call if a later legality check fails.
func resolveEndpoint(ep any) (p *port.Port, rollback func(), err error) {
	switch v := ep.(type) {
	case *port.Port:
		return v, func() {}, nil
	case *port.MultiPort:
		sp := v.AllocateSubPort()
		return sp, func() { v.DeallocateSubPort(sp) }, nil
	default:
		return nil, nil, fmt.Errorf("connection: unsupported endpoint type %T", ep)
	}
}

// Connect attaches a (port's worth of a) MultiPort to another, enforcing
// spec.md §4.3's legality rules. a and b must each be a *port.Port or a
// *port.MultiPort. On success it returns (true, Result, nil); on a
// legal-but-refused connection it returns (false, Result{}, nil) plus a
// human-readable reason and leaves both sides untouched (no state
// mutation on a rejected connect, and any allocated sub-port is rolled
// back). A non-nil error indicates a caller mistake (bad endpoint type),
// not a legality rejection.
func Connect(a, b any) (ok bool, res Result, reason string, err error) {
	pa, rollbackA, err := resolveEndpoint(a)
	if err != nil {
		return false, Result{}, "", err
	}
	pb, rollbackB, err := resolveEndpoint(b)
	if err != nil {
		rollbackA()
		return false, Result{}, "", err
	}
	rollback := func() { rollbackA(); rollbackB() }

	if pa == pb {
		rollback()
		return false, Result{}, "cannot connect a port to itself", nil
	}

	// Already co-nodal: idempotent no-op success (spec.md §4.3 last
	// paragraph).
	if pa.IsConnected() && pb.IsConnected() && pa.Node() == pb.Node() {
		rollback()
		return true, Result{}, "", nil
	}

	if reason := typeMismatch(pa, pb); reason != "" {
		rollback()
		return false, Result{}, reason, nil
	}

	// A bare, not-yet-typed System port adopts the other side's type:
	// nothing further to do here, SetNode below performs the adoption.

	members := prospectiveMembers(pa, pb)
	if reason := checkRoles(members); reason != "" {
		rollback()
		return false, Result{}, reason, nil
	}

	switch {
	case !pa.IsConnected() && !pb.IsConnected():
		typ := pa.TypeDescriptor()
		if typ == nil {
			typ = pb.TypeDescriptor()
		}
		n := node.New(typ)
		attachAll(n, members)
		return true, Result{CreatedNode: n}, "", nil
	case pa.IsConnected() && !pb.IsConnected():
		attachAll(pa.Node(), []*port.Port{pb})
		return true, Result{}, "", nil
	case !pa.IsConnected() && pb.IsConnected():
		attachAll(pb.Node(), []*port.Port{pa})
		return true, Result{}, "", nil
	default:
		// Both already connected to distinct nodes: merge b's node onto
		// a's, then the emptied node is destroyed.
		keep, drop := pa.Node(), pb.Node()
		movers := append([]node.PortRef{}, drop.ConnectedPorts()...)
		for _, pr := range movers {
			if sp, ok := pr.(*port.Port); ok {
				keep.AddPort(sp)
				drop.RemovePort(sp)
				sp.SetNode(keep)
			}
		}
		return true, Result{DestroyedNode: drop}, "", nil
	}
}

// Disconnect detaches ep (a *port.Port or *port.MultiPort's already-
// allocated sub-port) from its node. If the node still has at least one
// non-read port afterward it survives; otherwise it is destroyed and
// every port that was attached to it (necessarily read-only, by the
// legality invariant) falls back to its own per-port dummy node.
func Disconnect(ep any) (res Result, err error) {
	p, _, err := resolveEndpoint(ep)
	if err != nil {
		return Result{}, err
	}
	if !p.IsConnected() {
		return Result{}, nil
	}
	n := p.Node()
	n.RemovePort(p)
	resetDisconnectedPort(p)

	remaining := n.ConnectedPorts()
	survives := false
	for _, pr := range remaining {
		if sp, ok := pr.(*port.Port); ok && sp.Role() != port.Read {
			survives = true
			break
		}
	}
	if survives {
		return Result{}, nil
	}
	for _, pr := range remaining {
		if sp, ok := pr.(*port.Port); ok {
			n.RemovePort(sp)
			resetDisconnectedPort(sp)
		}
	}
	return Result{DestroyedNode: n}, nil
}

// resetDisconnectedPort rebinds p once its node is gone. A System port
// loses the type it adopted from whatever it was connected to, per
// spec.md §4.3 ("on disconnect that leaves them empty, the adopted type
// is cleared"), so it can adopt a different type on a later connect;
// every other role falls back to its own dummy node.
func resetDisconnectedPort(p *port.Port) {
	if p.Role() == port.System {
		p.ClearAdoptedType()
		return
	}
	p.ResetToDummy()
}

func typeMismatch(pa, pb *port.Port) string {
	ta, tb := pa.TypeDescriptor(), pb.TypeDescriptor()
	if ta == nil || tb == nil {
		return ""
	}
	if ta.Name() != tb.Name() {
		return fmt.Sprintf("node type mismatch: %q vs %q", ta.Name(), tb.Name())
	}
	return ""
}

// prospectiveMembers lists every port that would end up sharing a node
// if this connect succeeds, used to run the role-count legality check
// before anything is mutated.
func prospectiveMembers(pa, pb *port.Port) []*port.Port {
	seen := map[*port.Port]bool{}
	var members []*port.Port
	add := func(p *port.Port) {
		if !seen[p] {
			seen[p] = true
			members = append(members, p)
		}
	}
	if pa.IsConnected() {
		for _, pr := range pa.Node().ConnectedPorts() {
			if sp, ok := pr.(*port.Port); ok {
				add(sp)
			}
		}
	} else {
		add(pa)
	}
	if pb.IsConnected() {
		for _, pr := range pb.Node().ConnectedPorts() {
			if sp, ok := pr.(*port.Port); ok {
				add(sp)
			}
		}
	} else {
		add(pb)
	}
	return members
}

// checkRoles enforces spec.md §4.3 step 4's six role-count rules
// against the full prospective member list of a node.
func checkRoles(members []*port.Port) string {
	var power, write, read int
	var cPower, qPower int
	for _, p := range members {
		switch p.Role() {
		case port.Power:
			power++
			if ref, ok := p.Owner().(CQSRef); ok {
				switch ref.CQSType() {
				case types.CComponent:
					cPower++
				case types.QComponent:
					qPower++
				}
			}
		case port.Write:
			write++
		case port.Read:
			read++
		}
	}
	switch {
	case power > 2:
		return "more than two power ports on one node"
	case write > 1:
		return "more than one write port on one node"
	case write > 0 && power > 0:
		return "a write port cannot share a node with a power port"
	case power == 0 && write == 0 && read > 0:
		return "a node with only read ports has no source of truth"
	case cPower >= 2:
		return "two C-type components' power ports cannot share a node"
	case qPower >= 2:
		return "two Q-type components' power ports cannot share a node"
	}
	return ""
}

func attachAll(n *node.Node, ports []*port.Port) {
	for _, p := range ports {
		n.AddPort(p)
		p.SetNode(n)
	}
}
