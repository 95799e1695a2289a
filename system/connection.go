package system

import (
	"github.com/hopsan/hopsancore/connection"
	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/port"
	"github.com/hopsan/hopsancore/types"
)

// endpoint resolves a (componentName, portName) pair to whatever
// connection.Connect/Disconnect accepts: the component's MultiPort if
// portName names one, otherwise its ordinary Port.
func (s *System) endpoint(componentName, portName string) (any, error) {
	c, ok := s.Component(componentName)
	if !ok {
		return nil, types.NewConfigurationError("connect", "unknown component \""+componentName+"\"")
	}
	if mp, ok := c.MultiPorts()[portName]; ok {
		return mp, nil
	}
	if p, ok := c.Ports()[portName]; ok {
		return p, nil
	}
	return nil, types.NewConfigurationError("connect", "component \""+componentName+"\" has no port \""+portName+"\"")
}

// Connect wires compA.portA to compB.portB, per spec.md §4.3. On
// success it returns true and keeps the system's interior-node
// bookkeeping in sync with whatever connection.Connect did (created a
// fresh node, or merged two, destroying one). On a legal-but-refused
// connection it returns false and pushes an Error message to the bus, as
// spec.md's scenario S4 requires; it never mutates state in that case.
func (s *System) Connect(compA, portA, compB, portB string) (bool, error) {
	ea, err := s.endpoint(compA, portA)
	if err != nil {
		return false, err
	}
	eb, err := s.endpoint(compB, portB)
	if err != nil {
		return false, err
	}

	ok, res, reason, err := connection.Connect(ea, eb)
	if err != nil {
		return false, err
	}
	if !ok {
		if s.bus != nil {
			s.bus.ErrorMsg("connect", reason)
		}
		return false, nil
	}

	s.mu.Lock()
	if res.CreatedNode != nil {
		s.interiorNodes = append(s.interiorNodes, res.CreatedNode)
	}
	if res.DestroyedNode != nil {
		s.dropInteriorNodeLocked(res.DestroyedNode)
	}
	s.mu.Unlock()
	return true, nil
}

// Disconnect detaches compName.portName from its node, per spec.md
// §4.3's inverse rule: the node survives if ≥1 non-read port remains,
// otherwise it is destroyed and every remaining (read-only) port falls
// back to its own dummy node.
func (s *System) Disconnect(compName, portName string) error {
	ep, err := s.endpoint(compName, portName)
	if err != nil {
		return err
	}
	res, err := connection.Disconnect(ep)
	if err != nil {
		return err
	}
	if res.DestroyedNode != nil {
		s.mu.Lock()
		s.dropInteriorNodeLocked(res.DestroyedNode)
		s.mu.Unlock()
	}
	return nil
}

func (s *System) dropInteriorNodeLocked(n *node.Node) {
	for i, existing := range s.interiorNodes {
		if existing == n {
			s.interiorNodes = append(s.interiorNodes[:i], s.interiorNodes[i+1:]...)
			return
		}
	}
}

// AddSystemPort exposes a port on the container itself that forwards to
// an interior node once connected. It starts untyped (no preset node
// type) and adopts whichever side connects first (spec.md §4.5).
func (s *System) AddSystemPort(name string) *port.Port {
	return s.AddPort(name, port.System, nil, false)
}
