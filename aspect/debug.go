// Package aspect implements the cross-cutting concerns spec.md §9 calls
// out as a design note: behavior that wraps a component's lifecycle
// without being part of its physics. Grounded on the teacher's
// builtin/aspect package, which wraps rule-node execution with debug
// logging and chain validation the same way.
package aspect

import (
	"fmt"

	yaml "go.yaml.in/yaml/v2"

	"github.com/hopsan/hopsancore/component"
	"github.com/hopsan/hopsancore/messagebus"
)

// snapshot is the YAML-serializable view of a component's configuration
// a DebugAspect formats.
type snapshot struct {
	Name       string            `yaml:"name"`
	Type       string            `yaml:"type"`
	CQSType    string            `yaml:"cqsType"`
	Parameters map[string]string `yaml:"parameters"`
}

// DebugAspect formats a component's current configuration as YAML and
// pushes it onto a message bus at Debug severity, the Go analogue of the
// teacher's ChainDebug aspect logging a node's in/out message flow.
type DebugAspect struct {
	bus *messagebus.Bus
	tag string
}

// NewDebugAspect constructs a DebugAspect that reports onto bus under tag.
func NewDebugAspect(bus *messagebus.Bus, tag string) *DebugAspect {
	return &DebugAspect{bus: bus, tag: tag}
}

// Snapshot formats c's current configuration as YAML.
func (d *DebugAspect) Snapshot(c component.Component) (string, error) {
	s := snapshot{
		Name:       c.Name(),
		Type:       c.TypeName(),
		CQSType:    c.CQSType().String(),
		Parameters: map[string]string{},
	}
	for _, name := range c.Parameters().Names() {
		if text, ok := c.Parameters().Get(name); ok {
			s.Parameters[name] = text
		}
	}
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("aspect: marshaling debug snapshot: %w", err)
	}
	return string(out), nil
}

// Report formats c's configuration and pushes it as a Debug message.
// Nothing in the core calls it on a component's behalf; a report is
// made only where a caller invokes it.
func (d *DebugAspect) Report(c component.Component) {
	text, err := d.Snapshot(c)
	if err != nil {
		d.bus.ErrorMsg(d.tag, err.Error())
		return
	}
	d.bus.Debug(d.tag, text)
}
