// Package pluginloader implements spec.md §4.8/§9's external-library
// loading: an OS dynamic-library path exposing a single well-known entry
// point that receives the node and component factories so it can
// self-register its types, realized with the standard library's
// plugin.Open/Lookup rather than a third-party loader (no example repo
// in the pack wires a plugin mechanism, so this one concern is carried
// on stdlib; see DESIGN.md).
package pluginloader

import (
	"fmt"
	"plugin"

	"github.com/hopsan/hopsancore/component"
	"github.com/hopsan/hopsancore/node"
)

// EntryPointSymbol is the exported symbol every external component
// library must define: a func(nodeReg *node.Registry, compReg
// *component.Registry) so the plugin can self-register.
const EntryPointSymbol = "RegisterHopsanComponents"

// EntryPoint is the signature an external library's entry point must
// satisfy.
type EntryPoint func(nodeReg *node.Registry, compReg *component.Registry)

// Load opens the shared object at path and invokes its EntryPointSymbol
// with nodeReg/compReg, letting the library register whatever node and
// component types it provides.
func Load(path string, nodeReg *node.Registry, compReg *component.Registry) error {
	p, err := plugin.Open(path)
	if err != nil {
		return fmt.Errorf("pluginloader: opening %s: %w", path, err)
	}
	sym, err := p.Lookup(EntryPointSymbol)
	if err != nil {
		return fmt.Errorf("pluginloader: %s does not export %s: %w", path, EntryPointSymbol, err)
	}
	entry, ok := sym.(func(*node.Registry, *component.Registry))
	if !ok {
		return fmt.Errorf("pluginloader: %s's %s has the wrong signature", path, EntryPointSymbol)
	}
	entry(nodeReg, compReg)
	return nil
}
