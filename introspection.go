package hopsancore

import (
	"strings"

	"github.com/hopsan/hopsancore/system"
	"github.com/hopsan/hopsancore/types"
)

// resolvePortPath splits a "component.port" path into its two parts,
// spec.md §6's portPath argument to the introspection calls.
func resolvePortPath(sys *system.System, portPath string) (componentName, portName string, err error) {
	componentName, portName, ok := strings.Cut(portPath, ".")
	if !ok {
		return "", "", types.NewConfigurationError("introspect", "malformed port path \""+portPath+"\", want \"component.port\"")
	}
	c, ok := sys.Component(componentName)
	if !ok {
		return "", "", types.NewConfigurationError("introspect", "unknown component \""+componentName+"\"")
	}
	if _, ok := c.Ports()[portName]; !ok {
		return "", "", types.NewConfigurationError("introspect", "component \""+componentName+"\" has no port \""+portName+"\"")
	}
	return componentName, portName, nil
}

// GetTimeVector returns the logged time samples of portPath's backing
// node, spec.md §6's getTimeVector(portPath).
func (e *Essentials) GetTimeVector(sys *system.System, portPath string) ([]float64, error) {
	componentName, portName, err := resolvePortPath(sys, portPath)
	if err != nil {
		return nil, err
	}
	c, _ := sys.Component(componentName)
	p := c.Ports()[portName]
	samples := p.Node().TimeSamples()
	return samples[:p.Node().LogCtr()], nil
}

// GetLogData returns the logged values of channel on portPath's backing
// node, spec.md §6's getLogData(portPath, channel) -> double[].
func (e *Essentials) GetLogData(sys *system.System, portPath string, channel int) ([]float64, error) {
	componentName, portName, err := resolvePortPath(sys, portPath)
	if err != nil {
		return nil, err
	}
	c, _ := sys.Component(componentName)
	p := c.Ports()[portName]
	rows := p.Node().ValueSamples()[:p.Node().LogCtr()]
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = row[channel]
	}
	return out, nil
}

// GetLastValue returns portPath's current (not necessarily logged) value
// of channel, spec.md §6's getLastValue(portPath, channel).
func (e *Essentials) GetLastValue(sys *system.System, portPath string, channel int) (float64, error) {
	componentName, portName, err := resolvePortPath(sys, portPath)
	if err != nil {
		return 0, err
	}
	c, _ := sys.Component(componentName)
	p := c.Ports()[portName]
	return p.Value(channel), nil
}
