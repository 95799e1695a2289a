package common

import "github.com/hopsan/hopsancore/component"

// RegisterBuiltins files Constant, Gain, and Sink into reg under their
// type names, the component-side analogue of node.RegisterBuiltins.
func RegisterBuiltins(reg *component.Registry) {
	reg.Register(ConstantTypeName, NewConstant)
	reg.Register(GainTypeName, NewGain)
	reg.Register(SinkTypeName, NewSink)
}
