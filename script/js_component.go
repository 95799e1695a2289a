package script

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/hopsan/hopsancore/component"
	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/parameter"
	"github.com/hopsan/hopsancore/port"
	"github.com/hopsan/hopsancore/types"
)

// JSComponentTypeName is the registry key for JSComponent.
const JSComponentTypeName = "SignalJavaScript"

// JSComponent is the JavaScript sibling of ExprComponent: it runs a
// user-supplied function named "step" once per timestep, the same
// compile-once/invoke-by-name shape the teacher's js.GojaJsEngine uses
// for its switch/filter nodes. "step" receives (in, param, t, ts) and
// must return a number.
type JSComponent struct {
	*component.Base

	Script string

	ins *port.MultiPort
	out *port.Port

	vm *goja.Runtime
}

// NewJSComponent constructs an unconfigured JSComponent.
func NewJSComponent() component.Component {
	return &JSComponent{Base: component.NewBase(JSComponentTypeName, types.SComponent)}
}

// Configure registers the ins/out ports and the Script parameter, and
// evaluates Script in a fresh VM to define "step" if Script is already
// set; otherwise the first SimulateOneTimestep does so. The VM is reused
// from then on.
func (c *JSComponent) Configure(cfg types.Config) error {
	c.ins = c.AddMultiPort("ins", port.ReadMulti, node.Signal, false)
	c.out = c.AddPort("out", port.Write, node.Signal, true)
	c.AddParameter(parameter.New("script", &c.Script, parameter.Text, "JavaScript source defining function step(in, param, t, ts)", "-"))
	return c.compile()
}

func (c *JSComponent) compile() error {
	if c.Script == "" {
		return nil
	}
	vm := goja.New()
	if _, err := vm.RunString(c.Script); err != nil {
		return fmt.Errorf("script: loading JavaScript source: %w", err)
	}
	c.vm = vm
	return nil
}

// SimulateOneTimestep calls the script's step function and writes its
// return value to out.
func (c *JSComponent) SimulateOneTimestep(t, ts float64) error {
	if c.vm == nil {
		if err := c.compile(); err != nil {
			return err
		}
		if c.vm == nil {
			return nil
		}
	}

	in := make([]float64, len(c.ins.SubPorts()))
	for i, sp := range c.ins.SubPorts() {
		in[i] = sp.Value(node.SignalValue)
	}
	param := make(map[string]any, len(c.Parameters().Names()))
	for _, name := range c.Parameters().Names() {
		if text, ok := c.Parameters().Get(name); ok {
			param[name] = text
		}
	}

	fn, ok := goja.AssertFunction(c.vm.Get("step"))
	if !ok {
		return fmt.Errorf("script: JavaScript source does not define function step")
	}
	res, err := fn(goja.Undefined(), c.vm.ToValue(in), c.vm.ToValue(param), c.vm.ToValue(t), c.vm.ToValue(ts))
	if err != nil {
		return fmt.Errorf("script: running step: %w", err)
	}
	c.out.SetValue(node.SignalValue, res.ToFloat())
	return nil
}
