// Package script ships the two scriptable signal-computation components
// SPEC_FULL.md adds as the signal-domain escape hatch spec.md §1 leaves
// room for: ExprComponent (github.com/expr-lang/expr) and JSComponent
// (github.com/dop251/goja). Both compile their user script once (at
// Configure if Script is already set, otherwise on the first
// SimulateOneTimestep; a Script changed after that is not recompiled)
// and evaluate it once per timestep against the
// component's current inputs and parameters — the same compile-once/
// run-many shape the teacher uses for its own expression and JavaScript
// transform nodes.
package script

import (
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hopsan/hopsancore/component"
	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/parameter"
	"github.com/hopsan/hopsancore/port"
	"github.com/hopsan/hopsancore/types"
)

// ExprComponentTypeName is the registry key for ExprComponent.
const ExprComponentTypeName = "SignalExpression"

// ExprComponent is an S-type component whose output is a user-supplied
// expr-lang expression evaluated once per timestep against its inputs
// (ins, a ReadMulti port whose sub-ports are exposed to the script as
// the "in" array), its parameters (exposed as "param", as their text
// values), and the engine-wide UDFs registered on types.Config (exposed
// as "udf"). Since in is an expr-lang operator keyword, a script reaches
// the inputs as $env["in"].
type ExprComponent struct {
	*component.Base

	Script string

	ins *port.MultiPort
	out *port.Port

	program *vm.Program
	udf     map[string]any
}

// NewExprComponent constructs an unconfigured ExprComponent.
func NewExprComponent() component.Component {
	return &ExprComponent{Base: component.NewBase(ExprComponentTypeName, types.SComponent)}
}

// Configure registers the ins/out ports and the Script parameter, and
// compiles Script if it is already set; otherwise the first
// SimulateOneTimestep compiles it. The compiled program is reused from
// then on.
func (c *ExprComponent) Configure(cfg types.Config) error {
	c.ins = c.AddMultiPort("ins", port.ReadMulti, node.Signal, false)
	c.out = c.AddPort("out", port.Write, node.Signal, true)
	c.udf = cfg.Udf

	c.AddParameter(parameter.New("script", &c.Script, parameter.Text, "expr-lang expression producing the output value", "-"))
	return c.compile()
}

func (c *ExprComponent) compile() error {
	if c.Script == "" {
		return nil
	}
	env := map[string]any{"in": []float64{}, "param": map[string]any{}, "udf": c.udf, "t": 0.0, "ts": 0.0}
	program, err := expr.Compile(c.Script, expr.Env(env), expr.AsFloat64())
	if err != nil {
		return fmt.Errorf("script: compiling expression: %w", err)
	}
	c.program = program
	return nil
}

// SimulateOneTimestep evaluates the compiled expression against the
// current sub-port readings, parameters, and UDFs, and writes the
// (float64-coerced) result to out.
func (c *ExprComponent) SimulateOneTimestep(t, ts float64) error {
	if c.program == nil {
		if err := c.compile(); err != nil {
			return err
		}
		if c.program == nil {
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
	env := map[string]any{"in": in, "param": param, "udf": c.udf, "t": t, "ts": ts}

	out, err := vm.Run(c.program, env)
	if err != nil {
		return fmt.Errorf("script: evaluating expression: %w", err)
	}
	v, ok := out.(float64)
	if !ok {
		rv := reflect.ValueOf(out)
		if !rv.IsValid() || !rv.Type().ConvertibleTo(reflect.TypeOf(float64(0))) {
			return fmt.Errorf("script: expression result %T is not convertible to float64", out)
		}
		v = rv.Convert(reflect.TypeOf(float64(0))).Float()
	}
	c.out.SetValue(node.SignalValue, v)
	return nil
}
