package script

import (
	"testing"

	"github.com/hopsan/hopsancore/node"
	"github.com/hopsan/hopsancore/types"
)

func TestExprComponentEvaluatesScript(t *testing.T) {
	c := NewExprComponent().(*ExprComponent)
	if err := c.Configure(types.NewConfig()); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	c.Script = `$env["in"][0] * 2 + 1`
	if err := c.compile(); err != nil {
		t.Fatalf("compile() error = %v", err)
	}

	sub := c.ins.AllocateSubPort()
	sub.SetNode(node.New(node.Signal))
	sub.Node().SetValue(node.SignalValue, 10)

	out, _ := c.Port("out")
	out.SetNode(node.New(node.Signal))

	if err := c.SimulateOneTimestep(0, 0.01); err != nil {
		t.Fatalf("SimulateOneTimestep() error = %v", err)
	}
	if got := out.Value(node.SignalValue); got != 21 {
		t.Fatalf("out value = %v, want 21", got)
	}
}

func TestJSComponentRunsStepFunction(t *testing.T) {
	c := NewJSComponent().(*JSComponent)
	if err := c.Configure(types.NewConfig()); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	c.Script = "function step(inputs, param, t, ts) { return inputs[0] + 1; }"
	if err := c.compile(); err != nil {
		t.Fatalf("compile() error = %v", err)
	}

	sub := c.ins.AllocateSubPort()
	sub.SetNode(node.New(node.Signal))
	sub.Node().SetValue(node.SignalValue, 4)

	out, _ := c.Port("out")
	out.SetNode(node.New(node.Signal))

	if err := c.SimulateOneTimestep(0, 0.01); err != nil {
		t.Fatalf("SimulateOneTimestep() error = %v", err)
	}
	if got := out.Value(node.SignalValue); got != 5 {
		t.Fatalf("out value = %v, want 5", got)
	}
}
