package aspect

import (
	"strings"
	"testing"

	"github.com/hopsan/hopsancore/component/common"
	"github.com/hopsan/hopsancore/messagebus"
	"github.com/hopsan/hopsancore/types"
)

func TestDebugAspectReportsSnapshotAsDebugMessage(t *testing.T) {
	bus := messagebus.New(8, "test")
	gain := common.NewGain().(*common.Gain)
	if err := gain.Configure(types.NewConfig()); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	gain.SetName("Gain1")
	gain.K = 2.5

	da := NewDebugAspect(bus, "debug")
	da.Report(gain)

	msg, ok := bus.TryPop()
	if !ok {
		t.Fatalf("expected a message on the bus")
	}
	if msg.Severity != messagebus.Debug {
		t.Fatalf("Severity = %v, want Debug", msg.Severity)
	}
	if !strings.Contains(msg.Text, "Gain1") {
		t.Fatalf("snapshot text = %q, want it to mention the component name", msg.Text)
	}
}
