package parameter

import "testing"

func TestSetTextLiteral(t *testing.T) {
	var gain float64
	p := New("gain", &gain, Real, "proportional gain", "-")
	if ok := p.SetText("2.5"); !ok {
		t.Fatalf("SetText(%q) = false, want true", "2.5")
	}
	if gain != 2.5 {
		t.Fatalf("gain = %v, want 2.5", gain)
	}
	if p.IsBound() {
		t.Fatalf("IsBound() = true after a literal SetText")
	}
}

func TestSetTextCreatesBinding(t *testing.T) {
	var gain float64
	p := New("gain", &gain, Real, "", "")
	if ok := p.SetText("K"); !ok {
		t.Fatalf("SetText(%q) = false, want true", "K")
	}
	if !p.IsBound() || p.BindingName() != "K" {
		t.Fatalf("BindingName() = %q, want %q", p.BindingName(), "K")
	}
}

func TestResolveDanglingBindingFails(t *testing.T) {
	var gain float64
	p := New("gain", &gain, Real, "", "")
	p.SetText("K")
	store := NewSystemStore()
	store.Set("K", "3.0", Real)
	if err := p.Resolve(store); err != nil {
		t.Fatalf("Resolve() with present binding = %v, want nil", err)
	}
	if gain != 3.0 {
		t.Fatalf("gain = %v after Resolve, want 3.0", gain)
	}

	store.Remove("K")
	if err := p.Resolve(store); err == nil {
		t.Fatalf("Resolve() with removed system parameter = nil, want a ParameterError")
	}
}

func TestRegistryCheckReportsFailingName(t *testing.T) {
	var gain float64
	r := NewRegistry()
	r.Register(New("gain", &gain, Real, "", ""))
	r.Set("gain", "K")

	store := NewSystemStore()
	if name, ok := r.Check(store); ok || name != "gain" {
		t.Fatalf("Check() = (%q, %v), want (%q, false)", name, ok, "gain")
	}

	store.Set("K", "1.0", Real)
	if _, ok := r.Check(store); !ok {
		t.Fatalf("Check() = false once binding resolves, want true")
	}
}

func TestRegisterFromStruct(t *testing.T) {
	type gainConfig struct {
		K      float64 `hopsan:"K,-,proportional gain"`
		Offset float64 `hopsan:"offset"`
		hidden float64
	}
	cfg := &gainConfig{K: 1, Offset: 0}
	r := NewRegistry()
	if err := RegisterFromStruct(r, cfg); err != nil {
		t.Fatalf("RegisterFromStruct() error = %v", err)
	}
	if !r.Set("K", "2.0") {
		t.Fatalf("Set(%q) = false", "K")
	}
	if cfg.K != 2.0 {
		t.Fatalf("cfg.K = %v, want 2.0 (registry target must alias the struct field)", cfg.K)
	}
	_ = cfg.hidden
}
