package component

import "testing"

func TestRegistryRejectsDuplicateKey(t *testing.T) {
	r := NewRegistry()
	if status := r.Register("Stub", func() Component { return nil }); status != RegisteredOK {
		t.Fatalf("first Register() = %v, want RegisteredOK", status)
	}
	if status := r.Register("Stub", func() Component { return nil }); status != AlreadyRegistered {
		t.Fatalf("second Register() = %v, want AlreadyRegistered", status)
	}
}

func TestRegistryNewComponentUnknownKey(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewComponent("DoesNotExist"); err == nil {
		t.Fatalf("NewComponent() on unknown key = nil error, want non-nil")
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("Stub", func() Component { return nil })
	if status := r.Unregister("Stub"); status != RegisteredOK {
		t.Fatalf("Unregister() = %v, want RegisteredOK", status)
	}
	if status := r.Unregister("Stub"); status != NotRegistered {
		t.Fatalf("second Unregister() = %v, want NotRegistered", status)
	}
}
