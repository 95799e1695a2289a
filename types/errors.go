package types

import "fmt"

// ConfigurationError reports illegal topology (wrong node type, CQS
// violation, missing required connection), an unknown component type-name,
// or a duplicate name the uniqueifier could not resolve.
type ConfigurationError struct {
	Op      string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("hopsancore: configuration error in %s: %s", e.Op, e.Message)
}

func NewConfigurationError(op, message string) error {
	return &ConfigurationError{Op: op, Message: message}
}

// ParameterError reports a textual value that cannot be parsed into its
// declared type, or a system-parameter binding that is dangling at
// initialize.
type ParameterError struct {
	ParameterName string
	Message       string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("hopsancore: parameter %q: %s", e.ParameterName, e.Message)
}

func NewParameterError(name, message string) error {
	return &ParameterError{ParameterName: name, Message: message}
}

// InitializeFailure wraps a component's self-reported initialize failure.
type InitializeFailure struct {
	ComponentName string
	Message       string
}

func (e *InitializeFailure) Error() string {
	return fmt.Sprintf("hopsancore: component %q failed to initialize: %s", e.ComponentName, e.Message)
}

func NewInitializeFailure(component, message string) error {
	return &InitializeFailure{ComponentName: component, Message: message}
}

// ErrCanceled is returned by Simulate when StopSimulation was observed
// before the run reached its stop time.
var ErrCanceled = fmt.Errorf("hopsancore: simulation canceled")

// InternalInvariantError marks a violated data-structure invariant: a
// programming error within the core itself, never a user mistake. It is
// always raised through CheckInvariant, which panics with this type so
// tests can recover() and assert on it.
type InternalInvariantError struct {
	Message string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("hopsancore: internal invariant violated: %s", e.Message)
}

// CheckInvariant panics with *InternalInvariantError when cond is false.
// Reserved for back-reference consistency checks (node<->port bookkeeping,
// component<->system parent pointers) that should be impossible to violate
// through the public API; never used for user-supplied-input validation.
func CheckInvariant(cond bool, format string, v ...any) {
	if !cond {
		panic(&InternalInvariantError{Message: fmt.Sprintf(format, v...)})
	}
}
