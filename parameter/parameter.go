// Package parameter implements the per-component and per-system
// parameter registries of spec.md §3/§4.4: named values that parse from
// text into a declared type, and can late-bind by name to a system
// parameter instead of holding a literal.
package parameter

import (
	"strconv"

	"github.com/hopsan/hopsancore/types"
)

// DataType is a parameter's declared type.
type DataType int

const (
	Real DataType = iota
	Integer
	Bool
	Text
)

func (d DataType) String() string {
	switch d {
	case Real:
		return "Real"
	case Integer:
		return "Integer"
	case Bool:
		return "Bool"
	default:
		return "Text"
	}
}

// Parameter is one named value in a component's (or system's) parameter
// registry. Its target is the live storage address inside the owning
// component: exactly one of *float64, *int64, *bool, *string, matching
// DataType.
type Parameter struct {
	Name        string
	TextValue   string
	DataType    DataType
	Description string
	Unit        string

	target any

	// bindingName is the name of the system parameter this parameter is
	// bound to, or "" if it holds a literal. Binding is by name only
	// (late-bound, resolved at Resolve); the registry keeps no strong
	// reference to the system-parameter store.
	bindingName string
}

// New constructs a Parameter. target must be *float64, *int64, *bool, or
// *string and must match dataType.
func New(name string, target any, dataType DataType, description, unit string) *Parameter {
	return &Parameter{Name: name, target: target, DataType: dataType, Description: description, Unit: unit}
}

// IsBound reports whether this parameter currently defers to a named
// system parameter rather than holding its own literal.
func (p *Parameter) IsBound() bool { return p.bindingName != "" }

// BindingName returns the system-parameter name this parameter is bound
// to, or "" if unbound.
func (p *Parameter) BindingName() string { return p.bindingName }

// SetText parses text into the declared type and writes it to target. If
// text does not parse as a literal of DataType, it is treated as the
// name of a system parameter and a binding is created instead (resolved
// later by Resolve); an empty text is always refused. On any refusal,
// state is left unchanged.
func (p *Parameter) SetText(text string) bool {
	if text == "" {
		return false
	}
	if p.setLiteral(text) {
		p.TextValue = text
		p.bindingName = ""
		return true
	}
	// Not a literal of our type: treat as a system-parameter binding.
	p.bindingName = text
	p.TextValue = text
	return true
}

func (p *Parameter) setLiteral(text string) bool {
	switch target := p.target.(type) {
	case *float64:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return false
		}
		*target = v
	case *int64:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return false
		}
		*target = v
	case *bool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return false
		}
		*target = v
	case *string:
		*target = text
	default:
		return false
	}
	return true
}

// Resolve re-evaluates a bound parameter against store, converting the
// stored system-parameter value into target's type. Unbound parameters
// are a no-op success. Returns a *types.ParameterError naming this
// parameter if the binding is dangling (store has no such name).
func (p *Parameter) Resolve(store *SystemStore) error {
	if p.bindingName == "" {
		return nil
	}
	sp, ok := store.Get(p.bindingName)
	if !ok {
		return types.NewParameterError(p.Name, "binding to system parameter \""+p.bindingName+"\" is dangling")
	}
	if !p.setLiteral(sp.TextValue) {
		return types.NewParameterError(p.Name, "system parameter \""+p.bindingName+"\" value does not convert to the bound type")
	}
	return nil
}
