// Package node implements the shared, per-connection storage cell of the
// simulation graph: a small fixed-length vector of named real channels
// plus an optional time-series log. The core never interprets channel
// semantics beyond the few mechanisms documented on VariableKind; only
// component models give the numbers meaning.
package node

// VariableKind classifies a channel by its role in the TLM scheme. The
// core's own mechanisms do not read it: start-value projection copies
// between the explicit slot pairs of StartValueProjection, and the
// connection legality check counts port roles, not channel kinds.
type VariableKind int

const (
	// Default channels carry no special meaning to the core.
	Default VariableKind = iota
	// Flow channels (e.g. volume flow, velocity) are read by C components
	// and written by Q components.
	Flow
	// Intensity channels (e.g. pressure, force) are read by C components
	// and written by Q components, dual to Flow.
	Intensity
	// TLM channels (wave variable, characteristic impedance) are written
	// by C components and read by Q components; at initialize they may be
	// seeded from the matching Intensity channel (see StartValueProjection).
	TLM
	// Hidden channels exist for bookkeeping (equivalent mass, temperature)
	// but are not part of the power-port contract.
	Hidden
)

func (k VariableKind) String() string {
	switch k {
	case Flow:
		return "Flow"
	case Intensity:
		return "Intensity"
	case TLM:
		return "TLM"
	case Hidden:
		return "Hidden"
	default:
		return "Default"
	}
}
