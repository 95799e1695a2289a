package types

// CQSType tags a component's role in the TLM scheme. It is data, not a
// subclass: the scheduler partitions components into S/C/Q worklists by
// reading this single field.
type CQSType int

const (
	// UndefinedCQS marks a component (almost always a System) whose role
	// has not been derived yet or must be set explicitly by the modeler.
	UndefinedCQS CQSType = iota
	CComponent
	QComponent
	SComponent
)

func (t CQSType) String() string {
	switch t {
	case CComponent:
		return "C"
	case QComponent:
		return "Q"
	case SComponent:
		return "S"
	default:
		return "Undefined"
	}
}
