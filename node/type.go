package node

// ChannelDescriptor names one slot in a node type's fixed channel layout.
type ChannelDescriptor struct {
	SlotIndex int
	ShortName string
	NiceName  string
	Unit      string
	Kind      VariableKind
}

// StartValueProjection seeds DestSlot (always a TLM channel) from
// SourceSlot (always an Intensity or Flow channel) when a port's
// detached start-value node is propagated into its backing node at
// loadStartValues, per spec.md §4.1 and §9 ("dynamic port types and
// start-value projection").
type StartValueProjection struct {
	SourceSlot int
	DestSlot   int
}

// TypeDescriptor is a node type: an immutable, ordered list of channel
// descriptors. Channel count is type-specific and fixed at registration
// time; Node instances of this type always carry exactly that many
// values.
type TypeDescriptor struct {
	name        string
	channels    []ChannelDescriptor
	projections []StartValueProjection
}

// NewTypeDescriptor builds a TypeDescriptor, assigning SlotIndex to each
// channel by its position in channels.
func NewTypeDescriptor(name string, channels []ChannelDescriptor, projections ...StartValueProjection) *TypeDescriptor {
	for i := range channels {
		channels[i].SlotIndex = i
	}
	return &TypeDescriptor{name: name, channels: channels, projections: projections}
}

// StartValueProjections returns the type's TLM-from-Intensity/Flow
// seeding rules.
func (t *TypeDescriptor) StartValueProjections() []StartValueProjection {
	return t.projections
}

// ApplyStartValueProjections runs every registered projection on n,
// copying n.values[proj.SourceSlot] into n.values[proj.DestSlot]. Called
// once per node during loadStartValues, after any start-value node has
// already been copied in.
func (t *TypeDescriptor) ApplyStartValueProjections(n *Node) {
	for _, p := range t.projections {
		n.values[p.DestSlot] = n.values[p.SourceSlot]
	}
}

func (t *TypeDescriptor) Name() string                    { return t.name }
func (t *TypeDescriptor) Channels() []ChannelDescriptor    { return t.channels }
func (t *TypeDescriptor) ChannelCount() int                { return len(t.channels) }

// DataID performs the reflective name->slot lookup spec.md §4.1 requires
// for logging/plot tooling. It returns (-1, false) for an unknown name.
func (t *TypeDescriptor) DataID(shortName string) (int, bool) {
	for _, c := range t.channels {
		if c.ShortName == shortName {
			return c.SlotIndex, true
		}
	}
	return -1, false
}

// channelsOfKind returns the slot indices of every channel with the given
// kind, in declaration order.
func (t *TypeDescriptor) channelsOfKind(kind VariableKind) []int {
	var out []int
	for _, c := range t.channels {
		if c.Kind == kind {
			out = append(out, c.SlotIndex)
		}
	}
	return out
}
