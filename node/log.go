package node

import "math"

// AllocateLog pre-sizes n's log buffers for a run from startT to stopT
// sampled every logDt, per spec.md §4.1: logSlots = round((stopT-startT)/logDt).
// Slots beyond however many Log actually fills stay zero-initialized.
func (n *Node) AllocateLog(startT, stopT, logDt float64) {
	n.loggingEnabled = logDt > 0
	n.logDt = logDt
	n.lastLogTime = startT - logDt
	n.logCtr = 0
	if !n.loggingEnabled {
		n.timeSamples = nil
		n.valueSamples = nil
		return
	}
	slots := int(math.Round((stopT - startT) / logDt))
	if slots < 0 {
		slots = 0
	}
	n.timeSamples = make([]float64, slots)
	n.valueSamples = make([][]float64, slots)
	for i := range n.valueSamples {
		n.valueSamples[i] = make([]float64, n.typ.ChannelCount())
	}
}

// Log appends one sample at time t if logging is enabled and the
// schedule says it's due: t >= lastLogTime + logDt - logDt/10. On logging
// it advances lastLogTime by logDt (not to t), so equally-spaced slots
// are enforced even under float drift, per spec.md §4.1.
func (n *Node) Log(t float64) {
	if !n.loggingEnabled {
		return
	}
	if t < n.lastLogTime+n.logDt-n.logDt/10 {
		return
	}
	if n.logCtr >= len(n.timeSamples) {
		return
	}
	n.timeSamples[n.logCtr] = t
	copy(n.valueSamples[n.logCtr], n.values)
	n.logCtr++
	n.lastLogTime += n.logDt
}

// LogCtr returns the number of samples actually filled so far.
func (n *Node) LogCtr() int { return n.logCtr }

// TimeSamples returns the whole pre-allocated time buffer: only its first
// LogCtr() entries are filled, the rest stay zero (spec.md §4.1).
func (n *Node) TimeSamples() []float64 { return n.timeSamples }

// ValueSamples returns the logged value rows, each of length
// Type().ChannelCount().
func (n *Node) ValueSamples() [][]float64 { return n.valueSamples }

// LoggingEnabled reports whether AllocateLog was called with a positive
// logDt.
func (n *Node) LoggingEnabled() bool { return n.loggingEnabled }
