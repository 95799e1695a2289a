// Package numerics implements the stateful numerical building blocks of
// spec.md §4.7 that component models call from SimulateOneTimestep: a
// delay line, bilinear integrators and filters, and the closed-form
// turbulent-flow function. Each type is deterministic given the same
// input sequence and the same Ts; the integrators and filters also guard
// against being stepped twice at the same simulation time.
package numerics

// Delay is a fixed-length ring buffer implementing a pure time delay of
// T seconds at timestep Ts: k = round(T/Ts) samples deep.
type Delay struct {
	buf   []float64
	k     int
	head  int
	ready bool
}

// NewDelay constructs a Delay of T seconds at the given timestep, filled
// with fillValue until enough real samples have been pushed.
func NewDelay(t, ts, fillValue float64) *Delay {
	k := int(t/ts + 0.5)
	if k < 1 {
		k = 1
	}
	d := &Delay{buf: make([]float64, k+1), k: k}
	d.Reinitialize(fillValue)
	return d
}

// Reinitialize refills the entire buffer with fillValue.
func (d *Delay) Reinitialize(fillValue float64) {
	for i := range d.buf {
		d.buf[i] = fillValue
	}
	d.head = 0
}

// Push stores newest and returns the value that falls out the back of
// the line (the oldest sample, i.e. the delayed output). The buffer
// holds k+1 slots so it can retain a full k-sample delay plus the slot
// currently being written; the oldest retained sample therefore sits one
// slot ahead of head, not at head itself (head is the slot this call
// overwrites, still holding a k+1-call-old value until the write below),
// matching the original's trailing oldest-pointer scheme
// (ComponentUtilities/Delay.h).
func (d *Delay) Push(newest float64) float64 {
	oldestIdx := (d.head + 1) % len(d.buf)
	oldest := d.buf[oldestIdx]
	d.buf[d.head] = newest
	d.head = oldestIdx
	return oldest
}

// ValueFromNewest returns the sample age steps behind the most recently
// pushed value (age 0 is the newest).
func (d *Delay) ValueFromNewest(age int) float64 {
	n := len(d.buf)
	idx := ((d.head-1-age)%n + n) % n
	return d.buf[idx]
}

// ValueFromOldest returns the sample age steps ahead of the oldest
// (about-to-be-evicted) value.
func (d *Delay) ValueFromOldest(age int) float64 {
	n := len(d.buf)
	idx := (d.head + 1 + age) % n
	return d.buf[idx]
}
