package numerics

// DoubleIntegratorWithDamping discretizes ÿ + w0·ẏ = u (a mass with
// viscous damping driven by an input acceleration/force), producing
// both velocity and position each step.
type DoubleIntegratorWithDamping struct {
	ts, w0   float64
	uPrev    float64
	ydPrev   float64
	yPrev    float64
	lastTime float64
	hasTime  bool
}

// NewDoubleIntegratorWithDamping constructs the integrator at timestep
// ts with damping coefficient w0.
func NewDoubleIntegratorWithDamping(ts, w0 float64) *DoubleIntegratorWithDamping {
	return &DoubleIntegratorWithDamping{ts: ts, w0: w0}
}

// Initialize seeds the stored velocity/position state.
func (it *DoubleIntegratorWithDamping) Initialize(yd0, y0 float64) {
	it.ydPrev, it.yPrev = yd0, y0
	it.uPrev = 0
	it.hasTime = false
}

// Update advances one step and returns the new position; Velocity
// returns the matching velocity computed by the same call.
func (it *DoubleIntegratorWithDamping) Update(t, u float64) float64 {
	if it.hasTime && t == it.lastTime {
		return it.yPrev
	}
	ts, w0 := it.ts, it.w0
	yd := ((2-w0*ts)*it.ydPrev + ts/2*(u+it.uPrev)) / (2 + w0*ts)
	y := it.yPrev + ts/2*(yd+it.ydPrev)

	it.uPrev = u
	it.ydPrev = yd
	it.yPrev = y
	it.lastTime, it.hasTime = t, true
	return y
}

// Velocity returns the velocity state produced by the most recent Update.
func (it *DoubleIntegratorWithDamping) Velocity() float64 { return it.ydPrev }

// Position returns the position state produced by the most recent Update.
func (it *DoubleIntegratorWithDamping) Position() float64 { return it.yPrev }

// DoubleIntegratorWithDampingAndCoulombFriction adds a dead-zone to the
// effective input acceleration, modeling static/kinetic Coulomb
// friction, on top of DoubleIntegratorWithDamping. It additionally
// supports one-step undo/redo so a calling component can speculatively
// integrate, inspect the result (e.g. against a stop), and roll back.
type DoubleIntegratorWithDampingAndCoulombFriction struct {
	DoubleIntegratorWithDamping
	muS, muK float64

	undoAvailable bool
	savedUPrev    float64
	savedYdPrev   float64
	savedYPrev    float64
}

// NewDoubleIntegratorWithDampingAndCoulombFriction constructs the
// friction-augmented integrator; muS/muK are the static/kinetic friction
// accelerations (already scaled to the same units as u).
func NewDoubleIntegratorWithDampingAndCoulombFriction(ts, w0, muS, muK float64) *DoubleIntegratorWithDampingAndCoulombFriction {
	return &DoubleIntegratorWithDampingAndCoulombFriction{
		DoubleIntegratorWithDamping: DoubleIntegratorWithDamping{ts: ts, w0: w0},
		muS:                         muS,
		muK:                         muK,
	}
}

// effectiveInput applies the Coulomb dead-zone: while essentially at
// rest (|yd| below a friction-speed epsilon), static friction must be
// overcome before any net acceleration is admitted; once moving, kinetic
// friction opposes the motion.
func (it *DoubleIntegratorWithDampingAndCoulombFriction) effectiveInput(u float64) float64 {
	const atRestEps = 1e-6
	if it.ydPrev > atRestEps {
		return u - it.muK
	}
	if it.ydPrev < -atRestEps {
		return u + it.muK
	}
	switch {
	case u > it.muS:
		return u - it.muS
	case u < -it.muS:
		return u + it.muS
	default:
		return 0
	}
}

// IntegrateWithUndo advances one step and records enough state to roll
// it back with RedoIntegrate, for components that need to try a step
// and conditionally discard it (e.g. against a mechanical stop).
func (it *DoubleIntegratorWithDampingAndCoulombFriction) IntegrateWithUndo(t, u float64) float64 {
	it.savedUPrev = it.uPrev
	it.savedYdPrev = it.ydPrev
	it.savedYPrev = it.yPrev
	it.undoAvailable = true
	return it.DoubleIntegratorWithDamping.Update(t, it.effectiveInput(u))
}

// RedoIntegrate discards the most recent IntegrateWithUndo step,
// restoring the prior state. It is a no-op if no undo is available.
func (it *DoubleIntegratorWithDampingAndCoulombFriction) RedoIntegrate() {
	if !it.undoAvailable {
		return
	}
	it.uPrev = it.savedUPrev
	it.ydPrev = it.savedYdPrev
	it.yPrev = it.savedYPrev
	it.undoAvailable = false
}
