package numerics

// Integrator is a bilinear (trapezoidal) discretization of y = ∫u dt,
// state (u_{n-1}, y_{n-1}).
type Integrator struct {
	ts       float64
	uPrev    float64
	yPrev    float64
	lastTime float64
	hasTime  bool
}

// NewIntegrator constructs an Integrator at the given timestep.
func NewIntegrator(ts float64) *Integrator { return &Integrator{ts: ts} }

// Initialize seeds the stored state, e.g. from a component's start value.
func (it *Integrator) Initialize(u0, y0 float64) {
	it.uPrev, it.yPrev = u0, y0
	it.hasTime = false
}

// Update advances the integrator one step and returns the new y. A
// repeated call at the same simulation time is a no-op returning the
// previously computed value.
func (it *Integrator) Update(t, u float64) float64 {
	if it.hasTime && t == it.lastTime {
		return it.yPrev
	}
	y := it.yPrev + it.ts/2*(u+it.uPrev)
	it.uPrev, it.yPrev = u, y
	it.lastTime, it.hasTime = t, true
	return y
}

// Value returns the most recently computed output without stepping.
func (it *Integrator) Value() float64 { return it.yPrev }

// IntegratorLimited is Integrator with output saturation; on saturation
// the stored u is zeroed to prevent windup.
type IntegratorLimited struct {
	Integrator
	min, max float64
}

// NewIntegratorLimited constructs a saturating integrator.
func NewIntegratorLimited(ts, min, max float64) *IntegratorLimited {
	return &IntegratorLimited{Integrator: Integrator{ts: ts}, min: min, max: max}
}

// Update advances one step, saturating y into [min,max].
func (it *IntegratorLimited) Update(t, u float64) float64 {
	if it.hasTime && t == it.lastTime {
		return it.yPrev
	}
	y := it.yPrev + it.ts/2*(u+it.uPrev)
	saturated := false
	if y > it.max {
		y = it.max
		saturated = true
	} else if y < it.min {
		y = it.min
		saturated = true
	}
	if saturated {
		it.uPrev = 0
	} else {
		it.uPrev = u
	}
	it.yPrev = y
	it.lastTime, it.hasTime = t, true
	return y
}
