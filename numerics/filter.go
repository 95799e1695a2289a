package numerics

// FirstOrderFilter is a bilinear (Tustin) discretization of the
// continuous transfer function G(s) = (a1*s + a0) / (b1*s + b0),
// saturating to [min,max] and resetting state to the clipped value when
// it does.
type FirstOrderFilter struct {
	ts             float64
	num            [2]float64
	den            [2]float64
	min, max       float64
	uPrev, yPrev   float64
	lastTime       float64
	hasTime        bool
}

// NewFirstOrderFilter builds the filter's num/den coefficients from the
// continuous-time a/b coefficients, per spec.md §4.7's bilinear
// transform: num[0]=a1*Ts-2*a0, num[1]=a1*Ts+2*a0, den[0]=b1*Ts-2*b0,
// den[1]=b1*Ts+2*b0.
func NewFirstOrderFilter(ts, a0, a1, b0, b1, min, max float64) *FirstOrderFilter {
	return &FirstOrderFilter{
		ts:  ts,
		num: [2]float64{a1*ts - 2*a0, a1*ts + 2*a0},
		den: [2]float64{b1*ts - 2*b0, b1*ts + 2*b0},
		min: min,
		max: max,
	}
}

// Initialize seeds the stored input/output state.
func (f *FirstOrderFilter) Initialize(u0, y0 float64) {
	f.uPrev, f.yPrev = u0, y0
	f.hasTime = false
}

// Update advances the filter one step and returns the new (possibly
// clipped) output.
func (f *FirstOrderFilter) Update(t, u float64) float64 {
	if f.hasTime && t == f.lastTime {
		return f.yPrev
	}
	y := (f.num[1]*u + f.num[0]*f.uPrev - f.den[0]*f.yPrev) / f.den[1]
	if y > f.max {
		y = f.max
	} else if y < f.min {
		y = f.min
	}
	f.uPrev, f.yPrev = u, y
	f.lastTime, f.hasTime = t, true
	return y
}

// Value returns the most recently computed output without stepping.
func (f *FirstOrderFilter) Value() float64 { return f.yPrev }

// SecondOrderFilter is the symmetric bilinear discretization of
// G(s) = (a2*s^2 + a1*s + a0) / (b2*s^2 + b1*s + b0).
type SecondOrderFilter struct {
	ts           float64
	num          [3]float64
	den          [3]float64
	min, max     float64
	u1, u2       float64
	y1, y2       float64
	lastTime     float64
	hasTime      bool
}

// NewSecondOrderFilter builds num/den from the continuous a/b
// coefficients via the same bilinear transform as FirstOrderFilter,
// extended to the s^2 term: num[i]/den[i] combine Ts^2, Ts and constant
// contributions from a2,a1,a0 (resp. b2,b1,b0) the way the first-order
// case combines a1,a0.
func NewSecondOrderFilter(ts, a0, a1, a2, b0, b1, b2, min, max float64) *SecondOrderFilter {
	ts2 := ts * ts
	return &SecondOrderFilter{
		ts: ts,
		num: [3]float64{
			4*a0 - 2*a1*ts + a2*ts2,
			-8*a0 + 2*a2*ts2,
			4*a0 + 2*a1*ts + a2*ts2,
		},
		den: [3]float64{
			4*b0 - 2*b1*ts + b2*ts2,
			-8*b0 + 2*b2*ts2,
			4*b0 + 2*b1*ts + b2*ts2,
		},
		min: min,
		max: max,
	}
}

// Initialize seeds the filter's two-sample input/output history.
func (f *SecondOrderFilter) Initialize(u0, y0 float64) {
	f.u1, f.u2 = u0, u0
	f.y1, f.y2 = y0, y0
	f.hasTime = false
}

// Update advances the filter one step and returns the new (possibly
// clipped) output.
func (f *SecondOrderFilter) Update(t, u float64) float64 {
	if f.hasTime && t == f.lastTime {
		return f.y1
	}
	y := (f.num[2]*u+f.num[1]*f.u1+f.num[0]*f.u2-f.den[1]*f.y1-f.den[0]*f.y2) / f.den[2]
	if y > f.max {
		y = f.max
	} else if y < f.min {
		y = f.min
	}
	f.u2, f.u1 = f.u1, u
	f.y2, f.y1 = f.y1, y
	f.lastTime, f.hasTime = t, true
	return y
}

// Value returns the most recently computed output without stepping.
func (f *SecondOrderFilter) Value() float64 { return f.y1 }
