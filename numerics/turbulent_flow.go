package numerics

import "math"

// TurbulentFlowFunction evaluates the closed-form orifice flow relation
// of spec.md §4.7: q = Ks*sign(dp)*(sqrt(|dp| + ((Z1+Z2)*Ks/2)^2) -
// (Z1+Z2)*Ks/2), used by TLM components to convert a pressure
// difference and the two sides' characteristic impedances into a flow
// without an implicit solve.
func TurbulentFlowFunction(ks, dp, z1, z2 float64) float64 {
	half := (z1 + z2) * ks / 2
	sign := 1.0
	if dp < 0 {
		sign = -1.0
	}
	return ks * sign * (math.Sqrt(math.Abs(dp)+half*half) - half)
}
