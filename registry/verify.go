package registry

import "math"

// closureTolerance bounds floating-point drift in the closure checks.
// The checks are over exact integer arithmetic, so anything nonzero
// beyond rounding is a real failure.
const closureTolerance = 1e-9

// Check is the result of one closure check between seed-derived quantities.
type Check struct {
	Name   string
	Detail string
	Passed bool
}

// VerifyParity checks that the two sector dimensions sum to twice the
// effective Euler factor (135 + 153 = 288 = 2*chi_eff for default seeds).
func (r *Registry) VerifyParity() bool {
	return r.seeds.DimL+r.seeds.DimR == 2*r.ChiEff()
}

// VerifyEulerFactor checks that chi_eff reproduces b3^2/4 exactly, i.e.
// that b3 is even and the quarter is an integer.
func (r *Registry) VerifyEulerFactor() bool {
	exact := float64(r.seeds.B3) * float64(r.seeds.B3) / 4.0
	return math.Abs(exact-float64(r.ChiEff())) < closureTolerance
}

// VerifyIntegerClosure checks the divisibility identities the generation
// count and the Euler factor rest on: b3 divisible by 8, chi_eff by b3.
func (r *Registry) VerifyIntegerClosure() bool {
	if r.seeds.B3%8 != 0 {
		return false
	}
	return r.ChiEff()%r.seeds.B3 == 0
}

// VerifyAll runs every closure check and returns the individual results.
func (r *Registry) VerifyAll() []Check {
	return []Check{
		{
			Name:   "parity",
			Detail: "dim_l + dim_r = 2*chi_eff",
			Passed: r.VerifyParity(),
		},
		{
			Name:   "euler_factor",
			Detail: "chi_eff = b3^2/4 exactly",
			Passed: r.VerifyEulerFactor(),
		},
		{
			Name:   "integer_closure",
			Detail: "8 | b3 and b3 | chi_eff",
			Passed: r.VerifyIntegerClosure(),
		},
	}
}
