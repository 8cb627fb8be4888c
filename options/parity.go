package options

import "math"

// DefaultParityTolerance is the absolute tolerance used by the parity
// checks.
const DefaultParityTolerance = 1e-6

// CheckPutCallParity reports whether put-call parity holds for a
// European pair on a stock paying a known discrete dividend d (present
// value terms):
//
//	P + S = C + D + K·e^(−r·τ)
//
// within DefaultParityTolerance.
func CheckPutCallParity(c, p, s, k, r, tau, d float64) bool {
	lhs := p + s
	rhs := c + d + k*math.Exp(-r*tau)
	return math.Abs(lhs-rhs) < DefaultParityTolerance
}

// CheckPutCallParityYield reports whether put-call parity holds for a
// European pair on a stock paying a continuous dividend yield q:
//
//	P + S·e^((q−r)·τ) = C + K·e^(−r·τ)
//
// within DefaultParityTolerance.
func CheckPutCallParityYield(c, p, s, k, r, tau, q float64) bool {
	lhs := p + s*math.Exp((q-r)*tau)
	rhs := c + k*math.Exp(-r*tau)
	return math.Abs(lhs-rhs) < DefaultParityTolerance
}
