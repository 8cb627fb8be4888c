package rates

import "math"

// CompoundDiscrete grows a principal at nominal rate r compounded m
// times per year for the given number of years.
func CompoundDiscrete(p0, r float64, m int, years float64) float64 {
	mf := float64(m)
	return p0 * math.Pow(1.0+r/mf, mf*years)
}

// CompoundContinuous grows a principal at a continuously compounded
// rate for t years.
func CompoundContinuous(p0, r, t float64) float64 {
	return p0 * math.Exp(r*t)
}

// EffectiveAnnualRate converts a nominal rate compounded m times per
// year to its effective annual equivalent.
func EffectiveAnnualRate(rate float64, m int) float64 {
	mf := float64(m)
	return math.Pow(1.0+rate/mf, mf) - 1.0
}
