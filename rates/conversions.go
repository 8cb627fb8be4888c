package rates

import "math"

// NominalToContinuous converts a nominal rate compounded m times per
// year to its continuously compounded equivalent: m·ln(1 + R/m).
func NominalToContinuous(r float64, m int) float64 {
	mf := float64(m)
	return mf * math.Log(1.0+r/mf)
}

// ContinuousToNominal converts a continuously compounded rate to the
// equivalent nominal rate compounded m times per year: m·(e^(r/m) − 1).
func ContinuousToNominal(r float64, m int) float64 {
	mf := float64(m)
	return mf * (math.Exp(r/mf) - 1.0)
}
