// Package rates provides interest-rate compounding, discounting and
// rate-basis conversion primitives.
//
// All rates are quoted as decimals (0.05 == 5%) and all times in
// years. Day-count conversion happens upstream: pass actual year
// fractions into the t arguments.
package rates

import "math"

// DiscountFactor is the finite-frequency discount factor
// (1 + rate/m)^(−m·t) for m compounding periods per year.
func DiscountFactor(rate float64, m int, t float64) float64 {
	mf := float64(m)
	return math.Pow(1.0+rate/mf, -mf*t)
}

// FutureValue compounds a present value forward m times per year for
// t years.
func FutureValue(pv, rate float64, m int, t float64) float64 {
	mf := float64(m)
	return pv * math.Pow(1.0+rate/mf, mf*t)
}

// PresentValue discounts a future value back to today.
func PresentValue(fv, rate float64, m int, t float64) float64 {
	return fv * DiscountFactor(rate, m, t)
}

// RollForward grows a price at a continuously compounded rate over tau
// years.
func RollForward(p, r, tau float64) float64 {
	return p * math.Exp(r*tau)
}

// RollBack discounts a price at a continuously compounded rate over
// tau years.
func RollBack(p, r, tau float64) float64 {
	return p * math.Exp(-r*tau)
}
