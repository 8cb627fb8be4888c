// Package forwards provides cost-of-carry forward pricing formulas.
package forwards

import "math"

// PriceNoDividend is the forward price of a non-dividend-paying asset
// under continuous compounding: S·e^(r·τ).
func PriceNoDividend(s, r, tau float64) float64 {
	return s * math.Exp(r*tau)
}

// PriceWithDividend is the forward price of an asset paying known
// dividends with present value d: (S − D)·e^(r·τ).
func PriceWithDividend(s, d, r, tau float64) float64 {
	return (s - d) * math.Exp(r*tau)
}

// PriceContYield is the forward price of an asset paying a continuous
// dividend yield q: S·e^((r−q)·τ).
func PriceContYield(s, r, q, tau float64) float64 {
	return s * math.Exp((r-q)*tau)
}
