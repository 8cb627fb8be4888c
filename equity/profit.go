package equity

import "math"

// HoldingProfit is the profit from buying at s0 and selling at sT,
// net of the financing cost of the purchase at continuously
// compounded rate r over tau years.
func HoldingProfit(s0, sT, r, tau float64) float64 {
	return sT - s0*math.Exp(r*tau)
}

// HoldingProfitWithCosts is the holding profit including accumulated
// dividends dTau, where c0 is the all-in initial outlay (price plus
// fees) financed at continuously compounded rate r over tau years.
func HoldingProfitWithCosts(sT, dTau, c0, r, tau float64) float64 {
	return sT + dTau - c0*math.Exp(r*tau)
}
