package options

import "math"

// CallPayoff is the terminal payoff of a European call: max(S_T−K, 0).
func CallPayoff(sT, k float64) float64 {
	return math.Max(sT-k, 0.0)
}

// PutPayoff is the terminal payoff of a European put: max(K−S_T, 0).
func PutPayoff(sT, k float64) float64 {
	return math.Max(k-sT, 0.0)
}

// AsianCallPayoff is the payoff of an average-price Asian call given
// the realised average price over the averaging window.
func AsianCallPayoff(averagePrice, k float64) float64 {
	return math.Max(averagePrice-k, 0.0)
}
