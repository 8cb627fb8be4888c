package options

import "math"

// CallProfit is the profit at expiry of a long call: the terminal
// payoff minus the premium compounded at continuously compounded rate
// r over the option's life tau.
func CallProfit(sT, k, premium, r, tau float64) float64 {
	return CallPayoff(sT, k) - premium*math.Exp(r*tau)
}

// PutProfit is the profit at expiry of a long put: the terminal
// payoff minus the compounded premium.
func PutProfit(sT, k, premium, r, tau float64) float64 {
	return PutPayoff(sT, k) - premium*math.Exp(r*tau)
}
