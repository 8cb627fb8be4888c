package options

import (
	"fmt"
	"math"
)

// BinomialCallPayoffs returns the call payoffs (Cu, Cd) in the up and
// down states of a one-period binomial tree.
func BinomialCallPayoffs(su, sd, k float64) (float64, float64) {
	return CallPayoff(su, k), CallPayoff(sd, k)
}

// HedgeRatio is the delta of the replicating portfolio:
// (Cu − Cd) / (Su − Sd).
func HedgeRatio(cu, cd, su, sd float64) (float64, error) {
	if su == sd {
		return 0, fmt.Errorf("HedgeRatio: up and down states must differ: %w", ErrInvalidArgument)
	}
	return (cu - cd) / (su - sd), nil
}

// ReplicatingLoan is the amount borrowed in the replicating portfolio:
// (Δ·Sd − Cd) / (1 + r) for a one-period simple rate r.
func ReplicatingLoan(cu, cd, su, sd, r float64) (float64, error) {
	delta, err := HedgeRatio(cu, cd, su, sd)
	if err != nil {
		return 0, fmt.Errorf("ReplicatingLoan: %w", err)
	}
	return (delta*sd - cd) / (1.0 + r), nil
}

// OnePeriodPrice prices the option by no-arbitrage from its
// replicating portfolio: Δ·S0 − (1+r)^τ·B.
func OnePeriodPrice(s0, delta, loan, r, tau float64) float64 {
	return delta*s0 - math.Pow(1.0+r, tau)*loan
}

// RiskNeutralPrice prices a one-period option as the discounted
// risk-neutral expectation of its payoffs:
//
//	p* = (e^(r·τ) − d) / (u − d),  u = Su/S0,  d = Sd/S0
//	C  = e^(−r·τ) · (p*·Cu + (1−p*)·Cd)
func RiskNeutralPrice(s0, su, sd, cu, cd, r, tau float64) (float64, error) {
	if s0 <= 0 {
		return 0, fmt.Errorf("RiskNeutralPrice: spot must be positive, got %g: %w", s0, ErrInvalidArgument)
	}
	u, d := su/s0, sd/s0
	if u == d {
		return 0, fmt.Errorf("RiskNeutralPrice: up and down states must differ: %w", ErrInvalidArgument)
	}
	pStar := (math.Exp(r*tau) - d) / (u - d)
	expected := pStar*cu + (1.0-pStar)*cd
	return math.Exp(-r*tau) * expected, nil
}
