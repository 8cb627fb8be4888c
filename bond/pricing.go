package bond

import (
	"fmt"

	"github.com/danielyekini/FinCraftr/rates"
)

// Price returns the present value of the bond's cashflows under the
// supplied zero curve.
//
// Each cashflow is discounted at curve.ZeroRate(t) with periodic
// compounding on the bond's own frequency:
//
//	PV = Σ CF_k · (1 + y(t_k)/m)^(−m·t_k)
//
// The curve must quote annualised zero rates on the same compounding
// basis m. Pure function of its inputs; the curve is invoked once per
// cashflow time.
func Price(b Bond, curve DiscountCurve) (float64, error) {
	if curve == nil {
		return 0, fmt.Errorf("Price: curve is required")
	}

	flows, err := Cashflows(b)
	if err != nil {
		return 0, fmt.Errorf("Price: %w", err)
	}

	pv := 0.0
	for _, cf := range flows {
		y := curve.ZeroRate(cf.Time)
		pv += cf.Amount * rates.DiscountFactor(y, b.Frequency, cf.Time)
	}
	return pv, nil
}

// priceFlat prices an already-generated schedule at a single flat
// yield. Used by the solver and the risk measure, which re-price the
// same schedule many times.
func priceFlat(flows []Cashflow, m int, y float64) float64 {
	pv := 0.0
	for _, cf := range flows {
		pv += cf.Amount * rates.DiscountFactor(y, m, cf.Time)
	}
	return pv
}
