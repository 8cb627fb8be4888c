package equity

import (
	"fmt"
	"math"
)

// DDMSinglePeriod values a share held for one period: the next
// dividend d1 plus the expected sale price s1, discounted at r.
func DDMSinglePeriod(d1, s1, r float64) float64 {
	return (d1 + s1) / (1.0 + r)
}

// DDMMultiPeriod values a share held for len(dividends) periods,
// discounting each dividend and the terminal sale price at r.
func DDMMultiPeriod(dividends []float64, terminal, r float64) float64 {
	pv := 0.0
	for t, d := range dividends {
		pv += d / math.Pow(1.0+r, float64(t+1))
	}
	pv += terminal / math.Pow(1.0+r, float64(len(dividends)))
	return pv
}

// DDMInfinite values a share as the present value of the supplied
// dividend stream with no terminal sale.
func DDMInfinite(dividends []float64, r float64) float64 {
	pv := 0.0
	for t, d := range dividends {
		pv += d / math.Pow(1.0+r, float64(t+1))
	}
	return pv
}

// CostOfEquity is the implied one-period required return given the
// next dividend, expected price and the current price: (d1+s1)/s0 − 1.
func CostOfEquity(d1, s1, s0 float64) (float64, error) {
	if s0 == 0 {
		return 0, fmt.Errorf("CostOfEquity: current price must be nonzero: %w", ErrInvalidArgument)
	}
	return (d1+s1)/s0 - 1.0, nil
}

// GordonGrowth is the constant-growth dividend discount model
// d1/(r − g). The growth rate must be strictly below the required
// return for the series to converge.
func GordonGrowth(d1, r, g float64) (float64, error) {
	if g >= r {
		return 0, fmt.Errorf("GordonGrowth: growth rate %g must be less than discount rate %g: %w", g, r, ErrInvalidArgument)
	}
	return d1 / (r - g), nil
}
