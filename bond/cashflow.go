package bond

import (
	"fmt"
	"math"
)

// Cashflows generates the bond's coupon schedule.
//
// Payments fall at k/Frequency years for k = 1..N where
// N = round(Years * Frequency). Every entry pays the periodic coupon
// CouponRate * Face / Frequency; the final entry additionally returns
// the face value. Entries are strictly increasing in time.
//
// A specification that produces no payments (non-positive frequency or
// tenor) fails with ErrInvalidSchedule.
func Cashflows(b Bond) ([]Cashflow, error) {
	if b.Frequency <= 0 {
		return nil, fmt.Errorf("Cashflows: Frequency must be positive, got %d: %w", b.Frequency, ErrInvalidSchedule)
	}

	n := int(math.Round(b.Years * float64(b.Frequency)))
	if n < 1 {
		return nil, fmt.Errorf("Cashflows: tenor %g years at frequency %d yields no payments: %w", b.Years, b.Frequency, ErrInvalidSchedule)
	}

	dt := 1.0 / float64(b.Frequency)
	coupon := b.CouponRate * b.Face / float64(b.Frequency)

	flows := make([]Cashflow, 0, n)
	for k := 1; k <= n; k++ {
		flows = append(flows, Cashflow{Time: float64(k) * dt, Amount: coupon})
	}
	flows[n-1].Amount += b.Face
	return flows, nil
}
