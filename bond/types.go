package bond

import "errors"

var (
	// ErrInvalidSchedule is returned when a bond specification yields
	// zero or negative coupon payments.
	ErrInvalidSchedule = errors.New("invalid cashflow schedule")

	// ErrNoConvergence is returned when the yield solver exhausts its
	// iteration budget, or when no yield in (0, 1) can reproduce the
	// target price.
	ErrNoConvergence = errors.New("yield solver did not converge")
)

// Cashflow is a single scheduled cash payment.
//
// Time is the offset from the valuation date in years; Amount is in
// currency units, not price-per-100. Day-count conversion happens
// upstream: callers pass actual year fractions.
type Cashflow struct {
	Time   float64
	Amount float64
}

// Bond describes a fixed-rate bullet bond with a regular coupon
// schedule and no stubs. It fully determines the cashflow schedule.
type Bond struct {
	// Face is the principal returned at maturity.
	Face float64
	// CouponRate is the annual coupon as a decimal (0.05 == 5%).
	CouponRate float64
	// Frequency is coupon payments per year (1 = annual, 2 = semi-annual).
	Frequency int
	// Years is the tenor in years. It should be an exact multiple of
	// the payment period; the schedule rounds to the nearest payment
	// count and does not validate non-integral products, so a badly
	// chosen tenor silently mis-schedules the last payment.
	Years float64
}

// DiscountCurve maps a time offset (years, >= 0) to an annualised zero
// rate on the same compounding basis as the bond being priced. The
// engine treats the curve as opaque and calls it once per cashflow.
type DiscountCurve interface {
	ZeroRate(t float64) float64
}

// CurveFunc adapts an ordinary function to the DiscountCurve interface.
type CurveFunc func(t float64) float64

func (f CurveFunc) ZeroRate(t float64) float64 { return f(t) }

// FlatCurve is a discount curve returning the same rate at all times.
type FlatCurve struct {
	Rate float64
}

func (c FlatCurve) ZeroRate(float64) float64 { return c.Rate }
