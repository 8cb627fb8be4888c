package bond

import "fmt"

// DefaultBump is the default yield bump for finite-difference risk
// measures: 1e-4, i.e. one basis point.
const DefaultBump = 1e-4

// DV01Input holds the parameters for ComputeDV01.
type DV01Input struct {
	// Price is the reference mark the sensitivity is quoted against.
	// It does not enter the finite difference itself.
	Price float64
	// Bond is the instrument being bumped.
	Bond Bond
	// Yield is the reference flat yield, typically the solved YTM.
	Yield float64
	// Bump is the parallel shift size; zero means DefaultBump.
	Bump float64
}

// DV01Result is the output of ComputeDV01.
type DV01Result struct {
	// DV01 is the price change for a one-bump downward shift in the
	// flat yield, positive when price rises as yields fall.
	DV01 float64
	// PriceDown and PriceUp are the re-priced values at Yield-Bump
	// and Yield+Bump.
	PriceDown float64
	PriceUp   float64
}

// DV01 computes the dollar value of a one-basis-point parallel shift
// in the flat yield, via symmetric finite difference around ytm.
func DV01(b Bond, ytm float64) (float64, error) {
	res, err := ComputeDV01(DV01Input{Bond: b, Yield: ytm})
	if err != nil {
		return 0, err
	}
	return res.DV01, nil
}

// ComputeDV01 re-prices the bond on flat curves at Yield±Bump and
// returns the symmetric (central) finite-difference estimate
//
//	DV01 = 0.5 · (P(y−bump) − P(y+bump))
//
// This is a numerical-differentiation surrogate, not an analytic
// derivative; accuracy depends on the bump size.
func ComputeDV01(in DV01Input) (DV01Result, error) {
	bump := in.Bump
	if bump == 0 {
		bump = DefaultBump
	}

	flows, err := Cashflows(in.Bond)
	if err != nil {
		return DV01Result{}, fmt.Errorf("ComputeDV01: %w", err)
	}

	down := priceFlat(flows, in.Bond.Frequency, in.Yield-bump)
	up := priceFlat(flows, in.Bond.Frequency, in.Yield+bump)

	return DV01Result{
		DV01:      0.5 * (down - up),
		PriceDown: down,
		PriceUp:   up,
	}, nil
}
