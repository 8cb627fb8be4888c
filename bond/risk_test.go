package bond_test

import (
	"errors"
	"math"
	"testing"

	"github.com/danielyekini/FinCraftr/bond"
)

func TestDV01_NonNegative(t *testing.T) {
	t.Parallel()

	b := bond.Bond{Face: 1000, CouponRate: 0.05, Frequency: 2, Years: 10}
	for _, y := range []float64{0.01, 0.03, 0.05, 0.10, 0.25} {
		dv01, err := bond.DV01(b, y)
		if err != nil {
			t.Fatalf("DV01 at %g error: %v", y, err)
		}
		if dv01 < 0 {
			t.Fatalf("DV01 at %g is negative: %g", y, dv01)
		}
	}
}

func TestComputeDV01_CentralDifference(t *testing.T) {
	t.Parallel()

	b := bond.Bond{Face: 1000, CouponRate: 0.05, Frequency: 2, Years: 10}
	res, err := bond.ComputeDV01(bond.DV01Input{Bond: b, Yield: 0.05})
	if err != nil {
		t.Fatalf("ComputeDV01 error: %v", err)
	}

	if res.PriceDown <= res.PriceUp {
		t.Fatalf("PriceDown %.6f should exceed PriceUp %.6f", res.PriceDown, res.PriceUp)
	}
	if got := 0.5 * (res.PriceDown - res.PriceUp); math.Abs(got-res.DV01) > 1e-12 {
		t.Fatalf("DV01 %.12f inconsistent with repriced values %.12f", res.DV01, got)
	}

	// A 10y par bond has modified duration near 7.8, so DV01 per 1bp
	// should land around 0.78 per 1000 face.
	if res.DV01 < 0.5 || res.DV01 > 1.2 {
		t.Fatalf("DV01 %.6f outside plausible range for a 10y par bond", res.DV01)
	}
}

func TestComputeDV01_BumpScaling(t *testing.T) {
	t.Parallel()

	// The central difference is first-order in the bump, so DV01/bump
	// should be nearly constant across bump sizes.
	b := bond.Bond{Face: 1000, CouponRate: 0.05, Frequency: 2, Years: 10}

	big, err := bond.ComputeDV01(bond.DV01Input{Bond: b, Yield: 0.05, Bump: 1e-4})
	if err != nil {
		t.Fatalf("ComputeDV01 error: %v", err)
	}
	small, err := bond.ComputeDV01(bond.DV01Input{Bond: b, Yield: 0.05, Bump: 1e-5})
	if err != nil {
		t.Fatalf("ComputeDV01 error: %v", err)
	}

	ratio := (big.DV01 / 1e-4) / (small.DV01 / 1e-5)
	if math.Abs(ratio-1.0) > 1e-4 {
		t.Fatalf("slope not stable across bump sizes: ratio %.8f", ratio)
	}
}

func TestComputeDV01_InvalidSchedule(t *testing.T) {
	t.Parallel()

	b := bond.Bond{Face: 1000, CouponRate: 0.05, Frequency: 0, Years: 10}
	_, err := bond.DV01(b, 0.05)
	if !errors.Is(err, bond.ErrInvalidSchedule) {
		t.Fatalf("expected ErrInvalidSchedule, got %v", err)
	}
}
