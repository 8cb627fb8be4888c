package bonds_test

import (
	"math"
	"testing"

	"github.com/danielyekini/FinCraftr/bond"
	"github.com/danielyekini/FinCraftr/instruments/bonds"
	"github.com/shopspring/decimal"
)

func TestFromCashflows_RoundsToCents(t *testing.T) {
	t.Parallel()

	// 1000 * 0.0475 / 12 = 3.958333... rounds to 3.96.
	b := bond.Bond{Face: 1000, CouponRate: 0.0475, Frequency: 12, Years: 1}
	flows, err := bond.Cashflows(b)
	if err != nil {
		t.Fatalf("Cashflows error: %v", err)
	}

	rows := bonds.FromCashflows(flows)
	if len(rows) != len(flows) {
		t.Fatalf("row count %d, want %d", len(rows), len(flows))
	}
	if !rows[0].Amount.Equal(decimal.RequireFromString("3.96")) {
		t.Fatalf("coupon row amount %s, want 3.96", rows[0].Amount)
	}
	if !rows[11].Amount.Equal(decimal.RequireFromString("1003.96")) {
		t.Fatalf("final row amount %s, want 1003.96", rows[11].Amount)
	}
}

func TestToCashflows_RoundTrip(t *testing.T) {
	t.Parallel()

	b := bond.Bond{Face: 1000, CouponRate: 0.05, Frequency: 2, Years: 2}
	flows, err := bond.Cashflows(b)
	if err != nil {
		t.Fatalf("Cashflows error: %v", err)
	}

	back := bonds.ToCashflows(bonds.FromCashflows(flows))
	if len(back) != len(flows) {
		t.Fatalf("cashflow count %d, want %d", len(back), len(flows))
	}
	for i := range back {
		if back[i].Time != flows[i].Time {
			t.Fatalf("cashflow %d: time %g, want %g", i, back[i].Time, flows[i].Time)
		}
		// Amounts are exact to the cent here, so the round trip is lossless.
		if math.Abs(back[i].Amount-flows[i].Amount) > 1e-9 {
			t.Fatalf("cashflow %d: amount %g, want %g", i, back[i].Amount, flows[i].Amount)
		}
	}
}
