package forwards_test

import (
	"math"
	"testing"

	"github.com/danielyekini/FinCraftr/forwards"
)

func almostEqual(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %.12f, want %.12f (tolerance %g)", got, want, tol)
	}
}

func TestForwardPrices(t *testing.T) {
	t.Parallel()

	almostEqual(t, forwards.PriceNoDividend(100, 0.05, 1), 100*math.Exp(0.05), 1e-10)
	almostEqual(t, forwards.PriceWithDividend(100, 5, 0.05, 1), 95*math.Exp(0.05), 1e-10)
	almostEqual(t, forwards.PriceContYield(100, 0.05, 0.02, 1), 100*math.Exp(0.03), 1e-10)

	// Zero carry: forward equals spot.
	almostEqual(t, forwards.PriceNoDividend(100, 0, 2), 100, 1e-12)
	almostEqual(t, forwards.PriceContYield(100, 0.04, 0.04, 3), 100, 1e-12)
}
