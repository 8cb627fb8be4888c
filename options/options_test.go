package options_test

import (
	"errors"
	"math"
	"testing"

	"github.com/danielyekini/FinCraftr/options"
)

func almostEqual(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %.12f, want %.12f (tolerance %g)", got, want, tol)
	}
}

func TestPayoffs(t *testing.T) {
	t.Parallel()

	almostEqual(t, options.CallPayoff(105, 100), 5, 1e-12)
	almostEqual(t, options.CallPayoff(95, 100), 0, 1e-12)
	almostEqual(t, options.PutPayoff(95, 100), 5, 1e-12)
	almostEqual(t, options.PutPayoff(105, 100), 0, 1e-12)
	almostEqual(t, options.AsianCallPayoff(102.5, 100), 2.5, 1e-12)
	almostEqual(t, options.AsianCallPayoff(98, 100), 0, 1e-12)
}

func TestPutCallParity(t *testing.T) {
	t.Parallel()

	s, k, r, tau := 100.0, 100.0, 0.05, 1.0
	p := 3.0
	// C - P = S - K·e^(-rτ) when no dividends.
	c := p + s - k*math.Exp(-r*tau)

	if !options.CheckPutCallParity(c, p, s, k, r, tau, 0) {
		t.Fatal("parity should hold for consistent prices")
	}
	if options.CheckPutCallParity(c+0.01, p, s, k, r, tau, 0) {
		t.Fatal("parity should fail for a mispriced call")
	}

	// With a discrete dividend D, the call is cheaper by D.
	d := 2.0
	if !options.CheckPutCallParity(c-d, p, s, k, r, tau, d) {
		t.Fatal("parity should hold with discrete dividend")
	}
}

func TestPutCallParityYield(t *testing.T) {
	t.Parallel()

	s, k, r, q, tau := 100.0, 100.0, 0.05, 0.02, 1.0
	p := 3.0
	c := p + s*math.Exp((q-r)*tau) - k*math.Exp(-r*tau)

	if !options.CheckPutCallParityYield(c, p, s, k, r, tau, q) {
		t.Fatal("parity should hold for consistent prices")
	}
	if options.CheckPutCallParityYield(c, p+0.01, s, k, r, tau, q) {
		t.Fatal("parity should fail for a mispriced put")
	}
}

func TestProfits(t *testing.T) {
	t.Parallel()

	almostEqual(t, options.CallProfit(110, 100, 4, 0, 1), 6, 1e-12)
	almostEqual(t, options.CallProfit(95, 100, 4, 0.05, 1), -4*math.Exp(0.05), 1e-12)
	almostEqual(t, options.PutProfit(90, 100, 3, 0, 1), 7, 1e-12)
}

func TestBinomialReplication(t *testing.T) {
	t.Parallel()

	s0, su, sd, k, r := 100.0, 110.0, 90.0, 100.0, 0.0

	cu, cd := options.BinomialCallPayoffs(su, sd, k)
	almostEqual(t, cu, 10, 1e-12)
	almostEqual(t, cd, 0, 1e-12)

	delta, err := options.HedgeRatio(cu, cd, su, sd)
	if err != nil {
		t.Fatalf("HedgeRatio error: %v", err)
	}
	almostEqual(t, delta, 0.5, 1e-12)

	loan, err := options.ReplicatingLoan(cu, cd, su, sd, r)
	if err != nil {
		t.Fatalf("ReplicatingLoan error: %v", err)
	}
	almostEqual(t, loan, 45, 1e-12)

	// Replication and risk-neutral pricing must agree.
	almostEqual(t, options.OnePeriodPrice(s0, delta, loan, r, 1), 5, 1e-12)

	rn, err := options.RiskNeutralPrice(s0, su, sd, cu, cd, r, 1)
	if err != nil {
		t.Fatalf("RiskNeutralPrice error: %v", err)
	}
	almostEqual(t, rn, 5, 1e-12)
}

func TestBinomialDegenerateStates(t *testing.T) {
	t.Parallel()

	if _, err := options.HedgeRatio(5, 5, 100, 100); !errors.Is(err, options.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := options.ReplicatingLoan(5, 5, 100, 100, 0.05); !errors.Is(err, options.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := options.RiskNeutralPrice(0, 110, 90, 10, 0, 0.05, 1); !errors.Is(err, options.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for zero spot, got %v", err)
	}
	if _, err := options.RiskNeutralPrice(100, 105, 105, 5, 5, 0.05, 1); !errors.Is(err, options.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for equal states, got %v", err)
	}
}
