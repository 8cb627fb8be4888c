package bond

import (
	"fmt"
	"math"
)

// SolverConfig holds the yield solver's numeric parameters.
type SolverConfig struct {
	// Tolerance is the absolute price tolerance for convergence. It
	// also bounds the bisection bracket width.
	Tolerance float64

	// MaxIterations caps each solver phase. It is a deterministic
	// compute budget, not a wall-clock timeout.
	MaxIterations int

	// InitialGuess seeds the Newton-Raphson phase.
	InitialGuess float64
}

// DefaultSolverConfig provides production-ready default values.
var DefaultSolverConfig = SolverConfig{
	Tolerance:     1e-10,
	MaxIterations: 100,
	InitialGuess:  0.03,
}

// Admissible yield domain. A fair yield at or beyond these bounds is
// non-economic and the solver refuses to report it.
const (
	yieldFloor   = 0.0
	yieldCeiling = 1.0
)

// derivativeThreshold is the minimum derivative magnitude for a Newton
// step. Below it the solver falls through to bisection rather than
// dividing by near-zero.
const derivativeThreshold = 1e-15

// SolverMethod identifies which phase produced the solution.
type SolverMethod string

const (
	MethodNewton    SolverMethod = "newton"
	MethodBisection SolverMethod = "bisection"
)

// YieldResult is the output of SolveYield.
type YieldResult struct {
	// Yield is the nominal annual yield on the bond's own compounding
	// basis, as a decimal.
	Yield float64
	// Iterations is the total number of solver steps taken across
	// both phases.
	Iterations int
	// Method is the phase that met tolerance.
	Method SolverMethod
}

// YieldToMaturity solves for the flat yield that reprices the bond to
// the given traded price, using the default solver configuration.
func YieldToMaturity(price float64, b Bond) (float64, error) {
	res, err := SolveYield(price, b, DefaultSolverConfig)
	if err != nil {
		return 0, err
	}
	return res.Yield, nil
}

// SolveYield finds y in (0, 1) such that pricing the bond on a flat
// curve at y reproduces price within cfg.Tolerance.
//
// The solver runs Newton-Raphson with an analytic derivative first;
// if a step leaves the admissible domain, or the derivative vanishes,
// it falls through to bisection over [0, 1]. Exhausting both phases,
// or a target price with no root in the domain, fails with
// ErrNoConvergence.
func SolveYield(price float64, b Bond, cfg SolverConfig) (YieldResult, error) {
	flows, err := Cashflows(b)
	if err != nil {
		return YieldResult{}, fmt.Errorf("SolveYield: %w", err)
	}

	iterations := 0

	// Newton-Raphson phase.
	y := cfg.InitialGuess
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		iterations++
		pv, dPdy := priceFlatAndDeriv(flows, b.Frequency, y)
		f := pv - price

		if math.Abs(f) < cfg.Tolerance {
			return YieldResult{Yield: y, Iterations: iterations, Method: MethodNewton}, nil
		}
		if math.Abs(dPdy) < derivativeThreshold {
			break
		}

		y -= f / dPdy
		if y <= yieldFloor || y >= yieldCeiling {
			// Newton wandered out of the admissible domain.
			break
		}
	}

	// Bisection phase. Price is monotonically decreasing in yield for
	// positive cashflows, so a root exists in (0, 1) only if the
	// target lies strictly between the endpoint prices.
	lo, hi := yieldFloor, yieldCeiling
	if price >= priceFlat(flows, b.Frequency, lo) || price <= priceFlat(flows, b.Frequency, hi) {
		return YieldResult{}, fmt.Errorf("SolveYield: no yield in (%g, %g) reprices to %g: %w", yieldFloor, yieldCeiling, price, ErrNoConvergence)
	}

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		iterations++
		mid := 0.5 * (lo + hi)
		if priceFlat(flows, b.Frequency, mid) > price {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < cfg.Tolerance {
			return YieldResult{Yield: mid, Iterations: iterations, Method: MethodBisection}, nil
		}
	}

	return YieldResult{}, fmt.Errorf("SolveYield: tolerance %g not met after %d iterations: %w", cfg.Tolerance, iterations, ErrNoConvergence)
}

// priceFlatAndDeriv returns (PV, dPV/dy) for a schedule discounted at
// a single flat yield y with frequency m:
//
//	PV    = Σ CF_k · (1+y/m)^(−m·t_k)
//	dPV/dy = Σ −m·t_k · CF_k · (1+y/m)^(−m·t_k) / (1+y/m)
func priceFlatAndDeriv(flows []Cashflow, m int, y float64) (float64, float64) {
	mf := float64(m)
	base := 1.0 + y/mf

	var pv, deriv float64
	for _, cf := range flows {
		df := math.Pow(base, -mf*cf.Time)
		pv += cf.Amount * df
		deriv += -mf * cf.Time * cf.Amount * df / base
	}
	return pv, deriv
}
