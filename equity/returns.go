package equity

import (
	"fmt"
	"math"
)

// SimpleReturn is the arithmetic return from prev to p: p/prev − 1.
func SimpleReturn(p, prev float64) (float64, error) {
	if prev == 0 {
		return 0, fmt.Errorf("SimpleReturn: previous price must be nonzero: %w", ErrInvalidArgument)
	}
	return p/prev - 1.0, nil
}

// LogReturn is the continuously compounded return ln(p/prev). Both
// prices must be positive.
func LogReturn(p, prev float64) (float64, error) {
	if p <= 0 || prev <= 0 {
		return 0, fmt.Errorf("LogReturn: prices must be positive, got %g and %g: %w", p, prev, ErrInvalidArgument)
	}
	return math.Log(p / prev), nil
}
