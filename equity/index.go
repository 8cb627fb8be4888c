package equity

import (
	"fmt"
	"math"
)

// PriceWeightedIndex is the sum of component prices over the index
// divisor.
func PriceWeightedIndex(prices []float64, divisor float64) (float64, error) {
	if divisor == 0 {
		return 0, fmt.Errorf("PriceWeightedIndex: divisor must be nonzero: %w", ErrInvalidArgument)
	}
	sum := 0.0
	for _, p := range prices {
		sum += p
	}
	return sum / divisor, nil
}

// CapWeightedIndex rolls the previous index level forward by the ratio
// of total market caps. The adjustment j accounts for composition
// changes (additions, deletions, rights issues) between the two dates.
func CapWeightedIndex(prevIndex float64, capsNow, capsPrev []float64, j float64) (float64, error) {
	var now, prev float64
	for _, c := range capsNow {
		now += c
	}
	for _, c := range capsPrev {
		prev += c
	}
	if prev+j == 0 {
		return 0, fmt.Errorf("CapWeightedIndex: previous cap total plus adjustment must be nonzero: %w", ErrInvalidArgument)
	}
	return prevIndex * (now / (prev + j)), nil
}

// ValueLineGeometric rolls the previous index level forward by the
// geometric mean of component price relatives.
func ValueLineGeometric(prevIndex float64, pricesNow, pricesPrev []float64) (float64, error) {
	n := len(pricesNow)
	if n == 0 || n != len(pricesPrev) {
		return 0, fmt.Errorf("ValueLineGeometric: need equal nonempty price slices, got %d and %d: %w", n, len(pricesPrev), ErrInvalidArgument)
	}
	product := 1.0
	for i := range pricesNow {
		if pricesPrev[i] == 0 {
			return 0, fmt.Errorf("ValueLineGeometric: previous price at %d must be nonzero: %w", i, ErrInvalidArgument)
		}
		product *= pricesNow[i] / pricesPrev[i]
	}
	return prevIndex * math.Pow(product, 1.0/float64(n)), nil
}

// ValueLineArithmetic rolls the previous index level forward by the
// arithmetic mean of component price relatives.
func ValueLineArithmetic(prevIndex float64, pricesNow, pricesPrev []float64) (float64, error) {
	n := len(pricesNow)
	if n == 0 || n != len(pricesPrev) {
		return 0, fmt.Errorf("ValueLineArithmetic: need equal nonempty price slices, got %d and %d: %w", n, len(pricesPrev), ErrInvalidArgument)
	}
	sum := 0.0
	for i := range pricesNow {
		if pricesPrev[i] == 0 {
			return 0, fmt.Errorf("ValueLineArithmetic: previous price at %d must be nonzero: %w", i, ErrInvalidArgument)
		}
		sum += pricesNow[i] / pricesPrev[i]
	}
	return prevIndex * (sum / float64(n)), nil
}
