package equity

import "fmt"

// MarketCap is shares outstanding times price.
func MarketCap(sharesOutstanding, price float64) float64 {
	return sharesOutstanding * price
}

// OwnershipFraction is the fraction of the company a holding of
// sharesOwned represents.
func OwnershipFraction(sharesOwned, sharesOutstanding float64) (float64, error) {
	if sharesOutstanding <= 0 {
		return 0, fmt.Errorf("OwnershipFraction: shares outstanding must be positive, got %g: %w", sharesOutstanding, ErrInvalidArgument)
	}
	return sharesOwned / sharesOutstanding, nil
}
