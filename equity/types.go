// Package equity provides closed-form equity analytics: market cap
// and ownership, returns, dividend discount valuation, index levels
// and holding-period profit.
package equity

import "errors"

// ErrInvalidArgument is returned when a required numeric precondition
// is violated (zero divisor, growth rate at or above the required
// return, and the like).
var ErrInvalidArgument = errors.New("invalid argument")
