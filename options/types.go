// Package options provides vanilla option payoff, profit, put-call
// parity and one-period binomial pricing formulas.
package options

import "errors"

// ErrInvalidArgument is returned when a required numeric precondition
// is violated (degenerate binomial states, zero spot and the like).
var ErrInvalidArgument = errors.New("invalid argument")
