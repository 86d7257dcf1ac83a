package calculation

import "errors"

var (
	// ErrInvalidOperationType is returned for operation types outside the
	// closed {rental, purchase} set.
	ErrInvalidOperationType = errors.New("invalid operation type: use \"rental\" or \"purchase\"")

	// ErrNotConverged signals that the IRR of a flow sequence is undefined
	// or the solver failed to converge. Callers must treat it as
	// "infeasible", never as a zero rate.
	ErrNotConverged = errors.New("irr did not converge")

	// ErrNoRootFound is returned when the payment grid shows no sign
	// change anywhere, i.e. no payment in the configured range reproduces
	// the target rate.
	ErrNoRootFound = errors.New("no payment found for the target rate in the search range")
)
