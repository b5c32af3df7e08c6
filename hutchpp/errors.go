// Package hutchpp: sentinel error set. All estimator preconditions fail
// fast with one of these; tests match via errors.Is. Numerical instability
// is never an error (see doc.go).

package hutchpp

import "errors"

var (
	// ErrNilOperator indicates a nil Operator was passed to an estimator.
	ErrNilOperator = errors.New("hutchpp: nil operator")

	// ErrBadDimension is returned when d < 1.
	ErrBadDimension = errors.New("hutchpp: dimension must be positive")

	// ErrDimensionMismatch indicates that the caller's d disagrees with the
	// operator's own dimension. Mismatched shapes are a caller error, never
	// silently corrected.
	ErrDimensionMismatch = errors.New("hutchpp: dimension disagrees with operator")

	// ErrBudgetTooSmall is returned when the query budget cannot form
	// non-empty probe matrices (m < MinBudget for Estimate, m < 1 for
	// Hutchinson).
	ErrBudgetTooSmall = errors.New("hutchpp: query budget too small")
)
