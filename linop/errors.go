// Package linop: sentinel error set.
// All constructors and Apply implementations MUST return these sentinels on
// user-triggered conditions; tests match them via errors.Is. Panics are
// reserved for programmer errors in private helpers.

package linop

import "errors"

var (
	// ErrNilOperator indicates a nil Operator (or nil wrapped closure/matrix)
	// was passed where a concrete operator is required.
	ErrNilOperator = errors.New("linop: nil operator")

	// ErrBadDimension is returned when a requested operator dimension is
	// not strictly positive.
	ErrBadDimension = errors.New("linop: dimension must be positive")

	// ErrNonSquare signals that FromMatrix received a non-square matrix.
	// Operators represent square (symmetric) matrices only.
	ErrNonSquare = errors.New("linop: matrix is not square")

	// ErrDimensionMismatch indicates that a batch's row count does not equal
	// the operator dimension, or that two composed operators disagree on
	// their dimension.
	ErrDimensionMismatch = errors.New("linop: dimension mismatch")

	// ErrEmptyBatch is returned when Apply receives a nil batch or a batch
	// with zero columns.
	ErrEmptyBatch = errors.New("linop: empty batch")
)
