// Package hvp: sentinel error set. Batch-shape violations at Apply time
// reuse the linop sentinels, since the adapter is a linop.Operator.

package hvp

import "errors"

var (
	// ErrNilFunc indicates that New received a nil function.
	ErrNilFunc = errors.New("hvp: nil function")

	// ErrEmptyPoint indicates that New received an empty evaluation point;
	// the Hessian's dimension would be zero.
	ErrEmptyPoint = errors.New("hvp: empty evaluation point")

	// ErrNonScalarOutput indicates that the user function returned nil
	// instead of a scalar tape variable.
	ErrNonScalarOutput = errors.New("hvp: function returned no scalar output")
)
