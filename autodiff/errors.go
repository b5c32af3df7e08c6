// Package autodiff: sentinel error set for the Gradient API boundary.
// Arithmetic methods never return errors; their misuse (mixing tapes) is a
// programmer error and panics instead.

package autodiff

import "errors"

var (
	// ErrNilOutput indicates that Gradient received a nil output Var,
	// typically a user function that returned nil instead of a scalar.
	ErrNilOutput = errors.New("autodiff: nil output variable")

	// ErrNilVar indicates that the slice of differentiation targets
	// contains a nil Var.
	ErrNilVar = errors.New("autodiff: nil input variable")

	// ErrTapeMismatch indicates a differentiation target recorded on a
	// different tape than the output.
	ErrTapeMismatch = errors.New("autodiff: variables belong to different tapes")
)
