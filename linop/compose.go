// Package linop: operator composition.
// Scaled and Sum build new operators out of existing ones without touching
// their internals; both preserve symmetry, and preserve positive-
// semidefiniteness when the scalar is non-negative.

package linop

import "gonum.org/v1/gonum/mat"

// Scaled returns the operator c·A. Linearity makes this a columnwise
// rescale of A's output; A itself is queried exactly once per Apply.
// PSD-ness is preserved only for c ≥ 0 (caller's responsibility, as with
// every spectral precondition in this package).
func Scaled(a Operator, c float64) (Operator, error) {
	if a == nil {
		return nil, ErrNilOperator
	}
	return FromFunc(a.Dims(), func(batch *mat.Dense) (*mat.Dense, error) {
		out, err := a.Apply(batch)
		if err != nil {
			return nil, err
		}
		out.Scale(c, out)
		return out, nil
	}), nil
}

// Sum returns the operator A+B. Both operands must agree on dimension
// (ErrDimensionMismatch otherwise); each is queried exactly once per Apply.
func Sum(a, b Operator) (Operator, error) {
	if a == nil || b == nil {
		return nil, ErrNilOperator
	}
	if a.Dims() != b.Dims() {
		return nil, ErrDimensionMismatch
	}
	return FromFunc(a.Dims(), func(batch *mat.Dense) (*mat.Dense, error) {
		av, err := a.Apply(batch)
		if err != nil {
			return nil, err
		}
		bv, err := b.Apply(batch)
		if err != nil {
			return nil, err
		}
		av.Add(av, bv)
		return av, nil
	}), nil
}
