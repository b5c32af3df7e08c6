package linop

import "gonum.org/v1/gonum/mat"

// Operator is the matrix-free view of a symmetric d×d matrix.
//
// Apply maps a d×k batch of column vectors to the d×k batch of products
// with the underlying matrix, computed without forming that matrix.
// Implementations must be columnwise linear, free of side effects, and
// tolerate any k ≥ 1. Symmetry and positive-semidefiniteness of the
// represented matrix are preconditions of the trace estimators, not
// checked errors: violating them yields estimates with no unbiasedness
// or non-negativity guarantee.
//
// Any type offering this single method satisfies the abstraction; no
// hierarchy is needed.
type Operator interface {
	// Dims reports d, the ambient dimension the operator acts on.
	Dims() int

	// Apply returns the operator applied to each column of batch.
	// The result has exactly the shape of batch. Errors:
	//   - ErrDimensionMismatch — batch row count ≠ Dims()
	//   - ErrEmptyBatch        — nil batch or zero columns
	// plus anything the underlying matvec itself reports.
	Apply(batch *mat.Dense) (*mat.Dense, error)
}

// MatVecFunc is the shape of a user-supplied batched matrix-vector product.
// It receives a d×k batch and must return a d×k batch; column j of the
// output is the matrix applied to column j of the input.
type MatVecFunc func(batch *mat.Dense) (*mat.Dense, error)

// funcOperator wraps an opaque matvec closure. The closure is the whole
// state; nothing is cached between calls.
type funcOperator struct {
	dim int
	fn  MatVecFunc
}

// FromFunc wraps an arbitrary batched matvec closure as an Operator of
// dimension dim. The closure is trusted to be linear and to represent a
// symmetric matrix; both are preconditions, not checked here.
//
// Returns ErrBadDimension for dim < 1 and ErrNilOperator for a nil fn,
// reported lazily by Apply so that the constructor itself stays a plain
// value expression (mirrors make_linear_operator of the functional API).
func FromFunc(dim int, fn MatVecFunc) Operator {
	return &funcOperator{dim: dim, fn: fn}
}

// Dims reports the ambient dimension.
func (o *funcOperator) Dims() int { return o.dim }

// Apply validates the batch shape, delegates to the wrapped closure, and
// validates the result shape so malformed closures fail fast instead of
// corrupting downstream estimates.
func (o *funcOperator) Apply(batch *mat.Dense) (*mat.Dense, error) {
	if o.fn == nil {
		return nil, ErrNilOperator
	}
	if o.dim < 1 {
		return nil, ErrBadDimension
	}
	if err := checkBatch(batch, o.dim); err != nil {
		return nil, err
	}
	out, err := o.fn(batch)
	if err != nil {
		return nil, err
	}
	if err = checkBatch(out, o.dim); err != nil {
		return nil, err
	}
	br, bc := batch.Dims()
	if or, oc := out.Dims(); or != br || oc != bc {
		return nil, ErrDimensionMismatch
	}
	return out, nil
}

// matrixOperator is the dense-backed operator used in tests and for small
// problems where O(d²) storage is acceptable.
type matrixOperator struct {
	a *mat.Dense
}

// FromMatrix wraps a dense square matrix as an Operator. The matrix is
// copied once at construction; later mutation of a does not leak in.
// Returns ErrNilOperator for nil input and ErrNonSquare for r ≠ c.
func FromMatrix(a mat.Matrix) (Operator, error) {
	if a == nil {
		return nil, ErrNilOperator
	}
	r, c := a.Dims()
	if r != c {
		return nil, ErrNonSquare
	}
	if r < 1 {
		return nil, ErrBadDimension
	}
	return &matrixOperator{a: mat.DenseCopyOf(a)}, nil
}

// Dims reports the ambient dimension.
func (o *matrixOperator) Dims() int {
	r, _ := o.a.Dims()
	return r
}

// Apply computes A·batch densely. O(d²·k).
func (o *matrixOperator) Apply(batch *mat.Dense) (*mat.Dense, error) {
	if err := checkBatch(batch, o.Dims()); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Mul(o.a, batch)
	return &out, nil
}

// checkBatch enforces the shared Apply preconditions: non-nil, at least
// one column, exactly dim rows.
func checkBatch(batch *mat.Dense, dim int) error {
	if batch == nil {
		return ErrEmptyBatch
	}
	r, c := batch.Dims()
	if c < 1 {
		return ErrEmptyBatch
	}
	if r != dim {
		return ErrDimensionMismatch
	}
	return nil
}
