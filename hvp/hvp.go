package hvp

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/avoronov/stochtrace/autodiff"
	"github.com/avoronov/stochtrace/linop"
)

// Func is a scalar-valued differentiable function over a vector. It
// receives a tape and one leaf per coordinate, and must return a single
// scalar built from taped operations. It is evaluated afresh for every
// direction; it must not retain the tape or the leaves across calls.
type Func func(t *autodiff.Tape, x []*autodiff.Var) *autodiff.Var

// DefaultWorkers is the reference serial policy: one direction at a time.
const DefaultWorkers = 1

// Option configures the adapter.
type Option func(*options)

type options struct {
	workers int
}

// Workers sets the number of goroutines the adapter may spread a batch
// across. Every direction's computation touches only the read-only
// (function, point) pair and writes a disjoint output column, so n > 1 is
// safe. n < 1 is a programmer error and panics.
func Workers(n int) Option {
	if n < 1 {
		panic("hvp: Workers requires n >= 1")
	}
	return func(o *options) { o.workers = n }
}

func gatherOptions(opts []Option) options {
	o := options{workers: DefaultWorkers}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// operator is the concrete linop.Operator for the Hessian of f at point.
// Both fields are fixed at construction and read-only afterwards.
type operator struct {
	f       Func
	point   []float64
	workers int
}

// New returns a matrix-free linop.Operator representing the Hessian of f
// at point. The point is copied; later mutation of the caller's slice does
// not leak in. Errors: ErrNilFunc, ErrEmptyPoint.
func New(f Func, point []float64, opts ...Option) (linop.Operator, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if len(point) == 0 {
		return nil, ErrEmptyPoint
	}
	o := gatherOptions(opts)
	p := make([]float64, len(point))
	copy(p, point)
	return &operator{f: f, point: p, workers: o.workers}, nil
}

// Dims reports the Hessian's order, len(point).
func (op *operator) Dims() int { return len(op.point) }

// Apply computes H·v for each column v of batch, preserving column order
// exactly. With Workers(1) the loop is strictly serial; otherwise columns
// are distributed over an errgroup with no shared mutable state — each
// goroutine owns its tape and its output column.
func (op *operator) Apply(batch *mat.Dense) (*mat.Dense, error) {
	d := op.Dims()
	if batch == nil {
		return nil, linop.ErrEmptyBatch
	}
	r, k := batch.Dims()
	if k < 1 {
		return nil, linop.ErrEmptyBatch
	}
	if r != d {
		return nil, linop.ErrDimensionMismatch
	}

	out := mat.NewDense(d, k, nil)
	if op.workers == 1 {
		for j := 0; j < k; j++ {
			if err := op.column(batch, out, j); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(op.workers)
	for j := 0; j < k; j++ {
		g.Go(func() error {
			return op.column(batch, out, j)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// column computes the HVP for direction j of batch and writes it into
// column j of out. Reverse-over-reverse on a fresh tape:
//
//  1. y = f(x)                  — forward
//  2. g = ∇y                    — first reverse pass, differentiable
//  3. s = Σ gᵢ·vᵢ               — gradient projected onto the direction
//  4. H·v = ∇s                  — second reverse pass
func (op *operator) column(batch, out *mat.Dense, j int) error {
	d := op.Dims()
	dir := make([]float64, d)
	for i := 0; i < d; i++ {
		dir[i] = batch.At(i, j)
	}

	t := autodiff.NewTape()
	xs := make([]*autodiff.Var, d)
	for i, v := range op.point {
		xs[i] = t.Var(v)
	}

	y := op.f(t, xs)
	if y == nil {
		return ErrNonScalarOutput
	}
	grad, err := autodiff.Gradient(y, xs)
	if err != nil {
		return err
	}
	s := t.Dot(grad, dir)
	hv, err := autodiff.Gradient(s, xs)
	if err != nil {
		return err
	}
	for i := 0; i < d; i++ {
		out.Set(i, j, hv[i].Value())
	}
	return nil
}
