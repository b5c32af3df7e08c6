package hutchpp

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"

	"github.com/avoronov/stochtrace/linop"
)

// Estimate — the Hutch++ trace estimator.
//
// Description:
//
//	Estimates trace(A) for a symmetric PSD operator A of dimension d using
//	a total budget of ≈m matvec queries, split evenly across three stages.
//	Unbiased in expectation over the random probes; for PSD operators the
//	variance is provably no worse than Hutchinson at the same budget.
//
// Algorithm Outline:
//  1. Draw two independent d×k standard-normal probe matrices S and G,
//     k = m/3 (truncating division; capped at d).
//  2. Sketch AS = A·S and orthonormalize its columns into Q via thin
//     Householder QR. Any valid orthonormal factorization is acceptable:
//     column signs/order affect intermediates, not the expectation.
//  3. Subspace estimate: trace(Qᵀ·A·Q) — the exact trace of A restricted
//     to (and projected onto) span(Q).
//  4. Project G onto the orthogonal complement: P = G − Q·(Qᵀ·G).
//  5. Residual estimate: trace(Pᵀ·A·P)/k — Hutchinson on the complement,
//     scaled by the inverse probe count to stay unbiased.
//  6. Return subspace + residual.
//
// Preconditions (fail fast, never silently corrected):
//   - op non-nil                — ErrNilOperator
//   - d ≥ 1                     — ErrBadDimension
//   - d == op.Dims()            — ErrDimensionMismatch
//   - m ≥ MinBudget             — ErrBudgetTooSmall
//
// Randomness: probes come from the injected generator (WithSeed/WithRand)
// or a fresh auto-seeded one. Operator failures propagate unmodified.
//
// Complexity:
//
//	Matvecs = 3 batches of width k ≈ m queries
//	Dense   = O(d·k²) for QR and projections, O(k³) trace products
func Estimate(op linop.Operator, d, m int, opts ...Option) (float64, error) {
	if op == nil {
		return 0, ErrNilOperator
	}
	if d < 1 {
		return 0, ErrBadDimension
	}
	if op.Dims() != d {
		return 0, ErrDimensionMismatch
	}
	if m < MinBudget {
		return 0, ErrBudgetTooSmall
	}
	k := m / 3
	if k > d {
		// Width d already spans the whole space; wider probes only waste
		// queries without changing the (now exact) subspace stage.
		k = d
	}
	o := gatherOptions(opts)

	// Stage 1: probes.
	s := gaussian(o.rng, d, k)
	g := gaussian(o.rng, d, k)

	// Stage 2: sketch and orthonormalize.
	as, err := op.Apply(s)
	if err != nil {
		return 0, err
	}
	q := orthonormalize(as)

	// Stage 3: exact trace on span(Q).
	aq, err := op.Apply(q)
	if err != nil {
		return 0, err
	}
	var qtaq mat.Dense
	qtaq.Mul(q.T(), aq)
	subspace := mat.Trace(&qtaq)

	// Stage 4: deflate G against span(Q).
	var qtg, qqtg, proj mat.Dense
	qtg.Mul(q.T(), g)
	qqtg.Mul(q, &qtg)
	proj.Sub(g, &qqtg)

	// Stage 5: Hutchinson on the complement.
	ap, err := op.Apply(&proj)
	if err != nil {
		return 0, err
	}
	var ptap mat.Dense
	ptap.Mul(proj.T(), ap)
	residual := mat.Trace(&ptap) / float64(k)

	return subspace + residual, nil
}

// gaussian returns a d×k matrix of independent standard-normal entries
// drawn from rng in row-major order.
func gaussian(rng *rand.Rand, d, k int) *mat.Dense {
	data := make([]float64, d*k)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return mat.NewDense(d, k, data)
}

// orthonormalize returns a d×k matrix with orthonormal columns spanning
// the column space of a (d ≥ k), via LAPACK thin QR: Geqrf factorizes in
// place, Orgqr assembles Q from the elementary reflectors. Rank-deficient
// input still yields orthonormal columns — the surplus directions are
// arbitrary, which only degrades (never biases) the downstream estimate.
func orthonormalize(a *mat.Dense) *mat.Dense {
	q := mat.DenseCopyOf(a)
	raw := q.RawMatrix()
	tau := make([]float64, raw.Cols)

	work := make([]float64, 1)
	lapack64.Geqrf(raw, tau, work, -1) // workspace query
	work = make([]float64, int(work[0]))
	lapack64.Geqrf(raw, tau, work, len(work))

	var wq [1]float64
	lapack64.Orgqr(raw, tau, wq[:], -1) // workspace query
	if int(wq[0]) > len(work) {
		work = make([]float64, int(wq[0]))
	}
	lapack64.Orgqr(raw, tau, work, len(work))
	return q
}
