package hutchpp

import "github.com/avoronov/stochtrace/linop"

// Hutchinson — the classical single-stage trace estimator.
//
// Description:
//
//	Estimates trace(A) as the mean of gᵀ·A·g over m independent standard-
//	normal probes g, issued as one d×m batch: trace(Gᵀ·A·G)/m. Unbiased
//	for any symmetric A; variance 2‖A‖²_F/m for Gaussian probes, which
//	Hutch++ improves on by deflating the dominant subspace first. Kept as
//	the baseline the variance-reduction claim is measured against.
//
// Preconditions mirror Estimate, except any m ≥ 1 is viable.
//
// Complexity: one batch of m matvec queries, O(d·m²) dense side work.
func Hutchinson(op linop.Operator, d, m int, opts ...Option) (float64, error) {
	if op == nil {
		return 0, ErrNilOperator
	}
	if d < 1 {
		return 0, ErrBadDimension
	}
	if op.Dims() != d {
		return 0, ErrDimensionMismatch
	}
	if m < 1 {
		return 0, ErrBudgetTooSmall
	}
	o := gatherOptions(opts)

	g := gaussian(o.rng, d, m)
	ag, err := op.Apply(g)
	if err != nil {
		return 0, err
	}
	// trace(Gᵀ·A·G)/m without forming the full m×m product: only the
	// diagonal entries Σ_i G[i,j]·AG[i,j] are needed.
	var sum float64
	for j := 0; j < m; j++ {
		for i := 0; i < d; i++ {
			sum += g.At(i, j) * ag.At(i, j)
		}
	}
	return sum / float64(m), nil
}
