package hvp_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/avoronov/stochtrace/autodiff"
	"github.com/avoronov/stochtrace/hvp"
	"github.com/avoronov/stochtrace/linop"
)

// meanCube is f(x) = mean(x³); its Hessian at x is diag(6·x_i/n).
func meanCube(t *autodiff.Tape, x []*autodiff.Var) *autodiff.Var {
	cubes := make([]*autodiff.Var, len(x))
	for i, xi := range x {
		cubes[i] = xi.Pow(3)
	}
	return t.Mean(cubes)
}

// identityBatch returns the d×d identity as a batch of basis directions.
func identityBatch(d int) *mat.Dense {
	eye := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		eye.Set(i, i, 1)
	}
	return eye
}

// TestNew_RejectsBadInput covers the construction sentinels.
func TestNew_RejectsBadInput(t *testing.T) {
	_, err := hvp.New(nil, []float64{1})
	assert.ErrorIs(t, err, hvp.ErrNilFunc, "nil function must error")

	_, err = hvp.New(meanCube, nil)
	assert.ErrorIs(t, err, hvp.ErrEmptyPoint, "empty point must error")
}

// TestApply_MeanCubeDiagonal is the closed-form check: for
// f(x) = mean(x³) at x = [0,1,2,3,4], applying the adapter to the identity
// batch must reproduce the exact diagonal Hessian [0, 1.2, 2.4, 3.6, 4.8].
func TestApply_MeanCubeDiagonal(t *testing.T) {
	point := []float64{0, 1, 2, 3, 4}
	op, err := hvp.New(meanCube, point)
	require.NoError(t, err)
	require.Equal(t, len(point), op.Dims(), "dimension must match the point")

	out, err := op.Apply(identityBatch(len(point)))
	require.NoError(t, err)

	want := []float64{0, 1.2, 2.4, 3.6, 4.8}
	for i := range point {
		for j := range point {
			if i == j {
				assert.InDelta(t, want[i], out.At(i, i), 1e-12, "diagonal entry %d", i)
			} else {
				assert.InDelta(t, 0.0, out.At(i, j), 1e-12, "off-diagonal (%d,%d) must vanish", i, j)
			}
		}
	}
}

// TestApply_QuadraticRecoversMatrix checks H = 2M for f(x) = xᵀMx with a
// fixed symmetric M, by applying the adapter to the identity batch.
func TestApply_QuadraticRecoversMatrix(t *testing.T) {
	const d = 6
	rng := rand.New(rand.NewPCG(11, 0xad))
	m := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			m.SetSym(i, j, rng.NormFloat64())
		}
	}

	quadratic := func(t *autodiff.Tape, x []*autodiff.Var) *autodiff.Var {
		acc := t.Const(0)
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				acc = acc.Add(x[i].Mul(x[j]).Scale(m.At(i, j)))
			}
		}
		return acc
	}

	point := make([]float64, d)
	for i := range point {
		point[i] = rng.NormFloat64() // Hessian of a quadratic is point-free
	}
	op, err := hvp.New(quadratic, point)
	require.NoError(t, err)

	out, err := op.Apply(identityBatch(d))
	require.NoError(t, err)

	var want mat.Dense
	want.Scale(2, m)
	assert.True(t, mat.EqualApprox(&want, out, 1e-10), "HVP on identity must recover 2M")
}

// TestApply_ColumnOrderMirrorsInput permutes directions and checks the
// outputs permute identically — no reordering, no dedup.
func TestApply_ColumnOrderMirrorsInput(t *testing.T) {
	point := []float64{1, 2, 3}
	op, err := hvp.New(meanCube, point)
	require.NoError(t, err)

	// Two copies of e2 and one e0, deliberately out of order and duplicated.
	batch := mat.NewDense(3, 3, []float64{
		0, 0, 1,
		0, 0, 0,
		1, 1, 0,
	})
	out, err := op.Apply(batch)
	require.NoError(t, err)

	// diag(6·x_i/3) = diag(2, 4, 6): columns must be H·e2, H·e2, H·e0.
	assert.InDelta(t, 6.0, out.At(2, 0), 1e-12)
	assert.InDelta(t, 6.0, out.At(2, 1), 1e-12, "duplicate direction must be recomputed, not deduplicated")
	assert.InDelta(t, 2.0, out.At(0, 2), 1e-12)
}

// TestApply_ParallelMatchesSerial runs the same batch with Workers(4) and
// the default serial loop; results must be identical, not merely close.
func TestApply_ParallelMatchesSerial(t *testing.T) {
	const d = 8
	rng := rand.New(rand.NewPCG(21, 0xbe))
	point := make([]float64, d)
	for i := range point {
		point[i] = rng.NormFloat64()
	}
	batch := mat.NewDense(d, 5, nil)
	for i := 0; i < d; i++ {
		for j := 0; j < 5; j++ {
			batch.Set(i, j, rng.NormFloat64())
		}
	}

	serial, err := hvp.New(meanCube, point)
	require.NoError(t, err)
	parallel, err := hvp.New(meanCube, point, hvp.Workers(4))
	require.NoError(t, err)

	a, err := serial.Apply(batch)
	require.NoError(t, err)
	b, err := parallel.Apply(batch)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, b), "parallel apply must be bitwise identical to serial")
}

// TestApply_ShapeErrors covers the linop batch sentinels on the adapter.
func TestApply_ShapeErrors(t *testing.T) {
	op, err := hvp.New(meanCube, []float64{1, 2, 3})
	require.NoError(t, err)

	_, err = op.Apply(nil)
	assert.ErrorIs(t, err, linop.ErrEmptyBatch, "nil batch must error")

	_, err = op.Apply(mat.NewDense(4, 1, nil))
	assert.ErrorIs(t, err, linop.ErrDimensionMismatch, "wrong row count must error")
}

// TestApply_NilScalarOutput ensures a function returning nil surfaces as
// ErrNonScalarOutput instead of a panic deep inside differentiation.
func TestApply_NilScalarOutput(t *testing.T) {
	broken := func(t *autodiff.Tape, x []*autodiff.Var) *autodiff.Var { return nil }
	op, err := hvp.New(broken, []float64{1})
	require.NoError(t, err)

	_, err = op.Apply(mat.NewDense(1, 1, []float64{1}))
	assert.ErrorIs(t, err, hvp.ErrNonScalarOutput, "nil scalar output must error")
}

// TestWorkers_PanicsOnNonsense verifies the option's programmer-error guard.
func TestWorkers_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { hvp.Workers(0) }, "Workers(0) must panic")
}

// TestNew_CopiesPoint ensures the evaluation point is fixed at
// construction: mutating the caller's slice must not change later HVPs.
func TestNew_CopiesPoint(t *testing.T) {
	point := []float64{1, 1, 1}
	op, err := hvp.New(meanCube, point)
	require.NoError(t, err)

	point[0] = 100 // mutate after construction

	out, err := op.Apply(identityBatch(3))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, out.At(0, 0), 1e-12, "adapter must hold a private copy of the point")
}
