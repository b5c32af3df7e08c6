package linop_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/avoronov/stochtrace/linop"
)

// ExampleFromFunc wraps a diagonal matrix as a matrix-free operator and
// applies it to the standard basis, recovering the diagonal itself.
func ExampleFromFunc() {
	const d = 4
	// A = diag(2, 4, 6, 8) without ever storing a 4×4 matrix.
	op := linop.FromFunc(d, func(x *mat.Dense) (*mat.Dense, error) {
		r, c := x.Dims()
		out := mat.NewDense(r, c, nil)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				out.Set(i, j, 2*float64(i+1)*x.At(i, j))
			}
		}
		return out, nil
	})

	// Identity batch: column j is the j-th standard basis vector.
	eye := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		eye.Set(i, i, 1)
	}

	out, err := op.Apply(eye)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < d; i++ {
		fmt.Printf("%.0f ", out.At(i, i))
	}
	fmt.Println()
	// Output: 2 4 6 8
}
