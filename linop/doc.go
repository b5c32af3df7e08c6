// Package linop defines the matrix-free Linear Operator abstraction:
// a symmetric matrix seen only through batched matrix-vector products.
//
// 🚀 What is a Linear Operator?
//
//	A pure function from a d×k batch of column vectors to a d×k batch of
//	outputs, where each output column equals the (never materialized)
//	underlying matrix applied to the corresponding input column.  It is
//	the only access path the estimators in hutchpp ever use, which keeps
//	per-query cost at O(d) instead of O(d²) storage.
//
// ✨ Key constructors:
//   - FromFunc   — wrap an arbitrary matvec closure (the general case)
//   - FromMatrix — wrap a dense gonum matrix (tests, small problems)
//   - Scaled     — c·A without touching A's internals
//   - Sum        — A+B as a single operator
//
// Contract (all constructors):
//
//   - same-shape in/out: a d×k batch maps to a d×k batch
//   - columnwise linearity: Apply(X+Y) = Apply(X)+Apply(Y), Apply(cX) = c·Apply(X)
//   - no side effects, no mutable state between calls
//   - symmetry / positive-semidefiniteness of the represented matrix is a
//     precondition of the downstream estimators, NOT a checked error here
//
// ⚙️ Usage:
//
//	import "github.com/avoronov/stochtrace/linop"
//
//	// A = diag(1..d), matrix-free.
//	op := linop.FromFunc(d, func(x *mat.Dense) (*mat.Dense, error) {
//	    r, c := x.Dims()
//	    out := mat.NewDense(r, c, nil)
//	    for i := 0; i < r; i++ {
//	        for j := 0; j < c; j++ {
//	            out.Set(i, j, float64(i+1)*x.At(i, j))
//	        }
//	    }
//	    return out, nil
//	})
//
// Complexity: FromMatrix.Apply is O(d²·k); FromFunc defers entirely to the
// wrapped closure.
package linop
