// Package hvp turns an arbitrary differentiable scalar function into a
// matrix-free linear operator for its Hessian at a fixed evaluation point,
// via Hessian-vector products (HVPs).
//
// 🚀 What is an HVP?
//
//	The product H(x₀)·v of a function's Hessian with a direction v,
//	computed without ever forming the Hessian: two nested reverse-mode
//	passes on an autodiff tape. The first pass yields the gradient; the
//	gradient's projection onto v is differentiated a second time, and the
//	result is exactly H·v at O(d) memory.
//
// ✨ Key surface:
//   - Func          — the user's scalar function over tape variables
//   - New(f, point) — a linop.Operator for the Hessian of f at point
//   - Workers(n)    — optional bounded parallelism across batch columns
//
// Contract: batch columns are processed independently, one direction at a
// time — the second-order differentiation primitive is not batch-aware —
// and output column order exactly mirrors input order. The evaluation
// point and the function are read-only for the operator's lifetime.
// Failures raised inside f (or by differentiation of its tape) propagate
// unmodified; nothing is caught, translated or retried.
//
// ⚙️ Usage:
//
//	f := func(t *autodiff.Tape, x []*autodiff.Var) *autodiff.Var {
//	    cubes := make([]*autodiff.Var, len(x))
//	    for i, xi := range x {
//	        cubes[i] = xi.Pow(3)
//	    }
//	    return t.Mean(cubes) // f(x) = mean(x³)
//	}
//	op, err := hvp.New(f, []float64{0, 1, 2, 3, 4})
//	out, err := op.Apply(directions) // H·v per column
//
// Complexity: one HVP costs a small constant times the cost of evaluating
// f; a d×k batch costs k of those, divided across Workers(n) goroutines.
package hvp
