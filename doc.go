// Package stochtrace estimates the trace of large, implicitly-defined
// symmetric positive-semidefinite matrices — typically Hessians of scalar
// functions — without ever materializing them, using only matrix-vector
// products.
//
// 🚀 What is stochtrace?
//
//	A small, matrix-free numerical library that brings together:
//		• linop/    — the Linear Operator abstraction: a matrix seen only
//		              through batched matrix-vector products
//		• autodiff/ — a reverse-mode scalar tape whose backward pass is
//		              itself differentiable (reverse-over-reverse)
//		• hvp/      — Hessian-vector products for arbitrary differentiable
//		              scalar functions, exposed as a Linear Operator
//		• hutchpp/  — the Hutch++ variance-reduced randomized trace
//		              estimator, plus the classical Hutchinson baseline
//
// ✨ Why choose stochtrace?
//
//   - Matrix-free – O(d) cost per matvec query, never O(d²) storage
//   - Unbiased – Hutch++ estimates are exact in expectation, with variance
//     provably no worse than Hutchinson at the same query budget
//   - Reproducible – randomness is injected explicitly (seed or generator),
//     never hidden in package-global state
//   - Pure Go on gonum – dense kernels delegate to gonum/mat and LAPACK
//
// Typical flow:
//
//	op, _ := hvp.New(f, point)            // Hessian of f at point, matrix-free
//	tr, _ := hutchpp.Estimate(op, d, m,   // ≈m matvec queries in total
//	    hutchpp.WithSeed(42))
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
package stochtrace
