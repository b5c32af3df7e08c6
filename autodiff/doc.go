// Package autodiff implements reverse-mode automatic differentiation on a
// scalar gradient tape whose backward pass is itself recorded on the tape,
// so gradients can be differentiated again (reverse-over-reverse).
//
// 🚀 What is a differentiable tape?
//
//	Every arithmetic operation on a Var appends a node to its Tape with the
//	links needed for reverse accumulation. Gradient walks the tape backwards
//	— but instead of accumulating plain numbers, it accumulates Vars built
//	from the same taped operations. The returned gradient is therefore a
//	first-class citizen of the tape: calling Gradient on an expression of
//	it yields exact second derivatives. Two nested reverse passes are
//	exactly what a Hessian-vector product needs (see package hvp).
//
// ✨ Key surface:
//   - Tape, NewTape      — one tape per independent computation
//   - Tape.Var / Const   — differentiable leaves vs fixed scalars
//   - Var.Add/Sub/Mul/Div/Neg/Scale/Pow/Exp/Log/Sqrt/Sin/Cos
//   - Tape.Sum/Mean/Dot  — common reductions
//   - Gradient(y, xs)    — ∂y/∂x for each x, as differentiable Vars
//
// ⚙️ Usage:
//
//	t := autodiff.NewTape()
//	x := t.Var(2.0)
//	y := x.Mul(x).Add(x.Scale(3)) // y = x² + 3x
//	g, _ := autodiff.Gradient(y, []*autodiff.Var{x})
//	fmt.Println(g[0].Value())     // 2x+3 = 7
//
// Numeric policy: domain violations of math functions (Log of a negative,
// Sqrt of a negative, …) follow IEEE semantics — NaN/Inf propagate as
// values, never as errors, exactly as the underlying math package does.
// Mixing Vars from different tapes is a programmer error and panics.
//
// Complexity: forward ops are O(1) amortized; Gradient is O(n) in tape
// length, and each nested pass multiplies tape length by a small constant.
package autodiff
