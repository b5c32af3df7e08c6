// Package autodiff: arithmetic operations on tape variables.
// Every method records one node (plus whatever its backward closure records
// later, during Gradient). Local derivatives are expressed through the same
// taped operations so the adjoint computation stays differentiable.

package autodiff

import "math"

// sameTape guards binary operations. Mixing tapes is a programmer error:
// the resulting graph would be unwalkable, so this panics rather than
// returning a corrupt Var.
func sameTape(x, y *Var) {
	if x.tape != y.tape {
		panic("autodiff: variables belong to different tapes")
	}
}

// Add returns x + y.
func (x *Var) Add(y *Var) *Var {
	sameTape(x, y)
	return x.tape.node(x.val+y.val, []*Var{x, y}, func(adj *Var) []*Var {
		return []*Var{adj, adj}
	})
}

// Sub returns x − y.
func (x *Var) Sub(y *Var) *Var {
	sameTape(x, y)
	return x.tape.node(x.val-y.val, []*Var{x, y}, func(adj *Var) []*Var {
		return []*Var{adj, adj.Neg()}
	})
}

// Mul returns x · y.
func (x *Var) Mul(y *Var) *Var {
	sameTape(x, y)
	return x.tape.node(x.val*y.val, []*Var{x, y}, func(adj *Var) []*Var {
		return []*Var{adj.Mul(y), adj.Mul(x)}
	})
}

// Div returns x / y. IEEE semantics: y == 0 yields ±Inf or NaN values,
// never an error.
func (x *Var) Div(y *Var) *Var {
	sameTape(x, y)
	return x.tape.node(x.val/y.val, []*Var{x, y}, func(adj *Var) []*Var {
		return []*Var{
			adj.Div(y),
			adj.Mul(x).Div(y.Mul(y)).Neg(),
		}
	})
}

// Neg returns −x.
func (x *Var) Neg() *Var {
	return x.tape.node(-x.val, []*Var{x}, func(adj *Var) []*Var {
		return []*Var{adj.Neg()}
	})
}

// Scale returns c·x for a plain scalar c.
func (x *Var) Scale(c float64) *Var {
	return x.tape.node(c*x.val, []*Var{x}, func(adj *Var) []*Var {
		return []*Var{adj.Scale(c)}
	})
}

// Pow returns x^p for a plain scalar exponent p, with derivative
// p·x^(p−1). Non-integer p with negative x follows math.Pow (NaN).
func (x *Var) Pow(p float64) *Var {
	return x.tape.node(math.Pow(x.val, p), []*Var{x}, func(adj *Var) []*Var {
		return []*Var{adj.Mul(x.Pow(p - 1)).Scale(p)}
	})
}

// Exp returns e^x. The derivative is the output itself, so the backward
// closure references the freshly created node.
func (x *Var) Exp() *Var {
	out := x.tape.node(math.Exp(x.val), []*Var{x}, nil)
	out.back = func(adj *Var) []*Var {
		return []*Var{adj.Mul(out)}
	}
	return out
}

// Log returns the natural logarithm of x. Non-positive x yields NaN/−Inf
// values per math.Log.
func (x *Var) Log() *Var {
	return x.tape.node(math.Log(x.val), []*Var{x}, func(adj *Var) []*Var {
		return []*Var{adj.Div(x)}
	})
}

// Sqrt returns √x, with derivative 1/(2√x) expressed through the output.
func (x *Var) Sqrt() *Var {
	out := x.tape.node(math.Sqrt(x.val), []*Var{x}, nil)
	out.back = func(adj *Var) []*Var {
		return []*Var{adj.Div(out.Scale(2))}
	}
	return out
}

// Sin returns sin(x).
func (x *Var) Sin() *Var {
	return x.tape.node(math.Sin(x.val), []*Var{x}, func(adj *Var) []*Var {
		return []*Var{adj.Mul(x.Cos())}
	})
}

// Cos returns cos(x).
func (x *Var) Cos() *Var {
	return x.tape.node(math.Cos(x.val), []*Var{x}, func(adj *Var) []*Var {
		return []*Var{adj.Mul(x.Sin()).Neg()}
	})
}

// Sum returns Σ xs[i], or Const(0) for an empty slice.
func (t *Tape) Sum(xs []*Var) *Var {
	acc := t.Const(0)
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// Mean returns (Σ xs[i]) / len(xs). An empty slice is a programmer error
// and panics.
func (t *Tape) Mean(xs []*Var) *Var {
	if len(xs) == 0 {
		panic("autodiff: mean of empty slice")
	}
	return t.Sum(xs).Scale(1 / float64(len(xs)))
}

// Dot returns Σ w[i]·xs[i] for plain scalar weights w. Lengths must agree
// (programmer error, panics). The common use is contracting a gradient
// with a fixed direction vector before a second reverse pass.
func (t *Tape) Dot(xs []*Var, w []float64) *Var {
	if len(xs) != len(w) {
		panic("autodiff: dot length mismatch")
	}
	acc := t.Const(0)
	for i, x := range xs {
		acc = acc.Add(x.Scale(w[i]))
	}
	return acc
}
