package autodiff

// Tape records a scalar computation as an append-only sequence of nodes.
// One tape corresponds to one independent evaluation: build leaves with
// Var/Const, combine them with the arithmetic methods, then differentiate
// with Gradient. A Tape is not safe for concurrent use; independent
// computations get independent tapes (which is also what makes per-tape
// parallelism trivial in callers).
type Tape struct {
	nodes []*Var
}

// Var is a scalar value recorded on a Tape. Leaves carry just a value;
// derived Vars additionally remember their parents and how to route an
// adjoint back to them. Vars are immutable after creation.
type Var struct {
	tape    *Tape
	idx     int
	val     float64
	parents []*Var
	// back maps the adjoint of this node to adjoint contributions for each
	// parent, in parent order. The contributions are built from taped
	// operations, which is what keeps gradients differentiable.
	back func(adj *Var) []*Var
}

// NewTape returns an empty tape.
func NewTape() *Tape {
	return &Tape{}
}

// node appends a new Var to the tape and returns it.
func (t *Tape) node(val float64, parents []*Var, back func(adj *Var) []*Var) *Var {
	v := &Var{tape: t, idx: len(t.nodes), val: val, parents: parents, back: back}
	t.nodes = append(t.nodes, v)
	return v
}

// Var records a differentiable leaf holding val.
func (t *Tape) Var(val float64) *Var {
	return t.node(val, nil, nil)
}

// Const records a fixed scalar. Structurally identical to a leaf; the name
// documents that nobody intends to differentiate with respect to it.
func (t *Tape) Const(val float64) *Var {
	return t.node(val, nil, nil)
}

// Value reports the scalar held by v.
func (v *Var) Value() float64 {
	return v.val
}

// Len reports the number of nodes recorded so far. Useful for sizing
// expectations in tests and diagnostics.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// Gradient computes ∂y/∂x for every x in xs by reverse accumulation over
// y's tape. The returned Vars live on the same tape and are built from
// taped operations, so they can be combined and differentiated again —
// nesting two Gradient calls yields exact second derivatives.
//
// Targets that do not influence y get a zero gradient. Errors:
//   - ErrNilOutput   — y is nil (e.g. a user function returned nil)
//   - ErrNilVar      — xs contains a nil Var
//   - ErrTapeMismatch — xs contains a Var from another tape
func Gradient(y *Var, xs []*Var) ([]*Var, error) {
	if y == nil {
		return nil, ErrNilOutput
	}
	t := y.tape
	for _, x := range xs {
		if x == nil {
			return nil, ErrNilVar
		}
		if x.tape != t {
			return nil, ErrTapeMismatch
		}
	}

	// Snapshot the tape length: only nodes that already exist can influence
	// y. Nodes appended below belong to the adjoint computation itself.
	n := len(t.nodes)
	adjoint := make([]*Var, n)
	adjoint[y.idx] = t.Const(1)

	// Reverse creation order is a valid reverse topological order: parents
	// always precede children on an append-only tape.
	for i := n - 1; i >= 0; i-- {
		v := t.nodes[i]
		adj := adjoint[i]
		if adj == nil || v.back == nil {
			continue
		}
		contribs := v.back(adj)
		for j, p := range v.parents {
			if adjoint[p.idx] == nil {
				adjoint[p.idx] = contribs[j]
			} else {
				adjoint[p.idx] = adjoint[p.idx].Add(contribs[j])
			}
		}
	}

	grads := make([]*Var, len(xs))
	for i, x := range xs {
		if g := adjoint[x.idx]; g != nil {
			grads[i] = g
		} else {
			grads[i] = t.Const(0)
		}
	}
	return grads, nil
}
