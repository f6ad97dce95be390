// File: lattice.go
// Role: top/bottom/equality/inclusion queries (§4.4). Because every mutator
// in this package maintains the "inter-component entries read as +∞"
// invariant on the full backing array regardless of the dense/decomposed
// flag (§4.2's ini_relation is applied eagerly, not lazily), two octagons of
// equal dimension can be compared entry-for-entry on their raw backing
// arrays without first normalizing layouts — the flag only ever changes how
// much WORK later algorithms do, never what a read returns.

package octane

import "gonum.org/v1/gonum/floats"

// closedView returns a version of o guaranteed closed, without mutating the
// receiver: the receiver itself if already Closed or Bottom, or a freshly
// closed deep copy otherwise. When WithSkipClosure is set, no closure is
// attempted and the Incomplete/Algo flags are raised instead (§4.7 flag_algo).
func (o *Octagon) closedView() (*Octagon, Result) {
	if o.IsBottomState() || o.st == stateClosed {
		return o, exactResult
	}
	if o.cfg.skipClosure {
		return o, Result{Exact: false, Incomplete: true, Algo: true}
	}
	cp := o.Copy()
	cp.Close()

	return cp, exactResult
}

// IsTop reports whether o is the top element ⊤ (§4.4 "is_top"): no
// variable carries a bound and no constraint relates any pair of variables. Decomposed mode answers in O(1)
// from the component list; dense mode must scan.
//
// Complexity: O(1) decomposed, O(n²) dense.
func (o *Octagon) IsTop() bool {
	if o.IsBottomState() {
		return false
	}
	if !o.dense {
		return len(o.comp.group) == 0
	}
	n := 2 * o.dim
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := o.at(i, j)
			if i == j {
				if v != 0 {
					return false
				}
			} else if v != inf {
				return false
			}
		}
	}

	return true
}

// IsBottom reports whether o is the distinguished empty octagon ⊥.
//
// Complexity: O(1).
func (o *Octagon) IsBottom() bool {
	return o.IsBottomState()
}

// IsEqual reports whether o and other denote the same set of points
// (§4.4 "is_equal"). Both operands are closed first (non-destructively);
// ⊥ equals only ⊥.
//
// Complexity: O(n²) (raw backing-array comparison via gonum's floats.EqualFunc).
func (o *Octagon) IsEqual(other *Octagon) (bool, Result, error) {
	if o == nil || other == nil {
		return false, exactResult, ErrNilOctagon
	}
	if o.dim != other.dim {
		return false, exactResult, ErrDimensionMismatch
	}
	if o.IsBottomState() || other.IsBottomState() {
		return o.IsBottomState() == other.IsBottomState(), exactResult, nil
	}

	a, ra := o.closedView()
	b, rb := other.closedView()
	res := ra.merge(rb)

	eq := floats.EqualFunc(a.m, b.m, func(x, y float64) bool {
		if isPosInf(x) && isPosInf(y) {
			return true
		}

		return x == y
	})

	return eq, res, nil
}

// IsLeq reports whether o ⊑ other, i.e. γ(o) ⊆ γ(other) (§4.4 "is_leq").
// o is closed first (non-destructively); ⊥ is ⊑ everything, and nothing
// non-bottom is ⊑ ⊥.
//
// Complexity: O(n²).
func (o *Octagon) IsLeq(other *Octagon) (bool, Result, error) {
	if o == nil || other == nil {
		return false, exactResult, ErrNilOctagon
	}
	if o.dim != other.dim {
		return false, exactResult, ErrDimensionMismatch
	}
	if o.IsBottomState() {
		return true, exactResult, nil
	}
	if other.IsBottomState() {
		return false, exactResult, nil
	}

	a, res := o.closedView()
	for idx, bv := range other.m {
		if a.m[idx] > bv {
			return false, res, nil
		}
	}

	return true, res, nil
}

// isPosInf reports whether v is the +∞ sentinel.
func isPosInf(v float64) bool {
	return v == inf
}
