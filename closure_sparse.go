// File: closure_sparse.go
// Role: Strong closure on the decomposed-sparse layout (§4.3 "Strong closure
// (decomposed-sparse)"): run closure independently on each component's
// induced sub-matrix. Components are independent because inter-component
// entries are implicitly +∞ and cannot participate in any shortest path that
// reduces intra-component entries, so this is sound without ever touching
// the cross-component region.

package octane

// closeDecomposed closes every component's signed-index sub-matrix in turn.
// An octagon with an empty component list (e.g. top) closes in O(1).
//
// Complexity: Time O(Σ kᵢ³) where kᵢ is component size; auxiliary space
// O(n) for the per-component signed-index buffer (bounded by the largest
// component, never more than 2n).
func (o *Octagon) closeDecomposed() bool {
	for _, group := range o.comp.iterate() {
		idx := signedIndicesOf(group)
		if !o.closeSubset(idx) {
			return false
		}
	}

	return true
}

// closeSubset runs the classical k→i→j relaxation restricted to idx, then
// tightens and checks emptiness over the same idx. Shared by the decomposed
// closure above and the incremental closure in closure_incremental.go.
func (o *Octagon) closeSubset(idx []int) bool {
	var ik, kj, cand float64
	for _, k := range idx {
		for _, i := range idx {
			ik = o.at(i, k)
			if ik == inf {
				continue
			}
			for _, j := range idx {
				kj = o.at(k, j)
				if kj == inf {
					continue
				}
				cand = ik + kj
				if cand < o.at(i, j) {
					o.set(i, j, cand)
				}
			}
		}
	}

	return o.tightenAndCheck(idx)
}

// signedIndicesOf expands a sorted list of variable indices into their
// signed-index pairs (2v, 2v+1), in ascending order.
func signedIndicesOf(vars []int) []int {
	idx := make([]int, 0, 2*len(vars))
	for _, v := range vars {
		idx = append(idx, 2*v, 2*v+1)
	}

	return idx
}
