// File: closure_incremental.go
// Role: Incremental closure (§4.3 "Incremental closure"): when a single new
// constraint is added touching variables {i} or {i,j}, re-run the relaxation
// only over the signed indices of the affected component(s). Correctness
// relies on the input being already closed before the new constraint landed.

package octane

// closeIncremental re-closes only the components touched by vars (one
// variable for a unary constraint, two for a binary one). In dense mode
// there is no component list to bound the affected region, so this falls
// back to a full closeDense — still correct, just without the asymptotic
// win; decomposed mode is where this pays off.
//
// Complexity: O(k³) where k is the combined size of the touched
// component(s), decomposed; O(n³) dense fallback.
func (o *Octagon) closeIncremental(vars []int) bool {
	if o.dense {
		return o.closeDense()
	}

	seen := make(map[int]bool)
	var group []int
	for _, v := range vars {
		if !seen[v] {
			seen[v] = true
			group = append(group, v)
		}
		for _, m := range o.comp.members(v) {
			if !seen[m] {
				seen[m] = true
				group = append(group, m)
			}
		}
	}

	return o.closeSubset(signedIndicesOf(sortedInts(group)))
}
