// File: dimensions.go
// Role: add / remove / permute / expand / fold / forget (§4.5). All but
// forget change the set of signed indices involved, so they go through a
// decode → remap → encode round-trip on a plain dense 2n×2n buffer rather
// than surgery on the half-matrix offsets directly; forget only resets
// entries to +∞ in place and needs no resize.

package octane

// decode expands o's half-matrix into a dense 2·dim × 2·dim buffer, read
// through the coherence-normalized at() so every entry — including implicit
// ones in decomposed mode — comes out correct.
func (o *Octagon) decode() [][]float64 {
	n2 := 2 * o.dim
	full := make([][]float64, n2)
	for i := range full {
		full[i] = make([]float64, n2)
		for j := 0; j < n2; j++ {
			full[i][j] = o.at(i, j)
		}
	}

	return full
}

// makeDefaultFull returns a dense 2·n × 2·n buffer initialized to the
// unconstrained default: 0 on the diagonal, +∞ everywhere else.
func makeDefaultFull(n int) [][]float64 {
	n2 := 2 * n
	full := make([][]float64, n2)
	for i := range full {
		full[i] = make([]float64, n2)
		for j := range full[i] {
			if i == j {
				full[i][j] = 0
			} else {
				full[i][j] = inf
			}
		}
	}

	return full
}

// encodeOctagon builds a fresh dense Octagon of dimension n from a
// 2n × 2n dense buffer, folding it down into half-matrix storage.
func encodeOctagon(full [][]float64, n int, cfg config) *Octagon {
	out := &Octagon{
		dim:   n,
		st:    stateUnclosed,
		dense: true,
		m:     make([]float64, matrixSize(n)),
		cfg:   cfg,
	}
	n2 := 2 * n
	for i := 0; i < n2; i++ {
		for j := 0; j <= (i | 1); j++ {
			out.set(i, j, full[i][j])
		}
	}

	return out
}

// applyDimResult finishes a dimension operation: when destructive, the
// receiver's fields are overwritten in place with result's (same *Octagon
// identity, per §5's "destructive flag ... selects between in-place update
// and fresh allocation"); otherwise result is returned standalone.
func (o *Octagon) applyDimResult(result *Octagon, destructive bool) *Octagon {
	if !destructive {
		return result
	}
	*o = *result

	return o
}

// AddDimensions inserts len(positions) fresh unconstrained variables
// (§4.5 "add_dimensions"). positions must be sorted ascending, each in
// [0, dim], and gives — in the ORIGINAL numbering — the index before which
// a new variable lands; later positions with the same value insert a run of
// consecutive new variables there.
//
// Complexity: O(n²).
func (o *Octagon) AddDimensions(positions []int, destructive bool) (*Octagon, error) {
	if len(positions) == 0 {
		return nil, ErrInvalidPositions
	}
	for i, p := range positions {
		if p < 0 || p > o.dim || (i > 0 && p < positions[i-1]) {
			return nil, ErrInvalidPositions
		}
	}
	if o.IsBottomState() {
		return o.applyDimResult(AllocBottom(o.dim+len(positions), optsOf(o)...), destructive), nil
	}

	oldToNew, newN := computeInsertionMap(o.dim, positions)
	full := o.decode()
	newFull := makeDefaultFull(newN)
	for v := 0; v < o.dim; v++ {
		nv := oldToNew[v]
		for w := 0; w < o.dim; w++ {
			nw := oldToNew[w]
			copyBlock(newFull, full, nv, nw, v, w)
		}
	}
	result := encodeOctagon(newFull, newN, o.cfg)
	if !o.dense {
		result.ToDecomposed()
	}

	return o.applyDimResult(result, destructive), nil
}

// RemoveDimensions deletes the variables named by positions (§4.5
// "remove_dimensions"); the removed variables' components simply vanish.
//
// Complexity: O(n²).
func (o *Octagon) RemoveDimensions(positions []int, destructive bool) (*Octagon, error) {
	if len(positions) == 0 {
		return nil, ErrInvalidPositions
	}
	seen := make(map[int]bool, len(positions))
	for _, p := range positions {
		if p < 0 || p >= o.dim || seen[p] {
			return nil, ErrInvalidPositions
		}
		seen[p] = true
	}
	newN := o.dim - len(positions)
	if o.IsBottomState() {
		return o.applyDimResult(AllocBottom(newN, optsOf(o)...), destructive), nil
	}

	oldToNew := computeRemovalMap(o.dim, seen)
	full := o.decode()
	newFull := makeDefaultFull(newN)
	for v := 0; v < o.dim; v++ {
		nv, ok := oldToNew[v]
		if !ok {
			continue
		}
		for w := 0; w < o.dim; w++ {
			nw, ok2 := oldToNew[w]
			if !ok2 {
				continue
			}
			copyBlock(newFull, full, nv, nw, v, w)
		}
	}
	result := encodeOctagon(newFull, newN, o.cfg)
	if !o.dense {
		result.ToDecomposed()
	}

	return o.applyDimResult(result, destructive), nil
}

// Permute relabels variables according to perm (§4.5 "permute"): perm[v] is
// the new index of old variable v. perm must be a bijection on [0, dim).
//
// Complexity: O(n²).
func (o *Octagon) Permute(perm []int, destructive bool) (*Octagon, error) {
	if len(perm) != o.dim {
		return nil, ErrInvalidPositions
	}
	seen := make([]bool, o.dim)
	for _, p := range perm {
		if p < 0 || p >= o.dim || seen[p] {
			return nil, ErrInvalidPositions
		}
		seen[p] = true
	}
	if o.IsBottomState() {
		return o.applyDimResult(AllocBottom(o.dim, optsOf(o)...), destructive), nil
	}

	full := o.decode()
	newFull := makeDefaultFull(o.dim)
	for v := 0; v < o.dim; v++ {
		for w := 0; w < o.dim; w++ {
			copyBlock(newFull, full, perm[v], perm[w], v, w)
		}
	}
	result := encodeOctagon(newFull, o.dim, o.cfg)
	if !o.dense {
		result.ToDecomposed()
	}

	return o.applyDimResult(result, destructive), nil
}

// Expand duplicates variable v into count fresh copies, each carrying v's
// own unary bound and every relation v has to other variables, plus an
// exact equality to v itself (§4.5 "expand"). Every copy ends up in v's
// component.
//
// Complexity: O(n² · count).
func (o *Octagon) Expand(v, count int, destructive bool) (*Octagon, error) {
	if v < 0 || v >= o.dim || count <= 0 {
		return nil, ErrInvalidPositions
	}
	if o.IsBottomState() {
		return o.applyDimResult(AllocBottom(o.dim+count, optsOf(o)...), destructive), nil
	}

	newN := o.dim + count
	full := o.decode()
	newFull := makeDefaultFull(newN)
	// original variables keep their index, unchanged relations.
	for i := 0; i < o.dim; i++ {
		for j := 0; j < o.dim; j++ {
			copyBlock(newFull, full, i, j, i, j)
		}
	}
	for c := 0; c < count; c++ {
		copyIdx := o.dim + c
		// the copy inherits every relation v has to ordinary variables.
		for w := 0; w < o.dim; w++ {
			if w == v {
				continue
			}
			copyBlock(newFull, full, copyIdx, w, v, w)
			copyBlock(newFull, full, w, copyIdx, w, v)
		}
		// the copy's own unary bound mirrors v's.
		newFull[2*copyIdx][2*copyIdx+1] = full[2*v][2*v+1]
		newFull[2*copyIdx+1][2*copyIdx] = full[2*v+1][2*v]
		// v == copy: equality in both directions.
		newFull[2*v][2*copyIdx] = 0
		newFull[2*copyIdx][2*v] = 0
		newFull[2*v+1][2*copyIdx+1] = 0
		newFull[2*copyIdx+1][2*v+1] = 0
	}
	result := encodeOctagon(newFull, newN, o.cfg)
	if !o.dense {
		result.ToDecomposed()
	}

	return o.applyDimResult(result, destructive), nil
}

// Fold collapses vars into their first element by taking the elementwise
// join of their rows/columns (§4.5 "fold"); the remaining members are then
// removed as dimensions.
//
// Complexity: O(n²).
func (o *Octagon) Fold(vars []int, destructive bool) (*Octagon, error) {
	if len(vars) == 0 {
		return nil, ErrInvalidPositions
	}
	for _, v := range vars {
		if v < 0 || v >= o.dim {
			return nil, ErrInvalidPositions
		}
	}
	keep := vars[0]
	if o.IsBottomState() {
		newN := o.dim - (len(vars) - 1)
		return o.applyDimResult(AllocBottom(newN, optsOf(o)...), destructive), nil
	}

	full := o.decode()
	n2 := 2 * o.dim
	// Indices belonging to any folded variable (besides keep itself) never
	// participate as an external "w" in the merge below: the keep<->v
	// cross block is discarded once v is removed, and folding it in would
	// mix up unrelated cross-relation entries with v's own unary bound.
	foldedNodes := make(map[int]bool, 2*len(vars))
	for _, v := range vars[1:] {
		foldedNodes[2*v] = true
		foldedNodes[2*v+1] = true
	}
	for _, v := range vars[1:] {
		// keep's own unary block (its low/high bound) joins directly with
		// v's own unary block — the one pair of positions the generic,
		// external-w merge below must not touch.
		full[2*keep][2*keep+1] = maxF(full[2*keep][2*keep+1], full[2*v][2*v+1])
		full[2*keep+1][2*keep] = maxF(full[2*keep+1][2*keep], full[2*v+1][2*v])
		for w := 0; w < n2; w++ {
			if w == 2*keep || w == 2*keep+1 || foldedNodes[w] {
				continue
			}
			full[2*keep][w] = maxF(full[2*keep][w], full[2*v][w])
			full[2*keep+1][w] = maxF(full[2*keep+1][w], full[2*v+1][w])
			full[w][2*keep] = maxF(full[w][2*keep], full[w][2*v])
			full[w][2*keep+1] = maxF(full[w][2*keep+1], full[w][2*v+1])
		}
	}

	toRemove := make(map[int]bool, len(vars)-1)
	for _, v := range vars[1:] {
		toRemove[v] = true
	}
	newN := o.dim - len(toRemove)
	oldToNew := computeRemovalMap(o.dim, toRemove)
	newFull := makeDefaultFull(newN)
	for v := 0; v < o.dim; v++ {
		nv, ok := oldToNew[v]
		if !ok {
			continue
		}
		for w := 0; w < o.dim; w++ {
			nw, ok2 := oldToNew[w]
			if !ok2 {
				continue
			}
			copyBlock(newFull, full, nv, nw, v, w)
		}
	}
	result := encodeOctagon(newFull, newN, o.cfg)
	if !o.dense {
		result.ToDecomposed()
	}

	return o.applyDimResult(result, destructive), nil
}

// ForgetArray replaces every entry involving each variable in vars with +∞
// (§4.5 "forget"); when project is true it also asserts v = 0 for each.
// Variables becoming isolated are dropped from their component.
//
// Complexity: O(n·len(vars)).
func (o *Octagon) ForgetArray(vars []int, project, destructive bool) (*Octagon, error) {
	for _, v := range vars {
		if v < 0 || v >= o.dim {
			return nil, ErrDimensionOutOfRange
		}
	}
	if o.IsBottomState() {
		return o, nil
	}

	out := o
	if !destructive {
		out = o.Copy()
	}
	n2 := 2 * out.dim
	for _, v := range vars {
		for i := 0; i < n2; i++ {
			out.set(i, 2*v, inf)
			out.set(i, 2*v+1, inf)
			out.set(2*v, i, inf)
			out.set(2*v+1, i, inf)
		}
		out.set(2*v, 2*v, 0)
		out.set(2*v+1, 2*v+1, 0)
		if project {
			out.set(2*v, 2*v+1, 0)
			out.set(2*v+1, 2*v, 0)
		}
		if !out.dense {
			out.comp.removeVar(v)
		}
	}
	out.markUnclosed()

	return out, nil
}

// copyBlock copies the 2×2 signed block relating old variables (ov, ow) in
// src into the block relating new variables (nv, nw) in dst.
func copyBlock(dst, src [][]float64, nv, nw, ov, ow int) {
	dst[2*nv][2*nw] = src[2*ov][2*ow]
	dst[2*nv][2*nw+1] = src[2*ov][2*ow+1]
	dst[2*nv+1][2*nw] = src[2*ov+1][2*ow]
	dst[2*nv+1][2*nw+1] = src[2*ov+1][2*ow+1]
}

// computeInsertionMap returns, for each old variable index, its index after
// inserting a fresh variable before each position in positions (sorted
// ascending, possibly repeated), plus the resulting total dimension.
func computeInsertionMap(n int, positions []int) ([]int, int) {
	k := len(positions)
	oldToNew := make([]int, n)
	pi, newIdx := 0, 0
	for v := 0; v < n; v++ {
		for pi < k && positions[pi] == v {
			newIdx++
			pi++
		}
		oldToNew[v] = newIdx
		newIdx++
	}
	for pi < k {
		newIdx++
		pi++
	}

	return oldToNew, n + k
}

// computeRemovalMap returns, for each old variable index not in removed, its
// compacted index after deletion; variables in removed are absent from the map.
func computeRemovalMap(n int, removed map[int]bool) map[int]int {
	m := make(map[int]int, n-len(removed))
	next := 0
	for v := 0; v < n; v++ {
		if removed[v] {
			continue
		}
		m[v] = next
		next++
	}

	return m
}
