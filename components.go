// File: components.go
// Role: Array-of-disjoint-sets structure over variable indices (§3 "Component
// list", §4.2, §9 "Decomposed representation"). Grounded on
// prim_kruskal.Kruskal's iterative union-find (path compression + union by
// rank) adapted from edge endpoints to octagon variable indices, plus a
// per-root sorted member list so iteration stays deterministic the way
// gridgraph.ConnectedComponents groups cells by key.
// AI-HINT (file):
//   - find/union operate on VARIABLE indices (0..dim-1), never signed indices.
//   - A variable absent from parent is "unconstrained" (§3): it belongs to no
//     component and every matrix entry touching it is implicit/explicit +∞
//     except its own diagonal.

package octane

import "sort"

// componentList partitions {0,...,n-1} into disjoint sets, each set holding
// the variables currently related by some finite non-diagonal matrix entry.
type componentList struct {
	parent map[int]int
	rank   map[int]int
	group  map[int][]int // root -> sorted member slice
}

// newComponentList returns an empty partition (every variable unconstrained).
func newComponentList() *componentList {
	return &componentList{
		parent: make(map[int]int),
		rank:   make(map[int]int),
		group:  make(map[int][]int),
	}
}

// clone returns a deep, independent copy.
func (c *componentList) clone() *componentList {
	cp := newComponentList()
	for k, v := range c.parent {
		cp.parent[k] = v
	}
	for k, v := range c.rank {
		cp.rank[k] = v
	}
	for k, v := range c.group {
		cp.group[k] = append([]int(nil), v...)
	}

	return cp
}

// find returns the representative root of v's component and whether v is
// present in any component at all. Path compression flattens the chain on
// the way out, same shape as Kruskal's iterative find.
func (c *componentList) find(v int) (int, bool) {
	if _, ok := c.parent[v]; !ok {
		return 0, false
	}
	root := v
	for c.parent[root] != root {
		root = c.parent[root]
	}
	// Path compression: repoint every visited node directly at root.
	for c.parent[v] != root {
		next := c.parent[v]
		c.parent[v] = root
		v = next
	}

	return root, true
}

// ensureSingleton adds v as its own singleton component if absent.
func (c *componentList) ensureSingleton(v int) {
	if _, ok := c.parent[v]; ok {
		return
	}
	c.parent[v] = v
	c.rank[v] = 0
	c.group[v] = []int{v}
}

// union merges the components containing v and w, creating singletons for
// either side that is not yet present. Union by rank keeps find() shallow.
func (c *componentList) union(v, w int) {
	c.ensureSingleton(v)
	c.ensureSingleton(w)
	rv, _ := c.find(v)
	rw, _ := c.find(w)
	if rv == rw {
		return
	}
	if c.rank[rv] < c.rank[rw] {
		rv, rw = rw, rv
	}
	c.parent[rw] = rv
	if c.rank[rv] == c.rank[rw] {
		c.rank[rv]++
	}
	c.group[rv] = mergeSorted(c.group[rv], c.group[rw])
	delete(c.group, rw)
}

// isConnected reports whether i and j are in the same, present component.
func (c *componentList) isConnected(i, j int) bool {
	ri, oki := c.find(i)
	rj, okj := c.find(j)

	return oki && okj && ri == rj
}

// members returns the sorted component containing v, or nil if v is
// unconstrained. The returned slice must not be mutated by the caller.
func (c *componentList) members(v int) []int {
	r, ok := c.find(v)
	if !ok {
		return nil
	}

	return c.group[r]
}

// removeVar drops v from its component, dropping the component entirely if
// it becomes empty. Used by remove_dimensions and forget (§4.5).
func (c *componentList) removeVar(v int) {
	r, ok := c.find(v)
	if !ok {
		return
	}
	delete(c.parent, v)
	delete(c.rank, v)

	members := c.group[r]
	filtered := make([]int, 0, len(members))
	for _, x := range members {
		if x != v {
			filtered = append(filtered, x)
		}
	}
	delete(c.group, r)
	if len(filtered) == 0 {
		return
	}
	if r == v {
		// The root itself was removed: re-root the remainder on its smallest
		// member (filtered is still sorted, so filtered[0] is the smallest).
		newRoot := filtered[0]
		for _, x := range filtered {
			c.parent[x] = newRoot
		}
		c.rank[newRoot] = 0
		c.group[newRoot] = filtered
	} else {
		// Members whose parent chain ran through v now point at r directly.
		for _, x := range filtered {
			c.parent[x] = r
		}
		c.group[r] = filtered
	}
}

// iterate returns every component's member list, ordered deterministically
// by each component's smallest member (§4.2 "iterate").
func (c *componentList) iterate() [][]int {
	roots := make([]int, 0, len(c.group))
	for r := range c.group {
		roots = append(roots, r)
	}
	sort.Slice(roots, func(i, j int) bool {
		return c.group[roots[i]][0] < c.group[roots[j]][0]
	})
	out := make([][]int, 0, len(roots))
	for _, r := range roots {
		out = append(out, append([]int(nil), c.group[r]...))
	}

	return out
}

// equalPartition reports whether c and other induce the identical partition
// of variables (same sets, ignoring root identity and ordering), used by
// IsEqual's decomposed fast path (§4.4 "is_equal").
func (c *componentList) equalPartition(other *componentList) bool {
	a, b := c.iterate(), other.iterate()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}

// mergeSorted merges two ascending, duplicate-free int slices into one.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// iniRelation resets the 2×2 signed block relating variables vi and vj to
// "no constraint" (§4.2 "ini_relation"): cross-variable entries go to +∞;
// when vi == vj the self-block's diagonal entries go to 0 instead.
func (o *Octagon) iniRelation(vi, vj int) {
	a, b := 2*vi, 2*vj
	if vi == vj {
		o.set(a, a, 0)
		o.set(a+1, a+1, 0)
		o.set(a, a+1, inf)
		o.set(a+1, a, inf)

		return
	}
	o.set(a, b, inf)
	o.set(a+1, b+1, inf)
	o.set(a, b+1, inf)
	o.set(a+1, b, inf)
}

// handleBinaryRelation ensures the matrix holds explicit entries for vi, vj,
// and for every variable already sharing a component with either, before a
// fresh constraint touching them is met in (§4.2 "handle_binary_relation").
// A no-op in dense mode, where every entry is already explicit.
func (o *Octagon) handleBinaryRelation(vi, vj int) {
	if o.dense {
		return
	}
	c := o.comp
	_, oki := c.find(vi)
	_, okj := c.find(vj)

	switch {
	case !oki && !okj:
		o.iniRelation(vi, vi)
		o.iniRelation(vj, vj)
		o.iniRelation(vi, vj)
	case oki && !okj:
		for _, m := range c.members(vi) {
			o.iniRelation(m, vj)
		}
		o.iniRelation(vj, vj)
	case !oki && okj:
		for _, m := range c.members(vj) {
			o.iniRelation(m, vi)
		}
		o.iniRelation(vi, vi)
	default:
		if c.isConnected(vi, vj) {
			return
		}
		for _, mi := range c.members(vi) {
			for _, mj := range c.members(vj) {
				o.iniRelation(mi, mj)
			}
		}
	}
	c.union(vi, vj)
}
