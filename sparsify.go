// File: sparsify.go
// Role: Conversion between dense and decomposed-sparse layouts (§4.2
// "Conversion dense → decomposed" / "Conversion decomposed → dense", §2
// Sparsification (P)).

package octane

// ToDecomposed scans the dense matrix, unions every pair of variables
// related by a finite non-diagonal entry (a variable with only a unary bound
// gets a singleton component), and switches the receiver into
// decomposed mode in place. No-op on Bottom or an already-decomposed octagon.
//
// Complexity: O(n² + n·α(n)).
func (o *Octagon) ToDecomposed() {
	if o.IsBottomState() || !o.dense {
		return
	}
	c := rebuildComponentsFromMatrix(o)
	o.comp = c
	o.dense = false
	n := o.dim
	// Re-assert the implicit-+∞ invariant on every inter-component pair so
	// decomposed reads that bypass the component list (defensive code,
	// tests) still see a sound value.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !c.isConnected(i, j) {
				o.iniRelation(i, j)
			}
		}
	}
}

// ToDense writes the implicit +∞ into every inter-component entry (a no-op
// given ToDecomposed's invariant, performed defensively) and sets the
// dense flag so every algorithm dispatches to its dense body.
//
// Complexity: O(n²).
func (o *Octagon) ToDense() {
	if o.IsBottomState() || o.dense {
		return
	}
	n := o.dim
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !o.comp.isConnected(i, j) {
				o.iniRelation(i, j)
			}
		}
	}
	o.dense = true
	o.comp = nil
}

// rebuildComponentsFromMatrix derives a fresh component partition from o's
// current matrix content by scanning every variable pair for a finite
// non-diagonal entry (§4.2 "Conversion dense → decomposed"); a variable with
// a finite unary bound but no relation becomes a singleton component. Used by
// ToDecomposed and by every lattice/dimension operation that can only grow
// or shrink the finite-entry set through ordinary min/max/assignment (never
// sideways), so a full rescan is always sound.
//
// Complexity: O(n² + n·α(n)).
func rebuildComponentsFromMatrix(o *Octagon) *componentList {
	c := newComponentList()
	n := o.dim
	for i := 0; i < n; i++ {
		if isFinite(o.at(2*i, 2*i+1)) || isFinite(o.at(2*i+1, 2*i)) {
			c.ensureSingleton(i)
		}
		for j := i + 1; j < n; j++ {
			if o.variablesRelated(i, j) {
				c.union(i, j)
			}
		}
	}

	return c
}

// variablesRelated reports whether any of the four signed entries relating
// variables i and j (i != j) is finite, i.e. whether a non-trivial
// constraint currently relates them.
func (o *Octagon) variablesRelated(i, j int) bool {
	a, b := 2*i, 2*j

	return isFinite(o.at(a, b)) || isFinite(o.at(a+1, b+1)) ||
		isFinite(o.at(a, b+1)) || isFinite(o.at(a+1, b))
}

// isFinite reports whether v is neither +∞ nor -∞ (the domain never produces
// -∞ or NaN, but this stays strict rather than assuming it, per §9 "Numeric
// discipline").
func isFinite(v float64) bool {
	return v != inf && v != -inf
}

// IsDimensionUnconstrained reports whether variable v participates in no
// non-trivial constraint (§6 Queries). Out-of-range v returns false rather
// than panicking (§7 "Out-of-domain inputs").
//
// Complexity: O(1) decomposed (component lookup); O(n) dense (must scan,
// since dense mode carries no component list).
func (o *Octagon) IsDimensionUnconstrained(v int) bool {
	if o.IsBottomState() || v < 0 || v >= o.dim {
		return false
	}
	if !o.dense {
		_, ok := o.comp.find(v)
		return !ok
	}
	if isFinite(o.at(2*v, 2*v+1)) || isFinite(o.at(2*v+1, 2*v)) {
		return false
	}
	for j := 0; j < o.dim; j++ {
		if j == v {
			continue
		}
		if o.variablesRelated(v, j) {
			return false
		}
	}

	return true
}
