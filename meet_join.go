// File: meet_join.go
// Role: Meet and join (§4.4 "meet", "join"). Both operate elementwise on the
// raw backing arrays — sound regardless of dense/decomposed layout because
// every stored entry already reflects the correct implicit-+∞ value for its
// pair (§4.2); the only layout-sensitive work is deciding the output's flag
// and, when decomposed, rebuilding its component list from the result.

package octane

// Meet computes A ⊓ B elementwise (min), per §4.4 "meet". destructive
// selects in-place update of a versus a fresh allocation (§5 "a destructive
// flag on the entry API selects between in-place update and fresh
// allocation"). The result is left Unclosed; closure is deferred to the
// caller (§4.4: "Result is not closed").
//
// Complexity: O(n²).
func Meet(a, b *Octagon, destructive bool) (*Octagon, Result, error) {
	if a == nil || b == nil {
		return nil, exactResult, ErrNilOctagon
	}
	if a.dim != b.dim {
		return nil, exactResult, ErrDimensionMismatch
	}
	if a.IsBottomState() || b.IsBottomState() {
		return AllocBottom(a.Dim(), optsOf(a)...), exactResult, nil
	}

	out := target(a, destructive)
	for idx := range out.m {
		out.m[idx] = minF(out.m[idx], b.m[idx])
	}
	finishLatticeOp(out, a.dense && b.dense)

	return out, exactResult, nil
}

// Join computes A ⊔ B elementwise (max), per §4.4 "join". Both operands are
// closed first (non-destructively) since join's soundness depends on it; the
// result inherits Closed state when both inputs were Closed.
//
// Complexity: O(n²).
func Join(a, b *Octagon, destructive bool) (*Octagon, Result, error) {
	if a == nil || b == nil {
		return nil, exactResult, ErrNilOctagon
	}
	if a.dim != b.dim {
		return nil, exactResult, ErrDimensionMismatch
	}
	if a.IsBottomState() {
		return cloneOrShare(b, destructive), exactResult, nil
	}
	if b.IsBottomState() {
		return cloneOrShare(a, destructive), exactResult, nil
	}

	ca, ra := a.closedView()
	cb, rb := b.closedView()
	res := ra.merge(rb)

	// closedView already returns an independent copy whenever ca != a, so it
	// is always safe to mutate ca directly in that case; only when ca is
	// literally the receiver a do we need to respect the destructive flag.
	var out *Octagon
	switch {
	case ca != a:
		out = ca
	case destructive:
		out = ca
	default:
		out = ca.Copy()
	}
	for idx := range out.m {
		out.m[idx] = maxF(out.m[idx], cb.m[idx])
	}
	wasClosed := ca.st == stateClosed && cb.st == stateClosed
	finishLatticeOp(out, ca.dense && cb.dense)
	if wasClosed {
		out.st = stateClosed
	}

	return out, res, nil
}

// target returns a directly mutable in-place on a when destructive, or a
// fresh independent copy otherwise.
func target(a *Octagon, destructive bool) *Octagon {
	if destructive {
		return a
	}

	return a.Copy()
}

// cloneOrShare returns a Copy of o, or o itself if destructive is requested
// and mutating it in place is meaningless (⊥-absorbing branches never
// actually write through out, so a plain Copy keeps the single-owner model
// intact either way).
func cloneOrShare(o *Octagon, destructive bool) *Octagon {
	if destructive {
		return o
	}

	return o.Copy()
}

// finishLatticeOp sets out's layout flag and, when decomposed, rebuilds its
// component list from the (already written) matrix content; always leaves
// out Unclosed, the caller may override afterward when it knows better
// (Join does, since max of two closed octagons over the same raw arrays
// stays closed).
func finishLatticeOp(out *Octagon, dense bool) {
	out.dense = dense
	if dense {
		out.comp = nil
	} else {
		out.comp = rebuildComponentsFromMatrix(out)
	}
	out.st = stateUnclosed
}
