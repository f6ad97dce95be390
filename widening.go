// File: widening.go
// Role: Widening, thresholds widening, and narrowing (§4.4). Like meet/join,
// these operate elementwise on the raw backing arrays.

package octane

import "sort"

// Widening computes B's standard widening against previous iterate A
// (§4.4 "widening"): w[i][j] = a[i][j] if a[i][j] ≥ b[i][j], else +∞. Both
// operands are treated as already closed per the documented precondition;
// this implementation does not re-close them (closing would change which
// values are compared), it only trusts the caller's contract. The result
// is always left Unclosed (§4.4: "output is not re-closed").
//
// Complexity: O(n²).
func Widening(a, b *Octagon, destructive bool) (*Octagon, Result, error) {
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

	res := exactResult
	if a.st != stateClosed || b.st != stateClosed {
		res.Incomplete = true
	}

	out := target(a, destructive)
	for idx := range out.m {
		if out.m[idx] < b.m[idx] {
			out.m[idx] = inf
		}
	}
	finishLatticeOp(out, a.dense && b.dense)

	return out, res, nil
}

// WideningWithThresholds is the thresholds variant (§4.4): instead of +∞,
// an entry that would widen picks the smallest threshold ≥ b[i][j], falling
// back to +∞ if none qualifies. thresholds must be non-empty and strictly
// ascending (validated once, not per-entry — §4.9).
//
// Complexity: O(n² log T) for T thresholds (binary search per entry).
func WideningWithThresholds(a, b *Octagon, thresholds []float64, destructive bool) (*Octagon, Result, error) {
	if a == nil || b == nil {
		return nil, exactResult, ErrNilOctagon
	}
	if a.dim != b.dim {
		return nil, exactResult, ErrDimensionMismatch
	}
	if !ascendingNonEmpty(thresholds) {
		return nil, exactResult, ErrInvalidThresholds
	}
	if a.IsBottomState() {
		return cloneOrShare(b, destructive), exactResult, nil
	}
	if b.IsBottomState() {
		return cloneOrShare(a, destructive), exactResult, nil
	}

	res := exactResult
	if a.st != stateClosed || b.st != stateClosed {
		res.Incomplete = true
	}

	out := target(a, destructive)
	for idx := range out.m {
		if out.m[idx] < b.m[idx] {
			out.m[idx] = smallestThresholdAtLeast(thresholds, b.m[idx])
		}
	}
	finishLatticeOp(out, a.dense && b.dense)

	return out, res, nil
}

// Narrowing restores finite constraints from B where A lost them to +∞
// (§4.4 "narrowing"): n[i][j] = b[i][j] if a[i][j] = +∞, else a[i][j].
//
// Complexity: O(n²).
func Narrowing(a, b *Octagon, destructive bool) (*Octagon, Result, error) {
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
		if out.m[idx] == inf {
			out.m[idx] = b.m[idx]
		}
	}
	finishLatticeOp(out, a.dense && b.dense)

	return out, exactResult, nil
}

// ascendingNonEmpty reports whether ts is non-empty and strictly increasing.
func ascendingNonEmpty(ts []float64) bool {
	if len(ts) == 0 {
		return false
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			return false
		}
	}

	return true
}

// smallestThresholdAtLeast returns the smallest t in the ascending slice ts
// with t >= v, or +∞ if none qualifies.
func smallestThresholdAtLeast(ts []float64, v float64) float64 {
	i := sort.SearchFloat64s(ts, v)
	if i == len(ts) {
		return inf
	}

	return ts[i]
}
