// File: octane_test.go
// Role: black-box scenario and lattice-law tests against the public facade
// (§8 "Testable properties", scenarios E1-E6), in the external
// _test package style (see matrix_test, core_test).

package octane_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arosca/octane"
)

// --- small expression builders, avoiding magic numbers scattered through
// test bodies.

func leqVar(v int, c float64) octane.LinCons {
	return octane.LinCons{Expr: octane.NewLinExpr(-c, octane.LinTerm{Var: v, Coeff: 1}), Rel: octane.RelLeq}
}

func geqVar(v int, c float64) octane.LinCons {
	return octane.LinCons{Expr: octane.NewLinExpr(c, octane.LinTerm{Var: v, Coeff: -1}), Rel: octane.RelLeq}
}

func diffLeq(vi, vj int, c float64) octane.LinCons {
	// xi - xj <= c
	return octane.LinCons{
		Expr: octane.NewLinExpr(-c, octane.LinTerm{Var: vi, Coeff: 1}, octane.LinTerm{Var: vj, Coeff: -1}),
		Rel:  octane.RelLeq,
	}
}

func mustClose(t *testing.T, o *octane.Octagon) *octane.Octagon {
	t.Helper()
	o.Close()

	return o
}

// E1: top(2); add x0-x1<=3 and x1-x0<=-1; close => both box entries stay
// unbounded (no unary constraints were ever added).
func TestScenarioE1(t *testing.T) {
	o := octane.AllocTop(2)
	o, res := o.AddLinconsArray([]octane.LinCons{diffLeq(0, 1, 3), diffLeq(1, 0, -1)}, true)
	require.False(t, res.Incomplete)
	mustClose(t, o)
	require.False(t, o.IsBottomState())

	box := o.ToBox()
	for i, b := range box {
		assert.True(t, math.IsInf(b.Low, -1), "var %d low should be unbounded", i)
		assert.True(t, math.IsInf(b.High, 1), "var %d high should be unbounded", i)
	}
}

// E2: top(2); add x0<=5, -x0<=0, x1<=7, x0-x1<=-3; close =>  x1 >= 3 holds.
func TestScenarioE2(t *testing.T) {
	o := octane.AllocTop(2)
	o, _ = o.AddLinconsArray([]octane.LinCons{
		leqVar(0, 5),
		geqVar(0, 0),
		leqVar(1, 7),
		diffLeq(0, 1, -3),
	}, true)
	mustClose(t, o)
	require.False(t, o.IsBottomState())

	ok, res := o.SatLincons(geqVar(1, 3))
	require.True(t, res.Exact || !res.Incomplete)
	assert.True(t, ok, "x1 >= 3 should be entailed")
}

// E3: top(3); add x0<=1, -x0<=-1 => x0 pinned to 1; x1 and x2 stay
// unconstrained, and the component list contains exactly {0}.
func TestScenarioE3(t *testing.T) {
	o := octane.AllocTop(3)
	o, _ = o.AddLinconsArray([]octane.LinCons{leqVar(0, 1), geqVar(0, 1)}, true)
	mustClose(t, o)
	require.False(t, o.IsBottomState())

	assert.True(t, o.IsDimensionUnconstrained(1))
	assert.True(t, o.IsDimensionUnconstrained(2))
	assert.False(t, o.IsDimensionUnconstrained(0))
}

// E4: close {x0-x1<=0, x1-x2<=0, x2-x0<=-1} => bottom (a weight-(-1) cycle).
func TestScenarioE4(t *testing.T) {
	o := octane.AllocTop(3)
	o, _ = o.AddLinconsArray([]octane.LinCons{
		diffLeq(0, 1, 0),
		diffLeq(1, 2, 0),
		diffLeq(2, 0, -1),
	}, true)
	mustClose(t, o)
	assert.True(t, o.IsBottomState(), "a negative-weight cycle must close to bottom")
}

// E5: join of {x0=0} and {x0=2} on one variable => interval [0, 2].
func TestScenarioE5Join(t *testing.T) {
	a := octane.AllocTop(1)
	a, _ = a.AddLinconsArray([]octane.LinCons{leqVar(0, 0), geqVar(0, 0)}, true)
	mustClose(t, a)

	b := octane.AllocTop(1)
	b, _ = b.AddLinconsArray([]octane.LinCons{leqVar(0, 2), geqVar(0, 2)}, true)
	mustClose(t, b)

	joined, _, err := octane.Join(a, b, false)
	require.NoError(t, err)
	box := joined.ToBox()
	require.Len(t, box, 1)
	assert.Equal(t, 0.0, box[0].Low)
	assert.Equal(t, 2.0, box[0].High)
}

// E6: widen of {x0 in [0,1]} with {x0 in [0,2]} => upper bound -> +inf,
// lower bound stays 0.
func TestScenarioE6Widen(t *testing.T) {
	a := octane.AllocTop(1)
	a, _ = a.AddLinconsArray([]octane.LinCons{leqVar(0, 1), geqVar(0, 0)}, true)
	mustClose(t, a)

	b := octane.AllocTop(1)
	b, _ = b.AddLinconsArray([]octane.LinCons{leqVar(0, 2), geqVar(0, 0)}, true)
	mustClose(t, b)

	w, _, err := octane.Widening(a, b, false)
	require.NoError(t, err)
	box := w.ToBox()
	require.Len(t, box, 1)
	assert.Equal(t, 0.0, box[0].Low)
	assert.True(t, math.IsInf(box[0].High, 1))
}

// --- Lattice laws (§8 property 3).

func TestLatticeLaws(t *testing.T) {
	a := octane.AllocTop(2)
	a, _ = a.AddLinconsArray([]octane.LinCons{leqVar(0, 5), geqVar(0, -5)}, true)
	mustClose(t, a)

	b := octane.AllocTop(2)
	b, _ = b.AddLinconsArray([]octane.LinCons{leqVar(1, 3), geqVar(1, -3)}, true)
	mustClose(t, b)

	top := octane.AllocTop(2)
	bottom := octane.AllocBottom(2)

	leqTop, _, err := a.IsLeq(top)
	require.NoError(t, err)
	assert.True(t, leqTop, "A ⊑ top must always hold")

	botLeq, _, err := bottom.IsLeq(a)
	require.NoError(t, err)
	assert.True(t, botLeq, "bottom ⊑ A must always hold")

	joined, _, err := octane.Join(a, b, false)
	require.NoError(t, err)
	aLeqJoin, _, err := a.IsLeq(joined)
	require.NoError(t, err)
	assert.True(t, aLeqJoin, "A ⊑ A ⊔ B")

	met, _, err := octane.Meet(a, b, false)
	require.NoError(t, err)
	meetLeqA, _, err := met.IsLeq(a)
	require.NoError(t, err)
	assert.True(t, meetLeqA, "A ⊓ B ⊑ A")

	eq, _, err := a.IsEqual(a.Copy())
	require.NoError(t, err)
	assert.True(t, eq, "a copy must equal the original")

	leqAB, _, _ := a.IsLeq(b)
	leqBA, _, _ := b.IsLeq(a)
	isEq, _, _ := a.IsEqual(b)
	assert.Equal(t, leqAB && leqBA, isEq, "is_leq(A,B) ∧ is_leq(B,A) ⇔ is_equal(A,B)")
}

// Join idempotence (§8 property 5).
func TestJoinIdempotent(t *testing.T) {
	a := octane.AllocTop(2)
	a, _ = a.AddLinconsArray([]octane.LinCons{diffLeq(0, 1, 4), leqVar(0, 9)}, true)
	mustClose(t, a)

	j, _, err := octane.Join(a, a, false)
	require.NoError(t, err)
	eq, _, err := a.IsEqual(j)
	require.NoError(t, err)
	assert.True(t, eq, "join(A,A) must equal A once both sides are closed")
}

// Closure idempotence (§8 property 2).
func TestCloseIdempotent(t *testing.T) {
	a := octane.AllocTop(2)
	a, _ = a.AddLinconsArray([]octane.LinCons{diffLeq(0, 1, 4), leqVar(0, 9)}, true)
	mustClose(t, a)
	before := a.Copy()
	a.Close()
	eq, _, err := a.IsEqual(before)
	require.NoError(t, err)
	assert.True(t, eq, "closing an already-closed octagon must be a no-op")
}

// Round-trip: to_lincons_array then add_lincons_array into top reproduces
// the original closed octagon (§8 property 8).
func TestRoundTripLinconsArray(t *testing.T) {
	a := octane.AllocTop(2)
	a, _ = a.AddLinconsArray([]octane.LinCons{
		leqVar(0, 5), geqVar(0, -1), diffLeq(0, 1, 3), diffLeq(1, 0, 2),
	}, true)
	mustClose(t, a)

	cs, _ := a.ToLinconsArray()
	rebuilt := octane.AllocTop(2)
	rebuilt, _ = rebuilt.AddLinconsArray(cs, true)
	rebuilt.Close()

	eq, _, err := a.IsEqual(rebuilt)
	require.NoError(t, err)
	assert.True(t, eq, "round-tripping through to_lincons_array/add_lincons_array must reproduce A")
}

// Box over-approximation (§8 property 9): the box must contain any point
// actually satisfying the constraints, here checked via SatInterval on a
// deliberately wider interval than the true one.
func TestBoxOverApproximation(t *testing.T) {
	a := octane.AllocTop(1)
	a, _ = a.AddLinconsArray([]octane.LinCons{leqVar(0, 4), geqVar(0, 2)}, true)
	mustClose(t, a)

	box := a.ToBox()
	require.Len(t, box, 1)
	assert.LessOrEqual(t, box[0].Low, 2.0)
	assert.GreaterOrEqual(t, box[0].High, 4.0)
}
