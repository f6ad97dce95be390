// File: transfer_test.go
// Role: assignment, substitution, sat queries, and box conversion (§4.6).

package octane_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arosca/octane"
)

func TestAssignInvertibleTranslation(t *testing.T) {
	a := octane.AllocTop(1)
	a, _ = a.AddLinconsArray([]octane.LinCons{leqVar(0, 5), geqVar(0, 1)}, true)
	a.Close()

	// x0 := x0 + 2: the whole [1,5] interval shifts to [3,7].
	shifted, res := a.AssignLinexpr(0, octane.NewLinExpr(2, octane.LinTerm{Var: 0, Coeff: 1}), false)
	assert.False(t, res.Incomplete)
	shifted.Close()
	ok, _ := shifted.SatLincons(leqVar(0, 7))
	assert.True(t, ok)
	ok, _ = shifted.SatLincons(geqVar(0, 3))
	assert.True(t, ok)
}

func TestAssignForgetAndReconstrain(t *testing.T) {
	a := octane.AllocTop(2)
	a, _ = a.AddLinconsArray([]octane.LinCons{leqVar(0, 5), geqVar(0, 1)}, true)
	a.Close()

	// x1 := x0: x1 now carries x0's bound.
	assigned, _ := a.AssignLinexpr(1, octane.NewLinExpr(0, octane.LinTerm{Var: 0, Coeff: 1}), false)
	assigned.Close()
	ok, _ := assigned.SatLincons(leqVar(1, 5))
	assert.True(t, ok, "x1 must inherit x0's upper bound after x1 := x0")
	ok, _ = assigned.SatLincons(geqVar(1, 1))
	assert.True(t, ok, "x1 must inherit x0's lower bound after x1 := x0")
}

// TestSubstituteLinexprOnUnconstrainedTarget is the case where the
// substituted-into variable starts completely unconstrained: no constraint
// mentions x1, so the preimage under "x1 := x0" keeps x0 <= 5 and leaves x1
// free, whereas a bare AssignLinexpr alias would give x1 <= 5.
func TestSubstituteLinexprOnUnconstrainedTarget(t *testing.T) {
	a := octane.AllocTop(2)
	a, _ = a.AddLinconsArray([]octane.LinCons{leqVar(0, 5)}, true)
	a.Close()

	substituted, _ := a.SubstituteLinexpr(1, octane.NewLinExpr(0, octane.LinTerm{Var: 0, Coeff: 1}), false)
	substituted.Close()
	ok, _ := substituted.SatLincons(leqVar(0, 5))
	assert.True(t, ok, "x0's own bound survives the substitution")
	ok, _ = substituted.SatLincons(leqVar(1, 5))
	assert.False(t, ok, "the preimage leaves x1 unconstrained")
}

// TestSubstituteLinexprComputesPreimageNotAssignment exercises the case a
// bare AssignLinexpr alias gets wrong: x0 is pinned to 0 and x1 is free,
// with no relation between them. The preimage of "x0 = 0" under
// "x0 := x1 + 5" is "x1 = -5, x0 free" (only x1 = -5 can reach x0 = 0);
// aliasing substitution to assignment instead forgets x0 and reconstrains
// "x0 = x1 + 5", a different and unsound relation (e.g. x1=-5, x0=100 would
// satisfy it without satisfying the true preimage).
func TestSubstituteLinexprComputesPreimageNotAssignment(t *testing.T) {
	a := octane.AllocTop(2)
	a, _ = a.AddLinconsArray([]octane.LinCons{leqVar(0, 0), geqVar(0, 0)}, true)
	a.Close()

	substituted, res := a.SubstituteLinexpr(0, octane.NewLinExpr(5, octane.LinTerm{Var: 1, Coeff: 1}), false)
	assert.False(t, res.Incomplete)
	substituted.Close()

	okHigh, _ := substituted.SatLincons(leqVar(1, -5))
	okLow, _ := substituted.SatLincons(geqVar(1, -5))
	assert.True(t, okHigh && okLow, "x1 must be pinned to -5")
	assert.True(t, substituted.IsDimensionUnconstrained(0), "x0 must be left free, not reconstrained against x1")
}

// TestSubstituteInvertibleTranslation exercises the fast path shared with
// AssignLinexpr: for e = xk + c (an invertible translation referencing only
// xk itself), substitution is assignment by the inverse translation.
func TestSubstituteInvertibleTranslation(t *testing.T) {
	a := octane.AllocTop(1)
	a, _ = a.AddLinconsArray([]octane.LinCons{leqVar(0, 7), geqVar(0, 3)}, true)
	a.Close()

	// preimage of [3,7] under "x0 := x0 + 2" is [1,5].
	substituted, res := a.SubstituteLinexpr(0, octane.NewLinExpr(2, octane.LinTerm{Var: 0, Coeff: 1}), false)
	assert.False(t, res.Incomplete)
	substituted.Close()
	ok, _ := substituted.SatLincons(leqVar(0, 5))
	assert.True(t, ok)
	ok, _ = substituted.SatLincons(geqVar(0, 1))
	assert.True(t, ok)
}

func TestSatIntervalAndBoundDimension(t *testing.T) {
	a := octane.AllocTop(1)
	a, _ = a.AddLinconsArray([]octane.LinCons{leqVar(0, 5), geqVar(0, 1)}, true)
	a.Close()

	ok, _ := a.SatInterval(0, 1, 5)
	assert.True(t, ok)
	ok, _ = a.SatInterval(0, 2, 4)
	assert.False(t, ok, "the octagon must not entail a tighter interval than it actually holds")

	b, res := a.BoundDimension(0)
	assert.False(t, res.Incomplete)
	assert.Equal(t, 1.0, b.Low)
	assert.Equal(t, 5.0, b.High)

	// out-of-range dimension: neutral unbounded answer, no panic (§7).
	outOfRange, _ := a.BoundDimension(5)
	assert.True(t, math.IsInf(outOfRange.Low, -1))
	assert.True(t, math.IsInf(outOfRange.High, 1))
}

func TestBottomSatLinconsIsVacuouslyTrue(t *testing.T) {
	bot := octane.AllocBottom(2)
	ok, res := bot.SatLincons(leqVar(0, -100))
	assert.True(t, ok, "bottom entails every constraint")
	assert.False(t, res.Incomplete)
}

func TestWideningWithThresholds(t *testing.T) {
	a := octane.AllocTop(1)
	a, _ = a.AddLinconsArray([]octane.LinCons{leqVar(0, 1), geqVar(0, 0)}, true)
	a.Close()
	b := octane.AllocTop(1)
	b, _ = b.AddLinconsArray([]octane.LinCons{leqVar(0, 2), geqVar(0, 0)}, true)
	b.Close()

	w, _, err := octane.WideningWithThresholds(a, b, []float64{10, 20}, false)
	require.NoError(t, err)
	box := w.ToBox()
	// b's doubled matrix entry for x0 <= 2 is 4; the smallest threshold >= 4
	// is 10, the doubled bound 2·x0 <= 10, so x0 <= 5.
	assert.Equal(t, 5.0, box[0].High, "threshold widening must pick the smallest threshold >= b's matrix entry")

	_, _, err = octane.WideningWithThresholds(a, b, nil, false)
	assert.Error(t, err, "empty threshold set must be rejected")
	_, _, err = octane.WideningWithThresholds(a, b, []float64{5, 5}, false)
	assert.Error(t, err, "non-strictly-ascending thresholds must be rejected")
}

func TestNarrowingRestoresFiniteBounds(t *testing.T) {
	a := octane.AllocTop(1)
	a, _ = a.AddLinconsArray([]octane.LinCons{geqVar(0, 0)}, true)
	a.Close()
	b := octane.AllocTop(1)
	b, _ = b.AddLinconsArray([]octane.LinCons{leqVar(0, 5), geqVar(0, 0)}, true)
	b.Close()

	widened, _, err := octane.Widening(a, b, false)
	require.NoError(t, err)
	box := widened.ToBox()
	require.True(t, math.IsInf(box[0].High, 1))

	narrowed, _, err := octane.Narrowing(widened, b, false)
	require.NoError(t, err)
	box = narrowed.ToBox()
	assert.Equal(t, 5.0, box[0].High, "narrowing must restore B's finite bound lost by widening")
}

func TestNilAndMismatchedDimensionErrors(t *testing.T) {
	a := octane.AllocTop(2)
	b := octane.AllocTop(3)
	_, _, err := octane.Meet(a, b, false)
	assert.ErrorIs(t, err, octane.ErrDimensionMismatch)
	_, _, err = octane.Join(a, nil, false)
	assert.ErrorIs(t, err, octane.ErrNilOctagon)
}
