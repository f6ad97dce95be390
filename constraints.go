// File: constraints.go
// Role: Linear-constraint types and the single-constraint "meet in" step
// (§4.6 "Constraint assumption (lincons)"). A LinCons couples a LinExpr to a
// relation; AddLinconsArray folds an array of them into the matrix, meeting
// as it goes and triggering incremental closure when the receiver was
// already closed before the call, exactly the way builder.BuildGraph folds
// a slice of Constructors left to right into a running graph rather than
// validating everything up front.

package octane

// Relation names the comparison a LinCons asserts between its LinExpr and 0.
type Relation int

const (
	// RelLeq asserts expr <= 0.
	RelLeq Relation = iota
	// RelLt asserts expr < 0. Not representable exactly over doubles (the
	// domain has no strict-inequality sentinel distinct from <=); treated as
	// RelLeq with Result.Exact cleared.
	RelLt
	// RelEq asserts expr = 0, handled as the conjunction of expr<=0 and
	// -expr<=0.
	RelEq
	// RelNeq asserts expr != 0. Not representable; skipped entirely.
	RelNeq
	// RelEqMod asserts expr ≡ 0 (mod Modulus). Not representable; skipped.
	RelEqMod
)

// LinCons is a single constraint "expr REL 0", e.g. x0 - x1 - 3 <= 0 encodes
// x0 - x1 <= 3 (§4.6).
type LinCons struct {
	Expr     LinExpr
	Rel      Relation
	Modulus  float64 // only meaningful when Rel == RelEqMod
}

// octagonalBoundsOf converts a UNARY or BINARY LinExpr "expr <= 0" into one
// or two raw (i, j, bound) updates on signed indices, i.e. constraints of
// the shape v(j) - v(i) <= bound (§3 "Matrix entry"). ok is false for ZERO,
// EMPTY, or OTHER expressions, which the caller must handle by falling back
// to interval evaluation.
//
// UNARY  "±x + c <= 0"   ⇒  "+x <= -c" or "-x <= -c", a single signed bound:
//
//	m[2i^1][2i]   <= -2c   (coeff +1: x <= -c  ⇒ v(2i) - v(2i^1) <= -2c)
//	m[2i][2i^1]   <= -2c   (coeff -1: -x <= -c ⇒ v(2i^1) - v(2i) <= -2c)
//
// The doubling matches the signed-index convention: a bound on the single
// variable +x is stored as a relation between +x and -x two nodes apart.
//
// BINARY "±xi ±xj + c <= 0" ⇒ a single cross bound between the signed nodes
// carrying the opposite sign of each term's coefficient.
func octagonalBoundsOf(e LinExpr) (updates []signedBound, ok bool) {
	switch e.Kind() {
	case LinUnary:
		t := e.Terms[0]
		i := 2 * t.Var
		if t.Coeff > 0 {
			// x <= -c  ⇒  v(i) - v(i^1) <= -2c
			return []signedBound{{negIndex(i), i, -2 * e.Cst}}, true
		}
		// -x <= -c  ⇒  v(i^1) - v(i) <= -2c
		return []signedBound{{i, negIndex(i), -2 * e.Cst}}, true
	case LinBinary:
		// a.Coeff*xa + b.Coeff*xb + cst <= 0, with a.Coeff, b.Coeff in
		// {+1,-1}. Rewritten as v(j) - v(i) <= -cst where j carries the a
		// term (v(j) = a.Coeff*xa) and i carries the negated b term
		// (-v(i) = b.Coeff*xb):
		//
		//	j = +node(a)  if a.Coeff > 0, else -node(a)
		//	i = -node(b)  if b.Coeff > 0, else +node(b)
		a, b := e.Terms[0], e.Terms[1]
		ai, bi := 2*a.Var, 2*b.Var
		j := ai
		if a.Coeff < 0 {
			j = negIndex(ai)
		}
		i := negIndex(bi)
		if b.Coeff < 0 {
			i = bi
		}

		return []signedBound{{i, j, -e.Cst}}, true
	default:
		return nil, false
	}
}

// signedBound is one raw half-matrix update: v(j) - v(i) <= bound.
type signedBound struct {
	i, j  int
	bound float64
}

// meetBound tightens m[i][j] with bound (elementwise min) and, when the
// receiver was already closed, collects the touched variables for
// incremental re-closure by the caller.
func (o *Octagon) meetBound(sb signedBound) (touchedVars []int) {
	vi, vj := sb.i/2, sb.j/2
	o.handleBinaryRelation(vi, vj)
	if sb.bound < o.at(sb.i, sb.j) {
		o.set(sb.i, sb.j, sb.bound)
	}
	if vi == vj {
		return []int{vi}
	}

	return []int{vi, vj}
}

// AddLinconsArray meets every constraint in cs into o in order (§4.6
// "lincons"). destructive selects in-place mutation versus a fresh copy.
// RelEq is split into two RelLeq halves; RelNeq and RelEqMod are not
// representable and are skipped, raising Result.Incomplete and clearing
// Result.Exact per §4.7. When the receiver was closed on entry, each
// representable constraint triggers incremental closure immediately after
// being met in, so the result is closed again on return (unless it went
// bottom); when the receiver was Unclosed already, or WithSkipClosure is set
// (Result.Algo raised), the result is left Unclosed and the caller is
// expected to close explicitly.
//
// Complexity: O(len(cs) · n²) dense worst case, O(len(cs) · k³) decomposed
// where k bounds the touched components.
func (o *Octagon) AddLinconsArray(cs []LinCons, destructive bool) (*Octagon, Result) {
	if o.IsBottomState() {
		return o, exactResult
	}

	out := o
	if !destructive {
		out = o.Copy()
	}
	wasClosed := out.st == stateClosed
	res := exactResult
	if wasClosed && out.cfg.skipClosure {
		// WithSkipClosure: no incremental closure; the result is left Unclosed.
		wasClosed = false
		res.Algo = true
	}
	for _, c := range cs {
		touched, skipped, exact := out.addOneLincons(c)
		if skipped {
			res.Incomplete = true
			res.Exact = false

			continue
		}
		if !exact {
			res.Exact = false
		}
		if out.IsBottomState() {
			return out, res
		}
		if wasClosed {
			if !out.closeIncremental(touched) {
				out.toBottom()

				return out, res
			}
			out.st = stateClosed
		} else {
			out.markUnclosed()
		}
	}

	return out, res
}

// addOneLincons folds a single constraint into out's matrix. Returns the
// variables touched (for incremental closure), whether the constraint was
// skipped as non-representable, and whether the fold was exact.
func (out *Octagon) addOneLincons(c LinCons) (touched []int, skipped bool, exact bool) {
	switch c.Rel {
	case RelNeq, RelEqMod:
		return nil, true, false
	case RelEq:
		pos := LinExpr{Terms: c.Expr.Terms, Cst: c.Expr.Cst}
		neg := negateExpr(c.Expr)
		t1, sk1, ex1 := out.addOneLeq(pos)
		if out.IsBottomState() {
			return t1, sk1, ex1
		}
		t2, sk2, ex2 := out.addOneLeq(neg)

		return append(t1, t2...), sk1 || sk2, ex1 && ex2
	default: // RelLeq, RelLt (Lt degrades to Leq, Exact cleared)
		t, sk, ex := out.addOneLeq(c.Expr)
		if c.Rel == RelLt {
			ex = false
		}

		return t, sk, ex
	}
}

// addOneLeq folds "expr <= 0" into out's matrix, meeting each resulting
// signed bound.
func (out *Octagon) addOneLeq(e LinExpr) (touched []int, skipped bool, exact bool) {
	if k := e.Kind(); k == LinZero || k == LinEmpty {
		// constant "c <= 0": a no-op when it holds, ⊥ when it does not.
		if e.Cst > 0 {
			out.toBottom()
		}

		return nil, false, true
	}
	updates, ok := octagonalBoundsOf(e)
	if !ok {
		return nil, true, false
	}
	for _, u := range updates {
		touched = append(touched, out.meetBound(u)...)
	}

	return touched, false, true
}

// negateExpr returns -e: every coefficient and the constant flipped.
func negateExpr(e LinExpr) LinExpr {
	terms := make([]LinTerm, len(e.Terms))
	for i, t := range e.Terms {
		terms[i] = LinTerm{Var: t.Var, Coeff: -t.Coeff}
	}

	return LinExpr{Terms: terms, Cst: -e.Cst}
}

// SatLincons reports whether o entails c (§4.6 "sat_lincons"). Unary and
// binary constraints are checked directly against the closed matrix;
// OTHER-class expressions fall back to interval evaluation via ToBox, with
// Result.Incomplete set since that check may be conservative. Returns
// false, with Incomplete set, if o cannot be brought to closed form
// (skip-closure mode).
//
// Complexity: O(1) unary/binary given a closed operand (O(n³)/O(Σkᵢ³) if
// closure must run first); O(n) OTHER fallback via ToBox.
func (o *Octagon) SatLincons(c LinCons) (bool, Result) {
	if o.IsBottomState() {
		return true, exactResult // bottom entails everything
	}
	closed, res := o.closedView()
	if res.Incomplete {
		return false, res
	}

	switch c.Rel {
	case RelNeq, RelEqMod:
		return false, Result{Exact: false, Incomplete: true}
	case RelEq:
		ok1, r1 := closed.satLeq(c.Expr)
		ok2, r2 := closed.satLeq(negateExpr(c.Expr))

		return ok1 && ok2, r1.merge(r2)
	default:
		ok, r := closed.satLeq(c.Expr)
		if c.Rel == RelLt && ok {
			// expr <= 0 holding does not imply expr < 0; report incomplete
			// rather than a false positive.
			r.Incomplete = true
			r.Exact = false

			return false, r
		}

		return ok, r
	}
}

// satLeq checks "expr <= 0" against a closed octagon's matrix directly for
// UNARY/BINARY forms, decides constant (ZERO/EMPTY) forms outright, and
// falls back to the box for OTHER.
func (o *Octagon) satLeq(e LinExpr) (bool, Result) {
	if k := e.Kind(); k == LinZero || k == LinEmpty {
		return e.Cst <= 0, exactResult
	}
	updates, ok := octagonalBoundsOf(e)
	if ok {
		for _, u := range updates {
			if o.at(u.i, u.j) > u.bound {
				return false, exactResult
			}
		}

		return true, exactResult
	}
	box := o.ToBox()
	lo, hi := e.EvalInterval(box)
	_ = lo

	return hi <= 0, Result{Exact: false, Incomplete: true}
}

// SatInterval reports whether o entails that variable v lies within
// [lo, hi] (§6 "sat_interval"). Equivalent to asserting both unary bounds
// via SatLincons. Out-of-range v returns false without crashing (§7).
func (o *Octagon) SatInterval(v int, lo, hi float64) (bool, Result) {
	if v < 0 || v >= o.Dim() {
		return false, exactResult
	}
	upper := LinCons{Expr: NewLinExpr(-hi, LinTerm{Var: v, Coeff: 1}), Rel: RelLeq}
	lower := LinCons{Expr: NewLinExpr(lo, LinTerm{Var: v, Coeff: -1}), Rel: RelLeq}
	ok1, r1 := o.SatLincons(upper)
	ok2, r2 := o.SatLincons(lower)

	return ok1 && ok2, r1.merge(r2)
}

// Bound is a closed real interval [Low, High], returned by ToBox and
// BoundDimension (§4.6 "to_box", §4.10).
type Bound struct {
	Low, High float64
}

// ToBox converts o into one Bound per variable (§4.6 "to_box"). A variable
// absent from every component (decomposed mode) or with no finite entries
// (dense mode) gets the unbounded interval [-inf, +inf]. Non-closed
// operands are closed first, non-destructively.
//
// Complexity: O(n).
func (o *Octagon) ToBox() []Bound {
	if o.IsBottomState() {
		out := make([]Bound, o.Dim())
		for i := range out {
			out[i] = Bound{Low: inf, High: -inf} // empty interval
		}

		return out
	}
	closed, _ := o.closedView()
	out := make([]Bound, closed.dim)
	for i := 0; i < closed.dim; i++ {
		out[i] = closed.boundOf(i)
	}

	return out
}

// boundOf computes variable i's interval from the closed matrix:
// [-m[2i][2i+1]/2, m[2i+1][2i]/2] (§4.6 "to_box").
func (o *Octagon) boundOf(i int) Bound {
	lo := o.at(2*i, 2*i+1)
	hi := o.at(2*i+1, 2*i)
	low := -inf
	if !isPosInf(lo) {
		low = 0 - lo/2 // 0 - x rather than -x: a zero bound stays +0, never -0
	}
	high := inf
	if !isPosInf(hi) {
		high = hi/2 + 0 // + 0 maps a -0 bound to +0
	}

	return Bound{Low: low, High: high}
}

// BoundDimension is the manager-facing single-variable query (§6
// "bound_dimension", §4.10): same computation as ToBox but for one
// variable, paired with the incompleteness flags from closing o. Returns
// the empty-interval Bound and Incomplete=false if o is bottom, and the
// unbounded Bound with no error for out-of-range v (§7 "neutral answer").
func (o *Octagon) BoundDimension(v int) (Bound, Result) {
	if v < 0 || v >= o.Dim() {
		return Bound{Low: -inf, High: inf}, exactResult
	}
	if o.IsBottomState() {
		return Bound{Low: inf, High: -inf}, exactResult
	}
	closed, res := o.closedView()

	return closed.boundOf(v), res
}

// ToLinconsArray emits one RelLeq LinCons per finite off-diagonal entry of
// the closed matrix, each coherent pair (i,j)/(j^1,i^1) emitted only once
// (§4.6 "to_lincons_array"). Unary bounds on variable i come out as
// single-term constraints; binary relations as two-term constraints.
//
// Complexity: O(n²).
func (o *Octagon) ToLinconsArray() ([]LinCons, Result) {
	if o.IsBottomState() {
		return nil, exactResult
	}
	closed, res := o.closedView()
	n := 2 * closed.dim
	var out []LinCons
	for i := 0; i < n; i++ {
		for j := 0; j <= (i | 1); j++ {
			if i == j {
				continue
			}
			// Each coherent pair is stored once at (i,j) with j<=i|1; the
			// mirror (j^1,i^1) normalizes back to the same offset, so a
			// single forward scan over the stored triangle already emits
			// each constraint exactly once.
			v := closed.at(i, j)
			if isPosInf(v) {
				continue
			}
			if c, ok := linconsFromSignedBound(i, j, v); ok {
				out = append(out, c)
			}
		}
	}

	return out, res
}

// linconsFromSignedBound converts a raw entry m[i][j] = v (v(j) - v(i) <= v)
// back into a LinCons. Self-mirrored entries where i and j denote the same
// underlying variable pair but opposite sign nodes already emitted the
// other direction are still emitted independently, since they are distinct
// finite bounds (e.g. x<=5 and -x<=0 are both real constraints).
func linconsFromSignedBound(i, j int, bound float64) (LinCons, bool) {
	vi, vj := i/2, j/2
	signI := 1.0
	if i%2 == 1 {
		signI = -1
	}
	signJ := 1.0
	if j%2 == 1 {
		signJ = -1
	}
	if vi == vj {
		// unary: v(j) - v(i) <= bound with i,j the two signed nodes of the
		// same variable ⇒ 2*sign(j)*x <= bound, emitted with a unit
		// coefficient as sign(j)*x <= bound/2 so it stays UNARY.
		return LinCons{Expr: NewLinExpr(-bound/2, LinTerm{Var: vi, Coeff: signJ}), Rel: RelLeq}, true
	}
	// binary: v(j) - v(i) <= bound ⇒ sign(j)*xj - sign(i)*xi - bound <= 0.
	return LinCons{Expr: NewLinExpr(-bound,
		LinTerm{Var: vj, Coeff: signJ},
		LinTerm{Var: vi, Coeff: -signI},
	), Rel: RelLeq}, true
}
