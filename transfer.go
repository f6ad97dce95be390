// File: transfer.go
// Role: Assignment and substitution (§4.6 "Assignment", "Substitution
// (backward assignment)"). Apart from the invertible-translation case, which
// shifts matrix entries in place, assignment is expressed in terms of
// ForgetArray plus AddLinconsArray, a "forget then re-constrain" shape,
// rather than touching matrix entries directly; substitution is a genuinely different
// transformer (the preimage of assignment) and goes through its own
// fresh-dimension recipe below — see SubstituteLinexpr's doc comment.

package octane

// AssignLinexpr interprets "xk := e" (§4.6 "Assignment"). For a UNARY
// e = ±xk + c (an invertible translation), the matrix entries of xk are
// negated and/or shifted in place, with no forget, so every relation from k
// to other variables is kept exactly. For every other form, xk is forgotten
// and constraints are added back: ZERO and UNARY e re-assert "xk = e"
// exactly, while EMPTY, BINARY and OTHER e set Result.Exact=false and only
// constrain xk to the interval EvalInterval gives over the box after the
// forget.
//
// Complexity: O(n²) dense / O(k³) decomposed (dominated by the forget's
// adjacency scan plus whatever incremental closure the re-constraint
// triggers).
func (o *Octagon) AssignLinexpr(k int, e LinExpr, destructive bool) (*Octagon, Result) {
	if k < 0 || k >= o.Dim() {
		return o, Result{Exact: false, Incomplete: true}
	}
	if o.IsBottomState() {
		return o, exactResult
	}

	out := o
	if !destructive {
		out = o.Copy()
	}

	if invertible, src, sign := invertibleUnaryTranslation(k, e); invertible {
		return out.assignInvertible(k, src, sign, e.Cst)
	}

	out, _ = out.ForgetArray([]int{k}, false, true)
	cs, exact := linconsForAssignTarget(k, e, out)
	res, bottom := out.addBackConstraints(cs)
	if !exact {
		res.Exact = false
	}
	if bottom {
		out.toBottom()
	}

	return out, res
}

// invertibleUnaryTranslation reports whether e is exactly "±x_src + cst" with
// src == k (xk := ±xk + c), the invertible-translation fast path (§4.6).
func invertibleUnaryTranslation(k int, e LinExpr) (ok bool, src int, sign float64) {
	if e.Kind() != LinUnary {
		return false, 0, 0
	}
	t := e.Terms[0]
	if t.Var != k {
		return false, 0, 0
	}

	return true, t.Var, t.Coeff
}

// assignInvertible handles xk := sign*xk + cst: sign==+1 is a pure
// translation (every bound on k shifts by cst, nothing else changes);
// sign==-1 additionally swaps the +k/-k rows before the shift (the columns
// follow through coherence, since at/set normalize every access). Both
// preserve all of xk's relations to other variables exactly, so no forget
// is needed; the result is marked Unclosed.
func (o *Octagon) assignInvertible(k int, _ int, sign, cst float64) (*Octagon, Result) {
	pk, nk := 2*k, 2*k+1
	if sign < 0 {
		n2 := 2 * o.dim
		for w := 0; w < n2; w++ {
			if w == pk || w == nk {
				continue
			}
			a, b := o.at(pk, w), o.at(nk, w)
			o.set(pk, w, b)
			o.set(nk, w, a)
		}
		// xk's own unary pair also flips under negation: the old low bound
		// becomes the new high bound and vice versa.
		lo, hi := o.at(pk, nk), o.at(nk, pk)
		o.set(pk, nk, hi)
		o.set(nk, pk, lo)
	}
	shift := 2 * cst
	if shift != 0 {
		n2 := 2 * o.dim
		for w := 0; w < n2; w++ {
			if w == pk || w == nk {
				continue
			}
			// relations to other variables move by cst (columns follow by coherence).
			if v := o.at(pk, w); !isPosInf(v) {
				o.set(pk, w, v-cst)
			}
			if v := o.at(nk, w); !isPosInf(v) {
				o.set(nk, w, v+cst)
			}
		}
		// xk's own unary pair relates +xk to -xk, so it moves by twice cst.
		if v := o.at(pk, nk); !isPosInf(v) {
			o.set(pk, nk, v-shift)
		}
		if v := o.at(nk, pk); !isPosInf(v) {
			o.set(nk, pk, v+shift)
		}
	}
	o.markUnclosed()

	return o, exactResult
}

// linconsForAssignTarget builds the constraints re-asserting "xk = e" after
// a forget: exactly for ZERO (xk = c) and UNARY (a two-variable relation),
// and otherwise against e's interval evaluation over ctx's box, since
// "xk = e" for a BINARY or OTHER e involves more than two variables.
func linconsForAssignTarget(k int, e LinExpr, ctx *Octagon) ([]LinCons, bool) {
	switch e.Kind() {
	case LinZero:
		return []LinCons{
			{Expr: NewLinExpr(e.Cst, LinTerm{Var: k, Coeff: -1}), Rel: RelLeq},
			{Expr: NewLinExpr(-e.Cst, LinTerm{Var: k, Coeff: 1}), Rel: RelLeq},
		}, true
	case LinUnary:
		terms := append([]LinTerm{{Var: k, Coeff: -1}}, e.Terms...)
		return []LinCons{
			{Expr: NewLinExpr(e.Cst, terms...), Rel: RelLeq},
			{Expr: NewLinExpr(-e.Cst, negateTerms(terms)), Rel: RelLeq},
		}, true
	default:
		box := ctx.ToBox()
		lo, hi := e.EvalInterval(box)
		var cs []LinCons
		if hi < inf {
			cs = append(cs, LinCons{Expr: NewLinExpr(-hi, LinTerm{Var: k, Coeff: 1}), Rel: RelLeq})
		}
		if lo > -inf {
			cs = append(cs, LinCons{Expr: NewLinExpr(lo, LinTerm{Var: k, Coeff: -1}), Rel: RelLeq})
		}

		return cs, false
	}
}

// negateTerms returns a fresh slice with every coefficient negated.
func negateTerms(ts []LinTerm) []LinTerm {
	out := make([]LinTerm, len(ts))
	for i, t := range ts {
		out[i] = LinTerm{Var: t.Var, Coeff: -t.Coeff}
	}

	return out
}

// addBackConstraints folds cs into o (already Unclosed from the preceding
// forget) and closes eagerly unless WithSkipClosure is set, matching the
// "forget then tighten" contract's implicit expectation that the assigned
// variable's new relations are visible immediately.
func (o *Octagon) addBackConstraints(cs []LinCons) (Result, bool) {
	if len(cs) == 0 {
		return exactResult, false
	}
	out, res := o.AddLinconsArray(cs, true)
	if out.IsBottomState() {
		return res, true
	}
	if !o.cfg.skipClosure {
		cres := out.Close()
		res = res.merge(cres)
		if out.IsBottomState() {
			return res, true
		}
	} else {
		res.Algo = true
	}

	return res, false
}

// SubstituteLinexpr is the preimage of AssignLinexpr (§4.6 "Substitution
// (backward assignment)"): where "xk := e" assigns a new value to xk,
// substitution asks which states could have LED to the receiver under that
// assignment, i.e. it replaces every occurrence of xk in the receiver's
// constraints by e, leaving xk itself free unless e happens to mention it.
// This is not the same operation as AssignLinexpr except in the invertible
// unary case (e = ±xk + c): there, substitution is exactly assignment by
// e's inverse, since applying a bijection and then undoing it is the
// identity. In general, though, the receiver's current relations on xk
// describe the POST-assignment value, while e is stated in terms of
// PRE-assignment variables (possibly xk itself) — conflating the two, as a
// bare alias of AssignLinexpr would, produces an unsound result whenever xk
// already carries relations the substituted expression does not reproduce.
//
// The exact recipe: grow the receiver by one fresh dimension y that
// inherits xk's current relations (both its own bound and every cross
// relation to other variables) while xk itself resets to fresh/
// unconstrained (growWithInheritedTarget); assert "y = e" using the now-free
// xk and the other variables, i.e. exactly the PRE-assignment state e is
// stated over; close to propagate that equation through whatever y used to
// relate to; then project y back out. What remains is the receiver's
// original information, now expressed in terms of the pre-state — xk's new
// relations (if any) come entirely from e, and xk is otherwise free.
//
// Complexity: O(n²) dense / O(k³) decomposed (one extra dimension's worth
// of closure, the same order as AssignLinexpr's forget-based path).
func (o *Octagon) SubstituteLinexpr(k int, e LinExpr, destructive bool) (*Octagon, Result) {
	if k < 0 || k >= o.Dim() {
		return o, Result{Exact: false, Incomplete: true}
	}
	if o.IsBottomState() {
		return o, exactResult
	}

	if invertible, _, sign := invertibleUnaryTranslation(k, e); invertible {
		out := o
		if !destructive {
			out = o.Copy()
		}

		return out.assignInvertible(k, k, sign, -sign*e.Cst)
	}

	origDim := o.dim
	y := origDim
	grown := growWithInheritedTarget(o, k)
	cs, exact := linconsForSubstituteTarget(y, e, grown)
	res, bottom := grown.addBackConstraints(cs)
	if !exact {
		res.Exact = false
	}
	if bottom {
		return o.applyDimResult(AllocBottom(origDim, optsOf(o)...), destructive), res
	}

	reduced, _ := grown.RemoveDimensions([]int{y}, true)

	return o.applyDimResult(reduced, destructive), res
}

// growWithInheritedTarget returns a fresh (n+1)-dimensional octagon built
// from o: the new dimension y = o.dim inherits k's current relations (its
// own unary bound and every relation to other variables), while k itself is
// reset to fresh/unconstrained. This is the first step of the substitution
// recipe above — it lets xk's pre-state value float free while y carries
// forward what the receiver used to know about xk's post-state value, ready
// to be tied to e's pre-state variables via an equality constraint.
func growWithInheritedTarget(o *Octagon, k int) *Octagon {
	newN := o.dim + 1
	y := o.dim
	full := o.decode()
	newFull := makeDefaultFull(newN)
	for v := 0; v < o.dim; v++ {
		for w := 0; w < o.dim; w++ {
			copyBlock(newFull, full, v, w, v, w)
		}
	}
	for w := 0; w < o.dim; w++ {
		if w == k {
			continue
		}
		copyBlock(newFull, full, y, w, k, w)
		copyBlock(newFull, full, w, y, w, k)
	}
	newFull[2*y][2*y+1] = full[2*k][2*k+1]
	newFull[2*y+1][2*y] = full[2*k+1][2*k]

	for w := 0; w < newN; w++ {
		if w == k {
			continue
		}
		newFull[2*k][2*w] = inf
		newFull[2*w][2*k] = inf
		newFull[2*k+1][2*w] = inf
		newFull[2*w][2*k+1] = inf
		newFull[2*k][2*w+1] = inf
		newFull[2*w+1][2*k] = inf
		newFull[2*k+1][2*w+1] = inf
		newFull[2*w+1][2*k+1] = inf
	}
	newFull[2*k][2*k+1] = inf
	newFull[2*k+1][2*k] = inf

	result := encodeOctagon(newFull, newN, o.cfg)
	if !o.dense {
		result.ToDecomposed()
	}

	return result
}

// linconsForSubstituteTarget builds the constraints asserting "y = e",
// folding the substituted expression's value into the fresh dimension y
// (§4.6 substitution recipe). Exact whenever e has at most one term (ZERO,
// EMPTY, UNARY) — paired with y that is at most a representable BINARY
// relation; a BINARY or OTHER e needs more than two variables to state the
// equality exactly, so it falls back to asserting y's bound from e's
// interval evaluation over ctx's box, the same degradation
// linconsForAssignTarget uses for its own unrepresentable forms.
func linconsForSubstituteTarget(y int, e LinExpr, ctx *Octagon) ([]LinCons, bool) {
	switch e.Kind() {
	case LinEmpty, LinZero, LinUnary:
		terms := append([]LinTerm{{Var: y, Coeff: -1}}, e.Terms...)
		return []LinCons{
			{Expr: NewLinExpr(e.Cst, terms...), Rel: RelLeq},
			{Expr: NewLinExpr(-e.Cst, negateTerms(terms)), Rel: RelLeq},
		}, true
	default:
		box := ctx.ToBox()
		lo, hi := e.EvalInterval(box)
		var cs []LinCons
		if hi < inf {
			cs = append(cs, LinCons{Expr: NewLinExpr(-hi, LinTerm{Var: y, Coeff: 1}), Rel: RelLeq})
		}
		if lo > -inf {
			cs = append(cs, LinCons{Expr: NewLinExpr(lo, LinTerm{Var: y, Coeff: -1}), Rel: RelLeq})
		}

		return cs, false
	}
}
