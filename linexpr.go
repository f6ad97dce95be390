// File: linexpr.go
// Role: Linear expression type and constraint-class classification (§4.6).

package octane

// LinKind classifies a LinExpr for interpretation by the transfer functions
// (§4.6 "Constraint classes"). The octagon domain represents EMPTY, ZERO,
// UNARY and BINARY expressions exactly; OTHER requires interval fallback
// and raises Result.Incomplete / Result.Exact=false.
type LinKind int

const (
	// LinEmpty is the expression with no terms and zero constant: 0.
	LinEmpty LinKind = iota
	// LinZero is a pure constant: c.
	LinZero
	// LinUnary is ± xi + c for a single variable i.
	LinUnary
	// LinBinary is ± xi ± xj + c for two distinct variables i, j, each
	// coefficient in {+1, -1}.
	LinBinary
	// LinOther is anything else: more than two variables, or a coefficient
	// outside {+1, -1}.
	LinOther
)

// String renders the kind for diagnostics.
func (k LinKind) String() string {
	switch k {
	case LinEmpty:
		return "EMPTY"
	case LinZero:
		return "ZERO"
	case LinUnary:
		return "UNARY"
	case LinBinary:
		return "BINARY"
	default:
		return "OTHER"
	}
}

// LinTerm is a single coefficient·variable term of a LinExpr.
type LinTerm struct {
	Var   int
	Coeff float64
}

// LinExpr is a linear expression over program variables, Σ coeff·var + cst
// (§4.6 "Linear expression (E)"). Terms need not be pre-classified; Kind
// inspects them on demand.
type LinExpr struct {
	Terms []LinTerm
	Cst   float64
}

// NewLinExpr builds a LinExpr from explicit terms and a constant. Terms with
// a zero coefficient are dropped, since they carry no information for
// classification or evaluation.
func NewLinExpr(cst float64, terms ...LinTerm) LinExpr {
	kept := make([]LinTerm, 0, len(terms))
	for _, t := range terms {
		if t.Coeff != 0 {
			kept = append(kept, t)
		}
	}

	return LinExpr{Terms: kept, Cst: cst}
}

// Kind classifies e per §4.6's constraint classes.
func (e LinExpr) Kind() LinKind {
	switch len(e.Terms) {
	case 0:
		if e.Cst == 0 {
			return LinEmpty
		}

		return LinZero
	case 1:
		if isUnitCoeff(e.Terms[0].Coeff) {
			return LinUnary
		}

		return LinOther
	case 2:
		if e.Terms[0].Var != e.Terms[1].Var &&
			isUnitCoeff(e.Terms[0].Coeff) && isUnitCoeff(e.Terms[1].Coeff) {
			return LinBinary
		}

		return LinOther
	default:
		return LinOther
	}
}

// isUnitCoeff reports whether c is +1 or -1, the only coefficients the
// octagon domain can represent exactly (§4.6).
func isUnitCoeff(c float64) bool {
	return c == 1 || c == -1
}

// EvalInterval evaluates e as a real interval [lo, hi] over the box implied
// by bounds (one Bound per variable, indexed by variable number), used as
// the fallback path for OTHER-class expressions (§4.6, §4.10). Any variable
// missing from bounds or unconstrained contributes (-inf, +inf). Unlike
// Kind's classification, coefficients here may be any real number.
func (e LinExpr) EvalInterval(bounds []Bound) (float64, float64) {
	lo, hi := e.Cst, e.Cst
	for _, t := range e.Terms {
		var blo, bhi float64
		if t.Var < 0 || t.Var >= len(bounds) {
			blo, bhi = -inf, inf
		} else {
			b := bounds[t.Var]
			blo, bhi = b.Low, b.High
		}
		tlo, thi := t.Coeff*blo, t.Coeff*bhi
		if t.Coeff < 0 {
			tlo, thi = thi, tlo
		}
		lo += tlo
		hi += thi
	}

	return lo, hi
}
