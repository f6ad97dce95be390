// File: api.go
// Role: Thin, deterministic public facade exposing lifecycle constructors and
// the ambient Result accumulator (§4.7, §6 "Lifecycle").
// Policy:
//   - No algorithms live here beyond trivial allocation.
//   - Every exported function documents complexity.

package octane

// Result carries the incompleteness/precision-loss bookkeeping described in
// §4.7. It is returned (often alongside an *Octagon) by every transfer
// function and by queries that may not reach a definite answer. Exact is
// the one flag that defaults to true (an operation is precise unless it
// says otherwise); every other flag defaults to false (nothing went wrong
// unless it says otherwise).
type Result struct {
	// Exact is false when the answer may not be tight (e.g. an OTHER-class
	// expression fell back to interval evaluation, or a check degrades to an
	// over-approximation per §4.7's documented RelLt case).
	Exact bool
	// Incomplete is true when a definite answer was not reached on ℚ (e.g.
	// sat_lincons asked on an Unclosed octagon while WithSkipClosure is set,
	// or ≠/mod constraints skipped).
	Incomplete bool
	// Conv is true on numeric conversion imprecision (reserved for hosts that
	// round-trip through a narrower numeric type than float64).
	Conv bool
	// Algo is true when closure was skipped by option (WithSkipClosure).
	Algo bool
}

// exactResult is the fully-precise Result, returned by operations with no
// precision loss; named for readability at call sites.
var exactResult = Result{Exact: true}

// merge combines two Result flag sets folded into one report (e.g.
// add_lincons_array over several constraints): Exact survives only if both
// halves were exact, while every loss flag is sticky once either half
// raises it.
func (r Result) merge(other Result) Result {
	return Result{
		Exact:      r.Exact && other.Exact,
		Incomplete: r.Incomplete || other.Incomplete,
		Conv:       r.Conv || other.Conv,
		Algo:       r.Algo || other.Algo,
	}
}

// AllocTop returns the top element ⊤ for n variables: a matrix of all +∞
// with 0 diagonals, no component list, already closed (§4.4 "top(n)").
//
// Complexity: O(n²) time and memory (allocates the 2n(n+1) backing array).
func AllocTop(n int, opts ...Option) *Octagon {
	o := &Octagon{
		dim:   n,
		st:    stateClosed,
		dense: true,
		m:     make([]float64, matrixSize(n)),
		cfg:   newConfig(opts...),
	}
	for i := 0; i < 2*n; i++ {
		for j := 0; j <= (i | 1); j++ {
			if i == j {
				o.set(i, j, 0)
			} else {
				o.set(i, j, inf)
			}
		}
	}

	return o
}

// AllocBottom returns the bottom element ⊥ for n variables: the tagged
// sentinel with no matrix (§4.4 "bottom").
//
// Complexity: O(1).
func AllocBottom(n int, opts ...Option) *Octagon {
	return &Octagon{
		dim: n,
		st:  stateBottom,
		cfg: newConfig(opts...),
	}
}

// Copy returns an independent deep copy of o: a fresh matrix buffer and a
// fresh component list, sharing no interior storage with the receiver
// (§3 "single-owner model").
//
// Complexity: O(n²) in both layouts (the whole backing array is copied);
// O(1) extra beyond the copy.
func (o *Octagon) Copy() *Octagon {
	if o.IsBottomState() {
		return AllocBottom(o.Dim(), optsOf(o)...)
	}

	cp := &Octagon{
		dim:   o.dim,
		st:    o.st,
		dense: o.dense,
		cfg:   o.cfg,
	}
	cp.m = make([]float64, len(o.m))
	copy(cp.m, o.m)
	if o.comp != nil {
		cp.comp = o.comp.clone()
	}

	return cp
}

// Free is a documented no-op retained for interface parity with the host
// analyzer's alloc/free lifecycle contract (§3 "Lifecycle"); Go's garbage
// collector reclaims the matrix and component list once unreferenced.
func (o *Octagon) Free() {}

// optsOf rebuilds an Option slice reproducing o's current config, used by
// operations (Copy, dimension ops) that must carry configuration into a
// freshly allocated sibling value.
func optsOf(o *Octagon) []Option {
	return []Option{
		WithInteger(o.cfg.integer),
		WithVectorized(o.cfg.vectorized),
		WithSkipClosure(o.cfg.skipClosure),
	}
}
