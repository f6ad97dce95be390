// File: types.go
// Role: Signed-variable index arithmetic, half-matrix positional layout, and
// the core Octagon value type (§3, §4.1, §9 "Signed-index encoding").
// Policy:
//   - pos and pos2 are the ONLY places that know the half-matrix storage
//     shape; every algorithm in this package works in (signed i, signed j)
//     coordinates and calls through these two functions.
//   - Octagon holds exactly one matrix buffer at a time, tagged by state —
//     never an "open" and a "closed" copy simultaneously (§9 "Closure cache
//     as tagged variant").

package octane

import "math"

// state tags which of {Bottom, Open(matrix), Closed(matrix)} an Octagon is in.
type state int

const (
	stateBottom state = iota
	stateUnclosed
	stateClosed
)

// String renders the state for diagnostics and test failure messages.
func (s state) String() string {
	switch s {
	case stateBottom:
		return "Bottom"
	case stateUnclosed:
		return "Unclosed"
	case stateClosed:
		return "Closed"
	default:
		return "Invalid"
	}
}

// inf is the canonical "no constraint" sentinel. Never NaN (§9 "Numeric
// discipline"): arithmetic that could otherwise produce NaN (∞ − ∞ on
// incremental updates) is intercepted at the call site and mapped back here.
var inf = math.Inf(1)

// negIndex returns the signed index of the opposite-signed variable: k XOR 1.
func negIndex(k int) int {
	return k ^ 1
}

// pos returns the half-matrix storage offset for an ALREADY coherence-normalized
// pair (i, j), i.e. callers must ensure j <= i|1 before calling. This is the
// closed-form layout used throughout the APRON-style octagon literature:
// size of the backing array for n variables is 2n(n+1); row i holds i|1 + 1
// entries, so rows come in same-size pairs (2,2,4,4,...,2n,2n).
func pos(i, j int) int {
	return j + ((i+1)*(i+1))/2
}

// pos2 normalizes (i, j) via the coherence rewrite m[i][j] = m[j^1][i^1] when
// j > i|1, then returns the storage offset. All reads/writes on a *Octagon's
// matrix go through pos2 (via at/set), never pos directly.
func pos2(i, j int) int {
	if j <= (i | 1) {
		return pos(i, j)
	}

	return pos(negIndex(j), negIndex(i))
}

// matrixSize returns the backing-array length for n variables: 2n(n+1).
func matrixSize(n int) int {
	return 2 * n * (n + 1)
}

// Octagon is the in-memory value of the domain: a half-matrix DBM plus a
// component list, tagged by state and by dense/decomposed layout (§3 "Octagon
// value (O)"). The zero value is not a valid Octagon; use AllocTop or
// AllocBottom.
type Octagon struct {
	dim   int      // number of program variables n
	st    state    // Bottom / Unclosed / Closed
	dense bool     // true: full half-matrix materialized, comp ignored
	m     []float64 // half-matrix backing store, len == matrixSize(dim); nil iff st == stateBottom
	comp  *componentList // nil in dense mode or when st == stateBottom
	cfg   config
}

// Dim returns the octagon's variable count n. Complexity: O(1).
func (o *Octagon) Dim() int {
	if o == nil {
		return 0
	}

	return o.dim
}

// IsBottomState reports whether this value is the distinguished empty octagon.
// Complexity: O(1).
func (o *Octagon) IsBottomState() bool {
	return o == nil || o.st == stateBottom
}

// IsClosed reports whether the current matrix is in canonical (strongly
// closed) form. Bottom counts as closed: every downstream operation on it is
// a no-op. Complexity: O(1).
func (o *Octagon) IsClosed() bool {
	return o.IsBottomState() || o.st == stateClosed
}

// at reads m[i][j] through the coherence-normalized offset. i, j are signed
// indices in [0, 2*dim). Complexity: O(1).
func (o *Octagon) at(i, j int) float64 {
	return o.m[pos2(i, j)]
}

// set writes m[i][j] through the coherence-normalized offset. Complexity: O(1).
func (o *Octagon) set(i, j int, v float64) {
	o.m[pos2(i, j)] = v
}

// markUnclosed transitions a non-bottom octagon to Unclosed; any successful
// destructive transfer that is not known to preserve closure calls this
// (§4.6 "State machine for an octagon value").
func (o *Octagon) markUnclosed() {
	if o.st == stateClosed {
		o.st = stateUnclosed
	}
}

// toBottom collapses the receiver to the Bottom state in place, releasing its
// matrix and component list.
func (o *Octagon) toBottom() {
	o.st = stateBottom
	o.m = nil
	o.comp = nil
	o.dense = true
}
