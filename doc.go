// Package octane implements the octagon abstract numerical domain: a
// relational domain representing sets of points in ℝⁿ (or ℤⁿ) by systems of
// difference-bound constraints of the form ±xᵢ ± xⱼ ≤ c.
//
// What is octane?
//
//	A single-threaded, panic-free library bringing together:
//
//	  • A difference-bound-matrix (DBM) representation with a dual
//	    dense / decomposed-sparse layout.
//	  • A strong-closure engine (modified Floyd–Warshall) that restores the
//	    canonical form after every operation.
//	  • Decomposition-based sparsification: independent connected components
//	    are closed and joined without quadratic work on unconstrained
//	    variables.
//	  • Lattice operations (meet, join, widening, narrowing, inclusion,
//	    equality) that preserve precise semantics under decomposition.
//	  • Linear-constraint interpretation for assignment, substitution,
//	    satisfiability, and conversion to/from interval boxes.
//
// Why octane?
//
//   - Deterministic    — fixed loop orders, no randomness, reproducible closures.
//   - Sound            — every returned octagon over-approximates its input.
//   - Explicit         — no hidden errors; precision loss is reported on a
//     result record, not swallowed.
//   - Pure Go          — no cgo; the one third-party dependency (gonum's
//     floats package) operates on plain []float64 slices.
//
// Everything lives in this single package because the octagon value's
// matrix, component list, and closure cache are tightly coupled and mutated
// together — splitting them into independently importable packages (the way
// traversal algorithms are split from the graph core in sibling libraries)
// would force internals to be exported across package boundaries for no
// benefit.
//
//	go get github.com/arosca/octane
package octane
