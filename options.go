// File: options.go
// Role: Functional options for octagon construction and closure behavior,
// mirroring matrix.NewMatrixOptions / builder.newBuilderConfig: a package of
// Option funcs mutating an unexported config, applied left-to-right with
// documented defaults.

package octane

// config holds the tunable behavior of an Octagon beyond its dimension.
//
//   - Integer:   when true, tightening (§4.3) applies floor after halving;
//     the domain is ℤⁿ instead of ℝⁿ.
//   - Vectorized: selects the chunked inner-loop closure variant (§4.8);
//     result is identical to the scalar variant, only the traversal differs.
//   - SkipClosure: when true, transfer functions never trigger eager
//     closure (flag_algo, §4.7, is set on the Result wherever a closure is
//     skipped because of it).
type config struct {
	integer     bool
	vectorized  bool
	skipClosure bool
}

// Option configures an Octagon at construction time.
type Option func(*config)

// WithInteger marks the octagon's variables as integer-valued: strong
// closure's tightening step floors after halving (§4.3, §9 "Integer mode").
func WithInteger(b bool) Option {
	return func(c *config) { c.integer = b }
}

// WithVectorized selects the chunked-row closure inner loop (§4.3 "vectorized
// variant", §4.8). The algorithm and result must be identical to the scalar
// loop; this only changes how rows are traversed.
func WithVectorized(b bool) Option {
	return func(c *config) { c.vectorized = b }
}

// WithSkipClosure disables eager closure inside transfer functions. A
// Result whose operation skipped a closure because of this option carries
// Algo (§4.7); callers must close explicitly before relying on precise
// queries.
func WithSkipClosure(b bool) Option {
	return func(c *config) { c.skipClosure = b }
}

// newConfig builds a config with documented defaults (Integer=false,
// Vectorized=false, SkipClosure=false — always close eagerly, rational
// arithmetic) and applies opts in order; later options override earlier ones.
func newConfig(opts ...Option) config {
	cfg := config{
		integer:     false,
		vectorized:  false,
		skipClosure: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
