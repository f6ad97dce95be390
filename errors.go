// SPDX-License-Identifier: MIT
// Package octane: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// octane package. All algorithms MUST return these sentinels and tests MUST
// check them via errors.Is. No algorithm panics on user-triggered error
// conditions; panics are reserved for programmer errors (nil receiver misuse
// on destructive in-place methods, which is treated as undefined
// behavior).

package octane

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "octane: ..." for consistency and to allow
// easy grepping across logs. These are the only errors this package returns;
// a constraint or expression this domain cannot represent exactly is never
// reported as an error — it degrades to an interval fallback (or is skipped
// outright for RelNeq/RelEqMod) with Result.Incomplete/Exact raised instead,
// since over-approximating rather than failing outright is the documented
// contract for those paths (§4.7).
//
// ERROR PRIORITY (the order in which entry points run their checks):
// nil receiver or argument -> dimension out of range -> shape mismatch
// between operands.

var (
	// ErrNilOctagon indicates a nil *Octagon receiver or argument was used.
	ErrNilOctagon = errors.New("octane: nil octagon")

	// ErrDimensionMismatch indicates two octagons have a different variable count.
	ErrDimensionMismatch = errors.New("octane: dimension mismatch")

	// ErrDimensionOutOfRange indicates a requested variable index is outside [0, dim).
	ErrDimensionOutOfRange = errors.New("octane: dimension index out of range")

	// ErrInvalidThresholds indicates a widening-with-thresholds call received an
	// empty or non-strictly-ascending threshold set.
	ErrInvalidThresholds = errors.New("octane: thresholds must be non-empty and strictly ascending")

	// ErrInvalidPositions indicates add_dimensions/remove_dimensions/permute
	// received an empty or malformed position/permutation slice.
	ErrInvalidPositions = errors.New("octane: invalid dimension position list")
)
