// File: util.go
// Role: small shared helpers with no natural home in a single concern file.

package octane

import "sort"

// sortedInts returns a freshly sorted copy of vs, ascending.
func sortedInts(vs []int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)

	return out
}

// minF returns the smaller of a, b, with +∞ treated as the usual identity
// for min (§3 "min(+∞, x) = x").
func minF(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

// maxF returns the larger of a, b.
func maxF(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
