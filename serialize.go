// File: serialize.go
// Role: Text dump format for cross-implementation testing (§2 Serialization
// (S), §6 Diagnostics, §6 "Text dump format"). Line 1 is n; lines 2..2n+1
// give the dense 2n×2n matrix, +∞ printed as the literal "inf"; decomposed
// mode prefixes each per-component block with its member partition.

package octane

import (
	"fmt"
	"strconv"
	"strings"
)

// PrintMatrix renders o's dense 2n×2n half-matrix (materialized on the fly
// for decomposed operands, without mutating the receiver) in the text dump
// format (§6). Bottom renders as the dimension line followed by a single
// "bottom" line: "n\nbottom\n".
//
// Complexity: O(n²).
func (o *Octagon) PrintMatrix() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", o.Dim())
	if o.IsBottomState() {
		b.WriteString("bottom\n")

		return b.String()
	}
	n2 := 2 * o.Dim()
	for i := 0; i < n2; i++ {
		row := make([]string, n2)
		for j := 0; j < n2; j++ {
			row[j] = formatEntry(o.at(i, j))
		}
		b.WriteString(strings.Join(row, " "))
		b.WriteByte('\n')
	}

	return b.String()
}

// PrintDecomposed renders o's component partition followed by each
// component's own intra-block matrix (§6 "in decomposed mode, the component
// partition precedes each per-component block"). A dense operand is first
// logically partitioned (without mutating the receiver) so the dump is
// still meaningful.
//
// Complexity: O(n² + n·α(n)).
func (o *Octagon) PrintDecomposed() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", o.Dim())
	if o.IsBottomState() {
		b.WriteString("bottom\n")

		return b.String()
	}

	c := o.comp
	if o.dense {
		c = rebuildComponentsFromMatrix(o)
	}
	groups := c.iterate()
	for _, g := range groups {
		parts := make([]string, len(g))
		for i, v := range g {
			parts[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(&b, "{%s}\n", strings.Join(parts, ","))
		idx := signedIndicesOf(g)
		for _, i := range idx {
			row := make([]string, len(idx))
			for k, j := range idx {
				row[k] = formatEntry(o.at(i, j))
			}
			b.WriteString(strings.Join(row, " "))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// formatEntry renders a single matrix entry: the literal "inf" for +∞,
// otherwise Go's default float formatting (shortest round-trippable form).
func formatEntry(v float64) string {
	if isPosInf(v) {
		return "inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
