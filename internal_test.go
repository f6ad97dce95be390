// File: internal_test.go
// Role: white-box unit tests for the unexported index arithmetic and
// component-list primitives (§8 property 1), mirroring the sibling
// in-package *_test.go files that check private helpers directly rather
// than only through the public facade.

package octane

import (
	"math"
	"testing"
)

func TestPosCoherence(t *testing.T) {
	// Property 1 (§8): reading via pos(i,j) and pos(j^1,i^1) must agree for
	// every pair, since both denote the same stored cell.
	for i := 0; i < 8; i++ {
		for j := 0; j <= (i | 1); j++ {
			got := pos2(negIndex(j), negIndex(i))
			want := pos(i, j)
			if got != want {
				t.Fatalf("coherence broken at (%d,%d): pos=%d pos2(mirror)=%d", i, j, want, got)
			}
		}
	}
}

func TestPos2NormalizesBothOrientations(t *testing.T) {
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			a := pos2(i, j)
			b := pos2(negIndex(j), negIndex(i))
			if a != b {
				t.Fatalf("pos2(%d,%d)=%d != pos2(mirror)=%d", i, j, a, b)
			}
		}
	}
}

func TestMatrixSize(t *testing.T) {
	cases := map[int]int{0: 0, 1: 4, 2: 12, 3: 24}
	for n, want := range cases {
		if got := matrixSize(n); got != want {
			t.Fatalf("matrixSize(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestTightenMapsInfinityNotNaN(t *testing.T) {
	if v := tighten(inf, 3, false); v != inf {
		t.Fatalf("tighten(inf,3) = %v, want inf", v)
	}
	if v := tighten(4, 6, false); v != 5 {
		t.Fatalf("tighten(4,6) = %v, want 5", v)
	}
	if v := tighten(5, 6, true); v != 5 {
		t.Fatalf("tighten(5,6,integer) = %v, want floor(5.5)=5", v)
	}
	if v := tighten(inf, inf, false); math.IsNaN(v) {
		t.Fatalf("tighten(inf,inf) produced NaN, must map back to +inf")
	}
}

func TestComponentListUnionFind(t *testing.T) {
	c := newComponentList()
	if _, ok := c.find(0); ok {
		t.Fatalf("fresh component list must have no members")
	}
	c.union(0, 1)
	c.union(1, 2)
	if !c.isConnected(0, 2) {
		t.Fatalf("0 and 2 must be connected after union(0,1), union(1,2)")
	}
	if c.isConnected(0, 3) {
		t.Fatalf("0 and 3 must not be connected")
	}
	members := c.members(0)
	if len(members) != 3 || members[0] != 0 || members[1] != 1 || members[2] != 2 {
		t.Fatalf("members(0) = %v, want [0 1 2]", members)
	}
}

func TestComponentListRemoveVar(t *testing.T) {
	c := newComponentList()
	c.union(0, 1)
	c.union(1, 2)
	c.removeVar(1)
	if c.isConnected(0, 1) || c.isConnected(1, 2) {
		t.Fatalf("removed variable must not remain connected to anything")
	}
	if _, ok := c.find(1); ok {
		t.Fatalf("removed variable must not be found in any component")
	}
}

func TestComponentListClone(t *testing.T) {
	c := newComponentList()
	c.union(0, 1)
	cp := c.clone()
	cp.union(2, 3)
	if c.isConnected(2, 3) {
		t.Fatalf("mutating the clone must not affect the original")
	}
	if !cp.isConnected(0, 1) {
		t.Fatalf("clone must retain the original's unions")
	}
}

func TestEqualPartition(t *testing.T) {
	a := newComponentList()
	a.union(0, 1)
	b := newComponentList()
	b.union(1, 0)
	if !a.equalPartition(b) {
		t.Fatalf("partitions with the same sets must be equal regardless of union order")
	}
	b.union(2, 3)
	if a.equalPartition(b) {
		t.Fatalf("partitions with a different number of components must not be equal")
	}
}
