// Package core_test contains test helpers for procmesh/core.
//
// Purpose:
//   - Provide small, deterministic fixtures built from geom points.
//   - Assert the reciprocal-adjacency invariant in one place.

package core_test

import (
	"testing"

	"github.com/katalvlaran/procmesh/core"
	"github.com/katalvlaran/procmesh/geom"
	"github.com/stretchr/testify/require"
)

// squareWithDiagonal returns the corner points and edge list of
//
//	p3───p2
//	│  ╱  │
//	p0───p1
func squareWithDiagonal() ([]*geom.Point, []geom.Edge) {
	p := []*geom.Point{
		geom.NewPoint(0, 0),
		geom.NewPoint(1, 0),
		geom.NewPoint(1, 1),
		geom.NewPoint(0, 1),
	}
	edges := []geom.Edge{
		geom.NewEdge(p[0], p[1]),
		geom.NewEdge(p[1], p[2]),
		geom.NewEdge(p[2], p[3]),
		geom.NewEdge(p[3], p[0]),
		geom.NewEdge(p[0], p[2]),
	}

	return p, edges
}

// count returns how many times x appears in s.
func count(s []*core.Node, x *core.Node) int {
	c := 0
	for _, v := range s {
		if v == x {
			c++
		}
	}

	return c
}

// requireReciprocal fails if any adjacency entry lacks its mirror with the
// same multiplicity.
func requireReciprocal(t *testing.T, g *core.Graph) {
	t.Helper()
	for i, n := range g.Nodes() {
		for _, nb := range n.Neighbors() {
			require.Equalf(t, count(n.Neighbors(), nb), count(nb.Neighbors(), n),
				"node %d: adjacency to %v not mirrored", i, nb.Pos)
		}
	}
}
