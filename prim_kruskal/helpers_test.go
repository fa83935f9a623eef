package prim_kruskal_test

import (
	"math/rand"

	"github.com/katalvlaran/procmesh/core"
	"github.com/katalvlaran/procmesh/geom"
)

// euclid weighs an edge by node distance.
func euclid(a, b *core.Node) float64 { return a.Pos.Distance(b.Pos) }

// unit weighs every edge 1.
func unit(_, _ *core.Node) float64 { return 1 }

// buildPath returns a graph A-B-C-D laid out on the X axis.
func buildPath() *core.Graph {
	a, b, c, d := geom.NewPoint(0, 0), geom.NewPoint(1, 0), geom.NewPoint(2, 0), geom.NewPoint(3, 0)
	g := core.NewGraph()
	g.Create([]geom.Edge{
		geom.NewEdge(a, b),
		geom.NewEdge(b, c),
		geom.NewEdge(c, d),
	})

	return g
}

// buildSquare returns the unit square with the p0–p2 diagonal:
//
//	p3───p2
//	│  ╱  │
//	p0───p1
func buildSquare() *core.Graph {
	p0, p1, p2, p3 := geom.NewPoint(0, 0), geom.NewPoint(1, 0), geom.NewPoint(1, 1), geom.NewPoint(0, 1)
	g := core.NewGraph()
	g.Create([]geom.Edge{
		geom.NewEdge(p0, p1),
		geom.NewEdge(p1, p2),
		geom.NewEdge(p2, p3),
		geom.NewEdge(p3, p0),
		geom.NewEdge(p0, p2),
	})

	return g
}

// buildRandomConnected creates n random points, chains them to guarantee
// connectivity, then adds up to extra distinct random chords.
// The generator is seeded for reproducibility.
func buildRandomConnected(r *rand.Rand, n, extra int) *core.Graph {
	pts := make([]*geom.Point, n)
	for i := range pts {
		pts[i] = geom.NewPoint(r.Float64()*100, r.Float64()*100)
	}

	seen := make(map[[2]int]bool)
	var edges []geom.Edge
	add := func(i, j int) {
		if i == j {
			return
		}
		if i > j {
			i, j = j, i
		}
		if seen[[2]int{i, j}] {
			return
		}
		seen[[2]int{i, j}] = true
		edges = append(edges, geom.NewEdge(pts[i], pts[j]))
	}

	// Shuffle the chain so node 0 is not always an end.
	perm := r.Perm(n)
	for i := 1; i < n; i++ {
		add(perm[i-1], perm[i])
	}
	for k := 0; k < extra*3 && len(edges) < n-1+extra; k++ {
		add(r.Intn(n), r.Intn(n))
	}

	g := core.NewGraph()
	g.Create(edges)

	return g
}

// bruteForceMST enumerates every (n-1)-subset of edges and returns the
// minimum weight among those forming a spanning tree.
func bruteForceMST(n int, edges []core.EdgePair, w core.WeightFunc, index map[*core.Node]int) float64 {
	best := -1.0
	k := n - 1
	chosen := make([]int, 0, k)

	var rec func(start int)
	rec = func(start int) {
		if len(chosen) == k {
			parent := make([]int, n)
			for i := range parent {
				parent[i] = i
			}
			var find func(int) int
			find = func(u int) int {
				if parent[u] != u {
					parent[u] = find(parent[u])
				}
				return parent[u]
			}
			total := 0.0
			for _, ei := range chosen {
				u, v := find(index[edges[ei].Start]), find(index[edges[ei].End])
				if u == v {
					return
				}
				parent[u] = v
				total += w(edges[ei].Start, edges[ei].End)
			}
			if best < 0 || total < best {
				best = total
			}
			return
		}
		for i := start; i < len(edges); i++ {
			chosen = append(chosen, i)
			rec(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	rec(0)

	return best
}

// nodeIndex maps nodes to their position in g.
func nodeIndex(g *core.Graph) map[*core.Node]int {
	idx := make(map[*core.Node]int, g.NodeCount())
	for i, n := range g.Nodes() {
		idx[n] = i
	}

	return idx
}
