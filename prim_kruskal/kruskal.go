// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// Unlike Prim, it leaves the *core.Graph untouched and returns the MST as a slice of edge pairs.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/procmesh/core"
)

// Kruskal computes the Minimum Spanning Tree of g's current adjacency
// without modifying it. It uses a disjoint-set (union-find) data structure
// with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph, ErrNilWeight.
//   - ErrDisconnected : if |V| == 0 or |V| > 1 but g is not fully connected.
//
// Steps:
//  1. Validate; |V|==0 → ErrDisconnected, |V|==1 → empty MST.
//  2. Collect g.EdgeList(), skipping self-loops, and weigh each once.
//  3. Stable-sort by weight so equal weights keep EdgeList order.
//  4. Union endpoints of each edge whose roots differ; stop at |V|-1 edges.
//  5. Fewer than |V|-1 edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph, w core.WeightFunc) ([]core.EdgePair, float64, error) {
	// 1. Validate.
	if err := validate(g, w); err != nil {
		return nil, 0, err
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(nodes) == 1 {
		return []core.EdgePair{}, 0, nil
	}

	// 2. Collect and weigh edges.
	type candidate struct {
		pair core.EdgePair
		w    float64
	}
	all := g.EdgeList()
	edges := make([]candidate, 0, len(all))
	for _, p := range all {
		if p.Start == p.End {
			continue
		}
		edges = append(edges, candidate{pair: p, w: w(p.Start, p.End)})
	}

	// 3. Sort by ascending weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].w < edges[j].w
	})

	// 4. Disjoint-set over node indices.
	index := make(map[*core.Node]int, len(nodes))
	parent := make([]int, len(nodes))
	rank := make([]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
		parent[i] = i
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	var (
		mst         = make([]core.EdgePair, 0, len(nodes)-1)
		totalWeight float64
	)
	for _, e := range edges {
		u, okU := index[e.pair.Start]
		v, okV := index[e.pair.End]
		if !okU || !okV {
			continue
		}
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			continue
		}
		// Union by rank.
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
		mst = append(mst, e.pair)
		totalWeight += e.w
		if len(mst) == len(nodes)-1 {
			break
		}
	}

	// 5. Spanning check.
	if len(mst) < len(nodes)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
