// Package prim_kruskal provides an in-place implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It reduces a *core.Graph to its MST starting from node 0, using a binheap.Heap of open edges.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/procmesh/binheap"
	"github.com/katalvlaran/procmesh/core"
)

// Prim reduces g in place to a Minimum Spanning Tree, preferring edges with
// smaller w(a, b).
//
// Error Conditions:
//   - ErrInvalidGraph : g is nil.
//   - ErrNilWeight    : w is nil.
//   - ErrDisconnected : the open-edge heap ran dry before |V|-1 tree edges
//     were chosen. The component of node 0 has been reduced to its MST; the
//     other components are left untouched (still reciprocal).
//
// Steps:
//  1. If |V| < 2, return (no-op).
//  2. Mark node 0 visited; push one open edge (node0 → neighbor) per entry
//     of its ORIGINAL adjacency, keyed by w. Duplicate targets are fine.
//  3. Detach node 0's original adjacency (kept as OldEdges when
//     storeOldEdges, otherwise any older snapshot is cleared), leaving it
//     empty to hold tree edges only.
//  4. Repeat |V|-1 times:
//     a. Pop the cheapest open edge, discarding it while its target is
//     already visited.
//     b. Mark the target visited, push its original adjacency as open edges,
//     and detach it the same way.
//     c. Link source and target with a reciprocal tree edge.
//
// The original adjacency is read only through the slice returned by
// DetachAdjacency, so tree edges and frontier discovery never alias.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, w core.WeightFunc, storeOldEdges bool) error {
	// 1. Validate inputs.
	if err := validate(g, w); err != nil {
		return err
	}
	nodes := g.Nodes()
	n := len(nodes)
	if n < 2 {
		return nil
	}

	visited := make(map[*core.Node]bool, n)
	openEdges := binheap.New(byWeight)

	// expand enqueues node's original adjacency and empties it. Without
	// storeOldEdges any earlier snapshot is dropped, so it cannot outlive
	// the adjacency it described.
	expand := func(node *core.Node) {
		if !storeOldEdges {
			node.ClearOldEdges()
		}
		original := node.DetachAdjacency(storeOldEdges)
		for _, nb := range original {
			openEdges.Push(&weightedEdge{from: node, to: nb, w: w(node, nb)})
		}
	}

	// 2–3. Seed from node 0.
	cur := nodes[0]
	visited[cur] = true
	expand(cur)

	// 4. Grow the tree one node per iteration.
	for i := 0; i < n-1; i++ {
		var edge *weightedEdge
		for {
			top, ok := openEdges.Pop()
			if !ok {
				return fmt.Errorf("Prim: %d of %d nodes reached: %w", len(visited), n, ErrDisconnected)
			}
			if !visited[top.to] {
				edge = top
				break
			}
		}

		next := edge.to
		visited[next] = true
		expand(next)
		edge.from.Connect(next)
	}

	return nil
}
