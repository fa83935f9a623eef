package prim_kruskal

import (
	"math"

	"github.com/katalvlaran/procmesh/binheap"
	"github.com/katalvlaran/procmesh/core"
)

// RestoreOldEdges re-adds a fraction of the edges that Prim discarded,
// cheapest first, and returns how many were restored.
//
// Steps:
//  1. For every node, for every neighbor in its OldEdges that is not in its
//     current adjacency, record the undirected pair once with weight w.
//  2. Pop round(ratio × recorded) cheapest pairs and link each reciprocally.
//
// ratio = 0 restores nothing, ratio = 1 restores every redundant edge.
// Nodes without a snapshot (Prim ran with storeOldEdges=false, or never ran)
// contribute nothing. Snapshot entries referring to nodes no longer in g
// are ignored.
//
// Error Conditions:
//   - ErrInvalidGraph, ErrNilWeight.
//   - ErrInvalidRatio: ratio is NaN or outside [0,1].
//
// Complexity: O(V + E·deg + E log E).
func RestoreOldEdges(g *core.Graph, ratio float64, w core.WeightFunc) (int, error) {
	if err := validate(g, w); err != nil {
		return 0, err
	}
	if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
		return 0, ErrInvalidRatio
	}

	index := make(map[*core.Node]int, g.NodeCount())
	for i, n := range g.Nodes() {
		index[n] = i
	}

	redundant := binheap.New(byWeight)
	recorded := make(map[[2]int]bool)

	// 1. Collect redundant edges once per unordered pair.
	for _, n := range g.Nodes() {
		for _, nb := range n.OldEdges() {
			// Still part of the tree: nothing to restore.
			if n.HasNeighbor(nb) {
				continue
			}
			j, ok := index[nb]
			if !ok {
				continue
			}
			key := pairKey(index[n], j)
			if recorded[key] {
				continue
			}
			recorded[key] = true
			redundant.Push(&weightedEdge{from: n, to: nb, w: w(n, nb)})
		}
	}

	// 2. Restore the cheapest share.
	numToRestore := int(math.Round(ratio * float64(redundant.Size())))
	for i := 0; i < numToRestore; i++ {
		e, _ := redundant.Pop()
		e.from.Connect(e.to)
	}

	return numToRestore, nil
}

// pairKey orders two node indices into an undirected key.
func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}

	return [2]int{i, j}
}
