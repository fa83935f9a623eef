// Package prim_kruskal reduces a *core.Graph to a Minimum Spanning Tree and
// later re-introduces part of what was removed. It is the step that turns a
// dense Delaunay mesh into a sparse, loop-poor network of corridors, roads
// or rivers in procedural generation.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why restore edges?
//     A pure tree has exactly one route between any two nodes. Re-adding the cheapest share of the
//     discarded edges brings back a controlled amount of loops.
//
// Routines Provided
//
//   - Prim(g, w, storeOldEdges) error
//
//   - Strategy: grow a tree from node 0 using a binary min-heap of open edges keyed by w(a, b).
//     The reduction is IN PLACE: each node's adjacency is detached when the node joins the tree
//     and re-filled with tree edges only. With storeOldEdges the detached adjacency is kept on the
//     node (Node.OldEdges) for RestoreOldEdges.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - RestoreOldEdges(g, ratio, w) (int, error)
//
//   - Strategy: collect every OldEdges entry that is not a tree edge, once per unordered pair, in a
//     min-heap keyed by w; pop round(ratio × count) of them and link them back.
//
//   - Kruskal(g, w) ([]core.EdgePair, float64, error)
//
//   - Strategy: stable sort of g.EdgeList() by weight, then union-find. Read-only: use it to learn
//     the optimal tree weight without rewriting the graph.
//
// Weight functions
//
//	w must be pure and stable while an edge is queued; Prim evaluates it once per open edge.
//	Weights may come from geometry (distance), noise, or any host callback.
//
// Error Conditions
//
//   - ErrInvalidGraph  – graph is nil.
//   - ErrNilWeight     – weight function is nil.
//   - ErrDisconnected  – the graph cannot be spanned from node 0 (Prim) or at all (Kruskal).
//   - ErrInvalidRatio  – RestoreOldEdges ratio outside [0,1].
//
// Graphs with fewer than two nodes are a no-op for Prim, not an error.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
