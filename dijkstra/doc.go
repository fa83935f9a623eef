// Package dijkstra computes single-source shortest path lengths over the
// current adjacency of a core.Graph, with edge costs from a core.WeightFunc.
//
// On a generated network this answers "how far is every room from the
// entrance when walking the corridors", and, compared with straight-line
// distance, how much detour the loop restoration saved.
//
// The priority queue is binheap.Heap with lazy decrease-key: improved
// distances push a new entry and stale entries are skipped on pop.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
//
// Options:
//
//   - WithMaxDistance(d): nodes farther than d are not settled.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrNilWeight, ErrSourceNotFound.
//   - ErrNegativeWeight if w returns a negative or NaN cost for a traversed edge.
package dijkstra
