// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node over the
//     current adjacency (after MST reduction: the tree plus restored edges).
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  node → hop count from start
//   - Parent: node → predecessor in the BFS tree
//   - Hooks: OnVisit (may abort with an error).
//   - Neighbor filtering via WithFilterNeighbor and a depth cap via WithMaxDepth.
//
// Why
//
//   - Level layering of a generated network: how many doors from the
//     entrance is each room, which room is the farthest.
//
// Determinism
//
//	Neighbors are enqueued in adjacency order, so the visit sequence is
//	reproducible for a given graph.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrStartNotFound     if the start node is not in the graph.
//   - ErrOptionViolation   if an option is invalid (e.g. negative MaxDepth).
//   - Wrapped hook errors from OnVisit.
package bfs
