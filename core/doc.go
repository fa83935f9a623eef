// Package core provides the undirected, node-referencing Graph used to
// simplify procedural meshes: nodes carry a 2-D position, a list of
// neighbor references and free-form user data.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Nodes are owned by the Graph and referenced by pointer. Adjacency is a
//     slice of *Node on each side; an undirected edge is stored twice
//     (A lists B and B lists A). Parallel entries are allowed.
//   - Create builds a graph from geom.Edge values, merging endpoints into
//     one node only when they are the same *geom.Point instance. Two
//     coordinate-equal but distinct points become two distinct nodes.
//   - Each node also has an OldEdges slot, filled by MST reduction with the
//     node's pre-reduction adjacency so a fraction of it can be restored
//     later (see package prim_kruskal).
//
// Invariants:
//
//   - Adjacency is reciprocal. The only exception is transient, inside an
//     MST rewrite, between DetachAdjacency and the re-linking of tree edges.
//   - RemoveNode severs every incident edge before unregistering the node.
//
// Errors:
//
//	ErrIndexOutOfRange - adjacency or node index outside [0, len).
//	ErrNodeNotFound    - node is nil or not registered in this Graph.
//
// Concurrency:
//
//	None. Unlike the thread-safe catalog graphs this package grew out of,
//	Graph and Node carry no locks; the caller must serialize access to an
//	instance (one mutating goroutine, or full external locking).
//
// Core Methods:
//
//	// Node lifecycle
//	CreateNode() *Node                 // O(1)
//	Add(n *Node) *Node                 // O(1)
//	RemoveNode(n *Node) error          // O(V + deg(n)·deg)
//
//	// Construction & export
//	Create(edges []geom.Edge, opts ...CreateOption)  // O(E)
//	EdgeList() []EdgePair                            // O(V + E)
//
//	// Node adjacency
//	(*Node).Connect(other *Node)        // O(1)
//	(*Node).RemoveEdge(i int) error     // O(deg)
//	(*Node).RemoveAllEdges()            // O(deg²)
package core
