package core

import "github.com/katalvlaran/procmesh/geom"

// WeightFunc scores the edge between two nodes. It must be pure: the same
// pair yields the same weight for as long as the edge sits in a heap.
type WeightFunc func(a, b *Node) float64

// Node is a graph vertex placed in the plane.
//
// Pos is a copy of the source point; nodes never alias caller points.
// UserData stores arbitrary per-node data; it is copied shallowly by Create
// and by Clone.
type Node struct {
	// Pos is the node position.
	Pos geom.Point

	// UserData stores arbitrary user data.
	UserData map[string]interface{}

	// neighbors is the current adjacency (the tree after MST reduction).
	neighbors []*Node

	// oldEdges is the adjacency snapshot taken by DetachAdjacency(true).
	oldEdges []*Node
}

// EdgePair is one undirected edge of an exported edge list.
type EdgePair struct {
	Start *Node
	End   *Node
}

// Graph owns an ordered list of nodes. Order matters: algorithms start
// from node 0 and EdgeList walks nodes in this order.
type Graph struct {
	nodes []*Node
}

// NewGraph returns an empty graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}

// newNode allocates a node with a non-nil UserData map.
func newNode(pos geom.Point) *Node {
	return &Node{Pos: pos, UserData: make(map[string]interface{})}
}
