// File: methods_nodes.go
// Role: Node lifecycle on the Graph: create, add, lookup, remove.
// Determinism:
//   - Nodes() returns nodes in insertion order; Create preserves first-seen order.

package core

import (
	"fmt"

	"github.com/katalvlaran/procmesh/geom"
)

// Add appends node to the graph and returns it. A nil node is ignored and
// nil is returned.
// Complexity: O(1) amortized.
func (g *Graph) Add(node *Node) *Node {
	if node == nil {
		return nil
	}
	if node.UserData == nil {
		node.UserData = make(map[string]interface{})
	}
	g.nodes = append(g.nodes, node)

	return node
}

// CreateNode appends and returns a new node at the origin.
// Complexity: O(1) amortized.
func (g *Graph) CreateNode() *Node {
	return g.Add(newNode(geom.Point{}))
}

// CreateNodeAt appends and returns a new node at pos.
// Complexity: O(1) amortized.
func (g *Graph) CreateNodeAt(pos geom.Point) *Node {
	return g.Add(newNode(pos))
}

// Nodes returns the node list in graph order. The slice is a read-only
// view; use Add/RemoveNode to change membership.
func (g *Graph) Nodes() []*Node { return g.nodes }

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Node returns the node at index i.
//
// Errors:
//   - ErrIndexOutOfRange: i outside [0, NodeCount()).
func (g *Graph) Node(i int) (*Node, error) {
	if i < 0 || i >= len(g.nodes) {
		return nil, fmt.Errorf("Node(%d) of %d: %w", i, len(g.nodes), ErrIndexOutOfRange)
	}

	return g.nodes[i], nil
}

// IndexOf returns the position of node in the graph, or -1.
// Complexity: O(V).
func (g *Graph) IndexOf(node *Node) int {
	for i, n := range g.nodes {
		if n == node {
			return i
		}
	}

	return -1
}

// RemoveNode severs every edge of node (including back-references held by
// its neighbors) and then unregisters it. Remaining nodes keep their order.
//
// Errors:
//   - ErrNodeNotFound: node is nil or not part of g. Nothing is modified.
//
// Complexity: O(V + deg(node)·maxdeg).
func (g *Graph) RemoveNode(node *Node) error {
	idx := g.IndexOf(node)
	if node == nil || idx < 0 {
		return ErrNodeNotFound
	}

	node.RemoveAllEdges()

	copy(g.nodes[idx:], g.nodes[idx+1:])
	g.nodes[len(g.nodes)-1] = nil
	g.nodes = g.nodes[:len(g.nodes)-1]

	return nil
}

// Clear drops every node. Node values held by callers keep their adjacency
// but are no longer part of g.
func (g *Graph) Clear() {
	g.nodes = nil
}
