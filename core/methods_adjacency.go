// File: methods_adjacency.go
// Role: Per-node adjacency: reciprocal linking, removal by index, and the
//       detach/snapshot step used by MST reduction.

package core

import "fmt"

// Neighbors returns the current adjacency in insertion order. The slice is
// a read-only view.
func (n *Node) Neighbors() []*Node { return n.neighbors }

// Degree returns the number of adjacency entries (parallel entries count).
func (n *Node) Degree() int { return len(n.neighbors) }

// OldEdges returns the adjacency snapshot stored by DetachAdjacency(true),
// or nil if no snapshot was taken.
func (n *Node) OldEdges() []*Node { return n.oldEdges }

// HasNeighbor reports whether other appears in n's adjacency (by identity).
// Complexity: O(deg(n)).
func (n *Node) HasNeighbor(other *Node) bool {
	for _, nb := range n.neighbors {
		if nb == other {
			return true
		}
	}

	return false
}

// Connect adds the undirected edge n—other: other is appended to n's
// adjacency and n to other's. Existing entries are not checked.
// Complexity: O(1) amortized.
func (n *Node) Connect(other *Node) {
	n.neighbors = append(n.neighbors, other)
	other.neighbors = append(other.neighbors, n)
}

// RemoveEdge removes the adjacency entry at index i together with the
// first back-reference to n found in that neighbor, if any.
//
// Errors:
//   - ErrIndexOutOfRange: i outside [0, Degree()).
//
// Complexity: O(deg(n) + deg(neighbor)).
func (n *Node) RemoveEdge(i int) error {
	if i < 0 || i >= len(n.neighbors) {
		return fmt.Errorf("RemoveEdge(%d) of %d: %w", i, len(n.neighbors), ErrIndexOutOfRange)
	}

	neighbor := n.neighbors[i]
	if neighbor == n {
		// Self-loop: both entries live in n's own list.
		n.neighbors = removeAt(n.neighbors, i)
		n.neighbors = removeFirst(n.neighbors, n)

		return nil
	}
	neighbor.neighbors = removeFirst(neighbor.neighbors, n)
	n.neighbors = removeAt(n.neighbors, i)

	return nil
}

// RemoveAllEdges removes edge 0 until none remain, so every neighbor loses
// its back-reference as well.
func (n *Node) RemoveAllEdges() {
	for len(n.neighbors) > 0 {
		_ = n.RemoveEdge(0)
	}
}

// DetachAdjacency hands the current adjacency to the caller and leaves n
// with an empty one, without touching the neighbors' back-references.
// When store is true the detached slice is also kept as n.OldEdges().
//
// This is the "destructive rewrite" step of MST reduction: the caller reads
// the returned original adjacency to discover frontier edges and re-links n
// with tree edges only. Between the two, adjacency is not reciprocal.
func (n *Node) DetachAdjacency(store bool) []*Node {
	original := n.neighbors
	n.neighbors = nil
	if store {
		n.oldEdges = original
	}

	return original
}

// ClearOldEdges drops the stored snapshot.
func (n *Node) ClearOldEdges() { n.oldEdges = nil }

// removeAt deletes s[i] preserving order.
func removeAt(s []*Node, i int) []*Node {
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil

	return s[:len(s)-1]
}

// removeFirst deletes the first element identical to x, if present.
func removeFirst(s []*Node, x *Node) []*Node {
	for i, v := range s {
		if v == x {
			return removeAt(s, i)
		}
	}

	return s
}
