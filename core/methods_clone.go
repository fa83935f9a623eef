// File: methods_clone.go
// Role: Deep copy of a graph, keeping node order, adjacency order and the
//       OldEdges snapshots.

package core

// Clone returns a deep copy of g. Node positions, adjacency (current and
// OldEdges) and node order are reproduced on fresh nodes; UserData maps are
// copied shallowly.
//
// Neighbor references pointing outside g (possible only after a node was
// removed mid-rewrite) are dropped.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{nodes: make([]*Node, len(g.nodes))}
	mapping := make(map[*Node]*Node, len(g.nodes))

	for i, n := range g.nodes {
		c := newNode(n.Pos)
		for k, v := range n.UserData {
			c.UserData[k] = v
		}
		clone.nodes[i] = c
		mapping[n] = c
	}

	remap := func(src []*Node) []*Node {
		if src == nil {
			return nil
		}
		dst := make([]*Node, 0, len(src))
		for _, nb := range src {
			if c, ok := mapping[nb]; ok {
				dst = append(dst, c)
			}
		}

		return dst
	}

	for _, n := range g.nodes {
		c := mapping[n]
		c.neighbors = remap(n.neighbors)
		c.oldEdges = remap(n.oldEdges)
	}

	return clone
}
