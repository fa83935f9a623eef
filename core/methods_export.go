// File: methods_export.go
// Role: Read-only views over the current adjacency: deduplicated edge list,
//       connectivity check, and weight totals.

package core

// EdgeList returns each undirected edge once as {Start, End}.
//
// Nodes are walked in graph order; after a node's neighbors are visited the
// node is marked processed, and later edges pointing back to a processed
// node are skipped. This relies on adjacency being reciprocal.
//
// Complexity: O(V + E).
func (g *Graph) EdgeList() []EdgePair {
	pairs := make([]EdgePair, 0, len(g.nodes))
	processed := make(map[*Node]bool, len(g.nodes))

	for _, node := range g.nodes {
		for _, nb := range node.neighbors {
			if !processed[nb] {
				pairs = append(pairs, EdgePair{Start: node, End: nb})
			}
		}
		processed[node] = true
	}

	return pairs
}

// EdgeCount returns the number of undirected edges, i.e. the sum of
// degrees halved.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.neighbors)
	}

	return total / 2
}

// IsConnected reports whether every node is reachable from node 0 over the
// current adjacency. Graphs with fewer than two nodes are connected.
//
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	if len(g.nodes) < 2 {
		return true
	}

	seen := map[*Node]bool{g.nodes[0]: true}
	queue := []*Node{g.nodes[0]}
	for qi := 0; qi < len(queue); qi++ {
		for _, nb := range queue[qi].neighbors {
			if !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	for _, n := range g.nodes {
		if !seen[n] {
			return false
		}
	}

	return true
}

// TotalWeight sums w over pairs.
func TotalWeight(pairs []EdgePair, w WeightFunc) float64 {
	var total float64
	for _, p := range pairs {
		total += w(p.Start, p.End)
	}

	return total
}
