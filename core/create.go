// File: create.go
// Role: Wholesale construction of a Graph from an edge list.

package core

import "github.com/katalvlaran/procmesh/geom"

// CreateOption configures Create.
type CreateOption func(*createConfig)

type createConfig struct {
	vertexData map[*geom.Point]map[string]interface{}
}

// WithVertexData attaches per-vertex metadata, keyed by point instance.
// When a node is created for a point found in data, the map is copied
// shallowly into the node's UserData.
func WithVertexData(data map[*geom.Point]map[string]interface{}) CreateOption {
	return func(c *createConfig) { c.vertexData = data }
}

// Create discards the current nodes and rebuilds g from edges.
//
// Steps:
//  1. Walk edges in order. For each endpoint look up its node by point
//     identity (*geom.Point); create it on first sight, copying Pos and any
//     WithVertexData metadata.
//  2. Link the two endpoint nodes reciprocally.
//
// Endpoints are merged only when they are literally the same *geom.Point.
// Coordinate-equal but distinct instances stay distinct nodes.
// Edges with a nil endpoint are skipped.
//
// Complexity: O(E) time, O(V) extra memory for the identity map.
func (g *Graph) Create(edges []geom.Edge, opts ...CreateOption) {
	cfg := createConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.nodes = nil
	byPoint := make(map[*geom.Point]*Node, len(edges))

	nodeFor := func(p *geom.Point) *Node {
		if n, ok := byPoint[p]; ok {
			return n
		}
		n := g.Add(newNode(*p))
		byPoint[p] = n
		for k, v := range cfg.vertexData[p] {
			n.UserData[k] = v
		}

		return n
	}

	for _, e := range edges {
		if e.V0 == nil || e.V1 == nil {
			continue
		}
		n0 := nodeFor(e.V0)
		n1 := nodeFor(e.V1)
		n0.Connect(n1)
	}
}
