package converters

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/procmesh/core"
	"github.com/katalvlaran/procmesh/delaunay"
	"github.com/katalvlaran/procmesh/geom"
)

// Feature property keys.
const (
	PropKind   = "kind"
	PropIndex  = "index" // triangle position in the mesh
	PropNode   = "node"  // node position in graph order
	PropArea   = "area"
	PropRadius = "radius"
	PropWeight = "weight"
	PropFrom   = "from"
	PropTo     = "to"
)

// Values of PropKind.
const (
	KindTriangle = "triangle"
	KindNode     = "node"
	KindEdge     = "edge"
)

func orbPoint(p geom.Point) orb.Point { return orb.Point{p.X, p.Y} }

// TriangulationToGeoJSON returns one Polygon feature per triangle, each a
// closed ring v0 → v1 → v2 → v0, carrying its area and circumradius.
//
// Errors:
//   - ErrNilInput: t is nil.
func TriangulationToGeoJSON(t *delaunay.Triangulation) (*geojson.FeatureCollection, error) {
	if t == nil {
		return nil, fmt.Errorf("TriangulationToGeoJSON: %w", ErrNilInput)
	}

	fc := geojson.NewFeatureCollection()
	for i, tri := range t.Triangles {
		ring := orb.Ring{
			orbPoint(*tri.V0),
			orbPoint(*tri.V1),
			orbPoint(*tri.V2),
			orbPoint(*tri.V0),
		}
		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties[PropKind] = KindTriangle
		f.Properties[PropIndex] = i
		f.Properties[PropArea] = tri.Area()
		f.Properties[PropRadius] = tri.Radius
		fc.Append(f)
	}

	return fc, nil
}

// GraphToGeoJSON returns a Point feature per node, followed by a LineString
// feature per edge of g.EdgeList. Node features carry every UserData entry
// plus the graph-order position under PropNode; edge features carry the
// endpoint positions (PropFrom, PropTo) and, when w is non-nil, the edge
// weight. PropKind and PropNode take precedence over UserData keys of the
// same name.
//
// Errors:
//   - ErrNilInput: g is nil.
//
// Complexity: O(V + E).
func GraphToGeoJSON(g *core.Graph, w core.WeightFunc) (*geojson.FeatureCollection, error) {
	if g == nil {
		return nil, fmt.Errorf("GraphToGeoJSON: %w", ErrNilInput)
	}

	fc := geojson.NewFeatureCollection()
	index := make(map[*core.Node]int, g.NodeCount())
	for i, n := range g.Nodes() {
		index[n] = i
		f := geojson.NewFeature(orbPoint(n.Pos))
		for k, v := range n.UserData {
			f.Properties[k] = v
		}
		f.Properties[PropKind] = KindNode
		f.Properties[PropNode] = i
		fc.Append(f)
	}

	for _, e := range g.EdgeList() {
		f := geojson.NewFeature(orb.LineString{orbPoint(e.Start.Pos), orbPoint(e.End.Pos)})
		f.Properties[PropKind] = KindEdge
		f.Properties[PropFrom] = index[e.Start]
		f.Properties[PropTo] = index[e.End]
		if w != nil {
			f.Properties[PropWeight] = w(e.Start, e.End)
		}
		fc.Append(f)
	}

	return fc, nil
}

// MarshalGeoJSON merges the features of every non-nil collection, in order,
// into one FeatureCollection and encodes it.
func MarshalGeoJSON(collections ...*geojson.FeatureCollection) ([]byte, error) {
	merged := geojson.NewFeatureCollection()
	for _, fc := range collections {
		if fc == nil {
			continue
		}
		merged.Features = append(merged.Features, fc.Features...)
	}

	data, err := merged.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("MarshalGeoJSON: %w", err)
	}

	return data, nil
}
