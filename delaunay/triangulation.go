package delaunay

import (
	"math"

	"github.com/katalvlaran/procmesh/geom"
)

// superScale is the factor applied to the input extent when sizing the
// enclosing super-triangle.
const superScale = 10

// Triangulation is the result of the last Triangulate call.
type Triangulation struct {
	// Triangles is the final mesh.
	Triangles []*geom.Triangle
	// Edges holds unique mesh edges; empty unless requested.
	Edges []geom.Edge
	// Vertices echoes the input points.
	Vertices []*geom.Point
}

// New returns an empty triangulation.
func New() *Triangulation {
	return &Triangulation{}
}

// Clear resets triangles, edges and vertices to empty.
func (t *Triangulation) Clear() {
	t.Triangles = nil
	t.Edges = nil
	t.Vertices = nil
}

// Triangulate replaces the current state with the Delaunay triangulation of
// points. When calcEdges is true, Edges receives every mesh edge once.
//
// Nil entries in points are skipped. Fewer than three usable points give
// an empty mesh.
func (t *Triangulation) Triangulate(points []*geom.Point, calcEdges bool) {
	t.Edges = nil
	t.Vertices = points
	t.Triangles = nil

	if len(points) == 0 {
		return
	}

	st := SuperTriangle(points)
	t.Triangles = []*geom.Triangle{st}

	for _, v := range points {
		if v == nil {
			continue
		}
		t.addVertex(v)
	}

	if calcEdges {
		for _, tri := range t.Triangles {
			for _, e := range tri.Edges() {
				if st.HasVertex(e.V0) || st.HasVertex(e.V1) {
					continue
				}
				if !t.edgeExists(e) {
					t.Edges = append(t.Edges, e)
				}
			}
		}
	}

	kept := t.Triangles[:0]
	for _, tri := range t.Triangles {
		if st.HasVertex(tri.V0) || st.HasVertex(tri.V1) || st.HasVertex(tri.V2) {
			continue
		}
		kept = append(kept, tri)
	}
	for i := len(kept); i < len(t.Triangles); i++ {
		t.Triangles[i] = nil
	}
	t.Triangles = kept
}

// addVertex removes every triangle whose circumcircle contains v and fans
// the cavity boundary to v.
func (t *Triangulation) addVertex(v *geom.Point) {
	var cavity []geom.Edge

	kept := t.Triangles[:0]
	for _, tri := range t.Triangles {
		if tri.InCircumcircle(*v) {
			e := tri.Edges()
			cavity = append(cavity, e[0], e[1], e[2])
			continue
		}
		kept = append(kept, tri)
	}
	t.Triangles = kept

	for _, e := range UniqueEdges(cavity) {
		t.Triangles = append(t.Triangles, geom.NewTriangle(e.V0, e.V1, v))
	}
}

// edgeExists reports whether an undirected equal of e is already in Edges.
func (t *Triangulation) edgeExists(e geom.Edge) bool {
	for _, o := range t.Edges {
		if e.Equals(o) {
			return true
		}
	}

	return false
}

// UniqueEdges returns the edges that occur exactly once in edges, compared
// undirected. An edge present two or more times is dropped entirely: shared
// internal edges of adjacent cavity triangles cancel out, leaving the
// cavity's outer boundary.
//
// Complexity: O(k²).
func UniqueEdges(edges []geom.Edge) []geom.Edge {
	var unique []geom.Edge
	for i := range edges {
		isUnique := true
		for j := range edges {
			if i != j && edges[i].Equals(edges[j]) {
				isUnique = false
				break
			}
		}
		if isUnique {
			unique = append(unique, edges[i])
		}
	}

	return unique
}

// SuperTriangle returns a triangle enclosing every point, built around the
// per-axis bounding box with its larger extent scaled by superScale:
//
//	(minx-d, maxy+d) ───────── (maxx+3d, maxy+d)
//	       │                  ╱
//	       │     [bbox]     ╱
//	       │             ╱
//	(minx-d, miny-3d)
//
// A zero extent (single point, or all points coincident) uses d = superScale.
func SuperTriangle(points []*geom.Point) *geom.Triangle {
	box := geom.BoundsOfRefs(points)
	if box.Empty() {
		box = geom.BoundsOf(geom.Point{})
	}

	d := math.Max(box.Width(), box.Height()) * superScale
	if d == 0 {
		d = superScale
	}

	v0 := geom.NewPoint(box.Min.X-d, box.Min.Y-d*3)
	v1 := geom.NewPoint(box.Min.X-d, box.Max.Y+d)
	v2 := geom.NewPoint(box.Max.X+d*3, box.Max.Y+d)

	return geom.NewTriangle(v0, v1, v2)
}
