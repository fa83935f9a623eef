package geom

import "math"

// DegenerateTolerance is the relative threshold under which the circumcircle
// determinant is treated as zero. It is scaled by the squared lengths of the
// two edges leaving V0, so the test does not depend on coordinate magnitude.
const DegenerateTolerance = 1e-12

// Triangle references three vertices and caches their circumcircle.
// A Triangle is effectively immutable: Center and Radius are derived once
// by NewTriangle and must not be edited by callers.
type Triangle struct {
	V0 *Point
	V1 *Point
	V2 *Point

	// Center of the circumcircle (or bbox midpoint for degenerate input).
	Center Point
	// Radius of the circumcircle.
	Radius float64
}

// NewTriangle builds a triangle and computes its circumcircle.
//
// Steps (bisector intersection, comp.graphics.algorithms FAQ 1.04):
//  1. A,B = V1-V0; C,D = V2-V0.
//  2. E = A(V0.x+V1.x) + B(V0.y+V1.y); F = C(V0.x+V2.x) + D(V0.y+V2.y).
//  3. G = 2(A(V2.y-V1.y) - B(V2.x-V1.x)).
//  4. If G is numerically zero the vertices are collinear: use the midpoint
//     of their bounding box and the distance to its minimum corner.
//  5. Otherwise center = ((DE-BF)/G, (AF-CE)/G), radius = |center-V0|.
//
// Complexity: O(1).
func NewTriangle(v0, v1, v2 *Point) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2}
	t.Center, t.Radius = circumcircle(*v0, *v1, *v2)

	return t
}

func circumcircle(p0, p1, p2 Point) (Point, float64) {
	a := p1.X - p0.X
	b := p1.Y - p0.Y
	c := p2.X - p0.X
	d := p2.Y - p0.Y

	e := a*(p0.X+p1.X) + b*(p0.Y+p1.Y)
	f := c*(p0.X+p2.X) + d*(p0.Y+p2.Y)

	g := 2.0 * (a*(p2.Y-p1.Y) - b*(p2.X-p1.X))

	scale := a*a + b*b + c*c + d*d
	if math.Abs(g) <= DegenerateTolerance*scale {
		box := BoundsOf(p0, p1, p2)
		center := box.Center()

		return center, center.Distance(box.Min)
	}

	center := Point{
		X: (d*e - b*f) / g,
		Y: (a*f - c*e) / g,
	}

	return center, center.Distance(p0)
}

// Copy returns a new triangle over the same vertex references.
// The circumcircle is re-derived rather than copied.
func (t *Triangle) Copy() *Triangle {
	return NewTriangle(t.V0, t.V1, t.V2)
}

// InCircumcircle reports whether p lies inside the circumcircle or on it.
func (t *Triangle) InCircumcircle(p Point) bool {
	return t.Center.Distance(p) <= t.Radius
}

// Edges returns (V0,V1), (V1,V2), (V2,V0).
func (t *Triangle) Edges() [3]Edge {
	return [3]Edge{
		{V0: t.V0, V1: t.V1},
		{V0: t.V1, V1: t.V2},
		{V0: t.V2, V1: t.V0},
	}
}

// HasVertex reports whether p is one of the triangle's vertex references.
func (t *Triangle) HasVertex(p *Point) bool {
	return t.V0 == p || t.V1 == p || t.V2 == p
}

// Area returns the unsigned area.
func (t *Triangle) Area() float64 {
	cross := (t.V1.X-t.V0.X)*(t.V2.Y-t.V0.Y) - (t.V1.Y-t.V0.Y)*(t.V2.X-t.V0.X)

	return math.Abs(cross) / 2
}
