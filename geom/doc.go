// Package geom provides the 2-D primitives shared by the triangulator and
// the graph packages: Point, Edge, Triangle (with its circumcircle) and BBox.
//
// What:
//
//   - Point is a plain value; equality is exact coordinate match, no tolerance.
//   - Edge references two *Point values; equality is undirected, so
//     Edge{a, b} equals Edge{b, a}.
//   - Triangle references three *Point values and carries a circumcircle that
//     is computed once by NewTriangle and never recomputed.
//   - BBox tracks independent per-axis extrema of a point set.
//
// Degenerate triangles:
//
//	Collinear (or coincident) vertices have no circumcircle. NewTriangle then
//	falls back to the midpoint of the vertices' bounding box as the center and
//	the distance from that midpoint to the box's minimum corner as the radius.
//
// Precision:
//
//	InCircumcircle is boundary-inclusive (dist <= radius). For near-cocircular
//	point sets this makes cavity membership depend on insertion order. The
//	comparison is kept as is; changing it alters triangulation output.
package geom
