// Package delaunay builds a 2-D Delaunay triangulation of a point set with
// the incremental Bowyer–Watson algorithm.
//
// What:
//
//   - Triangulation holds the working and result sets: Triangles, Edges
//     (unique, only when requested) and Vertices (an echo of the input).
//   - Triangulate always re-derives everything from scratch; there is no
//     incremental insert or remove once it returns. Clear empties all three.
//
// Algorithm:
//
//  1. Seed the working set with a super-triangle enclosing the input's
//     bounding box scaled 10×.
//  2. Insert each point in input order: drop every triangle whose
//     circumcircle contains it, keep the edges of the dropped triangles that
//     occur exactly once (the cavity boundary) and fan them to the point.
//  3. Optionally collect the unique edges that do not touch the
//     super-triangle.
//  4. Drop every triangle that still references a super-triangle vertex.
//
// Complexity:
//
//	Triangle filtering is O(T) per insertion and cavity-edge cancellation is
//	O(k²) for k cavity edges, so the whole run is roughly O(n²) on typical
//	inputs. Aimed at the few-thousand-point sets of procedural generation,
//	not at large-scale meshing.
//
// Precision:
//
//	Plain float64 arithmetic, no exact predicates. Points exactly on a
//	circumcircle count as inside (see geom.Triangle.InCircumcircle), so
//	cocircular inputs may triangulate differently depending on order.
//	Duplicate input points are not removed and can yield zero-area
//	triangles; deduplicating input is the caller's job.
package delaunay
