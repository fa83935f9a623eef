// Package procmesh turns scattered points into a procedural network: a
// Delaunay mesh reduced to a minimum spanning tree, with a controlled share
// of the discarded edges restored as loops.
//
// 🚀 What is procmesh?
//
//	A small set of packages used by level, road and river generators:
//		• Geometry primitives: points, edges, triangles with circumcircles
//		• Triangulation: incremental Bowyer–Watson
//		• Graph: identity-keyed construction from mesh edges
//		• Minimum spanning trees: in-place Prim, Kruskal
//		• Loop restoration: cheapest discarded edges first
//		• Traversal: BFS layering, Dijkstra distances
//		• Host boundary: GeoJSON, PNG and DXF out; SVG or DXF seed points in
//
// Under the hood, everything is organized under these subpackages:
//
//	geom/         — Point, Edge, Triangle, BBox
//	binheap/      — generic binary min-heap
//	core/         — Graph and Node with explicit tree/old-edge adjacency
//	delaunay/     — Triangulation (Clear, Triangulate)
//	prim_kruskal/ — Prim, RestoreOldEdges, Kruskal
//	bfs/          — breadth-first layering
//	dijkstra/     — weighted distances over the final network
//	builder/      — seeded point sets, weight functions, node metadata
//	converters/   — GeoJSON (orb), PNG (gg), DXF (yofu/dxf, dxf-go), SVG input
//	procgen/      — the whole pipeline from a YAML Config
//	cmd/meshgen/  — command-line front end
//
// Quick Start:
//
//	pts, _ := builder.ScatterPoints(64, geom.BoundsOf(geom.Point{}, geom.Point{X: 100, Y: 100}), builder.WithSeed(1))
//	mesh := delaunay.New()
//	mesh.Triangulate(pts, true)
//	g := core.NewGraph()
//	g.Create(mesh.Edges)
//	_ = prim_kruskal.Prim(g, builder.EuclideanWeight, true)
//	_, _ = prim_kruskal.RestoreOldEdges(g, 0.15, builder.EuclideanWeight)
//
// None of the library packages are safe for concurrent mutation; callers
// serialize access to a Graph or Triangulation.
package procmesh
