// Package converters moves meshes across the host boundary.
//
// Export:
//   - TriangulationToGeoJSON, GraphToGeoJSON and MarshalGeoJSON write
//     paulmach/orb GeoJSON feature collections (planar coordinates, no
//     projection).
//   - RenderPNG rasterizes a triangulation and a graph with fogleman/gg.
//   - WriteDXF saves both as a layered CAD drawing with yofu/dxf.
//
// Import:
//   - ReadSVGPoints collects seed points from an SVG document: circle and
//     ellipse centers, polygon and polyline vertices.
//   - ReadDXFPoints reads polyline vertices from a DXF stream with dxf-go.
//
// Converters never mutate their inputs.
package converters
