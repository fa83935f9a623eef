// Package procgen runs the full mesh pipeline behind a single call:
//
//	points → Delaunay triangulation → graph → MST reduction → edge restoration
//
// The pipeline is driven by a Config, usually loaded from YAML, and reports
// progress through an optional zap logger. Results can be written as GeoJSON
// and PNG with Export.
package procgen
