// Package builder produces the host-side inputs of a mesh pipeline: seeded
// point sets, per-point metadata and pure edge-weight functions.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: explicit randomness; nothing random happens without them.
//     – WithIDScheme:      point labels written by VertexData.
//   - Point sets:
//     – ScatterPoints:     n uniform points inside a bounding box.
//     – JitteredGrid:      cols×rows lattice, each point displaced inside its cell.
//   - Metadata:
//     – VertexData:        "id"/"index" maps keyed by point identity, ready for
//     core.WithVertexData.
//   - Weight functions (core.WeightFunc implementations):
//     – EuclideanWeight:   distance between node positions.
//     – ConstantWeight:    fixed value.
//     – JitteredWeight:    distance scaled by a hash-derived factor per unordered pair.
//
// Guarantees:
//
//   - Determinism: the same options and seed always give the same points.
//   - Weight functions are pure: a pair's weight never changes while it sits
//     in a priority queue.
//   - Option constructors panic on meaningless input; builders return
//     sentinel errors wrapped with the builder name.
package builder
