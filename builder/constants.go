package builder

// Builder names prefixed to returned errors.
const (
	// MethodScatterPoints is the canonical name for ScatterPoints.
	MethodScatterPoints = "ScatterPoints"
	// MethodJitteredGrid is the canonical name for JitteredGrid.
	MethodJitteredGrid = "JitteredGrid"
)

// MinScatterPoints is the smallest point count that can triangulate.
const MinScatterPoints = 3

// MinGridDim is the smallest number of columns or rows for JitteredGrid.
// A 2×2 lattice is the smallest that produces a non-degenerate mesh.
const MinGridDim = 2

// MaxJitter bounds the JitteredGrid displacement as a fraction of spacing.
// Staying below one half keeps every point inside its own cell.
const MaxJitter = 0.5

// DefaultEdgeWeight is the per-edge weight of uniform-weight meshes.
const DefaultEdgeWeight = 1.0

// Metadata keys written by VertexData.
const (
	KeyID    = "id"
	KeyIndex = "index"
)
