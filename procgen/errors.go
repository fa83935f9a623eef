package procgen

import "errors"

var (
	// ErrInvalidConfig indicates a Config that fails Validate.
	ErrInvalidConfig = errors.New("procgen: invalid config")

	// ErrEmptyMesh indicates the point set produced no triangles.
	ErrEmptyMesh = errors.New("procgen: empty mesh")
)
