// SPDX-License-Identifier: MIT
// Package: procmesh/builder
//
// points.go — seeded point-set builders.

package builder

import (
	"math"

	"github.com/katalvlaran/procmesh/geom"
)

// ScatterPoints returns n points drawn uniformly inside bounds.
//
// Errors:
//   - ErrTooFewPoints:   n < MinScatterPoints.
//   - ErrInvalidBounds:  bounds empty, flat on an axis or non-finite.
//   - ErrNeedRandSource: no WithSeed/WithRand supplied.
//
// Complexity: O(n).
func ScatterPoints(n int, bounds geom.BBox, opts ...BuilderOption) ([]*geom.Point, error) {
	cfg := newBuilderConfig(opts...)

	if n < MinScatterPoints {
		return nil, builderErrorf(MethodScatterPoints, ErrTooFewPoints, "n must be ≥ %d, got %d", MinScatterPoints, n)
	}
	if err := validateBounds(MethodScatterPoints, bounds); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, builderErrorf(MethodScatterPoints, ErrNeedRandSource, "n=%d", n)
	}

	w, h := bounds.Width(), bounds.Height()
	pts := make([]*geom.Point, n)
	for i := range pts {
		pts[i] = geom.NewPoint(
			bounds.Min.X+cfg.rng.Float64()*w,
			bounds.Min.Y+cfg.rng.Float64()*h,
		)
	}

	return pts, nil
}

// JitteredGrid returns a cols×rows lattice with the given spacing, origin at
// (0,0), row-major order. Each point is displaced on both axes by up to
// jitter*spacing. A jitter of 0 gives the plain lattice and needs no RNG.
//
// Errors:
//   - ErrTooFewPoints:   cols or rows < MinGridDim.
//   - ErrInvalidBounds:  spacing ≤ 0 or non-finite.
//   - ErrInvalidJitter:  jitter outside [0, MaxJitter).
//   - ErrNeedRandSource: jitter > 0 without WithSeed/WithRand.
//
// Complexity: O(cols*rows).
func JitteredGrid(cols, rows int, spacing, jitter float64, opts ...BuilderOption) ([]*geom.Point, error) {
	cfg := newBuilderConfig(opts...)

	if cols < MinGridDim || rows < MinGridDim {
		return nil, builderErrorf(MethodJitteredGrid, ErrTooFewPoints, "dimensions must be ≥ %d, got %dx%d", MinGridDim, cols, rows)
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, builderErrorf(MethodJitteredGrid, ErrInvalidBounds, "spacing %g", spacing)
	}
	if !(jitter >= 0 && jitter < MaxJitter) {
		return nil, builderErrorf(MethodJitteredGrid, ErrInvalidJitter, "jitter %g not in [0,%g)", jitter, MaxJitter)
	}
	if jitter > 0 && cfg.rng == nil {
		return nil, builderErrorf(MethodJitteredGrid, ErrNeedRandSource, "jitter %g", jitter)
	}

	amp := jitter * spacing
	pts := make([]*geom.Point, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x, y := float64(c)*spacing, float64(r)*spacing
			if amp > 0 {
				x += (cfg.rng.Float64()*2 - 1) * amp
				y += (cfg.rng.Float64()*2 - 1) * amp
			}
			pts = append(pts, geom.NewPoint(x, y))
		}
	}

	return pts, nil
}

// VertexData labels each non-nil point with its ID (per the configured
// IDFn) under KeyID and its slice position under KeyIndex. The result is
// keyed by point identity, the form core.WithVertexData expects.
// Complexity: O(len(points)).
func VertexData(points []*geom.Point, opts ...BuilderOption) map[*geom.Point]map[string]interface{} {
	cfg := newBuilderConfig(opts...)

	data := make(map[*geom.Point]map[string]interface{}, len(points))
	for i, p := range points {
		if p == nil {
			continue
		}
		data[p] = map[string]interface{}{
			KeyID:    cfg.idFn(i),
			KeyIndex: i,
		}
	}

	return data
}

// validateBounds rejects empty, flat and non-finite boxes.
func validateBounds(method string, b geom.BBox) error {
	for _, v := range []float64{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return builderErrorf(method, ErrInvalidBounds, "non-finite bounds %v-%v", b.Min, b.Max)
		}
	}
	if !(b.Width() > 0 && b.Height() > 0) {
		return builderErrorf(method, ErrInvalidBounds, "extent %gx%g", b.Width(), b.Height())
	}

	return nil
}
