package builder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/procmesh/builder"
	"github.com/katalvlaran/procmesh/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geomPoint(x, y float64) *geom.Point { return geom.NewPoint(x, y) }

func TestScatterPoints(t *testing.T) {
	t.Parallel()

	box := geom.BoundsOf(geom.Point{X: -10, Y: 5}, geom.Point{X: 30, Y: 25})
	pts, err := builder.ScatterPoints(200, box, builder.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, pts, 200)
	for _, p := range pts {
		require.NotNil(t, p)
		assert.True(t, box.Contains(*p), "%v outside %v", *p, box)
	}

	// Same seed → same points; distinct instances.
	again, err := builder.ScatterPoints(200, box, builder.WithSeed(1))
	require.NoError(t, err)
	for i := range pts {
		assert.Equal(t, *pts[i], *again[i])
		assert.NotSame(t, pts[i], again[i])
	}
}

func TestScatterPoints_Errors(t *testing.T) {
	t.Parallel()

	good := geom.BoundsOf(geom.Point{}, geom.Point{X: 1, Y: 1})
	cases := []struct {
		name string
		n    int
		box  geom.BBox
		opts []builder.BuilderOption
		want error
	}{
		{"tooFew", 2, good, []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewPoints},
		{"empty", 10, geom.EmptyBBox(), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidBounds},
		{"flat", 10, geom.BoundsOf(geom.Point{}, geom.Point{X: 5}), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidBounds},
		{"inf", 10, geom.BoundsOf(geom.Point{}, geom.Point{X: math.Inf(1), Y: 1}), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidBounds},
		{"noRNG", 10, good, nil, builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pts, err := builder.ScatterPoints(tc.n, tc.box, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, pts)
			assert.Contains(t, err.Error(), builder.MethodScatterPoints)
		})
	}
}

func TestJitteredGrid(t *testing.T) {
	t.Parallel()

	// Zero jitter: exact lattice, no RNG needed.
	pts, err := builder.JitteredGrid(3, 2, 10, 0)
	require.NoError(t, err)
	require.Len(t, pts, 6)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, *pts[0])
	assert.Equal(t, geom.Point{X: 20, Y: 0}, *pts[2])
	assert.Equal(t, geom.Point{X: 10, Y: 10}, *pts[4])

	// Jittered points stay within their cell.
	const spacing, jitter = 4.0, 0.25
	pts, err = builder.JitteredGrid(5, 4, spacing, jitter, builder.WithSeed(9))
	require.NoError(t, err)
	require.Len(t, pts, 20)
	for i, p := range pts {
		cx, cy := float64(i%5)*spacing, float64(i/5)*spacing
		assert.LessOrEqual(t, math.Abs(p.X-cx), jitter*spacing)
		assert.LessOrEqual(t, math.Abs(p.Y-cy), jitter*spacing)
	}
}

func TestJitteredGrid_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.JitteredGrid(1, 5, 1, 0)
	assert.ErrorIs(t, err, builder.ErrTooFewPoints)
	_, err = builder.JitteredGrid(3, 3, 0, 0)
	assert.ErrorIs(t, err, builder.ErrInvalidBounds)
	_, err = builder.JitteredGrid(3, 3, math.NaN(), 0)
	assert.ErrorIs(t, err, builder.ErrInvalidBounds)
	_, err = builder.JitteredGrid(3, 3, 1, builder.MaxJitter)
	assert.ErrorIs(t, err, builder.ErrInvalidJitter)
	_, err = builder.JitteredGrid(3, 3, 1, -0.1)
	assert.ErrorIs(t, err, builder.ErrInvalidJitter)
	_, err = builder.JitteredGrid(3, 3, 1, 0.2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestVertexData(t *testing.T) {
	t.Parallel()

	a, b := geom.NewPoint(0, 0), geom.NewPoint(1, 1)
	data := builder.VertexData([]*geom.Point{a, nil, b}, builder.WithExcelColumnIDs())
	require.Len(t, data, 2)
	assert.Equal(t, "A", data[a][builder.KeyID])
	assert.Equal(t, 0, data[a][builder.KeyIndex])
	assert.Equal(t, "C", data[b][builder.KeyID])
	assert.Equal(t, 2, data[b][builder.KeyIndex])
}
