package builder

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/katalvlaran/procmesh/core"
)

// EuclideanWeight is the straight-line distance between node positions.
// Complexity: O(1). Never panics.
func EuclideanWeight(a, b *core.Node) float64 {
	return a.Pos.Distance(b.Pos)
}

// ConstantWeight returns a weight function that always yields value.
// Every spanning tree then weighs the same, so Prim's result depends only
// on adjacency order. Panics if value < 0 or NaN.
func ConstantWeight(value float64) core.WeightFunc {
	if !(value >= 0) {
		panic(fmt.Sprintf("ConstantWeight: value must be ≥ 0, got %g", value))
	}

	return func(_, _ *core.Node) float64 {
		return value
	}
}

// JitteredWeight returns the Euclidean distance scaled by a factor in
// [1-amplitude, 1+amplitude). The factor is a hash of seed and the two
// positions taken in canonical order, so (a,b) and (b,a) agree and repeated
// calls return the same value. Panics unless 0 ≤ amplitude < 1.
//
// Useful for carving less regular corridors: short edges can lose to
// slightly longer ones.
func JitteredWeight(seed int64, amplitude float64) core.WeightFunc {
	if !(amplitude >= 0 && amplitude < 1) {
		panic(fmt.Sprintf("JitteredWeight: amplitude must be in [0,1), got %g", amplitude))
	}

	return func(a, b *core.Node) float64 {
		u := pairNoise(seed, a, b)

		return a.Pos.Distance(b.Pos) * (1 + amplitude*(2*u-1))
	}
}

// pairNoise maps an unordered pair of positions to [0,1).
func pairNoise(seed int64, a, b *core.Node) float64 {
	p, q := a.Pos, b.Pos
	if q.X < p.X || (q.X == p.X && q.Y < p.Y) {
		p, q = q, p
	}

	var buf [40]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.X))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(p.Y))
	binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(q.X))
	binary.LittleEndian.PutUint64(buf[32:], math.Float64bits(q.Y))

	h := fnv.New64a()
	_, _ = h.Write(buf[:])

	// Top 53 bits give a uniform float64 in [0,1).
	return float64(h.Sum64()>>11) / (1 << 53)
}
