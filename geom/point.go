package geom

import (
	"fmt"
	"math"
)

// Point is a position in the XY plane.
type Point struct {
	X float64
	Y float64
}

// NewPoint allocates a Point. Graph construction keys nodes by pointer
// identity, so callers that want two coordinate-equal points to stay distinct
// must allocate them separately.
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// Equals reports exact coordinate equality.
func (p Point) Equals(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
