package geom

import "fmt"

// Edge is an ordered pair of point references. Order is kept for output
// stability only; Equals treats the edge as undirected.
type Edge struct {
	V0 *Point
	V1 *Point
}

// NewEdge returns the edge v0→v1.
func NewEdge(v0, v1 *Point) Edge {
	return Edge{V0: v0, V1: v1}
}

// Equals reports whether e and o join coordinate-equal endpoints,
// in either direction.
func (e Edge) Equals(o Edge) bool {
	return (e.V0.Equals(*o.V0) && e.V1.Equals(*o.V1)) ||
		(e.V0.Equals(*o.V1) && e.V1.Equals(*o.V0))
}

// SameEndpoints is the identity counterpart of Equals: both edges must
// reference the very same point instances, in either direction.
func (e Edge) SameEndpoints(o Edge) bool {
	return (e.V0 == o.V0 && e.V1 == o.V1) || (e.V0 == o.V1 && e.V1 == o.V0)
}

// Inverse returns a new edge with v0 and v1 swapped.
func (e Edge) Inverse() Edge {
	return Edge{V0: e.V1, V1: e.V0}
}

// Length returns the distance between the endpoints.
func (e Edge) Length() float64 {
	return e.V0.Distance(*e.V1)
}

// String implements fmt.Stringer.
func (e Edge) String() string {
	return fmt.Sprintf("%v-%v", *e.V0, *e.V1)
}
