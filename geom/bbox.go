package geom

import "math"

// BBox is an axis-aligned bounding box. The zero value is not empty; use
// EmptyBBox or BoundsOf to start an accumulation.
type BBox struct {
	Min Point
	Max Point
}

// EmptyBBox returns a box that contains nothing; Extend grows it.
func EmptyBBox() BBox {
	return BBox{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// BoundsOf returns the bounding box of pts. Each axis is tracked
// independently.
func BoundsOf(pts ...Point) BBox {
	b := EmptyBBox()
	for _, p := range pts {
		b = b.Extend(p)
	}

	return b
}

// BoundsOfRefs is BoundsOf over point references; nil entries are skipped.
func BoundsOfRefs(pts []*Point) BBox {
	b := EmptyBBox()
	for _, p := range pts {
		if p == nil {
			continue
		}
		b = b.Extend(*p)
	}

	return b
}

// Extend returns b grown to include p.
func (b BBox) Extend(p Point) BBox {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)

	return b
}

// Empty reports whether no point has been added.
func (b BBox) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Width is the X extent.
func (b BBox) Width() float64 { return b.Max.X - b.Min.X }

// Height is the Y extent.
func (b BBox) Height() float64 { return b.Max.Y - b.Min.Y }

// Center is the midpoint of the box.
func (b BBox) Center() Point {
	return Point{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Contains reports whether p lies inside b or on its border.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
