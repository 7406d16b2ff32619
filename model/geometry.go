package model

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a position in plotter units.
type Point = vec.Vec2

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return b.Sub(a).Length()
}

// BBox is an axis-aligned bounding box stored as its two extreme corners.
// The zero value is a degenerate box at the origin; use EmptyBBox to start
// an accumulation.
type BBox struct {
	Min Point // lower-left corner
	Max Point // upper-right corner
}

// EmptyBBox returns a box that contains no points. Extending it with the
// first point yields a degenerate box at that point.
func EmptyBBox() BBox {
	return BBox{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// NewBBoxFromPoints creates a bounding box spanning two points
func NewBBoxFromPoints(p1, p2 Point) BBox {
	return BBox{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// IsEmpty returns true if no point has been added to the box.
func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Extend returns the smallest box containing b and p.
func (b BBox) Extend(p Point) BBox {
	return BBox{
		Min: Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	if other.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return other
	}
	return b.Extend(other.Min).Extend(other.Max)
}

// Width returns the horizontal extent
func (b BBox) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent
func (b BBox) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
	}
}

// Contains checks if a point is inside the bounding box, edges included
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Expand expands the bounding box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	if b.IsEmpty() {
		return b
	}
	return BBox{
		Min: Point{X: b.Min.X - margin, Y: b.Min.Y - margin},
		Max: Point{X: b.Max.X + margin, Y: b.Max.Y + margin},
	}
}

// Scale multiplies both corners by f. A negative f is not supported.
func (b BBox) Scale(f float64) BBox {
	if b.IsEmpty() {
		return b
	}
	return BBox{Min: b.Min.Mul(f), Max: b.Max.Mul(f)}
}
