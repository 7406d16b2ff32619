package model

// Path is one contiguous pen-down polyline, in emission order.
// A path inside a Drawing always holds at least one point.
type Path []Point

// Drawable reports whether the path describes at least one line segment.
// Single-point paths record a pen touch without movement.
func (p Path) Drawable() bool {
	return len(p) >= 2
}

// Segments returns the number of line segments in the path
func (p Path) Segments() int {
	if len(p) < 2 {
		return 0
	}
	return len(p) - 1
}

// Bounds returns the bounding box of the path
func (p Path) Bounds() BBox {
	b := EmptyBBox()
	for _, pt := range p {
		b = b.Extend(pt)
	}
	return b
}

// Drawing is the ordered set of paths produced by one parse of a
// command stream. Coordinates are in plotter units.
type Drawing struct {
	Paths []Path
}

// NewDrawing creates a drawing holding the given paths
func NewDrawing(paths ...Path) *Drawing {
	return &Drawing{Paths: paths}
}

// AddPath appends a path. Empty paths are ignored.
func (d *Drawing) AddPath(p Path) {
	if len(p) == 0 {
		return
	}
	d.Paths = append(d.Paths, p)
}

// PathCount returns the number of paths, drawable or not
func (d *Drawing) PathCount() int {
	return len(d.Paths)
}

// PointCount returns the total number of points over all paths
func (d *Drawing) PointCount() int {
	n := 0
	for _, p := range d.Paths {
		n += len(p)
	}
	return n
}

// SegmentCount returns the total number of line segments
func (d *Drawing) SegmentCount() int {
	n := 0
	for _, p := range d.Paths {
		n += p.Segments()
	}
	return n
}

// Empty returns true if the drawing holds no points at all
func (d *Drawing) Empty() bool {
	return d == nil || d.PointCount() == 0
}

// Each calls fn for every point of every path, in order.
func (d *Drawing) Each(fn func(Point)) {
	for _, p := range d.Paths {
		for _, pt := range p {
			fn(pt)
		}
	}
}

// Drawable returns the paths that describe at least one segment
func (d *Drawing) Drawable() []Path {
	var out []Path
	for _, p := range d.Paths {
		if p.Drawable() {
			out = append(out, p)
		}
	}
	return out
}
