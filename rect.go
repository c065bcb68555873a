package inkfield

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns a rectangle with the given size, extending to the right and
// down (for positive sizes) from the origin. Width and height are ensured to be
// non-negative.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(Vec(size.Width, size.Height)))
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's heigth, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Contains reports whether pt lies inside r. The right and bottom edges are
// excluded.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// ContainsClosed is like Contains but includes all four edges.
func (r Rect) ContainsClosed(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// ContainsCircle reports whether c lies entirely inside r.
func (r Rect) ContainsCircle(c Circle) bool {
	return c.Center.X-c.Radius >= r.X0 &&
		c.Center.X+c.Radius <= r.X1 &&
		c.Center.Y-c.Radius >= r.Y0 &&
		c.Center.Y+c.Radius <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting from a
// zero-area rectangle at the first point, yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Intersect returns the intersection of two rectangles.
//
// The result always has non-negative width and height.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X0, o.X0)
	y0 := max(r.Y0, o.Y0)
	x1 := min(r.X1, o.X1)
	y1 := min(r.Y1, o.Y1)
	return Rect{
		X0: x0,
		Y0: y0,
		X1: max(x0, x1),
		Y1: max(y0, y1),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Inset shrinks the rectangle by pad on every side. This is how canvas padding
// is usually expressed.
func (r Rect) Inset(pad float64) Rect {
	return r.Inflate(-pad, -pad)
}

// RandomPoint returns a uniformly distributed point inside r.
func (r Rect) RandomPoint(rng *Rand) Point {
	return Point{
		X: rng.Range(r.X0, r.X1),
		Y: rng.Range(r.Y0, r.Y1),
	}
}
