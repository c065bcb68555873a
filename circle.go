package inkfield

import (
	"iter"
	"math"
)

// Circle is a disk on the canvas. It is the record the packer places.
type Circle struct {
	Center Point
	Radius float64
}

// Circ returns the circle centered on (x, y) with radius r.
func Circ(x, y, r float64) Circle {
	return Circle{Center: Pt(x, y), Radius: r}
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}

// Collides reports whether c and o touch or overlap, that is whether the
// distance between their centers minus both radii is not positive.
func (c Circle) Collides(o Circle) bool {
	return c.Center.Distance(o.Center)-c.Radius-o.Radius <= 0
}

// Ring yields n points evenly spaced on the circle's boundary, starting at angle 0.
func (c Circle) Ring(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n <= 0 {
			return
		}
		step := 2 * math.Pi / float64(n)
		for i := range n {
			if !yield(c.Center.Step(float64(i)*step, c.Radius)) {
				return
			}
		}
	}
}

// Polyline returns the outline of the circle as n segments. The first point is
// repeated at the end so the outline is closed.
func (c Circle) Polyline(n int) []Point {
	if n < 3 {
		n = 3
	}
	pts := make([]Point, 0, n+1)
	for pt := range c.Ring(n) {
		pts = append(pts, pt)
	}
	return append(pts, pts[0])
}

// Area returns the area of the disk.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}
