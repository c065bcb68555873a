package inkfield

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the closest point on the
// segment, and that point's parameter t ∈ [0, 1].
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// PerpendicularDistance returns the distance from pt to the infinite line
// through P0 and P1. For a degenerate line it is the distance to P0.
func (l Line) PerpendicularDistance(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	n := d.Hypot()
	if n == 0 {
		return pt.Distance(l.P0)
	}
	return math.Abs(d.Cross(pt.Sub(l.P0))) / n
}
