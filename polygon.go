package inkfield

// Polygon is a closed polygon given by its vertices. The closing edge from the
// last vertex back to the first is implicit.
type Polygon []Point

// Contains reports whether pt is inside the polygon using the even-odd rule.
func (poly Polygon) Contains(pt Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// BoundingBox returns the smallest rectangle enclosing all vertices. An empty
// polygon has a zero rectangle.
func (poly Polygon) BoundingBox() Rect {
	if len(poly) == 0 {
		return Rect{}
	}
	r := Rect{poly[0].X, poly[0].Y, poly[0].X, poly[0].Y}
	for _, pt := range poly[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}
