package inkfield

import (
	"math"
)

// A Filler produces the value of a field at a position. Fillers may consume
// randomness; [Field.Fill] calls them in row-major node order so that the
// result is reproducible.
type Filler interface {
	Value(x, y float64) float64
}

// FillFunc adapts an ordinary function to the [Filler] interface.
type FillFunc func(x, y float64) float64

// Value implements Filler.
func (f FillFunc) Value(x, y float64) float64 { return f(x, y) }

// Field is a scalar field over the canvas. Higher values ask for more ink.
// Digging consumes the field with [Field.Decay] so that later strokes avoid
// retracing earlier ones.
type Field struct {
	*Raster[float64]
}

// NewField returns a zeroed field over [0, width]×[0, height] with one node
// every precision units. It panics if any argument is not positive.
func NewField(width, height, precision float64) *Field {
	return &Field{NewRaster[float64](width, height, precision)}
}

// Fill overwrites every node with the value f reports at the node's position.
func (f *Field) Fill(fill Filler) {
	for row := range f.Rows {
		for col := range f.Cols {
			pt := f.Node(col, row)
			f.Set(col, row, fill.Value(pt.X, pt.Y))
		}
	}
}

// Map replaces every node value v with fn(v).
func (f *Field) Map(fn func(float64) float64) {
	cells := f.Cells()
	for i, v := range cells {
		cells[i] = fn(v)
	}
}

// Sample returns the bilinear interpolation of the four nodes around pt.
// Coordinates are clamped into the grid first, so sampling outside the domain
// reuses the edge rows and columns instead of extrapolating. At node
// positions the stored value is returned exactly.
func (f *Field) Sample(pt Point) float64 {
	fx := min(max(pt.X/f.Precision, 0), float64(f.Cols-1))
	fy := min(max(pt.Y/f.Precision, 0), float64(f.Rows-1))
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return 0
	}
	x0 := int(fx)
	y0 := int(fy)
	x1 := min(x0+1, f.Cols-1)
	y1 := min(y0+1, f.Rows-1)
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	v00 := f.At(x0, y0)
	v10 := f.At(x1, y0)
	v01 := f.At(x0, y1)
	v11 := f.At(x1, y1)
	if tx == 0 && ty == 0 {
		return v00
	}
	top := v00*(1-tx) + v10*tx
	bottom := v01*(1-tx) + v11*tx
	return top*(1-ty) + bottom*ty
}

// Decay subtracts amount*(1-d/radius) from every node at distance d < radius
// from center.
func (f *Field) Decay(center Point, radius, amount float64) {
	if radius <= 0 {
		return
	}
	c0, c1 := f.span(center.X-radius, center.X+radius, f.Cols)
	r0, r1 := f.span(center.Y-radius, center.Y+radius, f.Rows)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			d := f.Node(col, row).Distance(center)
			if d < radius {
				i := f.Index(col, row)
				f.cells[i] -= amount * (1 - d/radius)
			}
		}
	}
}

// FindApproximateMax samples trials uniformly random points of the domain and
// returns the one with the highest value, provided that value exceeds
// minValue. It reports false when no sample clears minValue, which callers
// read as "no ink left to place".
//
// This is a Monte-Carlo stand-in for an exact arg max: it costs O(trials)
// rather than O(nodes) and does not favor the grid's iteration order.
func (f *Field) FindApproximateMax(rng *Rand, trials int, minValue float64) (Point, bool) {
	var best Point
	bestValue := math.Inf(-1)
	bounds := f.Bounds()
	for range trials {
		pt := bounds.RandomPoint(rng)
		if v := f.Sample(pt); v > bestValue {
			best = pt
			bestValue = v
		}
	}
	if bestValue > minValue {
		return best, true
	}
	return Point{}, false
}

// Max returns the largest node value.
func (f *Field) Max() float64 {
	m := math.Inf(-1)
	for _, v := range f.cells {
		m = max(m, v)
	}
	return m
}

// Sum returns the sum of all node values.
func (f *Field) Sum() float64 {
	var s float64
	for _, v := range f.cells {
		s += v
	}
	return s
}
