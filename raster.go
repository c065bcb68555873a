package inkfield

import "math"

// Cell lists the value types a [Raster] can hold: weights, counters and masks.
type Cell interface {
	float64 | uint32 | bool
}

// Raster is a uniformly discretized grid over the rectangle [0, Width]×[0, Height].
// Node (col, row) sits at (col*Precision, row*Precision). Values are stored in
// row-major order.
//
// The grid has floor(Width/Precision)+1 columns and floor(Height/Precision)+1
// rows, so the far edges of the domain always have a node.
type Raster[T Cell] struct {
	Width     float64
	Height    float64
	Precision float64
	Cols      int
	Rows      int

	cells []T
}

// NewRaster allocates a zeroed raster. It panics if any argument is not
// positive.
func NewRaster[T Cell](width, height, precision float64) *Raster[T] {
	if !(width > 0 && height > 0 && precision > 0) {
		panic("inkfield: raster dimensions and precision must be positive")
	}
	cols := int(math.Floor(width/precision)) + 1
	rows := int(math.Floor(height/precision)) + 1
	return &Raster[T]{
		Width:     width,
		Height:    height,
		Precision: precision,
		Cols:      cols,
		Rows:      rows,
		cells:     make([]T, cols*rows),
	}
}

// Bounds returns the domain of the raster.
func (g *Raster[T]) Bounds() Rect {
	return Rect{0, 0, g.Width, g.Height}
}

// Contains reports whether pt lies in the domain, edges included.
func (g *Raster[T]) Contains(pt Point) bool {
	return g.Bounds().ContainsClosed(pt)
}

// Cells exposes the backing slice so callers can read or write values directly.
func (g *Raster[T]) Cells() []T { return g.cells }

// Index returns the linear slice index for (col, row).
func (g *Raster[T]) Index(col, row int) int { return row*g.Cols + col }

// InGrid reports whether (col, row) addresses a node.
func (g *Raster[T]) InGrid(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// Node returns the position of node (col, row).
func (g *Raster[T]) Node(col, row int) Point {
	return Point{
		X: float64(col) * g.Precision,
		Y: float64(row) * g.Precision,
	}
}

// Cell returns the node whose cell contains pt. Points outside the domain are
// clamped to the nearest valid node.
func (g *Raster[T]) Cell(pt Point) (col, row int) {
	col = clampInt(int(math.Floor(pt.X/g.Precision)), 0, g.Cols-1)
	row = clampInt(int(math.Floor(pt.Y/g.Precision)), 0, g.Rows-1)
	return col, row
}

func (g *Raster[T]) At(col, row int) T {
	return g.cells[g.Index(col, row)]
}

func (g *Raster[T]) Set(col, row int, v T) {
	g.cells[g.Index(col, row)] = v
}

// Clear resets every node to the zero value.
func (g *Raster[T]) Clear() {
	clear(g.cells)
}

// span returns the inclusive range of node indices covering [lo, hi] along an
// axis with n nodes.
func (g *Raster[T]) span(lo, hi float64, n int) (int, int) {
	a := clampInt(int(math.Floor(lo/g.Precision)), 0, n-1)
	b := clampInt(int(math.Ceil(hi/g.Precision)), 0, n-1)
	return a, b
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
