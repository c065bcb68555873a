package inkfield

import "math"

// OccupancyGrid records where ink has already gone, or where it must not go.
// Each cell holds a counter; zero means free. Counters only increase.
//
// All operations clamp out-of-domain points to the nearest cell.
type OccupancyGrid struct {
	*Raster[uint32]
}

// NewOccupancyGrid returns an empty grid over [0, width]×[0, height] with
// cells of size precision. It panics if any argument is not positive.
func NewOccupancyGrid(precision, width, height float64) *OccupancyGrid {
	return &OccupancyGrid{NewRaster[uint32](width, height, precision)}
}

// MarkPoint increments the counter of pt's cell and returns the new count.
// Callers use the count to stop tracing a spot more than a few times.
func (g *OccupancyGrid) MarkPoint(pt Point) uint32 {
	col, row := g.Cell(pt)
	i := g.Index(col, row)
	g.cells[i]++
	return g.cells[i]
}

// MarkOnce sets the counter of pt's cell to 1 if it is still free.
func (g *OccupancyGrid) MarkOnce(pt Point) {
	col, row := g.Cell(pt)
	g.markCell(col, row)
}

func (g *OccupancyGrid) markCell(col, row int) {
	i := g.Index(col, row)
	if g.cells[i] == 0 {
		g.cells[i] = 1
	}
}

// Query returns the counter of pt's cell.
func (g *OccupancyGrid) Query(pt Point) uint32 {
	col, row := g.Cell(pt)
	return g.At(col, row)
}

// Occupied reports whether pt's cell has been marked.
func (g *OccupancyGrid) Occupied(pt Point) bool {
	return g.Query(pt) != 0
}

// Grow dilates every marked region by radius. Cells that become marked are set
// to 1; cells marked before the call keep their count. Only cells marked before
// the call are dilated, so one call grows by exactly radius.
func (g *OccupancyGrid) Grow(radius float64) {
	if radius <= 0 {
		return
	}
	mask := diskMask(radius, g.Precision)

	var marked []int
	for i, v := range g.cells {
		if v != 0 {
			marked = append(marked, i)
		}
	}
	for _, i := range marked {
		col, row := i%g.Cols, i/g.Cols
		for _, off := range mask {
			c, r := col+off[0], row+off[1]
			if g.InGrid(c, r) {
				g.markCell(c, r)
			}
		}
	}
}

// diskMask returns the integer offsets whose distance from the origin, in
// domain units, is below radius.
func diskMask(radius, precision float64) [][2]int {
	n := int(math.Ceil(radius / precision))
	var mask [][2]int
	for dy := -n; dy <= n; dy++ {
		for dx := -n; dx <= n; dx++ {
			if math.Hypot(float64(dx), float64(dy))*precision < radius {
				mask = append(mask, [2]int{dx, dy})
			}
		}
	}
	return mask
}

// PaintPolygon marks every cell whose node lies inside poly. Only the
// polygon's bounding box is visited.
func (g *OccupancyGrid) PaintPolygon(poly Polygon) {
	if len(poly) < 3 {
		return
	}
	bb := poly.BoundingBox().Intersect(g.Bounds())
	c0, c1 := g.span(bb.X0, bb.X1, g.Cols)
	r0, r1 := g.span(bb.Y0, bb.Y1, g.Rows)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if poly.Contains(g.Node(col, row)) {
				g.markCell(col, row)
			}
		}
	}
}

// PaintCircle marks every cell whose node lies inside c, as well as the cell
// containing the center.
func (g *OccupancyGrid) PaintCircle(c Circle) {
	g.MarkOnce(c.Center)
	bb := c.BoundingBox().Intersect(g.Bounds())
	c0, c1 := g.span(bb.X0, bb.X1, g.Cols)
	r0, r1 := g.span(bb.Y0, bb.Y1, g.Rows)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if c.Contains(g.Node(col, row)) {
				g.markCell(col, row)
			}
		}
	}
}

// PaintPolyline marks the cells crossed by the polyline. Segments are walked in
// steps of half a cell so that no cell along the way is skipped.
func (g *OccupancyGrid) PaintPolyline(pts []Point) {
	if len(pts) == 0 {
		return
	}
	g.MarkOnce(pts[0])
	step := g.Precision / 2
	for i := 1; i < len(pts); i++ {
		l := Line{pts[i-1], pts[i]}
		n := int(math.Ceil(l.Length() / step))
		for k := 1; k <= n; k++ {
			g.MarkOnce(l.Eval(float64(k) / float64(n)))
		}
	}
}

// Free returns the fraction of cells that are unmarked.
func (g *OccupancyGrid) Free() float64 {
	free := 0
	for _, v := range g.cells {
		if v == 0 {
			free++
		}
	}
	return float64(free) / float64(len(g.cells))
}
