package inkfield

import (
	"cmp"
	"slices"
)

// Route is a digitized stroke: an ordered sequence of points, consecutive
// points roughly one digging step apart until the route is simplified.
type Route []Point

// Steps returns the number of segments of the route.
func (r Route) Steps() int {
	if len(r) == 0 {
		return 0
	}
	return len(r) - 1
}

// Length returns the arc length of the route.
func (r Route) Length() float64 {
	var l float64
	for i := 1; i < len(r); i++ {
		l += r[i-1].Distance(r[i])
	}
	return l
}

// Simplify returns the route simplified with [Simplify].
func (r Route) Simplify(epsilon float64) Route {
	return Route(Simplify(r, epsilon))
}

// Stroke is a polyline tagged with the ink it is drawn with.
type Stroke struct {
	Ink    int
	Points []Point
}

// Layer holds every polyline of one ink.
type Layer struct {
	Ink       int
	Polylines [][]Point
}

// Layers groups strokes by ink. Layers are ordered by ink; within a layer the
// strokes keep their original order.
func Layers(strokes []Stroke) []Layer {
	var layers []Layer
	for _, s := range strokes {
		i, found := slices.BinarySearchFunc(layers, s.Ink, func(l Layer, ink int) int {
			return cmp.Compare(l.Ink, ink)
		})
		if !found {
			layers = slices.Insert(layers, i, Layer{Ink: s.Ink})
		}
		layers[i].Polylines = append(layers[i].Polylines, s.Points)
	}
	return layers
}
