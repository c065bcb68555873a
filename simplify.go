package inkfield

import "slices"

// Simplify reduces the number of points of a polyline with the
// Ramer–Douglas–Peucker algorithm. The first and last points are always kept,
// and no discarded point is farther than epsilon from the simplified line.
//
// Polylines with fewer than three points are returned unchanged (as a copy).
// Simplify is idempotent: simplifying its own output with the same epsilon
// returns the same points.
func Simplify(points []Point, epsilon float64) []Point {
	if len(points) < 3 {
		return slices.Clone(points)
	}
	idx := SimplifyIndices(points, epsilon)
	out := make([]Point, len(idx))
	for i, j := range idx {
		out[i] = points[j]
	}
	return out
}

// SimplifyIndices is like [Simplify] but returns the indices of the kept points,
// in ascending order.
func SimplifyIndices(points []Point, epsilon float64) []int {
	n := len(points)
	if n < 3 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	keep := make([]bool, n)
	keep[0] = true
	keep[n-1] = true

	// Explicit stack of [start, end] ranges; routes can be thousands of points
	// long.
	stack := [][2]int{{0, n - 1}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		start, end := r[0], r[1]
		if end-start < 2 {
			continue
		}
		chord := Line{points[start], points[end]}
		split := -1
		dmax := 0.0
		for i := start + 1; i < end; i++ {
			if d := chord.PerpendicularDistance(points[i]); d > dmax {
				dmax = d
				split = i
			}
		}
		if split >= 0 && dmax > epsilon {
			keep[split] = true
			stack = append(stack, [2]int{start, split}, [2]int{split, end})
		}
	}

	var idx []int
	for i, k := range keep {
		if k {
			idx = append(idx, i)
		}
	}
	return idx
}
