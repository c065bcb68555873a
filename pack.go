package inkfield

import (
	"slices"
)

// radiusTolerance is the absolute precision of BinarySearchRadius.
const radiusTolerance = 0.1

// BinarySearchRadius returns the largest size in [min, max] for which test holds,
// to within 0.1 units. test must be monotonic: true below some threshold and
// false above it. It reports false if test(min) is already false.
func BinarySearchRadius(test func(float64) bool, min, max float64) (float64, bool) {
	if !test(min) {
		return 0, false
	}
	if test(max) {
		return max, true
	}
	lo, hi := min, max
	for hi-lo > radiusTolerance {
		mid := (lo + hi) / 2
		if test(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, true
}

// PackOptions configures [Pack].
type PackOptions struct {
	// Iterations is the number of candidate centers drawn.
	Iterations int
	// DesiredCount stops packing once that many circles were added.
	DesiredCount int
	// BatchSize is the number of candidates gathered before the largest one
	// is committed.
	BatchSize int
	// Pad is subtracted from every committed radius, leaving a gap between
	// neighbouring circles.
	Pad float64
	// Bounds is the area candidate centers are drawn from.
	Bounds Rect

	MinRadius float64
	MaxRadius float64
}

// Pack places non-overlapping circles. The result starts with a copy of
// existing, which new circles avoid.
//
// Each iteration draws a random center in Bounds and searches the largest
// radius in [MinRadius, MaxRadius] for which valid (nil means always valid)
// accepts the circle and the circle does not collide with any accepted one.
// Candidates accumulate in a batch; once the batch holds more than BatchSize
// circles, only the largest is committed, with Pad subtracted from its radius,
// and the batch is discarded. Committing big circles first makes the small
// ones fill the gaps, much like physical packing.
//
// If nothing fits, Pack returns existing unchanged.
func Pack(existing []Circle, rng *Rand, opts PackOptions, valid func(Circle) bool) []Circle {
	circles := slices.Clone(existing)
	var batch []Circle
	added := 0
	for range opts.Iterations {
		if added >= opts.DesiredCount {
			break
		}
		center := opts.Bounds.RandomPoint(rng)
		fits := func(r float64) bool {
			c := Circle{center, r}
			if valid != nil && !valid(c) {
				return false
			}
			for _, o := range circles {
				if c.Collides(o) {
					return false
				}
			}
			return true
		}
		r, ok := BinarySearchRadius(fits, opts.MinRadius, opts.MaxRadius)
		if !ok || r-opts.Pad <= 0 {
			continue
		}
		c := Circle{center, r - opts.Pad}
		if opts.Pad > 0 && valid != nil && !valid(c) {
			// valid need not be monotonic for the shrunk circle.
			continue
		}
		batch = append(batch, c)
		if len(batch) > opts.BatchSize {
			best := slices.MaxFunc(batch, func(a, b Circle) int {
				switch {
				case a.Radius < b.Radius:
					return -1
				case a.Radius > b.Radius:
					return 1
				default:
					return 0
				}
			})
			circles = append(circles, best)
			added++
			batch = batch[:0]
		}
	}
	return circles
}

// RingValid reports whether ok holds for the center of c and for samples points
// on its boundary. Validity predicates for [Pack] are commonly built from it.
func RingValid(c Circle, samples int, ok func(Point) bool) bool {
	if !ok(c.Center) {
		return false
	}
	for pt := range c.Ring(samples) {
		if !ok(pt) {
			return false
		}
	}
	return true
}
