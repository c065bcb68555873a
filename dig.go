package inkfield

import "math"

// BestHeading picks the direction in which a route at p should continue.
//
// Candidate headings cover [center-maxTurn, center+maxTurn) in increments of
// resolution. A candidate is rejected if the point one step away lies outside
// the field's domain or if blocked (which may be nil) reports it. The others
// score
//
//	f.Sample(next) * ((1-straightness) + straightness*(1-|offset|/maxTurn))
//
// where offset is the candidate's deviation from center, so straightness 0
// follows the field alone and straightness 1 strongly prefers going straight.
// The best candidate with a positive score wins; ties keep the first one
// scanned. BestHeading reports false when no candidate scores above zero.
//
// With maxTurn <= 0 only center itself is considered.
func BestHeading(f *Field, p Point, step, center, maxTurn, resolution, straightness float64, blocked func(Point) bool) (float64, bool) {
	var best float64
	bestScore := 0.0
	found := false

	try := func(a, weight float64) {
		next := p.Step(a, step)
		if !f.Contains(next) || (blocked != nil && blocked(next)) {
			return
		}
		if score := f.Sample(next) * weight; score > bestScore {
			best = a
			bestScore = score
			found = true
		}
	}

	if maxTurn <= 0 || resolution <= 0 {
		try(center, 1)
		return best, found
	}
	// Angles are computed from the index; accumulating resolution would
	// drift past center+maxTurn.
	n := int(math.Ceil(2*maxTurn/resolution - 1e-9))
	for k := range n {
		off := float64(k)*resolution - maxTurn
		try(center+off, (1-straightness)+straightness*(1-math.Abs(off)/maxTurn))
	}
	return best, found
}

// DigOptions configures [Dig].
type DigOptions struct {
	// Step is the distance between consecutive route points.
	Step float64
	// MaxTurn is the largest heading change per step, in radians.
	MaxTurn float64
	// Straightness in [0, 1] biases the route towards keeping its heading.
	Straightness float64
	// MaxLength is the maximum number of steps.
	MaxLength int
	// DecayAmount is subtracted from the field behind the route, with linear
	// falloff over DecayRadius.
	DecayAmount float64
	// DecayRadius defaults to Step when zero.
	DecayRadius float64
	// Blocked optionally rejects positions, typically by consulting an
	// OccupancyGrid. Rejected positions are treated like positions outside
	// the field.
	Blocked func(Point) bool
}

// headingResolution is the angular scan increment of Dig relative to MaxTurn.
const headingResolution = 0.2

// Dig grows a route from origin, starting in the direction of heading. At every
// step it follows [BestHeading] within MaxTurn of the current heading, moves by
// Step, and decays the field around the point it left so that later routes do
// not retrace this one. It stops after MaxLength steps or as soon as no heading
// is viable.
//
// The returned route starts at origin, so a route of MaxLength steps holds
// MaxLength+1 points; the length bound counts steps ([Route.Steps]). It is
// empty if not even the first step was possible; callers routinely discard
// such routes, as well as routes they consider too short. Dig consumes no
// randomness.
func Dig(f *Field, origin Point, heading float64, opts DigOptions) Route {
	radius := opts.DecayRadius
	if radius <= 0 {
		radius = opts.Step
	}
	resolution := headingResolution * opts.MaxTurn

	var route Route
	p := origin
	for range opts.MaxLength {
		a, ok := BestHeading(f, p, opts.Step, heading, opts.MaxTurn, resolution, opts.Straightness, opts.Blocked)
		if !ok {
			break
		}
		if route == nil {
			route = append(route, origin)
		}
		next := p.Step(a, opts.Step)
		route = append(route, next)
		f.Decay(p, radius, opts.DecayAmount)
		p = next
		heading = a
	}
	return route
}

// HarvestOptions configures [DigRoutes].
type HarvestOptions struct {
	Dig DigOptions

	// MaxRoutes caps the number of routes returned.
	MaxRoutes int
	// MaxFailures is the number of consecutive unproductive attempts (no
	// maximum found, or a route that was too short) after which digging stops.
	MaxFailures int
	// Trials and MinValue are passed to FindApproximateMax.
	Trials   int
	MinValue float64
	// MinSteps discards routes with fewer steps.
	MinSteps int
	// Epsilon simplifies kept routes when positive.
	Epsilon float64
}

// DigRoutes repeatedly digs routes from the approximate maximum of f, each with
// a random initial heading, until MaxRoutes routes were kept or MaxFailures
// consecutive attempts produced nothing. The field is consumed as a side
// effect.
func DigRoutes(f *Field, rng *Rand, opts HarvestOptions) []Route {
	var routes []Route
	failures := 0
	for len(routes) < opts.MaxRoutes && failures < opts.MaxFailures {
		origin, ok := f.FindApproximateMax(rng, opts.Trials, opts.MinValue)
		if !ok {
			failures++
			continue
		}
		route := Dig(f, origin, rng.Angle(), opts.Dig)
		if route.Steps() < max(opts.MinSteps, 1) {
			// Make sure a dud origin does not keep winning the max search.
			f.Decay(origin, opts.Dig.Step, opts.Dig.DecayAmount)
			failures++
			continue
		}
		failures = 0
		if opts.Epsilon > 0 {
			route = route.Simplify(opts.Epsilon)
		}
		routes = append(routes, route)
	}
	return routes
}
