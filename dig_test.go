package inkfield

import (
	"math"
	"testing"
)

func constantField(v float64) *Field {
	f := NewField(100, 100, 1)
	f.Fill(FillFunc(func(x, y float64) float64 { return v }))
	return f
}

func TestBestHeadingFollowsField(t *testing.T) {
	f := NewField(100, 100, 1)
	f.Fill(FillFunc(func(x, y float64) float64 { return x }))
	maxTurn := math.Pi / 2
	a, ok := BestHeading(f, Pt(50, 50), 2, 0, maxTurn, 0.2*maxTurn, 0, nil)
	if !ok {
		t.Fatal("no heading found")
	}
	if math.Abs(a) > 1e-9 {
		t.Errorf("got heading %v, want 0", a)
	}

	// Pointing down, the best the digger can do is turn as far right as
	// allowed, which is the first candidate scanned.
	a, ok = BestHeading(f, Pt(50, 50), 2, math.Pi/2, 0.5, 0.1, 0, nil)
	if !ok {
		t.Fatal("no heading found")
	}
	if math.Abs(a-(math.Pi/2-0.5)) > 1e-9 {
		t.Errorf("got heading %v, want %v", a, math.Pi/2-0.5)
	}
}

func TestBestHeadingStraightness(t *testing.T) {
	f := constantField(1)
	p := Pt(50, 50)

	a, ok := BestHeading(f, p, 1, 1.0, 0.5, 0.1, 1, nil)
	if !ok || math.Abs(a-1.0) > 1e-9 {
		t.Errorf("straightness 1: got (%v, %t), want (1, true)", a, ok)
	}

	// Without a straightness bias every candidate scores the same and the
	// first one wins.
	a, ok = BestHeading(f, p, 1, 1.0, 0.5, 0.1, 0, nil)
	if !ok || a != 0.5 {
		t.Errorf("straightness 0: got (%v, %t), want (0.5, true)", a, ok)
	}
}

func TestBestHeadingNone(t *testing.T) {
	if a, ok := BestHeading(constantField(0), Pt(50, 50), 1, 0, 1, 0.2, 0.5, nil); ok {
		t.Errorf("empty field: got heading %v", a)
	}
	if a, ok := BestHeading(constantField(-1), Pt(50, 50), 1, 0, 1, 0.2, 0.5, nil); ok {
		t.Errorf("negative field: got heading %v", a)
	}
	// Every candidate leaves the domain.
	if a, ok := BestHeading(constantField(1), Pt(99.5, 50), 2, 0, 0.1, 0.02, 0.5, nil); ok {
		t.Errorf("at the edge: got heading %v", a)
	}
	blocked := func(Point) bool { return true }
	if a, ok := BestHeading(constantField(1), Pt(50, 50), 1, 0, 1, 0.2, 0.5, blocked); ok {
		t.Errorf("blocked: got heading %v", a)
	}
}

func TestBestHeadingZeroTurn(t *testing.T) {
	a, ok := BestHeading(constantField(1), Pt(50, 50), 1, 2, 0, 0, 0.5, nil)
	if !ok || a != 2 {
		t.Errorf("got (%v, %t), want (2, true)", a, ok)
	}
}

func TestBestHeadingCandidateRange(t *testing.T) {
	f := constantField(1)
	p := Pt(50, 50)
	for _, center := range []float64{0, 1.3, 4.7, -2.9} {
		for i := 1; i <= 400; i++ {
			maxTurn := float64(i) * 0.005
			resolution := headingResolution * maxTurn
			var headings []float64
			blocked := func(next Point) bool {
				headings = append(headings, next.Sub(p).Angle())
				return false
			}
			BestHeading(f, p, 1, center, maxTurn, resolution, 0, blocked)
			if len(headings) != 10 {
				t.Fatalf("center %g, maxTurn %g: scanned %d headings, want 10", center, maxTurn, len(headings))
			}
			// The cone is [center-maxTurn, center+maxTurn): symmetric
			// except for the excluded upper end.
			first := math.Remainder(headings[0]-center, 2*math.Pi)
			last := math.Remainder(headings[len(headings)-1]-center, 2*math.Pi)
			if math.Abs(first+maxTurn) > 1e-9 || math.Abs(last-(maxTurn-resolution)) > 1e-9 {
				t.Fatalf("center %g, maxTurn %g: offsets span [%g, %g]", center, maxTurn, first, last)
			}
		}
	}
}

func TestDigLengthCountsSteps(t *testing.T) {
	route := Dig(constantField(1), Pt(50, 50), 0, DigOptions{Step: 1, MaxTurn: 0.3, MaxLength: 5})
	if route.Steps() != 5 || len(route) != 6 {
		t.Errorf("got %d steps in %d points, want 5 steps in 6 points", route.Steps(), len(route))
	}
	diff(t, Pt(50, 50), route[0])
}

func TestDig(t *testing.T) {
	f := constantField(1)
	opts := DigOptions{
		Step:         1,
		MaxTurn:      0.3,
		Straightness: 0.5,
		MaxLength:    20,
		DecayAmount:  0.1,
	}
	origin := Pt(10, 50)
	route := Dig(f, origin, 0, opts)
	if route.Steps() == 0 || route.Steps() > opts.MaxLength {
		t.Fatalf("got %d steps, want between 1 and %d", route.Steps(), opts.MaxLength)
	}
	diff(t, origin, route[0])
	for i := 1; i < len(route); i++ {
		if d := route[i-1].Distance(route[i]); math.Abs(d-opts.Step) > 1e-9 {
			t.Errorf("step %d has length %v, want %v", i, d, opts.Step)
		}
	}
	if f.At(10, 50) >= 1 {
		t.Error("field was not consumed at the origin")
	}
}

func TestDigStopsAtEdge(t *testing.T) {
	f := constantField(1)
	route := Dig(f, Pt(95, 50), 0, DigOptions{Step: 1, MaxTurn: 0.1, Straightness: 1, MaxLength: 100, DecayAmount: 1})
	if route.Steps() >= 100 {
		t.Errorf("route did not stop at the edge: %d steps", route.Steps())
	}
	for _, pt := range route {
		if !f.Contains(pt) {
			t.Errorf("route point %v outside the domain", pt)
		}
	}
}

func TestDigEmpty(t *testing.T) {
	route := Dig(constantField(0), Pt(50, 50), 0, DigOptions{Step: 1, MaxTurn: 1, MaxLength: 10, DecayAmount: 1})
	if len(route) != 0 {
		t.Errorf("got route %v, want empty", route)
	}
}

func TestDigDoesNotRetrace(t *testing.T) {
	f := NewField(100, 100, 1)
	f.Fill(FillFunc(func(x, y float64) float64 { return 1 }))
	opts := DigOptions{Step: 1, MaxTurn: 0.5, Straightness: 0.2, MaxLength: 30, DecayAmount: 2, DecayRadius: 3}
	first := Dig(f, Pt(20, 50), 0, opts)
	if first.Steps() == 0 {
		t.Fatal("first route is empty")
	}
	// The ground behind the first route is exhausted; a digger started on it,
	// heading back, has nowhere to go.
	second := Dig(f, first[len(first)/2], math.Pi, DigOptions{Step: 1, MaxTurn: 0.1, MaxLength: 30, DecayAmount: 2})
	if second.Steps() > 1 {
		t.Errorf("second route retraced the first one for %d steps", second.Steps())
	}
}

func TestDigRoutesDeterministic(t *testing.T) {
	opts := HarvestOptions{
		Dig: DigOptions{
			Step:         1,
			MaxTurn:      0.4,
			Straightness: 0.3,
			MaxLength:    60,
			DecayAmount:  1,
			DecayRadius:  2,
		},
		MaxRoutes:   40,
		MaxFailures: 10,
		Trials:      200,
		MinValue:    0.1,
		MinSteps:    3,
		Epsilon:     0.2,
	}
	run := func() []Route {
		f := diskField()
		return DigRoutes(f, testRand(t, 42), opts)
	}
	a, b := run(), run()
	if len(a) == 0 {
		t.Fatal("no routes dug")
	}
	if len(a) > opts.MaxRoutes {
		t.Errorf("got %d routes, want at most %d", len(a), opts.MaxRoutes)
	}
	for _, r := range a {
		if r.Steps() < 1 {
			t.Errorf("kept a route with %d steps", r.Steps())
		}
	}
	diff(t, a, b)
}

func TestDigRoutesExhaustedField(t *testing.T) {
	f := constantField(0)
	routes := DigRoutes(f, testRand(t, 1), HarvestOptions{
		Dig:         DigOptions{Step: 1, MaxTurn: 1, MaxLength: 10, DecayAmount: 1},
		MaxRoutes:   100,
		MaxFailures: 10,
		Trials:      50,
		MinValue:    0,
	})
	if len(routes) != 0 {
		t.Errorf("got %d routes from an empty field", len(routes))
	}
}

func BenchmarkDig(b *testing.B) {
	opts := DigOptions{Step: 1, MaxTurn: 0.5, Straightness: 0.3, MaxLength: 200, DecayAmount: 1, DecayRadius: 2}
	for range b.N {
		f := diskField()
		Dig(f, Pt(50, 50), 0, opts)
	}
}
