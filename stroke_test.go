package inkfield

import (
	"math"
	"testing"
)

func TestRoute(t *testing.T) {
	var empty Route
	if empty.Steps() != 0 || empty.Length() != 0 {
		t.Error("empty route has steps or length")
	}
	r := Route{Pt(0, 0), Pt(3, 4), Pt(3, 5)}
	if r.Steps() != 2 {
		t.Errorf("got %d steps, want 2", r.Steps())
	}
	if l := r.Length(); math.Abs(l-6) > 1e-12 {
		t.Errorf("got length %v, want 6", l)
	}
}

func TestLayers(t *testing.T) {
	a := []Point{Pt(0, 0), Pt(1, 1)}
	b := []Point{Pt(2, 2), Pt(3, 3)}
	c := []Point{Pt(4, 4), Pt(5, 5)}
	d := []Point{Pt(6, 6), Pt(7, 7)}
	strokes := []Stroke{
		{Ink: 2, Points: a},
		{Ink: 0, Points: b},
		{Ink: 2, Points: c},
		{Ink: 1, Points: d},
	}
	want := []Layer{
		{Ink: 0, Polylines: [][]Point{b}},
		{Ink: 1, Polylines: [][]Point{d}},
		{Ink: 2, Polylines: [][]Point{a, c}},
	}
	diff(t, want, Layers(strokes))
	if got := Layers(nil); len(got) != 0 {
		t.Errorf("got %v for no strokes", got)
	}
}
