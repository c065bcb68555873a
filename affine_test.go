package inkfield

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func assertNearPoint(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Errorf("got %s, expected %s", got, want)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNearPoint(t, p.Transform(Identity), p, epsilon)
	assertNearPoint(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNearPoint(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNearPoint(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNearPoint(t, p.Transform(FlipY), Pt(3, -4), epsilon)
	assertNearPoint(t, p.Transform(RotateAbout(math.Pi, Pt(3, 3))), Pt(3, 2), epsilon)
	assertNearPoint(t, p.Transform(Scale(2, 3).ThenTranslate(Vec(1, 1))), Pt(7, 13), epsilon)
}

func TestAffineMulInvert(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	for _, p := range []Point{{1, 0}, {0, 1}, {1, 1}} {
		assertNearPoint(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
		assertNearPoint(t, p.Transform(a2.Invert()).Transform(a2), p, epsilon)
	}
	if det := Scale(2, 3).Determinant(); det != 6 {
		t.Errorf("got determinant %g, want 6", det)
	}
}

func TestMapRect(t *testing.T) {
	from := Rect{0, 0, 10, 20}
	to := Rect{100, 100, 200, 150}
	aff := MapRect(from, to)
	diff(t, to, aff.TransformRectBoundingBox(from), cmpopts.EquateApprox(0, 1e-9))
	diff(t, Vec(100, 100), aff.Translation())

	got := TransformPoints([]Point{{0, 0}, {5, 10}, {10, 20}}, aff)
	diff(t, []Point{{100, 100}, {150, 125}, {200, 150}}, got, cmpopts.EquateApprox(0, 1e-9))
}
