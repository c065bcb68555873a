package inkfield

import (
	"math"
)

// Affine is a 2D affine transform. The coefficients (N0, ..., N5) form the
// augmented matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// so that (A * B) * p == A * (B * p). Renderers use it to map canvas units to
// device units.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY mirrors along the x axis, converting between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale returns a transform scaling by x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate returns a transform translating by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate returns a rotation by th radians. Positive angles turn the positive
// x axis towards positive y, which is clockwise on paper.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout returns a rotation by th radians about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// MapRect returns the transform taking from onto to, scaling each axis
// independently.
func MapRect(from, to Rect) Affine {
	sx := to.Width() / from.Width()
	sy := to.Height() / from.Height()
	return Affine{sx, 0, 0, sy, to.X0 - from.X0*sx, to.Y0 - from.Y0*sy}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate returns aff followed by a rotation of th.
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// ThenScale returns aff followed by a scale of (x, y).
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate returns aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse transform. It contains NaNs or infinities if the
// determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Translation returns the translation part of aff.
func (aff Affine) Translation() Vec2 {
	return Vec2{aff.N4, aff.N5}
}

// TransformRectBoundingBox returns the bounding box of rect after applying
// aff. For axis-aligned transforms that is the transformed rectangle itself.
func (aff Affine) TransformRectBoundingBox(rect Rect) Rect {
	p00 := Pt(rect.X0, rect.Y0).Transform(aff)
	p01 := Pt(rect.X0, rect.Y1).Transform(aff)
	p10 := Pt(rect.X1, rect.Y0).Transform(aff)
	p11 := Pt(rect.X1, rect.Y1).Transform(aff)
	return NewRectFromPoints(p00, p01).Union(NewRectFromPoints(p10, p11))
}

// Transform applies aff to pt.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// TransformPoints returns a copy of pts with aff applied to every point.
func TransformPoints(pts []Point, aff Affine) []Point {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[i] = pt.Transform(aff)
	}
	return out
}
