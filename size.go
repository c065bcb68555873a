package inkfield

import "fmt"

// Size is the extent of a canvas or a rectangle.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// MaxSide returns the longer of width and height.
func (sz Size) MaxSide() float64 {
	return max(sz.Width, sz.Height)
}

// MinSide returns the shorter of width and height. Nothing larger than half of
// it fits inside as a circle.
func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}
