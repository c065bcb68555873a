package render

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"honnef.co/go/inkfield"
	"honnef.co/go/inkfield/internal/piece"
)

// RenderPNG rasterizes d on white paper at pxPerMM pixels per millimetre.
func RenderPNG(d *piece.Drawing, pxPerMM float64) image.Image {
	w := int(math.Ceil(d.Width * pxPerMM))
	h := int(math.Ceil(d.Height * pxPerMM))
	dc := gg.NewContext(max(w, 1), max(h, 1))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetLineWidth(max(penWidth*pxPerMM, 1))
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	toPx := inkfield.Scale(pxPerMM, pxPerMM)
	for _, l := range d.Layers() {
		dc.SetHexColor(d.Palette[l.Ink].Color)
		for _, pl := range l.Polylines {
			if len(pl) < 2 {
				continue
			}
			dc.NewSubPath()
			for _, pt := range inkfield.TransformPoints(pl, toPx) {
				dc.LineTo(pt.X, pt.Y)
			}
		}
		dc.Stroke()
	}
	return dc.Image()
}

// SavePNG renders d and writes it to path.
func SavePNG(path string, d *piece.Drawing, pxPerMM float64) error {
	if err := gg.SavePNG(path, RenderPNG(d, pxPerMM)); err != nil {
		return fmt.Errorf("saving preview: %w", err)
	}
	return nil
}
