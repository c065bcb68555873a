// Package render turns drawings into plotter-ready SVG and PNG previews.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"honnef.co/go/inkfield"
	"honnef.co/go/inkfield/internal/piece"
)

// unitsPerMM is the SVG coordinate resolution. Plotters cannot resolve more
// than a tenth of a millimetre.
const unitsPerMM = 10

const penWidth = 0.35

// WriteSVG writes d as an SVG document sized in millimetres, with one
// Inkscape layer per ink so the plotter software can pause for pen changes.
func WriteSVG(w io.Writer, d *piece.Drawing) error {
	traits, err := json.Marshal(d.Traits)
	if err != nil {
		return fmt.Errorf("encoding traits: %w", err)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	// The page may have fractional millimetres, which StartviewUnit cannot
	// express; the viewBox matches the page at unitsPerMM.
	canvas.Startraw(
		`width="`+num(d.Width)+`mm"`,
		`height="`+num(d.Height)+`mm"`,
		`viewBox="0 0 `+num(d.Width*unitsPerMM)+` `+num(d.Height*unitsPerMM)+`"`,
		`xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"`,
	)
	toUnits := inkfield.Scale(unitsPerMM, unitsPerMM)
	canvas.Title(d.Hash)
	canvas.Desc(string(traits))
	for _, l := range d.Layers() {
		ink := d.Palette[l.Ink]
		canvas.Group(
			fmt.Sprintf(`id="layer%d"`, l.Ink+1),
			`inkscape:groupmode="layer"`,
			fmt.Sprintf(`inkscape:label="%d %s"`, l.Ink+1, ink.Name),
			fmt.Sprintf(`style="fill:none;stroke:%s;stroke-width:%g;stroke-linecap:round;stroke-linejoin:round"`,
				ink.Color, penWidth*unitsPerMM),
		)
		for _, pl := range l.Polylines {
			xs, ys := coords(pl, toUnits)
			canvas.Polyline(xs, ys)
		}
		canvas.Gend()
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("writing svg: %w", ew.err)
	}
	return nil
}

// coords transforms pts and rounds them to whole units.
func coords(pts []inkfield.Point, aff inkfield.Affine) (xs, ys []int) {
	xs = make([]int, len(pts))
	ys = make([]int, len(pts))
	for i, pt := range pts {
		pt = pt.Transform(aff).Round()
		xs[i], ys[i] = int(pt.X), int(pt.Y)
	}
	return xs, ys
}

// num formats v without an exponent.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}
