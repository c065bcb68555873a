// Package piece is a complete generative plotter piece built on inkfield. It
// digs strokes through Perlin noise, one ink per noise sign, and fills the
// space left between them with packed circles.
package piece

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/aquilax/go-perlin"

	"honnef.co/go/inkfield"
)

// Ink is a pen loaded into the plotter.
type Ink struct {
	Name  string
	Color string
}

var inks = []Ink{
	{"Black", "#1a1a1a"},
	{"Indigo", "#3b3f8c"},
	{"Vermilion", "#e34234"},
	{"Moss", "#5b7e3a"},
	{"Amber", "#ffb000"},
	{"Turquoise", "#1aa7a0"},
}

// Trait is a named feature of a drawing, as shown next to the piece.
type Trait struct {
	Name  string
	Value string
}

// Drawing is the output of a piece. Stroke inks index into Palette.
type Drawing struct {
	Hash    string
	Width   float64
	Height  float64
	Strokes []inkfield.Stroke
	Palette []Ink
	Traits  []Trait
}

// Layers groups the drawing's strokes by ink.
func (d *Drawing) Layers() []inkfield.Layer {
	return inkfield.Layers(d.Strokes)
}

const (
	inkFlowA = iota
	inkFlowB
	inkBubbles
)

// Generate produces the drawing for hash. The same hash and configuration
// always give the same drawing. A nil logger discards log output.
func Generate(ctx context.Context, cfg Config, hash string, logger *slog.Logger) (*Drawing, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed, err := inkfield.ParseSeed(hash)
	if err != nil {
		return nil, err
	}
	rng := inkfield.NewRand(seed)
	logger = logger.With("hash", hash)

	palette := pickPalette(rng)
	scale := cfg.NoiseScale * rng.Range(0.7, 1.3)
	density := perlin.NewPerlin(2, 2, int32(cfg.Octaves), rng.Int64())
	selector := perlin.NewPerlin(2, 2, 1, rng.Int64())

	inner := inkfield.Rect{X1: cfg.Width, Y1: cfg.Height}.Inset(cfg.Padding)
	field := inkfield.NewField(cfg.Width, cfg.Height, cfg.Precision)
	// Nodes one cell inside the frame are the last to carry ink, so
	// interpolation never leaks ink across it.
	field.Fill(noiseFiller{noise: density, scale: scale, frame: inner.Inset(cfg.Precision)})
	logger.Debug("field filled", "cols", field.Cols, "rows", field.Rows, "scale", scale, "ink", field.Sum())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	routes := inkfield.DigRoutes(field, rng, inkfield.HarvestOptions{
		Dig: inkfield.DigOptions{
			Step:         cfg.Step,
			MaxTurn:      cfg.MaxTurn,
			Straightness: cfg.Straightness,
			MaxLength:    cfg.MaxLength,
			DecayAmount:  cfg.Decay,
			DecayRadius:  2 * cfg.Step,
			Blocked: func(p inkfield.Point) bool {
				return !inner.ContainsClosed(p)
			},
		},
		MaxRoutes:   cfg.Routes,
		MaxFailures: cfg.MaxFailures,
		Trials:      cfg.Trials,
		MinValue:    0.05,
		MinSteps:    cfg.MinSteps,
		Epsilon:     cfg.Epsilon,
	})
	logger.Debug("routes dug", "count", len(routes), "ink left", field.Sum())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grid := inkfield.NewOccupancyGrid(cfg.Precision, cfg.Width, cfg.Height)
	strokes := make([]inkfield.Stroke, 0, len(routes)+cfg.Circles)
	for _, r := range routes {
		ink := inkFlowA
		if selector.Noise2D(r[0].X*scale, r[0].Y*scale) < 0 {
			ink = inkFlowB
		}
		grid.PaintPolyline(r)
		strokes = append(strokes, inkfield.Stroke{Ink: ink, Points: r})
	}
	grid.Grow(cfg.Gap)

	free := func(p inkfield.Point) bool { return !grid.Occupied(p) }
	circles := inkfield.Pack(nil, rng, inkfield.PackOptions{
		Iterations:   cfg.Circles * 40,
		DesiredCount: cfg.Circles,
		BatchSize:    5,
		Pad:          cfg.Gap / 2,
		Bounds:       inner,
		MinRadius:    cfg.MinRadius,
		MaxRadius:    min(cfg.MaxRadius, inner.Size().MinSide()/2),
	}, func(c inkfield.Circle) bool {
		return inner.ContainsCircle(c) && inkfield.RingValid(c, 16, free)
	})
	for _, c := range circles {
		strokes = append(strokes, inkfield.Stroke{
			Ink:    inkBubbles,
			Points: c.Polyline(circleSegments(c.Radius)),
		})
	}
	logger.Debug("circles packed", "count", len(circles), "free", grid.Free())

	d := &Drawing{
		Hash:    hash,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Strokes: strokes,
		Palette: palette,
		Traits:  traits(palette, scale/cfg.NoiseScale, len(routes), len(circles)),
	}
	logger.Info("drawing generated", "strokes", len(strokes), "routes", len(routes), "circles", len(circles))
	return d, nil
}

// noiseFiller maps Perlin noise to ink density in [0, 1], with no ink outside
// frame.
type noiseFiller struct {
	noise *perlin.Perlin
	scale float64
	frame inkfield.Rect
}

func (n noiseFiller) Value(x, y float64) float64 {
	if !n.frame.ContainsClosed(inkfield.Pt(x, y)) {
		return 0
	}
	v := n.noise.Noise2D(x*n.scale, y*n.scale)
	return min(max(0.5+1.5*v, 0), 1)
}

func pickPalette(rng *inkfield.Rand) []Ink {
	pool := append([]Ink(nil), inks...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:3]
}

// circleSegments keeps outline segments around one millimetre long.
func circleSegments(r float64) int {
	return max(12, int(math.Ceil(2*math.Pi*r)))
}

func traits(palette []Ink, scale float64, routes, circles int) []Trait {
	names := palette[0].Name
	for _, ink := range palette[1:] {
		names += " & " + ink.Name
	}
	var grain string
	switch {
	case scale < 0.9:
		grain = "Broad"
	case scale > 1.1:
		grain = "Fine"
	default:
		grain = "Medium"
	}
	var bubbles string
	switch {
	case circles == 0:
		bubbles = "None"
	case circles < 50:
		bubbles = "Few"
	default:
		bubbles = "Many"
	}
	return []Trait{
		{"Inks", names},
		{"Grain", grain},
		{"Strokes", fmt.Sprint(routes)},
		{"Bubbles", bubbles},
	}
}
