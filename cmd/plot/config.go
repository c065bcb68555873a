package main

import (
	"flag"

	"honnef.co/go/inkfield/internal/piece"
)

// Config holds the command-line parameters of plot.
type Config struct {
	Seed    string
	Count   int
	Out     string
	PNG     bool
	Scale   float64
	Workers int
	Verbose bool

	Piece piece.Config
}

// NewConfig returns a Config for one A4 drawing from a random hash.
func NewConfig() *Config {
	return &Config{Count: 1, Out: ".", Scale: 4, Piece: piece.DefaultConfig()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Seed, "seed", c.Seed, "hash to draw, hex or base58 (random if empty)")
	fs.IntVar(&c.Count, "count", c.Count, "number of variations to draw")
	fs.StringVar(&c.Out, "out", c.Out, "output directory")
	fs.BoolVar(&c.PNG, "png", c.PNG, "also write a PNG preview")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "PNG pixels per millimetre")
	fs.IntVar(&c.Workers, "workers", c.Workers, "drawings generated in parallel (0 means GOMAXPROCS)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log every generation stage")
	fs.Float64Var(&c.Piece.Width, "width", c.Piece.Width, "paper width in mm")
	fs.Float64Var(&c.Piece.Height, "height", c.Piece.Height, "paper height in mm")
	fs.Float64Var(&c.Piece.Padding, "padding", c.Piece.Padding, "blank margin in mm")
	fs.IntVar(&c.Piece.Routes, "routes", c.Piece.Routes, "maximum number of strokes")
	fs.IntVar(&c.Piece.Circles, "circles", c.Piece.Circles, "maximum number of circles")
	fs.Float64Var(&c.Piece.Straightness, "straightness", c.Piece.Straightness, "preference for straight strokes, 0 to 1")
}
