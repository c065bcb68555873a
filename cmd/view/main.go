//go:build ebiten

// Command view previews drawings in a window.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"honnef.co/go/inkfield"
	"honnef.co/go/inkfield/internal/piece"
)

// windowSide is the default length of the window's longer side, in pixels.
const windowSide = 900

func main() {
	cfg := piece.DefaultConfig()
	seed := flag.String("seed", "", "hash to draw (random if empty)")
	scale := flag.Float64("scale", 0, "pixels per millimetre (0 fits the sheet into the window)")
	flag.Float64Var(&cfg.Width, "width", cfg.Width, "paper width in mm")
	flag.Float64Var(&cfg.Height, "height", cfg.Height, "paper height in mm")
	flag.Parse()

	if *seed == "" {
		hash, err := piece.RandomHash()
		if err != nil {
			log.Fatal(err)
		}
		*seed = hash
	}
	if *scale <= 0 {
		*scale = windowSide / inkfield.Sz(cfg.Width, cfg.Height).MaxSide()
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	game, err := newGame(cfg, *scale, *seed, logger)
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("inkfield")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
