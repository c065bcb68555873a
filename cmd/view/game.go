//go:build ebiten

package main

import (
	"context"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"honnef.co/go/inkfield/internal/piece"
	"honnef.co/go/inkfield/internal/render"
)

// game shows the PNG preview of one drawing at a time.
type game struct {
	cfg    piece.Config
	scale  float64
	hash   string
	logger *slog.Logger

	preview *ebiten.Image
}

func newGame(cfg piece.Config, scale float64, hash string, logger *slog.Logger) (*game, error) {
	g := &game{cfg: cfg, scale: scale, logger: logger}
	if err := g.load(hash); err != nil {
		return nil, err
	}
	return g, nil
}

// load generates the drawing for hash and replaces the preview.
func (g *game) load(hash string) error {
	d, err := piece.Generate(context.Background(), g.cfg, hash, g.logger)
	if err != nil {
		return err
	}
	if g.preview != nil {
		g.preview.Deallocate()
	}
	g.hash = hash
	g.preview = ebiten.NewImageFromImage(render.RenderPNG(d, g.scale))
	ebiten.SetWindowTitle("inkfield " + hash)
	return nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.load(g.hash)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		hash, err := piece.RandomHash()
		if err != nil {
			return err
		}
		return g.load(hash)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.preview, nil)
}

func (g *game) Layout(int, int) (int, int) {
	b := g.preview.Bounds()
	return b.Dx(), b.Dy()
}
