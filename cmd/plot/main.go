// Command plot renders drawings to plotter-ready SVG files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"honnef.co/go/inkfield/internal/piece"
	"honnef.co/go/inkfield/internal/render"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if cfg.Seed == "" {
		hash, err := piece.RandomHash()
		if err != nil {
			log.Fatal(err)
		}
		cfg.Seed = hash
	}
	if err := cfg.Piece.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg, logger); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cfg.Count {
		hash, err := piece.Variant(cfg.Seed, i)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return plot(ctx, cfg, hash, logger)
		})
	}
	return g.Wait()
}

func plot(ctx context.Context, cfg *Config, hash string, logger *slog.Logger) error {
	d, err := piece.Generate(ctx, cfg.Piece, hash, logger)
	if err != nil {
		return fmt.Errorf("generating %s: %w", hash, err)
	}

	path := filepath.Join(cfg.Out, hash+".svg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WriteSVG(f, d); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("wrote drawing", "path", path, "traits", d.Traits)

	if cfg.PNG {
		path := filepath.Join(cfg.Out, hash+".png")
		if err := render.SavePNG(path, d, cfg.Scale); err != nil {
			return err
		}
		logger.Debug("wrote preview", "path", path)
	}
	return nil
}
