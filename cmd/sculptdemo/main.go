// Command sculptdemo is an interactive terrain-sculpting playground.
// It renders a procedurally seeded height grid and sculpts it under the
// mouse: 1-4 select the tool, shift and control pick the alternate
// behaviors, [ and ] resize the brush.
package main

import (
	"errors"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gosculpt/sculpt"
	"github.com/gosculpt/sculpt/internal/app"
	"github.com/gosculpt/sculpt/internal/config"
	"github.com/gosculpt/sculpt/internal/noise"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	sculpt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store := sculpt.NewGridStoreFrom(startingTerrain(cfg))
	engine := sculpt.NewEngine(store, sculpt.DefaultSettings(), sculpt.WithSeed(cfg.Seed))

	game := app.New(engine, store, cfg.Scale)
	game.LoadBrushes(cfg.BrushDir)

	ebiten.SetWindowTitle("sculptdemo")
	ebiten.SetWindowSize(cfg.GridWidth*cfg.Scale, cfg.GridHeight*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// startingTerrain builds a rolling value-noise height field so there is
// something to sculpt against.
func startingTerrain(cfg config.Config) *sculpt.HeightMap {
	field := noise.New(cfg.Seed)
	grid := sculpt.NewHeightMap(cfg.GridWidth, cfg.GridHeight)
	for y := 0; y < cfg.GridHeight; y++ {
		for x := 0; x < cfg.GridWidth; x++ {
			grid.Set(x, y, field.Fractal(float64(x), float64(y), 4, 1.0/64))
		}
	}
	return grid
}
