//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	"gol/internal/app"
	"gol/internal/core"
	_ "gol/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("Game of Life - " + sim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
