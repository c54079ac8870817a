//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"fallingsand/internal/app"
	"fallingsand/internal/sim"
	"fallingsand/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := sim.LoadConfig(cfg.Tunables)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.W > 0 {
		simCfg.Width = cfg.W
	}
	if cfg.H > 0 {
		simCfg.Height = cfg.H
	}
	if cfg.Seed != 0 {
		simCfg.Seed = cfg.Seed
	}

	world := sim.NewWithConfig(simCfg)
	if err := world.LoadFile(cfg.Save); err != nil {
		log.Printf("load %s: %v", cfg.Save, err)
	}

	census, err := telemetry.NewWriter(cfg.Telemetry)
	if err != nil {
		log.Fatal(err)
	}
	defer census.Close()

	game := app.New(world, census, cfg)
	size := world.Size()

	ebiten.SetWindowTitle("fallingsand")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}

	// Autosave on normal shutdown.
	if err := world.SaveFile(cfg.Save); err != nil {
		log.Printf("autosave %s: %v", cfg.Save, err)
	}
}
