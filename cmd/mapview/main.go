//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mapgen/internal/app"
	_ "mapgen/internal/gens/height"
	_ "mapgen/internal/gens/pipe"
	_ "mapgen/internal/gens/room"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindViewer(flag.CommandLine)
	flag.Parse()

	layout, err := cfg.NewLayout()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ResolveSeed() {
		log.Printf("seed %d", cfg.Seed)
	}

	if err := app.Run(layout, cfg); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
