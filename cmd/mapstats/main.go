package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"mapgen/internal/app"
	"mapgen/internal/core"
	_ "mapgen/internal/gens/height"
	_ "mapgen/internal/gens/pipe"
	_ "mapgen/internal/gens/room"
	"mapgen/internal/sweep"
)

func main() {
	cfg := app.NewConfig()
	fs := flag.CommandLine
	fs.StringVar(&cfg.Layout, "layout", cfg.Layout, "layout to measure")
	fs.Var(cfg.Set, "set", "layout setting as key=value; repeatable")
	n := fs.Int("seeds", 100, "number of seeds to generate")
	from := fs.Uint64("from", 1, "first seed")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	factory, ok := core.Layouts()[cfg.Layout]
	if !ok {
		log.Fatalf("unknown layout %q", cfg.Layout)
	}

	seeds := sweep.Seeds(*from, *n)
	fmt.Printf("Measuring %d %s seeds from %d (%d workers)\n", len(seeds), cfg.Layout, *from, *workers)

	start := time.Now()
	results := sweep.Run(factory, cfg.Settings(), seeds, *workers)
	elapsed := time.Since(start)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			log.Printf("%v", res.Err)
		}
	}

	fmt.Printf("\n%-20s %10s %10s %10s %12s %12s\n", "stat", "min", "mean", "max", "min seed", "max seed")
	for _, s := range sweep.Summarize(results) {
		fmt.Printf("%-20s %10.4g %10.4g %10.4g %12d %12d\n", s.Key, s.Min, s.Mean, s.Max, s.MinSeed, s.MaxSeed)
	}
	fmt.Printf("\n%d ok, %d failed (elapsed %s)\n", len(results)-failed, failed, elapsed.Round(time.Millisecond))
}
