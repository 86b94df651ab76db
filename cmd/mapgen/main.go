package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"mapgen/internal/app"
	"mapgen/internal/core"
	_ "mapgen/internal/gens/height"
	_ "mapgen/internal/gens/pipe"
	_ "mapgen/internal/gens/room"
	"mapgen/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	layout, err := cfg.NewLayout()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ResolveSeed() {
		log.Printf("seed %d", cfg.Seed)
	}

	if !cfg.Loop {
		if err := generate(os.Stdout, layout, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	timer := core.NewFixedInterval(cfg.Delay)
	timer.Reset()
	for {
		if err := generate(os.Stdout, layout, cfg); err != nil {
			log.Fatal(err)
		}
		for !timer.ShouldStep() {
			time.Sleep(timer.Interval() / 10)
		}
		cfg.Seed++
	}
}

// generate builds one map, prints it and writes the PNG when asked to.
func generate(out io.Writer, layout core.Layout, cfg *app.Config) error {
	if err := layout.Generate(cfg.Seed); err != nil {
		return err
	}
	if cfg.Loop {
		if _, err := fmt.Fprintf(out, "\x1b[2J\x1b[Hseed %d\n", cfg.Seed); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out, layout.Text(cfg.Colour)); err != nil {
		return err
	}
	if cfg.PNG == "" {
		return nil
	}
	return writePNG(cfg.PNG, layout, cfg.Scale)
}

func writePNG(path string, layout core.Layout, scale int) error {
	size := layout.Size()
	img, err := render.Image(layout.Cells(), size.W, size.H, layout.Palette())
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error {
		return render.WritePNG(w, img, scale)
	})
}

// writeFile creates path and fills it with encode. The file is removed when
// encoding or closing fails.
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = encode(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
