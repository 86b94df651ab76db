package core

import (
	"image/color"
	"slices"
)

// Size describes the dimensions of a generated map.
type Size struct {
	W int
	H int
}

// Layout defines the minimal contract a map generator must implement to be
// driven by the CLI, the viewer and the stats sweep.
type Layout interface {
	Name() string
	Size() Size
	// Generate rebuilds the map from scratch for the given seed.
	Generate(seed uint64) error
	// Cells exposes the display buffer: one palette index per cell, row-major.
	Cells() []uint8
	Palette() []color.RGBA
	// Text renders the map for a terminal, optionally with ANSI colour.
	Text(colour bool) string
}

// Stat is a single named measurement of a generated map.
type Stat struct {
	Key   string
	Value float64
}

// StatsProvider exposes per-map measurements for seed sweeps.
type StatsProvider interface {
	Stats() []Stat
}

// Factory constructs a Layout using an optional configuration map.
type Factory func(cfg map[string]string) Layout

var layouts = map[string]Factory{}

// Register adds a layout factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	layouts[name] = f
}

// Layouts exposes the registry of available layout factories.
func Layouts() map[string]Factory {
	return layouts
}

// LayoutNames returns the registered names in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
