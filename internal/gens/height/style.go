package height

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"mapgen/internal/render"
	"mapgen/pkg/geom"
	"mapgen/pkg/grid"
)

// ErrUnknownStyle is returned by ParseStyle for unrecognised names.
var ErrUnknownStyle = errors.New("height: unknown render style")

// Style selects how elevations map to colours.
type Style int

const (
	// Simple is a grayscale ramp.
	Simple Style = iota
	// HeatMap rotates the hue from blue (low) to red (high).
	HeatMap
	// Terrain bands elevations into water, lowland and mountain colours.
	Terrain
)

var styleNames = [...]string{Simple: "simple", HeatMap: "heatmap", Terrain: "terrain"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle parses a style name, ignoring case.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return Simple, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

type terrainStop struct {
	at float64
	c  color.RGBA
}

var terrainStops = []terrainStop{
	{0.00, color.RGBA{R: 12, G: 32, B: 92, A: 255}},
	{0.30, color.RGBA{R: 40, G: 104, B: 176, A: 255}},
	{0.38, color.RGBA{R: 222, G: 206, B: 150, A: 255}},
	{0.50, color.RGBA{R: 86, G: 152, B: 62, A: 255}},
	{0.70, color.RGBA{R: 34, G: 94, B: 42, A: 255}},
	{0.85, color.RGBA{R: 120, G: 110, B: 100, A: 255}},
	{1.00, color.RGBA{R: 248, G: 248, B: 252, A: 255}},
}

// Fraction maps v onto [0,1] between lo and hi. A flat field maps to 0.
func Fraction[V grid.Value](v, lo, hi V) float64 {
	if hi <= lo {
		return 0
	}
	f := (float64(v) - float64(lo)) / (float64(hi) - float64(lo))
	return min(max(f, 0), 1)
}

// Colour returns the colour of elevation v given the map's extremes.
func Colour[V grid.Value](v, lo, hi V, style Style) color.RGBA {
	return ColourAt(Fraction(v, lo, hi), style)
}

// ColourAt returns the colour at fraction f of the elevation range.
func ColourAt(f float64, style Style) color.RGBA {
	switch style {
	case HeatMap:
		return render.RGBA(colorful.Hsv(240*(1-f), 1, 1))
	case Terrain:
		for i := 1; i < len(terrainStops); i++ {
			lo, hi := terrainStops[i-1], terrainStops[i]
			if f <= hi.at {
				return render.Blend(lo.c, hi.c, (f-lo.at)/(hi.at-lo.at))
			}
		}
		return terrainStops[len(terrainStops)-1].c
	}
	c := uint8(f * 255)
	return color.RGBA{R: c, G: c, B: c, A: 255}
}

// RenderCell returns a blank cell whose background shows the elevation at p.
func RenderCell[S geom.Scale, V grid.Value](g *grid.Grid[S, V], p geom.Point[S], lo, hi V, style Style) render.Cell {
	bg := Colour(g.At(p), lo, hi, style)
	return render.Cell{Bg: &bg}
}

// Render maps the whole height map to coloured cells.
func Render[S geom.Scale, V grid.Value](g *grid.Grid[S, V], style Style) *grid.Plane[S, render.Cell] {
	lo, errLo := g.Min()
	hi, errHi := g.Max()
	if errLo != nil || errHi != nil {
		return grid.NewPlane[S, render.Cell](g.Width(), g.Height())
	}
	return grid.Map(&g.Plane, func(p geom.Point[S], _ V) render.Cell {
		return RenderCell(g, p, lo, hi, style)
	})
}

// shades is the monochrome ramp used for uncoloured text, lowest first.
const shades = " .:-=+*#%@"

// Shade returns the character for fraction f of the elevation range.
func Shade(f float64) rune {
	r := []rune(shades)
	i := int(f * float64(len(r)-1))
	return r[min(max(i, 0), len(r)-1)]
}
