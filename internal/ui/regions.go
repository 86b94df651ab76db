package ui

import (
	"image/color"

	"mapgen/internal/render"
	"mapgen/pkg/grid"
)

// RegionProvider is implemented by layouts that can report their connected
// pieces.
type RegionProvider interface {
	Regions() []grid.Region[uint16]
}

// RegionColours returns n distinguishable tints.
func RegionColours(n int) []color.RGBA {
	return render.HueRamp(n, 0, 300, 0.8, 1)
}

// FillRegions writes a translucent RGBA tint for every region cell into buf,
// a w-wide image buffer. With largestOnly set only the biggest region is
// tinted. Cells outside all regions are cleared.
func FillRegions(buf []byte, w int, regions []grid.Region[uint16], alpha uint8, largestOnly bool) {
	clear(buf)
	if w <= 0 || len(regions) == 0 {
		return
	}
	tints := RegionColours(len(regions))
	largest, _ := grid.Largest(regions)
	for i, r := range regions {
		if largestOnly && i != largest {
			continue
		}
		c := tints[i]
		for _, p := range r.Cells {
			o := 4 * (int(p.Y)*w + int(p.X))
			if o < 0 || o+3 >= len(buf) {
				continue
			}
			buf[o+0] = c.R
			buf[o+1] = c.G
			buf[o+2] = c.B
			buf[o+3] = alpha
		}
	}
}
