package room

import (
	"mapgen/internal/render"
	"mapgen/pkg/geom"
	"mapgen/pkg/grid"
)

const (
	wall  = ' '
	floor = '█'
)

// RenderCell returns the character for p: a full block for floor, blank
// otherwise.
func RenderCell[S geom.Scale, V grid.Value](g *grid.Grid[S, V], p geom.Point[S]) rune {
	if g.At(p) != 0 {
		return floor
	}
	return wall
}

// Render draws the dungeon one line per row.
func Render[S geom.Scale, V grid.Value](g *grid.Grid[S, V]) string {
	return render.Text(&g.Plane, func(p geom.Point[S], _ V) string {
		return string(RenderCell(g, p))
	})
}
