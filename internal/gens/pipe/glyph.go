package pipe

import (
	"mapgen/internal/render"
	"mapgen/pkg/geom"
	"mapgen/pkg/grid"
)

// Unknown is the fallback glyph. The table covers every adjacency, so it is
// only returned for masks outside 0..15.
const Unknown = '?'

// glyphs is indexed by [backbone][adjacency mask], mask bits N=1 E=2 S=4 W=8.
var glyphs = [2][16]rune{
	{'·', '╵', '╶', '└', '╷', '│', '┌', '├', '╴', '┘', '─', '┴', '┐', '┤', '┬', '┼'},
	{'•', '╹', '╺', '┗', '╻', '┃', '┏', '┣', '╸', '┛', '━', '┻', '┓', '┫', '┳', '╋'},
}

// Glyph returns the box-drawing character joining the occupied neighbours in
// a; backbone cells use the heavy variants.
func Glyph(a grid.Adjacency, backbone bool) rune {
	m := a.Mask()
	if m > 15 {
		return Unknown
	}
	row := 0
	if backbone {
		row = 1
	}
	return glyphs[row][m]
}

// IsBackbone reports whether v belongs to the backbone.
func IsBackbone[V grid.Value](v V) bool {
	return v > Empty && v <= BackbonePath
}

// RenderCell returns the glyph for the cell at p, or a space when it is empty.
func RenderCell[S geom.Scale, V grid.Value](g *grid.Grid[S, V], p geom.Point[S]) rune {
	v := g.At(p)
	if v == Empty {
		return ' '
	}
	return Glyph(g.Adjacency(p), IsBackbone(v))
}

// Render draws the whole network as box-drawing text.
func Render[S geom.Scale, V grid.Value](g *grid.Grid[S, V]) string {
	return render.Text(&g.Plane, func(p geom.Point[S], _ V) string {
		return string(RenderCell(g, p))
	})
}
