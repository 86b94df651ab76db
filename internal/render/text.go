package render

import (
	"fmt"
	"image/color"
	"strings"

	"mapgen/pkg/geom"
	"mapgen/pkg/grid"
)

const ansiReset = "\x1b[0m"

// Cell is one rendered map cell: a character plus optional 24-bit colours.
// A zero Text renders as a space.
type Cell struct {
	Text rune
	Fg   *color.RGBA
	Bg   *color.RGBA
}

func (c Cell) char() rune {
	if c.Text == 0 {
		return ' '
	}
	return c.Text
}

// Plain renders the character without colour.
func (c Cell) Plain() string {
	return string(c.char())
}

// String renders the cell with ANSI truecolor escapes when colours are set.
func (c Cell) String() string {
	if c.Fg == nil && c.Bg == nil {
		return c.Plain()
	}
	var b strings.Builder
	if c.Fg != nil {
		fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm", c.Fg.R, c.Fg.G, c.Fg.B)
	}
	if c.Bg != nil {
		fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm", c.Bg.R, c.Bg.G, c.Bg.B)
	}
	b.WriteRune(c.char())
	b.WriteString(ansiReset)
	return b.String()
}

// Text renders every cell of p row by row, with a line break before each
// row except the first.
func Text[S geom.Scale, T any](p *grid.Plane[S, T], cell func(geom.Point[S], T) string) string {
	var b strings.Builder
	b.Grow(p.Len() + int(p.Height()))
	for pt, v := range p.All() {
		if pt.X == 0 && pt.Y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(cell(pt, v))
	}
	return b.String()
}

// Cells renders a plane of prepared cells, with or without colour.
func Cells[S geom.Scale](p *grid.Plane[S, Cell], colour bool) string {
	return Text(p, func(_ geom.Point[S], c Cell) string {
		if colour {
			return c.String()
		}
		return c.Plain()
	})
}
