package grid

import (
	"mapgen/pkg/core"
	"mapgen/pkg/geom"
)

// MaxPathRetries caps how often RandomPathTo restarts a walk whose first step
// lands on an occupied cell. After that the walk proceeds regardless.
const MaxPathRetries = 5

// RandomPathTo carves a monotone random walk from one cell to another. Each
// step moves one cell along an axis that still differs from the target,
// choosing between the two axes with a fair coin while both differ. Every
// empty cell entered is set to value; occupied cells are left as they are.
// The starting cell is never written. Panics if either end is outside the
// grid.
func (g *Grid[S, V]) RandomPathTo(src core.Source, from, to geom.Point[S], value V) {
	g.mustIndex(from)
	g.mustIndex(to)

	dx, dy := geom.East, geom.South
	if to.X < from.X {
		dx = geom.West
	}
	if to.Y < from.Y {
		dy = geom.North
	}
	for attempt := 0; ; attempt++ {
		if g.walk(src, from, to, dx, dy, value, attempt < MaxPathRetries) {
			return
		}
	}
}

// walk reports false when guarded and the first step hit an occupied cell.
// Nothing has been written at that point.
func (g *Grid[S, V]) walk(src core.Source, from, to geom.Point[S], dx, dy geom.Direction, value V, guarded bool) bool {
	cur := from
	for step := 0; cur != to; step++ {
		d := dy
		switch {
		case cur.X != to.X && cur.Y != to.Y:
			if src.Bool() {
				d = dx
			}
		case cur.X != to.X:
			d = dx
		}
		next, ok := cur.NeighbourWithin(d, g.width, g.height)
		if !ok {
			panic(g.outOfBounds(cur))
		}
		cur = next
		i := g.mustIndex(cur)
		if g.data[i] != 0 {
			if step == 0 && guarded {
				return false
			}
			continue
		}
		g.data[i] = value
	}
	return true
}
