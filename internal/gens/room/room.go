// Package room places non-overlapping rectangular rooms and joins each new
// room to its nearest older neighbour with a corridor.
package room

import (
	"mapgen/pkg/core"
	"mapgen/pkg/geom"
	"mapgen/pkg/grid"
)

// MaxPlacementTries is the number of consecutive rejected candidates after
// which placement gives up.
const MaxPlacementTries = 100

// Occupied is the value of room and corridor cells.
const Occupied = 1

// Properties controls a dungeon.
type Properties struct {
	// Rooms is the number of rooms to try to place.
	Rooms int
}

// CorridorKind tells how two rooms were joined.
type CorridorKind int

const (
	// Horizontal is a straight corridor along a shared row.
	Horizontal CorridorKind = iota
	// Vertical is a straight corridor along a shared column.
	Vertical
	// Walk is a random monotone walk used when rooms share no row or column.
	Walk
)

func (k CorridorKind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Walk:
		return "walk"
	}
	return "unknown"
}

// Link records the corridor joining room From to the older room To.
type Link struct {
	From, To int
	Kind     CorridorKind
}

// Dungeon is a generated map together with its accepted rooms, in placement
// order.
type Dungeon[S geom.Scale, V grid.Value] struct {
	Grid  *grid.Grid[S, V]
	Rooms []geom.Rectangle[S]
	Links []Link
}

// Generate builds a dungeon and returns only its grid.
func Generate[S geom.Scale, V grid.Value](width, height S, seed uint64, props Properties) *grid.Grid[S, V] {
	return Build[S, V](width, height, seed, props).Grid
}

// Build places up to props.Rooms rooms on a width x height grid. Candidates
// span 3 to a quarter of the map on each axis and are rejected when they
// share a cell with an accepted room. Every accepted room after the first is joined to
// the nearest earlier room, so the result is connected.
func Build[S geom.Scale, V grid.Value](width, height S, seed uint64, props Properties) Dungeon[S, V] {
	d := Dungeon[S, V]{Grid: grid.New[S, V](width, height)}
	if d.Grid.Len() == 0 {
		return d
	}
	rng := core.NewRNG(seed)
	limits := geom.RandomBounds[S]{
		MinWidth:  3,
		MaxWidth:  max(3, width/4),
		MinHeight: 3,
		MaxHeight: max(3, height/4),
	}
	bounds := d.Grid.Bounds()
	for tries := 0; len(d.Rooms) < props.Rooms && tries < MaxPlacementTries; {
		candidate := geom.RandomRectangle(rng, bounds, limits)
		if overlapsAny(candidate, d.Rooms) {
			tries++
			continue
		}
		tries = 0
		for p := range candidate.Points() {
			d.Grid.Put(p, Occupied)
		}
		if to, ok := nearestRoom(candidate, d.Rooms); ok {
			kind := connect(d.Grid, rng, candidate, d.Rooms[to])
			d.Links = append(d.Links, Link{From: len(d.Rooms), To: to, Kind: kind})
		}
		d.Rooms = append(d.Rooms, candidate)
	}
	return d
}

func overlapsAny[S geom.Scale](r geom.Rectangle[S], rooms []geom.Rectangle[S]) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

// nearestRoom returns the index of the room closest to r by the corner
// heuristic; the first wins on ties.
func nearestRoom[S geom.Scale](r geom.Rectangle[S], rooms []geom.Rectangle[S]) (int, bool) {
	best := -1
	var bestDist float64
	for i, other := range rooms {
		if d := r.Distance(other); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// connect carves a corridor between two disjoint rooms and reports its kind.
func connect[S geom.Scale, V grid.Value](g *grid.Grid[S, V], rng *core.RNG, a, b geom.Rectangle[S]) CorridorKind {
	switch {
	case a.Top() <= b.Bottom() && b.Top() <= a.Bottom():
		y := pick(rng, max(a.Top(), b.Top()), min(a.Bottom(), b.Bottom()))
		left, right := a, b
		if b.Left() < a.Left() {
			left, right = b, a
		}
		for x := left.Right() + 1; x < right.Left(); x++ {
			g.Put(geom.Pt(x, y), Occupied)
		}
		return Horizontal
	case a.Left() <= b.Right() && b.Left() <= a.Right():
		x := pick(rng, max(a.Left(), b.Left()), min(a.Right(), b.Right()))
		top, bottom := a, b
		if b.Top() < a.Top() {
			top, bottom = b, a
		}
		for y := top.Bottom() + 1; y < bottom.Top(); y++ {
			g.Put(geom.Pt(x, y), Occupied)
		}
		return Vertical
	}
	g.RandomPathTo(rng, geom.RandomPoint(rng, a), geom.RandomPoint(rng, b), Occupied)
	return Walk
}

// pick draws uniformly from the closed range [lo, hi].
func pick[S geom.Scale](rng *core.RNG, lo, hi S) S {
	return lo + S(rng.Uint64N(uint64(hi-lo)+1))
}
