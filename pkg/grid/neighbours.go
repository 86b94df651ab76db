package grid

import "mapgen/pkg/geom"

// Adjacency records which of a cell's four neighbours are occupied.
type Adjacency struct {
	North, East, South, West bool
}

// Mask packs the adjacency into four bits: North=1, East=2, South=4, West=8.
func (a Adjacency) Mask() uint8 {
	var m uint8
	if a.North {
		m |= 1
	}
	if a.East {
		m |= 2
	}
	if a.South {
		m |= 4
	}
	if a.West {
		m |= 8
	}
	return m
}

// Count returns the number of occupied neighbours.
func (a Adjacency) Count() int {
	n := 0
	for _, b := range [4]bool{a.North, a.East, a.South, a.West} {
		if b {
			n++
		}
	}
	return n
}

// Has reports the flag for direction d.
func (a Adjacency) Has(d geom.Direction) bool {
	switch d {
	case geom.North:
		return a.North
	case geom.East:
		return a.East
	case geom.South:
		return a.South
	case geom.West:
		return a.West
	}
	return false
}

// HasNeighbour reports whether the neighbour of pt in direction d exists and
// is occupied. Missing neighbours at the border are not occupied.
func (g *Grid[S, V]) HasNeighbour(pt geom.Point[S], d geom.Direction) bool {
	n, ok := pt.NeighbourWithin(d, g.width, g.height)
	if !ok {
		return false
	}
	return g.At(n) != 0
}

func (g *Grid[S, V]) HasNorth(pt geom.Point[S]) bool { return g.HasNeighbour(pt, geom.North) }
func (g *Grid[S, V]) HasEast(pt geom.Point[S]) bool  { return g.HasNeighbour(pt, geom.East) }
func (g *Grid[S, V]) HasSouth(pt geom.Point[S]) bool { return g.HasNeighbour(pt, geom.South) }
func (g *Grid[S, V]) HasWest(pt geom.Point[S]) bool  { return g.HasNeighbour(pt, geom.West) }

// Adjacency returns the occupied-neighbour flags of pt.
func (g *Grid[S, V]) Adjacency(pt geom.Point[S]) Adjacency {
	return Adjacency{
		North: g.HasNorth(pt),
		East:  g.HasEast(pt),
		South: g.HasSouth(pt),
		West:  g.HasWest(pt),
	}
}

// Neighbours returns the occupied 4-neighbours of pt in N, E, S, W order.
func (g *Grid[S, V]) Neighbours(pt geom.Point[S]) []geom.Point[S] {
	out := make([]geom.Point[S], 0, 4)
	for _, d := range geom.Directions {
		if n, ok := pt.NeighbourWithin(d, g.width, g.height); ok && g.At(n) != 0 {
			out = append(out, n)
		}
	}
	return out
}

// CountNeighbours returns the number of occupied 4-neighbours of pt.
func (g *Grid[S, V]) CountNeighbours(pt geom.Point[S]) int {
	return g.Adjacency(pt).Count()
}
