package grid

import (
	"github.com/zyedidia/generic/mapset"

	"mapgen/pkg/geom"
)

// Region is a 4-connected set of occupied cells.
type Region[S geom.Scale] struct {
	Cells  []geom.Point[S]
	Bounds geom.Rectangle[S]
}

// Size returns the number of cells in the region.
func (r Region[S]) Size() int { return len(r.Cells) }

// Region returns the 4-connected occupied cells reachable from start, in
// breadth-first order. It is empty when start is unoccupied.
func (g *Grid[S, V]) Region(start geom.Point[S]) Region[S] {
	visited := mapset.New[geom.Point[S]]()
	return g.flood(start, visited)
}

// Regions partitions the occupied cells into 4-connected regions, ordered by
// the row-major position of each region's first cell.
func (g *Grid[S, V]) Regions() []Region[S] {
	visited := mapset.New[geom.Point[S]]()
	var out []Region[S]
	for pt, v := range g.All() {
		if v == 0 || visited.Has(pt) {
			continue
		}
		out = append(out, g.flood(pt, visited))
	}
	return out
}

// Connected reports whether every occupied cell belongs to one region.
// Grids with no occupied cells count as connected.
func (g *Grid[S, V]) Connected() bool {
	return len(g.Regions()) <= 1
}

// LargestRegion returns the region with the most cells; ties keep the first.
func (g *Grid[S, V]) LargestRegion() (Region[S], bool) {
	regions := g.Regions()
	i, ok := Largest(regions)
	if !ok {
		return Region[S]{}, false
	}
	return regions[i], true
}

// Largest returns the index of the region with the most cells; ties keep the
// first. It reports false for an empty slice.
func Largest[S geom.Scale](regions []Region[S]) (int, bool) {
	if len(regions) == 0 {
		return -1, false
	}
	best := 0
	for i, r := range regions {
		if r.Size() > regions[best].Size() {
			best = i
		}
	}
	return best, true
}

func (g *Grid[S, V]) flood(start geom.Point[S], visited mapset.Set[geom.Point[S]]) Region[S] {
	var r Region[S]
	if !g.Contains(start) || g.At(start) == 0 || visited.Has(start) {
		return r
	}
	r.Bounds = start.Unit()
	visited.Put(start)
	queue := []geom.Point[S]{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		r.Cells = append(r.Cells, cur)
		r.Bounds = grow(r.Bounds, cur)
		for _, n := range g.Neighbours(cur) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return r
}

func grow[S geom.Scale](r geom.Rectangle[S], p geom.Point[S]) geom.Rectangle[S] {
	r.TopLeft.X = min(r.TopLeft.X, p.X)
	r.TopLeft.Y = min(r.TopLeft.Y, p.Y)
	r.BottomRight.X = max(r.BottomRight.X, p.X)
	r.BottomRight.Y = max(r.BottomRight.Y, p.Y)
	return r
}
