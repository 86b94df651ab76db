// Package pipe grows a planar pipe network: a backbone of chained seeds with
// tiers of branch seeds wired to anything older than themselves.
package pipe

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"mapgen/pkg/core"
	"mapgen/pkg/geom"
	"mapgen/pkg/grid"
)

// Cell values written by Generate.
const (
	Empty        = 0
	BackboneSeed = 1
	BackbonePath = 2
	// FirstTier is the seed value of regular tier 0; tier i uses FirstTier+i
	// for seeds and FirstTier+i+1 for paths.
	FirstTier = 3
	// Interconnect marks corridors that join dead ends.
	Interconnect = 99
)

// MaxTiers is the number of regular tiers whose values stay below
// Interconnect.
const MaxTiers = Interconnect - FirstTier - 1

// ErrTooManyTiers is returned by Generate when tier values would collide with
// Interconnect.
var ErrTooManyTiers = errors.New("pipe: too many tiers")

// Properties controls a pipe network.
type Properties struct {
	// BackboneSeeds is the number of initial backbone points.
	BackboneSeeds int
	// RegularSeeds holds the seed goal of each tier, in order.
	RegularSeeds []int
	// Interconnect joins dead ends to their nearest other dead end.
	Interconnect bool
}

// Generate builds a pipe network on a width x height grid. The same seed and
// properties always produce the same grid.
func Generate[S geom.Scale, V grid.Value](width, height S, seed uint64, props Properties) (*grid.Grid[S, V], error) {
	if n := len(props.RegularSeeds); n > MaxTiers {
		return nil, fmt.Errorf("%w: %d, at most %d", ErrTooManyTiers, n, MaxTiers)
	}
	g := grid.New[S, V](width, height)
	if g.Len() == 0 {
		return g, nil
	}
	rng := core.NewRNG(seed)

	backbone := placeBackbone(g, rng, props.BackboneSeeds)
	for i, p := range backbone {
		if next, ok := nearest(p, backbone[i+1:]); ok {
			g.RandomPathTo(rng, p, next, BackbonePath)
		}
	}

	for tier, goal := range props.RegularSeeds {
		growTier(g, rng, goal, V(FirstTier+tier), V(FirstTier+tier+1))
	}

	if props.Interconnect {
		interconnect(g, rng)
	}
	return g, nil
}

// placeBackbone marks n distinct random cells as backbone seeds and returns
// them in placement order.
func placeBackbone[S geom.Scale, V grid.Value](g *grid.Grid[S, V], rng *core.RNG, n int) []geom.Point[S] {
	n = min(n, g.Len())
	points := make([]geom.Point[S], 0, max(n, 0))
	for len(points) < n {
		p := geom.RandomPoint(rng, g.Bounds())
		if g.At(p) != Empty {
			continue
		}
		g.Put(p, BackboneSeed)
		points = append(points, p)
	}
	return points
}

// growTier places goal seeds on empty cells, each wired to the nearest cell
// of an older tier. It stops early when the grid is full.
func growTier[S geom.Scale, V grid.Value](g *grid.Grid[S, V], rng *core.RNG, goal int, seedValue, pathValue V) {
	for placed := 0; placed < goal; placed++ {
		p, ok := randomEmpty(g, rng)
		if !ok {
			return
		}
		g.Put(p, seedValue)
		target, found := geom.Point[S]{}, false
		best := math.Inf(1)
		for q, v := range g.All() {
			if v <= 0 || v >= seedValue {
				continue
			}
			if d := p.Distance(q); d < best {
				best, target, found = d, q, true
			}
		}
		if found {
			g.RandomPathTo(rng, p, target, pathValue)
		}
	}
}

// randomEmpty samples random cells until it finds an empty one. After as many
// misses as there are cells it falls back to a scan so a full grid ends the
// search.
func randomEmpty[S geom.Scale, V grid.Value](g *grid.Grid[S, V], rng *core.RNG) (geom.Point[S], bool) {
	for miss := 0; miss < g.Len(); miss++ {
		p := geom.RandomPoint(rng, g.Bounds())
		if g.At(p) == Empty {
			return p, true
		}
	}
	var empty []geom.Point[S]
	for p, v := range g.All() {
		if v == Empty {
			empty = append(empty, p)
		}
	}
	if len(empty) == 0 {
		return geom.Point[S]{}, false
	}
	return empty[rng.IntN(len(empty))], true
}

// DeadEnds returns the non-backbone cells with exactly one occupied
// neighbour, in row-major order.
func DeadEnds[S geom.Scale, V grid.Value](g *grid.Grid[S, V]) []geom.Point[S] {
	var out []geom.Point[S]
	for p, v := range g.All() {
		if v > BackbonePath && g.CountNeighbours(p) == 1 {
			out = append(out, p)
		}
	}
	return out
}

func interconnect[S geom.Scale, V grid.Value](g *grid.Grid[S, V], rng *core.RNG) {
	ends := DeadEnds(g)
	processed := mapset.New[geom.Point[S]]()
	for i, p := range ends {
		if processed.Has(p) {
			continue
		}
		others := make([]geom.Point[S], 0, len(ends)-1)
		others = append(others, ends[:i]...)
		others = append(others, ends[i+1:]...)
		if target, ok := nearest(p, others); ok {
			g.RandomPathTo(rng, p, target, Interconnect)
			processed.Put(target)
		}
	}
}

// nearest returns the candidate closest to p; the first wins on ties.
func nearest[S geom.Scale](p geom.Point[S], candidates []geom.Point[S]) (geom.Point[S], bool) {
	var best geom.Point[S]
	bestDist := math.Inf(1)
	found := false
	for _, c := range candidates {
		if d := p.Distance(c); d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}
