// Package height builds elevation maps by stacking random rectangles.
package height

import (
	"math"

	"github.com/aquilax/go-perlin"

	"mapgen/pkg/core"
	"mapgen/pkg/geom"
	"mapgen/pkg/grid"
)

// Perlin parameters for the optional perturbation.
const (
	noiseAlpha     = 2
	noiseBeta      = 2
	noiseOctaves   = 3
	noiseFrequency = 0.08
)

// Properties controls a height map.
type Properties struct {
	// Iterations is the number of rectangles raised by one.
	Iterations int
	// Noise is the amplitude, in cell units, of a Perlin perturbation
	// applied after the rectangles. Zero disables it.
	Noise float64
}

// Generate builds a width x height elevation map. Every iteration raises a
// random rectangle, at most a fifth of the map on each axis, by one. The
// corners of rectangles at least 3x3 are left out to soften the edges.
func Generate[S geom.Scale, V grid.Value](width, height S, seed uint64, props Properties) *grid.Grid[S, V] {
	g := grid.New[S, V](width, height)
	if g.Len() == 0 {
		return g
	}
	rng := core.NewRNG(seed)
	limits := geom.RandomBounds[S]{
		MinWidth:  1,
		MaxWidth:  max(1, width/5),
		MinHeight: 1,
		MaxHeight: max(1, height/5),
	}
	bounds := g.Bounds()
	for i := 0; i < props.Iterations; i++ {
		raise(g, geom.RandomRectangle(rng, bounds, limits))
	}
	if props.Noise > 0 {
		perturb(g, rng.Int64(), props.Noise)
	}
	return g
}

func raise[S geom.Scale, V grid.Value](g *grid.Grid[S, V], r geom.Rectangle[S]) {
	trim := r.Width() >= 3 && r.Height() >= 3
	for p := range r.Points() {
		if trim && isCorner(r, p) {
			continue
		}
		g.Inc(p, 1)
	}
}

func isCorner[S geom.Scale](r geom.Rectangle[S], p geom.Point[S]) bool {
	return (p.X == r.Left() || p.X == r.Right()) && (p.Y == r.Top() || p.Y == r.Bottom())
}

// perturb nudges every cell by round(amplitude * noise), saturating at the
// value type's bounds.
func perturb[S geom.Scale, V grid.Value](g *grid.Grid[S, V], seed int64, amplitude float64) {
	_, hi := grid.Limits[V]()
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	for p := range g.Bounds().Points() {
		n := noise.Noise2D(float64(p.X)*noiseFrequency+0.5, float64(p.Y)*noiseFrequency+0.5)
		delta := int64(math.Round(n * amplitude))
		step, err := grid.Convert[V](abs(delta))
		if err != nil {
			step = hi
		}
		if delta > 0 {
			g.Inc(p, step)
		} else if delta < 0 {
			g.Dec(p, step)
		}
	}
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
