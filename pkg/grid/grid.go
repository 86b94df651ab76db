package grid

import (
	"fmt"
	"slices"

	"mapgen/pkg/geom"
)

// Grid is a Plane of integer cells. A zero cell is empty; anything else is
// occupied.
type Grid[S geom.Scale, V Value] struct {
	Plane[S, V]
	lo, hi V
}

// New allocates a zeroed width x height grid.
func New[S geom.Scale, V Value](width, height S) *Grid[S, V] {
	lo, hi := Limits[V]()
	return &Grid[S, V]{Plane: *NewPlane[S, V](width, height), lo: lo, hi: hi}
}

// NewSized allocates a zeroed grid from platform-sized dimensions, failing
// with ErrNumericConversion when they do not fit S.
func NewSized[S geom.Scale, V Value](width, height int) (*Grid[S, V], error) {
	w, err := Convert[S](int64(width))
	if err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	h, err := Convert[S](int64(height))
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	return New[S, V](w, h), nil
}

// FromValues builds a grid over a copy of values, which must hold exactly
// width*height cells in row-major order.
func FromValues[S geom.Scale, V Value](width, height S, values []V) (*Grid[S, V], error) {
	g := New[S, V](width, height)
	if len(values) != len(g.data) {
		return nil, fmt.Errorf("grid: %d values for a %dx%d grid", len(values), uint64(width), uint64(height))
	}
	copy(g.data, values)
	return g, nil
}

// Inc adds amount to the cell at pt, saturating at V's maximum. It reports
// false when the addition was clamped. Panics outside the grid.
func (g *Grid[S, V]) Inc(pt geom.Point[S], amount V) bool {
	i := g.mustIndex(pt)
	v, ok := g.add(g.data[i], amount)
	g.data[i] = v
	return ok
}

// Dec subtracts amount from the cell at pt, saturating at V's minimum. It
// reports false when the subtraction was clamped. Panics outside the grid.
func (g *Grid[S, V]) Dec(pt geom.Point[S], amount V) bool {
	i := g.mustIndex(pt)
	v, ok := g.sub(g.data[i], amount)
	g.data[i] = v
	return ok
}

func (g *Grid[S, V]) add(v, amount V) (V, bool) {
	if amount >= 0 {
		if v > g.hi-amount {
			return g.hi, false
		}
		return v + amount, true
	}
	if v < g.lo-amount {
		return g.lo, false
	}
	return v + amount, true
}

func (g *Grid[S, V]) sub(v, amount V) (V, bool) {
	if amount >= 0 {
		if v < g.lo+amount {
			return g.lo, false
		}
		return v - amount, true
	}
	if v > g.hi+amount {
		return g.hi, false
	}
	return v - amount, true
}

// Add adds other cell-wise over the overlapping region, saturating.
func (g *Grid[S, V]) Add(other *Grid[S, V]) {
	g.combine(other, g.add)
}

// Sub subtracts other cell-wise over the overlapping region, saturating.
func (g *Grid[S, V]) Sub(other *Grid[S, V]) {
	g.combine(other, g.sub)
}

func (g *Grid[S, V]) combine(other *Grid[S, V], op func(V, V) (V, bool)) {
	w := min(g.width, other.width)
	h := min(g.height, other.height)
	for y := S(0); y < h; y++ {
		for x := S(0); x < w; x++ {
			i := int(y)*int(g.width) + int(x)
			j := int(y)*int(other.width) + int(x)
			g.data[i], _ = op(g.data[i], other.data[j])
		}
	}
}

// Min returns the smallest cell value.
func (g *Grid[S, V]) Min() (V, error) {
	if len(g.data) == 0 {
		return 0, ErrEmptyGrid
	}
	return slices.Min(g.data), nil
}

// Max returns the largest cell value.
func (g *Grid[S, V]) Max() (V, error) {
	if len(g.data) == 0 {
		return 0, ErrEmptyGrid
	}
	return slices.Max(g.data), nil
}

// Count returns how many cells hold v.
func (g *Grid[S, V]) Count(v V) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Occupied returns how many cells are non-zero.
func (g *Grid[S, V]) Occupied() int {
	return len(g.data) - g.Count(0)
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid[S, V]) Equal(other *Grid[S, V]) bool {
	return g.width == other.width && g.height == other.height && slices.Equal(g.data, other.data)
}

// Clone returns a deep copy.
func (g *Grid[S, V]) Clone() *Grid[S, V] {
	c := *g
	c.data = slices.Clone(g.data)
	return &c
}

// Transform builds a grid of the same size whose cells are f applied to g's.
func Transform[S geom.Scale, V, W Value](g *Grid[S, V], f func(geom.Point[S], V) W) *Grid[S, W] {
	lo, hi := Limits[W]()
	return &Grid[S, W]{Plane: *Map(&g.Plane, f), lo: lo, hi: hi}
}
