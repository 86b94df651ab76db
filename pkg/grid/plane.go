// Package grid provides dense, row-major 2D storage addressed by geom points.
//
// Plane holds any cell type. Grid embeds a Plane of integers and adds the
// saturating arithmetic, adjacency queries, path carving and region search
// the generators build on.
package grid

import (
	"fmt"
	"iter"

	"mapgen/pkg/geom"
)

// Plane is a width x height block of cells stored row-major.
type Plane[S geom.Scale, T any] struct {
	data   []T
	width  S
	height S
}

// NewPlane allocates a plane with every cell set to T's zero value.
func NewPlane[S geom.Scale, T any](width, height S) *Plane[S, T] {
	return &Plane[S, T]{
		data:   make([]T, int(width)*int(height)),
		width:  width,
		height: height,
	}
}

func (p *Plane[S, T]) Width() S  { return p.width }
func (p *Plane[S, T]) Height() S { return p.height }
func (p *Plane[S, T]) Len() int  { return len(p.data) }

// Bounds returns the rectangle covering every cell. It is only meaningful
// when the plane is not empty.
func (p *Plane[S, T]) Bounds() geom.Rectangle[S] {
	return geom.RectangleFromDims(0, 0, p.width, p.height)
}

// Contains reports whether pt addresses a cell.
func (p *Plane[S, T]) Contains(pt geom.Point[S]) bool {
	return pt.X < p.width && pt.Y < p.height
}

func (p *Plane[S, T]) index(pt geom.Point[S]) (int, bool) {
	if !p.Contains(pt) {
		return 0, false
	}
	return int(pt.Y)*int(p.width) + int(pt.X), true
}

func (p *Plane[S, T]) outOfBounds(pt geom.Point[S]) error {
	return fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, pt, uint64(p.width), uint64(p.height))
}

func (p *Plane[S, T]) mustIndex(pt geom.Point[S]) int {
	i, ok := p.index(pt)
	if !ok {
		panic(p.outOfBounds(pt))
	}
	return i
}

// Get returns the cell at pt.
func (p *Plane[S, T]) Get(pt geom.Point[S]) (T, error) {
	i, ok := p.index(pt)
	if !ok {
		var zero T
		return zero, p.outOfBounds(pt)
	}
	return p.data[i], nil
}

// Set stores v at pt.
func (p *Plane[S, T]) Set(pt geom.Point[S], v T) error {
	i, ok := p.index(pt)
	if !ok {
		return p.outOfBounds(pt)
	}
	p.data[i] = v
	return nil
}

// Ref returns a pointer to the cell at pt for in-place updates.
func (p *Plane[S, T]) Ref(pt geom.Point[S]) (*T, error) {
	i, ok := p.index(pt)
	if !ok {
		return nil, p.outOfBounds(pt)
	}
	return &p.data[i], nil
}

// At is Get for callers that have already checked bounds. It panics with an
// error wrapping ErrOutOfBounds when pt is outside the plane.
func (p *Plane[S, T]) At(pt geom.Point[S]) T {
	return p.data[p.mustIndex(pt)]
}

// Put is Set for callers that have already checked bounds. It panics with an
// error wrapping ErrOutOfBounds when pt is outside the plane.
func (p *Plane[S, T]) Put(pt geom.Point[S], v T) {
	p.data[p.mustIndex(pt)] = v
}

// All iterates over every cell in row-major order.
func (p *Plane[S, T]) All() iter.Seq2[geom.Point[S], T] {
	return func(yield func(geom.Point[S], T) bool) {
		w := int(p.width)
		for i, v := range p.data {
			pt := geom.Point[S]{X: S(i % w), Y: S(i / w)}
			if !yield(pt, v) {
				return
			}
		}
	}
}

// Rows iterates over the plane one row at a time. The yielded slices alias
// the plane's storage.
func (p *Plane[S, T]) Rows() iter.Seq2[S, []T] {
	return func(yield func(S, []T) bool) {
		w := int(p.width)
		for y := 0; y < int(p.height); y++ {
			if !yield(S(y), p.data[y*w:(y+1)*w]) {
				return
			}
		}
	}
}

// Values returns a copy of the cells in row-major order.
func (p *Plane[S, T]) Values() []T {
	out := make([]T, len(p.data))
	copy(out, p.data)
	return out
}

// Map builds a plane of the same size whose cells are f applied to src's.
func Map[S geom.Scale, T, U any](src *Plane[S, T], f func(geom.Point[S], T) U) *Plane[S, U] {
	out := NewPlane[S, U](src.width, src.height)
	for pt, v := range src.All() {
		out.data[int(pt.Y)*int(src.width)+int(pt.X)] = f(pt, v)
	}
	return out
}
