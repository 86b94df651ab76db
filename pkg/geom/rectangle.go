package geom

import (
	"fmt"
	"iter"
	"math"

	"mapgen/pkg/core"
)

// Rectangle is an axis-aligned region. Both corners are inclusive.
type Rectangle[S Scale] struct {
	TopLeft     Point[S]
	BottomRight Point[S]
}

// RandomBounds limits the extent of RandomRectangle. Zero fields take the
// defaults: a minimum of 1 and a maximum of the bounds' extent.
type RandomBounds[S Scale] struct {
	MinWidth, MaxWidth   S
	MinHeight, MaxHeight S
}

// NewRectangle builds a rectangle from its two inclusive corners.
func NewRectangle[S Scale](topLeft, bottomRight Point[S]) Rectangle[S] {
	return Rectangle[S]{TopLeft: topLeft, BottomRight: bottomRight}
}

// RectangleFromDims builds a rectangle from its top-left corner and extent.
// width and height must be at least 1.
func RectangleFromDims[S Scale](x, y, width, height S) Rectangle[S] {
	return Rectangle[S]{
		TopLeft:     Point[S]{X: x, Y: y},
		BottomRight: Point[S]{X: x + width - 1, Y: y + height - 1},
	}
}

// RandomRectangle draws a rectangle that lies entirely inside bounds and
// honours the extent limits in rb. Limits that cannot be met are clamped to
// the bounds.
func RandomRectangle[S Scale](src core.Source, bounds Rectangle[S], rb RandomBounds[S]) Rectangle[S] {
	left, width := randomSpan(src, uint64(bounds.TopLeft.X), uint64(bounds.BottomRight.X), uint64(rb.MinWidth), uint64(rb.MaxWidth))
	top, height := randomSpan(src, uint64(bounds.TopLeft.Y), uint64(bounds.BottomRight.Y), uint64(rb.MinHeight), uint64(rb.MaxHeight))
	return Rectangle[S]{
		TopLeft:     Point[S]{X: S(left), Y: S(top)},
		BottomRight: Point[S]{X: S(left + width - 1), Y: S(top + height - 1)},
	}
}

// randomSpan picks a start and an extent on the closed interval [lo, hi].
func randomSpan(src core.Source, lo, hi, minExt, maxExt uint64) (start, ext uint64) {
	total := hi - lo + 1
	if minExt == 0 {
		minExt = 1
	}
	if minExt > total {
		minExt = total
	}
	if maxExt == 0 || maxExt > total {
		maxExt = total
	}
	if maxExt < minExt {
		maxExt = minExt
	}
	start = lo + src.Uint64N(total-minExt+1)
	if room := hi - start + 1; room < maxExt {
		maxExt = room
	}
	ext = minExt + src.Uint64N(maxExt-minExt+1)
	return start, ext
}

// Valid reports whether the corners are ordered on both axes.
func (r Rectangle[S]) Valid() bool {
	return r.BottomRight.X >= r.TopLeft.X && r.BottomRight.Y >= r.TopLeft.Y
}

func (r Rectangle[S]) Width() S  { return r.BottomRight.X - r.TopLeft.X + 1 }
func (r Rectangle[S]) Height() S { return r.BottomRight.Y - r.TopLeft.Y + 1 }
func (r Rectangle[S]) Left() S   { return r.TopLeft.X }
func (r Rectangle[S]) Right() S  { return r.BottomRight.X }
func (r Rectangle[S]) Top() S    { return r.TopLeft.Y }
func (r Rectangle[S]) Bottom() S { return r.BottomRight.Y }

// TopRight returns the computed top-right corner.
func (r Rectangle[S]) TopRight() Point[S] {
	return Point[S]{X: r.BottomRight.X, Y: r.TopLeft.Y}
}

// BottomLeft returns the computed bottom-left corner.
func (r Rectangle[S]) BottomLeft() Point[S] {
	return Point[S]{X: r.TopLeft.X, Y: r.BottomRight.Y}
}

// Area returns width*height as a float so large scales cannot overflow.
func (r Rectangle[S]) Area() float64 {
	return float64(r.Width()) * float64(r.Height())
}

// IsSquare reports whether the rectangle is as wide as it is tall.
func (r Rectangle[S]) IsSquare() bool {
	return r.Width() == r.Height()
}

// Contains reports whether p lies inside the rectangle.
func (r Rectangle[S]) Contains(p Point[S]) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BottomRight.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.BottomRight.Y
}

// Intersects reports whether the closed spans overlap on both axes. Sharing
// a row or column of cells counts as intersecting.
func (r Rectangle[S]) Intersects(other Rectangle[S]) bool {
	return r.BottomRight.X >= other.TopLeft.X && r.TopLeft.X <= other.BottomRight.X &&
		r.BottomRight.Y >= other.TopLeft.Y && r.TopLeft.Y <= other.BottomRight.Y
}

// Distance approximates the gap between two rectangles as the shortest
// distance between a corner of r and a differently placed corner of other.
// It ranks candidates; it is not the true rectangle distance.
func (r Rectangle[S]) Distance(other Rectangle[S]) float64 {
	mine := r.corners()
	theirs := other.corners()
	d := math.Inf(1)
	for i, a := range mine {
		for j, b := range theirs {
			if i == j {
				continue
			}
			d = math.Min(d, a.Distance(b))
		}
	}
	return d
}

// corners returns TL, TR, BR, BL.
func (r Rectangle[S]) corners() [4]Point[S] {
	return [4]Point[S]{r.TopLeft, r.TopRight(), r.BottomRight, r.BottomLeft()}
}

// Points iterates over every point of the rectangle in row-major order. The
// sequence is lazy and can be ranged over any number of times.
func (r Rectangle[S]) Points() iter.Seq[Point[S]] {
	return func(yield func(Point[S]) bool) {
		if !r.Valid() {
			return
		}
		for y := r.TopLeft.Y; ; y++ {
			for x := r.TopLeft.X; ; x++ {
				if !yield(Point[S]{X: x, Y: y}) {
					return
				}
				if x == r.BottomRight.X {
					break
				}
			}
			if y == r.BottomRight.Y {
				return
			}
		}
	}
}

func (r Rectangle[S]) String() string {
	return fmt.Sprintf("[%v-%v]", r.TopLeft, r.BottomRight)
}
