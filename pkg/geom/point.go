// Package geom provides the 2D primitives shared by the map generators:
// points, directions and axis-aligned rectangles over an unsigned coordinate
// type.
package geom

import (
	"fmt"
	"math"

	"mapgen/pkg/core"
)

// Scale is the set of coordinate types a Point can use.
type Scale interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Point is a coordinate in an X,Y plane. It is a value type.
type Point[S Scale] struct {
	X, Y S
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt[S Scale](x, y S) Point[S] {
	return Point[S]{X: x, Y: y}
}

// RandomPoint returns a uniformly drawn point inside bounds.
func RandomPoint[S Scale](src core.Source, bounds Rectangle[S]) Point[S] {
	w := uint64(bounds.BottomRight.X) - uint64(bounds.TopLeft.X) + 1
	h := uint64(bounds.BottomRight.Y) - uint64(bounds.TopLeft.Y) + 1
	x := uint64(bounds.TopLeft.X) + src.Uint64N(w)
	y := uint64(bounds.TopLeft.Y) + src.Uint64N(h)
	return Point[S]{X: S(x), Y: S(y)}
}

// Neighbour returns the adjacent point in direction d without any upper
// bound. It fails only when the step would leave the coordinate type.
func (p Point[S]) Neighbour(d Direction) (Point[S], bool) {
	return p.step(d, maxScale[S](), maxScale[S]())
}

// NeighbourWithin returns the adjacent point in direction d, failing when the
// step would leave [0,width) x [0,height).
func (p Point[S]) NeighbourWithin(d Direction, width, height S) (Point[S], bool) {
	if width == 0 || height == 0 {
		return p, false
	}
	return p.step(d, width-1, height-1)
}

func (p Point[S]) step(d Direction, lastX, lastY S) (Point[S], bool) {
	switch d {
	case North:
		if p.Y == 0 {
			return p, false
		}
		return Point[S]{X: p.X, Y: p.Y - 1}, true
	case East:
		if p.X >= lastX {
			return p, false
		}
		return Point[S]{X: p.X + 1, Y: p.Y}, true
	case South:
		if p.Y >= lastY {
			return p, false
		}
		return Point[S]{X: p.X, Y: p.Y + 1}, true
	case West:
		if p.X == 0 {
			return p, false
		}
		return Point[S]{X: p.X - 1, Y: p.Y}, true
	}
	return p, false
}

// North is Neighbour(North).
func (p Point[S]) North() (Point[S], bool) { return p.Neighbour(North) }

// East is Neighbour(East).
func (p Point[S]) East() (Point[S], bool) { return p.Neighbour(East) }

// South is Neighbour(South).
func (p Point[S]) South() (Point[S], bool) { return p.Neighbour(South) }

// West is Neighbour(West).
func (p Point[S]) West() (Point[S], bool) { return p.Neighbour(West) }

// Distance is the Euclidean distance between two points.
func (p Point[S]) Distance(other Point[S]) float64 {
	dx := float64(other.X) - float64(p.X)
	dy := float64(other.Y) - float64(p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect returns the width x height rectangle whose top-left corner is p.
func (p Point[S]) Rect(width, height S) Rectangle[S] {
	return RectangleFromDims(p.X, p.Y, width, height)
}

// Square returns the size x size rectangle whose top-left corner is p.
func (p Point[S]) Square(size S) Rectangle[S] {
	return RectangleFromDims(p.X, p.Y, size, size)
}

// Unit returns the 1x1 rectangle covering p.
func (p Point[S]) Unit() Rectangle[S] {
	return Rectangle[S]{TopLeft: p, BottomRight: p}
}

func (p Point[S]) String() string {
	return fmt.Sprintf("(%d,%d)", uint64(p.X), uint64(p.Y))
}

func maxScale[S Scale]() S {
	return ^S(0)
}
