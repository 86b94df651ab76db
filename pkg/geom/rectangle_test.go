package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapgen/pkg/core"
)

func TestRectangleDims(t *testing.T) {
	r := RectangleFromDims[uint16](2, 3, 4, 5)
	require.Equal(t, Pt[uint16](2, 3), r.TopLeft)
	require.Equal(t, Pt[uint16](5, 7), r.BottomRight)
	require.Equal(t, uint16(4), r.Width())
	require.Equal(t, uint16(5), r.Height())
	require.Equal(t, Pt[uint16](5, 3), r.TopRight())
	require.Equal(t, Pt[uint16](2, 7), r.BottomLeft())
	require.InDelta(t, 20.0, r.Area(), 1e-9)
	require.False(t, r.IsSquare())
	require.True(t, r.Valid())
	require.False(t, NewRectangle(Pt[uint16](3, 3), Pt[uint16](2, 5)).Valid())
}

func TestRectangleIntersects(t *testing.T) {
	a := RectangleFromDims[uint8](0, 0, 4, 4)
	cases := []struct {
		name string
		b    Rectangle[uint8]
		want bool
	}{
		{"overlapping", RectangleFromDims[uint8](2, 2, 4, 4), true},
		{"sharing an edge column", RectangleFromDims[uint8](3, 0, 4, 4), true},
		{"sharing a corner cell", RectangleFromDims[uint8](3, 3, 2, 2), true},
		{"adjacent but disjoint", RectangleFromDims[uint8](4, 0, 2, 2), false},
		{"below", RectangleFromDims[uint8](0, 5, 4, 4), false},
		{"contained", RectangleFromDims[uint8](1, 1, 1, 1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Intersects(tc.b))
			assert.Equal(t, tc.want, tc.b.Intersects(a), "intersection must be symmetric")
		})
	}
}

func TestRectangleCornerDistance(t *testing.T) {
	a := RectangleFromDims[uint16](0, 0, 3, 3)
	b := RectangleFromDims[uint16](6, 0, 3, 3)
	// a's top-right (2,0) against b's top-left (6,0).
	assert.InDelta(t, 4.0, a.Distance(b), 1e-9)
	assert.InDelta(t, a.Distance(b), b.Distance(a), 1e-9)

	c := RectangleFromDims[uint16](5, 7, 2, 2)
	// a's bottom-right (2,2) against c's top-left (5,7).
	assert.InDelta(t, a.BottomRight.Distance(c.TopLeft), a.Distance(c), 1e-9)
}

func TestRectanglePointsRowMajor(t *testing.T) {
	r := RectangleFromDims[uint8](1, 1, 3, 2)
	var got []Point[uint8]
	for p := range r.Points() {
		got = append(got, p)
	}
	want := []Point[uint8]{
		{1, 1}, {2, 1}, {3, 1},
		{1, 2}, {2, 2}, {3, 2},
	}
	require.Equal(t, want, got)

	var again int
	for range r.Points() {
		again++
	}
	require.Equal(t, len(want), again, "iteration must be restartable")
}

func TestRectanglePointsEarlyStop(t *testing.T) {
	r := RectangleFromDims[uint8](0, 0, 10, 10)
	n := 0
	for range r.Points() {
		n++
		if n == 7 {
			break
		}
	}
	require.Equal(t, 7, n)
}

func TestRectanglePointsAtScaleLimit(t *testing.T) {
	r := NewRectangle(Pt[uint8](254, 254), Pt[uint8](255, 255))
	n := 0
	for range r.Points() {
		n++
	}
	require.Equal(t, 4, n)
}

func TestRandomRectangleHonoursBounds(t *testing.T) {
	rng := core.NewRNG(5)
	bounds := RectangleFromDims[uint16](0, 0, 40, 20)
	limits := RandomBounds[uint16]{MinWidth: 3, MaxWidth: 10, MinHeight: 3, MaxHeight: 5}
	for i := 0; i < 2000; i++ {
		r := RandomRectangle(rng, bounds, limits)
		require.True(t, r.Valid())
		require.True(t, bounds.Contains(r.TopLeft), "%v", r)
		require.True(t, bounds.Contains(r.BottomRight), "%v", r)
		require.GreaterOrEqual(t, r.Width(), uint16(3))
		require.LessOrEqual(t, r.Width(), uint16(10))
		require.GreaterOrEqual(t, r.Height(), uint16(3))
		require.LessOrEqual(t, r.Height(), uint16(5))
	}
}

func TestRandomRectangleDefaults(t *testing.T) {
	rng := core.NewRNG(9)
	bounds := RectangleFromDims[uint8](2, 2, 5, 5)
	sawFull := false
	for i := 0; i < 20000; i++ {
		r := RandomRectangle(rng, bounds, RandomBounds[uint8]{})
		require.True(t, bounds.Contains(r.TopLeft))
		require.True(t, bounds.Contains(r.BottomRight))
		if r == bounds {
			sawFull = true
		}
	}
	require.True(t, sawFull, "default maximum should allow the whole bounds")
}

func TestRandomRectangleClampsImpossibleLimits(t *testing.T) {
	rng := core.NewRNG(1)
	bounds := RectangleFromDims[uint8](0, 0, 2, 2)
	r := RandomRectangle(rng, bounds, RandomBounds[uint8]{MinWidth: 3, MaxWidth: 1, MinHeight: 3, MaxHeight: 1})
	require.Equal(t, bounds, r)
}
