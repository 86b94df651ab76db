package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapgen/pkg/geom"
)

func TestNewGridIsZeroed(t *testing.T) {
	g := New[uint16, uint8](7, 3)
	require.Equal(t, uint16(7), g.Width())
	require.Equal(t, uint16(3), g.Height())
	require.Equal(t, 21, g.Len())
	for _, v := range g.All() {
		require.Zero(t, v)
	}
	require.Equal(t, geom.RectangleFromDims[uint16](0, 0, 7, 3), g.Bounds())
}

func TestNewSizedRejectsOversizedDimensions(t *testing.T) {
	_, err := NewSized[uint8, uint8](256, 4)
	require.ErrorIs(t, err, ErrNumericConversion)

	g, err := NewSized[uint8, uint8](255, 4)
	require.NoError(t, err)
	require.Equal(t, uint8(255), g.Width())
}

func TestCheckedAccess(t *testing.T) {
	g := New[uint8, int16](4, 4)
	require.NoError(t, g.Set(geom.Pt[uint8](1, 2), -7))

	v, err := g.Get(geom.Pt[uint8](1, 2))
	require.NoError(t, err)
	require.Equal(t, int16(-7), v)

	ref, err := g.Ref(geom.Pt[uint8](1, 2))
	require.NoError(t, err)
	*ref = 9
	require.Equal(t, int16(9), g.At(geom.Pt[uint8](1, 2)))

	_, err = g.Get(geom.Pt[uint8](4, 0))
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.ErrorIs(t, g.Set(geom.Pt[uint8](0, 4), 1), ErrOutOfBounds)
	_, err = g.Ref(geom.Pt[uint8](9, 9))
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestUncheckedAccessPanicsOutside(t *testing.T) {
	g := New[uint8, uint8](3, 3)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, ErrOutOfBounds))
	}()
	g.Put(geom.Pt[uint8](3, 0), 1)
}

func TestAllIsRowMajor(t *testing.T) {
	g, err := FromValues[uint8, uint8](3, 2, []uint8{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	var pts []geom.Point[uint8]
	var vals []uint8
	for p, v := range g.All() {
		pts = append(pts, p)
		vals = append(vals, v)
	}
	require.Equal(t, []uint8{1, 2, 3, 4, 5, 6}, vals)
	require.Equal(t, geom.Pt[uint8](0, 1), pts[3])
	require.Equal(t, uint8(6), g.At(geom.Pt[uint8](2, 1)))

	_, err = FromValues[uint8, uint8](3, 2, []uint8{1})
	require.Error(t, err)
}

func TestRows(t *testing.T) {
	g, err := FromValues[uint8, uint8](2, 3, []uint8{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	var rows [][]uint8
	for y, row := range g.Rows() {
		require.Equal(t, int(y), len(rows))
		rows = append(rows, row)
	}
	require.Equal(t, [][]uint8{{1, 2}, {3, 4}, {5, 6}}, rows)
}

func TestIncSaturates(t *testing.T) {
	g := New[uint8, uint8](1, 1)
	p := geom.Pt[uint8](0, 0)
	require.True(t, g.Inc(p, 250))
	require.False(t, g.Inc(p, 10))
	require.Equal(t, uint8(255), g.At(p))
	require.False(t, g.Inc(p, 1), "already at max")
	require.Equal(t, uint8(255), g.At(p))

	require.True(t, g.Dec(p, 200))
	require.False(t, g.Dec(p, 100))
	require.Zero(t, g.At(p))
}

func TestSignedSaturation(t *testing.T) {
	g := New[uint8, int8](1, 1)
	p := geom.Pt[uint8](0, 0)
	require.True(t, g.Dec(p, 127))
	require.True(t, g.Dec(p, 0))
	require.Equal(t, int8(-127), g.At(p))
	require.False(t, g.Dec(p, 5))
	require.Equal(t, int8(-128), g.At(p))

	require.False(t, g.Inc(p, -1), "adding a negative amount saturates at min")
	require.Equal(t, int8(-128), g.At(p))

	g.Put(p, 100)
	require.False(t, g.Dec(p, -100), "subtracting a negative amount saturates at max")
	require.Equal(t, int8(127), g.At(p))
}

func TestLimits(t *testing.T) {
	lo8, hi8 := Limits[int8]()
	assert.Equal(t, int8(-128), lo8)
	assert.Equal(t, int8(127), hi8)

	lo, hi := Limits[uint16]()
	assert.Equal(t, uint16(0), lo)
	assert.Equal(t, uint16(65535), hi)

	lo64, hi64 := Limits[int64]()
	assert.Equal(t, int64(-1<<63), lo64)
	assert.Equal(t, int64(1<<63-1), hi64)

	_, hiU := Limits[uint64]()
	assert.Equal(t, ^uint64(0), hiU)
}

func TestConvert(t *testing.T) {
	v, err := Convert[uint8](255)
	require.NoError(t, err)
	require.Equal(t, uint8(255), v)

	_, err = Convert[uint8](256)
	require.ErrorIs(t, err, ErrNumericConversion)
	_, err = Convert[uint64](-1)
	require.ErrorIs(t, err, ErrNumericConversion)
	_, err = Convert[int8](-129)
	require.ErrorIs(t, err, ErrNumericConversion)

	n, err := Convert[int8](-128)
	require.NoError(t, err)
	require.Equal(t, int8(-128), n)
}

func TestAddSubOverlap(t *testing.T) {
	a, err := FromValues[uint8, uint8](3, 2, []uint8{1, 2, 3, 4, 5, 250})
	require.NoError(t, err)
	b, err := FromValues[uint8, uint8](2, 3, []uint8{10, 10, 10, 10, 10, 10})
	require.NoError(t, err)

	a.Add(b)
	require.Equal(t, []uint8{11, 12, 3, 14, 15, 250}, a.Values())

	c, err := FromValues[uint8, uint8](3, 2, []uint8{20, 0, 0, 0, 0, 10})
	require.NoError(t, err)
	a.Sub(c)
	require.Equal(t, []uint8{0, 12, 3, 14, 15, 240}, a.Values())

	big, err := FromValues[uint8, uint8](3, 2, []uint8{0, 0, 0, 0, 0, 100})
	require.NoError(t, err)
	a.Add(big)
	require.Equal(t, uint8(255), a.At(geom.Pt[uint8](2, 1)))
}

func TestMinMax(t *testing.T) {
	g, err := FromValues[uint8, int32](2, 2, []int32{4, -3, 9, 0})
	require.NoError(t, err)
	lo, err := g.Min()
	require.NoError(t, err)
	hi, err := g.Max()
	require.NoError(t, err)
	require.Equal(t, int32(-3), lo)
	require.Equal(t, int32(9), hi)

	empty := New[uint8, int32](0, 0)
	_, err = empty.Min()
	require.ErrorIs(t, err, ErrEmptyGrid)
	_, err = empty.Max()
	require.ErrorIs(t, err, ErrEmptyGrid)
}

func TestCloneEqualCount(t *testing.T) {
	g, err := FromValues[uint8, uint8](2, 2, []uint8{0, 1, 1, 3})
	require.NoError(t, err)
	c := g.Clone()
	require.True(t, g.Equal(c))
	c.Put(geom.Pt[uint8](0, 0), 7)
	require.False(t, g.Equal(c))
	require.Zero(t, g.At(geom.Pt[uint8](0, 0)), "clone must not share storage")
	require.Equal(t, 2, g.Count(1))
	require.Equal(t, 3, g.Occupied())
	require.False(t, g.Equal(New[uint8, uint8](4, 1)))
}

func TestMapAndTransform(t *testing.T) {
	g, err := FromValues[uint8, uint16](2, 2, []uint16{0, 300, 600, 900})
	require.NoError(t, err)

	labels := Map(&g.Plane, func(p geom.Point[uint8], v uint16) string {
		if v == 0 {
			return "."
		}
		return "#"
	})
	require.Equal(t, []string{".", "#", "#", "#"}, labels.Values())

	scaled := Transform(g, func(_ geom.Point[uint8], v uint16) uint8 { return uint8(v / 300) })
	require.Equal(t, []uint8{0, 1, 2, 3}, scaled.Values())
	require.True(t, scaled.Inc(geom.Pt[uint8](1, 1), 252))
	require.False(t, scaled.Inc(geom.Pt[uint8](1, 1), 1))
}

func TestAdjacency(t *testing.T) {
	// .#.
	// ##.
	// ...
	g, err := FromValues[uint8, uint8](3, 3, []uint8{0, 1, 0, 1, 1, 0, 0, 0, 0})
	require.NoError(t, err)

	a := g.Adjacency(geom.Pt[uint8](1, 1))
	require.Equal(t, Adjacency{North: true, West: true}, a)
	require.Equal(t, uint8(1|8), a.Mask())
	require.Equal(t, 2, a.Count())
	require.True(t, a.Has(geom.North))
	require.False(t, a.Has(geom.South))

	corner := g.Adjacency(geom.Pt[uint8](0, 0))
	require.Equal(t, Adjacency{East: true, South: true}, corner, "border neighbours count as empty")
	require.False(t, g.HasNorth(geom.Pt[uint8](1, 0)))

	require.Equal(t, []geom.Point[uint8]{{X: 1, Y: 0}, {X: 0, Y: 1}}, g.Neighbours(geom.Pt[uint8](0, 0)))
	require.Equal(t, 2, g.CountNeighbours(geom.Pt[uint8](1, 1)))
	require.Empty(t, g.Neighbours(geom.Pt[uint8](2, 2)))
}
