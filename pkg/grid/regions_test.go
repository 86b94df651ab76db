package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mapgen/pkg/geom"
)

func TestRegions(t *testing.T) {
	// ##..#
	// .#..#
	// ...##
	// #....
	g, err := FromValues[uint8, uint8](5, 4, []uint8{
		1, 1, 0, 0, 1,
		0, 1, 0, 0, 1,
		0, 0, 0, 1, 1,
		1, 0, 0, 0, 0,
	})
	require.NoError(t, err)

	regions := g.Regions()
	require.Len(t, regions, 3)
	require.Equal(t, 3, regions[0].Size())
	require.Equal(t, geom.Pt[uint8](0, 0), regions[0].Cells[0])
	require.Equal(t, 4, regions[1].Size())
	require.Equal(t, geom.NewRectangle(geom.Pt[uint8](3, 0), geom.Pt[uint8](4, 2)), regions[1].Bounds)
	require.Equal(t, 1, regions[2].Size())
	require.False(t, g.Connected())

	largest, ok := g.LargestRegion()
	require.True(t, ok)
	require.Equal(t, 4, largest.Size())
}

func TestRegionFromEmptyCell(t *testing.T) {
	g := New[uint8, uint8](3, 3)
	require.Zero(t, g.Region(geom.Pt[uint8](1, 1)).Size())
	require.Zero(t, g.Region(geom.Pt[uint8](7, 7)).Size())
	require.True(t, g.Connected())
	_, ok := g.LargestRegion()
	require.False(t, ok)
}

func TestLargestKeepsFirstOnTies(t *testing.T) {
	g, err := FromValues[uint8, uint8](5, 1, []uint8{1, 1, 0, 1, 1})
	require.NoError(t, err)
	regions := g.Regions()
	require.Len(t, regions, 2)
	i, ok := Largest(regions)
	require.True(t, ok)
	require.Zero(t, i)

	_, ok = Largest[uint8](nil)
	require.False(t, ok)
}

func TestRegionIgnoresDiagonals(t *testing.T) {
	g, err := FromValues[uint8, uint8](2, 2, []uint8{1, 0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 1, g.Region(geom.Pt[uint8](0, 0)).Size())
	require.Len(t, g.Regions(), 2)
}
