package pipe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"mapgen/pkg/geom"
	"mapgen/pkg/grid"
)

func TestGlyphTable(t *testing.T) {
	cases := []struct {
		n, e, s, w bool
		regular    rune
		backbone   rune
	}{
		{true, true, true, true, '┼', '╋'},
		{true, true, true, false, '├', '┣'},
		{false, true, true, true, '┬', '┳'},
		{true, false, true, true, '┤', '┫'},
		{true, true, false, true, '┴', '┻'},
		{true, true, false, false, '└', '┗'},
		{true, false, true, false, '│', '┃'},
		{true, false, false, true, '┘', '┛'},
		{false, true, true, false, '┌', '┏'},
		{false, true, false, true, '─', '━'},
		{false, false, true, true, '┐', '┓'},
		{true, false, false, false, '╵', '╹'},
		{false, true, false, false, '╶', '╺'},
		{false, false, true, false, '╷', '╻'},
		{false, false, false, true, '╴', '╸'},
		{false, false, false, false, '·', '•'},
	}
	require.Len(t, cases, 16)
	seen := map[rune]bool{}
	for _, tc := range cases {
		a := grid.Adjacency{North: tc.n, East: tc.e, South: tc.s, West: tc.w}
		t.Run(fmt.Sprintf("mask%02d", a.Mask()), func(t *testing.T) {
			require.Equal(t, string(tc.regular), string(Glyph(a, false)))
			require.Equal(t, string(tc.backbone), string(Glyph(a, true)))
		})
		seen[tc.regular] = true
		seen[tc.backbone] = true
	}
	require.Len(t, seen, 32, "every combination has its own glyph")
	require.False(t, seen[Unknown])
}

func TestRenderSmallNetwork(t *testing.T) {
	g, err := grid.FromValues[uint8, uint8](3, 3, []uint8{
		1, 2, 0,
		0, 3, 0,
		0, 4, 4,
	})
	require.NoError(t, err)
	require.Equal(t, "╺┓ \n │ \n └╴", Render(g))
	require.Equal(t, ' ', RenderCell(g, geom.Pt[uint8](0, 1)))
}

func TestRenderIsolatedCells(t *testing.T) {
	g, err := grid.FromValues[uint8, uint8](3, 1, []uint8{1, 0, 5})
	require.NoError(t, err)
	require.Equal(t, "• ·", Render(g))
}
