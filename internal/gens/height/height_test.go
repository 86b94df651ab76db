package height

import (
	"image/color"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapgen/internal/core"
	"mapgen/pkg/geom"
	"mapgen/pkg/grid"
)

func TestMaxBoundedByIterations(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		g := Generate[uint16, uint16](40, 20, seed, Properties{Iterations: 200})
		hi, err := g.Max()
		require.NoError(t, err)
		require.LessOrEqual(t, hi, uint16(200))
		require.Positive(t, hi)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	props := Properties{Iterations: 300, Noise: 2}
	a := Generate[uint16, uint16](50, 20, 7, props)
	b := Generate[uint16, uint16](50, 20, 7, props)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(Generate[uint16, uint16](50, 20, 8, props)))
}

func TestNoisePerturbs(t *testing.T) {
	plain := Generate[uint16, int32](50, 20, 3, Properties{Iterations: 300})
	noisy := Generate[uint16, int32](50, 20, 3, Properties{Iterations: 300, Noise: 4})
	require.False(t, plain.Equal(noisy))
	require.Equal(t, plain.Len(), noisy.Len())
}

func TestSaturatingCells(t *testing.T) {
	g := Generate[uint8, uint8](5, 5, 1, Properties{Iterations: 20000})
	for _, v := range g.All() {
		require.LessOrEqual(t, v, uint8(255))
	}
	hi, err := g.Max()
	require.NoError(t, err)
	require.Equal(t, uint8(255), hi, "a 5x5 map only ever raises single cells, so 20000 iterations saturate")
}

func TestRaiseSkipsCorners(t *testing.T) {
	g := grid.New[uint8, uint8](8, 8)
	raise(g, geom.RectangleFromDims[uint8](1, 1, 5, 4))
	require.Equal(t, 20-4, g.Occupied())
	for _, p := range []geom.Point[uint8]{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 1, Y: 4}, {X: 5, Y: 4}} {
		require.Zero(t, g.At(p), "corner %v", p)
	}
	require.Equal(t, uint8(1), g.At(geom.Pt[uint8](2, 1)))

	thin := grid.New[uint8, uint8](8, 8)
	raise(thin, geom.RectangleFromDims[uint8](0, 0, 2, 5))
	require.Equal(t, 10, thin.Occupied(), "rectangles under 3 wide keep their corners")

	short := grid.New[uint8, uint8](8, 8)
	raise(short, geom.RectangleFromDims[uint8](0, 0, 6, 2))
	require.Equal(t, 12, short.Occupied(), "rectangles under 3 tall keep their corners")
}

func TestEmptyMap(t *testing.T) {
	g := Generate[uint16, uint16](0, 10, 1, Properties{Iterations: 10, Noise: 1})
	require.Zero(t, g.Len())
	require.Zero(t, Render(g, Terrain).Len())
}

func TestFractionFlatField(t *testing.T) {
	require.Zero(t, Fraction[uint16](5, 5, 5))
	require.InDelta(t, 0.5, Fraction[int8](0, -10, 10), 1e-9)
	require.Equal(t, ColourAt(0, HeatMap), Colour[uint16](9, 9, 9, HeatMap))

	flat := grid.New[uint8, uint16](3, 2)
	cells := Render(flat, Simple)
	for _, c := range cells.All() {
		require.NotNil(t, c.Bg)
		require.Equal(t, color.RGBA{A: 255}, *c.Bg)
	}
}

func TestColourRamps(t *testing.T) {
	require.Equal(t, color.RGBA{A: 255}, ColourAt(0, Simple))
	require.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, ColourAt(1, Simple))
	require.Equal(t, color.RGBA{B: 255, A: 255}, ColourAt(0, HeatMap), "low is blue")
	require.Equal(t, color.RGBA{R: 255, A: 255}, ColourAt(1, HeatMap), "high is red")

	low := ColourAt(0, Terrain)
	high := ColourAt(1, Terrain)
	assertNear(t, terrainStops[0].c, low)
	assertNear(t, terrainStops[len(terrainStops)-1].c, high)
}

func assertNear(t *testing.T, want, got color.RGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 2)
	assert.InDelta(t, want.G, got.G, 2)
	assert.InDelta(t, want.B, got.B, 2)
	assert.Equal(t, uint8(255), got.A)
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle(" HeatMap ")
	require.NoError(t, err)
	require.Equal(t, HeatMap, s)
	require.Equal(t, "terrain", Terrain.String())
	require.Equal(t, "Style(7)", Style(7).String())

	_, err = ParseStyle("sepia")
	require.ErrorIs(t, err, ErrUnknownStyle)
}

func TestShade(t *testing.T) {
	require.Equal(t, ' ', Shade(0))
	require.Equal(t, '@', Shade(1))
	require.Equal(t, '@', Shade(3))
	require.Equal(t, ' ', Shade(-1))
}

func TestLayoutGenerate(t *testing.T) {
	f, ok := core.Layouts()["height"]
	require.True(t, ok)
	l := f(map[string]string{"w": "24", "h": "9", "iterations": "150", "style": "terrain"})
	require.Equal(t, "height", l.Name())
	require.NoError(t, l.Generate(5))

	cells := l.Cells()
	require.Len(t, cells, 24*9)
	require.Contains(t, cells, uint8(0))
	require.Contains(t, cells, uint8(levels-1))
	require.Len(t, l.Palette(), levels)

	text := l.Text(false)
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 9)
	for _, line := range lines {
		require.Equal(t, 24, utf8.RuneCountInString(line))
	}
	require.Contains(t, l.Text(true), "\x1b[48;2;")
}

func TestLayoutParameters(t *testing.T) {
	m := New(DefaultConfig())
	before := m.Palette()[levels-1]
	require.True(t, m.SetIntParameter("style", int(Simple)))
	require.NotEqual(t, before, m.Palette()[levels-1])
	require.Equal(t, Simple, m.Style())
	require.False(t, m.SetIntParameter("style", 9))
	require.True(t, m.SetIntParameter("iterations", 10))
	require.False(t, m.SetIntParameter("iterations", -1))
	require.True(t, m.SetFloatParameter("noise", 1.5))
	require.False(t, m.SetFloatParameter("noise", -1))
	require.False(t, m.SetFloatParameter("iterations", 1))

	snap := m.Parameters()
	p, ok := snap.Lookup("noise")
	require.True(t, ok)
	require.Equal(t, "1.5", p.Value)
	for _, ctrl := range m.ParameterControls() {
		_, ok := snap.Lookup(ctrl.Key)
		require.True(t, ok, ctrl.Key)
	}

	require.True(t, m.SetFloatParameter("noise", 0))
	require.NoError(t, m.Generate(2))
	stats := map[string]float64{}
	for _, s := range m.Stats() {
		stats[s.Key] = s.Value
	}
	require.LessOrEqual(t, stats["min"], stats["mean"])
	require.LessOrEqual(t, stats["mean"], stats["max"])
	require.LessOrEqual(t, stats["max"], 10.0)
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"iterations": "-5", "noise": "abc", "style": "simple", "w": "12"})
	require.Equal(t, DefaultConfig().Props, c.Props)
	require.Equal(t, Simple, c.Style)
	require.Equal(t, 12, c.Width)
}
