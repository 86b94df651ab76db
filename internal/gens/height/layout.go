package height

import (
	"fmt"
	"image/color"

	"mapgen/internal/core"
	"mapgen/internal/render"
	"mapgen/pkg/geom"
	"mapgen/pkg/grid"
)

// levels is the number of palette entries the display buffer quantises to.
const levels = 256

// Map is the registered "height" layout: uint16 coordinates, uint16 cells.
type Map struct {
	cfg     Config
	seed    uint64
	grid    *grid.Grid[uint16, uint16]
	display *core.ByteGrid
	palette []color.RGBA
}

// New creates an empty height layout; call Generate to fill it.
func New(cfg Config) *Map {
	return &Map{
		cfg:     cfg,
		grid:    grid.New[uint16, uint16](0, 0),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		palette: buildPalette(cfg.Style),
	}
}

func (m *Map) Name() string                     { return "height" }
func (m *Map) Size() core.Size                  { return core.Size{W: m.cfg.Width, H: m.cfg.Height} }
func (m *Map) Seed() uint64                     { return m.seed }
func (m *Map) Cells() []uint8                   { return m.display.Cells() }
func (m *Map) Palette() []color.RGBA            { return m.palette }
func (m *Map) Grid() *grid.Grid[uint16, uint16] { return m.grid }
func (m *Map) Style() Style                     { return m.cfg.Style }

// Generate rebuilds the height map for seed.
func (m *Map) Generate(seed uint64) error {
	w, err := grid.Convert[uint16](int64(m.cfg.Width))
	if err != nil {
		return fmt.Errorf("height: width: %w", err)
	}
	h, err := grid.Convert[uint16](int64(m.cfg.Height))
	if err != nil {
		return fmt.Errorf("height: height: %w", err)
	}
	m.seed = seed
	m.grid = Generate[uint16, uint16](w, h, seed, m.cfg.Props)
	m.quantise()
	return nil
}

func (m *Map) quantise() {
	lo, err := m.grid.Min()
	if err != nil {
		return
	}
	hi, _ := m.grid.Max()
	cells := m.display.Cells()
	for p, v := range m.grid.All() {
		cells[m.display.Index(int(p.X), int(p.Y))] = uint8(Fraction(v, lo, hi) * (levels - 1))
	}
}

// Text renders the map as coloured blocks, or as a character shading ramp
// without colour.
func (m *Map) Text(colour bool) string {
	if colour {
		return render.Cells(Render(m.grid, m.cfg.Style), true)
	}
	lo, err := m.grid.Min()
	if err != nil {
		return ""
	}
	hi, _ := m.grid.Max()
	return render.Text(&m.grid.Plane, func(_ geom.Point[uint16], v uint16) string {
		return string(Shade(Fraction(v, lo, hi)))
	})
}

// Parameters reports the current configuration.
func (m *Map) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				core.IntParam("w", "Width", m.cfg.Width),
				core.IntParam("h", "Height", m.cfg.Height),
			},
		},
		{
			Name: "Elevation",
			Params: []core.Parameter{
				core.IntParam("iterations", "Iterations", m.cfg.Props.Iterations),
				core.FloatParam("noise", "Noise", m.cfg.Props.Noise),
				core.IntParam("style", "Style", int(m.cfg.Style)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (m *Map) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "iterations", Label: "Iterations", Type: core.ParamTypeInt, Step: 100, Min: 0, Max: 100000, HasMin: true, HasMax: true},
		{Key: "noise", Label: "Noise", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, Max: 50, HasMin: true, HasMax: true},
		{Key: "style", Label: "Style", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: float64(Terrain), HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter. Style changes repaint at
// once; iterations apply on the next Generate.
func (m *Map) SetIntParameter(key string, value int) bool {
	switch key {
	case "iterations":
		if value < 0 {
			return false
		}
		m.cfg.Props.Iterations = value
	case "style":
		if value < int(Simple) || value > int(Terrain) {
			return false
		}
		m.cfg.Style = Style(value)
		m.palette = buildPalette(m.cfg.Style)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point parameter.
func (m *Map) SetFloatParameter(key string, value float64) bool {
	if key != "noise" || value < 0 {
		return false
	}
	m.cfg.Props.Noise = value
	return true
}

// Stats measures the last generated map.
func (m *Map) Stats() []core.Stat {
	lo, err := m.grid.Min()
	if err != nil {
		return nil
	}
	hi, _ := m.grid.Max()
	var sum float64
	for _, v := range m.grid.All() {
		sum += float64(v)
	}
	return []core.Stat{
		{Key: "min", Value: float64(lo)},
		{Key: "max", Value: float64(hi)},
		{Key: "mean", Value: sum / float64(m.grid.Len())},
		{Key: "flat", Value: float64(m.grid.Count(lo)) / float64(m.grid.Len())},
	}
}

func buildPalette(style Style) []color.RGBA {
	palette := make([]color.RGBA, levels)
	for i := range palette {
		palette[i] = ColourAt(float64(i)/(levels-1), style)
	}
	return palette
}

func init() {
	core.Register("height", func(cfg map[string]string) core.Layout {
		return New(FromMap(cfg))
	})
}
