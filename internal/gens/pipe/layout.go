package pipe

import (
	"fmt"
	"image/color"

	"mapgen/internal/core"
	"mapgen/internal/render"
	"mapgen/pkg/geom"
	"mapgen/pkg/grid"
)

// Palette indices of the display buffer. Tier cells keep their own value as
// the index.
const (
	paletteEmpty        = 0
	paletteBackbone     = 1
	paletteInterconnect = 2
)

// Network is the registered "pipe" layout: uint16 coordinates, uint8 cells.
type Network struct {
	cfg     Config
	seed    uint64
	grid    *grid.Grid[uint16, uint8]
	display *core.ByteGrid
	palette []color.RGBA
}

// New creates an empty network layout; call Generate to fill it.
func New(cfg Config) *Network {
	return &Network{
		cfg:     cfg,
		grid:    grid.New[uint16, uint8](0, 0),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		palette: buildPalette(len(cfg.Props.RegularSeeds)),
	}
}

// Name returns the layout identifier.
func (n *Network) Name() string { return "pipe" }

// Size returns the map dimensions.
func (n *Network) Size() core.Size { return core.Size{W: n.cfg.Width, H: n.cfg.Height} }

// Seed returns the seed of the last generation.
func (n *Network) Seed() uint64 { return n.seed }

// Cells exposes the display buffer.
func (n *Network) Cells() []uint8 { return n.display.Cells() }

// Palette returns the display colours.
func (n *Network) Palette() []color.RGBA { return n.palette }

// Grid returns the generated network.
func (n *Network) Grid() *grid.Grid[uint16, uint8] { return n.grid }

// Generate rebuilds the network for seed.
func (n *Network) Generate(seed uint64) error {
	w, err := grid.Convert[uint16](int64(n.cfg.Width))
	if err != nil {
		return fmt.Errorf("pipe: width: %w", err)
	}
	h, err := grid.Convert[uint16](int64(n.cfg.Height))
	if err != nil {
		return fmt.Errorf("pipe: height: %w", err)
	}
	g, err := Generate[uint16, uint8](w, h, seed, n.cfg.Props)
	if err != nil {
		return err
	}
	n.seed = seed
	n.grid = g
	cells := n.display.Cells()
	for p, v := range g.All() {
		cells[n.display.Index(int(p.X), int(p.Y))] = paletteIndex(v)
	}
	return nil
}

// Text renders the network as box-drawing characters, coloured by tier when
// colour is set.
func (n *Network) Text(colour bool) string {
	if !colour {
		return Render(n.grid)
	}
	cells := grid.Map(&n.grid.Plane, func(p geom.Point[uint16], v uint8) render.Cell {
		if v == Empty {
			return render.Cell{}
		}
		fg := n.palette[min(int(paletteIndex(v)), len(n.palette)-1)]
		return render.Cell{Text: RenderCell(n.grid, p), Fg: &fg}
	})
	return render.Cells(cells, true)
}

// Regions returns the connected pieces of the network.
func (n *Network) Regions() []grid.Region[uint16] { return n.grid.Regions() }

// Parameters reports the current configuration.
func (n *Network) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				core.IntParam("w", "Width", n.cfg.Width),
				core.IntParam("h", "Height", n.cfg.Height),
			},
		},
		{
			Name: "Network",
			Params: []core.Parameter{
				core.IntParam("backbone", "Backbone seeds", n.cfg.Props.BackboneSeeds),
				core.StringParam("regular", "Regular seeds", FormatTiers(n.cfg.Props.RegularSeeds)),
				core.BoolParam("interconnect", "Interconnect", n.cfg.Props.Interconnect),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (n *Network) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "backbone", Label: "Backbone seeds", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 500, HasMin: true, HasMax: true},
		{Key: "interconnect", Label: "Interconnect", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter; it takes effect on the next
// Generate.
func (n *Network) SetIntParameter(key string, value int) bool {
	switch key {
	case "backbone":
		if value < 0 {
			return false
		}
		n.cfg.Props.BackboneSeeds = value
	case "interconnect":
		n.cfg.Props.Interconnect = value != 0
	default:
		return false
	}
	return true
}

// Stats measures the last generated network.
func (n *Network) Stats() []core.Stat {
	total := float64(max(n.grid.Len(), 1))
	var backbone, interconnects int
	for _, v := range n.grid.All() {
		switch {
		case IsBackbone(v):
			backbone++
		case v == Interconnect:
			interconnects++
		}
	}
	return []core.Stat{
		{Key: "fill", Value: float64(n.grid.Occupied()) / total},
		{Key: "backbone_cells", Value: float64(backbone)},
		{Key: "interconnect_cells", Value: float64(interconnects)},
		{Key: "dead_ends", Value: float64(len(DeadEnds(n.grid)))},
		{Key: "regions", Value: float64(len(n.grid.Regions()))},
	}
}

func paletteIndex(v uint8) uint8 {
	switch {
	case v == Empty:
		return paletteEmpty
	case IsBackbone(v):
		return paletteBackbone
	case v == Interconnect:
		return paletteInterconnect
	}
	return v
}

// buildPalette covers the three fixed entries plus every tier seed and path
// value.
func buildPalette(tiers int) []color.RGBA {
	palette := []color.RGBA{
		paletteEmpty:        {R: 14, G: 16, B: 22, A: 255},
		paletteBackbone:     {R: 236, G: 232, B: 220, A: 255},
		paletteInterconnect: {R: 232, G: 72, B: 64, A: 255},
	}
	return append(palette, render.HueRamp(tiers+1, 200, 40, 0.65, 0.9)...)
}

func init() {
	core.Register("pipe", func(cfg map[string]string) core.Layout {
		return New(FromMap(cfg))
	})
}
