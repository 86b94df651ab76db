package room

import (
	"fmt"
	"image/color"

	"mapgen/internal/core"
	"mapgen/internal/render"
	"mapgen/pkg/geom"
	"mapgen/pkg/grid"
)

// Palette indices of the display buffer.
const (
	paletteRock     = 0
	paletteRoom     = 1
	paletteCorridor = 2
)

var palette = []color.RGBA{
	paletteRock:     {R: 18, G: 16, B: 20, A: 255},
	paletteRoom:     {R: 196, G: 176, B: 140, A: 255},
	paletteCorridor: {R: 128, G: 112, B: 96, A: 255},
}

// Layout is the registered "room" layout: uint16 coordinates, uint8 cells.
type Layout struct {
	cfg     Config
	seed    uint64
	dungeon Dungeon[uint16, uint8]
	display *core.ByteGrid
}

// New creates an empty room layout; call Generate to fill it.
func New(cfg Config) *Layout {
	return &Layout{
		cfg:     cfg,
		dungeon: Dungeon[uint16, uint8]{Grid: grid.New[uint16, uint8](0, 0)},
		display: core.NewByteGrid(cfg.Width, cfg.Height),
	}
}

func (l *Layout) Name() string                    { return "room" }
func (l *Layout) Size() core.Size                 { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }
func (l *Layout) Seed() uint64                    { return l.seed }
func (l *Layout) Cells() []uint8                  { return l.display.Cells() }
func (l *Layout) Palette() []color.RGBA           { return palette }
func (l *Layout) Grid() *grid.Grid[uint16, uint8] { return l.dungeon.Grid }
func (l *Layout) Rooms() []geom.Rectangle[uint16] { return l.dungeon.Rooms }
func (l *Layout) Regions() []grid.Region[uint16]  { return l.dungeon.Grid.Regions() }

// Generate rebuilds the dungeon for seed.
func (l *Layout) Generate(seed uint64) error {
	w, err := grid.Convert[uint16](int64(l.cfg.Width))
	if err != nil {
		return fmt.Errorf("room: width: %w", err)
	}
	h, err := grid.Convert[uint16](int64(l.cfg.Height))
	if err != nil {
		return fmt.Errorf("room: height: %w", err)
	}
	l.seed = seed
	l.dungeon = Build[uint16, uint8](w, h, seed, l.cfg.Props)
	l.display.Clear()
	for p, v := range l.dungeon.Grid.All() {
		if v != 0 {
			l.display.Set(int(p.X), int(p.Y), l.paletteIndex(p))
		}
	}
	return nil
}

func (l *Layout) paletteIndex(p geom.Point[uint16]) uint8 {
	for _, r := range l.dungeon.Rooms {
		if r.Contains(p) {
			return paletteRoom
		}
	}
	return paletteCorridor
}

// Text draws the dungeon with block characters; colour separates rooms from
// corridors.
func (l *Layout) Text(colour bool) string {
	if !colour {
		return Render(l.dungeon.Grid)
	}
	cells := grid.Map(&l.dungeon.Grid.Plane, func(p geom.Point[uint16], v uint8) render.Cell {
		if v == 0 {
			return render.Cell{}
		}
		fg := palette[l.display.At(int(p.X), int(p.Y))]
		return render.Cell{Text: floor, Fg: &fg}
	})
	return render.Cells(cells, true)
}

// Parameters reports the current configuration.
func (l *Layout) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.cfg.Width),
				core.IntParam("h", "Height", l.cfg.Height),
			},
		},
		{
			Name:   "Rooms",
			Params: []core.Parameter{core.IntParam("rooms", "Rooms", l.cfg.Props.Rooms)},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (l *Layout) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rooms", Label: "Rooms", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 200, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter; it takes effect on the next
// Generate.
func (l *Layout) SetIntParameter(key string, value int) bool {
	if key != "rooms" || value < 0 {
		return false
	}
	l.cfg.Props.Rooms = value
	return true
}

// Stats measures the last generated dungeon.
func (l *Layout) Stats() []core.Stat {
	g := l.dungeon.Grid
	var walks int
	for _, link := range l.dungeon.Links {
		if link.Kind == Walk {
			walks++
		}
	}
	return []core.Stat{
		{Key: "rooms", Value: float64(len(l.dungeon.Rooms))},
		{Key: "fill", Value: float64(g.Occupied()) / float64(max(g.Len(), 1))},
		{Key: "straight_corridors", Value: float64(len(l.dungeon.Links) - walks)},
		{Key: "walked_corridors", Value: float64(walks)},
		{Key: "regions", Value: float64(len(g.Regions()))},
	}
}

func init() {
	core.Register("room", func(cfg map[string]string) core.Layout {
		return New(FromMap(cfg))
	})
}
