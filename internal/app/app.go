//go:build ebiten

package app

import (
	"fmt"

	"mapgen/internal/core"
	"mapgen/internal/render"
	"mapgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a layout to the ebiten.Game interface.
type Game struct {
	layout  core.Layout
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale       int
	hudWidth    int
	seed        uint64
	live        bool
	showOverlay bool
	timer       *core.FixedStep
}

// New constructs a Game for layout and generates the first map.
func New(layout core.Layout, cfg *Config) (*Game, error) {
	size := layout.Size()
	g := &Game{
		layout:      layout,
		painter:     render.NewGridPainter(size.W, size.H),
		hud:         ui.NewHUD(layout, cfg.HUDWidth),
		overlay:     ui.NewOverlay(layout, cfg.Scale),
		scale:       max(cfg.Scale, 1),
		hudWidth:    max(cfg.HUDWidth, 0),
		showOverlay: true,
		timer:       core.NewFixedInterval(cfg.Delay),
	}
	if err := g.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Seed returns the seed of the map on screen.
func (g *Game) Seed() uint64 { return g.seed }

// Reset regenerates the map for seed.
func (g *Game) Reset(seed uint64) error {
	if err := g.layout.Generate(seed); err != nil {
		return fmt.Errorf("generate %s seed %d: %w", g.layout.Name(), seed, err)
	}
	g.seed = seed
	return nil
}

// Update handles per-frame input and the live preview.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.live = !g.live
		g.timer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.showOverlay = !g.showOverlay
	}

	seed := g.seed
	regenerate := inpututil.IsKeyJustPressed(ebiten.KeyR)
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || (g.live && g.timer.ShouldStep()) {
		seed = randomSeed()
		regenerate = true
	}
	if g.hud.Update(g.mapWidth(), g.seed) {
		regenerate = true
	}
	if g.showOverlay {
		g.overlay.Update()
	}
	if regenerate {
		return g.Reset(seed)
	}
	return nil
}

// Draw renders the map, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.layout.Cells(), g.layout.Palette(), g.scale)
	if g.showOverlay {
		g.overlay.Draw(screen)
	}
	g.hud.Draw(screen, g.mapWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.layout.Size()
	return g.mapWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) mapWidth() int { return g.layout.Size().W * g.scale }

// Run opens the viewer window and blocks until it closes.
func Run(layout core.Layout, cfg *Config) error {
	game, err := New(layout, cfg)
	if err != nil {
		return err
	}
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("mapgen: " + layout.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	return ebiten.RunGame(game)
}
