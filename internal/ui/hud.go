//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"mapgen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBg       = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textBright    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	textDim       = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBg      = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff     = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonText    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonTextOff = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the parameter and statistics panel to the right of the map.
type HUD struct {
	layout core.Layout
	width  int
	panel  *ebiten.Image
	pixel  *ebiten.Image
	title  string

	controls []Control
	buttons  []controlButtons
	stats    []string
	seed     uint64
	offsetX  int
}

type controlButtons struct {
	top         int
	minus, plus image.Rectangle
}

// NewHUD constructs a HUD for layout with a panel of the given width.
func NewHUD(layout core.Layout, width int) *HUD {
	h := &HUD{layout: layout, width: max(width, 0), controls: NewControls(layout)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = "Controls"
	if name := layout.Name(); name != "" {
		h.title = fmt.Sprintf("%s%s controls", strings.ToUpper(name[:1]), name[1:])
	}
	h.buttons = make([]controlButtons, len(h.controls))
	for i := range h.buttons {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		h.buttons[i] = controlButtons{top: top, minus: minus, plus: plus}
	}
	return h
}

// Update refreshes the panel from the layout and applies clicks. It reports
// whether a parameter changed, in which case the map should be regenerated.
func (h *HUD) Update(panelOffsetX int, seed uint64) bool {
	if h == nil {
		return false
	}
	h.offsetX = panelOffsetX
	h.seed = seed
	if provider, ok := h.layout.(core.ParametersProvider); ok {
		snap := provider.Parameters()
		for i := range h.controls {
			h.controls[i].Refresh(snap)
		}
	}
	h.stats = StatLines(h.layout)
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return false
	}
	pt := image.Pt(px, my)
	for i := range h.controls {
		switch {
		case pt.In(h.buttons[i].minus):
			return h.controls[i].Adjust(h.layout, -1)
		case pt.In(h.buttons[i].plus):
			return h.controls[i].Adjust(h.layout, 1)
		}
	}
	return false
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.layout.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBg)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, textBright)
	text.Draw(h.panel, fmt.Sprintf("seed %d", h.seed), face, panelPadding, y+statSpacing, textDim)

	for i := range h.controls {
		c := &h.controls[i]
		b := h.buttons[i]
		baseline := b.top + labelBaseline
		text.Draw(h.panel, c.Label, face, panelPadding, baseline, textBright)
		valueColor := textBright
		if !c.Valid {
			valueColor = textDim
		}
		w := text.BoundString(face, c.Text).Dx()
		text.Draw(h.panel, c.Text, face, b.minus.Min.X-buttonGap-w, baseline, valueColor)
		h.drawButton(b.minus, "-", c.CanAdjust(h.layout, -1))
		h.drawButton(b.plus, "+", c.CanAdjust(h.layout, 1))
	}

	y = controlsTop + len(h.controls)*lineHeight + statSpacing
	for _, line := range h.stats {
		text.Draw(h.panel, line, face, panelPadding, y, textDim)
		y += statSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBg, buttonText
	if !enabled {
		bg, fg = buttonOff, buttonTextOff
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statSpacing    = 16
	controlsTop    = panelPadding + headerBaseline + statSpacing + 14
)
