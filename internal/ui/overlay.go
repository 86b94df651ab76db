//go:build ebiten

package ui

import (
	"image/color"

	"mapgen/internal/core"
	"mapgen/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const overlayAlpha = 140

// Overlay tints the connected regions of layouts that expose them.
// 1 toggles the region tint, 2 the bounding boxes and 3 restricts both to
// the largest region.
type Overlay struct {
	layout core.Layout
	scale  int

	showRegions bool
	showBounds  bool
	largestOnly bool

	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for layout.
func NewOverlay(layout core.Layout, scale int) *Overlay {
	o := &Overlay{layout: layout, scale: max(scale, 1)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay's key toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRegions = !o.showRegions
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBounds = !o.showBounds
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.largestOnly = !o.largestOnly
	}
}

// Draw renders the enabled overlays onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.layout.(RegionProvider)
	if !ok || !(o.showRegions || o.showBounds) {
		return
	}
	size := o.layout.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	regions := provider.Regions()
	if o.showRegions {
		if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
			o.img = ebiten.NewImage(size.W, size.H)
			o.buf = make([]byte, 4*size.W*size.H)
		}
		FillRegions(o.buf, size.W, regions, overlayAlpha, o.largestOnly)
		o.img.WritePixels(o.buf)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(o.scale), float64(o.scale))
		screen.DrawImage(o.img, op)
	}
	if o.showBounds {
		o.drawBounds(screen, regions)
	}
}

func (o *Overlay) drawBounds(screen *ebiten.Image, regions []grid.Region[uint16]) {
	tints := RegionColours(len(regions))
	largest, _ := grid.Largest(regions)
	s := float64(o.scale)
	for i, r := range regions {
		if o.largestOnly && i != largest {
			continue
		}
		x := float64(r.Bounds.Left()) * s
		y := float64(r.Bounds.Top()) * s
		w := float64(r.Bounds.Width()) * s
		h := float64(r.Bounds.Height()) * s
		c := tints[i]
		o.rect(screen, x, y, w, 1, c)
		o.rect(screen, x, y+h-1, w, 1, c)
		o.rect(screen, x, y, 1, h, c)
		o.rect(screen, x+w-1, y, 1, h, c)
	}
}

func (o *Overlay) rect(screen *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
