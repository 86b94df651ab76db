package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Indices
// past the end of the palette use its last colour.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image paints palette-indexed cells into a w x h RGBA image.
func Image(cells []uint8, w, h int, palette []color.RGBA) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return nil, fmt.Errorf("render: %d cells for a %dx%d image", len(cells), w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	FillPaletteRGBA(img.Pix, cells, palette)
	return img, nil
}

// WritePNG encodes img as PNG, enlarging each pixel to a scale x scale block.
func WritePNG(w io.Writer, img image.Image, scale int) error {
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
