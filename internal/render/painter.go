//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell data into a single image at screen resolution.
type GridPainter struct {
	w, h  int
	scale int
	gap   int
	img   *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for a grid of size w*h drawn with
// scale x scale pixel blocks separated by gap background pixels.
func NewGridPainter(w, h, scale, gap int) *GridPainter {
	if scale <= 0 {
		scale = 1
	}
	gp := &GridPainter{w: w, h: h, scale: scale, gap: gap}
	gp.buf = make([]byte, 4*w*h*scale*scale)
	gp.img = ebiten.NewImage(max(1, w*scale), max(1, h*scale))
	return gp
}

// Blit renders the provided cells with palette and draws them onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, background color.RGBA) {
	if len(cells) != gp.w*gp.h || len(cells) == 0 {
		return
	}
	if gp.scale == 1 {
		fillPaletteRGBA(gp.buf, cells, palette)
	} else {
		fillScaledRGBA(gp.buf, cells, gp.w, gp.scale, gp.gap, palette, background)
	}
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
