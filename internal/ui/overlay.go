//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wireworld/internal/core"
)

var gridColor = color.RGBA{R: 40, G: 40, B: 48, A: 160}

// Overlay draws editing aids on top of the board: an outline around the
// cell under the cursor in the pen's colour and optional grid lines.
type Overlay struct {
	sim      core.Sim
	scale    int
	pen      *Pen
	showGrid bool

	cursorX, cursorY int
	hasCursor        bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int, pen *Pen) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, pen: pen}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the hovered cell and toggles grid lines with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	mx, my := ebiten.CursorPosition()
	o.cursorX, o.cursorY, o.hasCursor = CellAt(mx, my, o.scale, o.sim.Size())
}

// Cursor returns the hovered cell.
func (o *Overlay) Cursor() (x, y int, ok bool) { return o.cursorX, o.cursorY, o.hasCursor }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	s := float64(o.scale)
	if o.showGrid && o.scale >= 4 {
		for x := 1; x < size.W; x++ {
			o.fillRect(screen, float64(x)*s, 0, 1, float64(size.H)*s, gridColor)
		}
		for y := 1; y < size.H; y++ {
			o.fillRect(screen, 0, float64(y)*s, float64(size.W)*s, 1, gridColor)
		}
	}
	if !o.hasCursor || o.pen == nil {
		return
	}
	col := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if p, ok := o.sim.(core.PaletteProvider); ok {
		if palette := p.Palette(); int(o.pen.State()) < len(palette) {
			col = palette[o.pen.State()]
		}
	}
	x, y := float64(o.cursorX)*s, float64(o.cursorY)*s
	o.fillRect(screen, x, y, s, 1, col)
	o.fillRect(screen, x, y+s-1, s, 1, col)
	o.fillRect(screen, x, y, 1, s, col)
	o.fillRect(screen, x+s-1, y, 1, s, col)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
