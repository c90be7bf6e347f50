package wireworld

import "image/color"

var palette = []color.RGBA{
	Empty: {R: 0, G: 0, B: 0, A: 255},
	Head:  {R: 0, G: 255, B: 255, A: 255},
	Tail:  {R: 255, G: 0, B: 0, A: 255},
	Wire:  {R: 255, G: 255, B: 0, A: 255},
}

// Palette maps each State value to its display colour.
func (w *World) Palette() []color.RGBA { return Palette() }

// Palette returns a copy of the colours used for each State.
func Palette() []color.RGBA {
	return append([]color.RGBA(nil), palette...)
}
