package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Values
// beyond the palette use its last entry. When the palette is empty the buffer
// is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		putRGBA(buf, i*4, palette[idx])
	}
}

// fillScaledRGBA draws each cell as a scale x scale block into buf, which
// holds (w*scale) x (h*scale) pixels. The last gap rows and columns of every
// block are painted with the background colour to separate cells.
func fillScaledRGBA(buf []byte, cells []uint8, w, scale, gap int, palette []color.RGBA, background color.RGBA) {
	if w <= 0 || scale <= 0 || len(palette) == 0 {
		return
	}
	if gap < 0 || gap >= scale {
		gap = 0
	}
	h := len(cells) / w
	stride := w * scale * 4
	last := len(palette) - 1
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			idx := int(cells[cx+cy*w])
			if idx > last {
				idx = last
			}
			col := palette[idx]
			for py := 0; py < scale; py++ {
				row := (cy*scale+py)*stride + cx*scale*4
				for px := 0; px < scale; px++ {
					if px >= scale-gap || py >= scale-gap {
						putRGBA(buf, row+px*4, background)
						continue
					}
					putRGBA(buf, row+px*4, col)
				}
			}
		}
	}
}

func putRGBA(buf []byte, base int, col color.RGBA) {
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
