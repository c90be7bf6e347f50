package ui

import (
	"wireworld/internal/core"
	"wireworld/internal/wireworld"
)

// Pen paints cells of a single state onto an editable simulation. While a
// stroke is in progress consecutive points are joined by straight lines so
// fast mouse movement leaves no gaps.
type Pen struct {
	state wireworld.State

	drawing      bool
	lastX, lastY int
}

// NewPen returns a pen that draws wire.
func NewPen() *Pen { return &Pen{state: wireworld.Wire} }

// State returns the state the pen paints.
func (p *Pen) State() wireworld.State { return p.state }

// Select sets the painted state, ignoring invalid values.
func (p *Pen) Select(s wireworld.State) bool {
	if !s.Valid() {
		return false
	}
	p.state = s
	return true
}

var penCycle = map[wireworld.State]wireworld.State{
	wireworld.Wire:  wireworld.Head,
	wireworld.Head:  wireworld.Tail,
	wireworld.Tail:  wireworld.Empty,
	wireworld.Empty: wireworld.Wire,
}

// Cycle moves to the next state: wire, head, tail, empty.
func (p *Pen) Cycle() { p.state = penCycle[p.state] }

// CellAt maps a screen position to the cell under it for a grid drawn with
// the given scale. ok is false outside the grid.
func CellAt(mx, my, scale int, size core.Size) (x, y int, ok bool) {
	if scale <= 0 || mx < 0 || my < 0 {
		return 0, 0, false
	}
	x, y = mx/scale, my/scale
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

// Apply paints a single cell with the pen's state.
func (p *Pen) Apply(ed core.Editor, x, y int) error {
	return ed.SetCell(x, y, uint8(p.state))
}

// Drag continues the current stroke to (x, y) painting s, or starts a new
// stroke there. The first failing write stops the stroke and is returned.
func (p *Pen) Drag(ed core.Editor, x, y int, s wireworld.State) error {
	x0, y0 := x, y
	if p.drawing {
		x0, y0 = p.lastX, p.lastY
	}
	p.drawing = true
	p.lastX, p.lastY = x, y
	var err error
	line(x0, y0, x, y, func(px, py int) bool {
		err = ed.SetCell(px, py, uint8(s))
		return err == nil
	})
	if err != nil {
		p.drawing = false
	}
	return err
}

// End finishes the current stroke.
func (p *Pen) End() { p.drawing = false }

// line visits every cell on the Bresenham line from (x0, y0) to (x1, y1)
// until visit returns false.
func line(x0, y0, x1, y1 int, visit func(x, y int) bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if !visit(x0, y0) {
			return
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
