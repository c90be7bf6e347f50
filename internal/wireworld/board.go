package wireworld

import (
	"strings"

	"github.com/pkg/errors"

	"wireworld/internal/core"
)

// Board is a fixed-size Wireworld grid. Cells outside the grid read as Empty.
// A Board is not safe for concurrent use.
type Board struct {
	cur *core.Grid[State]
	nxt *core.Grid[State]
	gen uint64
}

// NewBoard returns a width x height board with every cell Empty. Negative
// dimensions are treated as zero.
func NewBoard(width, height int) *Board {
	return &Board{
		cur: core.NewGrid[State](width, height),
		nxt: core.NewGrid[State](width, height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.cur.W }

// Height returns the number of rows.
func (b *Board) Height() int { return b.cur.H }

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.cur.W, H: b.cur.H} }

// Generation returns the number of generations advanced since creation or
// the last Clear.
func (b *Board) Generation() uint64 { return b.gen }

// Cells exposes the current generation in row-major order. The slice is
// only valid until the next call to Advance.
func (b *Board) Cells() []State { return b.cur.Cells() }

// Get returns the state at (x, y), or Empty when the coordinate is off the
// board.
func (b *Board) Get(x, y int) State {
	return b.cur.At(x, y)
}

// Set writes s at (x, y). Coordinates outside the board are rejected with an
// error matching ErrOutOfRange and nothing is written.
func (b *Board) Set(x, y int, s State) error {
	if !b.cur.In(x, y) {
		return outOfRange(x, y, b.cur.W, b.cur.H)
	}
	if !s.Valid() {
		return errors.Wrapf(ErrInvalidState, "set (%d,%d) to %d", x, y, uint8(s))
	}
	b.cur.Put(x, y, s)
	return nil
}

// HeadNeighborCount counts the Head cells among the eight Moore neighbours
// of (x, y). Neighbours outside the board count as Empty.
func (b *Board) HeadNeighborCount(x, y int) int {
	return headsAround(b.cur, x, y)
}

func headsAround(g *core.Grid[State], x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.At(x+dx, y+dy) == Head {
				n++
			}
		}
	}
	return n
}

// Advance moves the board forward one generation. Every next state is
// computed from the current generation into a second buffer, which then
// becomes current.
func (b *Board) Advance() {
	w, h := b.cur.W, b.cur.H
	src, dst := b.cur.Cells(), b.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := b.cur.Index(x, y)
			s := src[idx]
			if s != Wire {
				dst[idx] = Tick(s, 0)
				continue
			}
			dst[idx] = Tick(s, headsAround(b.cur, x, y))
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	b.gen++
}

// Clear sets every cell to Empty and resets the generation counter.
func (b *Board) Clear() {
	b.cur.Clear()
	b.nxt.Clear()
	b.gen = 0
}

// Clone returns an independent copy of the board including its generation.
func (b *Board) Clone() *Board {
	c := NewBoard(b.cur.W, b.cur.H)
	copy(c.cur.Cells(), b.cur.Cells())
	c.gen = b.gen
	return c
}

// Equal reports whether o has the same dimensions and cells as b. The
// generation counter is ignored.
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.cur.W != o.cur.W || b.cur.H != o.cur.H {
		return false
	}
	a, c := b.cur.Cells(), o.cur.Cells()
	for i := range a {
		if a[i] != c[i] {
			return false
		}
	}
	return true
}

// Census counts the cells in each state.
type Census [numStates]int

// Count returns the number of cells in state s.
func (c Census) Count(s State) int {
	if !s.Valid() {
		return 0
	}
	return c[s]
}

// Conductive returns the number of non-Empty cells.
func (c Census) Conductive() int { return c[Head] + c[Tail] + c[Wire] }

// Census tallies the current generation.
func (b *Board) Census() Census {
	var c Census
	for _, s := range b.cur.Cells() {
		if s.Valid() {
			c[s]++
		}
	}
	return c
}

// String renders the board using the pattern text form, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cur.W + 1) * b.cur.H)
	for y := 0; y < b.cur.H; y++ {
		for x := 0; x < b.cur.W; x++ {
			sb.WriteByte(stateSymbol(b.Get(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
