package wireworld

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/pkg/errors"

	"wireworld/internal/core"
)

func rowOf(b *Board, y int) []State {
	row := make([]State, b.Width())
	for x := range row {
		row[x] = b.Get(x, y)
	}
	return row
}

func TestNewBoardIsEmpty(t *testing.T) {
	c := qt.New(t)
	b := NewBoard(5, 3)
	c.Assert(b.Width(), qt.Equals, 5)
	c.Assert(b.Height(), qt.Equals, 3)
	c.Assert(b.Size(), qt.Equals, core.Size{W: 5, H: 3})
	c.Assert(b.Cells(), qt.HasLen, 15)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			c.Assert(b.Get(x, y), qt.Equals, Empty)
		}
	}
	c.Assert(b.Census().Count(Empty), qt.Equals, 15)
}

func TestNewBoardNegativeDimensions(t *testing.T) {
	c := qt.New(t)
	b := NewBoard(-3, 4)
	c.Assert(b.Width(), qt.Equals, 0)
	c.Assert(b.Height(), qt.Equals, 4)
	c.Assert(b.Cells(), qt.HasLen, 0)
}

var boundaryTests = []struct {
	about string
	w, h  int
}{
	{"zero", 0, 0},
	{"single", 1, 1},
	{"row", 3, 1},
	{"column", 1, 4},
	{"square", 6, 6},
}

func TestGetOffBoardIsEmpty(t *testing.T) {
	c := qt.New(t)
	for _, test := range boundaryTests {
		c.Run(test.about, func(c *qt.C) {
			b := NewBoard(test.w, test.h)
			for y := 0; y < test.h; y++ {
				for x := 0; x < test.w; x++ {
					c.Assert(b.Set(x, y, Wire), qt.IsNil)
				}
			}
			for _, p := range [][2]int{
				{-1, 0}, {0, -1}, {-1, -1},
				{test.w, 0}, {0, test.h}, {test.w, test.h},
				{test.w + 10, -10}, {-1 << 30, 1 << 30},
			} {
				c.Assert(b.Get(p[0], p[1]), qt.Equals, Empty, qt.Commentf("(%d,%d)", p[0], p[1]))
			}
		})
	}
}

func TestSetAndGet(t *testing.T) {
	c := qt.New(t)
	b := NewBoard(4, 4)
	c.Assert(b.Set(0, 0, Wire), qt.IsNil)
	c.Assert(b.Set(3, 3, Head), qt.IsNil)
	c.Assert(b.Set(2, 1, Tail), qt.IsNil)
	c.Assert(b.Get(0, 0), qt.Equals, Wire)
	c.Assert(b.Get(3, 3), qt.Equals, Head)
	c.Assert(b.Get(2, 1), qt.Equals, Tail)
	c.Assert(b.Cells()[2+1*4], qt.Equals, Tail)
	c.Assert(b.Set(0, 0, Empty), qt.IsNil)
	c.Assert(b.Get(0, 0), qt.Equals, Empty)
}

func TestSetOutOfRange(t *testing.T) {
	c := qt.New(t)
	b := NewBoard(4, 3)
	before := b.Clone()
	for _, p := range [][2]int{
		{4, 0}, {0, 3}, {4, 3}, {-1, 0}, {0, -1}, {100, 100},
	} {
		err := b.Set(p[0], p[1], Wire)
		c.Assert(err, qt.ErrorIs, ErrOutOfRange, qt.Commentf("(%d,%d)", p[0], p[1]))
		c.Assert(IsOutOfRange(err), qt.IsTrue)

		var oor *OutOfRangeError
		c.Assert(errors.As(err, &oor), qt.IsTrue)
		c.Assert(*oor, qt.Equals, OutOfRangeError{X: p[0], Y: p[1], Width: 4, Height: 3})
	}
	c.Assert(b.Equal(before), qt.IsTrue)
}

func TestSetOutOfRangeZeroBoard(t *testing.T) {
	err := NewBoard(0, 0).Set(0, 0, Wire)
	qt.Assert(t, err, qt.ErrorMatches, `coordinate \(0,0\) out of range for 0x0 board`)
}

func TestSetInvalidState(t *testing.T) {
	c := qt.New(t)
	b := NewBoard(2, 2)
	err := b.Set(1, 1, State(9))
	c.Assert(err, qt.ErrorIs, ErrInvalidState)
	c.Assert(IsOutOfRange(err), qt.IsFalse)
	c.Assert(b.Get(1, 1), qt.Equals, Empty)
}

func TestHeadNeighborCount(t *testing.T) {
	c := qt.New(t)
	b := BoardFromPattern(MustParsePattern(`
HHH
H#H
HHH
`))
	c.Assert(b.HeadNeighborCount(1, 1), qt.Equals, 8)
	c.Assert(b.HeadNeighborCount(0, 0), qt.Equals, 2)
	c.Assert(b.HeadNeighborCount(1, 0), qt.Equals, 4)
	// Off-board coordinates still see the heads next to them.
	c.Assert(b.HeadNeighborCount(-1, -1), qt.Equals, 1)
	c.Assert(b.HeadNeighborCount(-1, 1), qt.Equals, 3)
	c.Assert(b.HeadNeighborCount(5, 5), qt.Equals, 0)
}

func TestHeadNeighborCountIgnoresSelfAndOtherStates(t *testing.T) {
	c := qt.New(t)
	b := BoardFromPattern(MustParsePattern(`
t#t
#H#
t#t
`))
	c.Assert(b.HeadNeighborCount(1, 1), qt.Equals, 0)
	c.Assert(b.HeadNeighborCount(0, 0), qt.Equals, 1)
}

func TestAdvanceEmptyFixedPoint(t *testing.T) {
	c := qt.New(t)
	for _, test := range boundaryTests {
		b := NewBoard(test.w, test.h)
		before := b.Clone()
		b.Advance()
		b.Advance()
		c.Assert(b.Equal(before), qt.IsTrue, qt.Commentf("%s", test.about))
		c.Assert(b.Generation(), qt.Equals, uint64(2))
	}
}

func TestAdvanceScenarios(t *testing.T) {
	c := qt.New(t)
	b := NewBoard(3, 1)
	c.Assert(b.Set(0, 0, Wire), qt.IsNil)
	c.Assert(b.Set(1, 0, Head), qt.IsNil)
	c.Assert(b.Set(2, 0, Wire), qt.IsNil)

	b.Advance()
	c.Assert(rowOf(b, 0), qt.DeepEquals, []State{Head, Tail, Head})

	b.Advance()
	c.Assert(rowOf(b, 0), qt.DeepEquals, []State{Tail, Wire, Tail})
	c.Assert(b.Generation(), qt.Equals, uint64(2))
}

func TestSetAtExactBoundaryFails(t *testing.T) {
	c := qt.New(t)
	for _, test := range boundaryTests {
		if test.w == 0 || test.h == 0 {
			continue
		}
		b := NewBoard(test.w, test.h)
		c.Assert(b.Set(test.w, 0, Wire), qt.ErrorIs, ErrOutOfRange)
		c.Assert(b.Set(0, test.h, Wire), qt.ErrorIs, ErrOutOfRange)
		c.Assert(b.Set(test.w-1, test.h-1, Wire), qt.IsNil)
		c.Assert(b.Census().Count(Wire), qt.Equals, 1)
	}
}

// referenceAdvance computes the next generation from a frozen copy of the
// cells without touching the board.
func referenceAdvance(b *Board) []State {
	w, h := b.Width(), b.Height()
	snap := append([]State(nil), b.Cells()...)
	at := func(x, y int) State {
		if x < 0 || x >= w || y < 0 || y >= h {
			return Empty
		}
		return snap[x+y*w]
	}
	out := make([]State, len(snap))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			heads := 0
			for _, d := range [8][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}} {
				if at(x+d[0], y+d[1]) == Head {
					heads++
				}
			}
			out[x+y*w] = Tick(at(x, y), heads)
		}
	}
	return out
}

func TestAdvanceMatchesSnapshotReference(t *testing.T) {
	c := qt.New(t)
	for seed := int64(1); seed <= 20; seed++ {
		rng := core.NewRNG(seed)
		b := NewBoard(7+rng.IntN(20), 5+rng.IntN(20))
		for i := range b.Cells() {
			b.Cells()[i] = States[rng.IntN(len(States))]
		}
		for gen := 0; gen < 5; gen++ {
			expect := referenceAdvance(b)
			b.Advance()
			c.Assert(b.Cells(), qt.DeepEquals, expect, qt.Commentf("seed %d generation %d", seed, gen))
		}
	}
}

func TestAdvanceWireNeedsOneOrTwoHeads(t *testing.T) {
	c := qt.New(t)
	b := BoardFromPattern(MustParsePattern(`
HHH.H..
.#..#..
.......
`))
	b.Advance()
	// Three heads keep the left wire quiet; one head fires the right one.
	c.Assert(b.Get(1, 1), qt.Equals, Wire)
	c.Assert(b.Get(4, 1), qt.Equals, Head)
}

func TestClearResetsGeneration(t *testing.T) {
	c := qt.New(t)
	b := BoardFromPattern(MustParsePattern("tH##"))
	b.Advance()
	c.Assert(b.Generation(), qt.Equals, uint64(1))
	b.Clear()
	c.Assert(b.Generation(), qt.Equals, uint64(0))
	c.Assert(b.Census().Conductive(), qt.Equals, 0)
}

func TestCloneIsIndependent(t *testing.T) {
	c := qt.New(t)
	b := BoardFromPattern(MustParsePattern("tH##"))
	clone := b.Clone()
	c.Assert(clone.Equal(b), qt.IsTrue)
	b.Advance()
	c.Assert(clone.Equal(b), qt.IsFalse)
	c.Assert(clone.String(), qt.Equals, "tH##\n")
	c.Assert(b.String(), qt.Equals, "#tH#\n")
}

func TestEqualDimensions(t *testing.T) {
	c := qt.New(t)
	c.Assert(NewBoard(2, 3).Equal(NewBoard(3, 2)), qt.IsFalse)
	c.Assert(NewBoard(2, 3).Equal(nil), qt.IsFalse)
	c.Assert(NewBoard(0, 0).Equal(NewBoard(0, 0)), qt.IsTrue)
}

func TestCensus(t *testing.T) {
	c := qt.New(t)
	b := BoardFromPattern(MustParsePattern(`
tH##.
.....
`))
	census := b.Census()
	c.Assert(census.Count(Empty), qt.Equals, 6)
	c.Assert(census.Count(Head), qt.Equals, 1)
	c.Assert(census.Count(Tail), qt.Equals, 1)
	c.Assert(census.Count(Wire), qt.Equals, 2)
	c.Assert(census.Count(State(5)), qt.Equals, 0)
	c.Assert(census.Conductive(), qt.Equals, 4)
}
