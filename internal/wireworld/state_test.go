package wireworld

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestTickTotal(t *testing.T) {
	c := qt.New(t)
	for _, s := range States {
		for n := 0; n <= 8; n++ {
			c.Assert(Tick(s, n).Valid(), qt.IsTrue, qt.Commentf("state %v count %d", s, n))
		}
	}
}

func TestTickEmptyAbsorbs(t *testing.T) {
	c := qt.New(t)
	for n := 0; n <= 8; n++ {
		c.Assert(Tick(Empty, n), qt.Equals, Empty)
	}
}

func TestTickDecay(t *testing.T) {
	c := qt.New(t)
	for n := 0; n <= 8; n++ {
		c.Assert(Tick(Head, n), qt.Equals, Tail)
		c.Assert(Tick(Tail, n), qt.Equals, Wire)
	}
}

var wireTickTests = []struct {
	heads  int
	expect State
}{
	{0, Wire},
	{1, Head},
	{2, Head},
	{3, Wire},
	{4, Wire},
	{5, Wire},
	{6, Wire},
	{7, Wire},
	{8, Wire},
	{-1, Wire},
	{9, Wire},
}

func TestTickWire(t *testing.T) {
	c := qt.New(t)
	for _, test := range wireTickTests {
		c.Assert(Tick(Wire, test.heads), qt.Equals, test.expect, qt.Commentf("heads %d", test.heads))
	}
}

func TestTickInvalidState(t *testing.T) {
	qt.Assert(t, Tick(State(7), 1), qt.Equals, Empty)
}

func TestStateString(t *testing.T) {
	c := qt.New(t)
	c.Assert(Empty.String(), qt.Equals, "empty")
	c.Assert(Head.String(), qt.Equals, "head")
	c.Assert(Tail.String(), qt.Equals, "tail")
	c.Assert(Wire.String(), qt.Equals, "wire")
	c.Assert(State(4).String(), qt.Equals, "invalid")
}
