package driver

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"wireworld/internal/core"
	"wireworld/internal/wireworld"
)

type countingSim struct {
	steps int
}

func (s *countingSim) Name() string    { return "counting" }
func (s *countingSim) Size() core.Size { return core.Size{} }
func (s *countingSim) Reset(int64)     {}
func (s *countingSim) Step()           { s.steps++ }
func (s *countingSim) Cells() []uint8  { return nil }

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDriver(paused bool) (*Driver, *countingSim, *fakeClock) {
	sim := &countingSim{}
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	d := New(sim, 10, paused)
	d.SetClock(clock.now)
	return d, sim, clock
}

func TestDriverCadence(t *testing.T) {
	c := qt.New(t)
	d, sim, clock := newTestDriver(false)

	c.Assert(d.Update(), qt.IsTrue)
	c.Assert(d.Update(), qt.IsFalse)
	clock.advance(50 * time.Millisecond)
	c.Assert(d.Update(), qt.IsFalse)
	clock.advance(50 * time.Millisecond)
	c.Assert(d.Update(), qt.IsTrue)
	c.Assert(sim.steps, qt.Equals, 2)
	c.Assert(d.Steps(), qt.Equals, uint64(2))
}

func TestDriverStallDoesNotBurst(t *testing.T) {
	c := qt.New(t)
	d, sim, clock := newTestDriver(false)
	c.Assert(d.Update(), qt.IsTrue)

	clock.advance(time.Second)
	n := 0
	for i := 0; i < 10; i++ {
		if d.Update() {
			n++
		}
	}
	c.Assert(n, qt.Equals, 2)
	c.Assert(sim.steps, qt.Equals, 3)
}

func TestDriverPause(t *testing.T) {
	c := qt.New(t)
	d, sim, clock := newTestDriver(true)
	c.Assert(d.Paused(), qt.IsTrue)

	clock.advance(time.Second)
	c.Assert(d.Update(), qt.IsFalse)

	d.StepOnce()
	c.Assert(d.Update(), qt.IsTrue)
	c.Assert(d.Update(), qt.IsFalse)
	c.Assert(sim.steps, qt.Equals, 1)

	d.TogglePause()
	c.Assert(d.Paused(), qt.IsFalse)
	// Resuming waits a full period.
	c.Assert(d.Update(), qt.IsFalse)
	clock.advance(100 * time.Millisecond)
	c.Assert(d.Update(), qt.IsTrue)
	c.Assert(sim.steps, qt.Equals, 2)
}

func TestDriverSetTPS(t *testing.T) {
	c := qt.New(t)
	d, _, clock := newTestDriver(false)
	c.Assert(d.Update(), qt.IsTrue)
	d.SetTPS(0)
	c.Assert(d.TPS(), qt.Equals, 60)
	d.SetTPS(2)
	c.Assert(d.TPS(), qt.Equals, 2)

	clock.advance(400 * time.Millisecond)
	c.Assert(d.Update(), qt.IsFalse)
	clock.advance(100 * time.Millisecond)
	c.Assert(d.Update(), qt.IsTrue)
}

func TestDriverAdvancesBoard(t *testing.T) {
	c := qt.New(t)
	world := wireworld.New(3, 1)
	for x, s := range []wireworld.State{wireworld.Wire, wireworld.Head, wireworld.Wire} {
		c.Assert(world.SetCell(x, 0, uint8(s)), qt.IsNil)
	}
	d := New(world, 30, true)
	d.StepOnce()
	c.Assert(d.Update(), qt.IsTrue)
	c.Assert(world.Board().String(), qt.Equals, "HtH\n")
	c.Assert(d.Sim(), qt.Equals, core.Sim(world))
}
