package app

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"wireworld/internal/driver"
	"wireworld/internal/wireworld"
)

func newTestController(c *qt.C, params map[string]string) (*Controller, *wireworld.World) {
	cfg := NewConfig()
	cfg.Params = params
	sim, err := NewSim(cfg)
	c.Assert(err, qt.IsNil)
	world, ok := sim.(*wireworld.World)
	c.Assert(ok, qt.IsTrue)
	return NewController(driver.New(sim, cfg.TPS, true), cfg.Seed), world
}

func TestNewSimErrors(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig()
	cfg.Sim = "nope"
	_, err := NewSim(cfg)
	c.Assert(err, qt.ErrorMatches, `unknown sim "nope" \(available: \[.*wireworld.*\]\)`)

	cfg = NewConfig()
	cfg.Params = map[string]string{"w": "4", "h": "4", "pattern": "diode"}
	_, err = NewSim(cfg)
	c.Assert(err, qt.ErrorMatches, `cannot start wireworld: pattern "diode" does not fit a 4x4 board: .*`)
	c.Assert(err, qt.ErrorIs, wireworld.ErrOutOfRange)
}

func TestNewSimSeedSetting(t *testing.T) {
	c := qt.New(t)
	_, world := newTestController(c, map[string]string{"w": "8", "h": "8", "seed": "12"})
	c.Assert(world.Config().Seed, qt.Equals, int64(12))

	_, world = newTestController(c, map[string]string{"w": "8", "h": "8"})
	c.Assert(world.Config().Seed, qt.Equals, NewConfig().Seed)
}

func TestControllerReseedThenReset(t *testing.T) {
	c := qt.New(t)
	ctl, world := newTestController(c, map[string]string{"w": "16", "h": "16", "pattern": "random"})
	ctl.SetSeedSource(func() int64 { return 77 })

	c.Assert(ctl.Apply(ActionReseed), qt.IsFalse)
	c.Assert(world.Config().Seed, qt.Equals, int64(77))
	want := world.Board().Clone()

	world.Step()
	world.Step()
	c.Assert(ctl.Apply(ActionReset), qt.IsFalse)
	c.Assert(world.Board().Equal(want), qt.IsTrue)
	c.Assert(world.Board().Generation(), qt.Equals, uint64(0))
}

func TestControllerResetFollowsSeedParameter(t *testing.T) {
	c := qt.New(t)
	ctl, world := newTestController(c, map[string]string{"w": "16", "h": "16", "pattern": "random"})
	c.Assert(world.SetIntParameter("seed", 5), qt.IsTrue)
	ctl.Apply(ActionReset)

	other := wireworld.NewWithConfig(world.Config())
	other.Reset(5)
	c.Assert(world.Board().Equal(other.Board()), qt.IsTrue)
}

func TestControllerClearAndPen(t *testing.T) {
	c := qt.New(t)
	ctl, world := newTestController(c, map[string]string{"w": "5", "h": "2", "pattern": "empty"})

	c.Assert(ctl.Paint(0, 0), qt.IsNil)
	c.Assert(ctl.Paint(4, 0), qt.IsNil)
	ctl.EndStroke()
	ctl.Apply(ActionPenHead)
	c.Assert(ctl.Paint(2, 1), qt.IsNil)
	ctl.EndStroke()
	c.Assert(ctl.Erase(1, 0), qt.IsNil)
	ctl.EndStroke()
	c.Assert(world.Board().String(), qt.Equals, "#.###\n..H..\n")

	c.Assert(ctl.Paint(5, 0), qt.ErrorIs, wireworld.ErrOutOfRange)
	ctl.EndStroke()

	ctl.Apply(ActionClear)
	c.Assert(world.Board().Census().Conductive(), qt.Equals, 0)
}

func TestControllerPenSelection(t *testing.T) {
	c := qt.New(t)
	ctl, _ := newTestController(c, map[string]string{"w": "2", "h": "2", "pattern": "empty"})
	tests := []struct {
		action Action
		want   wireworld.State
	}{
		{ActionPenTail, wireworld.Tail},
		{ActionPenEmpty, wireworld.Empty},
		{ActionPenCycle, wireworld.Wire},
		{ActionPenCycle, wireworld.Head},
		{ActionPenWire, wireworld.Wire},
	}
	for _, test := range tests {
		ctl.Apply(test.action)
		c.Assert(ctl.Pen().State(), qt.Equals, test.want)
	}
}

func TestControllerCadenceAndStatus(t *testing.T) {
	c := qt.New(t)
	ctl, _ := newTestController(c, map[string]string{"w": "2", "h": "2", "pattern": "empty"})
	d := ctl.Driver()
	c.Assert(ctl.Status(), qt.DeepEquals, []string{"paused at 10 tps", "pen wire"})

	ctl.Apply(ActionFaster)
	c.Assert(d.TPS(), qt.Equals, 20)
	for i := 0; i < 10; i++ {
		ctl.Apply(ActionFaster)
	}
	c.Assert(d.TPS(), qt.Equals, MaxTPS)
	for i := 0; i < 20; i++ {
		ctl.Apply(ActionSlower)
	}
	c.Assert(d.TPS(), qt.Equals, 1)

	ctl.Apply(ActionPause)
	c.Assert(d.Paused(), qt.IsFalse)
	c.Assert(ctl.Status()[0], qt.Equals, "running at 1 tps")

	ctl.Apply(ActionStep)
	c.Assert(d.Update(), qt.IsTrue)
	c.Assert(ctl.Apply(ActionQuit), qt.IsTrue)
	c.Assert(ctl.Apply(ActionNone), qt.IsFalse)
}
