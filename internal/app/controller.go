package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/juju/loggo"
	"github.com/pkg/errors"

	"wireworld/internal/core"
	"wireworld/internal/driver"
	"wireworld/internal/ui"
	"wireworld/internal/wireworld"
)

var logger = loggo.GetLogger("wireworld.app")

// Action is a front-end independent user command.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionStep
	ActionReset
	ActionReseed
	ActionClear
	ActionPenWire
	ActionPenHead
	ActionPenTail
	ActionPenEmpty
	ActionPenCycle
	ActionFaster
	ActionSlower
	ActionQuit
)

// MaxTPS is the fastest cadence ActionFaster reaches.
const MaxTPS = 240

// Controller applies user commands to a driven simulation. Both the window
// and the terminal front end translate their input into Actions and pointer
// strokes and hand them to a Controller.
type Controller struct {
	driver  *driver.Driver
	pen     *ui.Pen
	seed    int64
	newSeed func() int64
}

// NewController wraps d. seed is used by reset when the simulation does not
// expose its own seed parameter.
func NewController(d *driver.Driver, seed int64) *Controller {
	return &Controller{
		driver:  d,
		pen:     ui.NewPen(),
		seed:    seed,
		newSeed: func() int64 { return time.Now().UnixNano()%(1<<31-1) + 1 },
	}
}

// SetSeedSource replaces the generator used by ActionReseed.
func (c *Controller) SetSeedSource(f func() int64) { c.newSeed = f }

// Driver returns the driver being controlled.
func (c *Controller) Driver() *driver.Driver { return c.driver }

// Pen returns the pen used for painting.
func (c *Controller) Pen() *ui.Pen { return c.pen }

// Apply performs a and reports whether the front end should quit.
func (c *Controller) Apply(a Action) (quit bool) {
	d := c.driver
	switch a {
	case ActionPause:
		d.TogglePause()
	case ActionStep:
		d.StepOnce()
	case ActionReset:
		c.reset(c.currentSeed())
	case ActionReseed:
		seed := c.newSeed()
		if setter, ok := d.Sim().(core.IntParameterSetter); ok {
			setter.SetIntParameter("seed", int(seed))
		}
		c.seed = seed
		c.reset(seed)
	case ActionClear:
		if ed, ok := d.Sim().(core.Editor); ok {
			ed.Clear()
		}
	case ActionPenWire:
		c.pen.Select(wireworld.Wire)
	case ActionPenHead:
		c.pen.Select(wireworld.Head)
	case ActionPenTail:
		c.pen.Select(wireworld.Tail)
	case ActionPenEmpty:
		c.pen.Select(wireworld.Empty)
	case ActionPenCycle:
		c.pen.Cycle()
	case ActionFaster:
		d.SetTPS(min(d.TPS()*2, MaxTPS))
	case ActionSlower:
		d.SetTPS(max(d.TPS()/2, 1))
	case ActionQuit:
		return true
	}
	return false
}

// Paint continues a stroke at cell (x, y) with the pen's state.
func (c *Controller) Paint(x, y int) error {
	return c.stroke(x, y, c.pen.State())
}

// Erase continues a stroke at cell (x, y) that empties cells.
func (c *Controller) Erase(x, y int) error {
	return c.stroke(x, y, wireworld.Empty)
}

// EndStroke finishes the current paint or erase stroke.
func (c *Controller) EndStroke() { c.pen.End() }

func (c *Controller) stroke(x, y int, s wireworld.State) error {
	ed, ok := c.driver.Sim().(core.Editor)
	if !ok {
		return nil
	}
	if err := c.pen.Drag(ed, x, y, s); err != nil {
		logger.Warningf("cannot paint %s at (%d,%d): %v", s, x, y, err)
		return err
	}
	return nil
}

// Status summarises the run state for display.
func (c *Controller) Status() []string {
	run := "running"
	if c.driver.Paused() {
		run = "paused"
	}
	return []string{
		fmt.Sprintf("%s at %d tps", run, c.driver.TPS()),
		"pen " + c.pen.State().String(),
	}
}

type resetErrer interface {
	Err() error
}

func (c *Controller) reset(seed int64) {
	sim := c.driver.Sim()
	sim.Reset(seed)
	if e, ok := sim.(resetErrer); ok && e.Err() != nil {
		logger.Errorf("reset with seed %d: %v", seed, e.Err())
		return
	}
	logger.Debugf("reset %s with seed %d", sim.Name(), seed)
}

// currentSeed prefers the simulation's own seed parameter so HUD edits
// are picked up by the next reset.
func (c *Controller) currentSeed() int64 {
	if p, ok := c.driver.Sim().(core.ParameterProvider); ok {
		if param, ok := p.Parameters().Lookup("seed"); ok {
			if v, err := strconv.ParseInt(param.Value, 10, 64); err == nil {
				return v
			}
		}
	}
	return c.seed
}

// NewSim builds the configured simulation from the registry and resets it
// with the configured seed.
func NewSim(cfg *Config) (core.Sim, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, errors.Errorf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}
	seed := cfg.Seed
	if v, err := strconv.ParseInt(cfg.Params["seed"], 10, 64); err == nil {
		seed = v
	}
	params := make(map[string]string, len(cfg.Params)+1)
	for k, v := range cfg.Params {
		params[k] = v
	}
	params["seed"] = strconv.FormatInt(seed, 10)
	sim := factory(params)
	sim.Reset(seed)
	if e, ok := sim.(resetErrer); ok && e.Err() != nil {
		return nil, errors.Wrapf(e.Err(), "cannot start %s", cfg.Sim)
	}
	logger.Infof("%s %dx%d seed %d", sim.Name(), sim.Size().W, sim.Size().H, seed)
	return sim, nil
}

// ConfigureLogging applies a loggo specification such as "<root>=DEBUG".
func ConfigureLogging(spec string) error {
	if spec == "" {
		return nil
	}
	if err := loggo.ConfigureLoggers(spec); err != nil {
		return errors.Wrapf(err, "bad logging configuration %q", spec)
	}
	return nil
}
