// Package driver decides when a simulation advances: it owns the pause flag
// and the fixed tick cadence shared by every front end.
package driver

import (
	"time"

	"github.com/juju/loggo"

	"wireworld/internal/core"
)

var logger = loggo.GetLogger("wireworld.driver")

// Driver steps a simulation at a fixed rate unless paused. It must be used
// from the goroutine that owns the simulation.
type Driver struct {
	sim      core.Sim
	step     *core.FixedStep
	paused   bool
	tickOnce bool
	steps    uint64
}

// New returns a Driver that advances sim at tps generations per second.
func New(sim core.Sim, tps int, paused bool) *Driver {
	return &Driver{sim: sim, step: core.NewFixedStep(tps), paused: paused}
}

// SetClock replaces the time source used for the cadence.
func (d *Driver) SetClock(now func() time.Time) { d.step.SetClock(now) }

// Update advances the simulation by at most one generation and reports
// whether it did.
func (d *Driver) Update() bool {
	if d.tickOnce {
		d.tickOnce = false
		d.advance()
		return true
	}
	if d.paused || !d.step.ShouldStep() {
		return false
	}
	d.advance()
	return true
}

func (d *Driver) advance() {
	d.sim.Step()
	d.steps++
}

// Paused reports whether automatic stepping is suspended.
func (d *Driver) Paused() bool { return d.paused }

// SetPaused suspends or resumes automatic stepping. Resuming waits a full
// period before the next generation.
func (d *Driver) SetPaused(paused bool) {
	if d.paused == paused {
		return
	}
	d.paused = paused
	if !paused {
		d.step.Reset()
	}
	logger.Debugf("paused=%v after %d generations", paused, d.steps)
}

// TogglePause flips the pause flag.
func (d *Driver) TogglePause() { d.SetPaused(!d.paused) }

// StepOnce requests a single generation on the next Update, even when paused.
func (d *Driver) StepOnce() { d.tickOnce = true }

// SetTPS changes the cadence. Non-positive values fall back to 60.
func (d *Driver) SetTPS(tps int) {
	d.step.SetTPS(tps)
	logger.Debugf("cadence set to %d generations per second", d.step.TPS())
}

// TPS returns the current cadence.
func (d *Driver) TPS() int { return d.step.TPS() }

// Steps returns how many generations the driver has advanced.
func (d *Driver) Steps() uint64 { return d.steps }

// Sim returns the driven simulation.
func (d *Driver) Sim() core.Sim { return d.sim }
