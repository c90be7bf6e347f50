// Command wwterm runs Wireworld in a terminal. It accepts the same flags
// and keys as the window front end; cells are painted with the mouse.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/juju/loggo"
	"github.com/pkg/errors"

	"wireworld/internal/app"
	"wireworld/internal/driver"
)

var logger = loggo.GetLogger("wireworld.cmd.wwterm")

const frameRate = 60

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := app.ConfigureLogging(cfg.Log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	sim, err := app.NewSim(cfg)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "creating screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initializing screen")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	ctl := app.NewController(driver.New(sim, cfg.TPS, cfg.Paused), cfg.Seed)
	term := newTerminal(screen, ctl)

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()
	term.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if term.handle(ev) {
				close(quit)
				logger.Debugf("quit after %d generations", ctl.Driver().Steps())
				return nil
			}
			term.draw()
		case <-ticker.C:
			if ctl.Driver().Update() {
				term.draw()
			}
		}
	}
}
