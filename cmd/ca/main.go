//go:build ebiten

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juju/loggo"
	"github.com/pkg/errors"

	"wireworld/internal/app"
)

var logger = loggo.GetLogger("wireworld.cmd.ca")

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

	sim, err := app.NewSim(cfg)
	if err != nil {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("wireworld — " + sim.Name())
	ebiten.SetTPS(app.MaxTPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}
}
