// Command wire-sweep runs batches of random Wireworld boards and reports how
// each one settles: the cycle it falls into and the population left in it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/juju/loggo"

	"wireworld/internal/app"
)

var logger = loggo.GetLogger("wireworld.cmd.sweep")

func main() {
	cfg, logSpec, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := app.ConfigureLogging(logSpec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Infof("sweeping %d densities x %d seeds (%d workers, %d generations)",
		len(cfg.Densities), cfg.Runs, cfg.Workers, cfg.Generations)
	start := time.Now()
	results, err := sweep(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	report(os.Stdout, results)
	logger.Infof("finished %d runs in %s", len(results), time.Since(start).Round(time.Millisecond))
}

// parseFlags reads the sweep settings. Values from -config are overridden by
// flags given explicitly.
func parseFlags(fs *flag.FlagSet, args []string) (sweepConfig, string, error) {
	cfg := defaultSweepConfig()
	var (
		file      string
		logSpec   = "<root>=INFO"
		densities = floatList(cfg.Densities)
		settings  = app.KVList{}
	)
	fs.IntVar(&cfg.Runs, "runs", cfg.Runs, "seeds to run per density")
	fs.IntVar(&cfg.Generations, "gens", cfg.Generations, "generation budget per run")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel runs")
	fs.Int64Var(&cfg.FirstSeed, "seed", cfg.FirstSeed, "first seed")
	fs.IntVar(&cfg.Window, "window", cfg.Window, "generations remembered for cycle detection")
	fs.Var(&densities, "densities", "comma separated wire densities")
	fs.Var(&settings, "set", "board setting in key=value form (repeatable)")
	fs.StringVar(&file, "config", "", "JSON file with sweep settings")
	fs.StringVar(&logSpec, "log", logSpec, "logging configuration")
	if err := fs.Parse(args); err != nil {
		return cfg, "", err
	}

	if file != "" {
		fromFile, err := loadSweepConfig(file)
		if err != nil {
			return cfg, "", err
		}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "runs":
				fromFile.Runs = cfg.Runs
			case "gens":
				fromFile.Generations = cfg.Generations
			case "workers":
				fromFile.Workers = cfg.Workers
			case "seed":
				fromFile.FirstSeed = cfg.FirstSeed
			case "window":
				fromFile.Window = cfg.Window
			}
		})
		cfg = fromFile
	}
	if isSet(fs, "densities") || file == "" {
		cfg.Densities = densities
	}
	if cfg.Settings == nil {
		cfg.Settings = map[string]string{}
	}
	for k, v := range settings {
		cfg.Settings[k] = v
	}
	return cfg, logSpec, cfg.validate()
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
