package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"wireworld/internal/wireworld"
)

// sweepConfig describes a batch of random boards to run.
type sweepConfig struct {
	Runs        int               `json:"runs"`
	Generations int               `json:"generations"`
	Workers     int               `json:"workers"`
	FirstSeed   int64             `json:"first_seed"`
	Window      int               `json:"window"`
	Densities   []float64         `json:"densities"`
	Settings    map[string]string `json:"settings"`
}

func defaultSweepConfig() sweepConfig {
	return sweepConfig{
		Runs:        16,
		Generations: 500,
		Workers:     runtime.NumCPU(),
		FirstSeed:   1,
		Window:      wireworld.DefaultCycleWindow,
		Densities:   []float64{0.2, 0.35, 0.5},
		Settings:    map[string]string{"w": "48", "h": "48"},
	}
}

// loadSweepConfig overlays the JSON file onto the defaults.
func loadSweepConfig(filename string) (sweepConfig, error) {
	cfg := defaultSweepConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrapf(err, "[loadSweepConfig] failed to read file: %+v", filename)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "[loadSweepConfig] failed to unmarshal data from file: %+v", filename)
	}
	return cfg, nil
}

func (c sweepConfig) validate() error {
	switch {
	case c.Runs < 1:
		return errors.Errorf("runs must be at least 1, got %d", c.Runs)
	case c.Generations < 0:
		return errors.Errorf("generations must not be negative, got %d", c.Generations)
	case len(c.Densities) == 0:
		return errors.New("no wire densities to sweep")
	}
	for _, d := range c.Densities {
		if d < 0 || d > 1 {
			return errors.Errorf("wire density %v outside [0, 1]", d)
		}
	}
	return nil
}

// runResult summarises one board after the sweep stopped running it.
type runResult struct {
	Seed        int64
	WireDensity float64
	// Period is zero when no cycle was found within the generation budget.
	Period     int
	SettledAt  uint64
	Census     wireworld.Census
	PeakHeads  int
	Generation uint64
}

// sweep runs every density for Runs consecutive seeds, at most Workers at a
// time. Results are ordered by density, then seed.
func sweep(ctx context.Context, cfg sweepConfig) ([]runResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	base := wireworld.FromMap(cfg.Settings)
	base.Pattern = wireworld.LayoutRandom

	results := make([]runResult, len(cfg.Densities)*cfg.Runs)
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for di, density := range cfg.Densities {
		for i := 0; i < cfg.Runs; i++ {
			slot := di*cfg.Runs + i
			wcfg := base
			wcfg.WireDensity = density
			wcfg.Seed = cfg.FirstSeed + int64(i)
			g.Go(func() error {
				res, err := runOne(ctx, wcfg, cfg.Generations, cfg.Window)
				if err != nil {
					return errors.Wrapf(err, "density %v seed %d", density, wcfg.Seed)
				}
				logger.Debugf("density %v seed %d: period %d after %d generations", density, wcfg.Seed, res.Period, res.Generation)
				results[slot] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runOne advances a freshly laid out board until it repeats a generation or
// the budget runs out.
func runOne(ctx context.Context, cfg wireworld.Config, generations, window int) (runResult, error) {
	world := wireworld.NewWithConfig(cfg)
	world.Reset(cfg.Seed)
	if err := world.Err(); err != nil {
		return runResult{}, err
	}
	board := world.Board()
	res := runResult{Seed: cfg.Seed, WireDensity: cfg.WireDensity}
	det := wireworld.CycleDetector{Window: window}
	det.Observe(board)
	res.PeakHeads = board.Census().Count(wireworld.Head)
	for g := 0; g < generations; g++ {
		if g%64 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		board.Advance()
		res.PeakHeads = max(res.PeakHeads, board.Census().Count(wireworld.Head))
		if period, ok := det.Observe(board); ok {
			res.Period = period
			res.SettledAt = board.Generation() - uint64(period)
			break
		}
	}
	res.Generation = board.Generation()
	res.Census = board.Census()
	return res, nil
}

// report writes one line per run followed by a per-density summary.
func report(w io.Writer, results []runResult) {
	fmt.Fprintf(w, "%-8s %-6s %-8s %-8s %6s %6s %6s %6s\n", "density", "seed", "period", "settled", "heads", "tails", "wires", "peak")
	for _, r := range results {
		period, settled := "-", "-"
		if r.Period > 0 {
			period = strconv.Itoa(r.Period)
			settled = strconv.FormatUint(r.SettledAt, 10)
		}
		fmt.Fprintf(w, "%-8.2f %-6d %-8s %-8s %6d %6d %6d %6d\n",
			r.WireDensity, r.Seed, period, settled,
			r.Census.Count(wireworld.Head), r.Census.Count(wireworld.Tail), r.Census.Count(wireworld.Wire), r.PeakHeads)
	}

	type summary struct {
		density float64
		runs    int
		cyclic  int
		signals int
	}
	var sums []summary
	for _, r := range results {
		if len(sums) == 0 || sums[len(sums)-1].density != r.WireDensity {
			sums = append(sums, summary{density: r.WireDensity})
		}
		s := &sums[len(sums)-1]
		s.runs++
		if r.Period > 0 {
			s.cyclic++
		}
		if r.Period > 1 {
			s.signals++
		}
	}
	fmt.Fprintln(w)
	for _, s := range sums {
		fmt.Fprintf(w, "density %.2f: %d/%d settled, %d still carrying signals\n", s.density, s.cyclic, s.runs, s.signals)
	}
}

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	var out []float64
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return errors.Wrapf(err, "bad density %q", part)
		}
		out = append(out, v)
	}
	*l = out
	return nil
}
