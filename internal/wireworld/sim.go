package wireworld

import (
	"github.com/pkg/errors"

	"wireworld/internal/core"
)

// World adapts a Board to the core.Sim interface so front ends can drive,
// render and edit it.
type World struct {
	cfg     Config
	board   *Board
	display []uint8
	err     error
}

// New returns a Wireworld simulation with the provided dimensions using
// defaults for everything else.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options. The
// board starts Empty; call Reset to lay out the configured pattern.
func NewWithConfig(cfg Config) *World {
	b := NewBoard(cfg.Width, cfg.Height)
	return &World{
		cfg:     cfg,
		board:   b,
		display: make([]uint8, len(b.Cells())),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "wireworld" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.board.Size() }

// Cells exposes the display buffer, one State value per cell.
func (w *World) Cells() []uint8 { return w.display }

// Board exposes the underlying board.
func (w *World) Board() *Board { return w.board }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Err returns the error from the most recent Reset, if any.
func (w *World) Err() error { return w.err }

// Reset clears the board and lays out the configured pattern. A zero seed
// falls back to the configured one. Layout failures are kept in Err.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.err = w.Layout(seed)
}

// Layout clears the board and applies the configured pattern using seed for
// any randomness.
func (w *World) Layout(seed int64) error {
	w.board.Clear()
	defer w.refresh()
	rng := core.NewRNG(seed)
	switch w.cfg.Pattern {
	case LayoutEmpty, "":
		return nil
	case LayoutRandom:
		w.scatter(rng)
		return nil
	case LayoutClocks:
		w.tileClocks(rng)
		return nil
	}
	p, ok := LookupPattern(w.cfg.Pattern)
	if !ok {
		return errors.Errorf("unknown pattern %q", w.cfg.Pattern)
	}
	x := (w.board.Width() - p.W) / 2
	y := (w.board.Height() - p.H) / 2
	if err := w.board.Stamp(x, y, p); err != nil {
		return errors.Wrapf(err, "pattern %q does not fit a %dx%d board", w.cfg.Pattern, w.board.Width(), w.board.Height())
	}
	return nil
}

func (w *World) scatter(rng *core.RNG) {
	cells := w.board.Cells()
	for i := range cells {
		if !rng.Chance(w.cfg.WireDensity) {
			continue
		}
		cells[i] = Wire
		if rng.Chance(w.cfg.HeadChance) {
			cells[i] = Head
		}
	}
}

func (w *World) tileClocks(rng *core.RNG) {
	clock, _ := LookupPattern("clock")
	const gapX, gapY = 2, 2
	for y := 1; y+clock.H <= w.board.Height(); y += clock.H + gapY {
		for x := 1; x+clock.W <= w.board.Width(); x += clock.W + gapX {
			if rng.IntN(4) == 0 {
				continue
			}
			// Fits by construction.
			_ = w.board.Stamp(x, y, clock)
		}
	}
}

// Step advances the board by one generation.
func (w *World) Step() {
	w.board.Advance()
	w.refresh()
}

// SetCell writes state v at (x, y), rejecting off-board coordinates with an
// ErrOutOfRange error.
func (w *World) SetCell(x, y int, v uint8) error {
	if err := w.board.Set(x, y, State(v)); err != nil {
		return err
	}
	w.display[w.board.cur.Index(x, y)] = v
	return nil
}

// CellAt returns the state at (x, y) as a display value.
func (w *World) CellAt(x, y int) uint8 { return uint8(w.board.Get(x, y)) }

// Clear empties the board.
func (w *World) Clear() {
	w.board.Clear()
	w.refresh()
}

func (w *World) refresh() {
	for i, s := range w.board.Cells() {
		w.display[i] = uint8(s)
	}
}

func init() {
	core.Register("wireworld", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
