package wireworld

import (
	"hash/fnv"
	"slices"
)

// DefaultCycleWindow is the number of generations remembered by a
// CycleDetector with no explicit window.
const DefaultCycleWindow = 64

// CycleDetector recognises when a board returns to a generation it has
// already been in. Feed it the board once per generation.
type CycleDetector struct {
	// Window bounds how many past generations are remembered, which also
	// bounds the longest detectable period.
	Window int

	history []cycleEntry
}

type cycleEntry struct {
	hash  uint64
	gen   uint64
	cells []State
}

// Observe records the board's current generation. When the same cells were
// seen within the window it returns the period and true.
func (d *CycleDetector) Observe(b *Board) (int, bool) {
	cells := b.Cells()
	h := hashCells(cells)
	for i := len(d.history) - 1; i >= 0; i-- {
		e := d.history[i]
		if e.hash != h || e.gen >= b.Generation() || !slices.Equal(e.cells, cells) {
			continue
		}
		return int(b.Generation() - e.gen), true
	}
	window := d.Window
	if window <= 0 {
		window = DefaultCycleWindow
	}
	if len(d.history) >= window {
		d.history = append(d.history[:0], d.history[len(d.history)-window+1:]...)
	}
	d.history = append(d.history, cycleEntry{hash: h, gen: b.Generation(), cells: slices.Clone(cells)})
	return 0, false
}

// Reset forgets every observed generation.
func (d *CycleDetector) Reset() { d.history = d.history[:0] }

func hashCells(cells []State) uint64 {
	h := fnv.New64a()
	buf := make([]byte, len(cells))
	for i, s := range cells {
		buf[i] = byte(s)
	}
	h.Write(buf)
	return h.Sum64()
}
