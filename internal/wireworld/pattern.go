package wireworld

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a rectangular block of cells that can be stamped onto a board.
// In the text form '.' or ' ' is Empty, '#' is Wire, 'H' is Head and 't'
// is Tail. Short rows are padded with Empty.
type Pattern struct {
	W, H  int
	cells []State
}

// At returns the pattern cell at (x, y), or Empty outside the pattern.
func (p *Pattern) At(x, y int) State {
	if x < 0 || x >= p.W || y < 0 || y >= p.H {
		return Empty
	}
	return p.cells[x+y*p.W]
}

func stateSymbol(s State) byte {
	switch s {
	case Wire:
		return '#'
	case Head:
		return 'H'
	case Tail:
		return 't'
	default:
		return '.'
	}
}

func symbolState(r rune) (State, bool) {
	switch r {
	case '.', ' ':
		return Empty, true
	case '#':
		return Wire, true
	case 'H':
		return Head, true
	case 't':
		return Tail, true
	}
	return Empty, false
}

// ParsePattern reads the text form. Leading and trailing blank lines are
// ignored.
func ParsePattern(text string) (*Pattern, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return &Pattern{}, nil
	}
	w := 0
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	p := &Pattern{W: w, H: len(lines), cells: make([]State, w*len(lines))}
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		for x, r := range []rune(line) {
			s, ok := symbolState(r)
			if !ok {
				return nil, errors.Errorf("unknown cell symbol %q at line %d column %d", r, y+1, x+1)
			}
			p.cells[x+y*w] = s
		}
	}
	return p, nil
}

// MustParsePattern is like ParsePattern but panics on malformed input. It is
// meant for compiled-in patterns.
func MustParsePattern(text string) *Pattern {
	p, err := ParsePattern(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Stamp copies every cell of p onto the board with its top-left corner at
// (x, y), including Empty cells. If any part of p falls outside the board
// nothing is written and an ErrOutOfRange error is returned.
func (b *Board) Stamp(x, y int, p *Pattern) error {
	if p.W == 0 || p.H == 0 {
		return nil
	}
	if !b.cur.In(x, y) {
		return outOfRange(x, y, b.cur.W, b.cur.H)
	}
	if ex, ey := x+p.W-1, y+p.H-1; !b.cur.In(ex, ey) {
		return outOfRange(ex, ey, b.cur.W, b.cur.H)
	}
	for py := 0; py < p.H; py++ {
		for px := 0; px < p.W; px++ {
			b.cur.Put(x+px, y+py, p.At(px, py))
		}
	}
	return nil
}

// BoardFromPattern returns a board exactly the size of p holding its cells.
func BoardFromPattern(p *Pattern) *Board {
	b := NewBoard(p.W, p.H)
	copy(b.cur.Cells(), p.cells)
	return b
}

var catalog = map[string]*Pattern{
	// A pulse entering from the left passes; one from the right is absorbed.
	"diode": MustParsePattern(`
.....##.....
tH####.####.
.....##.....
`),
	"reverse-diode": MustParsePattern(`
.....##.....
tH###.#####.
.....##.....
`),
	// Six-cell loop emitting one electron every six generations.
	"clock": MustParsePattern(`
.tH.......
#..#######
.##.......
`),
	"or-gate": MustParsePattern(`
tH###......
.....#####.
tH###......
`),
}

// Patterns returns the names of the built-in patterns in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPattern returns the built-in pattern with the given name.
func LookupPattern(name string) (*Pattern, bool) {
	p, ok := catalog[name]
	return p, ok
}
