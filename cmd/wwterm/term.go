package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"wireworld/internal/app"
	"wireworld/internal/core"
	"wireworld/internal/ui"
)

// cellWidth is the number of terminal columns used per cell so cells look
// roughly square.
const cellWidth = 2

var runeActions = map[rune]app.Action{
	' ': app.ActionPause,
	'n': app.ActionStep,
	'r': app.ActionReset,
	's': app.ActionReseed,
	'c': app.ActionClear,
	'1': app.ActionPenWire,
	'2': app.ActionPenHead,
	'3': app.ActionPenTail,
	'4': app.ActionPenEmpty,
	'+': app.ActionFaster,
	'=': app.ActionFaster,
	'-': app.ActionSlower,
	'q': app.ActionQuit,
}

// keyAction maps a key press to a controller action.
func keyAction(ev *tcell.EventKey) app.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.ActionQuit
	case tcell.KeyTab:
		return app.ActionPenCycle
	case tcell.KeyRune:
		return runeActions[ev.Rune()]
	}
	return app.ActionNone
}

// terminal renders a simulation into a tcell screen and feeds input to a
// controller. All methods run on the goroutine that owns the simulation.
type terminal struct {
	screen tcell.Screen
	ctl    *app.Controller
	styles []tcell.Style
}

func newTerminal(screen tcell.Screen, ctl *app.Controller) *terminal {
	t := &terminal{screen: screen, ctl: ctl}
	palette := []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	if p, ok := ctl.Driver().Sim().(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	t.styles = make([]tcell.Style, len(palette))
	for i, c := range palette {
		t.styles[i] = cellStyle(c)
	}
	return t
}

func cellStyle(c color.RGBA) tcell.Style {
	bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	return tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(bg)
}

// handle processes one event and reports whether the program should exit.
func (t *terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.ctl.Apply(keyAction(ev))
	case *tcell.EventMouse:
		t.mouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func (t *terminal) mouse(ev *tcell.EventMouse) {
	mx, my := ev.Position()
	x, y, ok := ui.CellAt(mx/cellWidth, my, 1, t.ctl.Driver().Sim().Size())
	buttons := ev.Buttons()
	switch {
	case !ok:
		t.ctl.EndStroke()
	case buttons&tcell.Button1 != 0:
		_ = t.ctl.Paint(x, y)
	case buttons&tcell.Button2 != 0:
		_ = t.ctl.Erase(x, y)
	default:
		t.ctl.EndStroke()
	}
}

// draw paints the board followed by a status line.
func (t *terminal) draw() {
	sim := t.ctl.Driver().Sim()
	size := sim.Size()
	cells := sim.Cells()
	last := len(t.styles) - 1
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := min(int(cells[x+y*size.W]), last)
			for i := 0; i < cellWidth; i++ {
				t.screen.SetContent(x*cellWidth+i, y, ' ', nil, t.styles[idx])
			}
		}
	}
	t.drawLine(size.H, t.statusLine())
	t.screen.Show()
}

func (t *terminal) statusLine() string {
	line := ""
	for _, s := range t.ctl.Status() {
		line += s + "  "
	}
	if p, ok := t.ctl.Driver().Sim().(core.ParameterProvider); ok {
		snap := p.Parameters()
		for _, key := range []string{"generation", "heads", "tails", "wires"} {
			if param, ok := snap.Lookup(key); ok {
				line += fmt.Sprintf("%s %s  ", param.Key, param.Value)
			}
		}
	}
	return line
}

func (t *terminal) drawLine(y int, text string) {
	w, _ := t.screen.Size()
	style := tcell.StyleDefault
	x := 0
	for _, r := range text {
		if x >= w {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}
