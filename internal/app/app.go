//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wireworld/internal/core"
	"wireworld/internal/driver"
	"wireworld/internal/render"
	"wireworld/internal/ui"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 220

var background = color.RGBA{A: 255}

var keyActions = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeySpace, ActionPause},
	{ebiten.KeyN, ActionStep},
	{ebiten.KeyR, ActionReset},
	{ebiten.KeyS, ActionReseed},
	{ebiten.KeyC, ActionClear},
	{ebiten.KeyDigit1, ActionPenWire},
	{ebiten.KeyDigit2, ActionPenHead},
	{ebiten.KeyDigit3, ActionPenTail},
	{ebiten.KeyDigit4, ActionPenEmpty},
	{ebiten.KeyTab, ActionPenCycle},
	{ebiten.KeyEqual, ActionFaster},
	{ebiten.KeyKPAdd, ActionFaster},
	{ebiten.KeyMinus, ActionSlower},
	{ebiten.KeyKPSubtract, ActionSlower},
	{ebiten.KeyQ, ActionQuit},
	{ebiten.KeyEscape, ActionQuit},
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA

	scale int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	gap := 0
	if cfg.Scale >= 4 {
		gap = 1
	}
	ctl := NewController(driver.New(sim, cfg.TPS, cfg.Paused), cfg.Seed)
	g := &Game{
		ctl:     ctl,
		painter: render.NewGridPainter(size.W, size.H, cfg.Scale, gap),
		overlay: ui.NewOverlay(sim, cfg.Scale, ctl.Pen()),
		hud:     ui.NewHUD(sim, HUDWidth),
		palette: []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		scale:   cfg.Scale,
	}
	if p, ok := sim.(core.PaletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Controller exposes the command layer driving the game.
func (g *Game) Controller() *Controller { return g.ctl }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) && g.ctl.Apply(ka.action) {
			return ebiten.Termination
		}
	}

	g.overlay.Update()
	g.hud.SetStatus(g.ctl.Status()...)
	size := g.ctl.Driver().Sim().Size()
	inPanel := g.hud.Update(size.W * g.scale)

	x, y, onBoard := g.overlay.Cursor()
	switch {
	case inPanel || !onBoard:
		g.ctl.EndStroke()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		_ = g.ctl.Paint(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		_ = g.ctl.Erase(x, y)
	default:
		g.ctl.EndStroke()
	}

	g.ctl.Driver().Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	sim := g.ctl.Driver().Sim()
	g.painter.Blit(screen, sim.Cells(), g.palette, background)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.Driver().Sim().Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
