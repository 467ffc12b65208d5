//go:build ebiten

package app

import (
	"image/color"

	"gol/internal/core"
	"gol/internal/render"
	"gol/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	sim     core.Sim
	painter *render.GridPainter
	palette []color.RGBA
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	if cfg == nil {
		cfg = NewConfig()
	}
	ctrl := NewController(sim, cfg)
	palette := render.BinaryPalette(color.White, color.Black)
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	labels := make([]string, len(MenuActions))
	for i, a := range MenuActions {
		labels[i] = a.String()
	}
	return &Game{
		ctrl:     ctrl,
		sim:      sim,
		painter:  render.NewGridPainter(sim.Size().W, sim.Size().H),
		palette:  palette,
		overlay:  ui.NewOverlay(labels),
		hud:      ui.NewHUD(newHUDSource(ctrl), cfg.HUDWidth),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
	}
}

// Controller exposes the interactive state driving the game.
func (g *Game) Controller() *Controller { return g.ctrl }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.ctrl.Quit() {
		return ebiten.Termination
	}
	if g.ctrl.Prompting() {
		g.updatePrompt()
		return nil
	}
	g.updateKeys()

	size := g.sim.Size()
	boardW, boardH := size.W*g.scale, size.H*g.scale
	if idx := g.overlay.Update(g.menuState(), boardW, boardH); idx >= 0 {
		g.ctrl.Execute(MenuActions[idx])
	} else if !g.ctrl.MenuOpen() {
		g.updateMouse()
	}
	g.hud.Update(boardW)
	g.hud.SetStatus(g.ctrl.Status())

	g.ctrl.Tick()
	if g.ctrl.Quit() {
		return ebiten.Termination
	}
	return nil
}

var keyActions = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyQ, ActionExit},
	{ebiten.KeyEscape, ActionMenu},
	{ebiten.KeySpace, ActionTogglePause},
	{ebiten.KeyEnter, ActionStart},
	{ebiten.KeyN, ActionStepOnce},
	{ebiten.KeyR, ActionReset},
	{ebiten.KeyC, ActionClear},
	{ebiten.KeyB, ActionToggleBoundary},
	{ebiten.KeySlash, ActionRules},
	{ebiten.KeyArrowUp, ActionSpeedUp},
	{ebiten.KeyArrowDown, ActionSpeedDown},
}

func (g *Game) updateKeys() {
	ctrlHeld := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrlHeld {
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			g.ctrl.Execute(ActionSave)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyO) {
			g.ctrl.Execute(ActionLoad)
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctrl.Execute(ActionReseed)
	}
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			g.ctrl.Execute(ka.action)
		}
	}
}

func (g *Game) updatePrompt() {
	g.ctrl.TypePrompt(ebiten.AppendInputChars(nil))
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.ctrl.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		// An invalid rule keeps the prompt open; the status line shows why.
		_ = g.ctrl.SubmitPrompt()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.CancelPrompt()
	}
	g.hud.SetStatus(g.ctrl.Status())
}

func (g *Game) updateMouse() {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ctrl.Release()
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y, ok := CellAt(mx, my, g.scale, g.sim.Size())
	if !ok {
		return
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctrl.PressCell(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ctrl.DragCell(x, y)
	}
}

func (g *Game) menuState() ui.MenuState {
	return ui.MenuState{
		Open:      g.ctrl.MenuOpen(),
		Prompting: g.ctrl.Prompting(),
		Prompt:    g.ctrl.Prompt(),
		Status:    g.ctrl.Status(),
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	state := g.menuState()
	if g.hudWidth > 0 {
		// The HUD panel carries the status line.
		state.Status = ""
	}
	g.overlay.Draw(screen, state)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
