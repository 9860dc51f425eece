//go:build ebiten

package app

import (
	"lifebuf/internal/core"
	"lifebuf/internal/render"
	"lifebuf/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Runner to the ebiten.Game interface. Input is polled at the
// engine's TPS while generations advance at the configured frame interval.
type Game struct {
	runner  *Runner
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FixedStep
	logger  *log.Logger

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided runner.
func New(runner *Runner, scale int, clock *core.FixedStep, logger *log.Logger) *Game {
	size := runner.Sim().Size()
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		runner:  runner,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(runner.Sim()),
		overlay: ui.NewOverlay(size, scale),
		clock:   clock,
		logger:  logger,
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.runner.Reset(); err != nil {
			g.logger.Error("reset failed", "err", err)
		}
		g.tickOnce = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	g.overlay.Update()
	g.hud.Update()

	// ebiten runs Update before the first Draw; hold the step until the
	// current generation has been drawn.
	if !g.runner.Presented() {
		return nil
	}
	if g.tickOnce {
		g.runner.Advance()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.clock.ShouldStep() {
		g.runner.Advance()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.runner.Framebuffer()
	g.painter.Blit(screen, g.runner.Frame(), fb.Width(), fb.Height(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.runner.Sim().Size()
	return s.W * g.scale, s.H * g.scale
}
