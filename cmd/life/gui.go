//go:build ebiten

package main

import (
	"lifebuf/internal/app"
	"lifebuf/internal/config"
	"lifebuf/internal/core"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// inputTPS is the rate at which ebiten polls input; generations advance at
// the configured frame interval instead.
const inputTPS = 60

func runGUI(cfg config.Config, runner *app.Runner, logger *log.Logger) error {
	game := app.New(runner, cfg.Scale, core.NewFixedStep(cfg.FrameInterval), logger)
	size := runner.Sim().Size()

	ebiten.SetWindowTitle(cfg.Title + " - Esc to close")
	ebiten.SetTPS(inputTPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
