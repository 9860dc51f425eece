package main

import (
	"lifebuf/internal/app"
	"lifebuf/internal/config"
	"lifebuf/internal/core"
	"lifebuf/internal/life"
	"lifebuf/internal/render"
	"lifebuf/internal/seed"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// buildRunner wires the seed strategy, simulation and framebuffer, and seeds
// the first generation. Any failure here happens before a frame is shown.
func buildRunner(cfg config.Config, logger *log.Logger) (*app.Runner, error) {
	alive, err := render.ParseColor(cfg.Colors.Alive)
	if err != nil {
		return nil, err
	}
	dead, err := render.ParseColor(cfg.Colors.Dead)
	if err != nil {
		return nil, err
	}

	strategy, err := seed.New(cfg.Seed, logger)
	if err != nil {
		return nil, err
	}
	sim, err := life.New(core.Size{W: cfg.Width, H: cfg.Height}, strategy)
	if err != nil {
		return nil, errors.Wrap(err, "create board")
	}
	runner, err := app.NewRunner(sim, render.Palette{Alive: alive, Dead: dead}, logger)
	if err != nil {
		return nil, errors.Wrap(err, "create framebuffer")
	}
	if err := runner.Reset(); err != nil {
		return nil, err
	}
	return runner, nil
}
