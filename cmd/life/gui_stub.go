//go:build !ebiten

package main

import (
	"lifebuf/internal/app"
	"lifebuf/internal/config"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

func runGUI(config.Config, *app.Runner, *log.Logger) error {
	return errors.New("the window build requires the ebiten build tag; " +
		"re-run with `go run -tags ebiten ./cmd/life run` or use `life term`")
}
