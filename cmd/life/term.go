package main

import (
	"os"

	lifeterm "lifebuf/internal/term"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the simulation in the terminal",
	Long: `Render the board with half-block characters, two cells per row.
Boards larger than the terminal are cropped.

Controls:
  Space/P   - Pause/resume
  N         - Single step
  R         - Re-seed
  Q/Esc     - Quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cfg)
		runner, err := buildRunner(cfg, logger)
		if err != nil {
			return err
		}

		opts := lifeterm.Options{Interval: cfg.FrameInterval}
		if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
			opts.Cols, opts.Rows = w, h
		}
		// Anything below error level would draw over the alternate screen.
		logger.SetLevel(log.ErrorLevel)
		return lifeterm.Run(runner, opts)
	},
}
