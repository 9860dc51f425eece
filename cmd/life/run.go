package main

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and run the simulation",
	Long: `Open a window showing the board magnified by --scale.

Controls:
  Space   - Pause/resume
  N       - Single step
  R       - Re-seed
  G       - Toggle grid lines
  H       - Toggle the info panel
  Q/Esc   - Quit`,
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
		return runGUI(cfg, runner, logger)
	},
}
