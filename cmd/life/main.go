// life runs Conway's Game of Life on a software framebuffer.
//
// Usage:
//
//	life run              - Open a window (requires the ebiten build tag)
//	life term             - Render in the terminal
//	life snapshot         - Write generations to BMP files
//	life patterns         - List seed strategies and built-in patterns
//
// Global flags:
//
//	--config <path>       - YAML configuration file
//	--width, --height     - Grid size in cells
//	--interval <dur>      - Time between generations (e.g. 100ms)
//	--seed <strategy>     - pattern, image or random
//	--pattern <name>      - Built-in pattern for the pattern strategy
//	--image <path>        - Raster file for the image strategy
//	--fallback <strategy> - Strategy to use if the primary one fails
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"lifebuf/internal/config"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagScale    int
	flagInterval time.Duration
	flagSeed     string
	flagPattern  string
	flagImage    string
	flagFallback string
	flagRandSeed int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life on a software framebuffer",
	Long: `life runs Conway's Game of Life (B3/S23) on a bounded grid and presents
each generation as a packed pixel frame.

Examples:
  life run --seed image --image glider.png --fallback pattern
  life term --pattern rpentomino --width 120 --height 60
  life snapshot --generations 50 --every 10 --out frames/`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	pf.IntVar(&flagWidth, "width", 0, "Grid width in cells")
	pf.IntVar(&flagHeight, "height", 0, "Grid height in cells")
	pf.IntVar(&flagScale, "scale", 0, "Pixels per cell in the window and in exported bitmaps")
	pf.DurationVar(&flagInterval, "interval", 0, "Time between generations")
	pf.StringVar(&flagSeed, "seed", "", "Seed strategy: pattern, image or random")
	pf.StringVar(&flagPattern, "pattern", "", "Built-in pattern name")
	pf.StringVar(&flagImage, "image", "", "Image file for the image seed")
	pf.StringVar(&flagFallback, "fallback", "", "Seed strategy used when the primary one fails")
	pf.Int64Var(&flagRandSeed, "rand-seed", 0, "RNG seed for the random strategy")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(patternsCmd)
}

// loadConfig reads the configuration file and applies explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Height = flagHeight
	}
	if flags.Changed("scale") {
		cfg.Scale = flagScale
	}
	if flags.Changed("interval") {
		cfg.FrameInterval = flagInterval
	}
	if flags.Changed("seed") {
		cfg.Seed.Strategy = flagSeed
	}
	if flags.Changed("pattern") {
		cfg.Seed.Pattern = flagPattern
		cfg.Seed.Cells = nil
	}
	if flags.Changed("image") {
		cfg.Seed.Image = flagImage
	}
	if flags.Changed("fallback") {
		cfg.Seed.Fallback = flagFallback
	}
	if flags.Changed("rand-seed") {
		cfg.Seed.Random.Seed = flagRandSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lifebuf",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
