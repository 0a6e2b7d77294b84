package main

import (
	"os"

	"github.com/spf13/cobra"

	"life3d/internal/app"
	"life3d/internal/config"
	"life3d/internal/tui"
)

var (
	cfgFile string
	cfg     = config.Default()
)

func main() {
	root := &cobra.Command{
		Use:   "life3d",
		Short: "three-dimensional Game of Life with instanced cube rendering",
		RunE:  run,
	}

	fl := root.Flags()
	fl.StringVar(&cfgFile, "config", "", "YAML config file")
	fl.IntVar(&cfg.ArenaSize, "arena", cfg.ArenaSize, "arena edge length")
	fl.Float64Var(&cfg.CellSize, "cell-size", cfg.CellSize, "cell edge length in world units")
	fl.Float64Var(&cfg.TickInterval, "interval", cfg.TickInterval, "seconds per generation at speed 1")
	fl.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the initial soup")
	fl.Float64Var(&cfg.Density, "density", cfg.Density, "initial soup density in [0,1]")
	fl.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width")
	fl.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "window height")
	fl.IntVar(&cfg.FrameRate, "fps", cfg.FrameRate, "terminal frontend frame rate")
	fl.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run the terminal frontend instead of the window")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		mergeChangedFlags(cmd, loaded)
		cfg = loaded
	}
	cfg.Validate()

	if cfg.Headless {
		return tui.Run(cfg)
	}
	return app.Run(cfg)
}

// mergeChangedFlags copies every flag the user set explicitly over the
// values loaded from the config file, so flags beat the file and the
// file beats the defaults.
func mergeChangedFlags(cmd *cobra.Command, loaded *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("arena") {
		loaded.ArenaSize = cfg.ArenaSize
	}
	if fl.Changed("cell-size") {
		loaded.CellSize = cfg.CellSize
	}
	if fl.Changed("interval") {
		loaded.TickInterval = cfg.TickInterval
	}
	if fl.Changed("seed") {
		loaded.Seed = cfg.Seed
	}
	if fl.Changed("density") {
		loaded.Density = cfg.Density
	}
	if fl.Changed("width") {
		loaded.WindowWidth = cfg.WindowWidth
	}
	if fl.Changed("height") {
		loaded.WindowHeight = cfg.WindowHeight
	}
	if fl.Changed("fps") {
		loaded.FrameRate = cfg.FrameRate
	}
	if fl.Changed("headless") {
		loaded.Headless = cfg.Headless
	}
}
