// blackhole renders an animated, gravitationally lensed accretion disk
// around a Schwarzschild black hole as ASCII art in the terminal.
//
// Usage:
//
//	blackhole view               - Animate in the terminal
//	blackhole dump               - Write frames to a file
//	blackhole serve              - Serve the animation over SSH
//
// Global flags:
//
//	--config <path>       - Scene config YAML
//	--view <preset>       - Observer pose preset (classic, edge, high, tilted)
//	--inclination <deg>   - Observer inclination
//	--fov <deg>           - Horizontal field of view
//	--radius <M>          - Observer radius in units of M
//	--tilt <deg>          - Disk plane tilt
//	--width, --height     - Frame size (0 = terminal size)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blackhole/internal/config"
)

var (
	// Global flags
	flagConfig      string
	flagPreset      string
	flagInclination float64
	flagFOV         float64
	flagRadius      float64
	flagTilt        float64
	flagWidth       int
	flagHeight      int
	flagFPS         int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blackhole",
	Short: "Black hole - an accretion disk ray tracer for your terminal",
	Long: `blackhole traces light rays backward through the curved spacetime
around a Schwarzschild black hole and renders the lensed accretion disk as
animated ASCII art.

Available commands:
  view     - Animate the disk in the terminal
  dump     - Write rendered frames to a file
  serve    - Start an SSH server for remote viewing

Examples:
  blackhole view
  blackhole view --view tilted
  blackhole view --inclination 45 --fov 80
  blackhole dump --out frames.txt --frames 180
  blackhole serve --ssh :23235`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to scene config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "view", "", "Observer pose preset: classic, edge, high, tilted")
	rootCmd.PersistentFlags().Float64Var(&flagInclination, "inclination", 10, "Observer inclination in degrees")
	rootCmd.PersistentFlags().Float64Var(&flagFOV, "fov", 60, "Horizontal field of view in degrees")
	rootCmd.PersistentFlags().Float64Var(&flagRadius, "radius", 39, "Observer radius in units of M")
	rootCmd.PersistentFlags().Float64Var(&flagTilt, "tilt", 0, "Disk plane tilt in degrees")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Frame width in characters (0 = terminal width)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Frame height in characters (0 = terminal height)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Animation frames per second (0 = config value)")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadScene builds the scene configuration for a command: YAML (or embedded
// default), then the view preset, then explicit flag overrides, then
// terminal-size resolution, then validation.
func loadScene(cmd *cobra.Command, useTerminalSize bool) (config.Scene, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagPreset != "" {
		config.ApplyViewPreset(&cfg, config.ViewPreset(flagPreset))
	}

	// Explicit flags win over both the config file and the preset.
	flags := cmd.Flags()
	if flags.Changed("inclination") {
		cfg.Observer.InclinationDeg = flagInclination
	}
	if flags.Changed("fov") {
		cfg.Observer.FOVDeg = flagFOV
	}
	if flags.Changed("radius") {
		cfg.Observer.Radius = flagRadius
	}
	if flags.Changed("tilt") {
		cfg.Disk.TiltDeg = flagTilt
	}
	if flags.Changed("width") {
		cfg.Display.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Display.Height = flagHeight
	}
	if flags.Changed("fps") {
		cfg.Display.FPS = flagFPS
	}

	if useTerminalSize && (cfg.Display.Width == 0 || cfg.Display.Height == 0) {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			if cfg.Display.Width == 0 {
				cfg.Display.Width = w
			}
			if cfg.Display.Height == 0 {
				cfg.Display.Height = h - 1 // keep a row for the status line
			}
		}
	}
	if cfg.Display.Width == 0 || cfg.Display.Height == 0 {
		def := config.DefaultScene()
		if cfg.Display.Width == 0 {
			cfg.Display.Width = def.Display.Width
		}
		if cfg.Display.Height == 0 {
			cfg.Display.Height = def.Display.Height
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
