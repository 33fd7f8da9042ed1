package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blackhole/internal/platform/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Animate the lensed disk in the terminal",
	Long: `Trace the lens map once and animate the rotating hotspot and the
twinkling starfield in the terminal.

Controls:
  P/Space    - Pause
  Ctrl+S     - Save a screenshot to ~/.blackhole/screenshots
  Q/Ctrl+C   - Quit

View presets:
  classic - Near-edge-on view, 10 degrees inclination
  edge    - Skim the disk plane at 2 degrees
  high    - Look down at the disk from 70 degrees
  tilted  - Classic pose with the disk plane tilted 25 degrees

Examples:
  blackhole view
  blackhole view --view high
  blackhole view --inclination 30 --fov 90 --radius 60`,
	Run: runView,
}

func runView(cmd *cobra.Command, _ []string) {
	cfg, err := loadScene(cmd, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running animation: %v\n", err)
		os.Exit(1)
	}
}
