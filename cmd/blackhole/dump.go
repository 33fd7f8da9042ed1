package main

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blackhole/internal/render"
	"github.com/vovakirdan/tui-blackhole/internal/scene"
)

var (
	flagDumpOut    string
	flagDumpFrames int
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write rendered frames to a file",
	Long: `Trace the lens map once, then render the given number of animation
frames into a file. Rows are newline-terminated; frames are separated by a
form-feed character, so the dump can be replayed or diffed frame by frame.

Examples:
  blackhole dump --out frames.txt --frames 180
  blackhole dump --out still.txt --frames 1 --view tilted`,
	Run: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&flagDumpOut, "out", "frames.txt", "Output file path")
	dumpCmd.Flags().IntVar(&flagDumpFrames, "frames", 180, "Number of frames to render")
}

func runDump(cmd *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "blackhole"})

	cfg, err := loadScene(cmd, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDumpFrames < 1 {
		fmt.Fprintln(os.Stderr, "Error: --frames must be at least 1")
		os.Exit(1)
	}

	sc := scene.FromConfig(cfg)
	comp := render.NewCompositor(render.Trace(sc))
	frame := render.NewFrame(sc.Width, sc.Height)

	f, err := os.Create(flagDumpOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	phase := 0.0
	for i := 0; i < flagDumpFrames; i++ {
		comp.Render(phase, frame)
		for y := 0; y < frame.Height(); y++ {
			w.WriteString(frame.Row(y))
			w.WriteByte('\n')
		}
		if i != flagDumpFrames-1 {
			w.WriteByte('\f')
		}
		phase += render.PhaseStep
		if phase > 2*math.Pi {
			phase -= 2 * math.Pi
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("dumped frames",
		"frames", flagDumpFrames,
		"path", flagDumpOut,
		"size", fmt.Sprintf("%dx%d", sc.Width, sc.Height),
	)
}
