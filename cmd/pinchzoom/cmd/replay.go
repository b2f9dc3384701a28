package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/pinchzoom"
	"github.com/spf13/cobra"
)

var (
	replayTPS   int
	settleLimit int
	printAll    bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.json>",
	Short: "Replay a gesture script headlessly and print viewer state",
	Long: `Feed a JSON gesture script into the selected viewer without opening a
window, then print the on-screen and committed transform. With --all every
frame is printed.

Script format:
  {"steps": [
    {"action": "doubletap", "x": 200, "y": 250},
    {"action": "drag", "fromX": 200, "fromY": 250, "toX": 260, "toY": 250, "frames": 10},
    {"action": "pinch", "x": 200, "y": 250, "fromSpan": 100, "toSpan": 50, "frames": 20}
  ]}

Examples:
  pinchzoom replay script.json
  pinchzoom replay --viewer pinch --all script.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().IntVar(&replayTPS, "tps", 60, "simulated ticks per second")
	replayCmd.Flags().IntVar(&settleLimit, "settle", 600, "max frames to wait for animations after the script")
	replayCmd.Flags().BoolVarP(&printAll, "all", "a", false, "print every frame")
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	src, err := pinchzoom.LoadGestureScript(data)
	if err != nil {
		return err
	}
	if replayTPS <= 0 {
		return fmt.Errorf("--tps must be positive, got %d", replayTPS)
	}

	viewer, err := newViewer(nil, pinchzoom.Rect{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var onFrame func(int)
	if printAll {
		onFrame = func(frame int) { printState(out, fmt.Sprintf("frame %4d", frame), viewer) }
	}
	frames := pinchzoom.Replay(viewer, src, float32(1.0/float64(replayTPS)), settleLimit, onFrame)

	printState(out, fmt.Sprintf("final (%d frames)", frames), viewer)
	if !viewer.Settled() {
		fmt.Fprintf(out, "warning: still animating after %d settle frames\n", settleLimit)
	}
	return nil
}

func printState(w io.Writer, label string, v pinchzoom.Viewer) {
	t := v.Transform()
	c := v.Committed()
	fmt.Fprintf(w, "%s: scale=%.4f translate=(%.2f, %.2f) committed scale=%.4f offset=(%.2f, %.2f)\n",
		label, t.Scale, t.TranslateX, t.TranslateY, c.Scale, c.TranslateX, c.TranslateY)
}
