package cmd

import (
	"fmt"
	"os"

	"github.com/phanxgames/pinchzoom"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose     bool
	viewerKind  string
	allowShrink bool
)

var rootCmd = &cobra.Command{
	Use:   "pinchzoom",
	Short: "Pinch and double-tap zoom image viewers",
	Long: `Interactive pinch-to-zoom and double-tap-to-zoom image viewers.

Two viewers are available:
  pinch  scale follows a single pinch and eases back to 1 on release
  zoom   double tap toggles 1.5x, pinches commit, drags pan the image

Examples:
  pinchzoom view --viewer zoom photo.jpg      # Open a window on photo.jpg
  pinchzoom replay --viewer zoom script.json  # Print the state for each frame`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		pinchzoom.SetDebugMode(verbose)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log gesture transitions to stderr")
	rootCmd.PersistentFlags().StringVar(&viewerKind, "viewer", "zoom", "viewer to use: pinch or zoom")
	rootCmd.PersistentFlags().BoolVar(&allowShrink, "allow-shrink", false,
		"zoom viewer: keep pinches that end below natural size")
}

// newViewer builds the viewer selected by --viewer.
func newViewer(surface pinchzoom.Surface, bounds pinchzoom.Rect) (pinchzoom.Viewer, error) {
	switch viewerKind {
	case "pinch":
		return pinchzoom.NewPinchViewer(surface, pinchzoom.PinchConfig{Bounds: bounds}), nil
	case "zoom":
		return pinchzoom.NewZoomViewer(surface, pinchzoom.ZoomConfig{AllowShrink: allowShrink}), nil
	}
	return nil, fmt.Errorf("unknown viewer %q (want pinch or zoom)", viewerKind)
}
