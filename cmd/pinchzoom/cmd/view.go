package cmd

import (
	"fmt"

	"github.com/phanxgames/pinchzoom"
	"github.com/spf13/cobra"
)

var (
	windowWidth  int
	windowHeight int
	imageHeight  int
	tps          int
	showFPS      bool
)

var viewCmd = &cobra.Command{
	Use:   "view <image>",
	Short: "Open a viewer window on a local image",
	Long: `Open a window showing a local image (path or file:// URI) in the
selected viewer. Use two fingers to pinch, drag to pan, and double tap to
toggle zoom. Press Escape to quit.

Examples:
  pinchzoom view photo.jpg
  pinchzoom view --viewer pinch --fps file:///home/me/photo.png`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().IntVar(&windowWidth, "width", 640, "window width")
	viewCmd.Flags().IntVar(&windowHeight, "height", 640, "window height")
	viewCmd.Flags().IntVar(&imageHeight, "image-height", pinchzoom.DefaultImageHeight,
		"zoom viewer: fixed logical image height")
	viewCmd.Flags().IntVar(&tps, "tps", 0, "ticks per second (0 keeps ebiten's default)")
	viewCmd.Flags().BoolVar(&showFPS, "fps", false, "show FPS and the current transform")
}

func runView(cmd *cobra.Command, args []string) error {
	bounds := pinchzoom.Rect{Width: float64(windowWidth), Height: float64(windowHeight)}
	if viewerKind == "zoom" {
		bounds.Height = float64(imageHeight)
	}

	surface := pinchzoom.NewImageSurface(bounds)
	if err := surface.SetSource(args[0]); err != nil {
		return fmt.Errorf("open image: %w", err)
	}

	viewer, err := newViewer(surface, bounds)
	if err != nil {
		return err
	}

	return pinchzoom.Run(viewer, pinchzoom.RunConfig{
		Title:      "pinchzoom - " + viewerKind,
		Width:      windowWidth,
		Height:     windowHeight,
		TPS:        tps,
		ShowFPS:    showFPS,
		Debug:      verbose,
		ClearColor: pinchzoom.Color{R: 0.1, G: 0.1, B: 0.12, A: 1},
	})
}
