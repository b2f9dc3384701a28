package pinchzoom

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawStats prints FPS, TPS, and the viewer's transform in the top-left
// corner using ebitenutil.DebugPrint.
func drawStats(screen *ebiten.Image, v Viewer) {
	t := v.Transform()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nscale: %.3f\ntranslate: %.1f, %.1f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), t.Scale, t.TranslateX, t.TranslateY))
}
