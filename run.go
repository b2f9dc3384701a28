package pinchzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Viewer is a gesture-driven image view. PinchViewer and ZoomViewer
// implement it.
type Viewer interface {
	// Bind registers the viewer's recognizers and handlers on r.
	Bind(r *Router)
	// Update advances animations by dt seconds.
	Update(dt float32)
	Draw(screen *ebiten.Image)
	Transform() TransformState
	Committed() TransformState
	Settled() bool
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TPS overrides ebiten's ticks per second when positive.
	TPS        int
	ShowFPS    bool
	Debug      bool
	ClearColor Color
	// Pointers overrides the input source. Default: a new EbitenPointers.
	Pointers PointerSource
	// ScreenshotDir receives PNGs captured with F12. Default "screenshots".
	ScreenshotDir string
}

// Run opens a window and drives v until the window closes or Escape is
// pressed. Gesture recognition, handlers, and animations all run on
// ebiten's update tick; Draw only reads state.
func Run(v Viewer, cfg RunConfig) error {
	if cfg.Debug {
		SetDebugMode(true)
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	src := cfg.Pointers
	if src == nil {
		src = &EbitenPointers{}
	}
	r := NewRouter(src)
	v.Bind(r)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = defaultScreenshotDir
	}
	return ebiten.RunGame(&game{
		viewer: v,
		router: r,
		cfg:    cfg,
		shots:  screenshotQueue{dir: cfg.ScreenshotDir},
	})
}

type game struct {
	viewer Viewer
	router *Router
	cfg    RunConfig
	shots  screenshotQueue
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots.add(screenshotLabel(g.viewer.Transform()))
	}
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.router.Update(dt)
	g.viewer.Update(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	g.viewer.Draw(screen)
	if g.cfg.ShowFPS {
		drawStats(screen, g.viewer)
	}
	for _, path := range g.shots.flush(screen) {
		if debugEnabled {
			debugf("screenshot: wrote %s", path)
		}
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Replay drives v headlessly from src at a fixed dt: one frame per queued
// input frame, then up to tail extra frames until v settles. onFrame, if
// non-nil, runs after every frame. Returns the number of frames run.
func Replay(v Viewer, src *ScriptedPointers, dt float32, tail int, onFrame func(frame int)) int {
	r := NewRouter(src)
	v.Bind(r)

	frame := 0
	step := func() {
		r.Update(dt)
		v.Update(dt)
		frame++
		if onFrame != nil {
			onFrame(frame)
		}
	}
	for src.Pending() > 0 {
		step()
	}
	for i := 0; i < tail && !v.Settled(); i++ {
		step()
	}
	return frame
}
