package pinchzoom

import "github.com/hajimehoshi/ebiten/v2"

const (
	// DefaultZoomScale is the committed scale a double tap zooms to.
	DefaultZoomScale = 1.5
	// DefaultImageHeight is the fixed logical height of the zoom viewer's image.
	DefaultImageHeight = 500
)

// ZoomConfig configures a ZoomViewer. Zero fields take defaults.
type ZoomConfig struct {
	// ZoomScale is the double-tap zoom target. Default DefaultZoomScale.
	ZoomScale float64
	// DoubleTapCount is the tap count that toggles zoom. Default 2.
	DoubleTapCount int
	// Spring drives ZoomIn/ZoomOut settles. Default DefaultSpring.
	Spring SpringConfig
	// AllowShrink keeps a pinch that ends below natural size at its computed
	// scale. By default such a pinch springs back to exactly 1.
	AllowShrink bool
	// Recognizers configures the tap, pinch, and pan recognizers Bind adds.
	Recognizers RecognizerConfig
}

func (c ZoomConfig) withDefaults() ZoomConfig {
	if c.ZoomScale == 0 {
		c.ZoomScale = DefaultZoomScale
	}
	if c.DoubleTapCount == 0 {
		c.DoubleTapCount = 2
	}
	if c.Spring == (SpringConfig{}) {
		c.Spring = DefaultSpring
	}
	c.Recognizers.TapCount = c.DoubleTapCount
	return c
}

// ZoomViewer combines double-tap toggle zoom, pinch scaling, and pan
// dragging over one image.
//
// The rendered scale is base * pinch: base holds the committed (sprung) scale
// and pinch follows the live gesture ratio directly, so a gesture gets
// instant feedback and the settle animates only base. Translation is
// offset + live pan delta.
type ZoomViewer struct {
	cfg     ZoomConfig
	surface Surface

	base  *Channel
	pinch *Channel
	tx    *Channel
	ty    *Channel

	lastScale float64
	offset    Vec2
	zoomed    bool

	applied     TransformState
	appliedOnce bool
}

// NewZoomViewer creates an idle viewer drawing to surface, which may be nil.
func NewZoomViewer(surface Surface, cfg ZoomConfig) *ZoomViewer {
	return &ZoomViewer{
		cfg:       cfg.withDefaults(),
		surface:   surface,
		base:      NewChannel(1),
		pinch:     NewChannel(1),
		tx:        NewChannel(0),
		ty:        NewChannel(0),
		lastScale: 1,
	}
}

// Bind adds a tap, a pinch, and a pan recognizer to r and subscribes the
// viewer to them. Tap excludes both pinch and pan: a zoom toggle resets the
// pan baseline, so a drag must never commit across one. A drag that clears
// the dead zone cancels a tap still in progress. Pinch and pan run together.
func (v *ZoomViewer) Bind(r *Router) {
	tap := NewTapRecognizer(v.cfg.Recognizers)
	pinch := NewPinchRecognizer(v.cfg.Recognizers)
	pan := NewPanRecognizer(v.cfg.Recognizers)
	r.Add(tap, pinch, pan)
	r.Exclusive(tap, pinch)
	r.Exclusive(tap, pan)
	r.OnTap(v.HandleTap)
	r.OnPinch(v.HandlePinch)
	r.OnPan(v.HandlePan)
}

// ZoomIn springs to the zoom scale and clears the pan offset.
func (v *ZoomViewer) ZoomIn() {
	v.settle(v.cfg.ZoomScale, true)
}

// ZoomOut springs back to natural size and clears the pan offset.
func (v *ZoomViewer) ZoomOut() {
	v.settle(1, false)
}

func (v *ZoomViewer) settle(scale float64, zoomed bool) {
	v.lastScale = scale
	v.base.SpringTo(scale, v.cfg.Spring)
	v.pinch.SpringTo(1, v.cfg.Spring)
	v.resetOffset()
	v.zoomed = zoomed
	if debugEnabled {
		debugf("zoom: settle to %.2f (zoomed=%v)", scale, zoomed)
	}
}

// resetOffset re-baselines translation so the next pan starts from zero.
func (v *ZoomViewer) resetOffset() {
	v.offset = Vec2{}
	v.tx.SetOffset(0)
	v.tx.Set(0)
	v.ty.SetOffset(0)
	v.ty.Set(0)
}

// HandleTap toggles zoom on a recognized double tap.
func (v *ZoomViewer) HandleTap(ev TapEvent) {
	if ev.State != StateActive || ev.Count != v.cfg.DoubleTapCount {
		return
	}
	if v.zoomed {
		v.ZoomOut()
	} else {
		v.ZoomIn()
	}
}

// HandlePinch drives the live pinch channel while active and commits the
// final ratio when the gesture leaves Active.
func (v *ZoomViewer) HandlePinch(ev PinchEvent) {
	if ev.State == StateActive {
		v.pinch.Set(ev.Scale)
		return
	}
	if !ev.LeftActive() {
		return
	}

	v.lastScale *= ev.Scale
	switch {
	case v.lastScale > 1:
		v.zoomed = true
		// base already shows the final scale, so the live channel is absorbed
		// without animation to avoid counting the ratio twice.
		v.base.Set(v.lastScale)
		v.pinch.Set(1)
	case v.cfg.AllowShrink && v.lastScale > 0:
		v.zoomed = false
		v.base.Set(v.lastScale)
		v.pinch.Set(1)
	default:
		v.ZoomOut()
		return
	}
	if debugEnabled {
		debugf("zoom: pinch committed scale %.3f", v.lastScale)
	}
}

// HandlePan drives translation while active and folds the final delta into
// the offset when the gesture leaves Active.
func (v *ZoomViewer) HandlePan(ev PanEvent) {
	if ev.State == StateActive {
		v.tx.Set(ev.TranslationX)
		v.ty.Set(ev.TranslationY)
		return
	}
	if !ev.LeftActive() {
		return
	}
	v.offset.X += ev.TranslationX
	v.offset.Y += ev.TranslationY
	v.tx.SetOffset(v.offset.X)
	v.tx.Set(0)
	v.ty.SetOffset(v.offset.Y)
	v.ty.Set(0)
}

// Update advances settle animations by dt seconds and pushes the transform
// to the surface when it changed.
func (v *ZoomViewer) Update(dt float32) {
	v.base.Update(dt)
	v.pinch.Update(dt)
	v.tx.Update(dt)
	v.ty.Update(dt)

	t := v.Transform()
	if v.surface != nil && (!v.appliedOnce || t != v.applied) {
		v.surface.ApplyTransform(t.Ops())
		v.applied = t
		v.appliedOnce = true
	}
}

// Draw draws the surface if it can draw itself.
func (v *ZoomViewer) Draw(screen *ebiten.Image) {
	if ds, ok := v.surface.(DrawableSurface); ok {
		ds.Draw(screen)
	}
}

// Transform returns the transform currently on screen.
func (v *ZoomViewer) Transform() TransformState {
	return TransformState{
		Scale:      v.base.Value() * v.pinch.Value(),
		TranslateX: v.tx.Value(),
		TranslateY: v.ty.Value(),
	}
}

// Committed returns the state the viewer rests at once gestures and
// animations finish.
func (v *ZoomViewer) Committed() TransformState {
	return TransformState{Scale: v.lastScale, TranslateX: v.offset.X, TranslateY: v.offset.Y}
}

// Scale returns the committed scale.
func (v *ZoomViewer) Scale() float64 {
	return v.lastScale
}

// Offset returns the committed pan offset.
func (v *ZoomViewer) Offset() Vec2 {
	return v.offset
}

// Zoomed reports the zoom flag.
func (v *ZoomViewer) Zoomed() bool {
	return v.zoomed
}

// Settled reports whether no settle animation is running.
func (v *ZoomViewer) Settled() bool {
	return !v.base.Animating() && !v.pinch.Animating() && !v.tx.Animating() && !v.ty.Animating()
}
