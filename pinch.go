package pinchzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

// defaultMarkerRadius matches a 20x20 round marker.
const defaultMarkerRadius = 10

// PinchConfig configures a PinchViewer. Zero fields take defaults.
type PinchConfig struct {
	// Bounds is the screen-space box of the view; focal points are reported
	// relative to its top-left corner.
	Bounds Rect
	// SettleDuration and SettleEase shape the return to scale 1.
	// Defaults DefaultTimingDuration and DefaultTimingEase.
	SettleDuration float32
	SettleEase     ease.TweenFunc
	// MarkerRadius and MarkerColor style the focal marker.
	MarkerRadius float64
	MarkerColor  Color
	// HideMarker suppresses the focal marker.
	HideMarker  bool
	Recognizers RecognizerConfig
}

func (c PinchConfig) withDefaults() PinchConfig {
	if c.SettleDuration == 0 {
		c.SettleDuration = DefaultTimingDuration
	}
	if c.SettleEase == nil {
		c.SettleEase = DefaultTimingEase
	}
	if c.MarkerRadius == 0 {
		c.MarkerRadius = defaultMarkerRadius
	}
	if c.MarkerColor == (Color{}) {
		c.MarkerColor = ColorFocalMarker
	}
	return c
}

// PinchViewer shows a single pinch: scale follows the gesture while it is
// active and eases back to 1 when it ends. Nothing persists between gestures.
type PinchViewer struct {
	cfg     PinchConfig
	surface Surface

	scale *Channel
	focal Vec2

	applied     float64
	appliedOnce bool
}

// NewPinchViewer creates a viewer drawing to surface, which may be nil.
func NewPinchViewer(surface Surface, cfg PinchConfig) *PinchViewer {
	return &PinchViewer{
		cfg:     cfg.withDefaults(),
		surface: surface,
		scale:   NewChannel(1),
	}
}

// Bind adds a pinch recognizer to r and subscribes the viewer to it.
func (v *PinchViewer) Bind(r *Router) {
	r.Add(NewPinchRecognizer(v.cfg.Recognizers))
	r.OnPinch(v.HandlePinch)
}

// HandlePinch applies one pinch event.
func (v *PinchViewer) HandlePinch(ev PinchEvent) {
	if ev.State == StateActive {
		v.scale.Set(ev.Scale)
		v.focal = Vec2{X: ev.FocalX - v.cfg.Bounds.X, Y: ev.FocalY - v.cfg.Bounds.Y}
		return
	}
	if ev.LeftActive() {
		v.scale.TimeTo(1, v.cfg.SettleDuration, v.cfg.SettleEase)
		if debugEnabled {
			debugf("pinch: settle from %.3f", v.scale.Raw())
		}
	}
}

// Update advances the settle animation by dt seconds and pushes the
// transform to the surface when it changed.
func (v *PinchViewer) Update(dt float32) {
	v.scale.Update(dt)
	s := v.scale.Value()
	if v.surface != nil && (!v.appliedOnce || s != v.applied) {
		v.surface.ApplyTransform(v.Transform().Ops())
		v.applied = s
		v.appliedOnce = true
	}
}

// Draw draws the surface and the focal marker.
func (v *PinchViewer) Draw(screen *ebiten.Image) {
	if ds, ok := v.surface.(DrawableSurface); ok {
		ds.Draw(screen)
	}
	if v.cfg.HideMarker {
		return
	}
	r := v.cfg.MarkerRadius
	cx := v.cfg.Bounds.X + v.focal.X + r
	cy := v.cfg.Bounds.Y + v.focal.Y + r
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), v.cfg.MarkerColor.toRGBA(), true)
}

// Transform returns the transform currently on screen.
func (v *PinchViewer) Transform() TransformState {
	return TransformState{Scale: v.scale.Value()}
}

// Committed returns the scale the viewer will rest at.
func (v *PinchViewer) Committed() TransformState {
	return TransformState{Scale: v.scale.Target()}
}

// Focal returns the last reported focal point, relative to Bounds.
func (v *PinchViewer) Focal() Vec2 {
	return v.focal
}

// Settled reports whether no settle animation is running.
func (v *PinchViewer) Settled() bool {
	return !v.scale.Animating()
}
