// Package pinchzoom provides pinch-to-zoom and double-tap-to-zoom image
// viewers for [Ebitengine].
//
// Two viewers are provided:
//
//   - [PinchViewer] follows a single pinch: the image scales with the
//     fingers, a marker tracks the focal point, and the scale eases back to
//     1 when the fingers lift.
//   - [ZoomViewer] toggles between natural size and [DefaultZoomScale] on a
//     double tap, keeps the scale a pinch leaves it at, and lets the zoomed
//     image be dragged around.
//
// # Quick start
//
//	surface := pinchzoom.NewImageSurface(pinchzoom.Rect{Width: 640, Height: pinchzoom.DefaultImageHeight})
//	if err := surface.SetSource("photo.jpg"); err != nil {
//		log.Fatal(err)
//	}
//	viewer := pinchzoom.NewZoomViewer(surface, pinchzoom.ZoomConfig{})
//	if err := pinchzoom.Run(viewer, pinchzoom.RunConfig{
//		Title: "Zoom", Width: 640, Height: 500,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// # Gestures
//
// Raw pointers come from a [PointerSource]: [EbitenPointers] for real mouse
// and touch input, [ScriptedPointers] for tests and replays. A [Router] feeds
// them to recognizers ([PinchRecognizer], [PanRecognizer], [TapRecognizer])
// in priority order. Recognizers in an exclusive group never run at the same
// time. Events carry the recognizer's new and previous [GestureState], so a
// handler sees the end of a gesture as a transition out of [StateActive].
//
// # Transforms
//
// Viewers render a [TransformState] as the ordered list scale, translateX,
// translateY, applied about the center of the view. Translation is in
// pre-scale units, so a point p lands at c + s*(p - c + t). Settles are
// driven by [Channel] values: springs for zoom toggles ([DefaultSpring]) and
// [gween] tweens for the pinch viewer's timed return.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package pinchzoom
