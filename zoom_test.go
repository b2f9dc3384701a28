package pinchzoom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func doubleTap() TapEvent {
	return TapEvent{Transition: Transition{State: StateActive, OldState: StateBegan}, Count: 2}
}

func activePan(x, y float64) PanEvent {
	return PanEvent{Transition: Transition{State: StateActive, OldState: StateActive}, TranslationX: x, TranslationY: y}
}

func endPan(x, y float64) PanEvent {
	return PanEvent{Transition: Transition{State: StateEnded, OldState: StateActive}, TranslationX: x, TranslationY: y}
}

// pinchTo runs a complete pinch with the given final ratio.
func pinchTo(v *ZoomViewer, ratio float64) {
	v.HandlePinch(activePinch(ratio))
	v.HandlePinch(endPinch(ratio))
}

func TestZoomViewerIdle(t *testing.T) {
	v := NewZoomViewer(nil, ZoomConfig{})
	if got := v.Transform(); got != IdentityState {
		t.Errorf("Transform = %+v, want identity", got)
	}
	if got := v.Committed(); got != IdentityState {
		t.Errorf("Committed = %+v, want identity", got)
	}
	if v.Zoomed() {
		t.Error("idle viewer should not be zoomed")
	}
	if !v.Settled() {
		t.Error("idle viewer should be settled")
	}
}

func TestZoomViewerDoubleTapToggles(t *testing.T) {
	v := NewZoomViewer(nil, ZoomConfig{})

	v.HandleTap(doubleTap())
	if !v.Zoomed() || v.Scale() != DefaultZoomScale {
		t.Fatalf("after first double tap: zoomed=%v scale=%v", v.Zoomed(), v.Scale())
	}
	if v.Settled() {
		t.Error("zoom in should animate")
	}
	settle(v)
	if got := v.Transform().Scale; got != DefaultZoomScale {
		t.Errorf("settled scale = %v, want exactly %v", got, DefaultZoomScale)
	}

	v.HandleTap(doubleTap())
	if v.Zoomed() || v.Scale() != 1 {
		t.Fatalf("after second double tap: zoomed=%v scale=%v", v.Zoomed(), v.Scale())
	}
	settle(v)
	if got := v.Transform().Scale; got != 1 {
		t.Errorf("settled scale = %v, want exactly 1", got)
	}
}

func TestZoomViewerSpringOvershoots(t *testing.T) {
	v := NewZoomViewer(nil, ZoomConfig{})
	v.ZoomIn()
	peak := 0.0
	for !v.Settled() {
		v.Update(frameDT)
		peak = max(peak, v.Transform().Scale)
	}
	if peak <= DefaultZoomScale {
		t.Errorf("peak = %v, want the default spring to overshoot %v", peak, DefaultZoomScale)
	}
}

func TestZoomViewerIgnoresOtherTaps(t *testing.T) {
	tests := []struct {
		name string
		ev   TapEvent
	}{
		{"began", TapEvent{Transition: Transition{State: StateBegan, OldState: StateUndetermined}, Count: 2}},
		{"ended", TapEvent{Transition: Transition{State: StateEnded, OldState: StateActive}, Count: 2}},
		{"single tap", TapEvent{Transition: Transition{State: StateActive, OldState: StateBegan}, Count: 1}},
		{"failed", TapEvent{Transition: Transition{State: StateFailed, OldState: StateBegan}, Count: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewZoomViewer(nil, ZoomConfig{})
			v.HandleTap(tt.ev)
			if v.Zoomed() || !v.Settled() {
				t.Errorf("zoomed=%v settled=%v, want untouched", v.Zoomed(), v.Settled())
			}
		})
	}
}

func TestZoomViewerCustomZoomScale(t *testing.T) {
	v := NewZoomViewer(nil, ZoomConfig{ZoomScale: 3, DoubleTapCount: 3})
	v.HandleTap(doubleTap())
	if v.Zoomed() {
		t.Error("two taps should not toggle a triple-tap viewer")
	}
	v.HandleTap(TapEvent{Transition: Transition{State: StateActive, OldState: StateBegan}, Count: 3})
	if !v.Zoomed() || v.Scale() != 3 {
		t.Errorf("zoomed=%v scale=%v, want zoomed at 3", v.Zoomed(), v.Scale())
	}
}

func TestZoomViewerZoomInIdempotent(t *testing.T) {
	v := NewZoomViewer(nil, ZoomConfig{})
	v.ZoomIn()
	settle(v)
	v.ZoomIn()
	settle(v)
	if !v.Zoomed() || v.Transform().Scale != DefaultZoomScale {
		t.Errorf("zoomed=%v scale=%v, want zoomed at %v", v.Zoomed(), v.Transform().Scale, DefaultZoomScale)
	}
}

func TestZoomViewerZoomResetsOffset(t *testing.T) {
	v := NewZoomViewer(nil, ZoomConfig{})
	v.HandlePan(activePan(10, 5))
	v.HandlePan(endPan(10, 5))
	if diff := cmp.Diff(Vec2{X: 10, Y: 5}, v.Offset()); diff != "" {
		t.Fatalf("Offset mismatch (-want +got):\n%s", diff)
	}

	v.ZoomIn()
	if v.Offset() != (Vec2{}) {
		t.Errorf("Offset = %+v after zoom, want zero", v.Offset())
	}
	tr := v.Transform()
	if tr.TranslateX != 0 || tr.TranslateY != 0 {
		t.Errorf("translation = (%v, %v) after zoom, want (0, 0)", tr.TranslateX, tr.TranslateY)
	}
}

func TestZoomViewerPinchComposition(t *testing.T) {
	tests := []struct {
		name       string
		zoomFirst  bool
		ratios     []float64
		wantScale  float64
		wantZoomed bool
	}{
		{"enlarge", false, []float64{2}, 2, true},
		{"shrink floors at one", false, []float64{0.5}, 1, false},
		{"from double tap", true, []float64{2}, 3, true},
		{"compounding", false, []float64{2, 0.75}, 1.5, true},
		{"back to natural", false, []float64{2, 0.5}, 1, false},
		{"below natural", false, []float64{2, 0.4}, 1, false},
		{"no change", false, []float64{1}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewZoomViewer(nil, ZoomConfig{})
			if tt.zoomFirst {
				v.ZoomIn()
				settle(v)
			}
			for _, r := range tt.ratios {
				pinchTo(v, r)
				settle(v)
			}
			assertNear(t, "committed scale", v.Scale(), tt.wantScale)
			assertNear(t, "rendered scale", v.Transform().Scale, tt.wantScale)
			if v.Zoomed() != tt.wantZoomed {
				t.Errorf("Zoomed = %v, want %v", v.Zoomed(), tt.wantZoomed)
			}
		})
	}
}

func TestZoomViewerPinchEnlargeCommitsWithoutAnimation(t *testing.T) {
	v := NewZoomViewer(nil, ZoomConfig{})
	v.HandlePinch(activePinch(2))
	if got := v.Transform().Scale; got != 2 {
		t.Errorf("live scale = %v, want 2", got)
	}
	v.HandlePinch(endPinch(2))
	if got := v.Transform().Scale; got != 2 {
		t.Errorf("scale after end = %v, want 2", got)
	}
	if !v.Settled() {
		t.Error("an enlarging pinch should commit without a settle")
	}
}

func TestZoomViewerPinchShrinkSpringsBack(t *testing.T) {
	v := NewZoomViewer(nil, ZoomConfig{})
	v.HandlePinch(activePinch(0.5))
	if got := v.Transform().Scale; got != 0.5 {
		t.Errorf("live scale = %v, want 0.5 (not clamped while active)", got)
	}
	v.HandlePinch(endPinch(0.5))
	if v.Settled() {
		t.Error("a shrinking pinch should spring back")
	}
	settle(v)
	if got := v.Transform().Scale; got != 1 {
		t.Errorf("settled scale = %v, want exactly 1", got)
	}
}

func TestZoomViewerLiveScaleIsMultiplicative(t *testing.T) {
	v := NewZoomViewer(nil, ZoomConfig{})
	v.ZoomIn()
	settle(v)
	v.HandlePinch(activePinch(2))
	assertNear(t, "live scale", v.Transform().Scale, 3)
}

func TestZoomViewerPanAccumulates(t *testing.T) {
	v := NewZoomViewer(nil, ZoomConfig{})
	v.HandlePan(activePan(10, 5))
	v.HandlePan(endPan(10, 5))

	v.HandlePan(activePan(5, 8))
	tr := v.Transform()
	if tr.TranslateX != 15 || tr.TranslateY != 13 {
		t.Errorf("live translation = (%v, %v), want (15, 13)", tr.TranslateX, tr.TranslateY)
	}
	v.HandlePan(endPan(5, 8))

	want := TransformState{Scale: 1, TranslateX: 15, TranslateY: 13}
	if diff := cmp.Diff(want, v.Committed()); diff != "" {
		t.Errorf("Committed mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, v.Transform()); diff != "" {
		t.Errorf("Transform mismatch (-want +got):\n%s", diff)
	}
}

func TestZoomViewerIgnoresOtherTransitions(t *testing.T) {
	v := NewZoomViewer(nil, ZoomConfig{})
	v.HandlePinch(PinchEvent{Transition: Transition{State: StateBegan, OldState: StateUndetermined}, Scale: 2})
	v.HandlePinch(PinchEvent{Transition: Transition{State: StateFailed, OldState: StateBegan}, Scale: 2})
	v.HandlePan(PanEvent{Transition: Transition{State: StateBegan, OldState: StateUndetermined}, TranslationX: 9})
	v.HandlePan(PanEvent{Transition: Transition{State: StateFailed, OldState: StateBegan}, TranslationX: 9})

	if got := v.Committed(); got != IdentityState {
		t.Errorf("Committed = %+v, want identity", got)
	}
	if got := v.Transform(); got != IdentityState {
		t.Errorf("Transform = %+v, want identity", got)
	}
}

func TestZoomViewerAllowShrink(t *testing.T) {
	v := NewZoomViewer(nil, ZoomConfig{AllowShrink: true})
	pinchTo(v, 0.5)
	if v.Zoomed() {
		t.Error("a shrunk image is not zoomed")
	}
	if got := v.Scale(); got != 0.5 {
		t.Errorf("Scale = %v, want 0.5", got)
	}
	if got := v.Transform().Scale; got != 0.5 || !v.Settled() {
		t.Errorf("scale = %v settled=%v, want 0.5 without animation", got, v.Settled())
	}

	v.HandleTap(doubleTap())
	settle(v)
	assertNear(t, "scale after double tap", v.Transform().Scale, DefaultZoomScale)
}

func TestZoomViewerPushesCommittedOps(t *testing.T) {
	surf := &recordingSurface{}
	v := NewZoomViewer(surf, ZoomConfig{})
	v.ZoomIn()
	settle(v)

	if len(surf.ops) < 2 {
		t.Fatalf("got %d pushes, want the animation to push each frame", len(surf.ops))
	}
	if diff := cmp.Diff(v.Committed().Ops(), surf.last()); diff != "" {
		t.Errorf("final ops mismatch (-want +got):\n%s", diff)
	}

	n := len(surf.ops)
	v.Update(frameDT)
	if len(surf.ops) != n {
		t.Error("an unchanged transform should not be pushed again")
	}
}

func TestZoomViewerReplay(t *testing.T) {
	tests := []struct {
		name   string
		script func(s *ScriptedPointers)
		want   TransformState
		zoomed bool
	}{
		{
			name:   "double tap",
			script: func(s *ScriptedPointers) { s.DoubleTap(1, 200, 250) },
			want:   TransformState{Scale: DefaultZoomScale},
			zoomed: true,
		},
		{
			name:   "double tap twice",
			script: func(s *ScriptedPointers) { s.DoubleTap(1, 200, 250); s.Wait(30); s.DoubleTap(1, 200, 250) },
			want:   IdentityState,
		},
		{
			name:   "pinch out",
			script: func(s *ScriptedPointers) { s.Pinch(200, 250, 100, 200, 12) },
			want:   TransformState{Scale: 2},
			zoomed: true,
		},
		{
			name:   "pinch in",
			script: func(s *ScriptedPointers) { s.Pinch(200, 250, 200, 100, 12) },
			want:   IdentityState,
		},
		{
			name: "zoom then drag",
			script: func(s *ScriptedPointers) {
				s.DoubleTap(1, 200, 250)
				s.Wait(60)
				s.Drag(1, 100, 100, 160, 130, 8)
			},
			want:   TransformState{Scale: DefaultZoomScale, TranslateX: 60, TranslateY: 30},
			zoomed: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewScriptedPointers()
			tt.script(src)
			surf := &recordingSurface{}
			v := NewZoomViewer(surf, ZoomConfig{})
			Replay(v, src, frameDT, 600, nil)

			if !v.Settled() {
				t.Fatal("viewer did not settle")
			}
			if diff := cmp.Diff(tt.want, v.Committed()); diff != "" {
				t.Errorf("Committed mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.want, v.Transform()); diff != "" {
				t.Errorf("Transform mismatch (-want +got):\n%s", diff)
			}
			if v.Zoomed() != tt.zoomed {
				t.Errorf("Zoomed = %v, want %v", v.Zoomed(), tt.zoomed)
			}
			if diff := cmp.Diff(tt.want.Ops(), surf.last()); diff != "" {
				t.Errorf("surface ops mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestZoomViewerDragRightAfterTap(t *testing.T) {
	src := NewScriptedPointers()
	src.Tap(1, 100, 100)
	src.Drag(1, 100, 100, 160, 100, 8)

	v := NewZoomViewer(nil, ZoomConfig{})
	Replay(v, src, frameDT, 600, nil)

	if v.Zoomed() {
		t.Error("a tap followed by a drag is not a double tap")
	}
	if diff := cmp.Diff(Vec2{X: 60}, v.Offset()); diff != "" {
		t.Errorf("Offset mismatch (-want +got):\n%s", diff)
	}
}

func TestZoomViewerJitteredSecondTap(t *testing.T) {
	tests := []struct {
		name       string
		jitter     []float64 // x positions of the second press after landing at 200
		wantZoomed bool
		wantOffset Vec2
	}{
		// Inside the drag dead zone: still a double tap.
		{"within dead zone", []float64{202, 203}, true, Vec2{}},
		// Past the dead zone but inside tap slop: the drag wins and the
		// tap is cancelled, so nothing resets under it.
		{"past dead zone", []float64{203, 206}, false, Vec2{X: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewScriptedPointers()
			src.Tap(1, 200, 100)
			src.Wait(1)
			src.Press(1, 200, 100)
			for _, x := range tt.jitter {
				src.Move(1, x, 100)
			}
			src.Release(1)

			v := NewZoomViewer(nil, ZoomConfig{})
			Replay(v, src, frameDT, 600, nil)

			if v.Zoomed() != tt.wantZoomed {
				t.Errorf("Zoomed = %v, want %v", v.Zoomed(), tt.wantZoomed)
			}
			if diff := cmp.Diff(tt.wantOffset, v.Offset()); diff != "" {
				t.Errorf("Offset mismatch (-want +got):\n%s", diff)
			}
			if v.Zoomed() && v.Offset() != (Vec2{}) {
				t.Errorf("zoom toggle left a stale pan offset %+v", v.Offset())
			}
		})
	}
}
