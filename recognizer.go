package pinchzoom

import (
	"math"
	"time"
)

// RecognizerConfig holds activation thresholds for the built-in recognizers.
type RecognizerConfig struct {
	// DragDeadZone is how far, in pixels, a pan must travel before it
	// becomes active.
	DragDeadZone float64
	// PinchSlop is the relative span change a pinch needs before it becomes
	// active (0.02 = 2%).
	PinchSlop float64
	// PanMinPointers and PanMaxPointers bound the fingers a pan accepts.
	PanMinPointers int
	PanMaxPointers int
	// TapCount is the number of taps a TapRecognizer waits for.
	TapCount int
	// TapMaxDist is how far a finger may move during one tap.
	TapMaxDist float64
	// TapMaxDuration is how long a finger may stay down during one tap.
	TapMaxDuration time.Duration
	// TapMaxDelay is the longest gap allowed between taps.
	TapMaxDelay time.Duration
}

// DefaultRecognizerConfig is used wherever a zero RecognizerConfig is given.
var DefaultRecognizerConfig = RecognizerConfig{
	DragDeadZone:   defaultDragDeadZone,
	PinchSlop:      0.02,
	PanMinPointers: 1,
	PanMaxPointers: maxPointers,
	TapCount:       2,
	TapMaxDist:     10,
	TapMaxDuration: 300 * time.Millisecond,
	TapMaxDelay:    300 * time.Millisecond,
}

// withDefaults fills zero fields from DefaultRecognizerConfig.
func (c RecognizerConfig) withDefaults() RecognizerConfig {
	d := DefaultRecognizerConfig
	if c.DragDeadZone == 0 {
		c.DragDeadZone = d.DragDeadZone
	}
	if c.PinchSlop == 0 {
		c.PinchSlop = d.PinchSlop
	}
	if c.PanMinPointers == 0 {
		c.PanMinPointers = d.PanMinPointers
	}
	if c.PanMaxPointers == 0 {
		c.PanMaxPointers = d.PanMaxPointers
	}
	if c.TapCount == 0 {
		c.TapCount = d.TapCount
	}
	if c.TapMaxDist == 0 {
		c.TapMaxDist = d.TapMaxDist
	}
	if c.TapMaxDuration == 0 {
		c.TapMaxDuration = d.TapMaxDuration
	}
	if c.TapMaxDelay == 0 {
		c.TapMaxDelay = d.TapMaxDelay
	}
	return c
}

// Recognizer turns per-frame pointers into gesture events. Recognizers are
// driven by a Router, which also arbitrates between them.
type Recognizer interface {
	Name() string
	State() GestureState
	update(r *Router, now time.Duration, ptrs []Pointer)
	cancel(r *Router)
}

type gestureBase struct {
	name  string
	state GestureState
}

// Name returns the recognizer's name, used in debug output.
func (g *gestureBase) Name() string { return g.name }

// State returns the current lifecycle state.
func (g *gestureBase) State() GestureState { return g.state }

func (g *gestureBase) move(to GestureState) Transition {
	t := Transition{State: to, OldState: g.state}
	g.state = to
	return t
}

var stillActive = Transition{State: StateActive, OldState: StateActive}

// finished reports whether s is a terminal state. A recognizer leaves it for
// Undetermined in the same frame its pointers lift, so a press on the next
// frame starts a new gesture.
func finished(s GestureState) bool {
	return s == StateEnded || s == StateCancelled || s == StateFailed
}

// --- Pinch ---

// PinchRecognizer tracks exactly two pointers and reports their span ratio
// and midpoint.
type PinchRecognizer struct {
	gestureBase
	slop float64

	ids         [2]int
	initialDist float64
	scale       float64
	focal       Vec2
}

// NewPinchRecognizer creates a two-pointer pinch recognizer.
func NewPinchRecognizer(cfg RecognizerConfig) *PinchRecognizer {
	cfg = cfg.withDefaults()
	return &PinchRecognizer{gestureBase: gestureBase{name: "pinch"}, slop: cfg.PinchSlop, scale: 1}
}

func (p *PinchRecognizer) update(r *Router, _ time.Duration, ptrs []Pointer) {
	p.step(r, ptrs)
	if finished(p.state) && len(ptrs) < 2 {
		p.state = StateUndetermined
	}
}

func (p *PinchRecognizer) step(r *Router, ptrs []Pointer) {
	switch p.state {
	case StateUndetermined:
		if len(ptrs) != 2 {
			return
		}
		p.ids = [2]int{ptrs[0].ID, ptrs[1].ID}
		p.initialDist = distance(ptrs[0].X, ptrs[0].Y, ptrs[1].X, ptrs[1].Y)
		p.scale = 1
		p.focal = centroid(ptrs)
		p.emit(r, p.move(StateBegan))
	case StateBegan:
		if !p.track(ptrs) {
			p.emit(r, p.move(StateFailed))
			return
		}
		if math.Abs(p.scale-1) < p.slop {
			return
		}
		if !r.tryActivate(p) {
			p.emit(r, p.move(StateFailed))
			return
		}
		p.emit(r, p.move(StateActive))
	case StateActive:
		prevScale, prevFocal := p.scale, p.focal
		if !p.track(ptrs) {
			p.emit(r, p.move(StateEnded))
			return
		}
		if p.scale != prevScale || p.focal != prevFocal {
			p.emit(r, stillActive)
		}
	}
}

// track refreshes scale and focal from the two tracked pointers. It reports
// false once the pointer set no longer matches, leaving the last values.
func (p *PinchRecognizer) track(ptrs []Pointer) bool {
	if len(ptrs) != 2 {
		return false
	}
	a, okA := findPointer(ptrs, p.ids[0])
	b, okB := findPointer(ptrs, p.ids[1])
	if !okA || !okB {
		return false
	}
	dist := distance(a.X, a.Y, b.X, b.Y)
	if p.initialDist <= 0 {
		p.initialDist = dist
	}
	if p.initialDist > 0 {
		p.scale = dist / p.initialDist
	}
	p.focal = Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	return true
}

func (p *PinchRecognizer) cancel(r *Router) {
	if p.state == StateBegan || p.state == StateActive {
		p.emit(r, p.move(StateCancelled))
	}
}

func (p *PinchRecognizer) emit(r *Router, t Transition) {
	r.firePinch(p, PinchEvent{
		Transition: t,
		Scale:      p.scale,
		FocalX:     p.focal.X,
		FocalY:     p.focal.Y,
		Pointers:   2,
	})
}

// --- Pan ---

// PanRecognizer reports the cumulative motion of the pointer centroid.
// When fingers are added or lifted mid-gesture the centroid is re-anchored so
// the translation does not jump.
type PanRecognizer struct {
	gestureBase
	deadZone    float64
	minPointers int
	maxPointers int

	count       int
	anchor      Vec2
	carried     Vec2
	translation Vec2
}

// NewPanRecognizer creates a drag recognizer.
func NewPanRecognizer(cfg RecognizerConfig) *PanRecognizer {
	cfg = cfg.withDefaults()
	return &PanRecognizer{
		gestureBase: gestureBase{name: "pan"},
		deadZone:    cfg.DragDeadZone,
		minPointers: cfg.PanMinPointers,
		maxPointers: cfg.PanMaxPointers,
	}
}

func (p *PanRecognizer) update(r *Router, _ time.Duration, ptrs []Pointer) {
	p.step(r, ptrs)
	if finished(p.state) && len(ptrs) < p.minPointers {
		p.state = StateUndetermined
	}
}

func (p *PanRecognizer) step(r *Router, ptrs []Pointer) {
	n := len(ptrs)
	switch p.state {
	case StateUndetermined:
		if n < p.minPointers || n > p.maxPointers {
			return
		}
		p.count = n
		p.anchor = centroid(ptrs)
		p.carried = Vec2{}
		p.translation = Vec2{}
		p.emit(r, p.move(StateBegan))
	case StateBegan, StateActive:
		if n < p.minPointers || n > p.maxPointers {
			if p.state == StateActive {
				p.emit(r, p.move(StateEnded))
			} else {
				p.emit(r, p.move(StateFailed))
			}
			return
		}
		c := centroid(ptrs)
		if n != p.count {
			p.carried = p.translation
			p.anchor = c
			p.count = n
		}
		prev := p.translation
		p.translation = p.carried.Add(c.Sub(p.anchor))

		if p.state == StateBegan {
			if math.Hypot(p.translation.X, p.translation.Y) <= p.deadZone {
				return
			}
			if !r.tryActivate(p) {
				p.emit(r, p.move(StateFailed))
				return
			}
			p.emit(r, p.move(StateActive))
			return
		}
		if p.translation != prev {
			p.emit(r, stillActive)
		}
	}
}

func (p *PanRecognizer) cancel(r *Router) {
	if p.state == StateBegan || p.state == StateActive {
		p.emit(r, p.move(StateCancelled))
	}
}

func (p *PanRecognizer) emit(r *Router, t Transition) {
	r.firePan(p, PanEvent{
		Transition:   t,
		TranslationX: p.translation.X,
		TranslationY: p.translation.Y,
		Pointers:     p.count,
	})
}

// --- Tap ---

// TapRecognizer waits for a number of quick single-finger taps and reports
// Active followed immediately by Ended once the count is reached.
type TapRecognizer struct {
	gestureBase
	taps        int
	maxDist     float64
	maxDuration time.Duration
	maxDelay    time.Duration

	count      int
	down       bool
	pressAt    time.Duration
	releasedAt time.Duration
	pressPos   Vec2
}

// NewTapRecognizer creates a recognizer for cfg.TapCount taps.
func NewTapRecognizer(cfg RecognizerConfig) *TapRecognizer {
	cfg = cfg.withDefaults()
	return &TapRecognizer{
		gestureBase: gestureBase{name: "tap"},
		taps:        cfg.TapCount,
		maxDist:     cfg.TapMaxDist,
		maxDuration: cfg.TapMaxDuration,
		maxDelay:    cfg.TapMaxDelay,
	}
}

func (t *TapRecognizer) update(r *Router, now time.Duration, ptrs []Pointer) {
	t.step(r, now, ptrs)
	if finished(t.state) && len(ptrs) == 0 {
		t.state = StateUndetermined
	}
}

func (t *TapRecognizer) step(r *Router, now time.Duration, ptrs []Pointer) {
	n := len(ptrs)
	switch t.state {
	case StateUndetermined:
		if n != 1 {
			return
		}
		t.count = 0
		t.press(now, ptrs[0])
		t.emit(r, t.move(StateBegan))
	case StateBegan:
		if n > 1 {
			t.emit(r, t.move(StateFailed))
			return
		}
		if t.down {
			if n == 1 {
				p := ptrs[0]
				if distance(t.pressPos.X, t.pressPos.Y, p.X, p.Y) > t.maxDist || now-t.pressAt > t.maxDuration {
					t.emit(r, t.move(StateFailed))
				}
				return
			}
			t.down = false
			t.count++
			t.releasedAt = now
			if t.count < t.taps {
				return
			}
			if !r.tryActivate(t) {
				t.emit(r, t.move(StateFailed))
				return
			}
			t.emit(r, t.move(StateActive))
			t.emit(r, t.move(StateEnded))
			return
		}
		if n == 1 {
			t.press(now, ptrs[0])
			return
		}
		if now-t.releasedAt > t.maxDelay {
			t.emit(r, t.move(StateFailed))
		}
	}
}

func (t *TapRecognizer) press(now time.Duration, p Pointer) {
	t.down = true
	t.pressAt = now
	t.pressPos = Vec2{X: p.X, Y: p.Y}
}

func (t *TapRecognizer) cancel(r *Router) {
	if t.state == StateBegan || t.state == StateActive {
		t.emit(r, t.move(StateCancelled))
	}
}

func (t *TapRecognizer) emit(r *Router, tr Transition) {
	r.fireTap(t, TapEvent{
		Transition: tr,
		Count:      t.count,
		X:          t.pressPos.X,
		Y:          t.pressPos.Y,
	})
}
