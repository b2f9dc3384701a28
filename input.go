package pinchzoom

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// Pointer is one finger (or the mouse) held down during a frame.
type Pointer struct {
	ID   int
	X, Y float64
}

// PointerSource reports the pointers held down this frame, sorted by ID.
// Implementations append to buf and return the extended slice.
type PointerSource interface {
	AppendPointers(buf []Pointer) []Pointer
}

// --- Gesture events ---

// Transition is the lifecycle part of every gesture event. Continuous updates
// carry State == OldState == StateActive.
type Transition struct {
	State    GestureState
	OldState GestureState
}

// LeftActive reports whether this event ends an active gesture.
func (t Transition) LeftActive() bool {
	return t.OldState == StateActive && t.State != StateActive
}

// PinchEvent reports a two-finger scale gesture.
type PinchEvent struct {
	Transition
	// Scale is the finger span relative to the span at gesture start.
	Scale float64
	// FocalX and FocalY are the midpoint between the two fingers.
	FocalX, FocalY float64
	Pointers       int
}

// PanEvent reports a drag gesture.
type PanEvent struct {
	Transition
	// TranslationX and TranslationY are cumulative since the gesture began.
	TranslationX, TranslationY float64
	Pointers                   int
}

// TapEvent reports a tap sequence.
type TapEvent struct {
	Transition
	Count int
	X, Y  float64
}

// --- Ebiten pointer source ---

// EbitenPointers reads the left mouse button as pointer 0 and touches as
// pointers 1-9.
type EbitenPointers struct {
	// MouseDisabled drops pointer 0, useful on touch devices that also
	// synthesize mouse input.
	MouseDisabled bool

	touchIDs  []ebiten.TouchID
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
}

// AppendPointers implements PointerSource.
func (e *EbitenPointers) AppendPointers(buf []Pointer) []Pointer {
	if !e.MouseDisabled && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		buf = append(buf, Pointer{ID: 0, X: float64(mx), Y: float64(my)})
	}

	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])

	var activeSlots [maxPointers]bool
	for _, tid := range e.touchIDs {
		slot := e.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		buf = append(buf, Pointer{ID: slot, X: float64(tx), Y: float64(ty)})
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if e.touchUsed[i] && !activeSlots[i] {
			e.touchUsed[i] = false
			e.touchMap[i] = 0
		}
	}

	sortPointers(buf)
	return buf
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (e *EbitenPointers) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if e.touchUsed[i] && e.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !e.touchUsed[i] {
			e.touchUsed[i] = true
			e.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// --- Pointer helpers ---

func sortPointers(ps []Pointer) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
}

// centroid returns the mean position of ps. ps must not be empty.
func centroid(ps []Pointer) Vec2 {
	var c Vec2
	for _, p := range ps {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(ps))
	return Vec2{X: c.X / n, Y: c.Y / n}
}

func distance(x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	return math.Sqrt(dx*dx + dy*dy)
}

func findPointer(ps []Pointer, id int) (Pointer, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}
