package pinchzoom

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to a premultiplied color.RGBA for ebiten fills.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ColorFocalMarker is the fill of the pinch focal marker.
var ColorFocalMarker = Color{R: 0, G: 0, B: 1, A: 1}

// Vec2 is a 2D vector used for focal points, offsets, and pointer positions.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// GestureState is the lifecycle state of a gesture recognizer.
type GestureState uint8

const (
	StateUndetermined GestureState = iota // no gesture in progress
	StateBegan                            // pointers down, activation threshold not yet crossed
	StateActive                           // gesture recognized and reporting
	StateEnded                            // gesture finished normally
	StateCancelled                        // gesture interrupted (arbitration or input loss)
	StateFailed                           // gesture never activated
)

var gestureStateNames = [...]string{"Undetermined", "Began", "Active", "Ended", "Cancelled", "Failed"}

func (s GestureState) String() string {
	if int(s) < len(gestureStateNames) {
		return gestureStateNames[s]
	}
	return "Unknown"
}

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventPinch EventType = iota // two-finger scale gesture
	EventPan                    // drag gesture
	EventTap                    // tap / multi-tap gesture
)

var eventTypeNames = [...]string{"pinch", "pan", "tap"}

func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "unknown"
}
