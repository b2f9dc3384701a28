package pinchzoom

import "time"

// --- Handler registry ---

type pinchHandler struct {
	id uint32
	fn func(PinchEvent)
}

type panHandler struct {
	id uint32
	fn func(PanEvent)
}

type tapHandler struct {
	id uint32
	fn func(TapEvent)
}

type handlerRegistry struct {
	pinch  []pinchHandler
	pan    []panHandler
	tap    []tapHandler
	nextID uint32
}

// CallbackHandle allows removing a registered gesture callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPinch:
		h.reg.pinch = removeHandler(h.reg.pinch, h.id, func(x pinchHandler) uint32 { return x.id })
	case EventPan:
		h.reg.pan = removeHandler(h.reg.pan, h.id, func(x panHandler) uint32 { return x.id })
	case EventTap:
		h.reg.tap = removeHandler(h.reg.tap, h.id, func(x tapHandler) uint32 { return x.id })
	}
}

func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Router ---

// Router polls a PointerSource once per frame and drives its recognizers in
// priority order (the order they were added). Recognizers placed in the same
// exclusive group never run Active at the same time: the first to activate
// holds the group, and members still in Began are cancelled.
type Router struct {
	source      PointerSource
	recognizers []Recognizer
	groups      [][]Recognizer
	handlers    handlerRegistry

	ptrs      []Pointer
	now       time.Duration
	activated []Recognizer // recognizers that went Active during this Update
}

// NewRouter creates a router reading from src.
func NewRouter(src PointerSource) *Router {
	return &Router{source: src}
}

// Add appends recognizers after those already registered; earlier
// recognizers have higher priority.
func (r *Router) Add(recs ...Recognizer) {
	r.recognizers = append(r.recognizers, recs...)
}

// Exclusive declares a mutual-exclusion group.
func (r *Router) Exclusive(recs ...Recognizer) {
	r.groups = append(r.groups, append([]Recognizer(nil), recs...))
}

// Recognizers returns the registered recognizers in priority order. The
// returned slice MUST NOT be mutated.
func (r *Router) Recognizers() []Recognizer {
	return r.recognizers
}

// Now returns the time accumulated from Update calls.
func (r *Router) Now() time.Duration {
	return r.now
}

// Pointers returns the pointers read during the last Update.
func (r *Router) Pointers() []Pointer {
	return r.ptrs
}

// Update advances the clock by dt seconds, reads pointers, and runs every
// recognizer once.
func (r *Router) Update(dt float32) {
	r.now += time.Duration(float64(dt) * float64(time.Second))
	r.activated = r.activated[:0]
	r.ptrs = r.ptrs[:0]
	if r.source != nil {
		r.ptrs = r.source.AppendPointers(r.ptrs)
	}
	for _, rec := range r.recognizers {
		rec.update(r, r.now, r.ptrs)
	}
}

// tryActivate reports whether rec may become Active. On success, group
// members still in Began are cancelled.
func (r *Router) tryActivate(rec Recognizer) bool {
	for _, g := range r.groups {
		if !containsRecognizer(g, rec) {
			continue
		}
		for _, m := range g {
			if m == rec {
				continue
			}
			if m.State() == StateActive || containsRecognizer(r.activated, m) {
				if debugEnabled {
					debugf("%s: blocked by %s", rec.Name(), m.Name())
				}
				return false
			}
		}
	}
	for _, g := range r.groups {
		if !containsRecognizer(g, rec) {
			continue
		}
		for _, m := range g {
			if m != rec && m.State() == StateBegan {
				m.cancel(r)
			}
		}
	}
	r.activated = append(r.activated, rec)
	return true
}

func containsRecognizer(list []Recognizer, rec Recognizer) bool {
	for _, m := range list {
		if m == rec {
			return true
		}
	}
	return false
}

// --- Registration ---

// OnPinch registers a callback for pinch events.
func (r *Router) OnPinch(fn func(PinchEvent)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.pinch = append(r.handlers.pinch, pinchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventPinch}
}

// OnPan registers a callback for pan events.
func (r *Router) OnPan(fn func(PanEvent)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.pan = append(r.handlers.pan, panHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventPan}
}

// OnTap registers a callback for tap events.
func (r *Router) OnTap(fn func(TapEvent)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.tap = append(r.handlers.tap, tapHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventTap}
}

// --- Event dispatch ---

func (r *Router) firePinch(rec Recognizer, ev PinchEvent) {
	if debugEnabled && ev.State != ev.OldState {
		debugf("%s: %v -> %v scale=%.3f focal=(%.1f, %.1f)",
			rec.Name(), ev.OldState, ev.State, ev.Scale, ev.FocalX, ev.FocalY)
	}
	for _, h := range r.handlers.pinch {
		h.fn(ev)
	}
}

func (r *Router) firePan(rec Recognizer, ev PanEvent) {
	if debugEnabled && ev.State != ev.OldState {
		debugf("%s: %v -> %v translation=(%.1f, %.1f) pointers=%d",
			rec.Name(), ev.OldState, ev.State, ev.TranslationX, ev.TranslationY, ev.Pointers)
	}
	for _, h := range r.handlers.pan {
		h.fn(ev)
	}
}

func (r *Router) fireTap(rec Recognizer, ev TapEvent) {
	if debugEnabled && ev.State != ev.OldState {
		debugf("%s: %v -> %v count=%d at (%.1f, %.1f)",
			rec.Name(), ev.OldState, ev.State, ev.Count, ev.X, ev.Y)
	}
	for _, h := range r.handlers.tap {
		h.fn(ev)
	}
}
