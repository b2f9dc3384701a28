package pinchzoom

// ScriptedPointers is a PointerSource fed from queued frames instead of real
// hardware. Each Press, Move, or Release queues one frame holding the pointer
// set after the change; AppendPointers consumes one frame per call and keeps
// reporting the last set once the queue is empty.
type ScriptedPointers struct {
	held   []Pointer
	frames [][]Pointer
}

// NewScriptedPointers returns an empty source with no pointers held.
func NewScriptedPointers() *ScriptedPointers {
	return &ScriptedPointers{}
}

// AppendPointers implements PointerSource.
func (s *ScriptedPointers) AppendPointers(buf []Pointer) []Pointer {
	if len(s.frames) == 0 {
		return append(buf, s.held...)
	}
	frame := s.frames[0]
	copy(s.frames, s.frames[1:])
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	return append(buf, frame...)
}

// Pending returns the number of queued frames not yet consumed.
func (s *ScriptedPointers) Pending() int {
	return len(s.frames)
}

// Press queues a frame with pointer id held at (x, y).
func (s *ScriptedPointers) Press(id int, x, y float64) {
	s.set(id, x, y)
	s.snapshot()
}

// Move queues a frame with pointer id moved to (x, y). Moving a pointer that
// is not held presses it.
func (s *ScriptedPointers) Move(id int, x, y float64) {
	s.set(id, x, y)
	s.snapshot()
}

// Release queues a frame without pointer id.
func (s *ScriptedPointers) Release(id int) {
	for i := range s.held {
		if s.held[i].ID == id {
			s.held = append(s.held[:i], s.held[i+1:]...)
			break
		}
	}
	s.snapshot()
}

// ReleaseAll queues a frame with no pointers held.
func (s *ScriptedPointers) ReleaseAll() {
	s.held = s.held[:0]
	s.snapshot()
}

// Wait queues frames copies of the current pointer set.
func (s *ScriptedPointers) Wait(frames int) {
	for i := 0; i < frames; i++ {
		s.snapshot()
	}
}

// Tap queues a press and a release of pointer id at (x, y). Consumes two frames.
func (s *ScriptedPointers) Tap(id int, x, y float64) {
	s.Press(id, x, y)
	s.Release(id)
}

// DoubleTap queues two taps at (x, y). Consumes four frames.
func (s *ScriptedPointers) DoubleTap(id int, x, y float64) {
	s.Tap(id, x, y)
	s.Tap(id, x, y)
}

// Drag queues a full drag of pointer id: press at (fromX, fromY), frames-2
// linearly interpolated moves ending on (toX, toY), and a release. The total
// sequence consumes `frames` frames. Minimum frames is 2 (press + release).
func (s *ScriptedPointers) Drag(id int, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.Press(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.Move(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.Release(id)
}

// Pinch queues a horizontal two-finger pinch centered on (cx, cy) using
// pointers 1 and 2: both press at fromSpan apart in one frame, the span is
// interpolated to toSpan over the following frames, then both lift together.
// Minimum frames is 2.
func (s *ScriptedPointers) Pinch(cx, cy, fromSpan, toSpan float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.set(1, cx-fromSpan/2, cy)
	s.set(2, cx+fromSpan/2, cy)
	s.snapshot()
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		span := fromSpan + (toSpan-fromSpan)*t
		s.set(1, cx-span/2, cy)
		s.set(2, cx+span/2, cy)
		s.snapshot()
	}
	s.ReleaseAll()
}

func (s *ScriptedPointers) set(id int, x, y float64) {
	for i := range s.held {
		if s.held[i].ID == id {
			s.held[i].X = x
			s.held[i].Y = y
			return
		}
	}
	s.held = append(s.held, Pointer{ID: id, X: x, Y: y})
	sortPointers(s.held)
}

func (s *ScriptedPointers) snapshot() {
	s.frames = append(s.frames, append([]Pointer(nil), s.held...))
}
