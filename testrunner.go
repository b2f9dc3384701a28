package pinchzoom

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action   string  `json:"action"`
	ID       int     `json:"id,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	FromSpan float64 `json:"fromSpan,omitempty"`
	ToSpan   float64 `json:"toSpan,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// LoadGestureScript parses a JSON gesture script into a ScriptedPointers with
// every step queued. Supported actions: press, move, release, wait, tap,
// doubletap, drag, pinch.
//
//	{"steps": [
//	  {"action": "doubletap", "x": 200, "y": 250},
//	  {"action": "wait", "frames": 60},
//	  {"action": "pinch", "x": 200, "y": 250, "fromSpan": 100, "toSpan": 200, "frames": 20}
//	]}
func LoadGestureScript(jsonData []byte) (*ScriptedPointers, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	s := NewScriptedPointers()
	for i, st := range script.Steps {
		if err := s.apply(st); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return s, nil
}

func (s *ScriptedPointers) apply(st scriptStep) error {
	switch st.Action {
	case "press":
		s.Press(st.ID, st.X, st.Y)
	case "move":
		s.Move(st.ID, st.X, st.Y)
	case "release":
		s.Release(st.ID)
	case "wait":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		s.Wait(frames)
	case "tap":
		s.Tap(st.ID, st.X, st.Y)
	case "doubletap":
		s.DoubleTap(st.ID, st.X, st.Y)
	case "drag":
		s.Drag(st.ID, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		if st.FromSpan <= 0 || st.ToSpan <= 0 {
			return fmt.Errorf("pinch spans must be positive")
		}
		s.Pinch(st.X, st.Y, st.FromSpan, st.ToSpan, st.Frames)
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}
