package pinchzoom

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const frameDT = float32(1.0 / 60)

func runChannel(c *Channel, maxFrames int) int {
	frames := 0
	for frames < maxFrames && c.Update(frameDT) {
		frames++
	}
	return frames
}

func TestChannelSpringSettlesExactlyOnTarget(t *testing.T) {
	c := NewChannel(1)
	c.SpringTo(1.5, DefaultSpring)

	if !c.Animating() {
		t.Fatal("expected animating after SpringTo")
	}
	runChannel(c, 600)

	if c.Animating() {
		t.Fatal("spring still animating after 10s")
	}
	if c.Value() != 1.5 {
		t.Errorf("Value = %v, want exactly 1.5", c.Value())
	}
}

func TestChannelSpringOvershoots(t *testing.T) {
	c := NewChannel(1)
	c.SpringTo(1.5, DefaultSpring)

	peak := c.Value()
	for i := 0; i < 600 && c.Update(frameDT); i++ {
		peak = math.Max(peak, c.Value())
	}
	if peak <= 1.51 {
		t.Errorf("peak = %v, want an underdamped overshoot past 1.51", peak)
	}
}

func TestChannelSpringFrameRateIndependent(t *testing.T) {
	a := NewChannel(0)
	b := NewChannel(0)
	a.SpringTo(1, DefaultSpring)
	b.SpringTo(1, DefaultSpring)

	// 0.25s at 60Hz and at 120Hz.
	for i := 0; i < 15; i++ {
		a.Update(1.0 / 60)
	}
	for i := 0; i < 30; i++ {
		b.Update(1.0 / 120)
	}
	if math.Abs(a.Value()-b.Value()) > 0.02 {
		t.Errorf("60Hz = %v, 120Hz = %v, want within 0.02", a.Value(), b.Value())
	}
}

func TestChannelTimeToInterpolates(t *testing.T) {
	c := NewChannel(2.37)
	c.TimeTo(1, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	c.Update(0.5)
	if !c.Animating() {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(c.Value()-1.685) > 1e-3 {
		t.Errorf("Value = %v, want ~1.685 at halfway", c.Value())
	}

	c.Update(0.5)
	if c.Animating() {
		t.Fatal("should be done after full duration")
	}
	if c.Value() != 1 {
		t.Errorf("Value = %v, want exactly 1", c.Value())
	}
}

func TestChannelTimeToDefaultEase(t *testing.T) {
	c := NewChannel(3)
	c.TimeTo(1, DefaultTimingDuration, nil)
	runChannel(c, 60)
	if c.Animating() || c.Value() != 1 {
		t.Errorf("Value = %v animating = %v, want 1 and stopped", c.Value(), c.Animating())
	}
}

func TestChannelSetCancelsAnimation(t *testing.T) {
	c := NewChannel(1)
	c.SpringTo(2, DefaultSpring)
	c.Update(frameDT)
	c.Set(0.25)

	if c.Animating() {
		t.Error("Set should stop the spring")
	}
	c.Update(frameDT)
	if c.Value() != 0.25 {
		t.Errorf("Value = %v, want 0.25", c.Value())
	}
}

func TestChannelTarget(t *testing.T) {
	c := NewChannel(4)
	if c.Target() != 4 {
		t.Errorf("resting Target = %v, want 4", c.Target())
	}
	c.TimeTo(1, 1, ease.Linear)
	if c.Target() != 1 {
		t.Errorf("animating Target = %v, want 1", c.Target())
	}
}

func TestChannelOffset(t *testing.T) {
	c := NewChannel(5)
	c.SetOffset(10)
	if c.Value() != 15 {
		t.Errorf("Value = %v, want 15", c.Value())
	}
	if c.Raw() != 5 || c.Offset() != 10 {
		t.Errorf("Raw, Offset = %v, %v, want 5, 10", c.Raw(), c.Offset())
	}
	c.Set(0)
	if c.Value() != 10 {
		t.Errorf("Value after Set(0) = %v, want 10", c.Value())
	}
}

func TestChannelUpdateWithoutAnimation(t *testing.T) {
	c := NewChannel(7)
	if c.Update(frameDT) {
		t.Error("Update reported running with no animation")
	}
	if c.Value() != 7 {
		t.Errorf("Value = %v, want 7", c.Value())
	}
}
