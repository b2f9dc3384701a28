package pinchzoom

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultTimingDuration is the settle duration, in seconds, of timed
// animations that don't pick their own.
const DefaultTimingDuration float32 = 0.3

// DefaultTimingEase is the easing paired with DefaultTimingDuration.
var DefaultTimingEase ease.TweenFunc = ease.InOutQuad

// SpringConfig holds damped-spring constants.
type SpringConfig struct {
	Mass      float64
	Stiffness float64
	Damping   float64
	// RestDisplacement and RestSpeed are the thresholds below which the
	// spring snaps to its target and stops.
	RestDisplacement float64
	RestSpeed        float64
}

// DefaultSpring is the spring used by ZoomIn and ZoomOut.
var DefaultSpring = SpringConfig{
	Mass:             1,
	Stiffness:        100,
	Damping:          10,
	RestDisplacement: 0.01,
	RestSpeed:        2,
}

// springStep is the fixed integration sub-step in seconds.
const springStep = 1.0 / 240

// springAnim integrates a damped spring toward target.
type springAnim struct {
	cfg      SpringConfig
	target   float64
	velocity float64
}

// advance moves x toward the target by dt seconds and reports whether the
// spring came to rest. Sub-stepping keeps results independent of frame rate.
func (s *springAnim) advance(x float64, dt float64) (float64, bool) {
	mass := s.cfg.Mass
	if mass <= 0 {
		mass = 1
	}
	steps := int(math.Ceil(dt / springStep))
	if steps < 1 {
		steps = 1
	}
	h := dt / float64(steps)
	for i := 0; i < steps; i++ {
		accel := (-s.cfg.Stiffness*(x-s.target) - s.cfg.Damping*s.velocity) / mass
		s.velocity += accel * h
		x += s.velocity * h
		if math.Abs(x-s.target) < s.cfg.RestDisplacement && math.Abs(s.velocity) < s.cfg.RestSpeed {
			s.velocity = 0
			return s.target, true
		}
	}
	return x, false
}

// Channel is an animatable float64. Its rendered value is offset + value.
// A channel runs at most one animation; Set, SpringTo, and TimeTo replace
// whatever was running.
//
// There is no global animation manager: owners call Update each frame.
type Channel struct {
	value  float64
	offset float64

	spring *springAnim
	tween  *gween.Tween
	target float64
}

// NewChannel returns a channel resting at v.
func NewChannel(v float64) *Channel {
	return &Channel{value: v}
}

// Value returns offset + value.
func (c *Channel) Value() float64 {
	return c.offset + c.value
}

// Raw returns the value without the offset.
func (c *Channel) Raw() float64 {
	return c.value
}

// Offset returns the channel's offset.
func (c *Channel) Offset() float64 {
	return c.offset
}

// Set stops any animation and jumps to v.
func (c *Channel) Set(v float64) {
	c.Stop()
	c.value = v
}

// SetOffset changes the offset without touching the value.
func (c *Channel) SetOffset(o float64) {
	c.offset = o
}

// Stop halts the running animation, leaving the value where it is.
func (c *Channel) Stop() {
	c.spring = nil
	c.tween = nil
}

// Animating reports whether an animation is running.
func (c *Channel) Animating() bool {
	return c.spring != nil || c.tween != nil
}

// Target returns where the channel will come to rest (raw, without offset).
func (c *Channel) Target() float64 {
	if c.Animating() {
		return c.target
	}
	return c.value
}

// SpringTo starts a spring animation toward target. Velocity carries over
// from a spring that is already running.
func (c *Channel) SpringTo(target float64, cfg SpringConfig) {
	var velocity float64
	if c.spring != nil {
		velocity = c.spring.velocity
	}
	c.tween = nil
	c.target = target
	c.spring = &springAnim{cfg: cfg, target: target, velocity: velocity}
}

// TimeTo starts a timed animation toward target over duration seconds.
// A nil easing uses DefaultTimingEase.
func (c *Channel) TimeTo(target float64, duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = DefaultTimingEase
	}
	c.spring = nil
	c.target = target
	c.tween = gween.New(float32(c.value), float32(target), duration, fn)
}

// Update advances the running animation by dt seconds and reports whether it
// is still running afterwards. Finished animations land exactly on target.
func (c *Channel) Update(dt float32) bool {
	switch {
	case c.spring != nil:
		v, done := c.spring.advance(c.value, float64(dt))
		c.value = v
		if done {
			c.value = c.target
			c.spring = nil
		}
	case c.tween != nil:
		v, done := c.tween.Update(dt)
		c.value = float64(v)
		if done {
			c.value = c.target
			c.tween = nil
		}
	}
	return c.Animating()
}
