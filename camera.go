package main

import (
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Eye distances along the view axis. More negative is farther away, so
// MinDistance is the farthest the camera goes and MaxDistance the closest.
const (
	DefaultDistance float32 = -6
	MinDistance     float32 = -15
	MaxDistance     float32 = -4
)

// ClampDistance confines raw to [MinDistance, MaxDistance].
func ClampDistance(raw float32) float32 {
	switch {
	case raw > MaxDistance:
		return MaxDistance
	case raw < MinDistance:
		return MinDistance
	default:
		return raw
	}
}

// Camera owns the eye distance. Safe for concurrent use.
type Camera struct {
	mu       sync.RWMutex
	distance float32
	reset    *gween.Tween
}

// NewCamera returns a camera at DefaultDistance.
func NewCamera() *Camera {
	return &Camera{distance: DefaultDistance}
}

// Distance returns the current eye distance.
func (c *Camera) Distance() float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.distance
}

// SetDistance clamps raw into range and stores it. It cancels a running reset
// animation. NaN is ignored.
func (c *Camera) SetDistance(raw float32) {
	if math32.IsNaN(raw) {
		return
	}
	c.mu.Lock()
	c.reset = nil
	c.distance = ClampDistance(raw)
	c.mu.Unlock()
}

// ApplyPinch sets the distance to reference/scale, where reference is the
// distance captured when the gesture began and scale is the cumulative scale
// factor of the gesture so far. Non-positive scales are ignored.
func (c *Camera) ApplyPinch(scale, reference float32) {
	if !(scale > 0) {
		return
	}
	c.SetDistance(reference * (1 / scale))
}

// StartReset eases the distance back to DefaultDistance over d.
// A non-positive d resets immediately.
func (c *Camera) StartReset(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d <= 0 {
		c.reset = nil
		c.distance = DefaultDistance
		return
	}
	c.reset = gween.New(c.distance, DefaultDistance, float32(d.Seconds()), ease.OutCubic)
}

// Step advances a running reset animation by dt and reports whether it is
// still running afterwards.
func (c *Camera) Step(dt time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reset == nil {
		return false
	}
	v, done := c.reset.Update(float32(dt.Seconds()))
	c.distance = ClampDistance(v)
	if done {
		c.reset = nil
	}
	return !done
}

// Animating reports whether a reset animation is in progress.
func (c *Camera) Animating() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reset != nil
}

// ZoomFraction maps a distance to [0, 1], 0 being farthest and 1 closest.
func ZoomFraction(distance float32) float32 {
	return (ClampDistance(distance) - MinDistance) / (MaxDistance - MinDistance)
}

// DistanceAt is the inverse of ZoomFraction; f is clamped to [0, 1].
func DistanceAt(f float32) float32 {
	return MinDistance + min(max(f, 0), 1)*(MaxDistance-MinDistance)
}
