package main

import (
	"sync"
	"time"

	"fortio.org/log"
)

// DefaultTouchScale converts pixels of drag into degrees of rotation.
const DefaultTouchScale float32 = 0.3

// resetDuration is how long the camera takes to ease back on reset.
const resetDuration = 400 * time.Millisecond

// TouchAction is the phase of a single pointer event.
type TouchAction int

const (
	TouchDown TouchAction = iota
	TouchMove
	TouchUp
)

// GestureConsumer is what an input layer feeds.
type GestureConsumer interface {
	OnTouch(action TouchAction, x, y float32)
	OnDragDelta(dx, dy float32)
	OnPinchBegin()
	OnPinchUpdate(scaleFactor float32)
	OnPinchEnd()
}

// GestureMapper turns drags into rotations and pinches into camera distance,
// and asks for a redraw after each change.
type GestureMapper struct {
	orientation *Orientation
	camera      *Camera
	redraw      *Redraw
	touchScale  float32

	mu         sync.Mutex
	pinching   bool
	reference  float32
	cumulative float32
	prevX      float32
	prevY      float32
}

var _ GestureConsumer = (*GestureMapper)(nil)

// NewGestureMapper returns a mapper; touchScale <= 0 means DefaultTouchScale.
func NewGestureMapper(o *Orientation, c *Camera, redraw *Redraw, touchScale float32) *GestureMapper {
	if touchScale <= 0 {
		touchScale = DefaultTouchScale
	}
	return &GestureMapper{
		orientation: o,
		camera:      c,
		redraw:      redraw,
		touchScale:  touchScale,
		cumulative:  1,
	}
}

// OnTouch handles a raw pointer event. Moves rotate by the delta from the
// previous event; every event then becomes the previous point. Events are
// dropped while a pinch is in progress.
func (g *GestureMapper) OnTouch(action TouchAction, x, y float32) {
	g.mu.Lock()
	if g.pinching {
		g.mu.Unlock()
		return
	}
	dx, dy := x-g.prevX, y-g.prevY
	g.prevX, g.prevY = x, y
	g.mu.Unlock()
	if action == TouchMove {
		g.OnDragDelta(dx, dy)
	}
}

// OnDragDelta rotates the cube by a screen space drag delta.
func (g *GestureMapper) OnDragDelta(dx, dy float32) {
	if g.Pinching() {
		return
	}
	g.orientation.Rotate(dy*g.touchScale, dx*g.touchScale)
	g.redraw.Request()
}

// OnPinchBegin captures the current distance as the gesture's reference.
func (g *GestureMapper) OnPinchBegin() {
	g.mu.Lock()
	g.pinching = true
	g.cumulative = 1
	g.reference = g.camera.Distance()
	ref := g.reference
	g.mu.Unlock()
	if log.LogDebug() {
		log.S(log.Debug, "Pinch begin", log.Any("reference", ref))
	}
}

// OnPinchUpdate folds an incremental scale factor into the gesture and sets
// the distance relative to the gesture's start.
func (g *GestureMapper) OnPinchUpdate(scaleFactor float32) {
	g.mu.Lock()
	if !g.pinching {
		g.mu.Unlock()
		return
	}
	g.cumulative *= scaleFactor
	cumulative, ref := g.cumulative, g.reference
	g.mu.Unlock()
	g.camera.ApplyPinch(cumulative, ref)
	g.redraw.Request()
}

// OnPinchEnd ends the gesture; drags are accepted again.
func (g *GestureMapper) OnPinchEnd() {
	g.mu.Lock()
	g.pinching = false
	g.mu.Unlock()
}

// Pinching reports whether a pinch gesture is in progress.
func (g *GestureMapper) Pinching() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pinching
}

// Reset returns the cube to identity and starts easing the camera back.
func (g *GestureMapper) Reset() {
	g.orientation.Reset()
	g.camera.StartReset(resetDuration)
	g.redraw.Request()
	log.Debugf("View reset")
}
