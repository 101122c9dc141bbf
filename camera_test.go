package main

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestCameraDefault(t *testing.T) {
	assert.Equal(t, DefaultDistance, NewCamera().Distance())
	assert.Equal(t, float32(-6), DefaultDistance)
}

func TestSetDistanceClamps(t *testing.T) {
	tests := []struct {
		raw, want float32
	}{
		{-3, -4},
		{0, -4},
		{5, -4},
		{-4, -4},
		{-10, -10},
		{-15, -15},
		{-15.5, -15},
		{-100, -15},
	}
	c := NewCamera()
	for _, tt := range tests {
		c.SetDistance(tt.raw)
		assert.Equal(t, tt.want, c.Distance(), "SetDistance(%v)", tt.raw)
	}
	c.SetDistance(-8)
	c.SetDistance(math32.NaN())
	assert.Equal(t, float32(-8), c.Distance(), "NaN is ignored")
}

func TestApplyPinch(t *testing.T) {
	c := NewCamera()
	c.ApplyPinch(0.5, -6)
	assert.Equal(t, float32(-12), c.Distance())
	c.ApplyPinch(1.5, -6)
	assert.Equal(t, float32(-4), c.Distance())
	c.ApplyPinch(0.1, -6)
	assert.Equal(t, float32(-15), c.Distance())
	for _, bad := range []float32{0, -1, math32.NaN()} {
		c.ApplyPinch(bad, -6)
		assert.Equal(t, float32(-15), c.Distance(), "scale %v is ignored", bad)
	}
}

func TestPinchAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4)) //nolint:gosec // deterministic test input
	c := NewCamera()
	for range 1000 {
		scale := rng.Float32()*8 + 1e-6
		c.ApplyPinch(scale, c.Distance())
		d := c.Distance()
		assert.GreaterOrEqual(t, d, MinDistance)
		assert.LessOrEqual(t, d, MaxDistance)
	}
}

func TestCameraResetAnimation(t *testing.T) {
	c := NewCamera()
	c.SetDistance(-12)
	c.StartReset(400 * time.Millisecond)
	assert.True(t, c.Animating())
	assert.True(t, c.Step(200*time.Millisecond))
	mid := c.Distance()
	assert.Greater(t, mid, float32(-12))
	assert.Less(t, mid, DefaultDistance)
	assert.False(t, c.Step(300*time.Millisecond))
	assert.InDelta(t, DefaultDistance, c.Distance(), 1e-5)
	assert.False(t, c.Animating())
	assert.False(t, c.Step(time.Second), "no animation left")
}

func TestSetDistanceCancelsReset(t *testing.T) {
	c := NewCamera()
	c.SetDistance(-12)
	c.StartReset(time.Second)
	c.SetDistance(-9)
	assert.False(t, c.Animating())
	c.Step(time.Second)
	assert.Equal(t, float32(-9), c.Distance())
}

func TestImmediateReset(t *testing.T) {
	c := NewCamera()
	c.SetDistance(-14)
	c.StartReset(0)
	assert.False(t, c.Animating())
	assert.Equal(t, DefaultDistance, c.Distance())
}

func TestZoomFraction(t *testing.T) {
	assert.InDelta(t, 0, ZoomFraction(MinDistance), tol)
	assert.InDelta(t, 1, ZoomFraction(MaxDistance), tol)
	assert.InDelta(t, 1, ZoomFraction(0), tol, "clamped")
	for _, d := range []float32{-15, -12.5, -6, -4} {
		assert.InDelta(t, d, DistanceAt(ZoomFraction(d)), tol)
	}
	assert.Equal(t, MinDistance, DistanceAt(-1))
	assert.Equal(t, MaxDistance, DistanceAt(2))
}
