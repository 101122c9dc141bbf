package main

import "sync"

// renormalizeEvery is how many rotations are composed before the matrix is
// re-orthonormalized to shed float32 drift.
const renormalizeEvery = 64

var (
	worldRight = Vec4{-1, 0, 0, 0}
	worldUp    = Vec4{0, 1, 0, 0}
)

// Orientation owns the cube's rotation matrix. It is only ever composed with
// further rotations so it stays orthonormal. Safe for concurrent use.
type Orientation struct {
	mu    sync.RWMutex
	r     Mat4
	count int
}

// NewOrientation returns an orientation at identity.
func NewOrientation() *Orientation {
	return &Orientation{r: Identity()}
}

// Rotate turns the cube by horizontal degrees about its current local up axis
// and then by vertical degrees about its current local right axis.
func (o *Orientation) Rotate(vertical, horizontal float32) {
	if vertical == 0 && horizontal == 0 {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	// R is orthonormal so its transpose is its inverse.
	rt := o.r.Transpose()
	right := rt.MulVec(worldRight)
	up := rt.MulVec(worldUp)
	o.r = o.r.Rotate(horizontal, up[0], up[1], up[2])
	o.r = o.r.Rotate(vertical, right[0], right[1], right[2])
	o.count++
	if o.count%renormalizeEvery == 0 {
		o.r = o.r.Orthonormalize()
	}
}

// Matrix returns a snapshot of the rotation matrix.
func (o *Orientation) Matrix() Mat4 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.r
}

// Reset puts the cube back to identity.
func (o *Orientation) Reset() {
	o.mu.Lock()
	o.r = Identity()
	o.count = 0
	o.mu.Unlock()
}
