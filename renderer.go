package main

import (
	"fmt"
	"sync"

	"fortio.org/log"
	"fortio.org/safecast"
)

const (
	nearPlane float32 = 3
	farPlane  float32 = 17
)

type rendererState int

const (
	stateUninitialized rendererState = iota
	stateReady
)

// Renderer composes the per frame transform and draws the cube through a
// Device. It goes Uninitialized -> Ready on Init; Resize and Render are only
// valid once Ready.
type Renderer struct {
	orientation *Orientation
	camera      *Camera

	mu         sync.Mutex
	state      rendererState
	device     Device
	program    Program
	width      int
	height     int
	projection Mat4
	frames     int
}

// NewRenderer returns an uninitialized renderer reading from the given
// controllers.
func NewRenderer(orientation *Orientation, camera *Camera) *Renderer {
	return &Renderer{
		orientation: orientation,
		camera:      camera,
		projection:  Identity(),
	}
}

// Init builds the shader program on dev. A failure here is a fatal setup error.
func (r *Renderer) Init(dev Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prog, err := dev.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return fmt.Errorf("renderer init: %w", err)
	}
	if err := bindCube(prog); err != nil {
		return fmt.Errorf("renderer init: %w", err)
	}
	r.device, r.program, r.state = dev, prog, stateReady
	if r.width > 0 && r.height > 0 {
		dev.SetViewport(r.width, r.height)
	}
	log.Infof("Renderer ready")
	return nil
}

func bindCube(p Program) error {
	if err := p.BindAttribute(attrPosition, coordsPerVertex, cubePositions); err != nil {
		return err
	}
	return p.BindAttribute(attrColor, colorsPerVertex, cubeColors)
}

// Projection returns the frustum for a width x height viewport.
func Projection(width, height int) Mat4 {
	aspect := safecast.MustConvert[float32](width) / safecast.MustConvert[float32](height)
	return Frustum(-aspect, aspect, -1, 1, nearPlane, farPlane)
}

// ComposeMVP returns projection * view * model for a camera at distance on the
// z axis looking at the origin and a cube rotated by orientation.
func ComposeMVP(projection Mat4, distance float32, orientation Mat4) Mat4 {
	view := LookAt(Vec3{0, 0, distance}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	scale := Scaling(1, 1, 1)
	translation := Translation(0, 0, 0)
	model := translation.Mul(orientation.Mul(scale))
	return projection.Mul(view).Mul(model)
}

// Resize records the viewport and recomputes the projection. Non-positive
// sizes are ignored.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		log.Warnf("Ignoring resize to %dx%d", width, height)
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.projection = Projection(width, height)
	if r.device != nil {
		r.device.SetViewport(width, height)
	}
	log.Debugf("Viewport %dx%d", width, height)
}

// Render draws one frame with the current orientation and distance.
// It panics when called before Init.
func (r *Renderer) Render() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != stateReady {
		panic("touchcube: Render called before Init")
	}
	mvp := ComposeMVP(r.projection, r.camera.Distance(), r.orientation.Matrix())
	r.device.Clear()
	if err := bindCube(r.program); err != nil {
		panic(err)
	}
	if err := r.program.SetUniformMat4(uniformMVP, mvp); err != nil {
		panic(err)
	}
	if err := r.program.DrawElements(cubeIndices); err != nil {
		panic(err)
	}
	r.frames++
}

// Frames returns how many frames were rendered.
func (r *Renderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}
