package main

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProgram struct {
	attrs    map[string][]float32
	uniforms map[string]Mat4
	draws    [][]uint16
}

func (p *fakeProgram) BindAttribute(name string, _ int, data []float32) error {
	p.attrs[name] = data
	return nil
}

func (p *fakeProgram) SetUniformMat4(name string, m Mat4) error {
	p.uniforms[name] = m
	return nil
}

func (p *fakeProgram) DrawElements(indices []uint16) error {
	p.draws = append(p.draws, indices)
	return nil
}

type fakeDevice struct {
	viewports  [][2]int
	clears     int
	compileErr error
	prog       *fakeProgram
}

func (d *fakeDevice) SetViewport(w, h int) { d.viewports = append(d.viewports, [2]int{w, h}) }
func (d *fakeDevice) Clear()               { d.clears++ }

func (d *fakeDevice) CompileProgram(_, _ string) (Program, error) {
	if d.compileErr != nil {
		return nil, d.compileErr
	}
	d.prog = &fakeProgram{attrs: map[string][]float32{}, uniforms: map[string]Mat4{}}
	return d.prog, nil
}

func TestRenderBeforeInitPanics(t *testing.T) {
	r := NewRenderer(NewOrientation(), NewCamera())
	r.Resize(10, 10)
	assert.Panics(t, r.Render)
}

func TestInitFailureIsReturned(t *testing.T) {
	r := NewRenderer(NewOrientation(), NewCamera())
	err := r.Init(&fakeDevice{compileErr: fmt.Errorf("%w: boom", ErrShaderCompile)})
	require.ErrorIs(t, err, ErrShaderCompile)
	assert.Panics(t, r.Render, "still uninitialized")
}

func TestGoldenFrame(t *testing.T) {
	dev := &fakeDevice{}
	r := NewRenderer(NewOrientation(), NewCamera())
	r.Resize(200, 100)
	require.NoError(t, r.Init(dev))
	assert.Equal(t, [][2]int{{200, 100}}, dev.viewports)
	r.Render()

	assert.Equal(t, 1, dev.clears)
	require.Len(t, dev.prog.draws, 1, "one draw per frame")
	assert.Equal(t, cubeIndices, dev.prog.draws[0])
	assert.Len(t, dev.prog.draws[0], 36)
	assert.Equal(t, cubePositions, dev.prog.attrs[attrPosition])
	assert.Equal(t, cubeColors, dev.prog.attrs[attrColor])
	assertMat(t, Mat4{
		-1.5, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 10.0 / 7, 1,
		0, 0, 9.0 / 7, 6,
	}, dev.prog.uniforms[uniformMVP], tol)
	assert.Equal(t, 1, r.Frames())
}

func TestRenderFollowsState(t *testing.T) {
	dev := &fakeDevice{}
	o, c := NewOrientation(), NewCamera()
	r := NewRenderer(o, c)
	require.NoError(t, r.Init(dev))
	r.Resize(640, 480)
	o.Rotate(10, 20)
	c.SetDistance(-9)
	r.Render()
	want := ComposeMVP(Projection(640, 480), -9, o.Matrix())
	assert.Equal(t, want, dev.prog.uniforms[uniformMVP])
	assert.Equal(t, [][2]int{{640, 480}}, dev.viewports)
}

func TestComposeMVP(t *testing.T) {
	p := Projection(300, 200)
	rot := Identity().Rotate(30, 1, 1, 0)
	view := LookAt(Vec3{0, 0, -8}, Vec3{}, Vec3{0, 1, 0})
	assertMat(t, p.Mul(view).Mul(rot), ComposeMVP(p, -8, rot), tol)
}

func TestProjectionDeterministic(t *testing.T) {
	assert.Equal(t, Projection(640, 480), Projection(640, 480))
	assert.Equal(t, Projection(640, 480), Projection(1280, 960), "same aspect")
	assert.NotEqual(t, Projection(640, 480), Projection(480, 640))
	assert.Equal(t, Frustum(-2, 2, -1, 1, 3, 17), Projection(200, 100))
}

func TestResizeIgnoresEmptyViewport(t *testing.T) {
	dev := &fakeDevice{}
	r := NewRenderer(NewOrientation(), NewCamera())
	require.NoError(t, r.Init(dev))
	r.Resize(200, 100)
	r.Resize(0, 100)
	r.Resize(200, -1)
	r.Resize(200, 100)
	assert.Equal(t, [][2]int{{200, 100}}, dev.viewports)
	r.Render()
	assert.Equal(t, Projection(200, 100).Mul(LookAt(Vec3{0, 0, -6}, Vec3{}, Vec3{0, 1, 0})),
		dev.prog.uniforms[uniformMVP])
}

func TestRasterizedFrame(t *testing.T) {
	bg := color.NRGBA{0, 0, 0x80, 0xff}
	raster := NewRasterizer(bg)
	r := NewRenderer(NewOrientation(), NewCamera())
	require.NoError(t, r.Init(raster))
	r.Resize(64, 32)
	r.Render()
	img := raster.Image()
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 32, img.Bounds().Dy())
	assert.Equal(t, bg, img.NRGBAAt(0, 0))
	assert.Equal(t, bg, img.NRGBAAt(63, 31))
	assert.NotEqual(t, bg, img.NRGBAAt(32, 16), "cube covers the center")
	assert.Equal(t, uint8(0xff), img.NRGBAAt(32, 16).A)
}

func TestRasterizedFrameZoom(t *testing.T) {
	bg := color.NRGBA{0, 0, 0, 0xff}
	covered := func(distance float32) int {
		raster := NewRasterizer(bg)
		c := NewCamera()
		c.SetDistance(distance)
		r := NewRenderer(NewOrientation(), c)
		require.NoError(t, r.Init(raster))
		r.Resize(64, 64)
		r.Render()
		n := 0
		for y := range 64 {
			for x := range 64 {
				if raster.Image().NRGBAAt(x, y) != bg {
					n++
				}
			}
		}
		return n
	}
	near, far := covered(MaxDistance), covered(MinDistance)
	assert.Greater(t, near, far)
	assert.Positive(t, far)
}

func TestWireframe(t *testing.T) {
	bg := color.NRGBA{0, 0, 0, 0xff}
	raster := NewRasterizer(bg)
	raster.Wireframe = true
	r := NewRenderer(NewOrientation(), NewCamera())
	require.NoError(t, r.Init(raster))
	r.Resize(64, 64)
	r.Render()
	lit := 0
	for i := 0; i < len(raster.Image().Pix); i += 4 {
		if raster.Image().Pix[i] != 0 {
			lit++
		}
	}
	assert.Positive(t, lit)
	assert.Less(t, lit, 64*64/2, "only edges are drawn")
}
