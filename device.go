package main

// Device is the GPU context the frame composer draws through.
type Device interface {
	// SetViewport maps normalized device coordinates to a width x height surface.
	SetViewport(width, height int)
	// Clear resets color and depth for a new frame.
	Clear()
	// CompileProgram builds a program from a vertex and a fragment stage.
	CompileProgram(vertexSrc, fragmentSrc string) (Program, error)
}

// Program is a linked shader program.
type Program interface {
	// BindAttribute sets the per vertex data for a named attribute; size is the
	// number of components per vertex.
	BindAttribute(name string, size int, data []float32) error
	// SetUniformMat4 uploads a 4x4 matrix uniform.
	SetUniformMat4(name string, m Mat4) error
	// DrawElements draws len(indices)/3 triangles from the bound attributes.
	DrawElements(indices []uint16) error
}

// clipVertex is a vertex after the vertex stage.
type clipVertex struct {
	pos   Vec4 // clip space
	color Vec4
}

// triangleSink is what a program hands its transformed vertices to.
type triangleSink interface {
	drawTriangles(verts []clipVertex, indices []uint16)
}

// screenVertex is a clipVertex after perspective divide and viewport mapping.
type screenVertex struct {
	x, y, z float32
	color   Vec4
}

// toScreen maps a clip space vertex to pixel coordinates with y pointing down.
// It reports false for vertices at or behind the eye.
func toScreen(v clipVertex, width, height int) (screenVertex, bool) {
	w := v.pos[3]
	if w <= 0 {
		return screenVertex{}, false
	}
	nx, ny, nz := v.pos[0]/w, v.pos[1]/w, v.pos[2]/w
	return screenVertex{
		x:     (nx + 1) * 0.5 * float32(width),
		y:     (1 - ny) * 0.5 * float32(height),
		z:     nz,
		color: v.color,
	}, true
}
