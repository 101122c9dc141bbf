package main

const (
	coordsPerVertex = 3
	colorsPerVertex = 4
)

// cubePositions are the 8 corners of a unit cube centered on the origin.
var cubePositions = []float32{
	-0.5, 0.5, -0.5, // 0 back top left
	-0.5, -0.5, -0.5, // 1 back bottom left
	0.5, -0.5, -0.5, // 2 back bottom right
	0.5, 0.5, -0.5, // 3 back top right
	0.5, 0.5, 0.5, // 4 front top right
	-0.5, 0.5, 0.5, // 5 front top left
	-0.5, -0.5, 0.5, // 6 front bottom left
	0.5, -0.5, 0.5, // 7 front bottom right
}

// cubeColors are the per corner RGBA colors, blended across each face.
var cubeColors = []float32{
	1, 0, 0, 1, // red
	0, 1, 0, 1, // green
	0, 0, 1, 1, // blue
	1, 1, 1, 1, // white
	1, 1, 0, 1, // yellow
	0, 1, 1, 1, // cyan
	1, 0, 1, 1, // pink
	0, 0, 0, 1, // black
}

// cubeIndices holds 12 triangles, two per face.
var cubeIndices = []uint16{
	6, 7, 4, 4, 5, 6, // front
	6, 5, 1, 1, 5, 0, // left
	0, 5, 4, 4, 3, 0, // top
	2, 7, 4, 2, 4, 3, // right
	1, 2, 6, 2, 7, 6, // bottom
	0, 2, 1, 3, 2, 0, // back
}

const (
	attrPosition = "position"
	attrColor    = "color"
	uniformMVP   = "mvpMatrix"
)

const vertexShaderSource = `
uniform mat4 mvpMatrix;
attribute vec4 position;
attribute vec4 color;
varying vec4 fColor;
void main() {
	gl_Position = mvpMatrix * position;
	fColor = color;
}
`

const fragmentShaderSource = `
precision mediump float;
varying vec4 fColor;
void main() {
	gl_FragColor = fColor;
}
`
