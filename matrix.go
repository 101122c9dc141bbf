package main

import (
	"github.com/chewxy/math32"
)

// Vec3 is a 3 component vector.
type Vec3 [3]float32

// Vec4 is a 4 component vector, w last.
type Vec4 [4]float32

// Mat4 is a 4x4 matrix stored in column-major order (OpenGL layout):
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
type Mat4 [16]float32

// Identity returns the multiplicative identity.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix translating by (x, y, z).
func Translation(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scaling returns a matrix scaling each axis independently.
func Scaling(x, y, z float32) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Mul returns a * b. As a transform the result applies b first, then a.
func (a Mat4) Mul(b Mat4) Mat4 { //nolint:st1016 // a*b reads better than m*n here
	var m Mat4
	for col := range 4 {
		for row := range 4 {
			var sum float32
			for k := range 4 {
				sum += a[k*4+row] * b[col*4+k]
			}
			m[col*4+row] = sum
		}
	}
	return m
}

// MulVec returns m * v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// Rotate returns m * R where R rotates by angle degrees about the axis (x, y, z).
// The axis does not need to be normalized but must not be zero length: a zero
// axis (or a zero angle) returns m unchanged.
func (m Mat4) Rotate(angle, x, y, z float32) Mat4 {
	if angle == 0 {
		return m
	}
	l := math32.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return m
	}
	x, y, z = x/l, y/l, z/l
	rad := angle * math32.Pi / 180
	s, c := math32.Sin(rad), math32.Cos(rad)
	nc := 1 - c
	r := Mat4{
		x*x*nc + c, x*y*nc + z*s, z*x*nc - y*s, 0,
		x*y*nc - z*s, y*y*nc + c, y*z*nc + x*s, 0,
		z*x*nc + y*s, y*z*nc - x*s, z*z*nc + c, 0,
		0, 0, 0, 1,
	}
	return m.Mul(r)
}

// LookAt builds a view matrix for a camera at eye looking at center.
// up must not be parallel to center-eye, and eye must differ from center.
func LookAt(eye, center, up Vec3) Mat4 {
	f := normalize(sub(center, eye))
	s := normalize(cross(f, up))
	u := cross(s, f)
	return Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-dot(s, eye), -dot(u, eye), dot(f, eye), 1,
	}
}

// Frustum builds a perspective projection from the near plane rectangle and
// the near/far clip distances.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	rw := 1 / (right - left)
	rh := 1 / (top - bottom)
	rd := 1 / (near - far)
	return Mat4{
		2 * near * rw, 0, 0, 0,
		0, 2 * near * rh, 0, 0,
		(right + left) * rw, (top + bottom) * rh, (far + near) * rd, -1,
		0, 0, 2 * far * near * rd, 0,
	}
}

// Orthonormalize re-orthogonalizes the upper 3x3 block (Gram-Schmidt), keeping
// the first column's direction and the handedness.
func (m Mat4) Orthonormalize() Mat4 {
	c0 := normalize(Vec3{m[0], m[1], m[2]})
	c1 := Vec3{m[4], m[5], m[6]}
	d := dot(c0, c1)
	c1 = normalize(Vec3{c1[0] - d*c0[0], c1[1] - d*c0[1], c1[2] - d*c0[2]})
	c2 := cross(c0, c1)
	m[0], m[1], m[2] = c0[0], c0[1], c0[2]
	m[4], m[5], m[6] = c1[0], c1[1], c1[2]
	m[8], m[9], m[10] = c2[0], c2[1], c2[2]
	return m
}

// ApproxEqual reports whether every element of m is within tol of n.
func (m Mat4) ApproxEqual(n Mat4, tol float32) bool {
	for i := range m {
		if math32.Abs(m[i]-n[i]) > tol {
			return false
		}
	}
	return true
}

func sub(a, b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func dot(a, b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v Vec3) Vec3 {
	l := math32.Sqrt(dot(v, v))
	if l == 0 {
		return v
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}
