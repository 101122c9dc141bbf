package main

import (
	"fmt"
)

type attribute struct {
	size int
	data []float32
}

// program runs the cube's vertex stage on the CPU: the position attribute is
// multiplied by the mvp uniform and the color attribute passed through. The
// resulting triangles go to the device's sink.
type program struct {
	iface    shaderInterface
	attrs    map[string]attribute
	uniforms map[string]Mat4
	sink     triangleSink
	verts    []clipVertex
}

func linkProgram(vertexSrc, fragmentSrc string, sink triangleSink) (*program, error) {
	iface, err := linkShaders(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{attrPosition, attrColor} {
		if _, ok := iface.attributes[name]; !ok {
			return nil, fmt.Errorf("%w: vertex stage lacks attribute %q", ErrShaderLink, name)
		}
	}
	if iface.uniforms[uniformMVP] != "mat4" {
		return nil, fmt.Errorf("%w: vertex stage lacks uniform mat4 %q", ErrShaderLink, uniformMVP)
	}
	return &program{
		iface:    iface,
		attrs:    map[string]attribute{},
		uniforms: map[string]Mat4{},
		sink:     sink,
	}, nil
}

func (p *program) BindAttribute(name string, size int, data []float32) error {
	if _, ok := p.iface.attributes[name]; !ok {
		return fmt.Errorf("unknown attribute %q", name)
	}
	if size < 1 || size > 4 {
		return fmt.Errorf("attribute %q: size %d out of range 1..4", name, size)
	}
	if len(data)%size != 0 {
		return fmt.Errorf("attribute %q: %d values is not a multiple of %d", name, len(data), size)
	}
	p.attrs[name] = attribute{size: size, data: data}
	return nil
}

func (p *program) SetUniformMat4(name string, m Mat4) error {
	if p.iface.uniforms[name] != "mat4" {
		return fmt.Errorf("unknown mat4 uniform %q", name)
	}
	p.uniforms[name] = m
	return nil
}

func (p *program) DrawElements(indices []uint16) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%d indices do not form whole triangles", len(indices))
	}
	pos, ok := p.attrs[attrPosition]
	if !ok {
		return fmt.Errorf("attribute %q not bound", attrPosition)
	}
	col, ok := p.attrs[attrColor]
	if !ok {
		return fmt.Errorf("attribute %q not bound", attrColor)
	}
	mvp, ok := p.uniforms[uniformMVP]
	if !ok {
		return fmt.Errorf("uniform %q not set", uniformMVP)
	}
	n := len(pos.data) / pos.size
	if c := len(col.data) / col.size; c != n {
		return fmt.Errorf("attribute %q has %d vertices, %q has %d", attrColor, c, attrPosition, n)
	}
	for _, idx := range indices {
		if int(idx) >= n {
			return fmt.Errorf("index %d out of range for %d vertices", idx, n)
		}
	}
	p.verts = p.verts[:0]
	for i := range n {
		p.verts = append(p.verts, clipVertex{
			pos:   mvp.MulVec(expand(pos, i)),
			color: expand(col, i),
		})
	}
	p.sink.drawTriangles(p.verts, indices)
	return nil
}

// expand reads vertex i of a, filling missing components from (0, 0, 0, 1)
// the way GL does.
func expand(a attribute, i int) Vec4 {
	v := Vec4{0, 0, 0, 1}
	copy(v[:], a.data[i*a.size:(i+1)*a.size])
	return v
}
