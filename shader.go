package main

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrShaderCompile = errors.New("shader compile failed")
	ErrShaderLink    = errors.New("program link failed")
)

type shaderStage int

const (
	vertexStage shaderStage = iota
	fragmentStage
)

func (s shaderStage) String() string {
	if s == vertexStage {
		return "vertex"
	}
	return "fragment"
}

var glslTypes = map[string]bool{
	"float": true, "vec2": true, "vec3": true, "vec4": true, "mat4": true,
}

// shaderInterface is the set of declarations a stage exposes, name to type.
type shaderInterface struct {
	attributes map[string]string
	uniforms   map[string]string
	varyings   map[string]string
}

// compileShader checks a stage's source and extracts its declarations.
// Only top level `qualifier type name;` declarations are understood.
func compileShader(stage shaderStage, src string) (shaderInterface, error) {
	si := shaderInterface{
		attributes: map[string]string{},
		uniforms:   map[string]string{},
		varyings:   map[string]string{},
	}
	if !strings.Contains(src, "void main(") {
		return si, fmt.Errorf("%w: %s stage has no main", ErrShaderCompile, stage)
	}
	for _, stmt := range strings.Split(src, ";") {
		fields := strings.Fields(stmt)
		if len(fields) == 0 {
			continue
		}
		var into map[string]string
		switch fields[0] {
		case "attribute":
			if stage != vertexStage {
				return si, fmt.Errorf("%w: attribute in %s stage", ErrShaderCompile, stage)
			}
			into = si.attributes
		case "uniform":
			into = si.uniforms
		case "varying":
			into = si.varyings
		default:
			continue
		}
		if len(fields) != 3 || !glslTypes[fields[1]] {
			return si, fmt.Errorf("%w: %s stage: bad declaration %q", ErrShaderCompile, stage, strings.Join(fields, " "))
		}
		if _, dup := into[fields[2]]; dup {
			return si, fmt.Errorf("%w: %s stage: %q redeclared", ErrShaderCompile, stage, fields[2])
		}
		into[fields[2]] = fields[1]
	}
	return si, nil
}

// linkShaders compiles both stages and checks every varying the fragment
// stage reads is written by the vertex stage with the same type.
func linkShaders(vertexSrc, fragmentSrc string) (shaderInterface, error) {
	vs, err := compileShader(vertexStage, vertexSrc)
	if err != nil {
		return vs, err
	}
	fs, err := compileShader(fragmentStage, fragmentSrc)
	if err != nil {
		return vs, err
	}
	for name, typ := range fs.varyings {
		if vt, ok := vs.varyings[name]; !ok || vt != typ {
			return vs, fmt.Errorf("%w: varying %s %s not written by vertex stage", ErrShaderLink, typ, name)
		}
	}
	for name, typ := range fs.uniforms {
		if vt, ok := vs.uniforms[name]; ok && vt != typ {
			return vs, fmt.Errorf("%w: uniform %q declared as %s and %s", ErrShaderLink, name, vt, typ)
		}
		vs.uniforms[name] = typ
	}
	return vs, nil
}
