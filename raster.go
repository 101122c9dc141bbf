package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"fortio.org/safecast"
	"fortio.org/terminal/ansipixels"
)

// Rasterizer is a software Device drawing into an NRGBA image with a depth
// buffer. Triangles are filled with barycentric interpolation of the vertex
// colors; in wireframe mode only their edges are drawn.
type Rasterizer struct {
	Wireframe  bool
	Background color.NRGBA

	img   *image.NRGBA
	depth []float32
}

// NewRasterizer returns a rasterizer with an empty surface; call SetViewport
// before drawing.
func NewRasterizer(bg color.NRGBA) *Rasterizer {
	return &Rasterizer{Background: bg, img: image.NewNRGBA(image.Rectangle{})}
}

// Image returns the color buffer. It is reallocated when the viewport changes.
func (r *Rasterizer) Image() *image.NRGBA { return r.img }

func (r *Rasterizer) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if b := r.img.Bounds(); b.Dx() == width && b.Dy() == height {
		return
	}
	r.img = image.NewNRGBA(image.Rect(0, 0, width, height))
	r.depth = make([]float32, width*height)
}

func (r *Rasterizer) Clear() {
	draw.Draw(r.img, r.img.Bounds(), &image.Uniform{r.Background}, image.Point{}, draw.Src)
	for i := range r.depth {
		r.depth[i] = math.MaxFloat32
	}
}

func (r *Rasterizer) CompileProgram(vertexSrc, fragmentSrc string) (Program, error) {
	p, err := linkProgram(vertexSrc, fragmentSrc, r)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Rasterizer) drawTriangles(verts []clipVertex, indices []uint16) {
	w, h := r.img.Bounds().Dx(), r.img.Bounds().Dy()
	for t := 0; t+2 < len(indices); t += 3 {
		var sv [3]screenVertex
		visible := true
		for i := range 3 {
			var ok bool
			sv[i], ok = toScreen(verts[indices[t+i]], w, h)
			visible = visible && ok
		}
		if !visible {
			continue
		}
		if r.Wireframe {
			for i := range 3 {
				a, b := sv[i], sv[(i+1)%3]
				ansipixels.DrawLine(r.img, float64(a.x), float64(a.y), float64(b.x), float64(b.y), color.NRGBA{255, 255, 255, 255})
			}
			continue
		}
		r.fill(sv)
	}
}

func edge(a, b screenVertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// pixelSpan converts a float range to clamped integer pixel bounds.
func pixelSpan(lo, hi float32, limit int) (int, int, bool) {
	l, err := safecast.Truncate[int](math.Floor(float64(lo)))
	if err != nil {
		return 0, 0, false
	}
	u, err := safecast.Truncate[int](math.Ceil(float64(hi)))
	if err != nil {
		return 0, 0, false
	}
	return max(l, 0), min(u, limit-1), true
}

func (r *Rasterizer) fill(sv [3]screenVertex) {
	area := edge(sv[0], sv[1], sv[2].x, sv[2].y)
	if area == 0 {
		return
	}
	b := r.img.Bounds()
	minX, maxX, okX := pixelSpan(min(sv[0].x, sv[1].x, sv[2].x), max(sv[0].x, sv[1].x, sv[2].x), b.Dx())
	minY, maxY, okY := pixelSpan(min(sv[0].y, sv[1].y, sv[2].y), max(sv[0].y, sv[1].y, sv[2].y), b.Dy())
	if !okX || !okY {
		return
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			w0 := edge(sv[1], sv[2], px, py) / area
			w1 := edge(sv[2], sv[0], px, py) / area
			w2 := edge(sv[0], sv[1], px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*sv[0].z + w1*sv[1].z + w2*sv[2].z
			if z < -1 || z > 1 {
				continue
			}
			i := y*b.Dx() + x
			if z >= r.depth[i] {
				continue
			}
			r.depth[i] = z
			// Screen space color interpolation; not perspective correct.
			var c Vec4
			for k := range c {
				c[k] = w0*sv[0].color[k] + w1*sv[1].color[k] + w2*sv[2].color[k]
			}
			r.img.SetNRGBA(x, y, toNRGBA(c))
		}
	}
}

func toNRGBA(c Vec4) color.NRGBA {
	var out [4]uint8
	for i, v := range c {
		out[i] = safecast.MustRound[uint8](min(max(v, 0), 1) * 255)
	}
	return color.NRGBA{out[0], out[1], out[2], out[3]}
}
