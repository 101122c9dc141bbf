package main

import (
	"errors"
	"image"
	"image/color"
	"math"
	"sort"
	"time"

	"fortio.org/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenDevice submits the cube to ebiten as one indexed triangle list.
// ebiten has no depth buffer so triangles are ordered back to front, which is
// exact for a single convex object.
type ebitenDevice struct {
	dst        *ebiten.Image
	white      *ebiten.Image
	background color.NRGBA
	width      int
	height     int

	vertices []ebiten.Vertex
	visible  []bool
	indices  []uint16
}

type faceInfo struct {
	first int
	avgZ  float32
}

// backToFront appends to out the triangles of indices whose vertices are all
// visible, farthest (largest NDC z) first.
func backToFront(out, indices []uint16, depth []float32, visible []bool) []uint16 {
	faces := make([]faceInfo, 0, len(indices)/3)
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		if !visible[a] || !visible[b] || !visible[c] {
			continue
		}
		faces = append(faces, faceInfo{t, (depth[a] + depth[b] + depth[c]) / 3})
	}
	sort.SliceStable(faces, func(i, j int) bool { return faces[i].avgZ > faces[j].avgZ })
	for _, f := range faces {
		out = append(out, indices[f.first:f.first+3]...)
	}
	return out
}

func newEbitenDevice(bg color.NRGBA) *ebitenDevice {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &ebitenDevice{
		white:      white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		background: bg,
	}
}

func (d *ebitenDevice) SetViewport(width, height int) {
	d.width, d.height = width, height
}

func (d *ebitenDevice) Clear() {
	if d.dst != nil {
		d.dst.Fill(d.background)
	}
}

func (d *ebitenDevice) CompileProgram(vertexSrc, fragmentSrc string) (Program, error) {
	p, err := linkProgram(vertexSrc, fragmentSrc, d)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (d *ebitenDevice) drawTriangles(verts []clipVertex, indices []uint16) {
	if d.dst == nil {
		return
	}
	d.vertices = d.vertices[:0]
	d.visible = d.visible[:0]
	depth := make([]float32, 0, len(verts))
	for _, v := range verts {
		sv, ok := toScreen(v, d.width, d.height)
		d.visible = append(d.visible, ok)
		depth = append(depth, sv.z)
		d.vertices = append(d.vertices, ebiten.Vertex{
			DstX: sv.x, DstY: sv.y,
			SrcX: 1, SrcY: 1,
			ColorR: sv.color[0], ColorG: sv.color[1], ColorB: sv.color[2], ColorA: sv.color[3],
		})
	}
	d.indices = backToFront(d.indices[:0], indices, depth, d.visible)
	d.dst.DrawTriangles(d.vertices, d.indices, d.white, nil)
}

// windowGame feeds mouse and touch input to the gesture mapper and draws only
// when a redraw was requested.
type windowGame struct {
	a   *app
	dev *ebitenDevice

	width     int
	height    int
	touches   []ebiten.TouchID
	pressed   []ebiten.TouchID
	pinching  bool
	resync    bool
	pinchDist float64
	mouseX    int
	mouseY    int
}

func runWindow(cfg Config, a *app) error {
	dev := newEbitenDevice(color.NRGBA{0, 0, 0x80, 0xff})
	if err := a.renderer.Init(dev); err != nil {
		return err
	}
	ebiten.SetWindowTitle("touchcube")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	a.redraw.Request()
	err := ebiten.RunGame(&windowGame{a: a, dev: dev})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *windowGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.a.gestures.Reset()
	}
	if g.a.camera.Animating() {
		g.a.camera.Step(time.Second / time.Duration(ebiten.TPS()))
		g.a.redraw.Request()
	}
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	switch {
	case len(g.touches) >= 2:
		g.updatePinch()
	case g.pinching:
		g.pinching = false
		g.resync = true
		g.a.gestures.OnPinchEnd()
	}
	switch {
	case len(g.touches) == 1:
		g.updateTouch(g.touches[0])
	case len(g.touches) == 0:
		g.resync = false
		g.updateMouse()
	}
	return nil
}

func (g *windowGame) updatePinch() {
	x0, y0 := ebiten.TouchPosition(g.touches[0])
	x1, y1 := ebiten.TouchPosition(g.touches[1])
	d := math.Hypot(float64(x1-x0), float64(y1-y0))
	if !g.pinching {
		g.pinching = true
		g.pinchDist = d
		g.a.gestures.OnPinchBegin()
		return
	}
	if d > 0 && g.pinchDist > 0 && d != g.pinchDist {
		g.a.gestures.OnPinchUpdate(float32(d / g.pinchDist))
		g.pinchDist = d
	}
}

func (g *windowGame) updateTouch(id ebiten.TouchID) {
	x, y := ebiten.TouchPosition(id)
	action := TouchMove
	g.pressed = inpututil.AppendJustPressedTouchIDs(g.pressed[:0])
	if g.resync || len(g.pressed) > 0 {
		action = TouchDown
		g.resync = false
	}
	g.a.gestures.OnTouch(action, float32(x), float32(y))
}

func (g *windowGame) updateMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.a.gestures.OnTouch(TouchDown, float32(x), float32(y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.a.gestures.OnTouch(TouchUp, float32(x), float32(y))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (x != g.mouseX || y != g.mouseY):
		g.a.gestures.OnTouch(TouchMove, float32(x), float32(y))
	}
	g.mouseX, g.mouseY = x, y
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.a.gestures.Reset()
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		wheelPinch(g.a.gestures, float32(math.Pow(wheelScale, wy)))
	}
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if !g.a.redraw.Pending() {
		return
	}
	g.dev.dst = screen
	g.a.renderer.Render()
	g.dev.dst = nil
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.a.renderer.Resize(outsideWidth, outsideHeight)
		g.a.redraw.Request()
		log.Debugf("Window layout %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
