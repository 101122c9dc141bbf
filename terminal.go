package main

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"math"
	"time"

	"fortio.org/log"
	"fortio.org/safecast"
	"fortio.org/terminal/ansipixels"
)

// A terminal cell is roughly this many screen pixels wide, and twice as tall.
// Mouse positions are scaled by it so drags rotate about as much as they
// would on a touch screen.
const cellPixels = 8

// wheelScale is the pinch factor of one mouse wheel notch.
const wheelScale = 1.1

// pinchCells is how many rows of right drag scale the view by e.
const pinchCells = 10

// terminalInput tracks mouse state between ticks.
type terminalInput struct {
	dragging   bool
	pinching   bool
	lastX      int
	lastY      int
	pinchLastY int
}

func runTerminal(ctx context.Context, cfg Config, a *app) error {
	raster := NewRasterizer(color.NRGBA{0, 0, 0x80, 0xff})
	raster.Wireframe = cfg.Wireframe
	if err := a.renderer.Init(raster); err != nil {
		return err
	}
	ap := ansipixels.NewAnsiPixels(cfg.FPS)
	if err := ap.Open(); err != nil {
		return err
	}
	ap.HideCursor()
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.MouseClickOff()
		ap.ClearScreen()
		ap.Restore()
	}()
	ap.MouseTrackingOn()
	ap.ClearScreen()
	ap.SyncBackgroundColor()
	a.renderer.Resize(ap.W, ap.H*2)
	ap.OnResize = func() error {
		a.renderer.Resize(ap.W, ap.H*2)
		a.redraw.Request()
		return nil
	}
	a.redraw.Request()
	var in terminalInput
	last := time.Now()
	return ap.FPSTicks(ctx, func(context.Context) bool {
		now := time.Now()
		if a.camera.Animating() {
			a.camera.Step(now.Sub(last))
			a.redraw.Request()
		}
		last = now
		if len(ap.Data) > 0 {
			switch ap.Data[0] {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				a.gestures.Reset()
			}
		}
		in.handleMouse(ap, a)
		if !a.redraw.Pending() {
			return true
		}
		a.renderer.Render()
		if err := present(ap, raster.Image(), a.camera.Distance()); err != nil {
			log.Errf("Drawing to terminal: %v", err)
			return false
		}
		return true
	})
}

// gaugeSize returns the zoom gauge width in cells and height in rows.
func gaugeSize(ap *ansipixels.AnsiPixels) (int, int) {
	return max(ap.W/20, 1), max(ap.H/3, 1)
}

func (in *terminalInput) handleMouse(ap *ansipixels.AnsiPixels, a *app) {
	g := a.gestures
	barWidth, barHeight := gaugeSize(ap)
	lc, ld := ap.LeftClick(), ap.LeftDrag()
	switch {
	case (lc || ld) && !in.dragging && ap.Mx <= barWidth+1 && ap.My >= ap.H-barHeight:
		f := safecast.MustConvert[float32](ap.H-ap.My) / safecast.MustConvert[float32](barHeight)
		a.camera.SetDistance(DistanceAt(f))
		a.redraw.Request()
	case lc:
		in.dragging = true
		in.lastX, in.lastY = ap.Mx, ap.My
		g.OnTouch(TouchDown, float32(ap.Mx*cellPixels), float32(ap.My*cellPixels*2))
	case ld:
		if !in.dragging {
			in.dragging = true
			g.OnTouch(TouchDown, float32(ap.Mx*cellPixels), float32(ap.My*cellPixels*2))
		} else if ap.Mx != in.lastX || ap.My != in.lastY {
			g.OnTouch(TouchMove, float32(ap.Mx*cellPixels), float32(ap.My*cellPixels*2))
		}
		in.lastX, in.lastY = ap.Mx, ap.My
	case in.dragging:
		in.dragging = false
		g.OnTouch(TouchUp, float32(in.lastX*cellPixels), float32(in.lastY*cellPixels*2))
	}
	switch {
	case ap.RightDrag() && !in.pinching:
		in.pinching = true
		in.pinchLastY = ap.My
		g.OnPinchBegin()
	case ap.RightDrag():
		if dy := ap.My - in.pinchLastY; dy != 0 {
			g.OnPinchUpdate(float32(math.Exp(float64(-dy) / pinchCells)))
			in.pinchLastY = ap.My
		}
	case in.pinching:
		in.pinching = false
		g.OnPinchEnd()
	}
	if !in.pinching {
		if ap.MouseWheelUp() {
			wheelPinch(g, wheelScale)
		}
		if ap.MouseWheelDown() {
			wheelPinch(g, 1/wheelScale)
		}
	}
}

// wheelPinch plays one wheel notch as a complete pinch gesture.
func wheelPinch(g GestureConsumer, scale float32) {
	g.OnPinchBegin()
	g.OnPinchUpdate(scale)
	g.OnPinchEnd()
}

func present(ap *ansipixels.AnsiPixels, img *image.NRGBA, distance float32) error {
	barWidth, barHeightAp := gaugeSize(ap)
	barHeightImg := barHeightAp * 2
	filled := safecast.MustRound[int](ZoomFraction(distance) * float32(barHeightImg-2))
	draw.Draw(img, image.Rect(
		1,
		img.Bounds().Dy()-filled-2,
		barWidth,
		img.Bounds().Dy()-2,
	), &image.Uniform{color.RGBA{145, 145, 0, 255}}, image.Point{}, draw.Over)
	ap.StartSyncMode()
	rgba := &image.RGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect}
	var err error
	if ap.ColorOutput.TrueColor {
		err = ap.DrawTrueColorImage(0, 0, rgba)
	} else {
		err = ap.Draw216ColorImage(0, 0, rgba)
	}
	if err != nil {
		ap.EndSyncMode()
		return err
	}
	ap.WriteBg(ap.Background.Color())
	ap.DrawRoundBox(0, ap.H-barHeightAp, barWidth+1, barHeightAp)
	ap.EndSyncMode()
	return nil
}
