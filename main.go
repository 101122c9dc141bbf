package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"fortio.org/log"
)

// app wires the controllers, the gesture mapper and the frame composer.
type app struct {
	orientation *Orientation
	camera      *Camera
	redraw      *Redraw
	gestures    *GestureMapper
	renderer    *Renderer
}

func newApp(cfg Config) *app {
	a := &app{
		orientation: NewOrientation(),
		camera:      NewCamera(),
		redraw:      NewRedraw(),
	}
	a.gestures = NewGestureMapper(a.orientation, a.camera, a.redraw, float32(cfg.TouchScale))
	a.renderer = NewRenderer(a.orientation, a.camera)
	return a
}

func main() {
	cfg, err := LoadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cfg.Debug {
		log.SetLogLevel(log.Debug)
	}
	log.S(log.Info, "Starting touchcube",
		log.Any("window", cfg.Window), log.Any("wireframe", cfg.Wireframe), log.Any("touch-scale", cfg.TouchScale))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	a := newApp(cfg)
	if cfg.Window {
		err = runWindow(cfg, a)
	} else {
		err = runTerminal(ctx, cfg, a)
	}
	stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Errf("touchcube: %v", err)
		os.Exit(1)
	}
}
