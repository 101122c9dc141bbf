package main

import (
	"flag"

	"fortio.org/log"
	"fortio.org/struct2env"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "TOUCHCUBE_"

// Config holds the runtime settings. Precedence is defaults, then
// TOUCHCUBE_* environment variables, then flags.
type Config struct {
	FPS        float64 `env:"FPS"`
	Wireframe  bool    `env:"WIREFRAME"`
	Window     bool    `env:"WINDOW"`
	Width      int     `env:"WIDTH"`
	Height     int     `env:"HEIGHT"`
	TouchScale float64 `env:"TOUCH_SCALE"`
	Debug      bool    `env:"DEBUG"`
}

func DefaultConfig() Config {
	return Config{
		FPS:        60,
		Width:      800,
		Height:     600,
		TouchScale: float64(DefaultTouchScale),
	}
}

// LoadEnv applies environment overrides to c. Bad values are logged and the
// previous value kept.
func (c *Config) LoadEnv() {
	for _, err := range struct2env.SetFromEnv(EnvPrefix, c) {
		log.Warnf("Config from environment: %v", err)
	}
}

// RegisterFlags binds c's fields to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.FPS, "fps", c.FPS, "set the input polling rate of the terminal view")
	fs.BoolVar(&c.Wireframe, "wireframe", c.Wireframe, "draw triangle edges instead of filled faces (terminal)")
	fs.BoolVar(&c.Window, "window", c.Window, "open a window with touch support instead of using the terminal")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.Float64Var(&c.TouchScale, "touch-scale", c.TouchScale, "degrees of rotation per pixel of drag")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "debug logging")
}

// LoadConfig builds the config from defaults, environment and args.
func LoadConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := DefaultConfig()
	cfg.LoadEnv()
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}
