package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("touchcube", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(newTestFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.InDelta(t, 0.3, cfg.TouchScale, 1e-6)
	assert.False(t, cfg.Window)
}

func TestConfigEnvThenFlags(t *testing.T) {
	t.Setenv("TOUCHCUBE_FPS", "30")
	t.Setenv("TOUCHCUBE_WIREFRAME", "true")
	t.Setenv("TOUCHCUBE_TOUCH_SCALE", "0.5")
	cfg, err := LoadConfig(newTestFlagSet(), []string{"-touch-scale", "0.7", "-width", "1024"})
	require.NoError(t, err)
	assert.InDelta(t, 30.0, cfg.FPS, 0)
	assert.True(t, cfg.Wireframe)
	assert.InDelta(t, 0.7, cfg.TouchScale, 1e-9, "flags win over environment")
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestConfigBadFlag(t *testing.T) {
	_, err := LoadConfig(newTestFlagSet(), []string{"-fps", "fast"})
	assert.Error(t, err)
}
