package main

import (
	"testing"

	"fortio.org/terminal/ansipixels"
	"github.com/stretchr/testify/assert"
)

func TestGaugeSize(t *testing.T) {
	w, h := gaugeSize(&ansipixels.AnsiPixels{W: 100, H: 30})
	assert.Equal(t, 5, w)
	assert.Equal(t, 10, h)
	w, h = gaugeSize(&ansipixels.AnsiPixels{W: 3, H: 2})
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}
