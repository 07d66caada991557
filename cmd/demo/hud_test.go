package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deferred-shading/pipeline"
)

func TestDebugOverlay_Tick(t *testing.T) {
	var do DebugOverlay
	stats := pipeline.LightingStats{Draws: [3]int{30, 1, 1}}

	for i := 1; i < 60; i++ {
		assert.False(t, do.Tick(float64(i)/60, "aogl", stats))
	}
	assert.True(t, do.Tick(1.0, "aogl", stats))

	assert.Equal(t, 60, do.FPS())
	assert.Equal(t, "aogl | FPS: 60 | Lights: 30 point, 1 directional, 1 spot", do.GetText())
}

func TestDebugOverlay_ClearKeepsCounter(t *testing.T) {
	var do DebugOverlay
	do.AddLine("a %d", 1)
	do.AddLine("b")
	assert.Equal(t, "a 1 | b", do.GetText())

	do.Clear()
	assert.Empty(t, do.GetText())
	assert.Zero(t, do.FPS())
}
