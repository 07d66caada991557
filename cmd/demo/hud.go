package main

import (
	"fmt"
	"strings"

	"deferred-shading/pipeline"
	"deferred-shading/scene"
)

// DebugOverlay collects the status shown in the window title.
type DebugOverlay struct {
	lines []string

	frames     int
	lastUpdate float64
	fps        int
}

func (do *DebugOverlay) AddLine(format string, args ...interface{}) {
	do.lines = append(do.lines, fmt.Sprintf(format, args...))
}

func (do *DebugOverlay) Clear() {
	do.lines = do.lines[:0]
}

// GetText joins the lines with " | ".
func (do *DebugOverlay) GetText() string {
	return strings.Join(do.lines, " | ")
}

// Tick counts one frame presented at now seconds. Once per second it rebuilds
// the overlay and reports true.
func (do *DebugOverlay) Tick(now float64, title string, stats pipeline.LightingStats) bool {
	do.frames++
	if now-do.lastUpdate < 1.0 {
		return false
	}
	do.fps = int(float64(do.frames) / (now - do.lastUpdate))
	do.frames = 0
	do.lastUpdate = now

	do.Clear()
	do.AddLine("%s", title)
	do.AddLine("FPS: %d", do.fps)
	do.AddLine("Lights: %d point, %d directional, %d spot",
		stats.Draws[scene.LightPoint],
		stats.Draws[scene.LightDirectional],
		stats.Draws[scene.LightSpot])
	return true
}

// FPS returns the rate measured at the last update.
func (do *DebugOverlay) FPS() int {
	return do.fps
}
