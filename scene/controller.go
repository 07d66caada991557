package scene

import (
	"math"
)

// Drag sensitivities.
const (
	MouseZoomSpeed = 0.05
	MouseTurnSpeed = 0.005
	MousePanSpeed  = 0.001

	// AutoSpeed drives the constant travel and azimuth turn applied every frame.
	AutoSpeed = 0.005
)

// PointerState is the input snapshot of one frame.
type PointerState struct {
	Left, Right, Middle bool
	Shift               bool
	X, Y                float64
}

// OrbitController maps drag gestures to camera moves. Gestures only act
// while shift is held: right drag zooms, left drag turns and middle drag
// pans. Without shift, a pressed button moves the lock point to the cursor.
type OrbitController struct {
	// AutoMotion enables the slow travel and oscillating turn applied every
	// frame regardless of input.
	AutoMotion bool

	lockX, lockY float64
}

func NewOrbitController(autoMotion bool) *OrbitController {
	return &OrbitController{AutoMotion: autoMotion}
}

// Update applies one frame of input and auto motion to cam. t is the time
// in seconds since startup.
func (c *OrbitController) Update(cam *OrbitCamera, in PointerState, t float64) {
	pressed := in.Left || in.Right || in.Middle
	if !in.Shift && pressed {
		c.lockX, c.lockY = in.X, in.Y
	}

	if in.Shift {
		dx := float32(int(in.X - c.lockX))
		dy := float32(int(in.Y - c.lockY))
		switch {
		case in.Right:
			var dir float32
			if dx > 0 {
				dir = -1
			} else if dx < 0 {
				dir = 1
			}
			cam.Zoom(dir * MouseZoomSpeed)
		case in.Left:
			cam.Turn(dy*MouseTurnSpeed, dx*MouseTurnSpeed)
		case in.Middle:
			cam.Pan(dx*MousePanSpeed, dy*MousePanSpeed)
		}
		c.lockX, c.lockY = in.X, in.Y
	}

	if c.AutoMotion {
		cam.Pan(AutoSpeed, 0)
		cam.Turn(float32(0.0025*math.Sin(0.7*t)), AutoSpeed)
	}
}
