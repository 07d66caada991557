package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// RingStep is how much further out each ring sits than the previous one.
	RingStep = 3.0
	// FirstRingSize is the number of lights on the innermost ring; every
	// following ring holds RingSizeIncrement more.
	FirstRingSize     = 6
	RingSizeIncrement = 6
)

// RingLayout places point lights on concentric rings around Center. The
// rings breathe with sin(t) and the lights orbit at 2 rad/s.
type RingLayout struct {
	Count       int
	Center      mgl32.Vec3
	BaseRadius  float32
	Intensity   float32
	Attenuation float32
}

// RingIndex returns the ring light i sits on. Ring sizes are 6, 12, 18, ...
// so indices 0-5 are ring 0, 6-17 ring 1, 18-35 ring 2.
func RingIndex(i int) int {
	ring, end := 0, FirstRingSize
	for i >= end {
		ring++
		end += FirstRingSize + ring*RingSizeIncrement
	}
	return ring
}

// RingRadius is the resting radius of light i before the sin(t) modulation.
func (r RingLayout) RingRadius(i int) float32 {
	return r.BaseRadius + RingStep*float32(RingIndex(i))
}

// Lights returns the point lights at time t in seconds.
func (r RingLayout) Lights(t float64) []Light {
	if r.Count <= 0 {
		return nil
	}
	lights := make([]Light, r.Count)
	offset := math.Pi / float64(r.Count)
	breath := math.Sin(t)
	for i := range lights {
		fi := float64(i)
		coeff := float64(r.RingRadius(i)) * breath
		angle := fi + offset + 2*t
		lights[i] = Light{
			Position: mgl32.Vec3{
				float32(coeff*math.Cos(angle)) + r.Center[0],
				r.Center[1],
				float32(coeff*math.Sin(angle)) + r.Center[2],
			},
			Color: mgl32.Vec3{
				float32(math.Cos(fi)),
				float32(math.Cos(2 * fi)),
				1,
			},
			Intensity:   r.Intensity,
			Attenuation: r.Attenuation,
		}
	}
	return lights
}
