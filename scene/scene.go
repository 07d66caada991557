package scene

import (
	"math"

	"deferred-shading/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Scene is the fixed demo scene: a grid of instanced cubes lit by rings of
// point lights, one directional light and one spot light that follows the
// camera.
type Scene struct {
	InstanceCount int
	SpecularPower float32

	Rings       RingLayout
	Directional Light
	Spot        SpotLight
}

// NewScene builds the demo scene from its configuration.
func NewScene(cfg config.SceneConfig) *Scene {
	half := gridHalfExtent(cfg.Instances)

	dir := NewLight(mgl32.Vec3{0, -1, 0})
	dir.Intensity = 0

	return &Scene{
		InstanceCount: cfg.Instances,
		SpecularPower: cfg.SpecularPower,
		Rings: RingLayout{
			Count:       cfg.PointLights,
			Center:      mgl32.Vec3{half, cfg.LightHeight, half},
			BaseRadius:  float32(math.Sqrt(float64(half*2 + half*2))),
			Intensity:   cfg.LightIntensity,
			Attenuation: cfg.LightAttenuation,
		},
		Directional: dir,
		Spot: SpotLight{
			Position:    mgl32.Vec3{50, 0, 50},
			Color:       mgl32.Vec3{1, 1, 0},
			Intensity:   1,
			Attenuation: 1,
			Direction:   mgl32.Vec3{0, -1, 0},
			ConeAngle:   60,
			Falloff:     90,
		},
	}
}

// Lights returns every light of the frame at time t. The spot light is
// moved to the camera eye so it acts as a headlamp.
func (s *Scene) Lights(t float64, eye mgl32.Vec3) LightSet {
	spot := s.Spot
	spot.Position = eye
	return LightSet{
		Points:       s.Rings.Lights(t),
		Directionals: []Light{s.Directional},
		Spots:        []SpotLight{spot},
	}
}

// PlaceCamera puts the camera in its start pose, looking over the cube grid
// from slightly above and in front of it.
func (s *Scene) PlaceCamera(cam *OrbitCamera) {
	half := gridHalfExtent(s.InstanceCount)
	cam.SetCenter(mgl32.Vec3{half, 0, half})
	cam.Turn(0.7, 0)
	cam.Zoom(0.4)
	cam.SetCenter(cam.Center().Add(mgl32.Vec3{0, 0, 20}))
}

// gridHalfExtent is half the side of the square the instance grid covers.
func gridHalfExtent(instances int) float32 {
	return float32(math.Sqrt(float64(instances))) * 0.5
}
