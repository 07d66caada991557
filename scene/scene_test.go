package scene

import (
	"math"
	"testing"

	"deferred-shading/config"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScene_Defaults(t *testing.T) {
	s := NewScene(config.Default().Scene)

	half := float32(math.Sqrt(25000)) / 2
	assert.Equal(t, 25000, s.InstanceCount)
	assert.Equal(t, float32(20), s.SpecularPower)
	assert.Equal(t, 30, s.Rings.Count)
	assertVec3InDelta(t, mgl32.Vec3{half, -24.6, half}, s.Rings.Center, eps)
	assert.InDelta(t, math.Sqrt(float64(4*half)), s.Rings.BaseRadius, 1e-4)

	assert.Equal(t, mgl32.Vec3{0, -1, 0}, s.Directional.Position)
	assert.Equal(t, float32(0), s.Directional.Intensity)
	assert.Equal(t, float32(2), s.Directional.Attenuation)

	assert.Equal(t, mgl32.Vec3{1, 1, 0}, s.Spot.Color)
	assert.Equal(t, float32(60), s.Spot.ConeAngle)
	assert.Equal(t, float32(90), s.Spot.Falloff)
}

func TestScene_LightsFollowEye(t *testing.T) {
	s := NewScene(config.Default().Scene)
	eye := mgl32.Vec3{3, 4, 5}

	set := s.Lights(1.25, eye)

	require.Len(t, set.Spots, 1)
	assert.Equal(t, eye, set.Spots[0].Position)
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, set.Spots[0].Direction)
	assert.Equal(t, mgl32.Vec3{50, 0, 50}, s.Spot.Position, "construction parameters stay untouched")

	assert.Len(t, set.Points, 30)
	assert.Len(t, set.Directionals, 1)
	assert.Equal(t, 32, set.Len())
}

func TestScene_PlaceCamera(t *testing.T) {
	s := NewScene(config.Default().Scene)
	cam := NewOrbitCamera()

	s.PlaceCamera(cam)

	half := float32(math.Sqrt(25000)) / 2
	assert.InDelta(t, 14, cam.Radius(), 1e-4)
	assert.InDelta(t, math.Pi/2-0.7, cam.Phi(), 1e-5)
	assertVec3InDelta(t, mgl32.Vec3{half, 0, half + 20}, cam.Center(), eps)
	assert.InDelta(t, 14, cam.Eye().Sub(cam.Center()).Len(), 1e-3)
}

func TestScene_NoPointLights(t *testing.T) {
	cfg := config.Default().Scene
	cfg.PointLights = 0

	set := NewScene(cfg).Lights(0, mgl32.Vec3{})
	assert.Empty(t, set.Points)
	assert.Equal(t, 2, set.Len())
}
