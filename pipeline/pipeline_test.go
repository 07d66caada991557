package pipeline

import (
	"math/rand"
	"testing"

	"deferred-shading/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lightUBO  Buffer = 3
	cameraUBO Buffer = 4
)

var lightPrograms = [3]Program{20, 21, 22}

func testGBuffer() GBuffer {
	return GBuffer{FBO: 7, Color: 31, Normal: 32, Depth: 33, Width: 320, Height: 200}
}

func testGeometryPass() *GeometryPass {
	return &GeometryPass{
		Program: GeometryProgram{Program: 10, MVP: 1, MV: 2, Time: 3, SpecularPower: 4, InstanceNumber: 5},
		Target:  testGBuffer(),
		Cube:    Mesh{VAO: 40, IndexCount: 36},
	}
}

func testLightingPass() *LightingPass {
	return &LightingPass{
		Programs:     lightPrograms,
		LightBuffer:  lightUBO,
		CameraBuffer: cameraUBO,
		Quad:         Mesh{VAO: 41, IndexCount: 6},
	}
}

func testLights() scene.LightSet {
	points := make([]scene.Light, 5)
	for i := range points {
		points[i] = scene.Light{
			Position:    mgl32.Vec3{float32(i), 1, -float32(i)},
			Color:       mgl32.Vec3{float32(i) * 0.1, 0.5, 1},
			Intensity:   4,
			Attenuation: float32(i + 1),
		}
	}
	return scene.LightSet{
		Points:       points,
		Directionals: []scene.Light{{Position: mgl32.Vec3{0, -1, 0}, Color: mgl32.Vec3{1, 1, 1}, Intensity: 0.5, Attenuation: 2}},
		Spots: []scene.SpotLight{{
			Position: mgl32.Vec3{3, 4, 5}, Color: mgl32.Vec3{1, 1, 0}, Intensity: 1, Attenuation: 1,
			Direction: mgl32.Vec3{0, -1, 0}, ConeAngle: 60, Falloff: 90,
		}},
	}
}

func testView() scene.FrameView {
	cam := scene.NewOrbitCamera()
	return scene.NewFrameView(cam, 1.6)
}

func TestGeometryPass_Run(t *testing.T) {
	dev := newFakeDevice(lightUBO, lightPrograms)
	pass := testGeometryPass()

	pass.Run(dev, GeometryInputs{
		View:          testView(),
		Time:          1.5,
		InstanceCount: 25000,
		SpecularPower: 20,
		Diffuse:       50,
		Specular:      51,
	})

	assert.Equal(t, []string{
		"depth true",
		"blend false",
		"fb 7",
		"viewport 320x200",
		"clear color=true depth=true",
		"program 10",
		"mat4 10/1",
		"mat4 10/2",
		"1f 10/3=1.5",
		"1f 10/4=20",
		"1i 10/5=25000",
		"vao 40",
		"texture 0=50",
		"texture 1=51",
		"draw 36 x25000",
		"fb 0",
	}, dev.log)

	require.Len(t, dev.draws, 1)
	d := dev.draws[0]
	assert.True(t, d.instanced)
	assert.Equal(t, Framebuffer(7), d.fb)
	assert.True(t, d.depthTest)
	assert.False(t, d.blend)
}

func TestGeometryPass_NoInstances(t *testing.T) {
	dev := newFakeDevice(lightUBO, lightPrograms)

	testGeometryPass().Run(dev, GeometryInputs{View: testView()})

	assert.Empty(t, dev.draws)
	assert.Equal(t, "fb 0", dev.log[len(dev.log)-1])
}

func TestLightingPass_Order(t *testing.T) {
	dev := newFakeDevice(lightUBO, lightPrograms)
	pass := testLightingPass()
	lights := testLights()
	view := testView()

	stats := pass.Run(dev, LightingInputs{
		GBuffer: testGBuffer(),
		Camera:  view.CameraBlock(),
		Lights:  lights,
		Width:   320,
		Height:  200,
	})

	assert.Equal(t, [3]int{5, 1, 1}, stats.Draws)
	assert.Equal(t, 7, stats.Total())
	require.Len(t, dev.draws, 7)

	// Blending is switched on once before the first quad and off once after the last.
	assert.Equal(t, 1, dev.count("blend true"))
	assert.Equal(t, 1, dev.count("blend false"))
	assert.Less(t, dev.index("blend true"), dev.index("draw 6"))
	assert.Greater(t, dev.index("blend false"), dev.lastIndex("draw 6"))
	assert.Equal(t, "blend false", dev.log[len(dev.log)-1])

	// Camera data goes up once per frame, before any light is drawn.
	assert.Equal(t, 1, dev.count("ubo 4 len=144"))
	assert.Less(t, dev.index("ubo 4 len=144"), dev.index("draw 6"))
	cam, err := scene.DecodeCameraBlock(dev.buffers[cameraUBO])
	require.NoError(t, err)
	assert.Equal(t, view.CameraBlock(), cam)

	// G-buffer inputs are bound once and stay bound.
	assert.Equal(t, 1, dev.count("texture 0=31"))
	assert.Equal(t, 1, dev.count("vao 41"))

	// Point, then directional, then spot.
	assert.Less(t, dev.index("program 20"), dev.index("program 21"))
	assert.Less(t, dev.index("program 21"), dev.index("program 22"))

	for i, d := range dev.draws {
		assert.Equal(t, DefaultFramebuffer, d.fb, "draw %d", i)
		assert.False(t, d.depthTest, "draw %d", i)
		assert.True(t, d.blend, "draw %d", i)
		assert.Equal(t, Texture(31), d.textures[UnitColor])
		assert.Equal(t, Texture(32), d.textures[UnitNormal])
		assert.Equal(t, Texture(33), d.textures[UnitDepth])
	}

	// Each quad sees exactly the record of the light it draws.
	for i, p := range lights.Points {
		d := dev.draws[i]
		assert.Equal(t, lightPrograms[scene.LightPoint], d.program)
		assert.Len(t, d.lightBlock, scene.LightBlockSize)
		got, err := scene.DecodeLight(d.lightBlock)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	dir := dev.draws[5]
	assert.Equal(t, lightPrograms[scene.LightDirectional], dir.program)
	got, err := scene.DecodeLight(dir.lightBlock)
	require.NoError(t, err)
	assert.Equal(t, lights.Directionals[0], got)

	spot := dev.draws[6]
	assert.Equal(t, lightPrograms[scene.LightSpot], spot.program)
	assert.Len(t, spot.lightBlock, scene.SpotLightBlockSize)
	gotSpot, err := scene.DecodeSpotLight(spot.lightBlock)
	require.NoError(t, err)
	assert.Equal(t, lights.Spots[0], gotSpot)
}

func TestLightingPass_SkipsEmptyKinds(t *testing.T) {
	dev := newFakeDevice(lightUBO, lightPrograms)
	lights := testLights()
	lights.Directionals = nil

	stats := testLightingPass().Run(dev, LightingInputs{
		GBuffer: testGBuffer(),
		Camera:  testView().CameraBlock(),
		Lights:  lights,
		Width:   320,
		Height:  200,
	})

	assert.Equal(t, [3]int{5, 0, 1}, stats.Draws)
	assert.Equal(t, -1, dev.index("program 21"))
	assert.Equal(t, 1, dev.count("blend true"))
	assert.Equal(t, 1, dev.count("blend false"))
}

func TestLightingPass_AdditiveOrderIndependent(t *testing.T) {
	lights := testLights()
	in := LightingInputs{
		GBuffer: testGBuffer(),
		Camera:  testView().CameraBlock(),
		Lights:  lights,
		Width:   320,
		Height:  200,
	}

	dev := newFakeDevice(lightUBO, lightPrograms)
	testLightingPass().Run(dev, in)
	want := dev.pixel

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := append([]scene.Light(nil), lights.Points...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		in.Lights.Points = shuffled

		dev := newFakeDevice(lightUBO, lightPrograms)
		testLightingPass().Run(dev, in)
		for c := range want {
			assert.InDelta(t, want[c], dev.pixel[c], 1e-9)
		}
	}

	// The composite is the sum of every light drawn on its own.
	var sum [3]float64
	singles := make([]scene.LightSet, 0, lights.Len())
	for _, l := range lights.Points {
		singles = append(singles, scene.LightSet{Points: []scene.Light{l}})
	}
	singles = append(singles,
		scene.LightSet{Directionals: lights.Directionals},
		scene.LightSet{Spots: lights.Spots},
	)
	for _, set := range singles {
		dev := newFakeDevice(lightUBO, lightPrograms)
		in.Lights = set
		testLightingPass().Run(dev, in)
		for c := range sum {
			sum[c] += dev.pixel[c]
		}
	}
	for c := range want {
		assert.InDelta(t, want[c], sum[c], 1e-9)
	}
}

func TestRenderer_RunFrame(t *testing.T) {
	dev := newFakeDevice(lightUBO, lightPrograms)
	r := &Renderer{Geometry: testGeometryPass(), Lighting: testLightingPass()}
	view := testView()

	stats := r.RunFrame(dev, Frame{
		View:          view,
		Time:          2,
		Lights:        testLights(),
		InstanceCount: 100,
		SpecularPower: 20,
		Diffuse:       50,
		Specular:      51,
		Width:         320,
		Height:        200,
	})

	assert.Equal(t, 7, stats.Total())
	require.Len(t, dev.draws, 8)
	assert.True(t, dev.draws[0].instanced, "geometry runs first")
	assert.Equal(t, Framebuffer(7), dev.draws[0].fb)
	for _, d := range dev.draws[1:] {
		assert.False(t, d.instanced)
		assert.Equal(t, DefaultFramebuffer, d.fb)
	}
	assert.Less(t, dev.index("draw 36 x100"), dev.index("blend true"))

	cam, err := scene.DecodeCameraBlock(dev.buffers[cameraUBO])
	require.NoError(t, err)
	assert.Equal(t, view.Eye, cam.Eye)
}
