package renderer

import (
	"fmt"

	"deferred-shading/config"
	"deferred-shading/core"
	"deferred-shading/internal/opengl"
	"deferred-shading/logging"
	"deferred-shading/pipeline"
	"deferred-shading/scene"
	"deferred-shading/textures"
)

// statsInterval is how many frames pass between two debug stat lines.
const statsInterval = 300

// RenderEngine owns every GL resource of the demo and drives the deferred
// pipeline over them.
type RenderEngine struct {
	window *core.Window
	scene  *scene.Scene
	logger logging.Logger

	dev      *opengl.Device
	programs *opengl.Programs
	gbuffer  *opengl.GBuffer
	cube     *opengl.GPUMesh
	quad     *opengl.GPUMesh
	lightUBO pipeline.Buffer
	camUBO   pipeline.Buffer
	textures *textures.TextureManager
	diffuse  *textures.Texture
	specular *textures.Texture

	pipeline *pipeline.Renderer
	frames   uint64
}

// NewRenderEngine creates the GL resources for sc. The window's context must
// be current. Any failure here is fatal for the demo.
func NewRenderEngine(window *core.Window, cfg *config.Config, sc *scene.Scene, logger logging.Logger) (*RenderEngine, error) {
	dev, err := opengl.Init(logger)
	if err != nil {
		return nil, err
	}

	re := &RenderEngine{
		window: window,
		scene:  sc,
		logger: logger,
		dev:    dev,
	}
	if err := re.init(cfg); err != nil {
		re.Destroy()
		return nil, err
	}

	logger.Infof("Render engine initialized (OpenGL, %dx%d, %d instances, %d point lights)",
		window.Width, window.Height, sc.InstanceCount, sc.Rings.Count)
	return re, nil
}

func (re *RenderEngine) init(cfg *config.Config) error {
	var err error
	re.programs, err = opengl.NewPrograms()
	if err != nil {
		return err
	}

	re.gbuffer, err = opengl.NewGBuffer(re.window.Width, re.window.Height)
	if err != nil {
		return err
	}

	re.cube = opengl.NewCubeMesh()
	re.quad = opengl.NewQuadMesh()

	// One light buffer serves every kind, so it is sized for the largest record.
	re.lightUBO = opengl.NewUniformBuffer(scene.SpotLightBlockSize, opengl.LightBinding)
	re.camUBO = opengl.NewUniformBuffer(scene.CameraBlockSize, opengl.CameraBinding)

	re.textures = textures.NewTextureManager(re.dev, re.logger)
	re.diffuse, err = re.textures.GetOrDefault(cfg.Assets.Diffuse, false)
	if err != nil {
		return fmt.Errorf("diffuse texture: %w", err)
	}
	re.specular, err = re.textures.GetOrDefault(cfg.Assets.Specular, true)
	if err != nil {
		return fmt.Errorf("specular texture: %w", err)
	}

	if err := opengl.CheckError("setup"); err != nil {
		return err
	}

	re.pipeline = &pipeline.Renderer{
		Geometry: &pipeline.GeometryPass{
			Program: re.programs.Geometry,
			Target:  re.gbuffer.Targets(),
			Cube:    re.cube.Mesh(),
		},
		Lighting: &pipeline.LightingPass{
			Programs:     re.programs.Lights,
			LightBuffer:  re.lightUBO,
			CameraBuffer: re.camUBO,
			Quad:         re.quad.Mesh(),
		},
	}
	return nil
}

// Aspect returns the framebuffer aspect ratio.
func (re *RenderEngine) Aspect() float32 {
	if re.window.Height == 0 {
		return 1
	}
	return float32(re.window.Width) / float32(re.window.Height)
}

// Render draws one frame at time t seconds. GL errors raised during the
// frame are logged and do not stop the loop; failing to reallocate the
// G-buffer after a resize is returned.
func (re *RenderEngine) Render(view scene.FrameView, lights scene.LightSet, t float64) (pipeline.LightingStats, error) {
	if err := re.syncSize(); err != nil {
		return pipeline.LightingStats{}, fmt.Errorf("resize gbuffer: %w", err)
	}

	stats := re.pipeline.RunFrame(re.dev, pipeline.Frame{
		View:          view,
		Time:          float32(t),
		Lights:        lights,
		InstanceCount: int32(re.scene.InstanceCount),
		SpecularPower: re.scene.SpecularPower,
		Diffuse:       re.diffuse.Handle,
		Specular:      re.specular.Handle,
		Width:         int32(re.window.Width),
		Height:        int32(re.window.Height),
	})

	if err := opengl.CheckError("End loop"); err != nil {
		re.logger.Warnf("%v", err)
	}

	re.frames++
	if re.frames%statsInterval == 0 {
		re.logger.Debugf("frame %d: point=%d directional=%d spot=%d",
			re.frames,
			stats.Draws[scene.LightPoint],
			stats.Draws[scene.LightDirectional],
			stats.Draws[scene.LightSpot])
	}
	return stats, nil
}

// Present swaps the back buffer to the screen.
func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

// syncSize reallocates the G-buffer when the framebuffer size changed.
func (re *RenderEngine) syncSize() error {
	w, h := re.window.Width, re.window.Height
	if !targetStale(w, h, re.pipeline.Geometry.Target) {
		return nil
	}
	if err := re.gbuffer.Resize(w, h); err != nil {
		re.pipeline.Geometry.Target = pipeline.GBuffer{}
		return err
	}
	re.pipeline.Geometry.Target = re.gbuffer.Targets()
	re.logger.Debugf("gbuffer resized to %dx%d", w, h)
	return nil
}

// targetStale reports whether a w×h framebuffer needs a new G-buffer. A
// minimized window reports a zero size and keeps the current one.
func targetStale(w, h int, target pipeline.GBuffer) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	return int32(w) != target.Width || int32(h) != target.Height
}

// Destroy frees every GL resource created so far.
func (re *RenderEngine) Destroy() {
	if re.textures != nil {
		re.textures.DestroyAll()
	}
	opengl.DeleteBuffer(re.lightUBO)
	opengl.DeleteBuffer(re.camUBO)
	re.lightUBO, re.camUBO = 0, 0
	if re.quad != nil {
		re.quad.Destroy()
	}
	if re.cube != nil {
		re.cube.Destroy()
	}
	if re.gbuffer != nil {
		re.gbuffer.Destroy()
	}
	if re.programs != nil {
		re.programs.Destroy()
	}
}
