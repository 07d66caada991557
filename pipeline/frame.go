package pipeline

import (
	"deferred-shading/scene"
)

// Frame is everything one frame renders from.
type Frame struct {
	View          scene.FrameView
	Time          float32
	Lights        scene.LightSet
	InstanceCount int32
	SpecularPower float32
	Diffuse       Texture
	Specular      Texture
	Width         int32
	Height        int32
}

// Renderer owns the two passes of the deferred pipeline.
type Renderer struct {
	Geometry *GeometryPass
	Lighting *LightingPass
}

// RunFrame fills the G-buffer and then composites the lights from it.
func (r *Renderer) RunFrame(dev Device, f Frame) LightingStats {
	r.Geometry.Run(dev, GeometryInputs{
		View:          f.View,
		Time:          f.Time,
		InstanceCount: f.InstanceCount,
		SpecularPower: f.SpecularPower,
		Diffuse:       f.Diffuse,
		Specular:      f.Specular,
	})
	return r.Lighting.Run(dev, LightingInputs{
		GBuffer: r.Geometry.Target,
		Camera:  f.View.CameraBlock(),
		Lights:  f.Lights,
		Width:   f.Width,
		Height:  f.Height,
	})
}
