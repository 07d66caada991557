package pipeline

import (
	"deferred-shading/scene"
)

// LightingPass composites every light over the default framebuffer, one
// full-screen quad per light, accumulated with (ONE, ONE) blending.
type LightingPass struct {
	// Programs holds one program per light kind, indexed by scene.LightKind.
	// All three declare the Light and Camera uniform blocks.
	Programs [len(scene.LightKinds)]Program

	LightBuffer  Buffer
	CameraBuffer Buffer
	Quad         Mesh

	scratch []byte
}

// LightingInputs is what the lighting pass reads from the frame.
type LightingInputs struct {
	GBuffer GBuffer
	Camera  scene.CameraBlock
	Lights  scene.LightSet
	Width   int32
	Height  int32
}

// LightingStats counts the quads drawn per light kind.
type LightingStats struct {
	Draws [len(scene.LightKinds)]int
}

func (s LightingStats) Total() int {
	n := 0
	for _, d := range s.Draws {
		n += d
	}
	return n
}

// Run draws point lights, then directional lights, then spot lights. The
// light buffer only ever holds the record of the light being drawn.
func (p *LightingPass) Run(dev Device, in LightingInputs) LightingStats {
	var stats LightingStats

	dev.BindFramebuffer(DefaultFramebuffer)
	dev.Viewport(in.Width, in.Height)
	dev.Clear(true, false)

	dev.EnableDepthTest(false)
	dev.EnableAdditiveBlend(true)

	p.scratch = in.Camera.AppendStd140(p.scratch[:0])
	dev.UpdateUniformBuffer(p.CameraBuffer, p.scratch)

	dev.BindTexture(UnitColor, in.GBuffer.Color)
	dev.BindTexture(UnitNormal, in.GBuffer.Normal)
	dev.BindTexture(UnitDepth, in.GBuffer.Depth)
	dev.BindVertexArray(p.Quad.VAO)

	for _, kind := range scene.LightKinds {
		records := in.Lights.Records(kind)
		if len(records) == 0 {
			continue
		}
		dev.UseProgram(p.Programs[kind])
		for _, rec := range records {
			p.scratch = rec.AppendStd140(p.scratch[:0])
			dev.UpdateUniformBuffer(p.LightBuffer, p.scratch)
			dev.DrawElements(p.Quad.IndexCount)
			stats.Draws[kind]++
		}
	}

	dev.EnableAdditiveBlend(false)
	return stats
}
