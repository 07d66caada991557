package pipeline

import (
	"deferred-shading/scene"
)

// GeometryProgram is the G-buffer fill program and its uniform locations.
type GeometryProgram struct {
	Program        Program
	MVP            Uniform
	MV             Uniform
	Time           Uniform
	SpecularPower  Uniform
	InstanceNumber Uniform
}

// GeometryPass draws the instanced cube grid into the G-buffer.
type GeometryPass struct {
	Program GeometryProgram
	Target  GBuffer
	Cube    Mesh
}

// GeometryInputs is what the geometry pass reads from the frame.
type GeometryInputs struct {
	View          scene.FrameView
	Time          float32
	InstanceCount int32
	SpecularPower float32
	Diffuse       Texture
	Specular      Texture
}

// Run overwrites the whole G-buffer with the cube grid. The instance
// placement happens in the vertex stage from gl_InstanceID, so the only
// per-instance input is the count. The default framebuffer is bound again
// on return.
func (p *GeometryPass) Run(dev Device, in GeometryInputs) {
	dev.EnableDepthTest(true)
	dev.EnableAdditiveBlend(false)

	dev.BindFramebuffer(p.Target.FBO)
	dev.Viewport(p.Target.Width, p.Target.Height)
	dev.Clear(true, true)

	prog := p.Program
	dev.UseProgram(prog.Program)
	dev.SetUniformMat4(prog.Program, prog.MVP, in.View.ViewProjection)
	dev.SetUniformMat4(prog.Program, prog.MV, in.View.View)
	dev.SetUniform1f(prog.Program, prog.Time, in.Time)
	dev.SetUniform1f(prog.Program, prog.SpecularPower, in.SpecularPower)
	dev.SetUniform1i(prog.Program, prog.InstanceNumber, in.InstanceCount)

	dev.BindVertexArray(p.Cube.VAO)
	dev.BindTexture(UnitDiffuse, in.Diffuse)
	dev.BindTexture(UnitSpecular, in.Specular)
	if in.InstanceCount > 0 {
		dev.DrawElementsInstanced(p.Cube.IndexCount, in.InstanceCount)
	}

	dev.BindFramebuffer(DefaultFramebuffer)
}
