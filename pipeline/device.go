package pipeline

// GPU object handles. The zero Framebuffer is the window's default framebuffer.
type (
	Framebuffer uint32
	Program     uint32
	Texture     uint32
	VertexArray uint32
	Buffer      uint32
	Uniform     int32
)

const DefaultFramebuffer Framebuffer = 0

// Fixed texture units of both passes.
const (
	UnitDiffuse  = 0
	UnitSpecular = 1

	UnitColor  = 0
	UnitNormal = 1
	UnitDepth  = 2
)

// Device is the subset of the graphics API the passes issue commands
// through. Every piece of state a pass depends on is set explicitly through
// it, in program order, on the render thread.
type Device interface {
	BindFramebuffer(fb Framebuffer)
	Viewport(width, height int32)
	Clear(color, depth bool)
	EnableDepthTest(enabled bool)
	// EnableAdditiveBlend turns blending on with factors (ONE, ONE), or off.
	EnableAdditiveBlend(enabled bool)

	UseProgram(p Program)
	BindTexture(unit uint32, tex Texture)
	BindVertexArray(vao VertexArray)
	// UpdateUniformBuffer overwrites the start of buf with data. data is
	// reused by the caller once the call returns.
	UpdateUniformBuffer(buf Buffer, data []byte)

	SetUniformMat4(p Program, loc Uniform, m [16]float32)
	SetUniform1f(p Program, loc Uniform, v float32)
	SetUniform1i(p Program, loc Uniform, v int32)

	DrawElements(count int32)
	DrawElementsInstanced(count, instances int32)
}

// Mesh is an indexed triangle mesh already resident on the GPU.
type Mesh struct {
	VAO        VertexArray
	IndexCount int32
}

// GBuffer is the render target of the geometry pass and the input of the
// lighting pass.
type GBuffer struct {
	FBO    Framebuffer
	Color  Texture
	Normal Texture
	Depth  Texture
	Width  int32
	Height int32
}
