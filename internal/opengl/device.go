package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"deferred-shading/logging"
	"deferred-shading/pipeline"
)

// Device issues pipeline commands to the current OpenGL context.
type Device struct{}

// Init loads the GL function pointers for the current context. It must be
// called once after the context is made current.
func Init(logger logging.Logger) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Infof("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Debugf("GLSL version: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)
	return &Device{}, nil
}

func (*Device) BindFramebuffer(fb pipeline.Framebuffer) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(fb))
}

func (*Device) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (*Device) Clear(color, depth bool) {
	var mask uint32
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
}

func (*Device) EnableDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (*Device) EnableAdditiveBlend(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.Disable(gl.BLEND)
	}
}

func (*Device) UseProgram(p pipeline.Program) {
	gl.UseProgram(uint32(p))
}

func (*Device) BindTexture(unit uint32, tex pipeline.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
}

func (*Device) BindVertexArray(vao pipeline.VertexArray) {
	gl.BindVertexArray(uint32(vao))
}

func (*Device) UpdateUniformBuffer(buf pipeline.Buffer, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, uint32(buf))
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(data), unsafe.Pointer(&data[0]))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (*Device) SetUniformMat4(p pipeline.Program, loc pipeline.Uniform, m [16]float32) {
	gl.ProgramUniformMatrix4fv(uint32(p), int32(loc), 1, false, &m[0])
}

func (*Device) SetUniform1f(p pipeline.Program, loc pipeline.Uniform, v float32) {
	gl.ProgramUniform1f(uint32(p), int32(loc), v)
}

func (*Device) SetUniform1i(p pipeline.Program, loc pipeline.Uniform, v int32) {
	gl.ProgramUniform1i(uint32(p), int32(loc), v)
}

func (*Device) DrawElements(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
}

func (*Device) DrawElementsInstanced(count, instances int32) {
	gl.DrawElementsInstanced(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil, instances)
}

func (*Device) UploadRGB(width, height int, pix []byte) (pipeline.Texture, error) {
	return UploadRGB(width, height, pix)
}

func (*Device) DeleteTexture(tex pipeline.Texture) {
	DeleteTexture(tex)
}

var _ pipeline.Device = (*Device)(nil)
