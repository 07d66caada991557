package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"deferred-shading/pipeline"
)

// GBuffer is the geometry pass framebuffer: RGBA8 albedo and specular mask,
// RGBA16F normal and specular power, and a 24-bit depth texture.
type GBuffer struct {
	FBO    uint32
	Color  uint32
	Normal uint32
	Depth  uint32
	Width  int32
	Height int32
}

// NewGBuffer allocates the three textures and attaches them to a new
// framebuffer. An incomplete framebuffer is an error.
func NewGBuffer(width, height int) (*GBuffer, error) {
	gb := &GBuffer{}
	if err := gb.alloc(width, height); err != nil {
		return nil, err
	}
	return gb, nil
}

// Targets returns the handles the passes bind.
func (gb *GBuffer) Targets() pipeline.GBuffer {
	return pipeline.GBuffer{
		FBO:    pipeline.Framebuffer(gb.FBO),
		Color:  pipeline.Texture(gb.Color),
		Normal: pipeline.Texture(gb.Normal),
		Depth:  pipeline.Texture(gb.Depth),
		Width:  gb.Width,
		Height: gb.Height,
	}
}

func (gb *GBuffer) alloc(width, height int) error {
	gb.Width = int32(width)
	gb.Height = int32(height)

	gb.Color = newTargetTexture(gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE, gb.Width, gb.Height)
	gb.Normal = newTargetTexture(gl.RGBA16F, gl.RGBA, gl.FLOAT, gb.Width, gb.Height)
	gb.Depth = newTargetTexture(gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT, gl.FLOAT, gb.Width, gb.Height)

	gl.GenFramebuffers(1, &gb.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, gb.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, gb.Color, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT1, gl.TEXTURE_2D, gb.Normal, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, gb.Depth, 0)

	drawBuffers := [2]uint32{gl.COLOR_ATTACHMENT0, gl.COLOR_ATTACHMENT1}
	gl.DrawBuffers(int32(len(drawBuffers)), &drawBuffers[0])

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		gb.Destroy()
		gb.Width, gb.Height = 0, 0
		return fmt.Errorf("gbuffer FBO incomplete: status=0x%X", status)
	}
	return nil
}

// Resize reallocates the G-buffer at a new size.
func (gb *GBuffer) Resize(width, height int) error {
	gb.Destroy()
	return gb.alloc(width, height)
}

// Destroy frees GPU resources.
func (gb *GBuffer) Destroy() {
	if gb.FBO != 0 {
		gl.DeleteFramebuffers(1, &gb.FBO)
		gb.FBO = 0
	}
	for _, tex := range []*uint32{&gb.Color, &gb.Normal, &gb.Depth} {
		if *tex != 0 {
			gl.DeleteTextures(1, tex)
			*tex = 0
		}
	}
}

// newTargetTexture allocates an empty render target sampled with nearest
// filtering and clamped at the edges.
func newTargetTexture(internalFormat int32, format, xtype uint32, width, height int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height, 0, format, xtype, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
