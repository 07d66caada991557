package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"deferred-shading/pipeline"
)

// UploadRGB uploads tightly packed 8-bit RGB texels as a mipmapped,
// repeating 2D texture.
// Call this from the main goroutine (OpenGL context must be current).
func UploadRGB(width, height int, pix []byte) (pipeline.Texture, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	if len(pix) < width*height*3 {
		return 0, fmt.Errorf("texture has %d bytes, want %d", len(pix), width*height*3)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Rows of RGB texels are not 4-byte aligned in general.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGB8,
		int32(width),
		int32(height),
		0,
		gl.RGB,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&pix[0]),
	)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return pipeline.Texture(id), nil
}

// DeleteTexture frees a texture created by UploadRGB.
func DeleteTexture(tex pipeline.Texture) {
	id := uint32(tex)
	if id == 0 {
		return
	}
	gl.DeleteTextures(1, &id)
}
