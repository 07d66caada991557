package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Error is a GL error flag raised during the named stage.
type Error struct {
	Code  uint32
	Title string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: OpenGL error %s (0x%X)", e.Title, ErrorName(e.Code), e.Code)
}

// ErrorName returns the enum name of a glGetError code.
func ErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	}
	return "UNKNOWN"
}

// CheckError drains the GL error queue and returns the first error raised
// since the previous check, or nil.
func CheckError(title string) error {
	first := gl.GetError()
	if first == gl.NO_ERROR {
		return nil
	}
	// Later flags are cleared so the next frame starts clean.
	for i := 0; i < 16; i++ {
		if gl.GetError() == gl.NO_ERROR {
			break
		}
	}
	return &Error{Code: first, Title: title}
}
