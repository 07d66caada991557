package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"deferred-shading/config"
	"deferred-shading/scene"
)

// GLFW and OpenGL calls must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

// Window is a GLFW window owning an OpenGL 4.1 core context.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

// NewWindow creates the window, makes its context current and applies the
// swap interval.
func NewWindow(cfg config.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle: handle,
		Title:  cfg.Title,
	}
	// The framebuffer may be larger than the window on high-DPI displays.
	window.Width, window.Height = handle.GetFramebufferSize()

	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})

	return window, nil
}

// ShouldClose reports whether the user closed the window or pressed escape.
func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose() || w.Handle.GetKey(glfw.KeyEscape) == glfw.Press
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

// Time returns seconds since the window was created.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Pointer samples the mouse buttons, left shift and the cursor position.
func (w *Window) Pointer() scene.PointerState {
	x, y := w.Handle.GetCursorPos()
	return scene.PointerState{
		Left:   w.Handle.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		Right:  w.Handle.GetMouseButton(glfw.MouseButtonRight) == glfw.Press,
		Middle: w.Handle.GetMouseButton(glfw.MouseButtonMiddle) == glfw.Press,
		Shift:  w.Handle.GetKey(glfw.KeyLeftShift) == glfw.Press,
		X:      x,
		Y:      y,
	}
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}
