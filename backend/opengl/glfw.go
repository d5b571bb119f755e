package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/squares"
)

// Window is a GLFW window with a current OpenGL core context.
// It implements squares.Surface.
type Window struct {
	*glfw.Window
}

// OpenWindow creates the window described by cfg, makes its context current
// and loads the GL function pointers. glfw.Init must have succeeded and the
// caller must be on the main OS thread.
func OpenWindow(cfg squares.WindowConfig, hidden bool) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	w.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		w.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := w.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	return &Window{Window: w}, nil
}

// Present swaps buffers and polls OS events.
func (w *Window) Present() {
	w.SwapBuffers()
	glfw.PollEvents()
}
