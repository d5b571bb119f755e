package squares

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrNilGeometry is returned when Upload is given no geometry.
	ErrNilGeometry = errors.New("squares: nil geometry")
	// ErrAlreadyUploaded is returned when a geometry is uploaded a second time.
	ErrAlreadyUploaded = errors.New("squares: geometry already uploaded")
)

// Device is the graphics API surface the renderer needs.
// backend/opengl provides the OpenGL implementation.
type Device interface {
	// CompileProgram compiles and links both stages. On failure it still
	// returns the program handle together with a *CompileError (or several
	// joined with errors.Join).
	CompileProgram(vertexSource, fragmentSource string) (uint32, error)
	// UploadVertices copies data into a new vertex buffer described by layout
	// and returns the vertex array handle.
	UploadVertices(data []float32, layout Layout) uint32
	// DrawStrip draws count vertices of vao as one triangle strip.
	DrawStrip(program, vao uint32, count int32)
	// Clear clears the color buffer.
	Clear(c Color)
	// Release deletes the program and the vertex array with its buffer.
	Release(program, vao uint32)
}

// UploadOption configures Upload.
type UploadOption func(*uploadConfig)

type uploadConfig struct {
	strict bool
	logger *slog.Logger
}

// WithStrictShaders makes a compile or link failure abort the upload.
// By default the failure is logged and setup continues.
func WithStrictShaders() UploadOption {
	return func(c *uploadConfig) { c.strict = true }
}

// WithLogger sets the logger used for shader diagnostics.
func WithLogger(l *slog.Logger) UploadOption {
	return func(c *uploadConfig) { c.logger = l }
}

// Renderable is a geometry resident on the GPU together with its program.
type Renderable struct {
	dev     Device
	program uint32
	vao     uint32
	count   int32
}

// Upload performs the one-time GPU setup for g: it compiles the shader
// program, copies the frozen buffer into a vertex buffer and describes the
// attribute layout. A geometry can be uploaded only once.
func Upload(dev Device, g *Geometry, shaders ShaderSources, opts ...UploadOption) (*Renderable, error) {
	if g == nil {
		return nil, ErrNilGeometry
	}
	if g.uploaded {
		return nil, ErrAlreadyUploaded
	}

	cfg := uploadConfig{logger: logger}
	for _, opt := range opts {
		opt(&cfg)
	}

	program, err := dev.CompileProgram(shaders.Vertex, shaders.Fragment)
	if err != nil {
		if cfg.strict {
			if program != 0 {
				dev.Release(program, 0)
			}
			return nil, fmt.Errorf("compile shaders: %w", err)
		}
		cfg.logger.Error("shader setup failed, continuing", "program", program, "error", err)
	}

	g.uploaded = true
	vao := dev.UploadVertices(g.data, g.layout)
	cfg.logger.Debug("geometry uploaded",
		"program", program,
		"vao", vao,
		"squares", g.squares,
		"floats", len(g.data),
		"layout", g.layout)

	return &Renderable{
		dev:     dev,
		program: program,
		vao:     vao,
		count:   int32(g.VertexCount()),
	}, nil
}

// Draw issues a single strip draw over the whole buffer.
func (r *Renderable) Draw() {
	r.dev.DrawStrip(r.program, r.vao, r.count)
}

// Program returns the linked program handle.
func (r *Renderable) Program() uint32 { return r.program }

// VertexArray returns the vertex array handle.
func (r *Renderable) VertexArray() uint32 { return r.vao }

// VertexCount returns the number of vertices drawn per frame.
func (r *Renderable) VertexCount() int32 { return r.count }

// Delete releases the GPU resources.
func (r *Renderable) Delete() {
	if r.program == 0 && r.vao == 0 {
		return
	}
	r.dev.Release(r.program, r.vao)
	r.program, r.vao = 0, 0
}
