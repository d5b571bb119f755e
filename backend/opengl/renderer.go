// Package opengl provides the OpenGL 4.1 core implementation of squares.Device.
package opengl

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/squares"
)

const floatSize = int32(unsafe.Sizeof(float32(0)))

// Device implements squares.Device using OpenGL.
// A GL context must be current on the calling thread.
type Device struct {
	// vertex buffer owned by each vertex array
	buffers map[uint32]uint32
}

// NewDevice creates a device for the current GL context.
func NewDevice() *Device {
	return &Device{buffers: make(map[uint32]uint32)}
}

// CompileProgram compiles both stages and links them. Failures are reported
// as *squares.CompileError values; the program handle is returned regardless.
func (d *Device) CompileProgram(vertexSource, fragmentSource string) (uint32, error) {
	var errs []error

	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource, squares.StageVertex)
	if err != nil {
		errs = append(errs, err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource, squares.StageFragment)
	if err != nil {
		errs = append(errs, err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		errs = append(errs, &squares.CompileError{
			Stage: squares.StageLink,
			Log:   infoLog(program, gl.GetProgramInfoLog),
		})
	}

	// Linked into the program now
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, errors.Join(errs...)
}

// UploadVertices creates a vertex array and a static vertex buffer holding data.
func (d *Device) UploadVertices(data []float32, layout squares.Layout) uint32 {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*int(floatSize), ptr, gl.STATIC_DRAW)

	stride := int32(layout.Stride()) * floatSize
	for _, a := range layout.Attributes() {
		gl.VertexAttribPointerWithOffset(a.Index, a.Size, gl.FLOAT, false, stride, uintptr(a.Offset)*uintptr(floatSize))
		gl.EnableVertexAttribArray(a.Index)
	}

	// Unbind so later calls cannot modify this array by accident
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	d.buffers[vao] = vbo
	return vao
}

// DrawStrip binds program and vao and draws count vertices as a triangle strip.
func (d *Device) DrawStrip(program, vao uint32, count int32) {
	gl.UseProgram(program)
	gl.BindVertexArray(vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, count)
}

// Clear clears the color buffer to c with full alpha.
func (d *Device) Clear(c squares.Color) {
	gl.ClearColor(c.R, c.G, c.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Release deletes program and vao together with its vertex buffer.
// Zero handles are skipped.
func (d *Device) Release(program, vao uint32) {
	if vao != 0 {
		if vbo, ok := d.buffers[vao]; ok {
			gl.DeleteBuffers(1, &vbo)
			delete(d.buffers, vao)
		}
		gl.DeleteVertexArrays(1, &vao)
	}
	if program != 0 {
		gl.DeleteProgram(program)
	}
}

func compileShader(kind uint32, source string, stage squares.ShaderStage) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return shader, &squares.CompileError{
			Stage: stage,
			Log:   infoLog(shader, gl.GetShaderInfoLog),
		}
	}
	return shader, nil
}

// infoLog reads at most squares.MaxInfoLogLength bytes of a shader or program log.
func infoLog(object uint32, get func(uint32, int32, *int32, *uint8)) string {
	buf := make([]byte, squares.MaxInfoLogLength)
	var n int32
	get(object, int32(len(buf)), &n, &buf[0])
	return string(buf[:n])
}
