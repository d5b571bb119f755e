package squares

import (
	"fmt"
	"os"
)

// MaxInfoLogLength caps the diagnostic text read back from a failed compile or link.
const MaxInfoLogLength = 1024

// ShaderSources holds the raw GLSL text of the two shader stages.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// LoadShaderSources reads the vertex and fragment stage sources from disk.
// A missing file yields an error wrapping the OS error.
func LoadShaderSources(vertexPath, fragmentPath string) (ShaderSources, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return ShaderSources{}, fmt.Errorf("load vertex shader %q: %w", vertexPath, err)
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return ShaderSources{}, fmt.Errorf("load fragment shader %q: %w", fragmentPath, err)
	}
	return ShaderSources{Vertex: string(vs), Fragment: string(fs)}, nil
}

// ShaderStage identifies where a compile or link failure happened.
type ShaderStage string

const (
	StageVertex   ShaderStage = "vertex"
	StageFragment ShaderStage = "fragment"
	StageLink     ShaderStage = "link"
)

// CompileError carries the driver's info log for a failed stage.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	if e.Stage == StageLink {
		return fmt.Sprintf("shader program linking failed: %s", e.Log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}
