package squares_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/squares"
)

func TestLoadShaderSources(t *testing.T) {
	vert := writeFile(t, "basic.vert", testShaders.Vertex)
	frag := writeFile(t, "basic.frag", testShaders.Fragment)

	src, err := squares.LoadShaderSources(vert, frag)
	require.NoError(t, err)
	assert.Equal(t, testShaders, src)
}

func TestLoadShaderSourcesMissing(t *testing.T) {
	vert := writeFile(t, "basic.vert", testShaders.Vertex)
	missing := filepath.Join(t.TempDir(), "basic.frag")

	_, err := squares.LoadShaderSources(vert, missing)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "fragment")

	_, err = squares.LoadShaderSources(missing, vert)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "vertex")
}

func TestCompileErrorMessage(t *testing.T) {
	assert.Equal(t, "vertex shader compilation failed: 0:3: error",
		(&squares.CompileError{Stage: squares.StageVertex, Log: "0:3: error"}).Error())
	assert.Equal(t, "shader program linking failed: bad",
		(&squares.CompileError{Stage: squares.StageLink, Log: "bad"}).Error())
}
