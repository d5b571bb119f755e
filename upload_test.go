package squares_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/squares"
)

func buildGeometry(t *testing.T, layout squares.Layout, scene ...squares.Square) *squares.Geometry {
	t.Helper()
	acc, err := squares.NewAccumulator(layout, len(scene))
	require.NoError(t, err)
	for _, s := range scene {
		require.NoError(t, acc.Add(s))
	}
	g, err := acc.Finalize()
	require.NoError(t, err)
	return g
}

func TestUploadAndDraw(t *testing.T) {
	dev := &fakeDevice{}
	g := buildGeometry(t, squares.LayoutPositionColor, squareA, squareB)

	r, err := squares.Upload(dev, g, testShaders)
	require.NoError(t, err)
	assert.NotZero(t, r.Program())
	assert.NotZero(t, r.VertexArray())
	assert.Equal(t, int32(12), r.VertexCount())
	assert.Equal(t, g.Floats(), dev.uploaded[0])

	r.Draw()
	r.Draw()
	assert.Equal(t, []string{"compile", "upload", "draw", "draw"}, dev.calls)
}

func TestUploadTwice(t *testing.T) {
	dev := &fakeDevice{}
	g := buildGeometry(t, squares.LayoutPosition, squareA)

	_, err := squares.Upload(dev, g, testShaders)
	require.NoError(t, err)
	_, err = squares.Upload(dev, g, testShaders)
	assert.ErrorIs(t, err, squares.ErrAlreadyUploaded)
	assert.Equal(t, 1, dev.count("upload"))
}

func TestUploadNilGeometry(t *testing.T) {
	_, err := squares.Upload(&fakeDevice{}, nil, testShaders)
	assert.ErrorIs(t, err, squares.ErrNilGeometry)
}

func TestUploadCompileFailureContinues(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	dev := &fakeDevice{compileErr: &squares.CompileError{Stage: squares.StageFragment, Log: "undeclared identifier"}}
	g := buildGeometry(t, squares.LayoutPositionColor, squareA)

	r, err := squares.Upload(dev, g, testShaders, squares.WithLogger(log))
	require.NoError(t, err)
	require.NotNil(t, r)
	r.Draw()

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "fragment shader compilation failed: undeclared identifier")
	assert.Equal(t, 1, dev.count("draw"))
}

func TestUploadStrictFailure(t *testing.T) {
	dev := &fakeDevice{compileErr: &squares.CompileError{Stage: squares.StageLink, Log: "missing main"}}
	g := buildGeometry(t, squares.LayoutPositionColor, squareA)

	r, err := squares.Upload(dev, g, testShaders, squares.WithStrictShaders())
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Contains(t, err.Error(), "shader program linking failed: missing main")
	assert.Zero(t, dev.count("upload"))
	assert.Equal(t, [][2]uint32{{1, 0}}, dev.released)

	// The geometry was not consumed.
	dev.compileErr = nil
	_, err = squares.Upload(dev, g, testShaders)
	assert.NoError(t, err)
}

func TestRenderableDelete(t *testing.T) {
	dev := &fakeDevice{}
	r, err := squares.Upload(dev, buildGeometry(t, squares.LayoutPosition, squareA), testShaders)
	require.NoError(t, err)

	program, vao := r.Program(), r.VertexArray()
	r.Delete()
	r.Delete()
	assert.Equal(t, [][2]uint32{{program, vao}}, dev.released)
	assert.Zero(t, r.Program())
}
