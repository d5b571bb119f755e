package squares_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/squares"
)

func TestRunUntilClose(t *testing.T) {
	dev := &fakeDevice{}
	surface := &fakeSurface{dev: dev, closeAt: 3}
	r, err := squares.Upload(dev, buildGeometry(t, squares.LayoutPositionColor, squareA, squareB), testShaders)
	require.NoError(t, err)
	dev.calls = nil

	bg := squares.Color{R: 0.1, G: 0.2, B: 0.3}
	frames, err := squares.Run(surface, dev, bg, func() error {
		r.Draw()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, frames)

	frame := []string{"clear", "draw", "present"}
	var want []string
	for i := 0; i < 3; i++ {
		want = append(want, frame...)
	}
	assert.Equal(t, want, dev.calls)
	assert.Equal(t, []squares.Color{bg, bg, bg}, dev.clears)
}

func TestRunClosedWindow(t *testing.T) {
	dev := &fakeDevice{}
	frames, err := squares.Run(&fakeSurface{closeAt: 0}, dev, squares.Color{}, func() error {
		t.Fatal("frame called on a closed window")
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, frames)
	assert.Empty(t, dev.calls)
}

func TestRunFrameError(t *testing.T) {
	dev := &fakeDevice{}
	surface := &fakeSurface{dev: dev, closeAt: 10}
	boom := errors.New("boom")

	n := 0
	frames, err := squares.Run(surface, dev, squares.Color{}, func() error {
		n++
		if n == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, frames)
	assert.Equal(t, 1, surface.presents)
}

func TestRunDrivesDrawer(t *testing.T) {
	dev := &fakeDevice{}
	surface := &fakeSurface{closeAt: 4}
	d, err := squares.NewDrawer(dev, testShaders, 2)
	require.NoError(t, err)

	_, err = squares.Run(surface, dev, squares.Color{}, func() error {
		if err := d.DrawSquare(squareA); err != nil {
			return err
		}
		return d.DrawSquare(squareB)
	})
	require.NoError(t, err)

	// Frame 1 accumulates, frame 2 sets up then draws, frames 3 and 4 draw twice.
	assert.Equal(t, 1, dev.count("upload"))
	assert.Equal(t, 5, dev.count("draw"))
	assert.Equal(t, 4, dev.count("clear"))
}
