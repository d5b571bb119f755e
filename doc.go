/*
Package squares renders a fixed set of solid-colored squares as a single
OpenGL triangle strip.

# Overview

The scene is built once, uploaded once and drawn every frame:

	acc, _ := squares.NewAccumulator(squares.LayoutPositionColor, 2)
	acc.Add(squares.Square{Pos: squares.Vec2{X: -0.5, Y: -0.5}, Size: 0.3, Color: squares.Color{B: 0.4}})
	acc.Add(squares.Square{Pos: squares.Vec2{X: 0.5, Y: 0.5}, Size: 0.3, Color: squares.Color{R: 0.2, G: 0.3, B: 0.4}})
	geom, _ := acc.Finalize()

	shaders, err := squares.LoadShaderSources("basic.vert", "basic.frag")
	if err != nil {
	    return err
	}
	r, _ := squares.Upload(device, geom, shaders)
	defer r.Delete()

	squares.Run(window, device, background, func() error {
	    r.Draw()
	    return nil
	})

The device and window come from backend/opengl.

# Strip layout

Each square contributes six vertex records: top-left, top-left, top-right,
bottom-left, bottom-right, bottom-right. The repeated first and last corners
produce zero-area triangles, so any number of squares concatenated into one
buffer renders correctly with a single GL_TRIANGLE_STRIP draw.

Two record layouts exist. LayoutPositionColor stores x, y, r, g, b (attribute
0 and 1, stride 5). LayoutPosition stores x, y only (attribute 0, stride 2)
for shaders that pick their color elsewhere.

# One-shot drawing

Drawer keeps the older style of submitting every square from inside the
frame loop. It accumulates the declared number of squares, performs GPU
setup on the following call and draws on every call after that:

	d, _ := squares.NewDrawer(device, shaders, 2)
	for !window.ShouldClose() {
	    device.Clear(background)
	    d.DrawSquare(a)
	    d.DrawSquare(b)
	    window.Present()
	}

If fewer squares are submitted than declared, the drawer stays in
StateAccepting and nothing is drawn. Submitting more is impossible: the
extra call is consumed by setup or drawing.

# Configuration

DefaultConfig describes the built-in scene. LoadConfig overlays a YAML file:

	window:
	  width: 800
	  height: 800
	  title: squares
	background: [0.1, 0.2, 0.3]
	layout: position_color
	squares:
	  - {x: -0.5, y: 0.5, size: 0.25, color: [1, 0, 0]}

# Logging

Shader diagnostics are logged with log/slog at error level. SetVerbose(true)
additionally logs setup and state transitions.
*/
package squares
