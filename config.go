package squares

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig describes the window and GL context.
type WindowConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	GLMajor int    `yaml:"gl_major"`
	GLMinor int    `yaml:"gl_minor"`
	VSync   bool   `yaml:"vsync"`
}

// ShaderPaths names the two shader source files.
type ShaderPaths struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// SquareConfig is the YAML form of a Square.
type SquareConfig struct {
	X     float32    `yaml:"x"`
	Y     float32    `yaml:"y"`
	Size  float32    `yaml:"size"`
	Color [3]float32 `yaml:"color"`
}

// Config is the full scene description.
type Config struct {
	Window     WindowConfig   `yaml:"window"`
	Background [3]float32     `yaml:"background"`
	Shaders    ShaderPaths    `yaml:"shaders"`
	Layout     Layout         `yaml:"layout"`
	Squares    []SquareConfig `yaml:"squares"`
}

// DefaultConfig returns the built-in scene: a 1200x1200 window with two
// squares on a dark blue background.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:   1200,
			Height:  1200,
			Title:   "Main Window",
			GLMajor: 4,
			GLMinor: 1,
			VSync:   true,
		},
		Background: [3]float32{0.1, 0.2, 0.3},
		Shaders: ShaderPaths{
			Vertex:   "basic.vert",
			Fragment: "basic.frag",
		},
		Layout: LayoutPositionColor,
		Squares: []SquareConfig{
			{X: -0.5, Y: -0.5, Size: 0.30, Color: [3]float32{0.0, 0.0, 0.4}},
			{X: 0.5, Y: 0.5, Size: 0.30, Color: [3]float32{0.2, 0.3, 0.4}},
		},
	}
}

// LoadConfig reads a YAML scene file. Fields missing from the file keep
// their DefaultConfig values; a squares list in the file replaces the
// default scene.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields the renderer cannot work without.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.GLMajor < 3 || (c.Window.GLMajor == 3 && c.Window.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("gl version %d.%d is below 3.3 core", c.Window.GLMajor, c.Window.GLMinor))
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		errs = append(errs, errors.New("both shader paths are required"))
	}
	if c.Layout != LayoutPositionColor && c.Layout != LayoutPosition {
		errs = append(errs, fmt.Errorf("unknown layout %d", int(c.Layout)))
	}
	return errors.Join(errs...)
}

// Scene converts the configured squares.
func (c Config) Scene() []Square {
	out := make([]Square, len(c.Squares))
	for i, s := range c.Squares {
		out[i] = Square{
			Pos:   Vec2{X: s.X, Y: s.Y},
			Size:  s.Size,
			Color: Color{R: s.Color[0], G: s.Color[1], B: s.Color[2]},
		}
	}
	return out
}

// BackgroundColor returns the clear color. Alpha is always 1.
func (c Config) BackgroundColor() Color {
	return Color{R: c.Background[0], G: c.Background[1], B: c.Background[2]}
}

// Build accumulates the configured scene and finalizes it.
func (c Config) Build() (*Geometry, error) {
	scene := c.Scene()
	acc, err := NewAccumulator(c.Layout, len(scene))
	if err != nil {
		return nil, err
	}
	for i, sq := range scene {
		if err := acc.Add(sq); err != nil {
			return nil, fmt.Errorf("square %d: %w", i, err)
		}
	}
	return acc.Finalize()
}
