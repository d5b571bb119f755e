// Command gen renders a scene in a hidden window, captures the framebuffer
// and saves a JPEG screenshot to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/ -vert example/basic.vert -frag example/basic.frag
//	go run ./doc/gen/ -config example/position.yaml -vert example/position.vert -frag example/position.frag -name position
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/squares"
	"github.com/go-theft-auto/squares/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML scene file (default: built-in scene)")
	vert := flag.String("vert", "", "vertex shader path (overrides the config)")
	frag := flag.String("frag", "", "fragment shader path (overrides the config)")
	name := flag.String("name", "scene", "output file name without extension")
	size := flag.Int("size", 400, "screenshot width and height in pixels")
	flag.Parse()

	if err := run(*configPath, *vert, *frag, *name, *size); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, vert, frag, name string, size int) error {
	cfg := squares.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = squares.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if vert != "" {
		cfg.Shaders.Vertex = vert
	}
	if frag != "" {
		cfg.Shaders.Fragment = frag
	}
	// Framebuffer reads must match the window, so the capture size wins.
	cfg.Window.Width, cfg.Window.Height = size, size
	cfg.Window.Title = "screenshot-gen"

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.OpenWindow(cfg.Window, true)
	if err != nil {
		return err
	}
	defer window.Destroy()

	shaders, err := squares.LoadShaderSources(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return err
	}
	geom, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	device := opengl.NewDevice()
	r, err := squares.Upload(device, geom, shaders, squares.WithStrictShaders())
	if err != nil {
		return err
	}
	defer r.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	device.Clear(cfg.BackgroundColor())
	r.Draw()
	gl.Finish()

	path := filepath.Join(outDir, name+".jpg")
	if err := capture(size, size, path); err != nil {
		return fmt.Errorf("capture %s: %w", name, err)
	}
	fmt.Printf("  %s (%dx%d, %d squares)\n", path, size, size, geom.SquareCount())
	return nil
}

// capture reads the back buffer and writes it as a JPEG.
func capture(width, height int, path string) error {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
