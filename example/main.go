// Example opens a window and draws the configured squares as one triangle strip.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	cd example && go run .    # basic.vert and basic.frag are read from the working directory
//
// Flags:
//
//	-config position.yaml     # load a YAML scene instead of the built-in one
//	-one-shot                 # submit the squares every frame through squares.Drawer
//	-v                        # debug logging
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/squares"
	"github.com/go-theft-auto/squares/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML scene file (default: built-in scene)")
	oneShot := flag.Bool("one-shot", false, "submit squares every frame through a one-shot Drawer")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	squares.SetVerbose(*verbose)

	if err := run(*configPath, *oneShot); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, oneShot bool) error {
	cfg := squares.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = squares.LoadConfig(configPath); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.OpenWindow(cfg.Window, false)
	if err != nil {
		return err
	}
	defer window.Destroy()

	shaders, err := squares.LoadShaderSources(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return err
	}

	device := opengl.NewDevice()

	var frames int
	if oneShot {
		frames, err = runOneShot(window, device, cfg, shaders)
	} else {
		frames, err = runBatched(window, device, cfg, shaders)
	}
	if err != nil {
		return err
	}
	squares.Logger().Debug("window closed", "frames", frames)
	return nil
}

// runBatched builds the strip once, uploads it and draws it every frame.
func runBatched(window *opengl.Window, device *opengl.Device, cfg squares.Config, shaders squares.ShaderSources) (int, error) {
	geom, err := cfg.Build()
	if err != nil {
		return 0, fmt.Errorf("build scene: %w", err)
	}
	r, err := squares.Upload(device, geom, shaders)
	if err != nil {
		return 0, fmt.Errorf("upload scene: %w", err)
	}
	defer r.Delete()

	return squares.Run(window, device, cfg.BackgroundColor(), func() error {
		r.Draw()
		return nil
	})
}

// runOneShot resubmits every square each frame; the drawer uploads once and
// then draws on each call.
func runOneShot(window *opengl.Window, device *opengl.Device, cfg squares.Config, shaders squares.ShaderSources) (int, error) {
	scene := cfg.Scene()
	d, err := squares.NewDrawerWithLayout(device, shaders, cfg.Layout, len(scene))
	if err != nil {
		return 0, err
	}
	defer d.Delete()

	return squares.Run(window, device, cfg.BackgroundColor(), func() error {
		for _, sq := range scene {
			if err := d.DrawSquare(sq); err != nil {
				return err
			}
		}
		return nil
	})
}
